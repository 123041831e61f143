package model

// Level is the difficulty level of a course.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels lists every valid course level.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// Display statuses derived from the published flag.
const (
	StatusPublished = "Published"
	StatusDraft     = "Draft"
)

// Course represents a course in the system. The ID is assigned by the remote
// API and is empty until creation succeeds.
type Course struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	SubTitle    string   `json:"subTitle,omitempty"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Level       Level    `json:"level"`
	Thumbnail   string   `json:"thumbnail"`
	Price       *float64 `json:"price,omitempty"`
	IsPublished bool     `json:"isPublished"`
	Status      string   `json:"status,omitempty"`
}

// Normalize reconciles the display status with the published flag. Some API
// responses carry a precomputed status field and some only the flag; after
// Normalize the two always agree. A recognized status wins and backfills the
// flag, otherwise the status is derived from the flag.
func (c *Course) Normalize() {
	switch c.Status {
	case StatusPublished:
		c.IsPublished = true
	case StatusDraft:
		c.IsPublished = false
	default:
		if c.IsPublished {
			c.Status = StatusPublished
		} else {
			c.Status = StatusDraft
		}
	}
}
