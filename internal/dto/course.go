package dto

import "lmsadmin/internal/model"

// CourseInput is the canonical course payload produced by the form layer.
// Thumbnail carries a URL reference; File, when set, carries a freshly
// selected binary upload and takes precedence over the URL. Exactly one of
// the two is authoritative per submission.
type CourseInput struct {
	Title       string   `json:"title" validate:"required"`
	SubTitle    string   `json:"subTitle,omitempty"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Level       string   `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Thumbnail   string   `json:"thumbnail,omitempty" validate:"omitempty,url"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsPublished bool     `json:"isPublished"`

	File *FileRef `json:"-"`
}

// CourseInputFromModel pre-fills a course input from an existing record for
// edit mode. The stored thumbnail URL passes through unchanged unless a new
// file is selected later.
func CourseInputFromModel(c model.Course) CourseInput {
	return CourseInput{
		Title:       c.Title,
		SubTitle:    c.SubTitle,
		Description: c.Description,
		Category:    c.Category,
		Level:       string(c.Level),
		Thumbnail:   c.Thumbnail,
		Price:       c.Price,
		IsPublished: c.IsPublished,
	}
}
