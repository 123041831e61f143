package model

// Lecture represents a media unit belonging to exactly one course. Deleting
// the parent course orphans its lectures; cascade behavior is the remote
// API's concern.
type Lecture struct {
	ID            string `json:"_id"`
	CourseID      string `json:"courseId,omitempty"`
	LectureTitle  string `json:"lectureTitle"`
	VideoURL      string `json:"videoUrl"`
	IsPreviewFree bool   `json:"isPreviewFree"`
	Duration      string `json:"duration,omitempty"`
}
