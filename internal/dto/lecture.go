package dto

import "lmsadmin/internal/model"

// LectureInput is the canonical lecture payload produced by the form layer.
type LectureInput struct {
	LectureTitle  string `json:"lectureTitle" validate:"required"`
	VideoURL      string `json:"videoUrl,omitempty" validate:"omitempty,url"`
	IsPreviewFree bool   `json:"isPreviewFree"`
	Duration      string `json:"duration,omitempty"`
}

// LectureInputFromModel pre-fills a lecture input from an existing record for
// edit mode.
func LectureInputFromModel(l model.Lecture) LectureInput {
	return LectureInput{
		LectureTitle:  l.LectureTitle,
		VideoURL:      l.VideoURL,
		IsPreviewFree: l.IsPreviewFree,
		Duration:      l.Duration,
	}
}
