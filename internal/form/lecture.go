package form

import (
	"github.com/rs/zerolog"

	"lmsadmin/internal/dto"
)

// NewLectureForm builds the canonical lecture form, shared by create and edit
// mode.
func NewLectureForm(notifier Notifier, logger zerolog.Logger) *Controller[dto.LectureInput] {
	return NewController("lecture", dto.LectureInput{}, notifier, logger)
}
