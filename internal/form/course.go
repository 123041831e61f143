package form

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"lmsadmin/internal/dto"
	"lmsadmin/internal/model"
)

// CourseForm binds the controller to the course record and owns the
// thumbnail's file-over-URL precedence: a newly selected file supersedes any
// previous selection and wins over the stored URL; with no selection the
// stored URL passes through the submission unchanged.
type CourseForm struct {
	*Controller[dto.CourseInput]

	mu      sync.Mutex
	preview *Preview
}

// NewCourseForm builds the canonical course form. The blank form defaults to
// beginner level and unpublished.
func NewCourseForm(notifier Notifier, logger zerolog.Logger) *CourseForm {
	blank := dto.CourseInput{
		Level:       string(model.LevelBeginner),
		IsPublished: false,
	}
	return &CourseForm{
		Controller: NewController("course", blank, notifier, logger),
	}
}

// SelectThumbnail attaches a new thumbnail file to the open form and stands
// up its preview, releasing the preview of any earlier selection.
func (f *CourseForm) SelectThumbnail(file *dto.FileRef) error {
	if f.Status() != StatusOpen {
		return ErrNotOpen
	}
	preview, err := NewPreview(file.Name, file.Content)
	if err != nil {
		return err
	}

	f.mu.Lock()
	if f.preview != nil {
		f.preview.Release()
	}
	f.preview = preview
	f.mu.Unlock()

	values := f.Values()
	values.File = file
	f.SetValues(values)
	return nil
}

// PreviewPath returns the on-disk preview of the selected thumbnail, empty
// when none is selected.
func (f *CourseForm) PreviewPath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.preview == nil {
		return ""
	}
	return f.preview.Path()
}

// Submit runs the controller submission. A successful submission closes the
// form, so the preview goes with it.
func (f *CourseForm) Submit(ctx context.Context, submit SubmitFunc[dto.CourseInput]) error {
	err := f.Controller.Submit(ctx, submit)
	if f.Status() == StatusClosed {
		f.releasePreview()
	}
	return err
}

// Close releases the preview resource before closing the form.
func (f *CourseForm) Close() {
	f.releasePreview()
	f.Controller.Close()
}

func (f *CourseForm) releasePreview() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.preview != nil {
		f.preview.Release()
		f.preview = nil
	}
}
