package form

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"lmsadmin/internal/dto"
)

// ProfileForm binds the controller to the profile record. Photo selection
// follows the same file-over-URL precedence as the course thumbnail.
type ProfileForm struct {
	*Controller[dto.ProfileInput]

	mu      sync.Mutex
	preview *Preview
}

// NewProfileForm builds the profile form. Profiles are always edited, never
// created, so callers open it with OpenEdit.
func NewProfileForm(notifier Notifier, logger zerolog.Logger) *ProfileForm {
	return &ProfileForm{
		Controller: NewController("profile", dto.ProfileInput{}, notifier, logger),
	}
}

// SelectPhoto attaches a new profile photo to the open form, superseding any
// earlier selection and its preview.
func (f *ProfileForm) SelectPhoto(file *dto.FileRef) error {
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
	values.Photo = file
	f.SetValues(values)
	return nil
}

// PreviewPath returns the on-disk preview of the selected photo, empty when
// none is selected.
func (f *ProfileForm) PreviewPath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.preview == nil {
		return ""
	}
	return f.preview.Path()
}

// Submit runs the controller submission, releasing the preview once the form
// closes.
func (f *ProfileForm) Submit(ctx context.Context, submit SubmitFunc[dto.ProfileInput]) error {
	err := f.Controller.Submit(ctx, submit)
	if f.Status() == StatusClosed {
		f.releasePreview()
	}
	return err
}

// Close releases the preview resource before closing the form.
func (f *ProfileForm) Close() {
	f.releasePreview()
	f.Controller.Close()
}

func (f *ProfileForm) releasePreview() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.preview != nil {
		f.preview.Release()
		f.preview = nil
	}
}
