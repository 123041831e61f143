package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"lmsadmin/internal/dto"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

// Instantiate the validator for use.
func init() {
	validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterStructValidation(courseInputRules, dto.CourseInput{})
}

// courseInputRules enforces the thumbnail representation rule: the URL is
// required unless a binary file rides along, in which case URL checks are
// skipped entirely (size/type checks are the caller's concern).
func courseInputRules(sl validator.StructLevel) {
	in := sl.Current().Interface().(dto.CourseInput)
	if in.File != nil {
		return
	}
	if in.Thumbnail == "" {
		sl.ReportError(in.Thumbnail, "thumbnail", "Thumbnail", "required", "")
	}
}

// Validate checks a payload against its declared constraints. It returns nil
// on success and an *Error carrying per-field failures otherwise. Validate is
// pure: no payload is mutated and nothing leaves the process.
func Validate(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// non-validation failure (e.g. payload is not a struct)
		return err
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Code:    codeForTag(fe.Tag()),
			Message: fe.Translate(translator),
		})
	}
	return &Error{Fields: fields}
}
