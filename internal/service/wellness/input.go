package wellness

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
)

const (
	maxEmojiLen    = 16
	maxNameLen     = 64
	maxMessageLen  = 2000
	maxResponseLen = 2000
)

// LogMoodInput holds parameters for logging a mood.
type LogMoodInput struct {
	Type  domain.MoodType
	Emoji string
}

// Validate validates the log mood input.
func (i LogMoodInput) Validate() error {
	var errs []domain.FieldError

	if i.Type == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	} else if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown mood type"})
	}

	if utf8.RuneCountInString(i.Emoji) > maxEmojiLen {
		errs = append(errs, domain.FieldError{Field: "emoji", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetUserNameInput holds parameters for renaming the user.
type SetUserNameInput struct {
	Name string
}

// Validate validates the set user name input.
func (i SetUserNameInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return domain.NewValidationError("name", "too long")
	}
	return nil
}

func validateText(field, text string, max int) error {
	if text == "" {
		return domain.NewValidationError(field, "required")
	}
	if utf8.RuneCountInString(text) > max {
		return domain.NewValidationError(field, "too long")
	}
	return nil
}
