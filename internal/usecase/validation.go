package usecase

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"cabinet/internal/domain/entity"
	"cabinet/internal/errors"
)

// Severity classifies a status message shown next to the username field.
type Severity int

const (
	SeverityNeutral Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "neutral"
	}
}

// StatusMessage is a user-facing message with its severity.
type StatusMessage struct {
	Text     string
	Severity Severity
}

// Username rejection messages.
const (
	MsgUsernameEmpty      = "Username cannot be empty."
	MsgUsernameWhitespace = "Username cannot contain spaces or tabs."
	MsgUsernameUnchanged  = "Username is the same as current."
	MsgUsernameTooShort   = "Username must be more than 3 characters."
)

// Rules run in tag order; the first failing tag decides the message.
type usernameChange struct {
	Candidate string `validate:"notblank,nowhitespace,nefield=Current,gt=3"`
	Current   string
}

var usernameRejections = map[string]StatusMessage{
	"notblank":     {Text: MsgUsernameEmpty, Severity: SeverityError},
	"nowhitespace": {Text: MsgUsernameWhitespace, Severity: SeverityError},
	"nefield":      {Text: MsgUsernameUnchanged, Severity: SeverityNeutral},
	"gt":           {Text: MsgUsernameTooShort, Severity: SeverityWarning},
}

// UsernameValidator applies the local username rules before anything is sent.
type UsernameValidator struct {
	validate *validator.Validate
}

// NewUsernameValidator registers the custom username tags.
func NewUsernameValidator() (*UsernameValidator, error) {
	validate := validator.New()

	if err := validate.RegisterValidation("notblank", notBlank); err != nil {
		return nil, errors.Wrap(err, "register notblank")
	}
	if err := validate.RegisterValidation("nowhitespace", noWhitespace); err != nil {
		return nil, errors.Wrap(err, "register nowhitespace")
	}

	return &UsernameValidator{validate: validate}, nil
}

// Validate returns the rejection for candidate, or nil when it may be submitted.
func (v *UsernameValidator) Validate(candidate, current string) *StatusMessage {
	err := v.validate.Struct(usernameChange{Candidate: candidate, Current: current})
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		if msg, ok := usernameRejections[validationErrs[0].Tag()]; ok {
			return &msg
		}
	}

	return &StatusMessage{Text: MsgUsernameEmpty, Severity: SeverityError}
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return strings.TrimSpace(field.String()) != ""
}

func noWhitespace(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return !strings.ContainsFunc(field.String(), unicode.IsSpace)
}

// OutcomeMessage maps a username change outcome to its status line.
func OutcomeMessage(outcome entity.UsernameChangeOutcome) StatusMessage {
	switch outcome {
	case entity.UsernameOutcomeSuccess:
		return StatusMessage{Text: "Username updated successfully.", Severity: SeveritySuccess}
	case entity.UsernameOutcomeTaken:
		return StatusMessage{Text: "Username already taken.", Severity: SeverityError}
	case entity.UsernameOutcomeUnexpectedStatus:
		return StatusMessage{Text: "Unexpected error occurred.", Severity: SeverityError}
	case entity.UsernameOutcomeNotFound:
		return StatusMessage{Text: "User not found.", Severity: SeverityError}
	case entity.UsernameOutcomeServerError:
		return StatusMessage{Text: "Server error.", Severity: SeverityError}
	default:
		return StatusMessage{Text: "Unknown response.", Severity: SeverityError}
	}
}
