package entity

// UsernameChangeOutcome is the terminal classification of a single username update.
type UsernameChangeOutcome int

const (
	// UsernameOutcomeNone is the zero value and is never emitted.
	UsernameOutcomeNone UsernameChangeOutcome = iota
	UsernameOutcomeSuccess
	UsernameOutcomeTaken
	UsernameOutcomeUnexpectedStatus
	UsernameOutcomeNotFound
	UsernameOutcomeServerError
)

// String returns a human-readable outcome name.
func (o UsernameChangeOutcome) String() string {
	switch o {
	case UsernameOutcomeSuccess:
		return "success"
	case UsernameOutcomeTaken:
		return "taken"
	case UsernameOutcomeUnexpectedStatus:
		return "unexpected_status"
	case UsernameOutcomeNotFound:
		return "not_found"
	case UsernameOutcomeServerError:
		return "server_error"
	default:
		return "none"
	}
}
