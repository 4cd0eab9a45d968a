package models

// OutcomeKind classifies the terminal result of checking one site once.
type OutcomeKind int

const (
	// OutcomeFirstRun is the first successful check of a site.
	OutcomeFirstRun OutcomeKind = iota
	// OutcomeNoChange means the latest content matches the previous record.
	OutcomeNoChange
	// OutcomeChanged means the latest content differs from the previous record.
	OutcomeChanged
	// OutcomeError means the check could not be completed.
	OutcomeError
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFirstRun:
		return "first_run"
	case OutcomeNoChange:
		return "no_change"
	case OutcomeChanged:
		return "changed"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrorKind classifies a failed check.
type ErrorKind int

const (
	// ErrorValidation is a malformed site URL, detected before any network call.
	ErrorValidation ErrorKind = iota
	// ErrorDirectory is a local filesystem failure creating the site directory.
	ErrorDirectory
	// ErrorFetch is a timeout, connection failure or non-200 status after retries.
	ErrorFetch
	// ErrorUnexpected is the catch-all for anything unclassified.
	ErrorUnexpected
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorValidation:
		return "validation"
	case ErrorDirectory:
		return "directory"
	case ErrorFetch:
		return "fetch"
	case ErrorUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// CheckOutcome is the classified result of checking one site once. Exactly
// one is produced per site per run. Previous and Latest are populated for
// Changed (both) and FirstRun/NoChange (Latest only); ErrKind and Message are
// populated for Error.
type CheckOutcome struct {
	Kind     OutcomeKind
	ErrKind  ErrorKind
	Message  string
	Previous string
	Latest   string
}

// FirstRunOutcome builds the outcome for a site's first successful check.
func FirstRunOutcome(latest string) CheckOutcome {
	return CheckOutcome{Kind: OutcomeFirstRun, Latest: latest}
}

// NoChangeOutcome builds the outcome for an unchanged robots.txt file.
func NoChangeOutcome(latest string) CheckOutcome {
	return CheckOutcome{Kind: OutcomeNoChange, Latest: latest, Previous: latest}
}

// ChangedOutcome builds the outcome for a changed robots.txt file, carrying
// both the previous and the latest content.
func ChangedOutcome(previous, latest string) CheckOutcome {
	return CheckOutcome{Kind: OutcomeChanged, Previous: previous, Latest: latest}
}

// ErrorOutcome builds the outcome for a check that could not be completed.
func ErrorOutcome(kind ErrorKind, message string) CheckOutcome {
	return CheckOutcome{Kind: OutcomeError, ErrKind: kind, Message: message}
}
