package resolver

import "fmt"

// Action is the result of classifying an invocation. Exactly one Action is
// dispatched per run.
type Action interface {
	action()
}

// RunLesson runs lesson N of the active project.
type RunLesson struct{ N int }

// ResetLesson restores lesson N's working file from its template.
type ResetLesson struct{ N int }

// PrintSolution prints the reference solution of lesson N.
type PrintSolution struct{ N int }

// RunTests runs lesson N's regex tests against the working file.
type RunTests struct{ N int }

// SwitchProject makes Target the active project.
type SwitchProject struct{ Target string }

// AlreadyOnProject is a no-op switch to the active project.
type AlreadyOnProject struct{ Project string }

// UnknownProject is a switch to a name outside the known project set.
type UnknownProject struct {
	Name  string
	Valid []string
}

// SetLocale persists Code as the active locale. Name is the display name
// the learner typed.
type SetLocale struct {
	Code string
	Name string
}

// UnknownLocale is a locale name with no translation.
type UnknownLocale struct {
	Name      string
	Available []string
}

// ShowHelp prints the usage text.
type ShowHelp struct{}

// Welcome starts the interactive locale prompt.
type Welcome struct{}

// InvalidArgument is an unrecognized keyword or a malformed lesson number.
type InvalidArgument struct{ Token string }

func (RunLesson) action()        {}
func (ResetLesson) action()      {}
func (PrintSolution) action()    {}
func (RunTests) action()         {}
func (SwitchProject) action()    {}
func (AlreadyOnProject) action() {}
func (UnknownProject) action()   {}
func (SetLocale) action()        {}
func (UnknownLocale) action()    {}
func (ShowHelp) action()         {}
func (Welcome) action()          {}
func (InvalidArgument) action()  {}

// UsageKind tells whether an invocation had too few or too many tokens.
type UsageKind int

const (
	TooFew UsageKind = iota + 1
	TooMany
)

// UsageError is the non-fatal argument count diagnostic.
type UsageError struct {
	Kind  UsageKind
	Count int
}

func (e *UsageError) Error() string {
	switch e.Kind {
	case TooFew:
		return fmt.Sprintf("not enough arguments: got %d", e.Count)
	default:
		return fmt.Sprintf("too many arguments: got %d", e.Count)
	}
}

// Resolution pairs the classified Action with an optional count warning.
type Resolution struct {
	Action  Action
	Warning *UsageError
}
