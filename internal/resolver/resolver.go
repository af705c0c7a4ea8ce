package resolver

import (
	"slices"
	"strconv"
	"strings"
)

const (
	minTokens = 1
	maxTokens = 2

	// ScriptPrefix is the identity prefix of an `interpreter script args...`
	// invocation.
	ScriptPrefix = 2
)

// Config is the state classification depends on.
type Config struct {
	// Project is the active project key.
	Project string
	// Projects lists the known project keys in display order.
	Projects []string
	// Ceilings maps a project key to its highest runnable lesson.
	// Projects without an entry, or with 0, have no ceiling.
	Ceilings map[string]int
	// Locales maps translated locale codes to display names.
	Locales map[string]string
}

// MeaningfulTokens drops the first prefix tokens of argv.
func MeaningfulTokens(argv []string, prefix int) []string {
	if len(argv) <= prefix {
		return nil
	}

	return argv[prefix:]
}

// IsNumeric reports whether s is a non-empty run of ASCII digits that fits
// in an int.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	_, err := strconv.Atoi(s)
	return err == nil
}

// Classify maps meaningful tokens to a single Action.
func Classify(tokens []string, cfg Config) Resolution {
	var res Resolution
	switch {
	case len(tokens) < minTokens:
		res.Warning = &UsageError{Kind: TooFew, Count: len(tokens)}
	case len(tokens) > maxTokens:
		res.Warning = &UsageError{Kind: TooMany, Count: len(tokens)}
	}

	if len(tokens) == 0 {
		res.Action = ShowHelp{}
		return res
	}

	first := tokens[0]
	var operand string
	if len(tokens) > 1 {
		operand = tokens[1]
	}

	if IsNumeric(first) {
		n, _ := strconv.Atoi(first)
		if ceiling := cfg.Ceilings[cfg.Project]; ceiling > 0 && n > ceiling {
			res.Action = ResetLesson{N: n}
		} else {
			res.Action = RunLesson{N: n}
		}

		return res
	}

	switch first {
	case "help", "--help", "-h":
		res.Action = ShowHelp{}
	case "switch":
		res.Action = classifySwitch(operand, cfg)
	case "reset", "solution", "test":
		res.Action = classifyLesson(first, operand)
	case "locale":
		res.Action = classifyLocale(operand, cfg)
	case "welcome":
		res.Action = Welcome{}
	default:
		res.Action = InvalidArgument{Token: first}
	}

	return res
}

func classifySwitch(target string, cfg Config) Action {
	if target == cfg.Project {
		return AlreadyOnProject{Project: target}
	}

	if !slices.Contains(cfg.Projects, target) {
		return UnknownProject{Name: target, Valid: slices.Clone(cfg.Projects)}
	}

	return SwitchProject{Target: target}
}

func classifyLesson(keyword, operand string) Action {
	if !IsNumeric(operand) {
		return InvalidArgument{Token: operand}
	}

	n, _ := strconv.Atoi(operand)
	switch keyword {
	case "reset":
		return ResetLesson{N: n}
	case "solution":
		return PrintSolution{N: n}
	default:
		return RunTests{N: n}
	}
}

func classifyLocale(name string, cfg Config) Action {
	if code, ok := LookupLocale(name, cfg.Locales); ok {
		return SetLocale{Code: code, Name: cfg.Locales[code]}
	}

	return UnknownLocale{Name: name, Available: DisplayNames(cfg.Locales)}
}

// LookupLocale finds the code whose display name equals name, ignoring case.
func LookupLocale(name string, locales map[string]string) (string, bool) {
	if name == "" {
		return "", false
	}

	for code, display := range locales {
		if strings.EqualFold(display, name) {
			return code, true
		}
	}

	return "", false
}

// DisplayNames returns the display names of locales, sorted.
func DisplayNames(locales map[string]string) []string {
	names := make([]string, 0, len(locales))
	for _, display := range locales {
		names = append(names, display)
	}

	slices.Sort(names)
	return names
}
