package attest

import (
	"fmt"
	"regexp"
	"strings"
)

// Checker is a composable predicate used in assertions to validate actual values
// against expected conditions.
type Checker[T any] interface {
	// Check returns true if actual satisfies this checker's condition.
	Check(actual T) bool
	// Expected returns a human-readable description of what was expected.
	Expected() string
}

// containsChecker validates that a string contains a substring.
type containsChecker struct {
	substring string
}

// Contains creates a checker that checks if actual contains the substring.
func Contains(substring string) containsChecker {
	return containsChecker{substring: substring}
}

func (m containsChecker) Check(actual string) bool {
	return strings.Contains(actual, m.substring)
}

func (m containsChecker) Expected() string {
	return fmt.Sprintf("containing %q", m.substring)
}

// matchesChecker validates that a string matches a regex pattern.
type matchesChecker struct {
	pattern *regexp.Regexp
	raw     string
}

// Matches creates a checker that checks if actual matches the regex pattern.
// Patterns are compiled in multi-line mode so ^ and $ anchor to lines.
// An invalid pattern panics, which fails the enclosing test.
func Matches(pattern string) matchesChecker {
	compiled, err := regexp.Compile("(?m)" + pattern)
	if err != nil {
		panic(fmt.Sprintf("invalid regex pattern %q: %v", pattern, err))
	}

	return matchesChecker{pattern: compiled, raw: pattern}
}

func (m matchesChecker) Check(actual string) bool {
	return m.pattern.MatchString(actual)
}

func (m matchesChecker) Expected() string {
	return fmt.Sprintf("matching pattern %q", m.raw)
}

// notChecker negates another checker.
type notChecker[T any] struct {
	checker Checker[T]
}

// Not creates a checker that negates another checker.
func Not[T any](checker Checker[T]) notChecker[T] {
	return notChecker[T]{checker: checker}
}

func (m notChecker[T]) Check(actual T) bool {
	return !m.checker.Check(actual)
}

func (m notChecker[T]) Expected() string {
	return fmt.Sprintf("not %s", m.checker.Expected())
}

// checkAll returns true if all checkers pass for the given value.
// If onFail is provided, it's called with the first failing checker.
func checkAll[T any](value T, checkers []Checker[T], onFail func(Checker[T], T)) bool {
	for _, checker := range checkers {
		if !checker.Check(value) {
			if onFail != nil {
				onFail(checker, value)
			}

			return false
		}
	}

	return true
}
