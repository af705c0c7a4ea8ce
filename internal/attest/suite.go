package attest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	green     = color.New(color.FgGreen).SprintFunc()
	red       = color.New(color.FgRed).SprintFunc()
	bold      = color.New(color.Bold).SprintFunc()
	checkMark = green("✓")
	crossMark = red("✗")
)

// Suite represents an ordered list of checks against a learner's file
type Suite struct {
	tests []TestFunc
}

// TestFunc represents a single test case with name and function
type TestFunc struct {
	Name string
	Fn   func(*Do)
}

// New creates a new empty test suite
func New() *Suite {
	return &Suite{tests: make([]TestFunc, 0)}
}

// Test adds a test case to the suite
func (s *Suite) Test(name string, fn func(*Do)) *Suite {
	s.tests = append(s.tests, TestFunc{Name: name, Fn: fn})
	return s
}

// Run executes every test against content and reports to out.
// It returns true if all tests passed.
func (s *Suite) Run(ctx context.Context, path, content string, out io.Writer) bool {
	do := &Do{path: path, content: content}

	passed := 0
	for _, test := range s.tests {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		if msg, ok := runTest(do, test); ok {
			passed++
			fmt.Fprintf(out, "%s %s\n", checkMark, test.Name)
		} else {
			fmt.Fprintf(out, "%s %s\n", crossMark, test.Name)
			fmt.Fprintf(out, "\n%s\n\n", msg)
		}
	}

	if passed == len(s.tests) {
		fmt.Fprintf(out, "\n%s %s\n", bold("PASSED"), checkMark)
		return true
	}

	fmt.Fprintf(out, "\n%s %s (%d/%d)\n", bold("FAILED"), crossMark, passed, len(s.tests))
	return false
}

func runTest(do *Do, test TestFunc) (msg string, ok bool) {
	defer func() {
		if err := recover(); err != nil {
			msg = fmt.Sprint(err)
			ok = false
		}
	}()

	test.Fn(do)
	return "", true
}

// Do gives tests access to the file under test
type Do struct {
	path    string
	content string
}

// Content creates an assertion on the file's content
func (do *Do) Content() *ContentAssert {
	return &ContentAssert{do: do}
}

// ContentAssert validates the content of the file under test.
type ContentAssert struct {
	do       *Do
	help     string
	checkers []Checker[string]
}

// Text adds expected content checkers.
// All checkers must pass.
func (a *ContentAssert) Text(checkers ...Checker[string]) *ContentAssert {
	a.checkers = append(a.checkers, checkers...)
	return a
}

// Assert validates the content and panics with a formatted message on failure.
func (a *ContentAssert) Assert(help string) {
	a.help = help

	checkAll(a.do.content, a.checkers, func(m Checker[string], _ string) {
		msg := fmt.Sprintf("%s\n  Expected content %s%s", a.do.path, m.Expected(), a.formatHelp())
		panic(msg)
	})
}

func (a *ContentAssert) formatHelp() string {
	if a.help == "" {
		return ""
	}

	return "\n\n  " + strings.ReplaceAll(a.help, "\n", "\n  ")
}
