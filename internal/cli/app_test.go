package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rustcourse/fcc/internal/cli"
	"github.com/rustcourse/fcc/internal/config"
	"github.com/rustcourse/fcc/internal/locale"
	"github.com/rustcourse/fcc/internal/resolver"
	"go.uber.org/zap"
)

const helpMarker = "fcc switch <project>"

// recorder stands in for every collaborator and records calls.
type recorder struct {
	calls []string
	err   error
}

func (r *recorder) record(call string) error {
	r.calls = append(r.calls, call)
	return r.err
}

func (r *recorder) Run(_ context.Context, project string, n int) error {
	return r.record(fmtCall("run", project, n))
}

func (r *recorder) Reset(project string, n int) error {
	return r.record(fmtCall("reset", project, n))
}

func (r *recorder) Solution(project string, n int) error {
	return r.record(fmtCall("solution", project, n))
}

func (r *recorder) Test(_ context.Context, project string, n int) error {
	return r.record(fmtCall("test", project, n))
}

func (r *recorder) SwitchProject(name string) error {
	return r.record("switch " + name)
}

func (r *recorder) SetLocale(code string) error {
	return r.record("locale " + code)
}

func fmtCall(op, project string, n int) string {
	return fmt.Sprintf("%s %s %d", op, project, n)
}

func newApp(project, input string) (*cli.App, *recorder, *bytes.Buffer, *bytes.Buffer) {
	rec := &recorder{}
	var stdout, stderr bytes.Buffer

	app := &cli.App{
		Config:    &config.Config{Project: project, Locale: "english"},
		Catalog:   locale.New("english"),
		Lessons:   rec,
		Solutions: rec,
		Tests:     rec,
		Switcher:  rec,
		Locales:   rec,
		In:        strings.NewReader(input),
		Out:       &stdout,
		Err:       &stderr,
		Log:       zap.NewNop(),
	}

	return app, rec, &stdout, &stderr
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		project string
		tokens  []string
		calls   []string
		output  []string
		helps   int
	}{
		{
			name:    "Lesson Beyond Ceiling Resets",
			project: "calculator",
			tokens:  []string{"30"},
			calls:   []string{"reset calculator 30"},
		},
		{
			name:    "Lesson At Ceiling Runs",
			project: "calculator",
			tokens:  []string{"24"},
			calls:   []string{"run calculator 24"},
		},
		{
			name:    "Lesson Without Ceiling Runs",
			project: "combiner",
			tokens:  []string{"30"},
			calls:   []string{"run combiner 30"},
		},
		{
			name:    "Solution",
			project: "calculator",
			tokens:  []string{"solution", "2"},
			calls:   []string{"solution calculator 2"},
		},
		{
			name:    "Tests",
			project: "combiner",
			tokens:  []string{"test", "5"},
			calls:   []string{"test combiner 5"},
		},
		{
			name:    "Switch",
			project: "calculator",
			tokens:  []string{"switch", "combiner"},
			calls:   []string{"switch combiner"},
			output:  []string{"Switched to the combiner project (Image Combiner)."},
		},
		{
			name:    "Switch To Active Project",
			project: "calculator",
			tokens:  []string{"switch", "calculator"},
			output:  []string{"You are already on the calculator project."},
		},
		{
			name:    "Switch To Unknown Project",
			project: "calculator",
			tokens:  []string{"switch", "spreadsheet"},
			output: []string{
				"The spreadsheet project does not exist.",
				"\tcalculator\n\tcombiner\n",
			},
		},
		{
			name:    "Locale",
			project: "calculator",
			tokens:  []string{"locale", "ENGLISH"},
			calls:   []string{"locale english"},
			output:  []string{"Language set to English"},
		},
		{
			name:    "Locale Not Translated",
			project: "calculator",
			tokens:  []string{"locale", "Spanish"},
			output:  []string{"not translated into Spanish", "Available locales:", "\t- English"},
		},
		{
			name:    "Help",
			project: "calculator",
			tokens:  []string{"--help"},
			helps:   1,
		},
		{
			name:    "Invalid Argument",
			project: "calculator",
			tokens:  []string{"deploy"},
			output:  []string{"Invalid argument: deploy"},
			helps:   1,
		},
		{
			name:    "Malformed Lesson Number",
			project: "calculator",
			tokens:  []string{"reset", "three"},
			output:  []string{"Invalid argument: three"},
			helps:   1,
		},
		{
			name:    "No Arguments",
			project: "calculator",
			tokens:  nil,
			output:  []string{"Not enough arguments."},
			helps:   1,
		},
		{
			name:    "Too Many Arguments",
			project: "calculator",
			tokens:  []string{"solution", "3", "4"},
			calls:   []string{"solution calculator 3"},
			output:  []string{"Too many arguments."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, rec, stdout, _ := newApp(tt.project, "")

			if err := app.Run(context.Background(), tt.tokens); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(rec.calls, tt.calls) {
				t.Errorf("expected calls %v, got %v", tt.calls, rec.calls)
			}

			output := stdout.String()
			for _, want := range tt.output {
				if !strings.Contains(output, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, output)
				}
			}

			if got := strings.Count(output, helpMarker); got != tt.helps {
				t.Errorf("expected help printed %d times, got %d", tt.helps, got)
			}
		})
	}
}

func TestRunPrintsCollaboratorErrors(t *testing.T) {
	app, rec, _, stderr := newApp("calculator", "")
	rec.err = errors.New("lesson 7 not found for project calculator")

	if err := app.Run(context.Background(), []string{"7"}); err != nil {
		t.Fatalf("collaborator errors should not fail the run: %v", err)
	}

	if !strings.Contains(stderr.String(), "lesson 7 not found for project calculator") {
		t.Errorf("expected error passed through verbatim, got %q", stderr.String())
	}
}

func TestRunUnsupportedLocale(t *testing.T) {
	app, _, _, stderr := newApp("calculator", "")
	app.Config.Locale = "klingon"

	if err := app.Run(context.Background(), []string{"help"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stderr.String(), "not translated into klingon") {
		t.Errorf("expected call to translate, got %q", stderr.String())
	}
}

func TestWelcome(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		prompts int
	}{
		{name: "Empty Input Falls Back", input: "\n", prompts: 1},
		{name: "EOF Falls Back", input: "", prompts: 1},
		{name: "Case Insensitive", input: "eNgLiSh\n", prompts: 1},
		{name: "Reprompts Until Valid", input: "klingon\nSpanish\nenglish\n", prompts: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, rec, stdout, _ := newApp("calculator", tt.input)

			if err := app.Run(context.Background(), []string{"welcome"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if want := []string{"locale english"}; !reflect.DeepEqual(rec.calls, want) {
				t.Errorf("expected calls %v, got %v", want, rec.calls)
			}

			output := stdout.String()
			if got := strings.Count(output, ">>: "); got != tt.prompts {
				t.Errorf("expected %d prompts, got %d", tt.prompts, got)
			}

			for _, code := range locale.Supported {
				if greeting := locale.In(code, "greeting", nil); !strings.Contains(output, greeting) {
					t.Errorf("expected greeting %q", greeting)
				}
			}

			for _, want := range []string{"Language set to English", locale.In("english", "welcome", nil)} {
				if !strings.Contains(output, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, output)
				}
			}
		})
	}
}

func TestNew(t *testing.T) {
	root := t.TempDir()
	content := "CURRENT_PROJECT=combiner\nLOCALE=english\n"
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	app, err := cli.New(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := app.ResolverConfig()
	if cfg.Project != "combiner" {
		t.Errorf("expected combiner, got %q", cfg.Project)
	}

	if want := []string{"calculator", "combiner"}; !reflect.DeepEqual(cfg.Projects, want) {
		t.Errorf("expected projects %v, got %v", want, cfg.Projects)
	}

	if cfg.Ceilings["calculator"] != 24 {
		t.Errorf("expected calculator ceiling 24, got %d", cfg.Ceilings["calculator"])
	}
}

func TestNewUnknownProjectFallsBack(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("CURRENT_PROJECT=spreadsheet\n"), 0644); err != nil {
		t.Fatal(err)
	}

	app, err := cli.New(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if app.Config.Project != config.DefaultProject {
		t.Errorf("expected fallback to %s, got %q", config.DefaultProject, app.Config.Project)
	}
}

func TestSwitchThenLocalePersist(t *testing.T) {
	root := t.TempDir()

	app, err := cli.New(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var stdout bytes.Buffer
	app.Out = &stdout
	app.Err = &stdout

	if err := app.Run(context.Background(), []string{"switch", "combiner"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := app.Run(context.Background(), []string{"locale", "english"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := config.NewStore(root, nil).Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Project != "combiner" || cfg.Locale != "english" {
		t.Errorf("unexpected persisted state %+v", cfg)
	}
}

func TestRunScriptInvocation(t *testing.T) {
	tests := []struct {
		argv  []string
		calls []string
	}{
		{argv: []string{"node", "fcc.js", "30"}, calls: []string{"reset calculator 30"}},
		{argv: []string{"node", "fcc.js", "switch", "combiner"}, calls: []string{"switch combiner"}},
		{argv: []string{"node", "fcc.js", "locale", "Spanish"}, calls: nil},
	}

	for _, tt := range tests {
		app, rec, _, _ := newApp("calculator", "")

		tokens := resolver.MeaningfulTokens(tt.argv, resolver.ScriptPrefix)
		if err := app.Run(context.Background(), tokens); err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.argv, err)
		}

		if !reflect.DeepEqual(rec.calls, tt.calls) {
			t.Errorf("%v: expected calls %v, got %v", tt.argv, tt.calls, rec.calls)
		}
	}
}
