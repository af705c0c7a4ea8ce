// Package lesson runs, resets, solves and tests lessons on disk.
//
// A lesson lives in curriculum/<project>/<n>/ under the course root and holds
// lesson.yaml, template<ext> and solution<ext>, where <ext> is the extension
// of the project's working file.
package lesson

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/rustcourse/fcc/internal/attest"
	"github.com/rustcourse/fcc/internal/locale"
	"github.com/rustcourse/fcc/internal/registry"
	"go.uber.org/zap"
)

var bold = color.New(color.Bold).SprintFunc()

// Runner is the lesson runner, solution printer and test runner.
type Runner struct {
	Root    string
	Catalog *locale.Catalog
	Out     io.Writer
	Err     io.Writer
	Log     *zap.Logger

	// Lookup resolves project keys.
	Lookup func(key string) (*registry.Project, error)
}

func NewRunner(root string, catalog *locale.Catalog, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{
		Root:    root,
		Catalog: catalog,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Log:     logger,
		Lookup:  registry.GetProject,
	}
}

// Run prints lesson n, seeds the working file from the template when it is
// missing (or always, for ResetOnRun projects) and, for sub-lessons, runs the
// project's command.
func (r *Runner) Run(ctx context.Context, key string, n int) error {
	project, lesson, dir, err := r.load(key, n)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.Out, bold(r.t("lesson-title", locale.Vars{"title": lesson.Title}, n)))
	if lesson.Description != "" {
		fmt.Fprintf(r.Out, "\n%s\n", lesson.Description)
	}

	work := filepath.Join(r.Root, project.WorkFile)
	_, statErr := os.Stat(work)
	if project.ResetOnRun || errors.Is(statErr, fs.ErrNotExist) {
		if err := r.copyTemplate(project, dir, work); err != nil {
			return err
		}

		fmt.Fprintf(r.Out, "\n%s\n", r.t("lesson-seeded", locale.Vars{"file": project.WorkFile}, n))
	}

	if !lesson.Run || len(project.Command) == 0 {
		return nil
	}

	r.Log.Debug("running sub-lesson", zap.Strings("command", project.Command), zap.Int("lesson", n))
	out, err := execute(ctx, r.Root, project.Command)
	if err != nil {
		return err
	}

	fmt.Fprint(r.Out, out.Stdout)
	fmt.Fprint(r.Err, out.Stderr)

	if out.ExitCode != 0 {
		return fmt.Errorf("%s exited with status %d", project.Command[0], out.ExitCode)
	}

	return nil
}

// Reset overwrites the working file with lesson n's template.
func (r *Runner) Reset(key string, n int) error {
	project, _, dir, err := r.load(key, n)
	if err != nil {
		return err
	}

	work := filepath.Join(r.Root, project.WorkFile)
	if err := r.copyTemplate(project, dir, work); err != nil {
		return err
	}

	fmt.Fprintln(r.Out, r.t("lesson-reset", nil, n))
	return nil
}

// Solution prints lesson n's reference solution.
func (r *Runner) Solution(key string, n int) error {
	project, _, dir, err := r.load(key, n)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, "solution"+project.Ext())
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read solution for lesson %d: %w", n, err)
	}

	_, err = r.Out.Write(bytes)
	return err
}

// Test runs lesson n's regex tests against the working file. Failing tests
// are reported, not returned as errors.
func (r *Runner) Test(ctx context.Context, key string, n int) error {
	project, lesson, _, err := r.load(key, n)
	if err != nil {
		return err
	}

	if len(lesson.Tests) == 0 {
		fmt.Fprintln(r.Out, r.t("no-tests", nil, n))
		return nil
	}

	work := filepath.Join(r.Root, project.WorkFile)
	content, err := os.ReadFile(work)
	if err != nil {
		return fmt.Errorf("failed to read working file: %w", err)
	}

	fmt.Fprintf(r.Out, "%s\n\n", r.t("running-tests", nil, n))

	suite := attest.New()
	for _, test := range lesson.Tests {
		test := test // per-iteration copy; module targets go 1.21 loop semantics
		suite.Test(test.Text, func(do *attest.Do) {
			var checker attest.Checker[string]
			if test.Contains != "" {
				checker = attest.Contains(test.Contains)
			} else {
				checker = attest.Matches(test.Pattern)
			}
			if test.Negate {
				checker = attest.Not(checker)
			}

			do.Content().Text(checker).Assert(test.Hint)
		})
	}

	passed := suite.Run(ctx, project.WorkFile, string(content), r.Out)
	r.Log.Debug("tests finished", zap.String("project", key), zap.Int("lesson", n), zap.Bool("passed", passed))

	return nil
}

func (r *Runner) load(key string, n int) (*registry.Project, *Lesson, string, error) {
	project, err := r.Lookup(key)
	if err != nil {
		return nil, nil, "", err
	}

	dir := project.LessonDir(r.Root, n)
	lesson, err := Load(dir, r.Catalog.Locale())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, "", fmt.Errorf("lesson %d not found for project %s", n, key)
	}
	if err != nil {
		return nil, nil, "", err
	}

	return project, lesson, dir, nil
}

func (r *Runner) copyTemplate(project *registry.Project, dir, work string) error {
	template := filepath.Join(dir, "template"+project.Ext())
	bytes, err := os.ReadFile(template)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(work), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", work, err)
	}

	if err := os.WriteFile(work, bytes, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", work, err)
	}

	r.Log.Debug("working file written", zap.String("template", template), zap.String("file", work))
	return nil
}

func (r *Runner) t(key string, vars locale.Vars, n int) string {
	if vars == nil {
		vars = locale.Vars{}
	}

	vars["lesson"] = strconv.Itoa(n)
	return r.Catalog.T(key, vars)
}
