package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rustcourse/fcc/internal/config"
	"github.com/rustcourse/fcc/internal/lesson"
	"github.com/rustcourse/fcc/internal/locale"
	"github.com/rustcourse/fcc/internal/registry"
	"github.com/rustcourse/fcc/internal/resolver"
	_ "github.com/rustcourse/fcc/projects"
	commands "github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// LessonRunner runs and resets lessons.
type LessonRunner interface {
	Run(ctx context.Context, project string, n int) error
	Reset(project string, n int) error
}

// SolutionPrinter prints a lesson's reference solution.
type SolutionPrinter interface {
	Solution(project string, n int) error
}

// TestRunner runs a lesson's regex tests.
type TestRunner interface {
	Test(ctx context.Context, project string, n int) error
}

// ProjectSwitcher persists the active project.
type ProjectSwitcher interface {
	SwitchProject(name string) error
}

// LocaleStore persists the active locale.
type LocaleStore interface {
	SetLocale(code string) error
}

// App resolves one invocation and dispatches it.
type App struct {
	Config  *config.Config
	Catalog *locale.Catalog

	Lessons   LessonRunner
	Solutions SolutionPrinter
	Tests     TestRunner
	Switcher  ProjectSwitcher
	Locales   LocaleStore

	In  io.Reader
	Out io.Writer
	Err io.Writer
	Log *zap.Logger
}

// New builds an App for the course at root.
func New(root string, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store := config.NewStore(root, logger)
	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}

	if _, err := registry.GetProject(cfg.Project); err != nil {
		logger.Warn("unknown active project, using default",
			zap.String("project", cfg.Project), zap.String("default", config.DefaultProject))
		cfg.Project = config.DefaultProject
	}

	catalog := locale.New(cfg.Locale)
	runner := lesson.NewRunner(root, catalog, logger)

	return &App{
		Config:    cfg,
		Catalog:   catalog,
		Lessons:   runner,
		Solutions: runner,
		Tests:     runner,
		Switcher:  store,
		Locales:   store,
		In:        os.Stdin,
		Out:       os.Stdout,
		Err:       os.Stderr,
		Log:       logger,
	}, nil
}

// ResolverConfig is the state classification depends on.
func (a *App) ResolverConfig() resolver.Config {
	return resolver.Config{
		Project:  a.Config.Project,
		Projects: registry.Keys(),
		Ceilings: registry.Ceilings(),
		Locales:  locale.Translated,
	}
}

// Run classifies tokens and dispatches the resulting action. Diagnostics and
// collaborator errors are printed; Run itself does not fail on them.
func (a *App) Run(ctx context.Context, tokens []string) error {
	if !locale.IsSupported(a.Config.Locale) {
		fmt.Fprintln(a.Err, a.t("call-to-translate", locale.Vars{"locale": a.Config.Locale}))
	}

	res := resolver.Classify(tokens, a.ResolverConfig())
	if res.Warning != nil {
		a.warn(res.Warning)
	}

	a.Log.Debug("resolved invocation",
		zap.Strings("tokens", tokens),
		zap.String("project", a.Config.Project),
		zap.String("action", fmt.Sprintf("%T", res.Action)))

	if err := a.Dispatch(ctx, res.Action); err != nil {
		fmt.Fprintln(a.Err, red(err.Error()))
	}

	return nil
}

func (a *App) warn(w *resolver.UsageError) {
	key := "too-many-arguments"
	if w.Kind == resolver.TooFew {
		key = "not-enough-arguments"
	}

	fmt.Fprintf(a.Out, "%s\n\n", yellow(a.t(key, nil)))
}

func (a *App) t(key string, vars locale.Vars) string {
	return a.Catalog.T(key, vars)
}

// Action is the urfave/cli entry point. Flag parsing is disabled on the
// command, so every token reaches the resolver.
func Action(ctx context.Context, cmd *commands.Command) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	root, err := courseRoot()
	if err != nil {
		return err
	}

	app, err := New(root, logger)
	if err != nil {
		return err
	}

	return app.Run(ctx, cmd.Args().Slice())
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("FCC_DEBUG") != "" {
		return zap.NewDevelopment()
	}

	return zap.NewNop(), nil
}

func courseRoot() (string, error) {
	if root := os.Getenv("FCC_ROOT"); root != "" {
		return root, nil
	}

	root, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	return root, nil
}
