package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rustcourse/fcc/internal/locale"
	"github.com/rustcourse/fcc/internal/registry"
	"github.com/rustcourse/fcc/internal/resolver"
)

// Dispatch executes a single action. Only collaborator failures are returned.
func (a *App) Dispatch(ctx context.Context, action resolver.Action) error {
	project := a.Config.Project

	switch act := action.(type) {
	case resolver.RunLesson:
		return a.Lessons.Run(ctx, project, act.N)
	case resolver.ResetLesson:
		return a.Lessons.Reset(project, act.N)
	case resolver.PrintSolution:
		return a.Solutions.Solution(project, act.N)
	case resolver.RunTests:
		return a.Tests.Test(ctx, project, act.N)
	case resolver.SwitchProject:
		if err := a.Switcher.SwitchProject(act.Target); err != nil {
			return err
		}

		vars := locale.Vars{"project": act.Target, "name": act.Target}
		if target, err := registry.GetProject(act.Target); err == nil && target.Name != "" {
			vars["name"] = target.Name
		}

		fmt.Fprintln(a.Out, a.t("switched-project", vars))
	case resolver.AlreadyOnProject:
		fmt.Fprintln(a.Out, a.t("already-on-project", locale.Vars{"project": act.Project}))
	case resolver.UnknownProject:
		fmt.Fprintf(a.Out, "%s\n\n", a.t("project-not-exist", locale.Vars{"project": act.Name}))
		for _, name := range act.Valid {
			fmt.Fprintf(a.Out, "\t%s\n", name)
		}
		fmt.Fprintln(a.Out)
	case resolver.SetLocale:
		if err := a.Locales.SetLocale(act.Code); err != nil {
			return err
		}

		fmt.Fprintln(a.Out, locale.In(act.Code, "locale-set", locale.Vars{"locale": act.Name}))
	case resolver.UnknownLocale:
		fmt.Fprintf(a.Out, "%s\n\n%s\n\t- %s\n",
			a.t("locale-not-translated", locale.Vars{"locale": act.Name}),
			a.t("available-locales", nil),
			strings.Join(act.Available, "\n\t- "))
	case resolver.Welcome:
		return a.welcome()
	case resolver.InvalidArgument:
		fmt.Fprintf(a.Out, "%s\n", red(a.t("invalid-argument", locale.Vars{"argument": act.Token})))
		fmt.Fprint(a.Out, a.help())
	case resolver.ShowHelp:
		fmt.Fprint(a.Out, a.help())
	default:
		return fmt.Errorf("unhandled action %T", action)
	}

	return nil
}
