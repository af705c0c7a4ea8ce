package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rustcourse/fcc/internal/locale"
	"github.com/rustcourse/fcc/internal/resolver"
	"go.uber.org/zap"
)

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

// ask prints the prompt and returns the trimmed line. def is returned on
// empty input or EOF.
func (p *prompter) ask(prompt, def string) string {
	_, _ = fmt.Fprint(p.out, prompt)

	if !p.scanner.Scan() {
		return def
	}
	text := strings.TrimSpace(p.scanner.Text())
	if text == "" {
		return def
	}
	return text
}

// welcome greets the learner in every supported locale and asks until a
// translated locale is named.
func (a *App) welcome() error {
	for _, code := range locale.Supported {
		fmt.Fprintln(a.Out, locale.In(code, "greeting", nil))
	}

	names := resolver.DisplayNames(locale.Translated)
	fmt.Fprintf(a.Out, "\n\t- %s\n\n", strings.Join(names, "\n\t- "))

	p := newPrompter(a.In, a.Out)
	for {
		name := p.ask(">>: ", locale.FallbackName)

		code, ok := resolver.LookupLocale(name, locale.Translated)
		if !ok {
			a.Log.Debug("locale not available", zap.String("input", name))
			continue
		}

		if err := a.Locales.SetLocale(code); err != nil {
			return err
		}

		fmt.Fprintln(a.Out, locale.In(code, "locale-set", locale.Vars{"locale": locale.Translated[code]}))
		fmt.Fprintf(a.Out, "\n\n%s\n\n", locale.In(code, "welcome", nil))
		return nil
	}
}
