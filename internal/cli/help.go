package cli

import "fmt"

func (a *App) help() string {
	return fmt.Sprintf(`
  chmod +x tooling/fcc - %s

  ---

  fcc <n>              - %s
  fcc reset <n>        - %s
  fcc solution <n>     - %s
  fcc help             - %s
  fcc switch <project> - %s
  fcc test <n>         - %s
  fcc locale <locale>  - %s

  ---

  cargo run --bin <project> - %s

  https://doc.rust-lang.org/std/index.html       - %s
  https://doc.rust-lang.org/book/title-page.html - %s

`,
		a.t("shell-permission", nil),
		a.t("fcc-n", nil),
		a.t("fcc-reset-n", nil),
		a.t("fcc-solution-n", nil),
		a.t("fcc-help", nil),
		a.t("fcc-switch-project", nil),
		a.t("fcc-test-n", nil),
		a.t("fcc-locale", nil),
		a.t("cargo-run", nil),
		a.t("rust-docs", nil),
		a.t("rust-book", nil),
	)
}
