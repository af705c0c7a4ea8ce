package locale_test

import (
	"testing"

	"github.com/rustcourse/fcc/internal/locale"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		key    string
		vars   locale.Vars
		want   string
	}{
		{
			name:   "Interpolation",
			locale: "english",
			key:    "already-on-project",
			vars:   locale.Vars{"project": "calculator"},
			want:   "You are already on the calculator project.",
		},
		{
			name:   "Own Catalog",
			locale: "spanish",
			key:    "welcome",
			want:   "¡Bienvenido al curso!",
		},
		{
			name:   "Missing Key Falls Back To English",
			locale: "spanish",
			key:    "fcc-help",
			want:   "Prints this help message",
		},
		{
			name:   "Unsupported Locale Falls Back To English",
			locale: "klingon",
			key:    "fcc-help",
			want:   "Prints this help message",
		},
		{
			name:   "Unknown Key",
			locale: "english",
			key:    "no-such-key",
			want:   "no-such-key",
		},
		{
			name:   "Unused Placeholder Kept",
			locale: "english",
			key:    "locale-set",
			want:   "Language set to {{locale}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := locale.In(tt.locale, tt.key, tt.vars); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewFallsBack(t *testing.T) {
	if got := locale.New("klingon").Locale(); got != locale.Fallback {
		t.Errorf("expected %s, got %s", locale.Fallback, got)
	}

	if got := locale.New("spanish").Locale(); got != "spanish" {
		t.Errorf("expected spanish, got %s", got)
	}
}

func TestEverySupportedLocaleGreets(t *testing.T) {
	english := locale.In(locale.Fallback, "greeting", nil)
	for _, code := range locale.Supported {
		got := locale.In(code, "greeting", nil)
		if got == "greeting" {
			t.Errorf("%s: missing greeting", code)
		}

		if code != locale.Fallback && got == english {
			t.Errorf("%s: greeting is not translated", code)
		}
	}
}

func TestTranslatedAreSupported(t *testing.T) {
	for code := range locale.Translated {
		if !locale.IsSupported(code) {
			t.Errorf("translated locale %s has no catalog", code)
		}
	}
}
