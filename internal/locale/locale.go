// Package locale looks up the course's user-facing strings.
//
// Each locale is an embedded JSON object of key -> string. Values may hold
// {{name}} placeholders which are replaced from the vars passed to T.
package locale

import (
	"embed"
	"log"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	// Fallback is used for missing keys and unsupported locales.
	Fallback     = "english"
	FallbackName = "English"
)

// Supported lists every locale with a catalog, in greeting order.
var Supported = []string{"english", "spanish", "chinese"}

// Translated maps the codes of fully translated locales to display names.
// Only these can be selected.
var Translated = map[string]string{
	"english": "English",
}

//go:embed locales/*.json
var files embed.FS

var catalogs = make(map[string][]byte)

func init() {
	for _, code := range Supported {
		data, err := files.ReadFile("locales/" + code + ".json")
		if err != nil {
			log.Fatalf("Missing catalog for locale %s.", code)
		}

		if !gjson.ValidBytes(data) {
			log.Fatalf("Invalid catalog for locale %s.", code)
		}

		catalogs[code] = data
	}
}

// Vars are placeholder values for T.
type Vars map[string]string

// Catalog translates keys into one locale.
type Catalog struct {
	locale string
}

// New returns a catalog for code, or for Fallback if code is unsupported.
func New(code string) *Catalog {
	if !IsSupported(code) {
		code = Fallback
	}

	return &Catalog{locale: code}
}

func IsSupported(code string) bool {
	return slices.Contains(Supported, code)
}

func (c *Catalog) Locale() string {
	return c.locale
}

// T returns the string for key in the catalog's locale.
func (c *Catalog) T(key string, vars Vars) string {
	return In(c.locale, key, vars)
}

// In returns the string for key in code, falling back to English and then
// to the key itself.
func In(code, key string, vars Vars) string {
	value, ok := lookup(code, key)
	if !ok {
		value, ok = lookup(Fallback, key)
	}

	if !ok {
		return key
	}

	return interpolate(value, vars)
}

func lookup(code, key string) (string, bool) {
	data, ok := catalogs[code]
	if !ok {
		return "", false
	}

	result := gjson.GetBytes(data, gjson.Escape(key))
	if !result.Exists() {
		return "", false
	}

	return result.String(), true
}

func interpolate(value string, vars Vars) string {
	if len(vars) == 0 {
		return value
	}

	pairs := make([]string, 0, len(vars)*2)
	for name, v := range vars {
		pairs = append(pairs, "{{"+name+"}}", v)
	}

	return strings.NewReplacer(pairs...).Replace(value)
}
