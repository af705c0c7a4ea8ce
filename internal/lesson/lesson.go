package lesson

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Test is one check against the working file. Contains, when set, is a
// literal substring and takes precedence over Pattern.
type Test struct {
	Text     string `yaml:"text"`
	Pattern  string `yaml:"pattern"`
	Contains string `yaml:"contains"`
	Negate   bool   `yaml:"negate"`
	Hint     string `yaml:"hint"`
}

// Lesson is the content of lesson.yaml.
type Lesson struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	// Run executes the project's command after the working file is seeded.
	Run   bool   `yaml:"run"`
	Tests []Test `yaml:"tests"`
}

// Load reads the lesson definition in dir, preferring lesson.<locale>.yaml
// over lesson.yaml.
func Load(dir, locale string) (*Lesson, error) {
	candidates := []string{
		filepath.Join(dir, fmt.Sprintf("lesson.%s.yaml", locale)),
		filepath.Join(dir, "lesson.yaml"),
	}

	for _, path := range candidates {
		bytes, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var lesson Lesson
		if err := yaml.Unmarshal(bytes, &lesson); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		return &lesson, nil
	}

	return nil, fs.ErrNotExist
}
