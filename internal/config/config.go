package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	envFile = ".env"

	ProjectKey = "CURRENT_PROJECT"
	LocaleKey  = "LOCALE"

	DefaultProject = "calculator"
	DefaultLocale  = "english"
)

// Config is the learner's persisted position in the course.
type Config struct {
	Project string
	Locale  string
}

// Store reads and rewrites the course's .env file. It is both the project
// switcher and the locale store.
type Store struct {
	path string
	log  *zap.Logger
}

func NewStore(root string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store{path: filepath.Join(root, envFile), log: logger}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored config. A missing file yields the defaults.
func (s *Store) Load() (*Config, error) {
	env, err := s.read()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Project: env[ProjectKey],
		Locale:  env[LocaleKey],
	}

	if cfg.Project == "" {
		cfg.Project = DefaultProject
	}

	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}

	return cfg, nil
}

func (s *Store) SwitchProject(name string) error {
	return s.set(ProjectKey, name)
}

func (s *Store) SetLocale(code string) error {
	return s.set(LocaleKey, code)
}

func (s *Store) read() (map[string]string, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("state file missing, using defaults", zap.String("path", s.path))
		return map[string]string{}, nil
	}

	env, err := godotenv.Read(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	return env, nil
}

// set rewrites a single key and keeps every other key in the file.
func (s *Store) set(key, value string) error {
	env, err := s.read()
	if err != nil {
		return err
	}

	env[key] = value
	if err := godotenv.Write(env, s.path); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	s.log.Debug("state updated", zap.String("key", key), zap.String("value", value))
	return nil
}
