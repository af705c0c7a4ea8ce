package registry

import (
	"fmt"
	"log"
	"path/filepath"
	"slices"
	"strconv"
)

func init() {
	log.SetFlags(0)
}

var projects = make(map[string]*Project)

// Project is one course track.
type Project struct {
	Key  string
	Name string
	// LessonCap is the highest runnable lesson; 0 means no ceiling.
	LessonCap int
	// WorkFile is the learner's working file, relative to the course root.
	WorkFile string
	// Command runs the project for sub-lessons, from the course root.
	Command []string
	// ResetOnRun overwrites the working file with the lesson template on
	// every run, not only when it is missing.
	ResetOnRun bool
}

// Ext is the file extension shared by the working file, templates and
// solutions.
func (p *Project) Ext() string {
	return filepath.Ext(p.WorkFile)
}

// LessonDir is the directory holding lesson n.
func (p *Project) LessonDir(root string, n int) string {
	return filepath.Join(root, "curriculum", p.Key, strconv.Itoa(n))
}

func RegisterProject(key string, project *Project) {
	if project.WorkFile == "" {
		log.Fatalf("Cannot register project %s without a working file.", key)
	}

	project.Key = key
	projects[key] = project
}

func GetProject(key string) (*Project, error) {
	project, exists := projects[key]
	if !exists {
		return nil, fmt.Errorf("Project %s not found", key)
	}

	return project, nil
}

// Keys returns the registered project keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(projects))
	for key := range projects {
		keys = append(keys, key)
	}

	slices.Sort(keys)
	return keys
}

// Ceilings maps each project key with a lesson ceiling to that ceiling.
func Ceilings() map[string]int {
	ceilings := make(map[string]int)
	for key, project := range projects {
		if project.LessonCap > 0 {
			ceilings[key] = project.LessonCap
		}
	}

	return ceilings
}
