package combiner

import "github.com/rustcourse/fcc/internal/registry"

func init() {
	registry.RegisterProject("combiner", &registry.Project{
		Name:       "Image Combiner",
		WorkFile:   "combiner/src/main.rs",
		Command:    []string{"cargo", "run", "--quiet", "--bin", "combiner"},
		ResetOnRun: true,
	})
}
