package calculator

import "github.com/rustcourse/fcc/internal/registry"

func init() {
	registry.RegisterProject("calculator", &registry.Project{
		Name:      "Calculator",
		LessonCap: 24,
		WorkFile:  "calculator/src/main.rs",
	})
}
