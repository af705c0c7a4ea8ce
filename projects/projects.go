// Package projects registers every course track.
package projects

import (
	_ "github.com/rustcourse/fcc/projects/calculator"
	_ "github.com/rustcourse/fcc/projects/combiner"
)
