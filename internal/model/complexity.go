package model

import "fmt"

// Complexity selects the surface-structure and vocabulary profile of a
// generated argument. It never changes the logical shape.
type Complexity string

const (
	ComplexityBasic        Complexity = "basic"        // premise-first structure, everyday markers
	ComplexityIntermediate Complexity = "intermediate" // conclusion-first structure
	ComplexityAdvanced     Complexity = "advanced"     // either structure, formal connectives
	ComplexityExpert       Complexity = "expert"       // formal connectives plus symbolic conclusion notation
	ComplexityMixed        Complexity = "mixed"        // sampling policy, resolved before generation
)

// ParseComplexity validates a complexity name from user input.
func ParseComplexity(s string) (Complexity, error) {
	switch c := Complexity(s); c {
	case ComplexityBasic, ComplexityIntermediate, ComplexityAdvanced, ComplexityExpert, ComplexityMixed:
		return c, nil
	default:
		return "", fmt.Errorf("invalid complexity %q: use basic, intermediate, advanced, expert, or mixed", s)
	}
}

// Concrete reports whether the level can drive generation directly.
// Mixed is a policy, not a level: it must be resolved first.
func (c Complexity) Concrete() bool {
	return c != ComplexityMixed && c != ""
}
