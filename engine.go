package shadow

import "github.com/grindlemire/go-shadow/internal/layout"

// Engine solves the subtree under root for the given constraints and base
// direction. Implementations must not mutate nodes and must visit every
// dirty node; RootNode commits the returned solution itself.
type Engine interface {
	Solve(root Layoutable, c Constraints, base WritingDirection) (*Solution, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(root Layoutable, c Constraints, base WritingDirection) (*Solution, error)

// Solve calls f.
func (f EngineFunc) Solve(root Layoutable, c Constraints, base WritingDirection) (*Solution, error) {
	return f(root, c, base)
}

// FlexEngine returns the built-in flexbox engine.
func FlexEngine() Engine {
	return EngineFunc(layout.Solve)
}
