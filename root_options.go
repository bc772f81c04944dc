package shadow

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/grindlemire/go-shadow/internal/locale"
)

// RootOption configures a RootNode.
type RootOption func(*RootNode)

// WithName sets the root's name, which appears in logs and errors.
func WithName(name string) RootOption {
	return func(r *RootNode) {
		r.name = name
	}
}

// WithRootStyle applies node options to the root itself.
// Options that attach content are ignored; a root is always a container.
func WithRootStyle(opts ...NodeOption) RootOption {
	return func(r *RootNode) {
		for _, opt := range opts {
			opt(&r.Node)
		}
		r.content = nil
	}
}

// WithBaseDirection sets the initial base direction. Inherit is ignored.
func WithBaseDirection(dir WritingDirection) RootOption {
	return func(r *RootNode) {
		if dir == LTR || dir == RTL {
			r.baseDirection = dir
		}
	}
}

// WithLocale sets the initial base direction from a language tag instead
// of the process environment.
func WithLocale(tag language.Tag) RootOption {
	return func(r *RootNode) {
		r.baseDirection = locale.DirectionFor(tag)
	}
}

// WithEngine replaces the built-in flexbox engine.
func WithEngine(e Engine) RootOption {
	return func(r *RootNode) {
		if e != nil {
			r.engine = e
		}
	}
}

// WithLogger sets the logger used for pass diagnostics.
func WithLogger(l *zap.Logger) RootOption {
	return func(r *RootNode) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithDelegate sets the initial delegate reference.
func WithDelegate(ref DelegateRef) RootOption {
	return func(r *RootNode) {
		r.delegate = ref
	}
}
