package shadow

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Registry owns the roots of every live surface and serializes access to
// each of them, so passes for different surfaces can run concurrently.
type Registry struct {
	mu       sync.RWMutex
	surfaces map[uuid.UUID]*surface

	logger *zap.Logger
	limit  int
}

type surface struct {
	mu   sync.Mutex
	root *RootNode
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used for registry events.
func WithRegistryLogger(l *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithConcurrency bounds the number of passes LayoutAll runs at once.
// Values below 1 are ignored.
func WithConcurrency(n int) RegistryOption {
	return func(r *Registry) {
		if n > 0 {
			r.limit = n
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		surfaces: make(map[uuid.UUID]*surface),
		logger:   zap.NewNop(),
		limit:    runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds root as a new surface and returns its ID.
// Registering a nil root panics.
func (r *Registry) Register(root *RootNode) uuid.UUID {
	if root == nil {
		panic("shadow: nil root in Register")
	}
	id := uuid.New()
	r.mu.Lock()
	r.surfaces[id] = &surface{root: root}
	r.mu.Unlock()
	r.logger.Debug("surface registered", zap.Stringer("surface", id), zap.String("root", root.name))
	return id
}

// Unregister drops the surface. It reports whether the ID was registered.
func (r *Registry) Unregister(id uuid.UUID) bool {
	r.mu.Lock()
	_, ok := r.surfaces[id]
	delete(r.surfaces, id)
	r.mu.Unlock()
	if ok {
		r.logger.Debug("surface unregistered", zap.Stringer("surface", id))
	}
	return ok
}

// Root returns the root registered under id.
// The caller must not mutate it outside Update.
func (r *Registry) Root(id uuid.UUID) (*RootNode, bool) {
	s, err := r.lookup(id)
	if err != nil {
		return nil, false
	}
	return s.root, true
}

// Len returns the number of registered surfaces.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.surfaces)
}

// SetSizeConstraints sets the constraints of the surface's root.
func (r *Registry) SetSizeConstraints(id uuid.UUID, minimum, maximum Size) error {
	return r.Update(id, func(root *RootNode) error {
		return root.SetSizeConstraints(minimum, maximum)
	})
}

// SetBaseDirection sets the base direction of the surface's root.
func (r *Registry) SetBaseDirection(id uuid.UUID, dir WritingDirection) error {
	return r.Update(id, func(root *RootNode) error {
		return root.SetBaseDirection(dir)
	})
}

// Update runs fn with exclusive access to the surface's root.
func (r *Registry) Update(id uuid.UUID, fn func(*RootNode) error) error {
	s, err := r.lookup(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.root)
}

// LayoutAll runs one layout pass per registered surface, at most the
// configured number at a time. A failing surface does not stop the others.
// It returns the affected set of every surface whose pass succeeded, along
// with the joined errors of those that failed. Cancelling ctx stops new
// passes from starting; passes already running finish.
func (r *Registry) LayoutAll(ctx context.Context) (map[uuid.UUID]AffectedSet, error) {
	r.mu.RLock()
	snapshot := make(map[uuid.UUID]*surface, len(r.surfaces))
	for id, s := range r.surfaces {
		snapshot[id] = s
	}
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[uuid.UUID]AffectedSet, len(snapshot))
		errs    []error
	)

	var g errgroup.Group
	g.SetLimit(r.limit)
	for id, s := range snapshot {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			affected := NewAffectedSet()
			s.mu.Lock()
			err := s.root.RunLayoutPass(affected)
			s.mu.Unlock()

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("surface %s: %w", id, err))
				return nil
			}
			results[id] = affected
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	err := errors.Join(errs...)
	r.logger.Debug("layout all finished",
		zap.Int("surfaces", len(snapshot)),
		zap.Int("solved", len(results)),
		zap.Error(err))
	return results, err
}

func (r *Registry) lookup(id uuid.UUID) (*surface, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.surfaces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSurface, id)
	}
	return s, nil
}
