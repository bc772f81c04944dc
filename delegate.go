package shadow

import "weak"

// Delegate observes root-level layout events. Calls happen synchronously on
// the goroutine running the layout pass; redispatch is the delegate's job.
type Delegate interface {
	IntrinsicSizeChanged(root *RootNode, size Size)
}

// DelegateRef is a non-owning reference to a Delegate. The zero value
// refers to nothing.
type DelegateRef struct {
	get func() Delegate
}

// WeakDelegate returns a reference to d that does not keep d alive. Once d
// is garbage collected the reference resolves to nil and notifications are
// skipped.
func WeakDelegate[T any, P interface {
	*T
	Delegate
}](d P) DelegateRef {
	if (*T)(d) == nil {
		return DelegateRef{}
	}
	wp := weak.Make((*T)(d))
	return DelegateRef{get: func() Delegate {
		if p := wp.Value(); p != nil {
			return P(p)
		}
		return nil
	}}
}

// Get returns the delegate if it is still alive.
func (r DelegateRef) Get() Delegate {
	if r.get == nil {
		return nil
	}
	return r.get()
}
