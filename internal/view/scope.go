package view

import (
	"runtime"

	"go.uber.org/zap"
)

// Pinnable is the contract between a protection scope and an owner of
// dense storage. While pinned, the owner must keep its storage live and
// unmoved: no reallocation, no resize, no free. Pins nest and are
// released independently; owners count them.
type Pinnable interface {
	Pin()
	Unpin()
}

// Scope is a stack-discipline record of owners currently guaranteed
// live. Enter pins the owners; Exit releases them unconditionally.
// Scopes nest, and one owner may be held by several scopes at once.
//
// Every view derived from a protected owner must be dropped before the
// scope exits; using one afterwards is undefined behavior the engine
// cannot detect.
type Scope struct {
	owners   []Pinnable
	released bool
}

// Enter opens a scope protecting the given owners.
// Pair it with a deferred Exit:
//
//	s := view.Enter(a, b)
//	defer s.Exit()
func Enter(owners ...Pinnable) *Scope {
	for _, o := range owners {
		o.Pin()
	}
	Logger().Debug("scope entered", zap.Int("owners", len(owners)))
	return &Scope{owners: owners}
}

// Exit releases the scope's protection. It runs exactly once; extra
// calls are no-ops, so a deferred Exit stays safe alongside an early
// explicit one. The owners are kept reachable until every pin is
// dropped.
func (s *Scope) Exit() {
	if s.released {
		return
	}
	s.released = true
	for i := len(s.owners) - 1; i >= 0; i-- {
		s.owners[i].Unpin()
	}
	runtime.KeepAlive(s.owners)
	Logger().Debug("scope released", zap.Int("owners", len(s.owners)))
}

// WithProtection pins every owner for the dynamic duration of work,
// runs work, and releases the pins on every exit path: normal return,
// error return, and panic all unwind through the same deferred release.
// The work's error is returned after release.
func WithProtection(work func() error, owners ...Pinnable) error {
	s := Enter(owners...)
	defer s.Exit()
	return work()
}

// WithViews protects the owners like WithProtection and additionally
// substitutes each owner with a view of its whole storage, positionally
// matching the owners, for the duration of work.
func WithViews[T Elem](work func(views []View[T]) error, owners ...*Array[T]) error {
	pinnables := make([]Pinnable, len(owners))
	for i, o := range owners {
		pinnables[i] = o
	}
	s := Enter(pinnables...)
	defer s.Exit()

	views := make([]View[T], len(owners))
	for i, o := range owners {
		views[i] = o.View()
	}
	return work(views)
}
