package livetext

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/kamstrup/intmap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDuplicateElement = errors.New("livetext: element already bound")
	ErrUnknownRole      = errors.New("livetext: unknown role")
	ErrMetricSegments   = errors.New("livetext: metric element needs a label and a value segment")
)

type binding struct {
	role    Role
	element *TextElement
}

// Binder holds the role-tagged set of live text elements and applies each
// element's rule once per tick. Bindings keep their insertion order.
type Binder struct {
	bindings []binding
	slots    *intmap.Map[ElementID, int]
}

// NewBinder creates an empty binder.
func NewBinder() *Binder {
	return &Binder{
		slots: intmap.New[ElementID, int](16),
	}
}

// Add binds el under role.
func (b *Binder) Add(el *TextElement, role Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownRole, int(role))
	}
	if _, ok := b.slots.Get(el.ID); ok {
		return fmt.Errorf("%w: %d", ErrDuplicateElement, el.ID)
	}
	if role == RoleMetric && len(el.Segments) < 2 {
		return fmt.Errorf("%w: element %d has %d", ErrMetricSegments, el.ID, len(el.Segments))
	}

	b.slots.Put(el.ID, len(b.bindings))
	b.bindings = append(b.bindings, binding{role: role, element: el})
	return nil
}

// Element returns the bound element with the given id.
func (b *Binder) Element(id ElementID) (*TextElement, bool) {
	slot, ok := b.slots.Get(id)
	if !ok {
		return nil, false
	}
	return b.bindings[slot].element, true
}

// Role returns the role the element with the given id is bound under.
func (b *Binder) Role(id ElementID) (Role, bool) {
	slot, ok := b.slots.Get(id)
	if !ok {
		return 0, false
	}
	return b.bindings[slot].role, true
}

// Len returns the number of bound elements.
func (b *Binder) Len() int {
	return len(b.bindings)
}

// All iterates bound elements in insertion order.
func (b *Binder) All() iter.Seq2[Role, *TextElement] {
	return func(yield func(Role, *TextElement) bool) {
		for _, bd := range b.bindings {
			if !yield(bd.role, bd.element) {
				return
			}
		}
	}
}

// Tick applies every element's rule once.
func (b *Binder) Tick(in Tick) {
	for _, bd := range b.bindings {
		in.Apply(bd.role, bd.element)
	}
}

// TickParallel applies the same updates as Tick, spread across up to workers
// goroutines. Elements never share segments, so workers need no locking.
// It returns ctx's error if ctx is done before all work has been scheduled.
func (b *Binder) TickParallel(ctx context.Context, in Tick, workers int) error {
	if workers <= 1 || len(b.bindings) <= 1 {
		b.Tick(in)
		return ctx.Err()
	}
	if workers > len(b.bindings) {
		workers = len(b.bindings)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := (len(b.bindings) + workers - 1) / workers
	for start := 0; start < len(b.bindings); start += chunk {
		if gctx.Err() != nil {
			break
		}
		part := b.bindings[start:min(start+chunk, len(b.bindings))]
		g.Go(func() error {
			for _, bd := range part {
				in.Apply(bd.role, bd.element)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
