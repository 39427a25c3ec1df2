package bossfx

import (
	"reflect"
)

// Query1..Query3 iterate every entity that carries all requested components.
// Components listed as optionals may be missing; the callback then receives nil.
// Returning false from the callback stops the iteration.
type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }
type Query3[A, B, C any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]             { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B]       { return Query2[A, B]{ecs: cmd.app.ecs} }
func MakeQuery3[A, B, C any](cmd *Commands) Query3[A, B, C] { return Query3[A, B, C]{ecs: cmd.app.ecs} }

// binding resolves one query argument against one archetype.
type binding[T any] struct {
	items   []T
	missing bool
}

func (b binding[T]) at(r int) *T {
	if b.missing {
		return nil
	}
	return &b.items[r]
}

func bind[T any](ecs *Ecs, arch *archetype, opt set[componentId]) (binding[T], bool) {
	var zero T
	id := ecs.getComponentId(reflect.TypeOf(zero))
	if col, ok := arch.columns[id]; ok {
		return binding[T]{items: columnOf[T](col)}, true
	}
	if _, ok := opt[id]; ok {
		return binding[T]{missing: true}, true
	}
	return binding[T]{}, false
}

func (q Query1[A]) Map(m func(EntityId, *A) bool, optionals ...any) {
	opt := identifyOptionals(q.ecs, optionals...)
	for _, arch := range q.ecs.archetypeList() {
		a, ok := bind[A](q.ecs, arch, opt)
		if !ok {
			continue
		}
		for r, eid := range arch.ids {
			if !m(eid, a.at(r)) {
				return
			}
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool, optionals ...any) {
	opt := identifyOptionals(q.ecs, optionals...)
	for _, arch := range q.ecs.archetypeList() {
		a, okA := bind[A](q.ecs, arch, opt)
		b, okB := bind[B](q.ecs, arch, opt)
		if !okA || !okB {
			continue
		}
		for r, eid := range arch.ids {
			if !m(eid, a.at(r), b.at(r)) {
				return
			}
		}
	}
}

func (q Query3[A, B, C]) Map(m func(EntityId, *A, *B, *C) bool, optionals ...any) {
	opt := identifyOptionals(q.ecs, optionals...)
	for _, arch := range q.ecs.archetypeList() {
		a, okA := bind[A](q.ecs, arch, opt)
		b, okB := bind[B](q.ecs, arch, opt)
		c, okC := bind[C](q.ecs, arch, opt)
		if !okA || !okB || !okC {
			continue
		}
		for r, eid := range arch.ids {
			if !m(eid, a.at(r), b.at(r), c.at(r)) {
				return
			}
		}
	}
}

// archetypeList snapshots archetypes in creation order so iteration is deterministic.
func (ecs *Ecs) archetypeList() []*archetype {
	res := make([]*archetype, 0, len(ecs.archOrder))
	for _, id := range ecs.archOrder {
		res = append(res, ecs.archetypes[id])
	}
	return res
}

func identifyOptionals(ecs *Ecs, components ...any) set[componentId] {
	res := make(set[componentId])
	for _, c := range components {
		t := reflect.TypeOf(c)
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		res[ecs.getComponentId(t)] = struct{}{}
	}
	return res
}

// Component returns a pointer into the entity's storage for T, or nil.
// The pointer is valid until the next command flush.
func Component[T any](cmd *Commands, eid EntityId) *T {
	ecs := cmd.app.ecs
	loc, ok := ecs.entityIndex[eid]
	if !ok {
		return nil
	}
	col, ok := loc.arch.columns[ecs.getComponentId(reflect.TypeFor[T]())]
	if !ok {
		return nil
	}
	return &columnOf[T](col)[loc.row]
}
