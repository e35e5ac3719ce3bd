package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/megaman/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			e := ents[c.destroyIndex]
			if !DestroyEntity(w, e) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, e) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, e) {
				t.Fatalf("second DestroyEntity should return false")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), reused.id())
	}
	if reused == old || IsAlive(w, old) {
		t.Fatalf("stale handle must not be alive")
	}
	if Has(w, reused, h.Kind()) {
		t.Fatalf("reused slot must start without components")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if Has(w, e2, h1.Kind()) {
					t.Fatalf("e2 has no int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
		{
			name: "replace_keeps_single_value",
			setup: func() error {
				if err := Add(w, e2, h1.Kind(), intPtr(1)); err != nil {
					return err
				}
				return Add(w, e2, h1.Kind(), intPtr(2))
			},
			check: func(t *testing.T) {
				v, _ := Get(w, e2, h1.Kind())
				if v == nil || *v != 2 || len(w.Query(h1.Kind())) != 1 {
					t.Fatalf("expected replaced value 2, got %v", v)
				}
			},
			teardown: func() bool { return Remove(w, e2, h1.Kind()) && !Remove(w, e2, h1.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}

	if err := Add[int](w, e1, h1.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestQueryAndForEach(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection_in_slot_order",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[string]()

				ents := []Entity{CreateEntity(w), CreateEntity(w), CreateEntity(w), CreateEntity(w)}
				for _, e := range ents {
					_ = Add(w, e, ka, intPtr(int(e.id())))
				}
				_ = Add(w, ents[3], kb, stringPtr("d"))
				_ = Add(w, ents[1], kb, stringPtr("b"))

				got := w.Query(ka, kb)
				if len(got) != 2 || got[0] != ents[1] || got[1] != ents[3] {
					t.Fatalf("expected [e1 e3], got %v", got)
				}
				var seen []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *string) { seen = append(seen, e) })
				if len(seen) != 2 {
					t.Fatalf("expected ForEach2 over 2 entities, got %v", seen)
				}
				if first, ok := First(w, kb); !ok || first != ents[1] {
					t.Fatalf("expected First to return e1, got %v", first)
				}
			},
		},
		{
			name: "destroy_during_iteration",
			run: func(t *testing.T) {
				w := NewWorld()
				k := component.NewComponentKind[int]()
				a, b, c := CreateEntity(w), CreateEntity(w), CreateEntity(w)
				for _, e := range []Entity{a, b, c} {
					_ = Add(w, e, k, intPtr(0))
				}
				visited := 0
				ForEach(w, k, func(e Entity, _ *int) {
					visited++
					if e == a {
						DestroyEntity(w, b)
					}
				})
				if visited != 2 {
					t.Fatalf("expected destroyed entity to be skipped, visited %d", visited)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()
				_ = Add(w, CreateEntity(w), ka, intPtr(1))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
				if _, ok := First(w, kb); ok {
					t.Fatalf("expected no entity for empty kind")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestEventQueue(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: EventShotDespawned, Data: ShotDespawned{}})
	w.Events().Push(Event{Type: EventStateChanged})
	if w.Events().Count(EventShotDespawned) != 1 || w.Events().Len() != 2 {
		t.Fatalf("unexpected queue contents")
	}
	if got := w.Events().Drain(); len(got) != 2 || got[0].Type != EventShotDespawned {
		t.Fatalf("expected FIFO drain, got %v", got)
	}
	if w.Events().Drain() != nil {
		t.Fatalf("expected empty queue after drain")
	}
}
