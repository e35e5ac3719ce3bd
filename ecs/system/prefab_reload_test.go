package system

import (
	"errors"
	"testing"

	"github.com/milk9111/megaman/ecs"
)

type fakeReloadSource struct {
	batches [][]string
	err     error
}

func (f *fakeReloadSource) Poll() ([]string, error) {
	if len(f.batches) == 0 {
		return nil, f.err
	}
	next := f.batches[0]
	f.batches = f.batches[1:]
	return next, f.err
}

func TestPrefabReloadSystem(t *testing.T) {
	src := &fakeReloadSource{batches: [][]string{{"megaman.yaml", "shot.yaml"}, nil}}
	var applied []string
	sys := NewPrefabReloadSystem(src, func(w *ecs.World, name string) error {
		applied = append(applied, name)
		if name == "shot.yaml" {
			return errors.New("broken")
		}
		return nil
	})

	w := ecs.NewWorld()
	sys.Update(w)
	sys.Update(w)

	if len(applied) != 2 || applied[0] != "megaman.yaml" || applied[1] != "shot.yaml" {
		t.Fatalf("unexpected applied prefabs %v", applied)
	}
	if n := w.Events().Count(ecs.EventPrefabReload); n != 2 {
		t.Fatalf("expected 2 reload events, got %d", n)
	}
}

func TestPrefabReloadSystemWithoutSource(t *testing.T) {
	w := ecs.NewWorld()
	NewPrefabReloadSystem(nil, nil).Update(w)
	sys := NewPrefabReloadSystem(&fakeReloadSource{err: errors.New("watch failed")}, nil)
	sys.Update(w)
	if w.Events().Len() != 0 {
		t.Fatalf("expected no events")
	}
}
