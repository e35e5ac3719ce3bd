package system

import (
	"log"

	"github.com/milk9111/megaman/ecs"
)

// ReloadSource reports changed prefab names. *prefabs.Watcher satisfies it.
type ReloadSource interface {
	Poll() ([]string, error)
}

// PrefabReloadSystem hands prefab edits from the watcher goroutine to the
// frame loop. Every changed name is published as an EventPrefabReload and
// passed to Apply.
type PrefabReloadSystem struct {
	source ReloadSource
	Apply  func(w *ecs.World, name string) error
}

func NewPrefabReloadSystem(source ReloadSource, apply func(w *ecs.World, name string) error) *PrefabReloadSystem {
	return &PrefabReloadSystem{source: source, Apply: apply}
}

func (p *PrefabReloadSystem) Update(w *ecs.World) {
	if p == nil || p.source == nil || w == nil {
		return
	}
	names, err := p.source.Poll()
	if err != nil {
		log.Printf("prefabs: watch error: %v", err)
	}
	for _, name := range names {
		w.Events().Push(ecs.Event{Type: ecs.EventPrefabReload, Data: name})
		if p.Apply == nil {
			continue
		}
		if err := p.Apply(w, name); err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			continue
		}
		log.Printf("prefabs: reloaded %s", name)
	}
}
