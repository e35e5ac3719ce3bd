package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
	"github.com/milk9111/megaman/input"
	"github.com/milk9111/megaman/prefabs"
)

// DefaultDemoScript drives the attract mode.
const DefaultDemoScript = "scripts/demo.tengo"

// DemoSystem runs a tengo script once per tick for every character tagged
// for the demo and queues the command it picks.
type DemoSystem struct {
	scriptPath string
	compiled   *tengo.Compiled
	tick       int
}

// NewDemoSystem loads and compiles the script at path.
func NewDemoSystem(path string) (*DemoSystem, error) {
	d := &DemoSystem{scriptPath: path}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewDemoSystemFromSource compiles src directly.
func NewDemoSystemFromSource(src []byte) (*DemoSystem, error) {
	compiled, err := compileDemo(src)
	if err != nil {
		return nil, err
	}
	return &DemoSystem{compiled: compiled}, nil
}

// ScriptPath returns the prefab path the script was loaded from.
func (d *DemoSystem) ScriptPath() string {
	if d == nil {
		return ""
	}
	return d.scriptPath
}

// Reload recompiles the script from disk or the embedded copy. On error the
// previous script keeps running.
func (d *DemoSystem) Reload() error {
	src, err := prefabs.LoadScript(d.scriptPath)
	if err != nil {
		return fmt.Errorf("demo: load %s: %w", d.scriptPath, err)
	}
	compiled, err := compileDemo(src)
	if err != nil {
		return fmt.Errorf("demo: compile %s: %w", d.scriptPath, err)
	}
	d.compiled = compiled
	return nil
}

func compileDemo(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	for name, v := range map[string]any{
		"tick":  0,
		"state": "",
		"shots": 0,
		"x":     0.0,
		"y":     0.0,
		"width": 0.0,
	} {
		if err := script.Add(name, v); err != nil {
			return nil, err
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

func (d *DemoSystem) Update(w *ecs.World) {
	if d == nil || d.compiled == nil || w == nil {
		return
	}
	tick := d.tick
	d.tick++

	for _, e := range w.Query(component.DemoTagComponent.Kind(), component.CharacterComponent.Kind()) {
		cmd, ok, err := d.step(w, e, tick)
		if err != nil {
			log.Printf("demo: entity=%s script error: %v", e, err)
			continue
		}
		if !ok {
			continue
		}
		if q, ok := ecs.Get(w, e, component.CommandQueueComponent.Kind()); ok {
			q.Push(cmd)
		}
	}
}

func (d *DemoSystem) step(w *ecs.World, e ecs.Entity, tick int) (input.Command, bool, error) {
	ch, _ := ecs.Get(w, e, component.CharacterComponent.Kind())
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return input.Command{}, false, nil
	}

	vars := map[string]any{
		"tick":  tick,
		"state": ch.State().String(),
		"shots": LiveShots(w, e),
		"x":     t.X,
		"y":     t.Y,
		"width": SceneRect(w).Width,
	}
	for name, v := range vars {
		if err := d.compiled.Set(name, v); err != nil {
			return input.Command{}, false, err
		}
	}
	if err := d.compiled.Run(); err != nil {
		return input.Command{}, false, err
	}

	name := ""
	if d.compiled.IsDefined("command") {
		name = strings.TrimSpace(d.compiled.Get("command").String())
	}
	target := common.Vec2{X: t.X, Y: t.Y}
	if d.compiled.IsDefined("target_x") {
		target.X = d.compiled.Get("target_x").Float()
	}
	if d.compiled.IsDefined("target_y") {
		target.Y = d.compiled.Get("target_y").Float()
	}
	cmd, ok := ParseDemoCommand(name, target, t.X)
	return cmd, ok, nil
}

// ParseDemoCommand maps a script command name to an input command. x is the
// character's position, used to pick the direction of "move_to".
func ParseDemoCommand(name string, target common.Vec2, x float64) (input.Command, bool) {
	switch name {
	case "shoot":
		return input.Shoot(target), true
	case "shoot_ahead":
		return input.ShootAhead(), true
	case "jump":
		return input.Jump(), true
	case "still":
		return input.Hold(input.DirectionNone), true
	case "move_left":
		return input.Hold(input.DirectionLeft), true
	case "move_right":
		return input.Hold(input.DirectionRight), true
	case "step_left":
		return input.Step(input.DirectionLeft), true
	case "step_right":
		return input.Step(input.DirectionRight), true
	case "move_to":
		dir := input.DirectionRight
		if target.X <= x {
			dir = input.DirectionLeft
		}
		return input.Swipe(dir, target), true
	}
	return input.Command{}, false
}
