package main

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
	"github.com/milk9111/megaman/ecs/entity"
	"github.com/milk9111/megaman/ecs/system"
	"github.com/milk9111/megaman/levels"
	"github.com/milk9111/megaman/prefabs"
	"golang.org/x/image/colornames"
)

// Options are the command-line switches.
type Options struct {
	Level    string
	Debug    bool
	Demo     bool
	Watch    bool
	Joystick bool
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *system.InputSystem
	demo      *system.DemoSystem
	watcher   *prefabs.Watcher
	joystick  *ebitenui.UI
	joyHit    func(x, y int) bool

	player ecs.Entity
	scene  common.Rect
	debug  bool
}

func NewGame(opts Options) (*Game, error) {
	m, err := levels.LoadMap(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Debug {
		log.Printf("level: %s", m)
		for _, ts := range m.TileSets {
			log.Printf("level: %s", ts)
		}
	}

	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	pw.SetDebug(opts.Debug)
	w.SetPhysicsWorld(pw)

	g := &Game{world: w, debug: opts.Debug}
	g.scene = entity.SceneForMap(m)
	entity.SetScene(w, g.scene)

	layers, err := entity.LoadTileMap(w, m, entity.LoadTileMapImage(m))
	if err != nil {
		return nil, err
	}
	if opts.Debug {
		log.Printf("level: %d layers, %d collision boxes", len(layers), pw.StaticCount())
	}

	g.player, err = entity.NewMegaman(w, entity.MegamanPrefab, entity.SpawnPoint(m))
	if err != nil {
		return nil, err
	}
	if !entity.PlaceOnGround(w, g.player) && opts.Debug {
		log.Printf("level: no ground below spawn point")
	}

	if opts.Demo {
		if err := ecs.Add(w, g.player, component.DemoTagComponent.Kind(), &component.DemoTag{}); err != nil {
			return nil, err
		}
		g.demo, err = system.NewDemoSystem(system.DefaultDemoScript)
		if err != nil {
			return nil, err
		}
	}

	g.input = system.NewInputSystem()
	if opts.Joystick {
		g.joystick, g.joyHit = NewJoystickUI(g.input.Recognizer())
		g.input.Ignore = g.joyHit
	}

	var background color.Color = colornames.Black
	if m.BackgroundColor != nil {
		background = m.BackgroundColor
	}

	g.scheduler = ecs.NewScheduler()
	if opts.Watch {
		g.watcher, err = prefabs.NewWatcher(prefabs.Dirs()...)
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			g.scheduler.Add(system.NewPrefabReloadSystem(g.watcher, g.applyPrefab))
		}
	}
	g.scheduler.Add(g.input)
	if g.demo != nil {
		g.scheduler.Add(g.demo)
	}
	commands := system.NewCommandSystem()
	commands.Debug = opts.Debug
	g.scheduler.Add(commands)
	g.scheduler.Add(system.NewActionSystem())
	physics := system.NewPhysicsSystem()
	physics.Debug = opts.Debug
	g.scheduler.Add(physics)
	g.scheduler.Add(system.NewRenderSystem(background))

	return g, nil
}

// applyPrefab reacts to an edited prefab or script.
func (g *Game) applyPrefab(w *ecs.World, name string) error {
	switch name {
	case system.DefaultDemoScript:
		if g.demo == nil {
			return nil
		}
		return g.demo.Reload()
	case entity.MegamanPrefab, "shot.yaml":
		return entity.ReloadMegaman(w, entity.MegamanPrefab)
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if g.joystick != nil {
		g.joystick.Update()
	}

	g.scheduler.Update(g.world)

	for _, evt := range g.world.Events().Drain() {
		if !g.debug {
			continue
		}
		switch data := evt.Data.(type) {
		case ecs.StateChanged:
			log.Printf("character: entity=%s %s -> %s", data.Entity, data.From, data.To)
		case ecs.ShotDespawned:
			log.Printf("shot: entity=%s owner=%s despawned", data.Shot, data.Owner)
		default:
			log.Printf("event: %s %v", evt.Type, evt.Data)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scheduler.Draw(g.world, screen)
	if g.debug {
		system.DrawPhysicsDebug(g.world, screen)
		system.DrawCharacterDebug(g.world, screen)
	}
	if g.joystick != nil {
		g.joystick.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.scene.Width), int(g.scene.Height)
}

// Close stops the prefab watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("prefabs: close watcher: %v", err)
		}
	}
}

