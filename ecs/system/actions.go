package system

import (
	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
)

// maxStepsPerTick bounds how many zero-time steps a repeating sequence may
// run in one tick.
const maxStepsPerTick = 256

// ActionSystem advances every entity's keyed action sequences by one tick.
type ActionSystem struct {
	dt float64
}

func NewActionSystem() *ActionSystem {
	return &ActionSystem{dt: common.TickSeconds}
}

func (a *ActionSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	a.Advance(w, a.dt)
}

// Advance runs all sequences for dt seconds.
func (a *ActionSystem) Advance(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.ActionsComponent.Kind(), func(e ecs.Entity, actions *component.Actions) {
		for _, key := range actions.Keys() {
			if !ecs.IsAlive(w, e) {
				return
			}
			seq, ok := actions.Get(key)
			if !ok {
				continue
			}
			advanceSequence(w, e, actions, key, seq, dt)
		}
	})
}

// RunAction installs seq under key on e, adding the Actions component when
// needed. It replaces and cancels whatever ran under key.
func RunAction(w *ecs.World, e ecs.Entity, key string, seq *component.Sequence) {
	actions, ok := ecs.Get(w, e, component.ActionsComponent.Kind())
	if !ok {
		actions = &component.Actions{}
		if err := ecs.Add(w, e, component.ActionsComponent.Kind(), actions); err != nil {
			return
		}
	}
	actions.Run(key, seq)
}

// RemoveAction cancels the sequence under key without completing it.
func RemoveAction(w *ecs.World, e ecs.Entity, key string) bool {
	actions, ok := ecs.Get(w, e, component.ActionsComponent.Kind())
	if !ok {
		return false
	}
	return actions.Remove(key)
}

// RemoveAllActions cancels every sequence on e.
func RemoveAllActions(w *ecs.World, e ecs.Entity) {
	if actions, ok := ecs.Get(w, e, component.ActionsComponent.Kind()); ok {
		actions.RemoveAll()
	}
}

// HasAction reports whether a sequence runs under key on e.
func HasAction(w *ecs.World, e ecs.Entity, key string) bool {
	actions, ok := ecs.Get(w, e, component.ActionsComponent.Kind())
	return ok && actions.Has(key)
}

func advanceSequence(w *ecs.World, e ecs.Entity, actions *component.Actions, key string, seq *component.Sequence, dt float64) {
	remaining := dt
	for i := 0; i < maxStepsPerTick; i++ {
		if seq.Index >= len(seq.Steps) {
			if seq.Repeat && len(seq.Steps) > 0 {
				seq.Index = 0
			} else {
				complete(actions, key, seq)
				return
			}
		}

		step := &seq.Steps[seq.Index]
		if !seq.Started {
			startStep(w, e, seq, step)
		}

		if step.Kind == component.StepCall {
			finishStep(seq)
			if step.Fn != nil {
				step.Fn()
			}
			// the call may have cancelled this sequence or destroyed e
			if !ecs.IsAlive(w, e) {
				return
			}
			if cur, ok := actions.Get(key); !ok || cur != seq {
				return
			}
			continue
		}

		duration := stepDuration(w, e, step)
		need := duration - seq.Elapsed
		if remaining < need-common.Epsilon {
			seq.Elapsed += remaining
			applyStep(w, e, seq, step, seq.Elapsed, duration)
			return
		}
		remaining -= need
		if remaining < 0 {
			remaining = 0
		}
		applyStep(w, e, seq, step, duration, duration)
		finishStep(seq)

		if remaining == 0 && seq.Index < len(seq.Steps) && seq.Steps[seq.Index].Kind != component.StepCall {
			// next timed step starts on the following tick
			return
		}
	}
}

func complete(actions *component.Actions, key string, seq *component.Sequence) {
	actions.Remove(key)
	if seq.OnComplete != nil {
		seq.OnComplete()
	}
}

func finishStep(seq *component.Sequence) {
	seq.Index++
	seq.Elapsed = 0
	seq.Started = false
}

func startStep(w *ecs.World, e ecs.Entity, seq *component.Sequence, step *component.Step) {
	seq.Started = true
	seq.Elapsed = 0
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		seq.StartX, seq.StartY = t.X, t.Y
	}
	if step.Kind == component.StepAnimate {
		showFrame(w, e, step.Clip, 0)
	}
}

func stepDuration(w *ecs.World, e ecs.Entity, step *component.Step) float64 {
	if step.Kind != component.StepAnimate {
		return step.Duration
	}
	if clip := clipFor(w, e, step.Clip); clip != nil {
		return clip.Duration()
	}
	return 0
}

func applyStep(w *ecs.World, e ecs.Entity, seq *component.Sequence, step *component.Step, elapsed, duration float64) {
	progress := 1.0
	if duration > 0 {
		progress = common.Clamp(elapsed/duration, 0, 1)
	}
	switch step.Kind {
	case component.StepAnimate:
		if clip := clipFor(w, e, step.Clip); clip != nil {
			showFrame(w, e, step.Clip, clip.FrameAt(elapsed))
		}
	case component.StepMoveTo:
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X = common.Lerp(seq.StartX, step.X, progress)
			t.Y = common.Lerp(seq.StartY, step.Y, progress)
		}
	case component.StepMoveBy:
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X = seq.StartX + step.X*progress
			t.Y = seq.StartY + step.Y*progress
		}
	}
}

func clipFor(w *ecs.World, e ecs.Entity, name string) *component.Clip {
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return nil
	}
	return anim.Clips[name]
}

func showFrame(w *ecs.World, e ecs.Entity, clipName string, frame int) {
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	clip := anim.Clips[clipName]
	if clip == nil || frame < 0 || frame >= len(clip.Frames) {
		return
	}
	anim.Current = clipName
	anim.Frame = frame
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Image = clip.Sheet
		sprite.Source = clip.Frames[frame].Source
		sprite.UseSource = true
	}
}
