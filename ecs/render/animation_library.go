package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/megaman/ecs/component"
	"github.com/milk9111/megaman/prefabs"
)

// BuildClips cuts every clip of spec out of sheet. A nil sheet still yields
// clips with frame rectangles, which is all the state machine needs.
func BuildClips(spec prefabs.AnimationSpec, sheet *ebiten.Image) map[string]*component.Clip {
	clips := make(map[string]*component.Clip, len(spec.Clips))
	for name, frames := range spec.Clips {
		clip := &component.Clip{Name: name, Sheet: sheet, Frames: make([]component.Frame, 0, len(frames))}
		for _, f := range frames {
			clip.Frames = append(clip.Frames, component.Frame{
				Source:   spec.FrameRect(f),
				Duration: f.Duration,
			})
		}
		clips[name] = clip
	}
	return clips
}

// AnimationLibrary stores clip sets by prefab key so characters spawned from
// the same prefab share them.
type AnimationLibrary struct {
	clips map[string]map[string]*component.Clip
}

// NewAnimationLibrary creates an empty library.
func NewAnimationLibrary() *AnimationLibrary {
	return &AnimationLibrary{clips: make(map[string]map[string]*component.Clip)}
}

// Register stores a clip set under key, replacing any previous one.
func (l *AnimationLibrary) Register(key string, clips map[string]*component.Clip) {
	if l == nil || key == "" || clips == nil {
		return
	}
	l.clips[key] = clips
}

// Get returns a clip set by key.
func (l *AnimationLibrary) Get(key string) (map[string]*component.Clip, bool) {
	if l == nil || key == "" {
		return nil, false
	}
	clips, ok := l.clips[key]
	return clips, ok
}

// Forget drops a clip set so the next load rebuilds it.
func (l *AnimationLibrary) Forget(key string) {
	if l == nil {
		return
	}
	delete(l.clips, key)
}
