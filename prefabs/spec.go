package prefabs

import (
	"errors"
	"fmt"
	"image"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec is wrapped by every validation failure.
var ErrInvalidSpec = errors.New("invalid prefab spec")

// MaxLiveShots is the most shots a character may have in the scene.
const MaxLiveShots = 3

const (
	defaultScale             = 4.0
	defaultTimeToCrossScreen = 3.0
	defaultShotClearance     = 10.0
	defaultCannonOffset      = 10.0
	defaultStepSize          = 48.0
	defaultStepDuration      = 0.2
	defaultJumpHeight        = 120.0
	defaultJumpDuration      = 0.3
	defaultShotInterval      = 0.05
	defaultShotBaseStep      = 20.0
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type MegamanSpec struct {
	Name        string          `yaml:"name"`
	Transform   TransformSpec   `yaml:"transform"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	Animation   AnimationSpec   `yaml:"animation"`
	Character   CharacterSpec   `yaml:"character"`
}

// LoadMegamanSpec loads a character prefab and fills in missing tunables.
func LoadMegamanSpec(filename string) (*MegamanSpec, error) {
	spec, err := LoadSpec[MegamanSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

func (s *MegamanSpec) applyDefaults() {
	s.Transform.applyDefaults()
	c := &s.Character
	if c.MaxLiveShots <= 0 {
		c.MaxLiveShots = MaxLiveShots
	}
	if c.TimeToCrossScreen <= 0 {
		c.TimeToCrossScreen = defaultTimeToCrossScreen
	}
	if c.ShotClearance == 0 {
		c.ShotClearance = defaultShotClearance
	}
	if c.CannonOffset == 0 {
		c.CannonOffset = defaultCannonOffset
	}
	if c.StepSize <= 0 {
		c.StepSize = defaultStepSize
	}
	if c.StepDuration <= 0 {
		c.StepDuration = defaultStepDuration
	}
	if c.JumpHeight <= 0 {
		c.JumpHeight = defaultJumpHeight
	}
	if c.JumpDuration <= 0 {
		c.JumpDuration = defaultJumpDuration
	}
	if c.Shot == "" {
		c.Shot = "shot.yaml"
	}
}

// Validate checks that the sheet is described and every clip frame has a
// positive duration.
func (s *MegamanSpec) Validate() error {
	if s.Animation.Sheet == "" {
		return fmt.Errorf("%w: animation.sheet is required", ErrInvalidSpec)
	}
	if s.Animation.FrameW <= 0 || s.Animation.FrameH <= 0 {
		return fmt.Errorf("%w: animation frame size %dx%d", ErrInvalidSpec, s.Animation.FrameW, s.Animation.FrameH)
	}
	if s.Character.MaxLiveShots > MaxLiveShots {
		return fmt.Errorf("%w: character.max_live_shots %d is above %d", ErrInvalidSpec, s.Character.MaxLiveShots, MaxLiveShots)
	}
	for name, frames := range s.Animation.Clips {
		if len(frames) == 0 {
			return fmt.Errorf("%w: clip %q has no frames", ErrInvalidSpec, name)
		}
		for i, f := range frames {
			if f.Duration <= 0 {
				return fmt.Errorf("%w: clip %q frame %d has duration %v", ErrInvalidSpec, name, i, f.Duration)
			}
		}
	}
	return nil
}

type ShotSpec struct {
	Name        string          `yaml:"name"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	Interval    float64         `yaml:"interval"`
	BaseStep    float64         `yaml:"base_step"`
}

func LoadShotSpec(filename string) (*ShotSpec, error) {
	spec, err := LoadSpec[ShotSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Interval <= 0 {
		spec.Interval = defaultShotInterval
	}
	if spec.BaseStep == 0 {
		spec.BaseStep = defaultShotBaseStep
	}
	if spec.Sprite.Image == "" {
		return nil, fmt.Errorf("prefabs: %s: %w: sprite.image is required", filename, ErrInvalidSpec)
	}
	return &spec, nil
}

type CharacterSpec struct {
	MaxLiveShots      int     `yaml:"max_live_shots"`
	TimeToCrossScreen float64 `yaml:"time_to_cross_screen"`
	StepSize          float64 `yaml:"step_size"`
	StepDuration      float64 `yaml:"step_duration"`
	JumpHeight        float64 `yaml:"jump_height"`
	JumpDuration      float64 `yaml:"jump_duration"`
	ShotClearance     float64 `yaml:"shot_clearance"`
	CannonOffset      float64 `yaml:"cannon_offset"`
	Shot              string  `yaml:"shot"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

func (t *TransformSpec) applyDefaults() {
	if t.ScaleX == 0 {
		t.ScaleX = defaultScale
	}
	if t.ScaleY == 0 {
		t.ScaleY = defaultScale
	}
}

type SpriteSpec struct {
	Image string `yaml:"image"`
}

// AnimationSpec describes clips as cells of a uniform grid sheet.
type AnimationSpec struct {
	Sheet  string                 `yaml:"sheet"`
	FrameW int                    `yaml:"frame_w"`
	FrameH int                    `yaml:"frame_h"`
	Clips  map[string][]FrameSpec `yaml:"clips"`
}

type FrameSpec struct {
	Col      int     `yaml:"col"`
	Row      int     `yaml:"row"`
	Duration float64 `yaml:"duration"`
}

// FrameRect returns the sheet cell of f.
func (a AnimationSpec) FrameRect(f FrameSpec) image.Rectangle {
	x := f.Col * a.FrameW
	y := f.Row * a.FrameH
	return image.Rect(x, y, x+a.FrameW, y+a.FrameH)
}
