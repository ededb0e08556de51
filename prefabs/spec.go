package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	SceneFile   = "scene.yaml"
	SpritesFile = "sprites.yaml"
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

// SceneSpec is the fixed layout of the single play scene.
type SceneSpec struct {
	Name      string         `yaml:"name"`
	World     WorldSpec      `yaml:"world"`
	Platforms []PlatformSpec `yaml:"platforms"`
	Player    PlayerSpec     `yaml:"player"`
	Stars     StarsSpec      `yaml:"stars"`
	Bombs     BombsSpec      `yaml:"bombs"`
	Score     ScoreSpec      `yaml:"score"`
}

type WorldSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Gravity    float64 `yaml:"gravity"`
	Background string  `yaml:"background"`
}

type TransformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
}

type SpriteSpec struct {
	Image  string `yaml:"image"`
	FrameW int    `yaml:"frame_w"`
	FrameH int    `yaml:"frame_h"`
	Frame  int    `yaml:"frame"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type PlatformSpec struct {
	Transform   TransformSpec   `yaml:"transform"`
	Collider    ColliderSpec    `yaml:"collider"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type AnimationDefSpec struct {
	Frames []int   `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Repeat int     `yaml:"repeat"`
}

type AnimationSpec struct {
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
}

type PlayerSpec struct {
	MoveSpeed   float64         `yaml:"move_speed"`
	JumpSpeed   float64         `yaml:"jump_speed"`
	Bounce      float64         `yaml:"bounce"`
	Transform   TransformSpec   `yaml:"transform"`
	Collider    ColliderSpec    `yaml:"collider"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Animation   AnimationSpec   `yaml:"animation"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type StarsSpec struct {
	Count       int             `yaml:"count"`
	StartX      float64         `yaml:"start_x"`
	StepX       float64         `yaml:"step_x"`
	Y           float64         `yaml:"y"`
	BounceMin   float64         `yaml:"bounce_min"`
	BounceMax   float64         `yaml:"bounce_max"`
	Points      int             `yaml:"points"`
	Collider    ColliderSpec    `yaml:"collider"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type BombsSpec struct {
	// SplitX divides the world into the two spawn halves.
	SplitX      float64         `yaml:"split_x"`
	SpawnY      float64         `yaml:"spawn_y"`
	FallSpeed   float64         `yaml:"fall_speed"`
	MaxSpeedX   int             `yaml:"max_speed_x"`
	Bounce      float64         `yaml:"bounce"`
	Collider    ColliderSpec    `yaml:"collider"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type ScoreSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Prefix string  `yaml:"prefix"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](SceneFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", SceneFile, err)
	}
	return &spec, nil
}

var (
	ErrNoPlatforms   = errors.New("scene has no platforms")
	ErrNoStars       = errors.New("scene has no stars")
	ErrBadWorld      = errors.New("world bounds must be positive")
	ErrBadBounceBand = errors.New("star bounce band is empty")
)

func (s *SceneSpec) Validate() error {
	if s == nil {
		return errors.New("nil scene")
	}
	if s.World.Width <= 0 || s.World.Height <= 0 {
		return ErrBadWorld
	}
	if len(s.Platforms) == 0 {
		return ErrNoPlatforms
	}
	if s.Stars.Count <= 0 {
		return ErrNoStars
	}
	if s.Stars.BounceMax <= s.Stars.BounceMin {
		return ErrBadBounceBand
	}
	return nil
}

// SpritesSpec describes the procedurally drawn art, keyed by image name.
type SpritesSpec struct {
	Images map[string]ImageSpec `yaml:"images"`
}

type ImageSpec struct {
	// Shape is one of rect, star, circle, sheet or gradient.
	Shape  string `yaml:"shape"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Frames int    `yaml:"frames"`
	Color  string `yaml:"color"`
	Accent string `yaml:"accent"`
}

func LoadSpritesSpec() (*SpritesSpec, error) {
	spec, err := LoadSpec[SpritesSpec](SpritesFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
