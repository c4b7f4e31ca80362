package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads a prefab and decodes it into T.
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

type PlayerSpec struct {
	Name        string          `yaml:"name"`
	Speed       float64         `yaml:"speed"`
	Size        float64         `yaml:"size"`
	Fire        FireSpec        `yaml:"fire"`
	Transform   TransformSpec   `yaml:"transform"`
	Collider    ColliderSpec    `yaml:"collider"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Animation   AnimationSpec   `yaml:"animation"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type FireSpec struct {
	Cooldown    float64 `yaml:"cooldown"`
	BulletSpeed float64 `yaml:"bullet_speed"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name          string          `yaml:"name"`
	Count         int             `yaml:"count"`
	SpawnMin      float64         `yaml:"spawn_min"`
	SpawnMax      float64         `yaml:"spawn_max"`
	Health        int             `yaml:"health"`
	Speed         float64         `yaml:"speed"`
	SightRange    float64         `yaml:"sight_range"`
	SightScript   string          `yaml:"sight_script"`
	WanderSeconds float64         `yaml:"wander_seconds"`
	Transform     TransformSpec   `yaml:"transform"`
	Collider      ColliderSpec    `yaml:"collider"`
	Sprite        SpriteSpec      `yaml:"sprite"`
	RenderLayer   RenderLayerSpec `yaml:"render_layer"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BulletSpec struct {
	Name        string          `yaml:"name"`
	Lifetime    float64         `yaml:"lifetime"`
	Damage      int             `yaml:"damage"`
	Transform   TransformSpec   `yaml:"transform"`
	Collider    ColliderSpec    `yaml:"collider"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadBulletSpec() (*BulletSpec, error) {
	spec, err := LoadSpec[BulletSpec]("bullet.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PickupSpec struct {
	Name         string          `yaml:"name"`
	Kind         string          `yaml:"kind"`
	Count        int             `yaml:"count"`
	SpawnMin     float64         `yaml:"spawn_min"`
	SpawnMax     float64         `yaml:"spawn_max"`
	BobAmplitude float64         `yaml:"bob_amplitude"`
	BobSeconds   float64         `yaml:"bob_seconds"`
	Transform    TransformSpec   `yaml:"transform"`
	Collider     ColliderSpec    `yaml:"collider"`
	Sprite       SpriteSpec      `yaml:"sprite"`
	RenderLayer  RenderLayerSpec `yaml:"render_layer"`
}

func LoadPickupSpec() (*PickupSpec, error) {
	spec, err := LoadSpec[PickupSpec]("pickup.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type WallSpec struct {
	Name        string          `yaml:"name"`
	Transform   TransformSpec   `yaml:"transform"`
	Collider    ColliderSpec    `yaml:"collider"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Color       *YAMLColor      `yaml:"color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadWallSpec() (*WallSpec, error) {
	spec, err := LoadSpec[WallSpec]("wall.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name            string        `yaml:"name"`
	Transform       TransformSpec `yaml:"transform"`
	Zoom            float64       `yaml:"zoom"`
	PanSpeed        float64       `yaml:"pan_speed"`
	FollowLerp      float64       `yaml:"follow_lerp"`
	RecenterSeconds float64       `yaml:"recenter_seconds"`
	Background      *YAMLColor    `yaml:"background"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
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

// ColliderSpec describes a Chipmunk collider. Shape is one of ball, cuboid
// or capsule; Body is dynamic (default) or static.
type ColliderSpec struct {
	Shape         string  `yaml:"shape"`
	Body          string  `yaml:"body"`
	Radius        float64 `yaml:"radius"`
	HalfWidth     float64 `yaml:"half_width"`
	HalfHeight    float64 `yaml:"half_height"`
	HalfLength    float64 `yaml:"half_length"`
	Mass          float64 `yaml:"mass"`
	Friction      float64 `yaml:"friction"`
	Sensor        bool    `yaml:"sensor"`
	FixedRotation bool    `yaml:"fixed_rotation"`
}

type SpriteSpec struct {
	Image     string  `yaml:"image"`
	UseSource bool    `yaml:"use_source"`
	OriginX   float64 `yaml:"origin_x"`
	OriginY   float64 `yaml:"origin_y"`
}

type AnimationSpec struct {
	Sheet   string                      `yaml:"sheet"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
	Playing bool                        `yaml:"playing"`
}

type AnimationDefSpec struct {
	Name       string  `yaml:"name"`
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
