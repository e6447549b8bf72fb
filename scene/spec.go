// Package scene decodes compiled scene documents and instantiates the
// simulation world from them. Parsing the authoring language is someone
// else's job; these documents are the already-structured output of that
// producer.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is a full compiled scene document.
type Spec struct {
	Name     string       `yaml:"name"`
	World    WorldSpec    `yaml:"world"`
	Camera   CameraSpec   `yaml:"camera"`
	Tilemap  *TilemapSpec `yaml:"tilemap"`
	Entities []EntitySpec `yaml:"entities"`
}

// WorldSpec sets the world pixel bounds and gravity constant.
type WorldSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"`
}

// CameraSpec configures the scene camera.
type CameraSpec struct {
	ViewportW float64 `yaml:"viewport_w"`
	ViewportH float64 `yaml:"viewport_h"`
	Smoothing float64 `yaml:"smoothing"`
}

// TilemapSpec is the scene tilemap: named ordered tile layers plus the
// object layer.
type TilemapSpec struct {
	Width    int          `yaml:"width"`
	Height   int          `yaml:"height"`
	TileSize int          `yaml:"tile_size"`
	Layers   []LayerSpec  `yaml:"layers"`
	Objects  []ObjectSpec `yaml:"objects"`
}

// LayerSpec is one flat row-major tile layer.
type LayerSpec struct {
	Name  string `yaml:"name"`
	Tiles []int  `yaml:"tiles"`
}

// ObjectSpec is a typed object-layer entry.
type ObjectSpec struct {
	Type  string            `yaml:"type"`
	Name  string            `yaml:"name"`
	X     float64           `yaml:"x"`
	Y     float64           `yaml:"y"`
	W     float64           `yaml:"w"`
	H     float64           `yaml:"h"`
	Props map[string]string `yaml:"props"`
}

// EntitySpec is one entity with its initial component values.
type EntitySpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Sprite    *SpriteSpec   `yaml:"sprite"`
	Physics   *PhysicsSpec  `yaml:"physics"`
	Collider  *ColliderSpec `yaml:"collider"`
	Animation bool          `yaml:"animation"`
	Behavior  *BehaviorSpec `yaml:"behavior"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	W        float64 `yaml:"w"`
	H        float64 `yaml:"h"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteSpec struct {
	Image string `yaml:"image"`
	Color string `yaml:"color"`
	Layer int    `yaml:"layer"`
}

type PhysicsSpec struct {
	Mode     string  `yaml:"mode"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type ColliderSpec struct {
	Shape  string  `yaml:"shape"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	Sensor bool    `yaml:"sensor"`
}

// BehaviorSpec names one of the closed behavior variants and carries its
// author-supplied, read-only properties. Fields irrelevant to the named
// variant are ignored.
type BehaviorSpec struct {
	Name         string      `yaml:"name"`
	Speed        float64     `yaml:"speed"`
	Text         string      `yaml:"text"`
	Waypoints    []PointSpec `yaml:"waypoints"`
	Pause        float64     `yaml:"pause"`
	Range        float64     `yaml:"range"`
	Target       string      `yaml:"target"`
	Script       string      `yaml:"script"`
	CollisionIDs []int       `yaml:"collision_ids"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Load reads and decodes a scene document from path.
func Load(path string) (*Spec, error) {
	return LoadSpec[*Spec](path)
}

// LoadSpec reads and decodes any YAML spec document from path.
func LoadSpec[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("scene: load %s: %w", path, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("scene: unmarshal %s: %w", path, err)
	}
	return spec, nil
}
