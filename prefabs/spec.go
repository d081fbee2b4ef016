package prefabs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
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

type TextureSpec struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type ShaderSpec struct {
	Name     string `yaml:"name"`
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type VecSpec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

func (v VecSpec) Vec2() mgl32.Vec2 {
	return mgl32.Vec2{v.X, v.Y}
}

type GameSpec struct {
	Name             string      `yaml:"name"`
	Title            string      `yaml:"title"`
	Width            int         `yaml:"width"`
	Height           int         `yaml:"height"`
	TPS              int         `yaml:"tps"`
	LevelHeightRatio float32     `yaml:"level_height_ratio"`
	Levels           []string    `yaml:"levels"`
	Background       TextureSpec `yaml:"background"`
	Shader           ShaderSpec  `yaml:"shader"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PaddleSpec struct {
	Name    string      `yaml:"name"`
	Width   float32     `yaml:"width"`
	Height  float32     `yaml:"height"`
	Speed   float32     `yaml:"speed"`
	Color   YAMLColor   `yaml:"color"`
	Texture TextureSpec `yaml:"texture"`
}

func LoadPaddleSpec() (*PaddleSpec, error) {
	spec, err := LoadSpec[PaddleSpec]("paddle.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BallSpec struct {
	Name     string      `yaml:"name"`
	Radius   float32     `yaml:"radius"`
	Velocity VecSpec     `yaml:"velocity"`
	Color    YAMLColor   `yaml:"color"`
	Texture  TextureSpec `yaml:"texture"`
}

func LoadBallSpec() (*BallSpec, error) {
	spec, err := LoadSpec[BallSpec]("ball.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// YAMLColor is a "#rrggbb" color decoded into [0,1] channels.
type YAMLColor struct {
	mgl32.Vec3
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (float32, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return float32(v) / 255, err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	c.Vec3 = mgl32.Vec3{r, g, b}
	return nil
}
