package prefabs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bundle is the full game configuration.
type Bundle struct {
	Game   GameSpec   `yaml:"game"`
	Paddle PaddleSpec `yaml:"paddle"`
	Ball   BallSpec   `yaml:"ball"`
}

// LoadBundle loads the three specs and, when overridePath is set, decodes
// that file on top of them. The override only needs the keys it changes:
//
//	game:
//	  width: 1024
//	ball:
//	  radius: 8
func LoadBundle(overridePath string) (*Bundle, error) {
	game, err := LoadGameSpec()
	if err != nil {
		return nil, err
	}
	paddle, err := LoadPaddleSpec()
	if err != nil {
		return nil, err
	}
	ball, err := LoadBallSpec()
	if err != nil {
		return nil, err
	}
	b := &Bundle{Game: *game, Paddle: *paddle, Ball: *ball}

	if overridePath != "" {
		data, err := os.ReadFile(overridePath)
		if err != nil {
			return nil, fmt.Errorf("prefabs: read config %s: %w", overridePath, err)
		}
		if err := b.Merge(data); err != nil {
			return nil, fmt.Errorf("prefabs: parse config %s: %w", overridePath, err)
		}
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Merge decodes a yaml document over the current values. Lists are
// replaced, not appended to.
func (b *Bundle) Merge(data []byte) error {
	var probe struct {
		Game struct {
			Levels []string `yaml:"levels"`
		} `yaml:"game"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Game.Levels != nil {
		b.Game.Levels = nil
	}
	return yaml.Unmarshal(data, b)
}

// Validate rejects values the game cannot start with.
func (b *Bundle) Validate() error {
	var errs []error
	if b.Game.Width <= 0 || b.Game.Height <= 0 {
		errs = append(errs, fmt.Errorf("game size must be positive, got %dx%d", b.Game.Width, b.Game.Height))
	}
	if b.Game.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", b.Game.TPS))
	}
	if b.Game.LevelHeightRatio <= 0 || b.Game.LevelHeightRatio > 1 {
		errs = append(errs, fmt.Errorf("level_height_ratio must be in (0,1], got %v", b.Game.LevelHeightRatio))
	}
	if len(b.Game.Levels) == 0 {
		errs = append(errs, errors.New("at least one level is required"))
	}
	if b.Paddle.Width <= 0 || b.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %vx%v", b.Paddle.Width, b.Paddle.Height))
	}
	if b.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %v", b.Ball.Radius))
	}
	if len(errs) > 0 {
		return fmt.Errorf("prefabs: invalid config: %w", errors.Join(errs...))
	}
	return nil
}
