// preview draws every game texture through the sprite renderer, each one
// spinning about its center and tinted with a brick color, next to a
// miniature of a level. It is handy for checking shader, texture and
// palette edits without playing.
//
// Usage:
//
//	preview [--level name] [--speed deg/s]
package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/milk9111/breakout/assets"
	"github.com/milk9111/breakout/levels"
	"github.com/milk9111/breakout/obj"
	"github.com/milk9111/breakout/prefabs"
	"github.com/milk9111/breakout/render"
	"github.com/milk9111/breakout/resource"
)

const (
	screenSize = 512
	cellSize   = 96
	cellGap    = 24
)

var (
	flagLevel string
	flagSpeed float32
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "preview",
	Short:        "Preview textures and a level through the sprite renderer",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPreview,
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", "one.lvl", "level to show in miniature")
	rootCmd.Flags().Float32Var(&flagSpeed, "speed", 90, "spin speed in degrees per second")
}

type sprite struct {
	tex   *resource.Texture
	color mgl32.Vec3
}

type previewGame struct {
	renderer *render.SpriteRenderer
	sprites  []sprite
	cells    []mgl32.Vec2
	level    *obj.Level
	levelPos mgl32.Vec2
	tick     int
	speed    float32
}

func (g *previewGame) Update() error {
	g.tick++
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	frame := g.renderer.Frame(screen)
	angle := spinAngle(g.tick, g.speed, ebiten.TPS())
	for i, s := range g.sprites {
		frame.DrawSprite(s.tex, g.cells[i], mgl32.Vec2{cellSize, cellSize}, angle, s.color)
	}

	// the level is laid out at the origin, so draw it through an offset
	g.level.Draw(offsetRenderer{frame, g.levelPos})
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

// offsetRenderer shifts every sprite by off.
type offsetRenderer struct {
	obj.Renderer
	off mgl32.Vec2
}

func (r offsetRenderer) DrawSprite(tex *resource.Texture, position, size mgl32.Vec2, rotate float32, color mgl32.Vec3) {
	r.Renderer.DrawSprite(tex, position.Add(r.off), size, rotate, color)
}

// spinAngle is the rotation in degrees after tick ticks at speed degrees
// per second, wrapped to [0,360).
func spinAngle(tick int, speed float32, tps int) float32 {
	if tps <= 0 {
		return 0
	}
	deg := float32(tick) * speed / float32(tps)
	deg -= 360 * float32(int(deg/360))
	if deg < 0 {
		deg += 360
	}
	return deg
}

// gridCells returns the top-left corners of n cells laid out in rows that
// fit within width.
func gridCells(n int, width, cell, gap float32) []mgl32.Vec2 {
	cols := int((width - gap) / (cell + gap))
	if cols < 1 {
		cols = 1
	}
	cells := make([]mgl32.Vec2, n)
	for i := range cells {
		col, row := i%cols, i/cols
		cells[i] = mgl32.Vec2{
			gap + float32(col)*(cell+gap),
			gap + float32(row)*(cell+gap),
		}
	}
	return cells
}

func runPreview(cmd *cobra.Command, args []string) error {
	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := prefabs.LoadBundle("")
	if err != nil {
		return err
	}

	cache := resource.NewCache(resource.NewEbitenBackend(assets.Overlay{}), log)
	sh := cfg.Game.Shader
	shader, err := cache.LoadShader(sh.Vertex, sh.Fragment, sh.Name)
	if err != nil {
		return err
	}

	textures := []prefabs.TextureSpec{
		{Name: obj.BlockTexture, Path: obj.BlockTexturePath},
		{Name: obj.SolidBlockTexture, Path: obj.SolidBlockTexturePath},
		cfg.Paddle.Texture,
		cfg.Ball.Texture,
		cfg.Game.Background,
	}
	g := &previewGame{
		renderer: render.NewSpriteRenderer(shader),
		speed:    flagSpeed,
	}
	defer g.renderer.Close()

	for i, spec := range textures {
		tex, err := cache.LoadTexture(spec.Path, spec.Name)
		if err != nil {
			return err
		}
		// cycle through the brick palette for tints
		kind, ok := obj.TileKindFor(uint32(i%5 + 1))
		if !ok {
			kind.Color = mgl32.Vec3{1, 1, 1}
		}
		g.sprites = append(g.sprites, sprite{tex: tex, color: kind.Color})
	}
	g.cells = gridCells(len(g.sprites), screenSize, cellSize, cellGap)

	g.level = obj.NewLevel(cache, log)
	grid, err := levels.LoadGrid(flagLevel)
	if err != nil {
		return err
	}
	if err := g.level.LoadGrid(grid, screenSize-2*cellGap, screenSize/4); err != nil {
		return fmt.Errorf("preview: level %s: %w", flagLevel, err)
	}
	defer g.level.Release()
	g.levelPos = mgl32.Vec2{cellGap, screenSize - screenSize/4 - cellGap}

	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("breakout preview")
	return ebiten.RunGame(g)
}
