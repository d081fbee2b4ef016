package obj

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/breakout/levels"
	"github.com/milk9111/breakout/resource"
	"go.uber.org/zap"
)

// Texture names and asset paths used for bricks.
const (
	BlockTexture          = "block"
	BlockTexturePath      = "textures/block.png"
	SolidBlockTexture     = "block_solid"
	SolidBlockTexturePath = "textures/block_solid.png"
)

// TileKind describes the brick a tile code produces.
type TileKind struct {
	Solid bool
	Color mgl32.Vec3
}

var tileKinds = map[uint32]TileKind{
	1: {Solid: true, Color: mgl32.Vec3{0.8, 0.8, 0.7}},
	2: {Color: mgl32.Vec3{0.2, 0.6, 1.0}},
	3: {Color: mgl32.Vec3{0.0, 0.7, 0.0}},
	4: {Color: mgl32.Vec3{0.8, 0.8, 0.4}},
	5: {Color: mgl32.Vec3{1.0, 0.5, 0.0}},
}

// TileKindFor looks up a tile code. Codes without a brick, including 0,
// report false.
func TileKindFor(code uint32) (TileKind, bool) {
	kind, ok := tileKinds[code]
	return kind, ok
}

// Level is the set of bricks built from a tile grid.
type Level struct {
	cache *resource.Cache
	log   *zap.Logger

	bricks []*GameObject

	// last grid and pixel rectangle, kept for Reset
	grid          levels.Grid
	width, height float32
}

func NewLevel(cache *resource.Cache, log *zap.Logger) *Level {
	if log == nil {
		log = zap.NewNop()
	}
	return &Level{cache: cache, log: log}
}

// Load replaces the level's bricks with those decoded from r, laid out
// over a width x height pixel rectangle.
func (l *Level) Load(r io.Reader, width, height float32) error {
	l.clear()

	grid, err := levels.Decode(r)
	if err != nil {
		return err
	}
	return l.LoadGrid(grid, width, height)
}

// LoadFile loads a level file from disk.
func (l *Level) LoadFile(path string, width, height float32) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("obj: open level %s: %w", path, err)
	}
	defer f.Close()

	if err := l.Load(f, width, height); err != nil {
		return fmt.Errorf("obj: load level %s: %w", path, err)
	}
	return nil
}

// LoadFS loads a level file from fsys.
func (l *Level) LoadFS(fsys fs.FS, name string, width, height float32) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("obj: open level %s: %w", name, err)
	}
	defer f.Close()

	if err := l.Load(f, width, height); err != nil {
		return fmt.Errorf("obj: load level %s: %w", name, err)
	}
	return nil
}

// LoadGrid builds bricks from an already decoded grid. Tiles map linearly
// onto the pixel rectangle whatever the grid's aspect ratio.
func (l *Level) LoadGrid(grid levels.Grid, width, height float32) error {
	l.clear()
	if grid.Height() == 0 || grid.Width() == 0 {
		return levels.ErrEmptyGrid
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("obj: level area must be positive, got %vx%v", width, height)
	}

	unitWidth := width / float32(grid.Width())
	unitHeight := height / float32(grid.Height())
	size := mgl32.Vec2{unitWidth, unitHeight}

	for y, row := range grid {
		if len(row) != grid.Width() {
			l.clear()
			return fmt.Errorf("%w: row %d", levels.ErrRaggedGrid, y)
		}
		for x, code := range row {
			kind, ok := tileKinds[code]
			if !ok {
				continue
			}

			tex, err := l.brickTexture(kind.Solid)
			if err != nil {
				l.clear()
				return err
			}

			position := mgl32.Vec2{unitWidth * float32(x), unitHeight * float32(y)}
			l.bricks = append(l.bricks, NewGameObject(position, size, mgl32.Vec2{}, kind.Color, 0, tex, kind.Solid))
		}
	}

	l.grid = grid
	l.width, l.height = width, height
	l.log.Debug("level built",
		zap.Int("cols", grid.Width()),
		zap.Int("rows", grid.Height()),
		zap.Int("bricks", len(l.bricks)),
		zap.Int("destructible", l.Remaining()))
	return nil
}

// Reset rebuilds the bricks from the last loaded grid, undoing any
// destruction.
func (l *Level) Reset() error {
	if l.grid == nil {
		return levels.ErrEmptyGrid
	}
	return l.LoadGrid(l.grid, l.width, l.height)
}

// Release drops every brick's texture reference and forgets the grid.
func (l *Level) Release() {
	l.clear()
	l.grid = nil
}

func (l *Level) brickTexture(solid bool) (*resource.Texture, error) {
	if solid {
		return l.cache.LoadTexture(SolidBlockTexturePath, SolidBlockTexture)
	}
	return l.cache.LoadTexture(BlockTexturePath, BlockTexture)
}

func (l *Level) clear() {
	for _, b := range l.bricks {
		b.Release()
	}
	l.bricks = nil
}

// Bricks returns the bricks in row-major order.
func (l *Level) Bricks() []*GameObject {
	return l.bricks
}

// Remaining counts destructible bricks that are still standing.
func (l *Level) Remaining() int {
	n := 0
	for _, b := range l.bricks {
		if !b.IsSolid() && !b.IsDestroyed() {
			n++
		}
	}
	return n
}

// IsComplete reports whether any destructible brick is still standing.
// Despite the name it is true while the level is unfinished and false
// once it is cleared; callers negate it to detect a win.
func (l *Level) IsComplete() bool {
	for _, b := range l.bricks {
		if !b.IsSolid() && !b.IsDestroyed() {
			return true
		}
	}
	return false
}

// Draw renders every brick that has not been destroyed.
func (l *Level) Draw(r Renderer) {
	for _, b := range l.bricks {
		if !b.IsDestroyed() {
			b.Draw(r)
		}
	}
}
