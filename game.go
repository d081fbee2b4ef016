package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/breakout/levels"
	"github.com/milk9111/breakout/obj"
	"github.com/milk9111/breakout/prefabs"
	"github.com/milk9111/breakout/render"
	"github.com/milk9111/breakout/resource"
	"go.uber.org/zap"
)

// GameState is the coarse phase of the game.
type GameState int

const (
	GameActive GameState = iota
	GameMenu
	GameWin
)

func (s GameState) String() string {
	switch s {
	case GameActive:
		return "active"
	case GameMenu:
		return "menu"
	case GameWin:
		return "win"
	default:
		return fmt.Sprintf("GameState(%d)", int(s))
	}
}

const (
	// paddleDeflection scales how far off-center paddle hits bend the ball.
	paddleDeflection = 2
	levelFadeTicks   = 20
)

type Game struct {
	cfg        *prefabs.Bundle
	configPath string
	log        *zap.Logger
	cache      *resource.Cache

	renderer   *render.SpriteRenderer
	background *resource.Texture
	paddle     *obj.GameObject
	ball       *obj.Ball
	levels     []*obj.Level
	level      int
	state      GameState

	width, height float32
	dt            float32

	input   *Input
	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	hud     *hud
	fade    *fade
	paused  bool
	quit    bool
	debug   bool
	frames  int
}

// NewGame loads every resource the game needs through cache and builds the
// paddle, ball and levels described by cfg.
func NewGame(cfg *prefabs.Bundle, cache *resource.Cache, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}

	g := &Game{
		cfg:    cfg,
		log:    log,
		cache:  cache,
		width:  float32(cfg.Game.Width),
		height: float32(cfg.Game.Height),
		dt:     1 / float32(cfg.Game.TPS),
		input:  NewInput(),
		hud:    newHUD(),
		fade:   newFade(levelFadeTicks),
	}

	if err := g.load(); err != nil {
		g.Close()
		return nil, err
	}

	log.Info("game ready",
		zap.String("title", cfg.Game.Title),
		zap.Int("width", cfg.Game.Width),
		zap.Int("height", cfg.Game.Height),
		zap.Int("levels", len(g.levels)))
	return g, nil
}

func (g *Game) load() error {
	sh := g.cfg.Game.Shader
	shader, err := g.cache.LoadShader(sh.Vertex, sh.Fragment, sh.Name)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.renderer = render.NewSpriteRenderer(shader)

	bg, err := g.cache.LoadTexture(g.cfg.Game.Background.Path, g.cfg.Game.Background.Name)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.background = bg.Acquire()

	paddleTex, err := g.cache.LoadTexture(g.cfg.Paddle.Texture.Path, g.cfg.Paddle.Texture.Name)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.paddle = obj.NewGameObject(
		g.paddleStart(),
		mgl32.Vec2{g.cfg.Paddle.Width, g.cfg.Paddle.Height},
		mgl32.Vec2{},
		g.cfg.Paddle.Color.Vec3,
		0,
		paddleTex,
		false,
	)

	ballTex, err := g.cache.LoadTexture(g.cfg.Ball.Texture.Path, g.cfg.Ball.Texture.Name)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.ball = obj.NewBall(g.ballStart(), g.cfg.Ball.Radius, g.cfg.Ball.Velocity.Vec2(), ballTex)
	g.ball.SetColor(g.cfg.Ball.Color.Vec3)

	for _, name := range g.cfg.Game.Levels {
		lvl := obj.NewLevel(g.cache, g.log)
		if err := g.loadLevel(lvl, name); err != nil {
			return err
		}
		g.levels = append(g.levels, lvl)
	}
	return nil
}

// loadLevel decodes name and rebuilds lvl from it. A level that fails to
// decode is left untouched.
func (g *Game) loadLevel(lvl *obj.Level, name string) error {
	grid, err := levels.LoadGrid(name)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if err := lvl.LoadGrid(grid, g.width, g.height*g.cfg.Game.LevelHeightRatio); err != nil {
		return fmt.Errorf("game: build level %s: %w", name, err)
	}
	return nil
}

// Close releases the game's texture and shader references.
func (g *Game) Close() {
	for _, lvl := range g.levels {
		lvl.Release()
	}
	g.levels = nil
	if g.ball != nil {
		g.ball.Release()
	}
	if g.paddle != nil {
		g.paddle.Release()
	}
	g.background.Release()
	g.background = nil
	g.renderer.Close()
}

func (g *Game) State() GameState              { return g.state }
func (g *Game) Paddle() *obj.GameObject       { return g.paddle }
func (g *Game) Ball() *obj.Ball               { return g.ball }
func (g *Game) CurrentLevel() *obj.Level      { return g.levels[g.level] }
func (g *Game) LevelIndex() int               { return g.level }
func (g *Game) Paused() bool                  { return g.paused }
func (g *Game) SetWatcher(w *prefabs.Watcher) { g.watcher = w }

func (g *Game) paddleStart() mgl32.Vec2 {
	return mgl32.Vec2{g.width/2 - g.cfg.Paddle.Width/2, g.height - g.cfg.Paddle.Height}
}

func (g *Game) ballStart() mgl32.Vec2 {
	r := g.cfg.Ball.Radius
	return g.paddleStart().Add(mgl32.Vec2{g.cfg.Paddle.Width/2 - r, -2 * r})
}

// stickBall keeps a stuck ball centered on top of the paddle.
func (g *Game) stickBall() {
	p := g.paddle.Position()
	r := g.ball.Radius()
	g.ball.SetPosition(mgl32.Vec2{p.X() + g.paddle.Size().X()/2 - r, p.Y() - 2*r})
}

// resetPlayer puts the paddle back in the middle and sticks a fresh ball
// on it.
func (g *Game) resetPlayer() {
	g.paddle.SetPosition(g.paddleStart())
	g.ball.Reset(g.ballStart(), g.cfg.Ball.Velocity.Vec2(), true)
}

// SelectLevel rebuilds level idx (zero based), resets the paddle and ball
// and makes the game active.
func (g *Game) SelectLevel(idx int) error {
	if idx < 0 || idx >= len(g.levels) {
		return fmt.Errorf("game: level %d out of range [1,%d]", idx+1, len(g.levels))
	}
	if err := g.levels[idx].Reset(); err != nil {
		return fmt.Errorf("game: reset level %d: %w", idx+1, err)
	}
	g.level = idx
	g.resetPlayer()
	g.state = GameActive
	g.fade.Start()
	g.log.Info("level selected",
		zap.Int("level", idx+1),
		zap.Int("bricks", g.levels[idx].Remaining()))
	return nil
}

func (g *Game) TogglePause() {
	g.paused = !g.paused
	g.log.Debug("pause toggled", zap.Bool("paused", g.paused))
}

// ProcessInput applies one key action. Paddle movement is clamped so at
// most half the paddle leaves either side of the window.
func (g *Game) ProcessInput(dt float32, key Key) {
	if key == KeyPause {
		g.TogglePause()
		return
	}
	if g.paused {
		return
	}

	if g.state != GameActive {
		if idx, ok := key.LevelIndex(); ok {
			if err := g.SelectLevel(idx); err != nil {
				g.log.Warn("select level", zap.Error(err))
			}
		}
		return
	}

	half := g.paddle.Size().X() / 2
	step := g.cfg.Paddle.Speed * dt
	pos := g.paddle.Position()

	switch key {
	case KeyLeft:
		pos[0] = mgl32.Clamp(pos.X()-step, -half, g.width-half)
	case KeyRight:
		pos[0] = mgl32.Clamp(pos.X()+step, -half, g.width-half)
	case KeyLaunch:
		g.ball.Launch()
	}

	g.paddle.SetPosition(pos)
	if g.ball.IsStuck() {
		g.stickBall()
	}
}

// Tick advances the simulation by dt while the game is active.
func (g *Game) Tick(dt float32) {
	if g.state != GameActive {
		return
	}

	if g.ball.IsStuck() {
		g.stickBall()
	}
	g.ball.Move(dt, g.width)
	g.resolveCollisions()

	if g.ball.Position().Y() >= g.height {
		g.log.Debug("ball lost", zap.Int("level", g.level+1))
		g.resetPlayer()
	}

	if !g.CurrentLevel().IsComplete() {
		g.state = GameWin
		g.log.Info("level cleared", zap.Int("level", g.level+1))
	}
}

func (g *Game) resolveCollisions() {
	for _, brick := range g.CurrentLevel().Bricks() {
		if brick.IsDestroyed() || !g.ball.CheckCollision(brick) {
			continue
		}
		if !brick.IsSolid() {
			brick.SetDestroyed()
		}
		bounceOff(g.ball, brick.Bounds())
	}

	if !g.ball.IsStuck() && g.ball.Velocity().Y() > 0 && g.ball.CheckCollision(g.paddle) {
		g.deflectFromPaddle()
	}
}

// bounceOff pushes the ball out of box along the axis of least
// penetration and reflects its velocity on that axis if it was heading
// into the box.
func bounceOff(ball *obj.Ball, box obj.AABB) {
	dx, dy := obj.Penetration(ball.Bounds(), box)
	pos, vel := ball.Position(), ball.Velocity()

	if mgl32.Abs(dx) < mgl32.Abs(dy) {
		pos[0] += dx
		if (dx < 0 && vel.X() > 0) || (dx > 0 && vel.X() < 0) {
			vel[0] = -vel.X()
		}
	} else {
		pos[1] += dy
		if (dy < 0 && vel.Y() > 0) || (dy > 0 && vel.Y() < 0) {
			vel[1] = -vel.Y()
		}
	}

	ball.SetPosition(pos)
	ball.SetVelocity(vel)
}

// deflectFromPaddle sends the ball back up. The further from the paddle's
// center it lands, the more horizontal speed it gets; overall speed is
// kept.
func (g *Game) deflectFromPaddle() {
	paddlePos, paddleSize := g.paddle.Position(), g.paddle.Size()
	center := paddlePos.X() + paddleSize.X()/2
	distance := g.ball.Position().X() + g.ball.Radius() - center
	percentage := distance / (paddleSize.X() / 2)

	old := g.ball.Velocity()
	vel := mgl32.Vec2{
		g.cfg.Ball.Velocity.X * percentage * paddleDeflection,
		-mgl32.Abs(old.Y()),
	}
	g.ball.SetVelocity(vel.Normalize().Mul(old.Len()))

	pos := g.ball.Position()
	pos[1] = paddlePos.Y() - g.ball.Size().Y()
	g.ball.SetPosition(pos)
}

// pollWatcher applies pending file change notifications without blocking.
func (g *Game) pollWatcher() {
	for g.watcher != nil {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("watch", zap.Error(err))
		default:
			return
		}
	}
}

// reload rebuilds the level stored at path, or re-reads the tuning values
// of the paddle and ball when a spec file changed.
func (g *Game) reload(path string) {
	if !prefabs.IsLevelFile(path) {
		g.reloadTuning(path)
		return
	}

	base := filepath.Base(path)
	for i, name := range g.cfg.Game.Levels {
		if levelFileName(name) != base {
			continue
		}
		if err := g.loadLevel(g.levels[i], name); err != nil {
			g.log.Warn("reload level", zap.String("path", path), zap.Error(err))
			continue
		}
		g.log.Info("level reloaded", zap.String("level", name))
		if i == g.level {
			g.resetPlayer()
			g.state = GameActive
		}
	}
}

// reloadTuning picks up speed, velocity and color edits. Sizes and the
// level list need a restart.
func (g *Game) reloadTuning(path string) {
	b, err := prefabs.LoadBundle(g.configPath)
	if err != nil {
		g.log.Warn("reload config", zap.String("path", path), zap.Error(err))
		return
	}
	g.cfg.Paddle.Speed = b.Paddle.Speed
	g.cfg.Paddle.Color = b.Paddle.Color
	g.cfg.Ball.Velocity = b.Ball.Velocity
	g.cfg.Ball.Color = b.Ball.Color
	g.paddle.SetColor(b.Paddle.Color.Vec3)
	g.ball.SetColor(b.Ball.Color.Vec3)
	g.log.Info("config reloaded", zap.String("path", path))
}

func levelFileName(name string) string {
	base := filepath.Base(filepath.FromSlash(name))
	if filepath.Ext(base) == "" {
		base += ".lvl"
	}
	return strings.ToLower(base)
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	if g.input.Quit || g.quit {
		return ebiten.Termination
	}

	g.pollWatcher()

	for _, key := range g.input.Keys() {
		g.ProcessInput(g.dt, key)
	}

	if g.paused {
		if g.pauseUI != nil {
			g.pauseUI.Update()
		}
		return nil
	}

	if g.fade.Active() {
		g.fade.Update()
		return nil
	}

	g.Tick(g.dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.renderer.Frame(screen)
	frame.DrawSprite(g.background, mgl32.Vec2{}, mgl32.Vec2{g.width, g.height}, 0, mgl32.Vec3{1, 1, 1})
	g.CurrentLevel().Draw(frame)
	g.paddle.Draw(frame)
	g.ball.Draw(frame)
	g.fade.Draw(screen)

	g.hud.Draw(screen, g)

	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Game.Width, g.cfg.Game.Height
}
