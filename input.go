package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key is a game action delivered to Game.ProcessInput.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyLaunch
	KeyPause
	KeyLevel1
	KeyLevel2
	KeyLevel3
	KeyLevel4
)

// LevelIndex reports which level a number key selects.
func (k Key) LevelIndex() (int, bool) {
	if k >= KeyLevel1 && k <= KeyLevel4 {
		return int(k - KeyLevel1), true
	}
	return 0, false
}

var levelKeys = [...]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// Input polls keyboard and gamepad state once per tick.
type Input struct {
	keys []Key
	// Quit is true on the frame F12 was pressed.
	Quit bool
}

func NewInput() *Input {
	return &Input{keys: make([]Key, 0, 4)}
}

// Update polls the devices. Movement keys are reported while held; the
// rest only on the frame they go down.
func (i *Input) Update() {
	i.keys = i.keys[:0]
	i.Quit = inpututil.IsKeyJustPressed(ebiten.KeyF12)

	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}

	launch := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	pause := inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	// Gamepad: left stick or d-pad moves, bottom face button launches,
	// start pauses.
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft) {
			moveX = -1
		} else if leftX > 0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight) {
			moveX = 1
		}
		launch = launch || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		pause = pause || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}

	switch {
	case moveX < 0:
		i.keys = append(i.keys, KeyLeft)
	case moveX > 0:
		i.keys = append(i.keys, KeyRight)
	}
	if launch {
		i.keys = append(i.keys, KeyLaunch)
	}
	if pause {
		i.keys = append(i.keys, KeyPause)
	}
	for n, k := range levelKeys {
		if inpututil.IsKeyJustPressed(k) {
			i.keys = append(i.keys, KeyLevel1+Key(n))
		}
	}
}

// Keys returns the actions polled by the last Update. The slice is reused.
func (i *Input) Keys() []Key {
	return i.keys
}
