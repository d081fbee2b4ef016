// breakout is a brick-breaking arcade game.
//
// Usage:
//
//	breakout [flags]
//
// Flags:
//
//	--config <path>  - yaml file overriding the built-in game, paddle and ball specs
//	--level <n>      - level to start on (1-based)
//	--debug          - colored debug logging and an FPS overlay
//	--watch          - reload levels/ and prefabs/ when they change on disk
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/milk9111/breakout/assets"
	"github.com/milk9111/breakout/prefabs"
	"github.com/milk9111/breakout/resource"
)

var (
	flagConfig string
	flagLevel  int
	flagDebug  bool
	flagWatch  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Break every brick with a bouncing ball",
	Long: `Move the paddle with A/D or the arrow keys and launch the ball with SPACE.
Clear every destructible brick to finish a level, then press 1-4 to pick the next.
ESC pauses, F12 quits.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "yaml file overriding the built-in specs")
	rootCmd.Flags().IntVar(&flagLevel, "level", 1, "level to start on (1-based)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging and overlay")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload levels and specs when they change on disk")
}

func runGame(cmd *cobra.Command, args []string) error {
	log, err := newLogger(flagDebug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := prefabs.LoadBundle(flagConfig)
	if err != nil {
		log.Error("load config", zap.String("path", flagConfig), zap.Error(err))
		return err
	}

	cache := resource.NewCache(resource.NewEbitenBackend(assets.Overlay{}), log)
	game, err := NewGame(cfg, cache, log)
	if err != nil {
		log.Error("load game", zap.Error(err))
		return err
	}
	defer game.Close()

	game.configPath = flagConfig
	game.debug = flagDebug
	if flagLevel != 1 {
		if err := game.SelectLevel(flagLevel - 1); err != nil {
			log.Error("start level", zap.Int("level", flagLevel), zap.Error(err))
			return err
		}
	}

	if flagWatch {
		w, err := prefabs.NewWatcher("levels", "prefabs")
		if err != nil {
			log.Warn("file watching disabled", zap.Error(err))
		} else {
			defer w.Close()
			game.SetWatcher(w)
		}
	}

	game.pauseUI = NewPauseUI(game)

	ebiten.SetWindowSize(cfg.Game.Width, cfg.Game.Height)
	ebiten.SetWindowTitle(cfg.Game.Title)
	ebiten.SetTPS(cfg.Game.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Error("run game", zap.Error(err))
		return err
	}
	return nil
}
