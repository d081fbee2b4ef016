// lvlcheck decodes level files and prints a brick summary for each.
//
// Usage:
//
//	lvlcheck <file.lvl>...
//	lvlcheck --embedded
//
// It exits non-zero on the first file that fails to decode.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/milk9111/breakout/levels"
	"github.com/milk9111/breakout/obj"
)

var flagEmbedded bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "lvlcheck <file.lvl>...",
	Short:        "Validate level files and summarize their bricks",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagEmbedded {
			return checkEmbedded(cmd.OutOrStdout())
		}
		if len(args) == 0 {
			return fmt.Errorf("no level files given")
		}
		return checkFiles(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flagEmbedded, "embedded", false, "check the levels built into the game")
}

// summary counts the tiles of one grid.
type summary struct {
	cols, rows   int
	destructible int
	solid        int
	empty        int
	unknown      int
}

func summarize(grid levels.Grid) summary {
	s := summary{cols: grid.Width(), rows: grid.Height()}
	for _, row := range grid {
		for _, code := range row {
			if code == 0 {
				s.empty++
				continue
			}
			kind, ok := obj.TileKindFor(code)
			switch {
			case !ok:
				s.unknown++
			case kind.Solid:
				s.solid++
			default:
				s.destructible++
			}
		}
	}
	return s
}

func (s summary) String() string {
	str := fmt.Sprintf("%dx%d  destructible=%d solid=%d empty=%d", s.cols, s.rows, s.destructible, s.solid, s.empty)
	if s.unknown > 0 {
		str += fmt.Sprintf(" unknown=%d", s.unknown)
	}
	if s.destructible == 0 {
		str += "  (nothing to clear)"
	}
	return str
}

func checkFiles(w io.Writer, paths []string) error {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		grid, err := levels.Decode(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(w, "%s: %s\n", path, summarize(grid))
	}
	return nil
}

func checkEmbedded(w io.Writer) error {
	for _, name := range levels.Default {
		grid, err := levels.LoadGrid(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", name, summarize(grid))
	}
	return nil
}
