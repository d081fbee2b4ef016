package levels

import (
	"errors"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		want    Grid
		wantErr error
	}{
		{"two_by_two", "1 2\n0 3\n", Grid{{1, 2}, {0, 3}}, nil},
		{"tabs_and_spaces", "1\t 5  2\n4 0\t3", Grid{{1, 5, 2}, {4, 0, 3}}, nil},
		{"blank_lines_skipped", "\n1 1\n\n2 2\n\n", Grid{{1, 1}, {2, 2}}, nil},
		{"crlf", "1 2\r\n3 4\r\n", Grid{{1, 2}, {3, 4}}, nil},
		{"unknown_codes_kept", "9 42\n", Grid{{9, 42}}, nil},
		{"empty", "", nil, ErrEmptyGrid},
		{"whitespace_only", "  \n\t\n", nil, ErrEmptyGrid},
		{"ragged", "1 2 3\n1 2\n", nil, ErrRaggedGrid},
		{"negative", "1 -2\n", nil, ErrBadToken},
		{"word", "1 x\n", nil, ErrBadToken},
		{"float", "1.5 2\n", nil, ErrBadToken},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(c.src))
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Height() != c.want.Height() || got.Width() != c.want.Width() {
				t.Fatalf("got %dx%d grid, want %dx%d", got.Width(), got.Height(), c.want.Width(), c.want.Height())
			}
			for y := range c.want {
				for x := range c.want[y] {
					if got[y][x] != c.want[y][x] {
						t.Fatalf("tile (%d,%d) = %d, want %d", x, y, got[y][x], c.want[y][x])
					}
				}
			}
		})
	}
}

func TestLoadEmbeddedLevels(t *testing.T) {
	sizes := map[string][2]int{
		"one.lvl":   {15, 8},
		"two.lvl":   {15, 8},
		"three.lvl": {13, 9},
		"four.lvl":  {13, 6},
	}
	for _, name := range Default {
		t.Run(name, func(t *testing.T) {
			grid, err := LoadGrid(name)
			if err != nil {
				t.Fatalf("LoadGrid: %v", err)
			}
			want := sizes[name]
			if grid.Width() != want[0] || grid.Height() != want[1] {
				t.Fatalf("got %dx%d, want %dx%d", grid.Width(), grid.Height(), want[0], want[1])
			}
		})
	}
}

func TestCleanLevelPath(t *testing.T) {
	cases := map[string]string{
		"one":            "one.lvl",
		"one.lvl":        "one.lvl",
		"levels/two.lvl": "two.lvl",
		"":               "",
	}
	for in, want := range cases {
		if got := cleanLevelPath(in); got != want {
			t.Fatalf("cleanLevelPath(%q) = %q, want %q", in, got, want)
		}
	}
}
