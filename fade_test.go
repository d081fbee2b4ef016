package main

import "testing"

func TestFade(t *testing.T) {
	f := newFade(4)
	if f.Active() || f.Alpha() != 0 {
		t.Fatalf("new fade should be idle")
	}

	f.Start()
	want := []float32{1, 0.75, 0.5, 0.25, 0, 0}
	for i, w := range want {
		if got := f.Alpha(); got != w {
			t.Fatalf("tick %d: alpha = %v, want %v", i, got, w)
		}
		f.Update()
	}
	if f.Active() {
		t.Fatalf("fade should be done")
	}
}

func TestFadeZeroDuration(t *testing.T) {
	f := newFade(0)
	f.Start()
	if f.Active() || f.Alpha() != 0 {
		t.Fatalf("zero-length fade should never show")
	}
}

func TestSelectLevelStartsFade(t *testing.T) {
	g, _ := newTestGame(t)
	if g.fade.Active() {
		t.Fatalf("fade should be idle at start")
	}
	if err := g.SelectLevel(2); err != nil {
		t.Fatalf("SelectLevel: %v", err)
	}
	if !g.fade.Active() || g.fade.Alpha() != 1 {
		t.Fatalf("selecting a level should start the fade")
	}
}
