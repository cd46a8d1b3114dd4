package main

import (
	"testing"

	"github.com/automoto/jeep-parallax/config"
	"github.com/automoto/jeep-parallax/scenes"
)

func TestLayoutIsFixed(t *testing.T) {
	g := &Game{}
	for _, size := range [][2]int{{800, 600}, {320, 200}, {1920, 1080}} {
		w, h := g.Layout(size[0], size[1])
		if w != config.C.Width || h != config.C.WindowHeight() {
			t.Fatalf("Layout(%d, %d) = %dx%d, want %dx%d", size[0], size[1], w, h, config.C.Width, config.C.WindowHeight())
		}
	}
}

func TestNewGameStartsLoading(t *testing.T) {
	g, err := NewGame()
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if _, ok := g.scene.(*scenes.LoadingScene); !ok {
		t.Fatalf("first scene = %T, want *scenes.LoadingScene", g.scene)
	}

	g.ChangeScene(scenes.NewErrorScene(g, nil))
	if _, ok := g.scene.(*scenes.ErrorScene); !ok {
		t.Fatalf("scene after change = %T", g.scene)
	}
}
