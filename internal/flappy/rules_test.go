package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		score, level int
	}{
		{0, 1},
		{4, 1},
		{5, 2},
		{14, 2},
		{15, 3},
		{1000, 3},
	}

	for _, tc := range tests {
		if got := Level(tc.score); got != tc.level {
			t.Errorf("Level(%d) = %d, expected %d", tc.score, got, tc.level)
		}
	}
}

func TestHasCleared(t *testing.T) {
	s := config.DefaultSettings()
	b := NewBird(s.Bird) // X = 60, pipe width 80
	p := NewPipePair(s, fixedRand(0))

	tests := []struct {
		name   string
		x      float64
		passed bool
		want   bool
	}{
		{"trailing edge right of bird", 0, false, false},
		{"trailing edge on bird", -20, false, false},
		{"trailing edge left of bird", -20.5, false, true},
		{"already scored", -50, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p.X = tc.x
			p.Passed = tc.passed
			if got := HasCleared(p, b); got != tc.want {
				t.Errorf("HasCleared() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestCollides(t *testing.T) {
	s := config.DefaultSettings()
	height := float64(s.Screen.Height)

	p := NewPipePair(s, fixedRand(0))
	p.GapTop = 300 // gap spans [100, 300]

	tests := []struct {
		name  string
		pipeX float64
		birdY float64
		want  bool
	}{
		{"pipe far away", 300, 500, false},
		{"centered in gap", 40, 200, false},
		{"clipping top pipe", 40, 120, true},
		{"clipping bottom pipe", 40, 290, true},
		{"top of world", 300, 0, true},
		{"above world", 300, -3, true},
		{"bottom of world", 300, height, true},
		{"just inside bottom", 300, height - 0.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBird(s.Bird)
			b.Y = tc.birdY
			p.X = tc.pipeX
			if got := Collides(b, p, height); got != tc.want {
				t.Errorf("Collides() = %v, expected %v", got, tc.want)
			}
		})
	}
}
