package flappy

// Level thresholds: level 2 from 5 points, level 3 from 15.
const (
	levelTwoScore   = 5
	levelThreeScore = 15
)

// Level returns the display tier for a score.
func Level(score int) int {
	switch {
	case score < levelTwoScore:
		return 1
	case score < levelThreeScore:
		return 2
	default:
		return 3
	}
}

// HasCleared reports whether the pair's trailing edge is strictly left of the
// bird and the pair has not been scored yet.
func HasCleared(p PipePair, b Bird) bool {
	return !p.Passed && p.X+p.Width() < b.X
}

// Collides reports whether the bird hits either pipe or leaves the world
// through the top or the bottom.
func Collides(b Bird, p PipePair, worldHeight float64) bool {
	if b.Y <= 0 || b.Y >= worldHeight {
		return true
	}
	top, bottom := p.Rects()
	box := b.Box()
	return box.Intersects(top) || box.Intersects(bottom)
}
