package flappy

import "math/rand"

// Spawner creates pipe pairs at the right edge of the board with a randomized
// vertical gap.
type Spawner struct {
	rng          *rand.Rand
	boardWidth   int
	pipeWidth    int
	pipeHeight   int
	openingSpace int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, boardWidth, pipeWidth, pipeHeight, openingSpace int) *Spawner {
	return &Spawner{
		rng:          rng,
		boardWidth:   boardWidth,
		pipeWidth:    pipeWidth,
		pipeHeight:   pipeHeight,
		openingSpace: openingSpace,
	}
}

// Spawn returns a new top/bottom pair. The top pipe's y lies in
// [-3/4 pipeHeight, -1/4 pipeHeight] so a varying part of it hangs into the
// board; the bottom pipe starts openingSpace below the top pipe's lower edge.
func (s *Spawner) Spawn() (top, bottom Pipe) {
	topY := int(float64(-s.pipeHeight/4) - s.rng.Float64()*float64(s.pipeHeight/2))

	top = Pipe{
		Kind:   PipeTop,
		X:      s.boardWidth,
		Y:      topY,
		Width:  s.pipeWidth,
		Height: s.pipeHeight,
	}
	bottom = Pipe{
		Kind:   PipeBottom,
		X:      s.boardWidth,
		Y:      topY + s.pipeHeight + s.openingSpace,
		Width:  s.pipeWidth,
		Height: s.pipeHeight,
	}
	return top, bottom
}
