package flappy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpawnPairGeometry(t *testing.T) {
	const (
		boardW       = 660
		pipeW        = 64
		pipeH        = 512
		openingSpace = 150
	)
	sp := NewSpawner(rand.New(rand.NewSource(7)), boardW, pipeW, pipeH, openingSpace)

	for i := 0; i < 500; i++ {
		top, bottom := sp.Spawn()

		assert.Equal(t, PipeTop, top.Kind)
		assert.Equal(t, PipeBottom, bottom.Kind)
		assert.Equal(t, pipeH+openingSpace, bottom.Y-top.Y)
		assert.GreaterOrEqual(t, top.Y, -pipeH/4-pipeH/2)
		assert.LessOrEqual(t, top.Y, -pipeH/4)

		for _, p := range []Pipe{top, bottom} {
			assert.Equal(t, boardW, p.X)
			assert.Equal(t, pipeW, p.Width)
			assert.Equal(t, pipeH, p.Height)
			assert.False(t, p.Passed)
		}
	}
}

func TestSpawnIsDeterministicForSeed(t *testing.T) {
	a := NewSpawner(rand.New(rand.NewSource(42)), 660, 64, 512, 150)
	b := NewSpawner(rand.New(rand.NewSource(42)), 660, 64, 512, 150)

	for i := 0; i < 20; i++ {
		ta, _ := a.Spawn()
		tb, _ := b.Spawn()
		assert.Equal(t, ta, tb)
	}
}

func TestSessionSpawnAppendsPair(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.SpawnPipes()
	s.SpawnPipes()

	pipes := s.Pipes()
	assert.Len(t, pipes, 4)
	assert.Equal(t, PipeTop, pipes[0].Kind)
	assert.Equal(t, PipeBottom, pipes[1].Kind)
	assert.Equal(t, PipeTop, pipes[2].Kind)
	assert.Equal(t, PipeBottom, pipes[3].Kind)
}
