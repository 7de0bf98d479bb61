package flappy

// step advances the simulation by one tick and reports whether the session
// ended. Order matters: gravity, then position, then per-pipe scroll, score
// and collision, then the off-field check.
func (s *Session) step() bool {
	over := false

	s.velocityY += s.cfg.Physics.Gravity
	s.bird.Y += s.velocityY
	if s.bird.Y < 0 {
		s.bird.Y = 0
	}

	birdRect := s.bird.Rect()
	for i := range s.pipes {
		p := &s.pipes[i]
		p.X += s.cfg.Pipes.ScrollVelocity

		if !p.Passed && s.bird.X > p.X+p.Width {
			p.Passed = true
			s.score += 0.5
		}

		if birdRect.Intersects(p.Rect()) {
			over = true
		}
	}

	if s.bird.Y > s.cfg.Board.Height {
		over = true
	}

	s.prunePipes()
	return over
}

// prunePipes drops pipes that have scrolled fully past the left edge. The
// bird sits right of x=0, so every pruned pipe has already been passed.
func (s *Session) prunePipes() {
	kept := s.pipes[:0]
	for _, p := range s.pipes {
		if p.X+p.Width >= 0 {
			kept = append(kept, p)
		}
	}
	s.pipes = kept
}
