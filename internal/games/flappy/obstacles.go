package flappy

// spawn creates an obstacle at x with a gap drawn for the given progress.
func (s *Sim) spawn(x, score, ticks int) Obstacle {
	o := s.cfg.Obstacles

	gapHeight := s.diff.GapHeight(o.GapHeight, s.cfg.Bird.Size+1, score, ticks)
	lo, hi := s.diff.GapRange(o.MinGapY, o.MaxGapY, score, ticks)

	// A reduced gap may sit lower without leaving the field.
	hi += o.GapHeight - gapHeight
	if limit := s.cfg.Field.Height - gapHeight; hi > limit {
		hi = limit
	}
	if hi < lo {
		hi = lo
	}

	return Obstacle{
		X:         x,
		GapY:      lo + s.gaps.Intn(hi-lo+1),
		GapHeight: gapHeight,
	}
}

// recycle moves obstacles that left the field on the left back to the right
// edge with a fresh gap. Each recycle scores one point.
func (s *Sim) recycle(st *State) {
	o := s.cfg.Obstacles
	for i := range st.Obstacles {
		if st.Obstacles[i].X+o.Width > 0 {
			continue
		}

		x := o.SpawnX
		if len(st.Obstacles) > 1 {
			x = max(x, rightmost(st.Obstacles)+o.Spacing)
		}

		st.Score++
		st.Obstacles[i] = s.spawn(x, st.Score, st.Tick)
	}
}

// stream drops obstacles that left the field on the left and spawns a new
// one at the right edge once the last one is far enough in.
func (s *Sim) stream(st *State) {
	o := s.cfg.Obstacles

	kept := st.Obstacles[:0]
	for _, ob := range st.Obstacles {
		if ob.X+o.Width > 0 {
			kept = append(kept, ob)
		}
	}
	st.Obstacles = kept

	spacing := s.diff.Spacing(o.Spacing, o.Width+s.cfg.Bird.Size, st.Score, st.Tick)
	n := len(st.Obstacles)
	if n == 0 || st.Obstacles[n-1].X <= o.SpawnX-spacing {
		st.Obstacles = append(st.Obstacles, s.spawn(o.SpawnX, st.Score, st.Tick))
	}
}

func rightmost(obstacles []Obstacle) int {
	x := obstacles[0].X
	for _, o := range obstacles[1:] {
		x = max(x, o.X)
	}
	return x
}
