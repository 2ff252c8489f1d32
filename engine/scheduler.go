// Package engine drives the animation: a fixed-interval scheduler that
// runs advance, composite and render as one synchronous unit per tick.
package engine

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/rainfall/rain"
	"github.com/lixenwraith/rainfall/render"
	"github.com/lixenwraith/rainfall/terminal"
)

// Scheduler owns all mutable tick state: the compositor (columns + grid)
// and the frame renderer. Everything runs on the goroutine inside Run;
// resize and cancellation are external signals consumed only at tick
// boundaries, never mid-composite.
type Scheduler struct {
	session  *terminal.Session
	pool     *rain.SymbolPool
	rng      *rand.Rand
	tick     time.Duration
	comp     *rain.Compositor
	renderer *render.Renderer
}

// New creates a scheduler over an initialized session. The random source
// is injected so column behavior is reproducible under test.
func New(session *terminal.Session, rng *rand.Rand, tick time.Duration) *Scheduler {
	return &Scheduler{
		session:  session,
		pool:     rain.NewSymbolPool(),
		rng:      rng,
		tick:     tick,
		renderer: render.New(session, session.ColorMode()),
	}
}

// Run drives ticks until ctx is cancelled. Each tick performs one
// compositor step and one frame write; ticks never overlap, and a slow
// sink drops intervening ticks rather than queueing frames. Returns nil
// on cancellation.
func (s *Scheduler) Run(ctx context.Context) error {
	w, h := s.session.Size()
	s.rebuild(w, h)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-s.session.ResizeChan():
			s.rebuild(ev.Width, ev.Height)

		case <-ticker.C:
			s.comp.Step()
			if err := s.renderer.Frame(s.comp.Grid()); err != nil {
				return err
			}
		}
	}
}

// rebuild tears down columns and grid for new dimensions. Glyph pool
// membership is unaffected; in-flight drop positions are not preserved.
func (s *Scheduler) rebuild(width, height int) {
	s.comp = rain.NewCompositor(width, height, s.pool, s.rng)
	s.session.Clear()
}
