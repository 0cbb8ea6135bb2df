package world

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/twinview/internal/config"
)

// Pair is the two worlds of the split view.
type Pair [2]*World

// NewPair creates both worlds from cfg.
func NewPair(cfg *config.Config) Pair {
	return Pair{New(Left, cfg), New(Right, cfg)}
}

// At returns the world drawn on side s.
func (p Pair) At(s Side) *World {
	return p[s]
}

// BuildPair builds both worlds concurrently. A script error stays on its own
// world and does not stop the other; the returned error is only ever a
// context error.
func BuildPair(ctx context.Context, p Pair) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range p {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_ = w.Build()
			return nil
		})
	}
	return g.Wait()
}
