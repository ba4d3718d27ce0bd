package decode

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DecodeAll decodes raws concurrently and returns the messages in input
// order. It stops early and returns the context error if ctx is cancelled.
func (d *Decoder) DecodeAll(ctx context.Context, raws []Raw) ([]*Message, error) {
	out := make([]*Message, len(raws))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range raws {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = d.DecodeRaw(raws[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
