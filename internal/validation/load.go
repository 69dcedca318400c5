package validation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/models"
)

// Load reads every collection for a whole-store check.
func Load(ctx context.Context, p collection.Provider) (Data, error) {
	var data Data
	g, gctx := errgroup.WithContext(ctx)
	g.Go(listAll(gctx, p, &data.Habits))
	g.Go(listAll(gctx, p, &data.Goals))
	g.Go(listAll(gctx, p, &data.Fitness))
	g.Go(listAll(gctx, p, &data.Wellness))
	g.Go(listAll(gctx, p, &data.Productivity))
	g.Go(listAll(gctx, p, &data.Reminders))
	g.Go(listAll(gctx, p, &data.Posts))
	g.Go(listAll(gctx, p, &data.Settings))
	if err := g.Wait(); err != nil {
		return Data{}, err
	}
	return data, nil
}

func listAll[T models.Record[T]](ctx context.Context, p collection.Provider, dst *[]T) func() error {
	return func() error {
		items, err := collection.For[T](p).ListAll(ctx, nil, collection.Options{})
		if err != nil {
			return err
		}
		*dst = items
		return nil
	}
}
