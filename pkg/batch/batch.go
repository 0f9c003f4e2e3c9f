// Package batch computes many independent spring steps or interpolations at
// once, preserving input order in the results.
//
// Each item's computation is self-contained, so this is the one part of the
// engine that is safe to fan out across goroutines. Every result is
// guaranteed to equal the corresponding single synchronous call: a
// [spring.Step] for spring items, an Interpolate for lerp items.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/go-drift/motion/pkg/animatable"
	"github.com/go-drift/motion/pkg/spring"
)

// serialThreshold is the batch size below which goroutine fan-out costs more
// than it saves.
const serialThreshold = 64

// SpringItem is one independent spring computation: a value, its velocity,
// the target, and the spring parameters.
type SpringItem[T animatable.Animatable[T]] struct {
	// Current is the value before the step.
	Current T
	// Velocity is the velocity before the step.
	Velocity T
	// Target is the value the spring pulls toward.
	Target T
	// Spring holds the physical parameters.
	Spring spring.Spring
}

// LerpItem is one independent interpolation between two values at a given
// progress.
type LerpItem[T animatable.Animatable[T]] struct {
	// Start is the value at progress 0.
	Start T
	// End is the value at progress 1.
	End T
	// Progress is the blend position in [0, 1].
	Progress float32
}

// Springs advances every item by one spring step of dt seconds and returns
// the new values in input order.
func Springs[T animatable.Animatable[T]](items []SpringItem[T], dt float32) []T {
	out, _ := SpringsContext(context.Background(), items, dt)
	return out
}

// SpringsContext is Springs with cancellation. A canceled context abandons
// the remaining work and returns the context's error.
func SpringsContext[T animatable.Animatable[T]](ctx context.Context, items []SpringItem[T], dt float32) ([]T, error) {
	results := make([]T, len(items))
	step := func(i int) {
		it := items[i]
		results[i], _ = spring.Step(it.Current, it.Velocity, it.Target, it.Spring, dt)
	}
	if err := forEach(ctx, len(items), step); err != nil {
		return nil, err
	}
	return results, nil
}

// Interpolations evaluates every item's interpolation and returns the values
// in input order.
func Interpolations[T animatable.Animatable[T]](items []LerpItem[T]) []T {
	out, _ := InterpolationsContext(context.Background(), items)
	return out
}

// InterpolationsContext is Interpolations with cancellation.
func InterpolationsContext[T animatable.Animatable[T]](ctx context.Context, items []LerpItem[T]) ([]T, error) {
	results := make([]T, len(items))
	step := func(i int) {
		it := items[i]
		results[i] = it.Start.Interpolate(it.End, it.Progress)
	}
	if err := forEach(ctx, len(items), step); err != nil {
		return nil, err
	}
	return results, nil
}

// forEach runs fn for every index. Small batches run serially; larger ones
// fan out across up to GOMAXPROCS workers, each writing results by index so
// output order matches input order.
func forEach(ctx context.Context, n int, fn func(i int)) error {
	if n < serialThreshold {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
		}
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	g, ctx := errgroup.WithContext(ctx)
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		start, end := start, min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				fn(i)
			}
			return nil
		})
	}
	return g.Wait()
}
