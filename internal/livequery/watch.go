package livequery

import "context"

// Result carries one evaluation of a watched query.
type Result[T any] struct {
	Value T
	Err   error
}

// Watch turns a query into a live result stream: the query runs once
// immediately, then again after every write touching one of the given
// collections. The stream closes when ctx is cancelled.
func Watch[T any](ctx context.Context, bus *Bus, query func(context.Context) (T, error), cols ...Collection) <-chan Result[T] {
	out := make(chan Result[T])
	sub := bus.Subscribe(cols...)

	go func() {
		defer close(out)
		defer sub.Close()

		for {
			value, err := query(ctx)
			select {
			case out <- Result[T]{Value: value, Err: err}:
			case <-ctx.Done():
				return
			}

			select {
			case <-sub.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
