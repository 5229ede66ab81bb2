package client

import (
	"context"
	"fmt"
)

// Executor runs continuations, typically by posting them to a UI thread.
type Executor interface {
	Execute(fn func())
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(fn func())

func (f ExecutorFunc) Execute(fn func()) { f(fn) }

// Inline runs continuations on the goroutine that completed the future.
var Inline Executor = ExecutorFunc(func(fn func()) { fn() })

// Future is the pending result of a single client call. It completes
// exactly once, with either a value or an error.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Async starts call in its own goroutine and returns immediately.
//
//	f := client.Async(ctx, c.ListBirds)
//	f.OnComplete(uiExecutor, func(birds []dto.BirdDTO, err error) { ... })
func Async[T any](ctx context.Context, call func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("client call panicked: %v", r)
			}
		}()
		f.value, f.err = call(ctx)
	}()
	return f
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the call completes or ctx is done. Giving up on ctx
// does not stop the underlying call.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// OnComplete schedules fn on exec once the call completes. A nil exec
// means Inline.
func (f *Future[T]) OnComplete(exec Executor, fn func(T, error)) {
	if exec == nil {
		exec = Inline
	}
	go func() {
		<-f.done
		exec.Execute(func() { fn(f.value, f.err) })
	}()
}
