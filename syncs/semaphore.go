package syncs

import "context"

type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	return make(chan struct{}, max(n, 1))
}

func (s Semaphore) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s Semaphore) Release() {
	<-s
}
