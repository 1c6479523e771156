package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// Background runs fire-and-forget tasks on their own goroutines while keeping
// count of them, so the server can drain on shutdown.
type Background struct {
	log logrus.FieldLogger
	wg  sync.WaitGroup
}

func New(log logrus.FieldLogger) *Background {
	return &Background{log: log}
}

func (b *Background) Add(fn func() error) {
	b.wg.Add(1)

	go func() {
		defer b.wg.Done()

		defer func() {
			if rec := recover(); rec != nil {
				b.log.WithFields(logrus.Fields{
					"message": fmt.Sprintf("PANIC [%v]", rec),
					"trace":   string(debug.Stack()),
				}).Error("background task panicked")
			}
		}()

		if err := fn(); err != nil {
			b.log.WithField("message", err).Error("background task failed")
		}
	}()
}

// Shutdown waits for outstanding tasks, bounded by the context.
func (b *Background) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
