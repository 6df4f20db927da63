package notify

import (
	"context"
	"sync"
	"time"

	"library-service-backend/internal/logger"
)

// Sink delivers a single text message to an outbound channel.
type Sink interface {
	Send(ctx context.Context, text string) error
}

// Dispatcher fans lifecycle messages out to a Sink from a single worker
// goroutine. Delivery is best-effort: sink errors are logged and swallowed,
// and a full queue drops the message rather than block the caller.
type Dispatcher struct {
	sink        Sink
	queue       chan string
	sendTimeout time.Duration
	wg          sync.WaitGroup
}

func NewDispatcher(sink Sink, queueSize int) *Dispatcher {
	d := &Dispatcher{
		sink:        sink,
		queue:       make(chan string, queueSize),
		sendTimeout: 10 * time.Second,
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for text := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
		if err := d.sink.Send(ctx, text); err != nil {
			logger.Error("Notification send failed", "error", err)
		}
		cancel()
	}
}

// Notify queues a message for delivery. Never blocks and never fails the
// calling operation.
func (d *Dispatcher) Notify(text string) {
	select {
	case d.queue <- text:
	default:
		logger.Warn("Notification queue full, dropping message")
	}
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}
