package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/stayloop/notify/internal/rabbitmq/queue"
)

type dispatchConsumer interface {
	Consume(ctx context.Context, out chan<- queue.DispatchMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.DispatchMessage, strategy retry.Strategy)
}

// Dispatcher is the delivery worker pool: one consume loop feeding a
// buffered channel, workerCount goroutines draining it. Jobs from
// different recipients may interleave arbitrarily across workers.
type Dispatcher struct {
	queue   dispatchConsumer
	handler messageHandler
}

func NewDispatcher(q dispatchConsumer, h messageHandler) *Dispatcher {
	return &Dispatcher{
		queue:   q,
		handler: h,
	}
}

// Run blocks until ctx is cancelled and every worker has drained.
func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.DispatchMessage, workerCount*10)

	go func() {
		if err := d.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					d.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("dispatcher stopped")
}
