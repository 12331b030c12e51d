package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/polkiloo/outsourcing/internal/domain/model"
)

// StatisticsFacade exposes the ledger aggregation required by the worker.
type StatisticsFacade interface {
	GetOrderStatistics(ctx context.Context) (*model.OrderStatistics, error)
}

// StatisticsSink receives published aggregates.
type StatisticsSink interface {
	PublishStatistics(stats model.OrderStatistics)
}

// StatsPublisher periodically recomputes ledger statistics and hands them to a sink.
type StatsPublisher struct {
	facade   StatisticsFacade
	sink     StatisticsSink
	interval time.Duration
	logger   *zap.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewStatsPublisher constructs the publisher. Non-positive intervals fall back to one minute.
func NewStatsPublisher(facade StatisticsFacade, sink StatisticsSink, interval time.Duration, logger *zap.Logger) *StatsPublisher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &StatsPublisher{
		facade:   facade,
		sink:     sink,
		interval: interval,
		logger:   logger,
	}
}

// Start publishes once and then on every tick until Stop is called.
// Values from ctx are kept but its cancellation is not, since fx cancels the start context.
func (p *StatsPublisher) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.cancel = cancel

	p.wg.Add(1)
	go p.loop(runCtx)
}

// Stop waits for the loop to finish.
func (p *StatsPublisher) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *StatsPublisher) loop(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.publish(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.publish(ctx)
		}
	}
}

func (p *StatsPublisher) publish(ctx context.Context) {
	stats, err := p.facade.GetOrderStatistics(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Error("compute order statistics failed", zap.Error(err))
		}
		return
	}
	p.sink.PublishStatistics(*stats)
	p.logger.Debug("order statistics published",
		zap.Int("total", stats.TotalOrders),
		zap.Int("pending", stats.PendingOrders),
		zap.Int("completed", stats.CompletedOrders))
}
