package notifications

import (
	"context"
	"medilink-service/internal/app/config"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/app/services/shared/pushqueue"
	"medilink-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

const workerLockKey = "push:worker:lock"

// Worker drains the push dispatch queue on a ticker with at-least-once
// semantics. A distributed lock keeps a single instance draining at a time.
type Worker struct {
	log    *zap.Logger
	cfg    *config.Push
	locker contracts.LockerService
	queue  *pushqueue.Service
	sender contracts.PushService
	stop   chan struct{}
}

func NewWorker(log *zap.Logger, cfg *config.Push, lockerSvc contracts.LockerService, queue *pushqueue.Service, sender contracts.PushService) *Worker {
	return &Worker{
		log:    log,
		cfg:    cfg,
		locker: lockerSvc,
		queue:  queue,
		sender: sender,
		stop:   make(chan struct{}),
	}
}

// Start begins the ticker loop. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	interval := time.Duration(w.cfg.WorkerIntervalInSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	stopped := make(chan struct{})

	w.log.Info("push worker started", zap.Duration("interval", interval))

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-w.stop:
				ticker.Stop()
				return
			case <-ticker.C:
				w.runOnce(ctx, interval)
			}
		}
	}()

	return func() {
		close(w.stop)
	}
}

func (w *Worker) runOnce(ctx context.Context, interval time.Duration) {
	ttl := interval - time.Second
	if ttl < time.Second {
		ttl = time.Second
	}
	acquired, lockVal, err := w.locker.TryLock(ctx, workerLockKey, ttl)
	if err != nil {
		w.log.Info("push worker lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Warn("push worker lock not acquired; another instance is draining")
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, workerLockKey, lockVal); err != nil {
			w.log.Error("push worker unlock failed", zap.Error(err))
		}
	}()

	max := w.cfg.MaxBatch
	if max <= 0 {
		max = 1
	}
	items, err := w.queue.FetchN(ctx, max)
	if err != nil {
		w.log.Info("push queue FetchN error", zap.Error(err))
		return
	}
	w.log.Info("push queue drained batch", zap.Int("fetched_count", len(items)))

	for _, item := range items {
		w.processItem(ctx, item)
	}
}

func (w *Worker) processItem(ctx context.Context, item pushqueue.QueuedItem) {
	dispatch := item.Dispatch

	err := w.sender.Send(ctx, dispatch.DeviceToken, dispatch.Title, dispatch.Body)
	if err == nil {
		if ackErr := w.queue.AckMessage(item.DeliveryTag); ackErr != nil {
			w.log.Info("ack failed after successful delivery",
				zap.String(constvars.LoggingNotificationIDKey, dispatch.NotificationID),
				zap.Error(ackErr),
			)
		}
		w.log.Info("push delivered",
			zap.String(constvars.LoggingNotificationIDKey, dispatch.NotificationID),
		)
		return
	}

	w.log.Info("push delivery failed",
		zap.String(constvars.LoggingNotificationIDKey, dispatch.NotificationID),
		zap.Int("failed_count", dispatch.FailedCount),
		zap.Error(err),
	)

	dispatch.FailedCount++
	if dispatch.FailedCount >= w.cfg.MaxRetry {
		if e := w.queue.EnqueueToDeadQueue(ctx, &dispatch); e != nil {
			w.log.Info("enqueue to DLQ failed",
				zap.String(constvars.LoggingNotificationIDKey, dispatch.NotificationID),
				zap.Error(e),
			)
			return
		}
		_ = w.queue.AckMessage(item.DeliveryTag)
		w.log.Info("dispatch moved to DLQ",
			zap.String(constvars.LoggingNotificationIDKey, dispatch.NotificationID),
			zap.Int("failed_count", dispatch.FailedCount),
		)
		return
	}

	if e := w.queue.Reenqueue(ctx, &dispatch); e != nil {
		w.log.Info("reenqueue failed",
			zap.String(constvars.LoggingNotificationIDKey, dispatch.NotificationID),
			zap.Error(e),
		)
		return
	}
	_ = w.queue.AckMessage(item.DeliveryTag)
	w.log.Info("dispatch requeued for retry",
		zap.String(constvars.LoggingNotificationIDKey, dispatch.NotificationID),
		zap.Int("failed_count", dispatch.FailedCount),
	)
}
