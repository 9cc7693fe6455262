package notification

import (
	"context"
	"sync"
	"time"

	"buildmart-be/internal/logger"
	"buildmart-be/internal/metrics"
	"buildmart-be/internal/shipment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dispatcher consumes status-change events from an in-process queue and
// drives notification creation plus per-channel delivery. Enqueueing is
// non-blocking so the shipment tracker never waits on delivery.
type Dispatcher struct {
	repo    Repository
	gateway Gateway

	queue chan shipment.NotifyInput
	wg    sync.WaitGroup
	once  sync.Once

	Dispatched metrics.Counter
	Failed     metrics.Counter
	Dropped    metrics.Counter
	Skipped    metrics.Counter
}

func NewDispatcher(repo Repository, gateway Gateway, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	return &Dispatcher{
		repo:    repo,
		gateway: gateway,
		queue:   make(chan shipment.NotifyInput, buffer),
	}
}

// Start launches the consumer goroutine.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for ev := range d.queue {
			d.process(ev)
		}
	}()
}

// Notify enqueues a status-change event. When the queue is full the event
// is dropped and counted; the caller is never blocked.
func (d *Dispatcher) Notify(n shipment.NotifyInput) {
	select {
	case d.queue <- n:
	default:
		d.Dropped.Inc()
		logger.L().Warn("notification queue full, event dropped",
			zap.Uint("order_id", n.OrderID),
			zap.String("shipment_id", n.ShipmentID.String()),
		)
	}
}

// Close drains the queue and stops the consumer.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

// relevant filters out status changes that are not customer-facing.
func relevant(n shipment.NotifyInput) bool {
	if n.Status == shipment.StatusPreparing && n.ReasonCode == nil {
		return false
	}
	return true
}

func (d *Dispatcher) process(ev shipment.NotifyInput) {
	timer := metrics.StartTimer()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log := logger.L().With(
		zap.String("layer", "dispatcher"),
		zap.Uint("user_id", ev.UserID),
		zap.Uint("order_id", ev.OrderID),
		zap.String("shipment_id", ev.ShipmentID.String()),
		zap.String("status", string(ev.Status)),
	)

	if !relevant(ev) {
		d.Skipped.Inc()
		log.Debug("status change not customer-facing, skipped")
		return
	}

	n := &Notification{
		ID:            uuid.New(),
		UserID:        ev.UserID,
		OrderID:       ev.OrderID,
		ShipmentID:    ev.ShipmentID,
		EventType:     ev.EventType,
		Status:        StatusPending,
		PayloadStatus: ev.Status,
		PayloadReason: ev.ReasonCode,
	}

	if err := d.repo.CreateNotification(ctx, n); err != nil {
		d.Failed.Inc()
		log.Error("failed to create notification record", zap.Error(err))
		return
	}

	d.deliverEmail(ctx, n, log)
	log.Info("notification processed", zap.Duration("took", timer.Duration()))
}

func (d *Dispatcher) deliverEmail(ctx context.Context, n *Notification, log *zap.Logger) {
	channelEv := &ChannelEvent{
		ID:             uuid.New(),
		NotificationID: n.ID,
		Channel:        ChannelEmail,
	}

	email, err := d.repo.GetUserEmail(ctx, n.UserID)
	if err == nil {
		err = d.gateway.SendStatusEmail(ctx, email, n)
	}

	if err != nil {
		d.Failed.Inc()
		msg := err.Error()
		channelEv.Status = StatusFailed
		channelEv.Error = &msg
		log.Error("email delivery failed", zap.Error(err))
	} else {
		d.Dispatched.Inc()
		channelEv.Status = StatusSent
	}

	if evErr := d.repo.InsertChannelEvent(ctx, channelEv); evErr != nil {
		log.Error("failed to record channel event", zap.Error(evErr))
	}

	final := StatusSent
	if channelEv.Status == StatusFailed {
		final = StatusFailed
	}
	if markErr := d.repo.MarkNotification(ctx, n.ID, final); markErr != nil {
		log.Error("failed to mark notification", zap.Error(markErr))
	}
}
