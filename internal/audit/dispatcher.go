package audit

import (
	"go.uber.org/zap"

	"github.com/HennaArtStudio/henna-booking-api/internal/logger"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink receives audit events. The gorm-backed Logger is the production
// sink.
type Sink interface {
	Log(userID *uint, action, entity string, entityID *uint, metadata any) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logger.Log.Error("audit write failed", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enqueued
	default:
		// queue full, drop the event rather than blocking the API
		logger.Log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
