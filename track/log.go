package track

import (
	"go.uber.org/zap"

	"github.com/wippyai/decay"
)

// LogObserver writes a structured log line for every lifecycle event.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver returns an observer logging at debug level for loan
// traffic and info level for the decay milestones.
func NewLogObserver(log *zap.Logger) *LogObserver {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogObserver{log: log}
}

// OnLoanEvent implements decay.Observer.
func (o *LogObserver) OnLoanEvent(e decay.Event) {
	fields := []zap.Field{
		zap.Stringer("event", e.Type),
		zap.Int64("refs", e.Refs),
	}
	switch e.Type {
	case decay.EventMinted, decay.EventReleased:
		o.log.Debug("loan", append(fields, zap.Uint64("seq", e.Seq))...)
	default:
		o.log.Info("ownership", fields...)
	}
}
