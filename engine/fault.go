package engine

import (
	"go.uber.org/zap"
)

// Fault categories reported to the sink.
const (
	FaultSystemUpdate   = "system.update"
	FaultSystemRender   = "system.render"
	FaultSystemShutdown = "system.shutdown"
	FaultEventHandler   = "event.handler"
)

// FaultSink receives isolated faults from the scheduler and event bus.
// The frame loop never dies on a single system's or handler's panic; the
// fault is reported here and the remaining systems and handlers proceed.
type FaultSink interface {
	ReportFault(category, origin string, cause any, stack []byte)
}

// LogSink reports faults through a zap logger.
type LogSink struct {
	log *zap.Logger
}

// NewLogSink creates a fault sink writing to the given logger.
func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

// ReportFault implements FaultSink.
func (s *LogSink) ReportFault(category, origin string, cause any, stack []byte) {
	s.log.Error("fault isolated",
		zap.String("category", category),
		zap.String("origin", origin),
		zap.Any("cause", cause),
		zap.ByteString("stack", stack),
	)
}
