package report

import (
	"io"

	"deviceinfocompare/core/reconcile"

	"go.uber.org/zap"
)

// LogRenderer writes a report through zap instead of the writer.
type LogRenderer struct {
	Logger *zap.Logger
}

// Render implements Renderer. w is ignored.
func (l *LogRenderer) Render(_ io.Writer, r *reconcile.Report) error {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := r.Summary()
	logger.Info("Device comparison",
		zap.Int("previous_count", s.PreviousCount),
		zap.Int("current_count", s.CurrentCount),
		zap.String("delta", FormatDelta(s.Delta)),
		zap.Int("missing", s.Missing),
		zap.Int("new", s.New),
		zap.Int("broken", s.Broken),
		zap.Int("fixed", s.Fixed),
	)

	logDevices(logger.Warn, "Device missing", r.Missing)
	logDevices(logger.Info, "Device new", r.New)
	logDevices(logger.Warn, "Device broken", r.Broken)
	logDevices(logger.Info, "Device fixed", r.Fixed)
	return nil
}

func logDevices(log func(string, ...zap.Field), msg string, devices []reconcile.DeviceRecord) {
	for _, d := range devices {
		log(msg,
			zap.String("device_id", d.DeviceID),
			zap.String("device_name", d.DeviceName),
			zap.String("device_class", d.DeviceClass),
			zap.Bool("device_status", d.DeviceStatus),
		)
	}
}
