package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded reports. It is used
// when Discord is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards reports with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendJobReport logs and discards a report.
func (n *NoOpNotifier) SendJobReport(_ context.Context, report *JobReport) error {
	n.log.Debug("job report discarded (no backend configured)",
		"job", report.JobName,
		"sales", report.SalesGeocoded,
		"contacts", report.ContactsGeocoded,
		"failures", report.Failures,
	)
	return nil
}
