package core

import (
	"FurnishDesk/entity"
	"FurnishDesk/internal/lib/sl"
	"context"
	"log/slog"
)

// SubmitEnquiry routes a validated enquiry to every configured sink.
// Each sink is attempted independently and a sink being down never fails the
// submission: once the input validated, the answer to the customer is yes.
func (c *Core) SubmitEnquiry(ctx context.Context, enquiry *entity.Enquiry) entity.SubmissionOutcome {
	logger := c.log.With(slog.String("uuid", enquiry.UUID))

	persisted := c.persistEnquiry(ctx, logger, enquiry)
	notified := c.notifyEnquiry(logger, enquiry)

	if c.alert != nil {
		if err := c.alert.NotifyEnquiry(enquiry); err != nil {
			logger.With(sl.Err(err)).Warn("enquiry alert failed")
		}
	}
	if c.feed != nil {
		c.feed.BroadcastEnquiry(*enquiry)
	}

	logger.With(
		slog.Bool("persisted", persisted),
		slog.Bool("notified", notified),
	).Info("enquiry processed")

	return entity.SubmissionOutcome{
		OK:        true,
		Message:   entity.AckMessage,
		EmailSent: notified,
		Persisted: persisted,
	}
}

func (c *Core) persistEnquiry(ctx context.Context, logger *slog.Logger, enquiry *entity.Enquiry) bool {
	if c.repo == nil {
		logger.Warn("repository not available, enquiry not persisted")
		return false
	}
	if err := c.repo.SaveEnquiry(ctx, enquiry); err != nil {
		logger.With(sl.Err(err)).Error("persist enquiry")
		return false
	}
	return true
}

func (c *Core) notifyEnquiry(logger *slog.Logger, enquiry *entity.Enquiry) bool {
	if c.notifier == nil || !c.notifier.Configured() {
		logger.Debug("mail notifier not configured, skipping")
		return false
	}
	if err := c.notifier.SendEnquiry(enquiry); err != nil {
		logger.With(sl.Err(err)).Error("send enquiry mail")
		return false
	}
	return true
}

// StorageStatus reports best-effort storage connectivity for diagnostics.
func (c *Core) StorageStatus(ctx context.Context) entity.StorageStatus {
	if c.repo == nil {
		return entity.StorageStatus{
			Backend:          "running",
			Database:         "not available",
			ConnectionStatus: "not connected",
		}
	}
	return c.repo.Status(ctx)
}
