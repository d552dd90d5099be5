package core

import (
	"FurnishDesk/entity"
	"FurnishDesk/internal/lib/sl"
	"context"
	"log/slog"
)

type Repository interface {
	SaveEnquiry(ctx context.Context, enquiry *entity.Enquiry) error
	Status(ctx context.Context) entity.StorageStatus
}

type Notifier interface {
	Configured() bool
	SendEnquiry(enquiry *entity.Enquiry) error
}

type AlertService interface {
	NotifyEnquiry(enquiry *entity.Enquiry) error
}

type StaffFeed interface {
	BroadcastEnquiry(enquiry entity.Enquiry)
}

type Core struct {
	repo     Repository
	notifier Notifier
	alert    AlertService
	feed     StaffFeed
	log      *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log: log.With(sl.Module("core")),
	}
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetNotifier(notifier Notifier) {
	c.notifier = notifier
}

func (c *Core) SetAlertService(alert AlertService) {
	c.alert = alert
}

func (c *Core) SetStaffFeed(feed StaffFeed) {
	c.feed = feed
}
