package alert

import (
	"FurnishDesk/entity"
	"FurnishDesk/internal/config"
	"FurnishDesk/internal/lib/sl"
	"fmt"
	"log/slog"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
)

// Service forwards new enquiries to the shop admin's Telegram chat.
// It is a convenience channel next to email; failures stay inside the service.
type Service struct {
	api     *tgbotapi.Bot
	adminId int64
	log     *slog.Logger
}

func New(conf *config.Config, logger *slog.Logger) *Service {
	if !conf.Telegram.Enabled || conf.Telegram.ApiKey == "" || conf.Telegram.AdminId == 0 {
		return nil
	}

	api, err := tgbotapi.NewBot(conf.Telegram.ApiKey, nil)
	if err != nil {
		logger.With(sl.Err(err)).Error("creating telegram api instance")
		return nil
	}

	return &Service{
		api:     api,
		adminId: conf.Telegram.AdminId,
		log:     logger.With(sl.Module("alert")),
	}
}

func (s *Service) NotifyEnquiry(enquiry *entity.Enquiry) error {
	email := enquiry.Email
	if email == "" {
		email = "-"
	}
	text := fmt.Sprintf(
		"New enquiry\nName: %s\nPhone: %s\nEmail: %s\n\n%s",
		enquiry.Name, enquiry.Phone, email, enquiry.Message,
	)

	_, err := s.api.SendMessage(s.adminId, text, &tgbotapi.SendMessageOpts{})
	if err != nil {
		s.log.With(
			slog.Int64("id", s.adminId),
			sl.Err(err),
		).Error("sending enquiry alert")
		return err
	}

	s.log.With(slog.String("uuid", enquiry.UUID)).Debug("enquiry alert sent")
	return nil
}
