package main

import (
	"FurnishDesk/impl/core"
	"FurnishDesk/internal/config"
	repository "FurnishDesk/internal/database"
	"FurnishDesk/internal/http-server/api"
	"FurnishDesk/internal/lib/logger"
	"FurnishDesk/internal/lib/sl"
	"FurnishDesk/internal/service/alert"
	"FurnishDesk/internal/service/mailer"
	"FurnishDesk/internal/ws"
	"flag"
	"log/slog"

	"github.com/joho/godotenv"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	// deployments configure through the environment, a .env is optional
	_ = godotenv.Load()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	lg.Info("starting furnishdesk", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}
	if db != nil {
		handler.SetRepository(db)
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo client initialized")
	}

	mailService := mailer.New(conf, lg)
	handler.SetNotifier(mailService)
	if mailService.Configured() {
		lg.With(
			slog.String("host", conf.Smtp.Host),
			sl.Secret("user", conf.Smtp.User),
		).Info("mail notifier initialized")
	} else {
		lg.Warn("mail notifier not configured, enquiry mail disabled")
	}

	alertService := alert.New(conf, lg)
	if alertService != nil {
		handler.SetAlertService(alertService)
		lg.Info("telegram alert service initialized")
	}

	hub := ws.NewHub(lg)
	go hub.Run()
	handler.SetStaffFeed(hub)

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler, hub)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
