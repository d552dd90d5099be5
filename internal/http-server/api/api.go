package api

import (
	"FurnishDesk/internal/config"
	"FurnishDesk/internal/http-server/handlers/chatbot"
	"FurnishDesk/internal/http-server/handlers/crm"
	"FurnishDesk/internal/http-server/handlers/enquiry"
	"FurnishDesk/internal/http-server/handlers/errors"
	"FurnishDesk/internal/http-server/handlers/service"
	"FurnishDesk/internal/http-server/middleware/reqlog"
	"FurnishDesk/internal/http-server/middleware/timeout"
	"FurnishDesk/internal/lib/sl"
	"FurnishDesk/internal/ws"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	service.Service
	enquiry.Core
	chatbot.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   conf.Listen.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(reqlog.New(log))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Get("/", service.Root())
	router.Get("/test", service.Status(log, handler))

	router.Route("/api", func(r chi.Router) {
		r.Get("/hello", service.Hello())
		// the ws upgrade must not inherit the request deadline
		r.Get("/crm/ws", crm.Feed(log, hub))

		r.Group(func(r chi.Router) {
			r.Use(timeout.Timeout(15))
			r.Post("/contact", enquiry.Submit(log, handler))
			r.Post("/chatbot", chatbot.Reply(log, handler))
		})
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
