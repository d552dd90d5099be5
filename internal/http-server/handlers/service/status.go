package service

import (
	"FurnishDesk/entity"
	"FurnishDesk/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Status reports process liveness and best-effort storage connectivity.
func Status(log *slog.Logger, handler Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.service")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			render.JSON(w, r, entity.StorageStatus{
				Backend:          "running",
				Database:         "not available",
				ConnectionStatus: "not connected",
			})
			return
		}

		status := handler.StorageStatus(r.Context())

		logger.With(
			slog.String("connection_status", status.ConnectionStatus),
		).Debug("storage status checked")

		render.JSON(w, r, status)
	}
}
