package enquiry

import (
	"FurnishDesk/entity"
	"FurnishDesk/internal/lib/api/response"
	"FurnishDesk/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Submit accepts a contact form enquiry. A malformed body is the only way to
// get a non-ok answer here; downstream sink failures are absorbed by the core.
func Submit(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.enquiry")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("enquiry intake not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Enquiry intake not available"))
			return
		}

		var req entity.Enquiry
		if err := render.Bind(r, &req); err != nil {
			logger.Error("invalid enquiry submission", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		outcome := handler.SubmitEnquiry(r.Context(), &req)

		logger.With(
			slog.String("uuid", req.UUID),
			slog.Bool("email_sent", outcome.EmailSent),
		).Debug("enquiry accepted")

		render.JSON(w, r, outcome)
	}
}
