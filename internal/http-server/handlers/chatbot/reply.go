package chatbot

import (
	"FurnishDesk/entity"
	"FurnishDesk/internal/lib/api/response"
	"FurnishDesk/internal/lib/sl"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// chatRequest distinguishes an absent message key from an empty one: only the
// former is malformed, an empty message still gets the fallback reply.
type chatRequest struct {
	Message *string `json:"message"`
}

func (c *chatRequest) Bind(_ *http.Request) error {
	if c.Message == nil {
		return errors.New("field message is required")
	}
	return nil
}

// Reply answers one chat widget question with a canned reply.
func Reply(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.chatbot")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("chatbot not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Chatbot not available"))
			return
		}

		var req chatRequest
		if err := render.Bind(r, &req); err != nil {
			logger.Error("invalid chat query", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		query := entity.ChatQuery{Message: *req.Message}
		reply := handler.ResolveIntent(query)

		logger.With(slog.String("message", query.Message)).Debug("chat query resolved")

		render.JSON(w, r, reply)
	}
}
