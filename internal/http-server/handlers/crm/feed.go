package crm

import (
	"FurnishDesk/internal/ws"
	"log/slog"
	"net/http"
)

// Feed upgrades the connection and subscribes a staff dashboard to the
// live enquiry feed.
func Feed(log *slog.Logger, hub *ws.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if hub == nil {
			http.Error(w, "Staff feed not available", http.StatusServiceUnavailable)
			return
		}
		ws.ServeWs(hub, log, w, r)
	}
}
