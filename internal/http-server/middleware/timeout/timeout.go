package timeout

import (
	"context"
	"net/http"
	"time"
)

// Timeout caps every request at the given number of seconds. Collaborator
// calls downstream inherit the deadline through the request context, so one
// slow sink cannot pin a worker.
func Timeout(seconds int) func(next http.Handler) http.Handler {
	duration := time.Duration(seconds) * time.Second

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
