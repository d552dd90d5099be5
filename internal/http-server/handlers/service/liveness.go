package service

import (
	"net/http"

	"github.com/go-chi/render"
)

type liveMessage struct {
	Message string `json:"message"`
}

// Root confirms the backend process is up.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, liveMessage{Message: "FurnishDesk backend running"})
	}
}

// Hello is the trivial API reachability probe used by the frontend.
func Hello() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, liveMessage{Message: "Hello from the backend API!"})
	}
}
