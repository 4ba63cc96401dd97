// Package slrweb serves a computed table over HTTP for the driver's
// --serve mode, routed with the same github.com/go-chi/chi/v5 router
// server/server.go uses for its API.
package slrweb

import (
	"log"
	"net/http"

	"github.com/dekarrin/slrgen/internal/slr/render"
	"github.com/dekarrin/slrgen/internal/slr/table"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Serve blocks, answering GET requests for "/" on addr with the HTML
// rendering of t; other paths and methods get the router's default error
// responses. Each request to "/" is logged with a uuid-tagged correlation ID, matching the
// driver's own per-run log convention.
func Serve(addr string, t *table.Table) error {
	r := chi.NewRouter()
	r.Get("/", handleTable(t))

	log.Printf("INFO  serving parse table on %s", addr)
	return http.ListenAndServe(addr, r)
}

func handleTable(t *table.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		reqID, err := uuid.NewRandom()
		if err != nil {
			reqID = uuid.Nil
		}
		log.Printf("INFO  [%s] %s %s", reqID, req.Method, req.URL.Path)

		page, err := render.HTML(t)
		if err != nil {
			log.Printf("ERROR [%s] render: %v", reqID, err)
			http.Error(w, "could not render table", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(page)); err != nil {
			log.Printf("WARN  [%s] write response: %v", reqID, err)
		}
	}
}
