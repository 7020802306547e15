package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, site *Site) {
	r.Get("/openapi.json", handleOpenAPI(site.Title))
	r.Mount("/docs", v5emb.New(site.Title+" API", "/openapi.json", "/docs"))

	r.Get("/map.png", handleMapImage(site))
	r.Head("/map.png", handleMapImage(site))

	r.Route("/api", func(r chi.Router) {
		r.Use(noStore)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "not found")
		})
		r.Get("/map", handleMapInfo(site))
		r.Get("/hotspots", handleListHotspots(site))
		r.Get("/hotspots/{name}", handleGetHotspot(site))
		r.Post("/click", handleClick(logger, site))
	})

	if site.Static != nil {
		r.NotFound(handleSPA(site.Static))
	}
}
