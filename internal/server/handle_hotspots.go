package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/trailmap/internal/trailmap"
)

type HotspotResponse struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Text string `json:"text"`
}

func toHotspotResponse(h trailmap.Hotspot) HotspotResponse {
	return HotspotResponse{Name: h.Name, X: h.Center.X, Y: h.Center.Y, Text: h.Text}
}

func handleListHotspots(site *Site) http.HandlerFunc {
	hs := site.Map.Hotspots()
	resp := make([]HotspotResponse, len(hs))
	for i, h := range hs {
		resp[i] = toHotspotResponse(h)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleGetHotspot(site *Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		h, ok := site.Map.Lookup(name)
		if !ok {
			writeError(w, http.StatusNotFound, "hotspot not found")
			return
		}
		writeJSON(w, http.StatusOK, toHotspotResponse(h))
	}
}
