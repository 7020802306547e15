package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/playperu/trailmap/internal/trailmap"
)

type MapInfoResponse struct {
	Title    string        `json:"title"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Radius   int           `json:"radius"`
	Hotspots int           `json:"hotspots"`
	View     trailmap.View `json:"view"`
}

func handleMapInfo(site *Site) http.HandlerFunc {
	resp := MapInfoResponse{
		Title:    site.Title,
		Width:    site.Width,
		Height:   site.Height,
		Radius:   site.Map.Radius(),
		Hotspots: site.Map.Len(),
		View:     trailmap.IdleView(),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}

// handleMapImage serves the pre-rendered PNG. Clients revalidate with the
// ETag; the bytes only change on restart.
func handleMapImage(site *Site) http.HandlerFunc {
	size := strconv.Itoa(len(site.PNG))

	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("ETag", site.ETag)
		h.Set("Cache-Control", "no-cache")

		if etagMatch(r.Header.Get("If-None-Match"), site.ETag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		h.Set("Content-Type", "image/png")
		h.Set("Content-Length", size)
		w.WriteHeader(http.StatusOK)
		if r.Method != http.MethodHead {
			_, _ = w.Write(site.PNG)
		}
	}
}

func etagMatch(header, etag string) bool {
	for _, v := range strings.Split(header, ",") {
		v = strings.TrimSpace(v)
		if v == "*" || strings.TrimPrefix(v, "W/") == etag {
			return true
		}
	}
	return false
}
