package server

import (
	"log/slog"
	"net/http"

	"github.com/playperu/trailmap/internal/trailmap"
)

// ClickRequest is a tap on the map in image pixel coordinates.
type ClickRequest struct {
	X *int `json:"x" required:"true"`
	Y *int `json:"y" required:"true"`
}

// handleClick resolves one click. It keeps no state between requests: the
// returned view replaces whatever the page showed before.
func handleClick(logger *slog.Logger, site *Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClickRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.X == nil || req.Y == nil {
			writeError(w, http.StatusBadRequest, "x and y are required")
			return
		}

		p := trailmap.Point{X: *req.X, Y: *req.Y}
		sel := site.Map.Resolve(p)
		logger.Debug("click resolved", "x", p.X, "y", p.Y, "selected", sel.String())

		writeJSON(w, http.StatusOK, trailmap.ViewFor(site.Map, sel))
	}
}
