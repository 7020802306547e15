package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/playperu/trailmap/internal/trailmap"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// hotspotPath is the path parameter of GET /api/hotspots/{name}.
type hotspotPath struct {
	Name string `path:"name"`
}

func newOpenAPISpec(title string) *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = title + " API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Serves a map image with highlighted hotspots and resolves taps to hotspot descriptions.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(map[string]HealthStatus{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(map[string]HealthStatus{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /map.png
	getImage, _ := r.NewOperationContext(http.MethodGet, "/map.png")
	getImage.SetSummary("Map image")
	getImage.SetDescription("The base map with every hotspot highlighted. Supports If-None-Match.")
	getImage.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("image/png"))
	getImage.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNotModified))
	_ = r.AddOperation(getImage)

	// GET /api/map
	getMap, _ := r.NewOperationContext(http.MethodGet, "/api/map")
	getMap.SetSummary("Map metadata")
	getMap.SetDescription("Title, image size, hotspot radius and the view shown before any tap.")
	getMap.AddRespStructure(MapInfoResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getMap)

	// GET /api/hotspots
	listHotspots, _ := r.NewOperationContext(http.MethodGet, "/api/hotspots")
	listHotspots.SetSummary("List hotspots")
	listHotspots.SetDescription("All hotspots in configured order. Earlier hotspots win when circles overlap.")
	listHotspots.AddRespStructure([]HotspotResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listHotspots)

	// GET /api/hotspots/{name}
	getHotspot, _ := r.NewOperationContext(http.MethodGet, "/api/hotspots/{name}")
	getHotspot.SetSummary("Get hotspot")
	getHotspot.SetDescription("One hotspot by name.")
	getHotspot.AddReqStructure(hotspotPath{})
	getHotspot.AddRespStructure(HotspotResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHotspot.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getHotspot)

	// POST /api/click
	postClick, _ := r.NewOperationContext(http.MethodPost, "/api/click")
	postClick.SetSummary("Resolve a tap")
	postClick.SetDescription("Resolves image pixel coordinates to the first hotspot containing them, boundary inclusive.")
	postClick.AddReqStructure(ClickRequest{})
	postClick.AddRespStructure(trailmap.View{}, openapi.WithHTTPStatus(http.StatusOK))
	postClick.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postClick)

	// GET /ws/click
	getWSClick, _ := r.NewOperationContext(http.MethodGet, "/ws/click")
	getWSClick.SetSummary("Interactive session")
	getWSClick.SetDescription("Upgrades to a WebSocket. The server sends the idle view, then answers every {x, y} message with the new view.")
	getWSClick.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWSClick)

	return r.Spec
}

// HealthStatus is one entry of the /healthz body.
type HealthStatus struct {
	Status string `json:"status"`
}

func handleOpenAPI(title string) http.HandlerFunc {
	spec := newOpenAPISpec(title)
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
