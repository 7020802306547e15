package web

import (
	"io/fs"
	"strings"
	"testing"
)

func TestIndexPage(t *testing.T) {
	data, err := fs.ReadFile(FS(), "index.html")
	if err != nil {
		t.Fatalf("reading index.html: %v", err)
	}
	page := string(data)

	for _, want := range []string{
		"/api/map",
		"/api/click",
		// Taps before the image has loaded would scale to (0,0).
		"if (!img.complete || img.naturalWidth === 0) return;",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("index.html missing %q", want)
		}
	}
}
