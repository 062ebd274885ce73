package preview

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/motion/internal/config"
	"github.com/vango-dev/motion/internal/envelope"
)

func newTestServer(t *testing.T, packs ...string) *Server {
	t.Helper()
	cfg := config.New()
	cfg.Preview.WatchPacks = false
	cfg.RecordDir = t.TempDir()
	cfg.Packs = packs

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	s, err := New(cfg, logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestPresetsEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/api/presets")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var resp presetsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	bouncy, ok := resp.Springs["bouncy"]
	if !ok {
		t.Fatal("bouncy missing from response")
	}
	if bouncy.Damping != 10 || bouncy.Stiffness != 100 {
		t.Errorf("bouncy = %+v, want damping 10 stiffness 100", bouncy)
	}

	normal, ok := resp.Timings["normal"]
	if !ok {
		t.Fatal("normal missing from response")
	}
	if normal.DurationMs != 250 {
		t.Errorf("normal duration = %dms, want 250ms", normal.DurationMs)
	}
}

func TestPresetsEndpointIncludesPacks(t *testing.T) {
	dir := t.TempDir()
	packPath := filepath.Join(dir, "brand.yaml")
	pack := "name: brand\nsprings:\n  wobble:\n    damping: 8\n    stiffness: 120\n"
	if err := os.WriteFile(packPath, []byte(pack), 0644); err != nil {
		t.Fatal(err)
	}

	s := newTestServer(t, packPath)
	rec := get(t, s, "/api/presets")

	var resp presetsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	wobble, ok := resp.Springs["wobble"]
	if !ok {
		t.Fatal("pack spring wobble missing from response")
	}
	if wobble.Damping != 8 || wobble.Stiffness != 120 {
		t.Errorf("wobble = %+v, want damping 8 stiffness 120", wobble)
	}
}

func TestEnvelopeEndpoint(t *testing.T) {
	s := newTestServer(t)

	t.Run("spring", func(t *testing.T) {
		rec := get(t, s, "/api/envelope/spring/smooth")
		if rec.Code != http.StatusOK {
			t.Fatalf("status %d, want 200", rec.Code)
		}
		var env envelope.Envelope
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decoding envelope: %v", err)
		}
		if env.FPS != envelope.DefaultFPS {
			t.Errorf("fps = %d, want %d", env.FPS, envelope.DefaultFPS)
		}
		if len(env.Samples) < 2 {
			t.Fatalf("envelope has %d samples", len(env.Samples))
		}
		if env.Samples[0] != 0 {
			t.Errorf("first sample = %v, want 0", env.Samples[0])
		}
		if last := env.Samples[len(env.Samples)-1]; last != 1 {
			t.Errorf("last sample = %v, want 1", last)
		}
	})

	t.Run("timing", func(t *testing.T) {
		rec := get(t, s, "/api/envelope/timing/fast?from=2&to=4")
		if rec.Code != http.StatusOK {
			t.Fatalf("status %d, want 200", rec.Code)
		}
		var env envelope.Envelope
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decoding envelope: %v", err)
		}
		if env.Samples[0] != 2 {
			t.Errorf("first sample = %v, want 2", env.Samples[0])
		}
		if last := env.Samples[len(env.Samples)-1]; last != 4 {
			t.Errorf("last sample = %v, want 4", last)
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		if rec := get(t, s, "/api/envelope/spring/nope"); rec.Code != http.StatusNotFound {
			t.Errorf("status %d, want 404", rec.Code)
		}
	})

	t.Run("bad kind", func(t *testing.T) {
		if rec := get(t, s, "/api/envelope/wiggle/smooth"); rec.Code != http.StatusBadRequest {
			t.Errorf("status %d, want 400", rec.Code)
		}
	})
}

func TestRecordingsEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/recordings")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status %d, want 200", rec.Code)
	}
	var infos []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("fresh store lists %d recordings, want 0", len(infos))
	}

	if rec := get(t, s, "/api/recordings/missing"); rec.Code != http.StatusNotFound {
		t.Errorf("get status %d, want 404", rec.Code)
	}

	del := httptest.NewRecorder()
	s.ServeHTTP(del, httptest.NewRequest(http.MethodDelete, "/api/recordings/missing", nil))
	if del.Code != http.StatusNotFound {
		t.Errorf("delete status %d, want 404", del.Code)
	}
}

func TestClientJSETag(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/motion/client.js")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("no ETag header")
	}

	req := httptest.NewRequest(http.MethodGet, "/motion/client.js", nil)
	req.Header.Set("If-None-Match", etag)
	cached := httptest.NewRecorder()
	s.ServeHTTP(cached, req)
	if cached.Code != http.StatusNotModified {
		t.Errorf("conditional request status %d, want 304", cached.Code)
	}
}

func TestIndexServed(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content type %q", ct)
	}
}
