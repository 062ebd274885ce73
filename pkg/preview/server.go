package preview

import (
	"context"
	"crypto/sha256"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/motion/internal/config"
	"github.com/vango-dev/motion/internal/envelope"
	"github.com/vango-dev/motion/pkg/presetpack"
	"github.com/vango-dev/motion/pkg/timeline"
)

//go:embed assets/client.js assets/index.html
var assetsFS embed.FS

// Server hosts the interactive preview: the embedded client, a live
// websocket per browser tab, the preset API, and recorded timelines.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	library *presetpack.Library
	store   timeline.Store

	router     chi.Router
	upgrader   websocket.Upgrader
	clientJS   []byte
	clientETag string
	indexHTML  []byte
	nextID     atomic.Uint64
}

// New builds a preview server from a project config. Preset packs named
// in the config are loaded immediately; a missing pack is an error so a
// typo in motion.json surfaces at startup rather than as silently
// built-in-only presets.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	library := presetpack.NewLibrary()
	if paths := cfg.PackPaths(); len(paths) > 0 {
		if err := library.Reload(paths); err != nil {
			return nil, fmt.Errorf("loading preset packs: %w", err)
		}
	}

	store, err := timeline.NewDiskStore(cfg.RecordPath())
	if err != nil {
		return nil, fmt.Errorf("opening recording store: %w", err)
	}

	clientJS, err := assetsFS.ReadFile("assets/client.js")
	if err != nil {
		return nil, err
	}
	indexHTML, err := assetsFS.ReadFile("assets/index.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		library: library,
		store:   store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// The preview binds to localhost; cross-origin tooling
			// (editors, embedded webviews) is expected.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clientJS:   clientJS,
		clientETag: fmt.Sprintf(`"%x"`, sha256.Sum256(clientJS)),
		indexHTML:  indexHTML,
	}
	s.router = s.routes()
	return s, nil
}

// Library exposes the preset library, mostly so the CLI can resolve
// pack-defined presets with the same instance the server serves.
func (s *Server) Library() *presetpack.Library { return s.library }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// The websocket route stays outside the traced group: the tracing
	// wrapper hides http.Hijacker, which the upgrader needs.
	r.Get("/live", s.handleLive)
	r.Get("/", s.handleIndex)
	r.Get("/motion/client.js", s.handleClientJS)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(Tracing())
		r.Get("/api/presets", s.handlePresets)
		r.Get("/api/envelope/{kind}/{name}", s.handleEnvelope)
		r.Get("/api/recordings", s.handleListRecordings)
		r.Get("/api/recordings/{id}", s.handleGetRecording)
		r.Delete("/api/recordings/{id}", s.handleDeleteRecording)
	})

	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves until ctx is canceled, then shuts down gracefully. When the
// config enables pack watching, edits to pack files reload the library
// live.
func (s *Server) Run(ctx context.Context) error {
	if s.cfg.Preview.WatchPacks && len(s.cfg.PackPaths()) > 0 {
		// Watch the parent directories: editors save packs by renaming a
		// temp file into place, which a file-level watch would miss.
		watcher, err := presetpack.NewWatcher(packDirs(s.cfg.PackPaths())...)
		if err != nil {
			s.logger.Warn("pack watching disabled", "error", err)
		} else {
			defer watcher.Close()
			go s.watchPacks(ctx, watcher)
		}
	}

	srv := &http.Server{
		Addr:              s.cfg.PreviewAddress(),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview listening", "url", s.cfg.PreviewURL())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// watchPacks reloads the preset library whenever a pack file changes.
// A broken pack keeps the previous presets in place.
func (s *Server) watchPacks(ctx context.Context, w *presetpack.Watcher) {
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			if err := s.library.Reload(s.cfg.PackPaths()); err != nil {
				s.logger.Error("pack reload failed", "path", path, "error", err)
				continue
			}
			metrics().packReloads.Inc()
			s.logger.Info("preset packs reloaded", "changed", path)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.logger.Error("pack watcher error", "error", err)
		case <-ctx.Done():
			return
		}
	}
}

// packDirs returns the unique parent directories of the pack paths.
func packDirs(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var dirs []string
	for _, p := range paths {
		dir := filepath.Dir(p)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(s.indexHTML)
}

// handleClientJS serves the embedded client with a content ETag so
// reconnecting tabs skip the transfer.
func (s *Server) handleClientJS(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("If-None-Match") == s.clientETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("ETag", s.clientETag)
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(s.clientJS)
}

// handleLive upgrades to the binary frame protocol and runs a session
// until the client disconnects.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		metrics().wsErrors.WithLabelValues("upgrade").Inc()
		return
	}

	id := strconv.FormatUint(s.nextID.Add(1), 10)
	metrics().activeSessions.Inc()
	defer metrics().activeSessions.Dec()

	newSession(id, conn, s.logger, s.store).start()
}

// presetsResponse is the JSON shape of /api/presets.
type presetsResponse struct {
	Springs map[string]springJSON `json:"springs"`
	Timings map[string]timingJSON `json:"timings"`
}

type springJSON struct {
	Damping   float64 `json:"damping"`
	Stiffness float64 `json:"stiffness"`
}

type timingJSON struct {
	DurationMs int64 `json:"durationMs"`
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	resp := presetsResponse{
		Springs: make(map[string]springJSON),
		Timings: make(map[string]timingJSON),
	}
	for name, p := range s.library.SpringSnapshot() {
		resp.Springs[name] = springJSON{Damping: p.Damping, Stiffness: p.Stiffness}
	}
	for name, p := range s.library.TimingSnapshot() {
		resp.Timings[name] = timingJSON{DurationMs: p.Duration.Milliseconds()}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleEnvelope samples a preset into a value curve. Query parameters
// from, to, and fps override the 0→1 @ 60fps defaults.
func (s *Server) handleEnvelope(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	name := chi.URLParam(r, "name")

	from := queryFloat(r, "from", 0)
	to := queryFloat(r, "to", 1)
	fps := int(queryFloat(r, "fps", envelope.DefaultFPS))

	var env envelope.Envelope
	switch kind {
	case "spring":
		preset, ok := s.library.Spring(name)
		if !ok {
			s.writeError(w, http.StatusNotFound, "unknown spring preset %q", name)
			return
		}
		env = envelope.Spring(preset, from, to, fps)
	case "timing":
		preset, ok := s.library.Timing(name)
		if !ok {
			s.writeError(w, http.StatusNotFound, "unknown timing preset %q", name)
			return
		}
		env = envelope.Timing(from, to, preset.Duration, fps)
	default:
		s.writeError(w, http.StatusBadRequest, "kind must be spring or timing, got %q", kind)
		return
	}

	s.writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleListRecordings(w http.ResponseWriter, r *http.Request) {
	infos, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("listing recordings", "error", err)
		s.writeError(w, http.StatusInternalServerError, "listing recordings")
		return
	}
	s.writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleGetRecording(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, err := s.store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, timeline.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "recording %q not found", id)
			return
		}
		s.logger.Error("loading recording", "recording", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, "loading recording")
		return
	}
	s.writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDeleteRecording(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, timeline.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "recording %q not found", id)
			return
		}
		s.logger.Error("deleting recording", "recording", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, "deleting recording")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, format string, args ...any) {
	s.writeJSON(w, status, map[string]string{"error": fmt.Sprintf(format, args...)})
}

func queryFloat(r *http.Request, key string, fallback float64) float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
