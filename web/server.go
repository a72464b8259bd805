// Package web serves a live preview of the site, rendering every page on
// request.
package web

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"impractical.co/learnphoto"
)

// Server is an http.Handler serving a PhotoSite. The site can be swapped
// while the Server is running.
type Server struct {
	site      atomic.Pointer[learnphoto.PhotoSite]
	imagesDir string
	logger    *slog.Logger
	router    chi.Router
}

// ServerConfig holds the settings for NewServer.
type ServerConfig struct {
	// ImagesDir is served under /images/. If it's empty, nothing is.
	ImagesDir string

	// Logger receives request logs. If nil, nothing is logged.
	Logger *slog.Logger
}

// NewServer returns a Server rendering site.
func NewServer(site *learnphoto.PhotoSite, cfg ServerConfig) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = learnphoto.Logger(context.Background())
	}
	s := &Server{
		imagesDir: cfg.ImagesDir,
		logger:    logger,
	}
	s.site.Store(site)
	s.router = s.buildRouter()
	return s
}

// Site returns the site currently being served.
func (s *Server) Site() *learnphoto.PhotoSite {
	return s.site.Load()
}

// SetSite replaces the site being served. Requests already in flight finish
// with the old site.
func (s *Server) SetSite(site *learnphoto.PhotoSite) {
	s.site.Store(site)
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/"+learnphoto.StylesheetName, s.handleStylesheet)
	if s.imagesDir != "" {
		r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(s.imagesDir))))
	}
	r.Get("/{file}", s.handlePage)

	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	site := s.Site()

	file := chi.URLParam(r, "file")
	if file == "" {
		file = learnphoto.KindHome.File()
	}
	if !strings.HasSuffix(file, ".html") {
		http.NotFound(w, r)
		return
	}

	status := http.StatusOK
	build := learnphoto.BuildDocument
	id := strings.TrimSuffix(file, ".html")
	if kind, ok := learnphoto.PageKindForFile(file); ok {
		id = kind.ID()
	} else {
		status = http.StatusNotFound
		build = learnphoto.BuildNotFoundDocument
	}

	doc, err := build(ctx, site, id)
	if err != nil {
		learnphoto.Logger(ctx).ErrorContext(ctx, "error building page", "file", file, "error", err)
		s.serverError(w, r, site)
		return
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		learnphoto.Logger(ctx).ErrorContext(ctx, "error serializing page", "file", file, "error", err)
		s.serverError(w, r, site)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, site *learnphoto.PhotoSite) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	learnphoto.Render(r.Context(), w, site, site.ServerErrorPage(r.Context()))
}

func (*Server) handleStylesheet(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(learnphoto.Stylesheet())
}
