package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/openbudgetke/budget_analyzer/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(
	cfg config.HTTP,
	stager Stager,
	processor Processor,
	uploadsProvider UploadsProvider,
	analysisProvider AnalysisProvider,
) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := NewUploadsHandler(stager, processor, uploadsProvider, analysisProvider)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/uploads", h.UploadDocuments)
		r.Get("/uploads", h.ListUploads)
		r.Get("/uploads/export", h.ExportUploads)
		r.Get("/uploads/{upload_id}/analysis", h.GetAnalysis)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      r,
		},
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
