package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/swimtools/psychmark"
	"github.com/swimtools/psychmark/extract"
	"github.com/swimtools/psychmark/internal/config"
	"github.com/swimtools/psychmark/model"
)

// Server handles the psych sheet upload, search, and download flow.
type Server struct {
	cfg config.Config
	log *logrus.Logger
	mux *http.ServeMux
}

// New builds a Server from the given configuration and logger.
func New(cfg config.Config, log *logrus.Logger) *Server {
	s := &Server{
		cfg: cfg,
		log: log,
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/search", s.handleSearch)
	s.mux.HandleFunc("/highlight", s.handleHighlight)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe runs the server on the configured address until the
// listener fails.
func (s *Server) ListenAndServe() error {
	s.log.WithField("addr", s.cfg.Server.Addr).Info("listening")
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.render(w, http.StatusOK, pageData{})
}

// submission is a validated upload: the sheet bytes plus the parsed
// query and mode fields.
type submission struct {
	sheet []byte
	query string
	mode  model.Mode
}

// readSubmission parses and validates the multipart form shared by the
// search and highlight endpoints. On failure it writes the error page
// itself and returns false.
func (s *Server) readSubmission(w http.ResponseWriter, r *http.Request) (submission, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return submission{}, false
	}

	maxBytes := s.cfg.Server.MaxUploadMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.render(w, http.StatusRequestEntityTooLarge, pageData{
			Error: fmt.Sprintf("Upload too large or malformed (limit %d MB).", s.cfg.Server.MaxUploadMB),
		})
		return submission{}, false
	}

	query := strings.TrimSpace(r.FormValue("query"))
	if query == "" {
		s.render(w, http.StatusUnprocessableEntity, pageData{
			Error: "Please enter a team code or swimmer name.",
		})
		return submission{}, false
	}

	mode := model.ModeTeamCode
	if r.FormValue("mode") == "name" {
		mode = model.ModeSwimmerName
	}

	file, _, err := r.FormFile("sheet")
	if err != nil {
		s.render(w, http.StatusUnprocessableEntity, pageData{
			Query: query, Mode: mode,
			Error: "Please choose a psych sheet PDF to upload.",
		})
		return submission{}, false
	}
	defer file.Close()

	sheet, err := io.ReadAll(file)
	if err != nil {
		s.render(w, http.StatusInternalServerError, pageData{
			Query: query, Mode: mode,
			Error: "Reading the upload failed. Please try again.",
		})
		return submission{}, false
	}

	return submission{sheet: sheet, query: query, mode: mode}, true
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	sub, ok := s.readSubmission(w, r)
	if !ok {
		return
	}

	start := time.Now()
	matches, err := psychmark.FromBytes(sub.sheet).
		Query(sub.query).
		SearchMode(sub.mode).
		Matches()
	if err != nil {
		s.renderDocumentError(w, sub, err)
		return
	}

	s.log.WithFields(logrus.Fields{
		"mode":     sub.mode,
		"query":    sub.query,
		"matches":  len(matches),
		"duration": time.Since(start),
	}).Info("search")

	s.render(w, http.StatusOK, pageData{
		Query:    sub.query,
		Mode:     sub.mode,
		Searched: true,
		Results:  toResults(matches),
	})
}

func (s *Server) handleHighlight(w http.ResponseWriter, r *http.Request) {
	sub, ok := s.readSubmission(w, r)
	if !ok {
		return
	}

	start := time.Now()
	annotated, matches, err := psychmark.FromBytes(sub.sheet).
		Query(sub.query).
		SearchMode(sub.mode).
		HighlightColor(s.cfg.Highlight.R, s.cfg.Highlight.G, s.cfg.Highlight.B).
		Opacity(s.cfg.Highlight.Opacity).
		Highlight()
	if err != nil {
		s.renderDocumentError(w, sub, err)
		return
	}

	s.log.WithFields(logrus.Fields{
		"mode":     sub.mode,
		"query":    sub.query,
		"matches":  len(matches),
		"bytes":    len(annotated),
		"duration": time.Since(start),
	}).Info("highlight")

	if len(matches) == 0 {
		// Nothing to mark up; show the empty result instead of
		// handing back an unchanged document.
		s.render(w, http.StatusOK, pageData{
			Query:    sub.query,
			Mode:     sub.mode,
			Searched: true,
		})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="highlighted.pdf"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(annotated)))
	if _, err := w.Write(annotated); err != nil {
		s.log.WithError(err).Warn("writing download")
	}
}

// renderDocumentError maps pipeline failures to the error page. Broken
// uploads get a friendly message; anything else is a server fault.
func (s *Server) renderDocumentError(w http.ResponseWriter, sub submission, err error) {
	var docErr *extract.DocumentError
	if errors.As(err, &docErr) {
		s.render(w, http.StatusUnprocessableEntity, pageData{
			Query: sub.query, Mode: sub.mode,
			Error: "That file could not be read as a PDF.",
		})
		return
	}

	s.log.WithError(err).Error("processing upload")
	s.render(w, http.StatusInternalServerError, pageData{
		Query: sub.query, Mode: sub.mode,
		Error: "Something went wrong while processing the sheet.",
	})
}

func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		s.log.WithError(err).Error("rendering page")
	}
}

// toResults converts matches to their 1-based presentation form.
func toResults(matches []model.Match) []result {
	results := make([]result, len(matches))
	for i, m := range matches {
		results[i] = result{
			Page: m.Page + 1,
			Line: m.Line + 1,
			Text: m.Text,
		}
	}
	return results
}
