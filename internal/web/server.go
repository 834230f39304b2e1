// Package web is the HTTP layer: routing, form parsing and page rendering.
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"taskassign/internal/service"
)

// Server wires HTTP routes to the application services.
type Server struct {
	contributors *service.ContributorService
	tasks        *service.TaskService
	attendance   *service.AttendanceService
	dashboard    *service.DashboardService
	renderer     *Renderer
}

func NewServer(
	contributors *service.ContributorService,
	tasks *service.TaskService,
	attendance *service.AttendanceService,
	dashboard *service.DashboardService,
) (*Server, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Server{
		contributors: contributors,
		tasks:        tasks,
		attendance:   attendance,
		dashboard:    dashboard,
		renderer:     renderer,
	}, nil
}

// Router assembles the full routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleDashboard)

	r.Route("/contributors", func(r chi.Router) {
		r.Get("/", s.handleContributorList)
		r.Get("/create/", s.handleContributorCreateForm)
		r.Post("/create/", s.handleContributorCreate)
		r.Get("/{id}/", s.handleContributorDetail)
		r.Get("/{id}/update/", s.handleContributorUpdateForm)
		r.Post("/{id}/update/", s.handleContributorUpdate)
		r.Get("/{id}/delete/", s.handleContributorDeleteConfirm)
		r.Post("/{id}/delete/", s.handleContributorDelete)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", s.handleTaskList)
		r.Get("/create/", s.handleTaskCreateForm)
		r.Post("/create/", s.handleTaskCreate)
		r.Get("/{id}/", s.handleTaskDetail)
		r.Get("/{id}/update/", s.handleTaskUpdateForm)
		r.Post("/{id}/update/", s.handleTaskUpdate)
		r.Get("/{id}/delete/", s.handleTaskDeleteConfirm)
		r.Post("/{id}/delete/", s.handleTaskDelete)
		r.Post("/{id}/toggle/", s.handleTaskToggle)
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", s.handleAttendanceList)
		r.Get("/take/", s.handleAttendanceTakeForm)
		r.Post("/take/", s.handleAttendanceTake)
	})

	return r
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.dashboard.Stats(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, r, http.StatusOK, "dashboard", map[string]any{
		"Stats": stats,
	})
}

// render injects the one-shot notice carried on the query string by
// post-write redirects, then hands off to the template renderer.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data map[string]any) {
	data["Notice"] = r.URL.Query().Get("notice")
	if err := s.renderer.Render(w, status, page, data); err != nil {
		log.Printf("[error] %v", err)
	}
}

// redirectWithNotice finishes a successful write with a redirect carrying a
// success message for the next page to display.
func redirectWithNotice(w http.ResponseWriter, r *http.Request, path, notice string) {
	http.Redirect(w, r, path+"?notice="+url.QueryEscape(notice), http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// wantsJSON reports whether the caller asked for structured data instead of
// a rendered page.
func wantsJSON(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json"
}

func parseID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parsePage treats anything that is not a positive integer as page one.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (s *Server) notFound(w http.ResponseWriter) {
	http.Error(w, "404 page not found", http.StatusNotFound)
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	log.Printf("[error] %v", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
