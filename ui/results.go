package ui

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"gotrial/adapters/excel"
	"gotrial/app"
	"gotrial/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ResultsApp is the researcher-facing application: collected sessions, the
// statistical analysis and the workbook export. It runs on its own port and
// is never linked from participant pages.
type ResultsApp struct {
	router       *chi.Mux
	templates    *template.Template
	participants ports.ParticipantRepository
	analysis     *app.AnalysisService
	exporter     *excel.Exporter
}

// NewResultsApp creates the researcher results application.
func NewResultsApp(participants ports.ParticipantRepository, analysis *app.AnalysisService, exporter *excel.Exporter) (*ResultsApp, error) {
	templates, err := template.New("").Funcs(template.FuncMap{
		"pct": func(f float64) string { return fmt.Sprintf("%.1f%%", f*100) },
		"f3":  func(f float64) string { return fmt.Sprintf("%.3f", f) },
	}).ParseFS(templateFiles, "templates/results.html", "templates/analysis.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse results templates: %w", err)
	}

	a := &ResultsApp{
		router:       chi.NewRouter(),
		templates:    templates,
		participants: participants,
		analysis:     analysis,
		exporter:     exporter,
	}

	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	a.router.Get("/", a.handleIndex)
	a.router.Get("/analysis", a.handleAnalysis)
	a.router.Get("/export", a.handleExport)

	return a, nil
}

// ListenAndServe starts the results server on the given address.
func (a *ResultsApp) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the chi mux, used by tests.
func (a *ResultsApp) Router() *chi.Mux {
	return a.router
}

func (a *ResultsApp) handleIndex(w http.ResponseWriter, r *http.Request) {
	participants, err := a.participants.List(r.Context())
	if err != nil {
		http.Error(w, "failed to load participants", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, "results.html", map[string]interface{}{
		"Participants": participants,
		"Count":        len(participants),
	}); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func (a *ResultsApp) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := a.analysis.Analyze(r.Context())
	if err != nil {
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, "analysis.html", result); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func (a *ResultsApp) handleExport(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("experiment-data-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))

	if err := a.exporter.WriteTo(r.Context(), w); err != nil {
		http.Error(w, "export failed", http.StatusInternalServerError)
	}
}
