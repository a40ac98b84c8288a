package ui

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"gotrial/app"
	"gotrial/domain/sequence"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Server is the participant-facing web application.
type Server struct {
	router       *gin.Engine
	templates    *template.Template
	participants *app.ParticipantService
	content      *app.ContentService
	responses    *app.ResponseService
	resolver     *sequence.Resolver
	cookieName   string
}

// Config holds participant server settings.
type Config struct {
	GinMode    string
	CookieName string
}

// NewServer creates the participant web server.
func NewServer(cfg Config, participants *app.ParticipantService, content *app.ContentService, responses *app.ResponseService, resolver *sequence.Resolver) (*Server, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"until": func(n int) []int {
			res := make([]int, n)
			for i := range res {
				res[i] = i
			}
			return res
		},
		// Likert scale positions.
		"scale": func() []int { return []int{1, 2, 3, 4, 5, 6, 7} },
		"upper": strings.ToUpper,
		"title": func(s string) string {
			return strings.Title(strings.ReplaceAll(s, "-", " "))
		},
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(templateFiles,
		"templates/consent.html",
		"templates/questionnaire.html",
		"templates/intro.html",
		"templates/content.html",
		"templates/questions.html",
		"templates/complete.html",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:       gin.Default(),
		templates:    templates,
		participants: participants,
		content:      content,
		responses:    responses,
		resolver:     resolver,
		cookieName:   cfg.CookieName,
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleConsent)
	s.router.POST("/participants", s.handleRegister)

	p := s.router.Group("/participant/:id")
	p.GET("/pre", s.handlePreQuestionnaire)
	p.POST("/pre", s.handlePreSubmit)
	p.GET("/test/:slug/intro", s.handleIntro)
	p.GET("/test/:slug/content", s.handleContent)
	p.GET("/test/:slug/questions", s.handleQuestions)
	p.POST("/test/:slug/questions", s.handleQuestionsSubmit)
	p.GET("/post", s.handlePostQuestionnaire)
	p.POST("/post", s.handlePostSubmit)
	p.GET("/complete", s.handleComplete)
}

// Run starts the server on the given address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the gin engine, used by tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) render(c *gin.Context, status int, name string, data interface{}) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		c.String(500, "template error: %v", err)
	}
}
