package ui

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gotrial/app"
	"gotrial/domain/condition"
	"gotrial/domain/core"
	"gotrial/domain/sequence"
	"gotrial/domain/stimuli"
	"gotrial/models"

	"github.com/gin-gonic/gin"
)

const cookieMaxAge = 7 * 24 * 3600

// handleConsent shows the information and consent page. A participant who
// already holds a session cookie is sent back into their pipeline instead of
// being re-randomized into a new condition.
func (s *Server) handleConsent(c *gin.Context) {
	if id, err := c.Cookie(s.cookieName); err == nil && id != "" {
		if participant, err := s.participants.Get(c.Request.Context(), id); err == nil {
			c.Redirect(http.StatusFound, s.resolver.Path(string(participant.ID), sequence.Step{Phase: sequence.PhasePre}))
			return
		}
	}

	doc, err := renderDoc("consent")
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load consent document")
		return
	}
	s.render(c, http.StatusOK, "consent.html", gin.H{"Consent": doc})
}

func (s *Server) handleRegister(c *gin.Context) {
	age, err := strconv.Atoi(c.PostForm("age"))
	if err != nil || age < 18 || age > 120 {
		s.renderConsentError(c, http.StatusBadRequest, "Please enter a valid age.")
		return
	}

	participant, err := s.participants.Register(c.Request.Context(), app.RegisterInput{
		Age:        age,
		AccessCode: c.PostForm("accessCode"),
		IsMobile:   c.PostForm("isMobile") == "true",
	})
	if errors.Is(err, core.ErrInvalidAccessCode) {
		s.renderConsentError(c, http.StatusForbidden, "The access code you entered is not valid.")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to create session")
		return
	}

	c.SetCookie(s.cookieName, string(participant.ID), cookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, s.resolver.Path(string(participant.ID), sequence.Step{Phase: sequence.PhasePre}))
}

func (s *Server) renderConsentError(c *gin.Context, status int, msg string) {
	doc, err := renderDoc("consent")
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load consent document")
		return
	}
	s.render(c, status, "consent.html", gin.H{"Consent": doc, "Error": msg})
}

func (s *Server) handlePreQuestionnaire(c *gin.Context) {
	participant, ok := s.loadParticipant(c)
	if !ok {
		return
	}
	s.render(c, http.StatusOK, "questionnaire.html", gin.H{
		"Title":     "Before we begin",
		"Questions": stimuli.PreQuestionnaire(),
		"Action":    s.resolver.Path(string(participant.ID), sequence.Step{Phase: sequence.PhasePre}),
	})
}

func (s *Server) handlePreSubmit(c *gin.Context) {
	s.submitQuestionnaire(c, models.QuestionnairePre, sequence.PhasePre, "Before we begin", stimuli.PreQuestionnaire())
}

func (s *Server) handlePostQuestionnaire(c *gin.Context) {
	participant, ok := s.loadParticipant(c)
	if !ok {
		return
	}
	s.render(c, http.StatusOK, "questionnaire.html", gin.H{
		"Title":     "Final questions",
		"Questions": stimuli.PostQuestionnaire(),
		"Action":    s.resolver.Path(string(participant.ID), sequence.Step{Phase: sequence.PhasePost}),
	})
}

func (s *Server) handlePostSubmit(c *gin.Context) {
	s.submitQuestionnaire(c, models.QuestionnairePost, sequence.PhasePost, "Final questions", stimuli.PostQuestionnaire())
}

func (s *Server) submitQuestionnaire(c *gin.Context, qType models.QuestionnaireType, phase sequence.Phase, title string, questions []stimuli.Question) {
	participant, ok := s.loadParticipant(c)
	if !ok {
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "malformed form")
		return
	}

	err := s.responses.SubmitQuestionnaire(c.Request.Context(), participant, qType, c.Request.PostForm)
	if errors.Is(err, core.ErrEmptySubmission) {
		s.render(c, http.StatusBadRequest, "questionnaire.html", gin.H{
			"Title":     title,
			"Questions": questions,
			"Action":    s.resolver.Path(string(participant.ID), sequence.Step{Phase: phase}),
			"Error":     "Please answer at least one question before continuing.",
		})
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to store responses")
		return
	}

	next, err := s.resolver.Next(sequence.Step{Phase: phase})
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to resolve next step")
		return
	}
	c.Redirect(http.StatusFound, s.resolver.Path(string(participant.ID), next))
}

func (s *Server) handleIntro(c *gin.Context) {
	participant, ok := s.loadParticipant(c)
	if !ok {
		return
	}
	slug, ok := s.loadSlug(c)
	if !ok {
		return
	}

	data := gin.H{
		"Slug":     slug,
		"Practice": slug == condition.SlugPractice,
		"Next":     s.resolver.Path(string(participant.ID), sequence.Step{Phase: sequence.PhaseContent, Test: slug}),
	}
	if slug == condition.SlugPractice {
		doc, err := renderDoc("instructions")
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to load instructions")
			return
		}
		data["Instructions"] = doc
	}
	s.render(c, http.StatusOK, "intro.html", data)
}

func (s *Server) handleContent(c *gin.Context) {
	participant, ok := s.loadParticipant(c)
	if !ok {
		return
	}
	slug, ok := s.loadSlug(c)
	if !ok {
		return
	}

	payload, err := s.content.ContentFor(participant, slug)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to build content")
		return
	}

	maskedSource, err := condition.MaskSource(payload.Source)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to encode condition")
		return
	}
	maskedLength, err := condition.MaskLength(payload.Length)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to encode condition")
		return
	}

	questionsPath := s.resolver.Path(string(participant.ID), sequence.Step{Phase: sequence.PhaseQuestion, Test: slug})
	next := fmt.Sprintf("%s?c=%d&l=%d&shown=%d", questionsPath, maskedSource, maskedLength, time.Now().UnixMilli())

	s.render(c, http.StatusOK, "content.html", gin.H{
		"Slug":    slug,
		"Payload": payload,
		"Next":    next,
	})
}

func (s *Server) handleQuestions(c *gin.Context) {
	participant, ok := s.loadParticipant(c)
	if !ok {
		return
	}
	slug, ok := s.loadSlug(c)
	if !ok {
		return
	}

	// The masked indices are decoded only to reject tampered URLs; the stored
	// condition always comes from the server-side assignment.
	if raw := c.Query("c"); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err == nil {
			_, err = condition.UnmaskSource(idx)
		}
		if err != nil {
			c.String(http.StatusBadRequest, "invalid condition reference")
			return
		}
	}
	if raw := c.Query("l"); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err == nil {
			_, err = condition.UnmaskLength(idx)
		}
		if err != nil {
			c.String(http.StatusBadRequest, "invalid condition reference")
			return
		}
	}

	s.render(c, http.StatusOK, "questions.html", gin.H{
		"Slug":      slug,
		"Questions": stimuli.TestQuestions(slug),
		"Action":    s.resolver.Path(string(participant.ID), sequence.Step{Phase: sequence.PhaseQuestion, Test: slug}),
		"ShownAt":   c.Query("shown"),
	})
}

func (s *Server) handleQuestionsSubmit(c *gin.Context) {
	participant, ok := s.loadParticipant(c)
	if !ok {
		return
	}
	slug, ok := s.loadSlug(c)
	if !ok {
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "malformed form")
		return
	}

	reactionMs := 0
	if shownAt, err := strconv.ParseInt(c.PostForm("shownAt"), 10, 64); err == nil {
		if elapsed := time.Now().UnixMilli() - shownAt; elapsed > 0 {
			reactionMs = int(elapsed)
		}
	}

	err := s.responses.SubmitTestResponses(c.Request.Context(), participant, slug, c.Request.PostForm, reactionMs)
	if errors.Is(err, core.ErrEmptySubmission) {
		s.render(c, http.StatusBadRequest, "questions.html", gin.H{
			"Slug":      slug,
			"Questions": stimuli.TestQuestions(slug),
			"Action":    s.resolver.Path(string(participant.ID), sequence.Step{Phase: sequence.PhaseQuestion, Test: slug}),
			"ShownAt":   c.PostForm("shownAt"),
			"Error":     "Please answer at least one question before continuing.",
		})
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to store responses")
		return
	}

	next, err := s.resolver.Next(sequence.Step{Phase: sequence.PhaseQuestion, Test: slug})
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to resolve next step")
		return
	}
	c.Redirect(http.StatusFound, s.resolver.Path(string(participant.ID), next))
}

func (s *Server) handleComplete(c *gin.Context) {
	if _, ok := s.loadParticipant(c); !ok {
		return
	}
	s.render(c, http.StatusOK, "complete.html", gin.H{})
}

// loadParticipant resolves the :id URL segment, writing the error response
// itself when the participant cannot be loaded.
func (s *Server) loadParticipant(c *gin.Context) (*models.Participant, bool) {
	participant, err := s.participants.Get(c.Request.Context(), c.Param("id"))
	if core.IsNotFoundError(err) {
		c.String(http.StatusNotFound, "unknown participant")
		return nil, false
	}
	if err != nil {
		c.String(http.StatusBadRequest, "invalid participant id")
		return nil, false
	}
	return participant, true
}

// loadSlug validates the :slug URL segment against the configured sequence.
func (s *Server) loadSlug(c *gin.Context) (condition.TestSlug, bool) {
	slug := condition.TestSlug(c.Param("slug"))
	for _, t := range s.resolver.Tests() {
		if t == slug {
			return slug, true
		}
	}
	c.String(http.StatusNotFound, "unknown test")
	return "", false
}
