package app

import (
	"context"
	"sync"

	"gotrial/domain/condition"
	"gotrial/internal/analysis"
	"gotrial/models"
	"gotrial/ports"

	"golang.org/x/sync/errgroup"
)

// TestAnalysis summarizes one round's Likert responses across conditions.
type TestAnalysis struct {
	Slug      condition.TestSlug                                `json:"slug"`
	Responses int                                               `json:"responses"`
	BySource  map[condition.ContentSource]analysis.Descriptives `json:"bySource"`
	ByLength  map[condition.ContentLength]analysis.Descriptives `json:"byLength"`
	// SourceANOVA is nil when too few cells have data to run the test.
	SourceANOVA *analysis.ANOVAResult `json:"sourceAnova,omitempty"`
}

// ExperimentAnalysis is the researcher-facing snapshot of collected data.
type ExperimentAnalysis struct {
	Participants int                                 `json:"participants"`
	Tests        map[condition.TestSlug]TestAnalysis `json:"tests"`
}

// AnalysisService computes descriptive and inferential statistics over the
// stored responses. Rounds are analyzed concurrently; the practice round is
// excluded because its condition never varies.
type AnalysisService struct {
	participants  ports.ParticipantRepository
	testResponses ports.TestResponseRepository
	tests         []condition.TestSlug
}

func NewAnalysisService(participants ports.ParticipantRepository, testResponses ports.TestResponseRepository, tests []condition.TestSlug) *AnalysisService {
	return &AnalysisService{
		participants:  participants,
		testResponses: testResponses,
		tests:         tests,
	}
}

// Analyze builds the full per-round analysis.
func (s *AnalysisService) Analyze(ctx context.Context) (*ExperimentAnalysis, error) {
	participants, err := s.participants.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &ExperimentAnalysis{
		Participants: len(participants),
		Tests:        make(map[condition.TestSlug]TestAnalysis, len(s.tests)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, slug := range s.tests {
		slug := slug
		g.Go(func() error {
			responses, err := s.testResponses.ListBySlug(gctx, slug)
			if err != nil {
				return err
			}
			ta := analyzeTest(slug, responses)
			mu.Lock()
			result.Tests[slug] = ta
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func analyzeTest(slug condition.TestSlug, responses []models.TestResponse) TestAnalysis {
	bySource := analysis.GroupBySource(responses)
	byLength := analysis.GroupByLength(responses)

	ta := TestAnalysis{
		Slug:      slug,
		Responses: len(responses),
		BySource:  make(map[condition.ContentSource]analysis.Descriptives, len(bySource)),
		ByLength:  make(map[condition.ContentLength]analysis.Descriptives, len(byLength)),
	}

	var groups [][]float64
	for source, values := range bySource {
		ta.BySource[source] = analysis.Describe(values)
		groups = append(groups, values)
	}
	for length, values := range byLength {
		ta.ByLength[length] = analysis.Describe(values)
	}

	if anova, err := analysis.OneWayANOVA(groups); err == nil {
		ta.SourceANOVA = anova
	}

	return ta
}
