// Package sequence resolves the fixed linear pipeline a participant walks
// through: consent, pre-questionnaire, the test rounds (intro, content,
// questions each), post-questionnaire, completion.
package sequence

import (
	"fmt"

	"gotrial/domain/condition"
	"gotrial/domain/core"
)

// Phase is the coarse position within the pipeline.
type Phase string

const (
	PhaseConsent  Phase = "consent"
	PhasePre      Phase = "pre"
	PhaseIntro    Phase = "intro"
	PhaseContent  Phase = "content"
	PhaseQuestion Phase = "questions"
	PhasePost     Phase = "post"
	PhaseComplete Phase = "complete"
)

// Step is a single addressable position in the pipeline. Test is set only for
// the three test-round phases.
type Step struct {
	Phase Phase
	Test  condition.TestSlug
}

// Resolver computes next steps over a fixed ordered test list. It is a pure
// function of that list plus the current step; no participant state is
// consulted.
type Resolver struct {
	tests []condition.TestSlug
}

// NewResolver builds a resolver over the given test order.
func NewResolver(tests []condition.TestSlug) *Resolver {
	return &Resolver{tests: tests}
}

// Tests returns the resolver's test order.
func (r *Resolver) Tests() []condition.TestSlug {
	return r.tests
}

// FirstTest returns the first test in the sequence.
func (r *Resolver) FirstTest() (condition.TestSlug, error) {
	if len(r.tests) == 0 {
		return "", fmt.Errorf("test sequence is empty")
	}
	return r.tests[0], nil
}

// NextAfterTest returns the test following slug, or false when slug is the
// last test in the sequence.
func (r *Resolver) NextAfterTest(slug condition.TestSlug) (condition.TestSlug, bool, error) {
	idx := r.indexOf(slug)
	if idx < 0 {
		return "", false, fmt.Errorf("%w: %s", core.ErrTestNotFound, slug)
	}
	if idx == len(r.tests)-1 {
		return "", false, nil
	}
	return r.tests[idx+1], true, nil
}

// Next resolves the step after current. PhaseComplete is terminal and has no
// successor.
func (r *Resolver) Next(current Step) (Step, error) {
	switch current.Phase {
	case PhaseConsent:
		return Step{Phase: PhasePre}, nil
	case PhasePre:
		first, err := r.FirstTest()
		if err != nil {
			return Step{}, err
		}
		return Step{Phase: PhaseIntro, Test: first}, nil
	case PhaseIntro:
		if r.indexOf(current.Test) < 0 {
			return Step{}, fmt.Errorf("%w: %s", core.ErrTestNotFound, current.Test)
		}
		return Step{Phase: PhaseContent, Test: current.Test}, nil
	case PhaseContent:
		if r.indexOf(current.Test) < 0 {
			return Step{}, fmt.Errorf("%w: %s", core.ErrTestNotFound, current.Test)
		}
		return Step{Phase: PhaseQuestion, Test: current.Test}, nil
	case PhaseQuestion:
		next, ok, err := r.NextAfterTest(current.Test)
		if err != nil {
			return Step{}, err
		}
		if !ok {
			return Step{Phase: PhasePost}, nil
		}
		return Step{Phase: PhaseIntro, Test: next}, nil
	case PhasePost:
		return Step{Phase: PhaseComplete}, nil
	case PhaseComplete:
		return Step{}, fmt.Errorf("%w: complete is terminal", core.ErrStepNotFound)
	}
	return Step{}, fmt.Errorf("%w: %s", core.ErrStepNotFound, current.Phase)
}

// Path renders the URL fragment for a step under a participant.
func (r *Resolver) Path(participantID string, s Step) string {
	switch s.Phase {
	case PhaseConsent:
		return "/"
	case PhasePre, PhasePost, PhaseComplete:
		return fmt.Sprintf("/participant/%s/%s", participantID, s.Phase)
	default:
		return fmt.Sprintf("/participant/%s/test/%s/%s", participantID, s.Test, s.Phase)
	}
}

func (r *Resolver) indexOf(slug condition.TestSlug) int {
	for i, s := range r.tests {
		if s == slug {
			return i
		}
	}
	return -1
}
