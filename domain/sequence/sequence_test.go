package sequence

import (
	"testing"

	"gotrial/domain/condition"
)

func testResolver() *Resolver {
	tests := append([]condition.TestSlug{condition.SlugPractice}, condition.TestSlugs()...)
	return NewResolver(tests)
}

// TestNextWalksFullPipeline verifies the complete walk from consent to
// completion visits every test's three phases in order.
func TestNextWalksFullPipeline(t *testing.T) {
	r := testResolver()

	step := Step{Phase: PhaseConsent}
	var visited []Step
	for step.Phase != PhaseComplete {
		next, err := r.Next(step)
		if err != nil {
			t.Fatalf("Next(%+v): %v", step, err)
		}
		visited = append(visited, next)
		step = next
	}

	// consent -> pre -> 7 tests x (intro, content, questions) -> post -> complete
	wantSteps := 1 + 7*3 + 1 + 1
	if len(visited) != wantSteps {
		t.Fatalf("pipeline visited %d steps, want %d", len(visited), wantSteps)
	}

	if visited[0].Phase != PhasePre {
		t.Errorf("first step after consent is %s, want pre", visited[0].Phase)
	}
	if visited[1] != (Step{Phase: PhaseIntro, Test: condition.SlugPractice}) {
		t.Errorf("first test step is %+v, want practice intro", visited[1])
	}
	last := visited[len(visited)-1]
	if last.Phase != PhaseComplete {
		t.Errorf("pipeline ends at %s, want complete", last.Phase)
	}
	if secondToLast := visited[len(visited)-2]; secondToLast.Phase != PhasePost {
		t.Errorf("step before complete is %s, want post", secondToLast.Phase)
	}
}

// TestNextAfterLastTestGoesToPost verifies the final round's questions lead to
// the post questionnaire rather than another intro.
func TestNextAfterLastTestGoesToPost(t *testing.T) {
	r := testResolver()
	last := condition.TestSlugs()[len(condition.TestSlugs())-1]

	next, err := r.Next(Step{Phase: PhaseQuestion, Test: last})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if next.Phase != PhasePost {
		t.Errorf("after last questions got %+v, want post", next)
	}
}

// TestCompleteIsTerminal verifies completion has no successor.
func TestCompleteIsTerminal(t *testing.T) {
	r := testResolver()
	if _, err := r.Next(Step{Phase: PhaseComplete}); err == nil {
		t.Error("Next(complete) succeeded, want error")
	}
}

// TestNextRejectsUnknownTest verifies steps referencing a test outside the
// sequence are errors.
func TestNextRejectsUnknownTest(t *testing.T) {
	r := testResolver()
	if _, err := r.Next(Step{Phase: PhaseIntro, Test: "nope"}); err == nil {
		t.Error("Next accepted an unknown test")
	}
}

// TestPath pins the URL layout for each phase kind.
func TestPath(t *testing.T) {
	r := testResolver()
	id := "abc"

	tests := []struct {
		step Step
		want string
	}{
		{Step{Phase: PhaseConsent}, "/"},
		{Step{Phase: PhasePre}, "/participant/abc/pre"},
		{Step{Phase: PhasePost}, "/participant/abc/post"},
		{Step{Phase: PhaseComplete}, "/participant/abc/complete"},
		{Step{Phase: PhaseIntro, Test: condition.SlugEmailInbox}, "/participant/abc/test/email-inbox/intro"},
		{Step{Phase: PhaseContent, Test: condition.SlugEmailInbox}, "/participant/abc/test/email-inbox/content"},
		{Step{Phase: PhaseQuestion, Test: condition.SlugEmailInbox}, "/participant/abc/test/email-inbox/questions"},
	}
	for _, test := range tests {
		if got := r.Path(id, test.step); got != test.want {
			t.Errorf("Path(%+v) = %s, want %s", test.step, got, test.want)
		}
	}
}
