package app

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gotrial/domain/condition"
	"gotrial/domain/core"
	"gotrial/domain/stimuli"
	"gotrial/models"
	"gotrial/ports"
)

// ResponseService validates and stores questionnaire and round submissions.
type ResponseService struct {
	questionnaires ports.QuestionnaireResponseRepository
	testResponses  ports.TestResponseRepository
	engine         *condition.Engine
}

func NewResponseService(questionnaires ports.QuestionnaireResponseRepository, testResponses ports.TestResponseRepository, engine *condition.Engine) *ResponseService {
	return &ResponseService{
		questionnaires: questionnaires,
		testResponses:  testResponses,
		engine:         engine,
	}
}

// SubmitQuestionnaire stores the pre or post questionnaire answers. Form
// fields that do not belong to the questionnaire, or whose values do not
// parse for their question type, are skipped rather than rejected. A form
// with no usable answers at all is an error.
func (s *ResponseService) SubmitQuestionnaire(ctx context.Context, participant *models.Participant, qType models.QuestionnaireType, form url.Values) error {
	var questions []stimuli.Question
	switch qType {
	case models.QuestionnairePre:
		questions = stimuli.PreQuestionnaire()
	case models.QuestionnairePost:
		questions = stimuli.PostQuestionnaire()
	default:
		return fmt.Errorf("unknown questionnaire type %q", qType)
	}

	now := time.Now().UTC()
	var responses []models.QuestionnaireResponse
	for _, q := range questions {
		raw := strings.TrimSpace(form.Get(q.ID))
		if raw == "" {
			continue
		}
		value, ok := parseNumericAnswer(q, raw)
		if !ok {
			continue
		}
		responses = append(responses, models.QuestionnaireResponse{
			ParticipantID:     participant.ID,
			QuestionID:        q.ID,
			ResponseValue:     value,
			QuestionnaireType: qType,
			CreatedAt:         now,
		})
	}

	if len(responses) == 0 {
		return core.ErrEmptySubmission
	}

	if err := s.questionnaires.InsertMany(ctx, responses); err != nil {
		return fmt.Errorf("failed to store questionnaire responses: %w", err)
	}
	return nil
}

// SubmitTestResponses stores the answers for one round, stamped with the
// condition the participant saw. Question ids already stored for this round
// are dropped so a double-submitted form cannot duplicate rows.
func (s *ResponseService) SubmitTestResponses(ctx context.Context, participant *models.Participant, slug condition.TestSlug, form url.Values, reactionTimeMs int) error {
	source, err := s.engine.ResolveSource(slug, participant.AssignedSourceOrder)
	if err != nil {
		return err
	}

	existing, err := s.testResponses.ExistingQuestionIDs(ctx, participant.ID, slug)
	if err != nil {
		return fmt.Errorf("failed to check existing responses: %w", err)
	}

	now := time.Now().UTC()
	var responses []models.TestResponse
	answered := 0
	for _, q := range stimuli.TestQuestions(slug) {
		raw := submittedAnswer(q, form)
		if raw == "" {
			continue
		}
		if !validAnswer(q, raw) {
			continue
		}
		answered++
		if existing[q.ID] {
			continue
		}
		responses = append(responses, models.TestResponse{
			ParticipantID:  participant.ID,
			TestSlug:       slug,
			QuestionID:     q.ID,
			ResponseValue:  raw,
			ReactionTimeMs: reactionTimeMs,
			ContentSource:  source,
			ContentLength:  participant.AssignedLength,
			CreatedAt:      now,
		})
	}

	if answered == 0 {
		return core.ErrEmptySubmission
	}

	if err := s.testResponses.InsertMany(ctx, responses); err != nil {
		return fmt.Errorf("failed to store test responses: %w", err)
	}
	return nil
}

// parseNumericAnswer converts a Likert or number answer to its integer value.
func parseNumericAnswer(q stimuli.Question, raw string) (int, bool) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if q.Type == stimuli.QuestionLikert7 && (value < 1 || value > 7) {
		return 0, false
	}
	return value, true
}

// submittedAnswer collapses the form values for one question into a single
// stored value. Checkbox questions submit one value per checked option; all
// checked options are kept, joined in submission order, so a single stored
// row carries the full answer.
func submittedAnswer(q stimuli.Question, form url.Values) string {
	values := form[q.ID]
	if q.Type == stimuli.QuestionMultipleChoice && q.MultipleCorrectAnswers {
		var checked []string
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				checked = append(checked, v)
			}
		}
		return strings.Join(checked, "; ")
	}
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

// validAnswer checks a raw form value against its question type.
func validAnswer(q stimuli.Question, raw string) bool {
	switch q.Type {
	case stimuli.QuestionLikert7:
		value, err := strconv.Atoi(raw)
		return err == nil && value >= 1 && value <= 7
	case stimuli.QuestionNumber:
		_, err := strconv.Atoi(raw)
		return err == nil
	case stimuli.QuestionText, stimuli.QuestionMultipleChoice:
		return true
	default:
		return false
	}
}
