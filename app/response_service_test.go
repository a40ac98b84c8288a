package app

import (
	"context"
	"math/rand"
	"net/url"
	"testing"

	"gotrial/domain/condition"
	"gotrial/domain/core"
	"gotrial/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuestionnaireRepo struct {
	inserted []models.QuestionnaireResponse
}

func (f *fakeQuestionnaireRepo) InsertMany(_ context.Context, responses []models.QuestionnaireResponse) error {
	f.inserted = append(f.inserted, responses...)
	return nil
}

func (f *fakeQuestionnaireRepo) List(context.Context) ([]models.QuestionnaireResponse, error) {
	return f.inserted, nil
}

type fakeTestResponseRepo struct {
	inserted []models.TestResponse
	existing map[string]bool
}

func (f *fakeTestResponseRepo) InsertMany(_ context.Context, responses []models.TestResponse) error {
	f.inserted = append(f.inserted, responses...)
	return nil
}

func (f *fakeTestResponseRepo) ExistingQuestionIDs(context.Context, core.ParticipantID, condition.TestSlug) (map[string]bool, error) {
	if f.existing == nil {
		return map[string]bool{}, nil
	}
	return f.existing, nil
}

func (f *fakeTestResponseRepo) List(context.Context) ([]models.TestResponse, error) {
	return f.inserted, nil
}

func (f *fakeTestResponseRepo) ListBySlug(context.Context, condition.TestSlug) ([]models.TestResponse, error) {
	return f.inserted, nil
}

func testEngine(t *testing.T) *condition.Engine {
	t.Helper()
	engine, err := condition.NewEngine(condition.Config{
		Partition: condition.DefaultPartition(),
		Orders:    condition.DefaultOrderTable(),
		Practice:  condition.SlugPractice,
		Rand:      rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	return engine
}

func testParticipant() *models.Participant {
	return models.NewParticipant(condition.Assignment{
		SourceOrder: 1,
		Length:      condition.LengthShorter,
	}, 30, false, false, false)
}

func TestSubmitQuestionnaireStoresAnswers(t *testing.T) {
	qRepo := &fakeQuestionnaireRepo{}
	svc := NewResponseService(qRepo, &fakeTestResponseRepo{}, testEngine(t))

	form := url.Values{}
	form.Set("pre_q1", "5")
	form.Set("pre_q2", "3")

	err := svc.SubmitQuestionnaire(context.Background(), testParticipant(), models.QuestionnairePre, form)
	require.NoError(t, err)
	require.Len(t, qRepo.inserted, 2)
	assert.Equal(t, models.QuestionnairePre, qRepo.inserted[0].QuestionnaireType)
	assert.Equal(t, 5, qRepo.inserted[0].ResponseValue)
}

func TestSubmitQuestionnaireSkipsMalformedValues(t *testing.T) {
	qRepo := &fakeQuestionnaireRepo{}
	svc := NewResponseService(qRepo, &fakeTestResponseRepo{}, testEngine(t))

	form := url.Values{}
	form.Set("pre_q1", "not-a-number")
	form.Set("pre_q2", "9") // out of the 1..7 scale
	form.Set("pre_q3", "4")

	err := svc.SubmitQuestionnaire(context.Background(), testParticipant(), models.QuestionnairePre, form)
	require.NoError(t, err)
	require.Len(t, qRepo.inserted, 1)
	assert.Equal(t, "pre_q3", qRepo.inserted[0].QuestionID)
}

func TestSubmitQuestionnaireRejectsEmptyForm(t *testing.T) {
	svc := NewResponseService(&fakeQuestionnaireRepo{}, &fakeTestResponseRepo{}, testEngine(t))

	err := svc.SubmitQuestionnaire(context.Background(), testParticipant(), models.QuestionnairePre, url.Values{})
	assert.ErrorIs(t, err, core.ErrEmptySubmission)
}

func TestSubmitTestResponsesStampsCondition(t *testing.T) {
	tRepo := &fakeTestResponseRepo{}
	svc := NewResponseService(&fakeQuestionnaireRepo{}, tRepo, testEngine(t))

	form := url.Values{}
	form.Set("push-notifications_accuracy", "6")
	form.Set("push-notifications_confidence", "4")

	participant := testParticipant()
	err := svc.SubmitTestResponses(context.Background(), participant, condition.SlugPushNotifications, form, 1234)
	require.NoError(t, err)
	require.Len(t, tRepo.inserted, 2)

	for _, resp := range tRepo.inserted {
		// Order 1 puts push-notifications (SetA) on original data.
		assert.Equal(t, condition.SourceOriginal, resp.ContentSource)
		assert.Equal(t, condition.LengthShorter, resp.ContentLength)
		assert.Equal(t, 1234, resp.ReactionTimeMs)
		assert.Equal(t, participant.ID, resp.ParticipantID)
	}
}

func TestSubmitTestResponsesKeepsAllCheckedOptions(t *testing.T) {
	tRepo := &fakeTestResponseRepo{}
	svc := NewResponseService(&fakeQuestionnaireRepo{}, tRepo, testEngine(t))

	// The comprehension question is a checkbox group: the browser submits one
	// value per checked option under the same key.
	form := url.Values{}
	form.Add("push-notifications_comprehension", "There is a severe weather alert active in your area")
	form.Add("push-notifications_comprehension", "You have an upcoming meeting with a team member named Sarah")

	err := svc.SubmitTestResponses(context.Background(), testParticipant(), condition.SlugPushNotifications, form, 0)
	require.NoError(t, err)
	require.Len(t, tRepo.inserted, 1)
	assert.Equal(t,
		"There is a severe weather alert active in your area; You have an upcoming meeting with a team member named Sarah",
		tRepo.inserted[0].ResponseValue)
}

func TestSubmitTestResponsesDropsDuplicates(t *testing.T) {
	tRepo := &fakeTestResponseRepo{
		existing: map[string]bool{"push-notifications_accuracy": true},
	}
	svc := NewResponseService(&fakeQuestionnaireRepo{}, tRepo, testEngine(t))

	form := url.Values{}
	form.Set("push-notifications_accuracy", "6")
	form.Set("push-notifications_confidence", "4")

	err := svc.SubmitTestResponses(context.Background(), testParticipant(), condition.SlugPushNotifications, form, 0)
	require.NoError(t, err)
	require.Len(t, tRepo.inserted, 1)
	assert.Equal(t, "push-notifications_confidence", tRepo.inserted[0].QuestionID)
}

func TestSubmitTestResponsesFullyDuplicatedIsNoError(t *testing.T) {
	tRepo := &fakeTestResponseRepo{
		existing: map[string]bool{"push-notifications_accuracy": true},
	}
	svc := NewResponseService(&fakeQuestionnaireRepo{}, tRepo, testEngine(t))

	form := url.Values{}
	form.Set("push-notifications_accuracy", "6")

	// The answer is valid but already stored: the re-submission succeeds
	// without inserting anything.
	err := svc.SubmitTestResponses(context.Background(), testParticipant(), condition.SlugPushNotifications, form, 0)
	require.NoError(t, err)
	assert.Empty(t, tRepo.inserted)
}

func TestSubmitTestResponsesRejectsEmptyForm(t *testing.T) {
	svc := NewResponseService(&fakeQuestionnaireRepo{}, &fakeTestResponseRepo{}, testEngine(t))

	err := svc.SubmitTestResponses(context.Background(), testParticipant(), condition.SlugPushNotifications, url.Values{}, 0)
	assert.ErrorIs(t, err, core.ErrEmptySubmission)
}
