package models

import (
	"time"

	"gotrial/domain/condition"
	"gotrial/domain/core"
)

// QuestionnaireType distinguishes the pre- and post-experiment questionnaires.
type QuestionnaireType string

const (
	QuestionnairePre  QuestionnaireType = "pre"
	QuestionnairePost QuestionnaireType = "post"
)

// QuestionnaireResponse is one Likert answer from the pre or post
// questionnaire. Rows are append-only and never mutated.
type QuestionnaireResponse struct {
	ID                int64              `db:"id" json:"id"`
	ParticipantID     core.ParticipantID `db:"participant_id" json:"participantId"`
	QuestionID        string             `db:"question_id" json:"questionId"`
	ResponseValue     int                `db:"response_value" json:"responseValue"`
	QuestionnaireType QuestionnaireType  `db:"questionnaire_type" json:"questionnaireType"`
	CreatedAt         time.Time          `db:"created_at" json:"createdAt"`
}

// TestResponse is one answer from a content-exposure round, stamped with the
// condition the participant saw and the elapsed time from content display to
// submission. Uniqueness over (participant, test, question) guards against
// double submission.
type TestResponse struct {
	ID             int64                   `db:"id" json:"id"`
	ParticipantID  core.ParticipantID      `db:"participant_id" json:"participantId"`
	TestSlug       condition.TestSlug      `db:"test_slug" json:"testSlug"`
	QuestionID     string                  `db:"question_id" json:"questionId"`
	ResponseValue  string                  `db:"response_value" json:"responseValue"`
	ReactionTimeMs int                     `db:"reaction_time_ms" json:"reactionTimeMs"`
	ContentSource  condition.ContentSource `db:"content_source" json:"contentSource"`
	ContentLength  condition.ContentLength `db:"content_length" json:"contentLength"`
	CreatedAt      time.Time               `db:"created_at" json:"createdAt"`
}
