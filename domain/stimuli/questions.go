package stimuli

import "gotrial/domain/condition"

// PreQuestionnaire returns the questions asked before the first round.
func PreQuestionnaire() []Question {
	return []Question{
		{ID: "pre_q1", Text: "How familiar are you with AI-generated content?", Type: QuestionLikert7},
		{ID: "pre_q2", Text: "To what extent do you trust information presented online?", Type: QuestionLikert7},
		{ID: "pre_q3", Text: "How often do you rely on automatic summaries instead of reading full content?", Type: QuestionLikert7},
	}
}

// PostQuestionnaire returns the questions asked after the last round.
func PostQuestionnaire() []Question {
	return []Question{
		{ID: "post_q1", Text: "How engaging did you find the tasks overall?", Type: QuestionLikert7},
		{ID: "post_q2", Text: "How mentally demanding were the tasks?", Type: QuestionLikert7},
		{ID: "post_q3", Text: "Do you have any feedback on the experiment?", Type: QuestionText},
	}
}

var specificQuestions = map[condition.TestSlug][]Question{
	condition.SlugPractice:             practiceQuestions,
	condition.SlugPushNotifications:    notificationQuestions,
	condition.SlugEmailInbox:           emailQuestions,
	condition.SlugMeetingTranscription: transcriptQuestions,
	condition.SlugProductListing:       productQuestions,
	condition.SlugPresentationSlide:    slideQuestions,
	condition.SlugSearchEngine:         searchQuestions,
}

// commonQuestions follow every round's content-specific questions. Their ids
// are prefixed with the test slug so responses stay distinguishable per round.
var commonQuestions = []Question{
	{
		ID:      "confidence",
		Text:    "How confident are you in your above answers?",
		Type:    QuestionLikert7,
		Options: []string{"Very confident", "", "", "", "", "", "Very insecure"},
	},
	{
		ID:      "satisfaction",
		Text:    "How sufficient/satisfactory did you find the information presented in order to answer the above questions?",
		Type:    QuestionLikert7,
		Options: []string{"Very sufficient", "", "", "", "", "", "Very insufficient"},
	},
	{
		ID:      "effort",
		Text:    "How hard did you find the above questions to be?",
		Type:    QuestionLikert7,
		Options: []string{"Very hard", "", "", "", "", "", "Very easy"},
	},
}

// TestQuestions returns the full question list for a round: the test-specific
// accuracy and comprehension questions followed by the slug-prefixed common
// Likert questions.
func TestQuestions(slug condition.TestSlug) []Question {
	specific := specificQuestions[slug]
	out := make([]Question, 0, len(specific)+len(commonQuestions))
	out = append(out, specific...)
	for _, q := range commonQuestions {
		q.ID = string(slug) + "_" + q.ID
		out = append(out, q)
	}
	return out
}
