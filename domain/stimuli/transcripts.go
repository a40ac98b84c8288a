package stimuli

// TranscriptData is the meeting-transcript corpus: ten speaker turns, five
// flagged irrelevant (off-topic announcements, interruptions, repetition).
var TranscriptData = []TranscriptItem{
	{
		ID:      1,
		Time:    "00:00:23",
		Speaker: "Marcus Chen (Project Manager)",
		Content: "Good morning everyone, let's get started with our weekly product development meeting. Today we need to finalize the feature list for the Q3 release, address the performance issues reported by beta testers, and determine if we're still on track for our July 30th release date.",
	},
	{
		ID:         2,
		Time:       "00:01:15",
		Speaker:    "Emma Rodriguez (Lead Developer)",
		Content:    "I've completed the analysis of the performance issues. There are three primary bottlenecks: database query optimization, image processing in the mobile app, and third-party API integration delays. My team can address the database and image processing issues this sprint, but the API integration will require coordination with the external vendor.",
		Irrelevant: true,
	},
	{
		ID:      3,
		Time:    "00:03:42",
		Speaker: "Alex Kim (UX Designer)",
		Content: "Regarding the feature list, user testing strongly indicates we should prioritize the redesigned dashboard and notification system. The collaborative editing feature is getting mixed feedback - users like the concept but found our current implementation confusing. I recommend we simplify it significantly or postpone to Q4.",
	},
	{
		ID:      4,
		Time:    "00:06:58",
		Speaker: "Priya Patel (Product Owner)",
		Content: "I agree with Alex on postponing the collaborative editing feature. If we try to rush it for Q3, we risk negative user reception. Let's focus on perfecting the dashboard redesign, fixing the performance issues Emma mentioned, and adding the enhanced notification system. These improvements alone should increase our user satisfaction metrics significantly.",
	},
	{
		ID:      5,
		Time:    "00:09:27",
		Speaker: "Marcus Chen (Project Manager)",
		Content: "So the consensus is to postpone collaborative editing to Q4. Emma, how will addressing those performance issues impact our timeline? Can we still hit the July 30th release with these changes?",
	},
	{
		ID:         6,
		Time:       "00:11:03",
		Speaker:    "Sarah Johnson (Marketing)",
		Content:    "Before we continue, I just want to remind everyone that the air conditioning will be under maintenance tomorrow, so you might want to dress accordingly or consider working from home. The facilities team said it should be fixed by Thursday.",
		Irrelevant: true,
	},
	{
		ID:         7,
		Time:       "00:12:18",
		Speaker:    "David Wilson (QA Lead)",
		Content:    "Sorry, my connection dropped for a minute there. Can someone please repeat the last point? My internet has been unstable all morning.",
		Irrelevant: true,
	},
	{
		ID:         8,
		Time:       "00:13:05",
		Speaker:    "Marcus Chen (Project Manager)",
		Content:    "No problem, David. We were discussing postponing the collaborative editing feature to Q4 and focusing on performance issues, dashboard redesign, and the notification system for Q3. Did everyone get the calendar invite for next week's meeting? I've moved it to Tuesday instead of Monday due to the holiday.",
		Irrelevant: true,
	},
	{
		ID:         9,
		Time:       "00:14:30",
		Speaker:    "Emma Rodriguez (Lead Developer)",
		Content:    "To answer your earlier question, Marcus - if we focus only on these priorities, my team can resolve the performance issues within two weeks. We would still need another week for thorough QA, but a July 30th release is feasible. However, this assumes we get a response from the third-party API vendor within the next three days.",
		Irrelevant: true,
	},
	{
		ID:      10,
		Time:    "00:17:42",
		Speaker: "Marcus Chen (Project Manager)",
		Content: "Great. So our action items are: Emma will address the performance bottlenecks and contact the API vendor, Alex will finalize the dashboard redesign, Priya will update the Q3 roadmap to reflect these changes, and David's team will prepare for extended QA on these features. Let's reconvene next Tuesday to check progress. Does anyone have any questions before we wrap up?",
	},
}

// TranscriptTheme groups meeting discussion under a category.
type TranscriptTheme struct {
	Category string   `json:"category"`
	Focus    []string `json:"focus"`
}

// ActionItem assigns a follow-up task to an owner.
type ActionItem struct {
	Owner string `json:"owner"`
	Task  string `json:"task"`
}

// TranscriptAISummary is the pre-generated narrative rendition of the meeting.
type TranscriptAISummary struct {
	Overview    string            `json:"overview"`
	Themes      []TranscriptTheme `json:"themes"`
	KeyInsights []string          `json:"keyInsights"`
	ActionItems []ActionItem      `json:"actionItems"`
	NextMeeting struct {
		Date string `json:"date"`
		Goal string `json:"goal"`
	} `json:"nextMeeting"`
}

var TranscriptsAISummary = func() TranscriptAISummary {
	s := TranscriptAISummary{
		Overview: "During the weekly product development meeting, the team confirmed Q3 priorities - dashboard redesign and enhanced notifications - postponed the collaborative editing feature to Q4, and committed to resolving performance bottlenecks to stay on track for a July 30 release.",
		Themes: []TranscriptTheme{
			{Category: "Feature Prioritization", Focus: []string{"Dashboard redesign", "Notification system", "Deferring collaborative editing to Q4"}},
			{Category: "Performance Optimization", Focus: []string{"Database query tuning", "Mobile image processing improvements"}},
			{Category: "Release Planning", Focus: []string{"Assessing impact on July 30 timeline", "Dependency on API vendor response"}},
		},
		KeyInsights: []string{
			"User feedback strongly favors dashboard and notification enhancements over rushed collaboration features.",
			"Postponing complex features reduces risk of negative reception.",
			"Core performance fixes are achievable within two weeks plus one week of QA.",
		},
		ActionItems: []ActionItem{
			{Owner: "Emma Rodriguez", Task: "Resolve performance bottlenecks and liaise with external API vendor"},
			{Owner: "Alex Kim", Task: "Complete and hand off dashboard redesign"},
			{Owner: "Priya Patel", Task: "Revise Q3 roadmap to reflect updated priorities"},
			{Owner: "David Wilson", Task: "Prepare extended QA plan for new features"},
		},
	}
	s.NextMeeting.Date = "Next Tuesday"
	s.NextMeeting.Goal = "Review progress on performance fixes, dashboard redesign, and notification rollout"
	return s
}()

var transcriptQuestions = []Question{
	{
		ID:   "meeting-transcription_accuracy",
		Text: "Based *only* on the relevant parts of this meeting transcript, what action was decided regarding the collaborative editing feature?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"Prioritize it for the Q3 release",
			"Simplify its implementation for Q3",
			"Start more user testing on it",
			"Postpone it to the Q4 release",
			"Redesign it completely based on user feedback",
		},
	},
	{
		ID:   "meeting-transcription_comprehension",
		Text: "Which of the following statements are accurate based *only* on the relevant parts of the meeting transcript?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"The team agreed to postpone the collaborative editing feature.",
			"The redesigned dashboard is a planned feature for the upcoming release.",
			"Performance issues were discussed as a key topic for the meeting.",
			"User testing provided feedback on potential feature improvements.",
			"A target release date of July 30th was mentioned.",
			"The project manager confirmed the July 30th release date is definite.",
		},
		MultipleCorrectAnswers: true,
	},
}
