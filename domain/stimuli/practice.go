package stimuli

// PracticeData is the tutorial corpus: four colored boxes shown before the
// scored rounds. The practice round always renders original data.
var PracticeData = []PracticeItem{
	{Color: "blue", Opacity: 1},
	{Color: "orange", Opacity: 4},
	{Color: "green", Opacity: 3},
	{Color: "red", Opacity: 2},
}

var practiceQuestions = []Question{
	{
		ID:   "practice_accuracy",
		Text: `Based on the squares you just saw, which one had the highest opacity (most "colorful")?`,
		Type: QuestionMultipleChoice,
		Options: []string{
			"Red square",
			"Blue square",
			"Orange square",
			"Green square",
		},
	},
	{
		ID:   "practice_comprehension",
		Text: "Which box colors did you see?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"Blue",
			"Green",
			"Orange",
			"Red",
			"Yellow",
			"Pink",
			"Brown",
		},
		MultipleCorrectAnswers: true,
	},
}
