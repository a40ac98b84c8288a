package stimuli

// NotificationsData is the push-notification corpus: ten notifications, five
// of them flagged irrelevant for the length filter.
var NotificationsData = []NotificationItem{
	{
		ID:        1,
		App:       "ChatConnect",
		Title:     "New message from Sarah",
		Message:   "Are we still meeting tomorrow at 2pm?",
		Timestamp: "10:24 AM",
		Priority:  "medium",
		Category:  "message",
		Unread:    true,
	},
	{
		ID:        2,
		App:       "Calendar",
		Title:     "Meeting Reminder",
		Message:   "Team Weekly Sync in 15 minutes (Conference Room B)",
		Timestamp: "11:45 AM",
		Priority:  "high",
		Category:  "reminder",
		Unread:    true,
	},
	{
		ID:        3,
		App:       "FoodDelivery",
		Title:     "Your order has arrived",
		Message:   "Your order #4592 has been delivered to your door",
		Timestamp: "12:30 PM",
		Priority:  "medium",
		Category:  "delivery",
	},
	{
		ID:        4,
		App:       "WeatherAlert",
		Title:     "Severe Weather Warning",
		Message:   "Flash flood warning in your area until 8PM tonight",
		Timestamp: "2:15 PM",
		Priority:  "high",
		Category:  "alert",
		Unread:    true,
	},
	{
		ID:        5,
		App:       "SocialConnect",
		Title:     "Birthday Reminder",
		Message:   "Alex's birthday is tomorrow! Don't forget to send wishes.",
		Timestamp: "3:00 PM",
		Priority:  "low",
		Category:  "social",
		Unread:    true,
	},
	{
		ID:         6,
		App:        "SystemUpdate",
		Title:      "Update Available",
		Message:    "System update v12.3 is available to install",
		Timestamp:  "9:17 AM",
		Priority:   "low",
		Category:   "system",
		Irrelevant: true,
	},
	{
		ID:         7,
		App:        "MusicStream",
		Title:      "New Playlist Suggestion",
		Message:    "We've created a new mix based on your listening history",
		Timestamp:  "1:45 PM",
		Priority:   "low",
		Category:   "entertainment",
		Irrelevant: true,
	},
	{
		ID:         8,
		App:        "BatteryMonitor",
		Title:      "Battery Low",
		Message:    "Your device is at 15% battery. Connect to power soon.",
		Timestamp:  "4:30 PM",
		Priority:   "medium",
		Category:   "system",
		Irrelevant: true,
	},
	{
		ID:         9,
		App:        "NewsApp",
		Title:      "Breaking News",
		Message:    "Stock market reaches all-time high amid economic recovery",
		Timestamp:  "10:05 AM",
		Priority:   "medium",
		Category:   "news",
		Irrelevant: true,
	},
	{
		ID:         10,
		App:        "FitnessTracker",
		Title:      "Activity Goal",
		Message:    "You're only 500 steps away from your daily goal!",
		Timestamp:  "5:45 PM",
		Priority:   "low",
		Category:   "health",
		Irrelevant: true,
	},
}

// NotificationAISummary is the pre-generated narrative rendition of the
// notification corpus, authored once and delivered statically.
type NotificationAISummary struct {
	TotalItems        int               `json:"totalItems"`
	UnreadCount       int               `json:"unreadCount"`
	HighPriorityCount int               `json:"highPriorityCount"`
	RelevantItems     int               `json:"relevantItems"`
	CategoryBreakdown map[string]int    `json:"categoryBreakdown"`
	KeyHighlights     NotificationNotes `json:"keyHighlights"`
	SummaryText       string            `json:"summaryText"`
}

// NotificationNote pairs an app with a short note about its notification.
type NotificationNote struct {
	App  string `json:"app"`
	Note string `json:"note"`
}

// NotificationNotes groups the highlighted notifications by kind.
type NotificationNotes struct {
	UpcomingEvents  []NotificationNote `json:"upcomingEvents"`
	UrgentAlerts    []NotificationNote `json:"urgentAlerts"`
	PendingMessages []NotificationNote `json:"pendingMessages"`
}

var NotificationsAISummary = NotificationAISummary{
	TotalItems:        10,
	UnreadCount:       5,
	HighPriorityCount: 2,
	RelevantItems:     5,
	CategoryBreakdown: map[string]int{
		"message": 1, "reminder": 1, "delivery": 1, "alert": 1, "social": 1,
		"system": 2, "entertainment": 1, "news": 1, "health": 1,
	},
	KeyHighlights: NotificationNotes{
		UpcomingEvents: []NotificationNote{
			{App: "Calendar", Note: "Team Weekly Sync in 15 min"},
			{App: "SocialConnect", Note: "Alex's birthday tomorrow"},
		},
		UrgentAlerts: []NotificationNote{
			{App: "WeatherAlert", Note: "Flash flood warning until 8 PM"},
		},
		PendingMessages: []NotificationNote{
			{App: "ChatConnect", Note: "New message from Sarah"},
		},
	},
	SummaryText: "You have 10 notifications (5 unread), including 2 high-priority alerts and reminders. Immediate attention needed for a flood warning, an upcoming team sync, and a message from Sarah. Other updates cover deliveries, birthdays, and system notices.",
}

var notificationQuestions = []Question{
	{
		ID:   "push-notifications_accuracy",
		Text: "Based on your notifications, what requires your immediate attention and response?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"Respond to Sarah about tomorrow's meeting time",
			"Prepare for the team meeting happening in 15 minutes",
			"Check that your food delivery arrived correctly",
			"Prepare for potential flooding in your area",
			"Buy a birthday gift for Alex",
		},
	},
	{
		ID:   "push-notifications_comprehension",
		Text: "Which of the following statements are accurate based on your notifications?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"You have an upcoming meeting with a team member named Sarah",
			"There is a severe weather alert active in your area",
			"Your food order has been delivered",
			"You have a friend with an upcoming birthday",
			"Your phone battery is critically low",
			"You have a system update that needs to be installed",
		},
		MultipleCorrectAnswers: true,
	},
}
