package stimuli

// EmailsData is the inbox corpus: ten messages, five flagged irrelevant.
var EmailsData = []EmailItem{
	{
		ID:             1,
		Sender:         "Sarah Johnson",
		Email:          "sarah.j@workteam.com",
		Subject:        "Project Deadline Extension Request",
		Preview:        "Hi, Due to the additional requirements from the client, I'm requesting a deadline extension for the Henderson project until...",
		Timestamp:      "10:24 AM",
		Date:           "Today",
		Read:           false,
		Folder:         "Inbox",
		Priority:       "high",
		HasAttachment:  true,
		AttachmentName: "revised_timeline.pdf",
	},
	{
		ID:        2,
		Sender:    "HR Department",
		Email:     "hr@company.com",
		Subject:   "Mandatory Training Session Tomorrow",
		Preview:   "All employees are required to attend the compliance training session tomorrow at 2PM in Conference Room A. Attendance will be...",
		Timestamp: "9:15 AM",
		Date:      "Today",
		Read:      true,
		Folder:    "Inbox",
		Priority:  "medium",
	},
	{
		ID:             3,
		Sender:         "Michael Chen",
		Email:          "m.chen@client.org",
		Subject:        "Contract Review - URGENT",
		Preview:        "We need your feedback on the revised contract terms by EOD today. Our legal team is waiting for your input before we can proceed...",
		Timestamp:      "Yesterday",
		Date:           "Yesterday",
		Read:           false,
		Folder:         "Inbox",
		Priority:       "high",
		HasAttachment:  true,
		AttachmentName: "revised_contract_v3.docx",
	},
	{
		ID:        4,
		Sender:    "Accounting System",
		Email:     "no-reply@accounting.company.com",
		Subject:   "Expense Report Approved",
		Preview:   "Your expense report #EXP-2023-0429 has been approved. Reimbursement will be processed with your next paycheck...",
		Timestamp: "2 days ago",
		Date:      "Monday",
		Read:      true,
		Folder:    "Inbox",
		Priority:  "low",
	},
	{
		ID:        5,
		Sender:    "Team Collaboration",
		Email:     "notifications@teamcollab.com",
		Subject:   "Document Updates: Q3 Marketing Strategy",
		Preview:   "Alex Rodriguez has made changes to 'Q3 Marketing Strategy'. Click to view the latest version and add comments...",
		Timestamp: "3 days ago",
		Date:      "Sunday",
		Read:      false,
		Folder:    "Inbox",
		Priority:  "medium",
	},
	{
		ID:         6,
		Sender:     "Daily News Digest",
		Email:      "newsletter@dailynews.com",
		Subject:    "Your Morning News Summary",
		Preview:    "Top headlines: Tech stocks surge, New climate bill introduced, Sports championship results...",
		Timestamp:  "6:30 AM",
		Date:       "Today",
		Read:       true,
		Folder:     "Updates",
		Priority:   "low",
		Irrelevant: true,
	},
	{
		ID:         7,
		Sender:     "Office Supply Store",
		Email:      "promotions@officesupplies.com",
		Subject:    "SALE: 25% Off All Office Furniture",
		Preview:    "Limited time offer! Shop now for incredible savings on desks, chairs, filing cabinets and more...",
		Timestamp:  "Yesterday",
		Date:       "Yesterday",
		Read:       true,
		Folder:     "Promotions",
		Priority:   "low",
		Irrelevant: true,
	},
	{
		ID:         8,
		Sender:     "Social Media",
		Email:      "notifications@socialnetwork.com",
		Subject:    "You have 5 new notifications",
		Preview:    "John commented on your post. Lisa tagged you in a photo. View all notifications...",
		Timestamp:  "2 days ago",
		Date:       "Monday",
		Read:       true,
		Folder:     "Social",
		Priority:   "low",
		Irrelevant: true,
	},
	{
		ID:         9,
		Sender:     "Travel Booking",
		Email:      "confirmation@travelsite.com",
		Subject:    "Your Upcoming Trip Details",
		Preview:    "Confirmation for your flight to Boston on August 15. Check-in opens 24 hours before departure...",
		Timestamp:  "3 days ago",
		Date:       "Sunday",
		Read:       true,
		Folder:     "Travel",
		Priority:   "medium",
		Irrelevant: true,
	},
	{
		ID:         10,
		Sender:     "Password Manager",
		Email:      "security@passwordapp.com",
		Subject:    "Security Alert: Password Change Recommended",
		Preview:    "Our system detected that you've been using the same password for over a year. We recommend updating your credentials...",
		Timestamp:  "4 days ago",
		Date:       "Saturday",
		Read:       true,
		Folder:     "Updates",
		Priority:   "low",
		Irrelevant: true,
	},
}

// EmailTheme is one cluster of inbox messages in the AI summary.
type EmailTheme struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Urgency string `json:"urgency"`
}

// EmailAISummary is the pre-generated narrative rendition of the inbox.
type EmailAISummary struct {
	Overview    string       `json:"overview"`
	Themes      []EmailTheme `json:"themes"`
	KeyInsights []string     `json:"keyInsights"`
	ActionItems []string     `json:"actionItems"`
}

var EmailsAISummary = EmailAISummary{
	Overview: "The inbox features urgent client requests, routine operational notices, collaborative document updates, and a large volume of low-value notifications that may be distracting.",
	Themes: []EmailTheme{
		{Name: "Client Action Items", Count: 2, Urgency: "high"},
		{Name: "Operational Notifications", Count: 2, Urgency: "medium"},
		{Name: "Collaboration Updates", Count: 1, Urgency: "medium"},
		{Name: "Irrelevant/Promotional", Count: 5, Urgency: "low"},
	},
	KeyInsights: []string{
		"Two high-priority client deliverables require same-day responses to keep projects on track.",
		"Mandatory training and expense approvals support compliance and payroll processes but are lower urgency.",
		"Team document edits need timely review to maintain marketing strategy momentum.",
		"A significant share of notifications is low-value, increasing inbox clutter and distraction.",
	},
	ActionItems: []string{
		"Respond to the Henderson project extension and contract review requests by EOD.",
		"Confirm attendance for tomorrow's compliance training session.",
		"Review and comment on the updated Q3 Marketing Strategy document.",
		"Filter out or unsubscribe from promotional and irrelevant notifications.",
	},
}

var emailQuestions = []Question{
	{
		ID:   "email-inbox_accuracy",
		Text: "Based on your emails, which task should you prioritize to complete today?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"Extend the deadline for the Henderson project",
			"Prepare for the HR training session",
			"Review and provide feedback on the revised contract",
			"Check your approved expense report details",
			"Review the updated Q3 Marketing Strategy document",
		},
	},
	{
		ID:   "email-inbox_comprehension",
		Text: "Which of the following statements are accurate based on your email inbox?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"You have a mandatory training session to attend tomorrow",
			"Sarah Johnson has requested an extension for a project deadline",
			"Your expense report has been rejected and needs revision",
			"You need to provide feedback on a contract by the end of today",
			"You have an upcoming flight to Boston",
			"All your emails have been read",
		},
		MultipleCorrectAnswers: true,
	},
}
