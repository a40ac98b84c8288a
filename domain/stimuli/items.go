// Package stimuli holds the hand-authored experiment corpora: one fixture set
// per content type, the per-test question fixtures, and the statically
// authored AI summaries. Corpus data is read-only seed data with no lifecycle.
package stimuli

// NotificationItem is one push notification on a simulated lock screen.
type NotificationItem struct {
	ID         int    `json:"id"`
	App        string `json:"app"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"` // e.g. "10:24 AM"
	Priority   string `json:"priority"`  // low, medium, high
	Category   string `json:"category"`  // e.g. "message", "alert"
	Unread     bool   `json:"unread,omitempty"`
	Irrelevant bool   `json:"irrelevant,omitempty"`
}

func (n NotificationItem) IsIrrelevant() bool { return n.Irrelevant }

// EmailItem is one message in a simulated inbox.
type EmailItem struct {
	ID             int    `json:"id"`
	Sender         string `json:"sender"`
	Email          string `json:"email"`
	Subject        string `json:"subject"`
	Preview        string `json:"preview"`
	Timestamp      string `json:"timestamp"`
	Date           string `json:"date"`
	Read           bool   `json:"read"`
	Folder         string `json:"folder"`
	Priority       string `json:"priority"`
	HasAttachment  bool   `json:"hasAttachment"`
	AttachmentName string `json:"attachmentName,omitempty"`
	Irrelevant     bool   `json:"irrelevant,omitempty"`
}

func (e EmailItem) IsIrrelevant() bool { return e.Irrelevant }

// TranscriptItem is one speaker turn in a meeting transcript.
type TranscriptItem struct {
	ID         int    `json:"id"`
	Time       string `json:"time"`    // e.g. "00:00:23"
	Speaker    string `json:"speaker"` // e.g. "Marcus Chen (Project Manager)"
	Content    string `json:"content"`
	Irrelevant bool   `json:"irrelevant,omitempty"`
}

func (t TranscriptItem) IsIrrelevant() bool { return t.Irrelevant }

// ChartData is the structured content of a chart slide.
type ChartData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Unit   string    `json:"unit"`
}

// SlideItem is one slide in a presentation deck. Exactly one of Body, Bullets
// or Chart carries the slide content, depending on Type.
type SlideItem struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Type       string     `json:"type"` // title slide, bullet points, chart, timeline, profiles, map, diagram
	ChartType  string     `json:"chartType,omitempty"`
	Body       string     `json:"body,omitempty"`
	Bullets    []string   `json:"bullets,omitempty"`
	Chart      *ChartData `json:"chart,omitempty"`
	Notes      string     `json:"notes"`
	Irrelevant bool       `json:"irrelevant,omitempty"`
}

func (s SlideItem) IsIrrelevant() bool { return s.Irrelevant }

// ProductItem is one result in a simulated shopping listing.
type ProductItem struct {
	ID               int     `json:"id"`
	ProductName      string  `json:"productName"`
	Brand            string  `json:"brand"`
	Price            string  `json:"price"`         // e.g. "$39.99"
	OriginalPrice    string  `json:"originalPrice"` // e.g. "$49.99"
	Discount         string  `json:"discount,omitempty"`
	Description      string  `json:"description"`
	Rating           float64 `json:"rating"` // 0-5
	ReviewCount      int     `json:"reviewCount"`
	InStock          bool    `json:"inStock"`
	FreeShipping     bool    `json:"freeShipping"`
	DeliveryEstimate string  `json:"deliveryEstimate"`
	Irrelevant       bool    `json:"irrelevant,omitempty"`
}

func (p ProductItem) IsIrrelevant() bool { return p.Irrelevant }

// SearchResultItem is one result on a simulated search engine page.
type SearchResultItem struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	Snippet       string `json:"snippet"`
	Source        string `json:"source"`
	Type          string `json:"type"` // e.g. "article", "video"
	DatePublished string `json:"datePublished"`
	Citations     int    `json:"citations,omitempty"`
	HasVideo      bool   `json:"hasVideo,omitempty"`
	Irrelevant    bool   `json:"irrelevant,omitempty"`
}

func (s SearchResultItem) IsIrrelevant() bool { return s.Irrelevant }

// PracticeItem is one colored box in the tutorial round.
type PracticeItem struct {
	Color      string `json:"color"` // red, blue, orange, green
	Opacity    int    `json:"opacity"`
	Irrelevant bool   `json:"irrelevant,omitempty"`
}

func (p PracticeItem) IsIrrelevant() bool { return p.Irrelevant }

// QuestionType enumerates the supported answer widgets.
type QuestionType string

const (
	QuestionLikert7        QuestionType = "likert7"
	QuestionText           QuestionType = "text"
	QuestionNumber         QuestionType = "number"
	QuestionMultipleChoice QuestionType = "multipleChoice"
)

// Question is one questionnaire or post-test question.
type Question struct {
	ID                     string       `json:"id"`
	Text                   string       `json:"text"`
	Type                   QuestionType `json:"type"`
	Options                []string     `json:"options,omitempty"`
	MultipleCorrectAnswers bool         `json:"multipleCorrectAnswers,omitempty"`
}
