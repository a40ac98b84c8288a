package summarize

import (
	"fmt"
	"strings"

	"gotrial/domain/stimuli"
)

// EmailMeta is the statistics block of an inbox digest.
type EmailMeta struct {
	TotalItems        int            `json:"totalItems"`
	RelevantItems     int            `json:"relevantItems"`
	UnreadCount       int            `json:"unreadCount"`
	HighPriorityCount int            `json:"highPriorityCount"`
	AttachmentCount   int            `json:"attachmentCount"`
	FolderCounts      map[string]int `json:"folderCounts"`
}

// EmailDigest is the programmatic rendition of the inbox corpus.
type EmailDigest struct {
	Summary    string    `json:"summary"`
	Extractive []Extract `json:"extractive"`
	Meta       EmailMeta `json:"meta"`
}

// Emails summarizes an inbox corpus.
func Emails(items []stimuli.EmailItem) EmailDigest {
	var relevant []stimuli.EmailItem
	for _, item := range items {
		if !item.Irrelevant {
			relevant = append(relevant, item)
		}
	}

	unread, high, attachments := 0, 0, 0
	folders := map[string]int{}
	for _, item := range items {
		if !item.Read {
			unread++
		}
		if item.Priority == "high" {
			high++
		}
		if item.HasAttachment {
			attachments++
		}
		folders[item.Folder]++
	}

	model := NewModel()
	docs := make([]string, len(relevant))
	for i, item := range relevant {
		docs[i] = item.Subject + ". " + item.Preview
		model.AddDocument(docs[i])
	}

	var candidates []Extract
	for i, doc := range docs {
		for _, s := range scoreDocument(model, doc, i) {
			candidates = append(candidates, Extract{Text: s.text, Score: s.score, ItemID: relevant[i].ID})
		}
	}

	parts := []string{
		fmt.Sprintf("Your inbox holds %d message%s (%d unread) across %d folders.", len(items), plural(len(items)), unread, len(folders)),
	}
	if high > 0 {
		parts = append(parts, fmt.Sprintf("%d high-priority message%s need%s a same-day response.", high, plural(high), singularVerb(high)))
	}
	if attachments > 0 {
		parts = append(parts, fmt.Sprintf("%d message%s carr%s attachments.", attachments, plural(attachments), iesOrY(attachments)))
	}

	return EmailDigest{
		Summary:    strings.Join(parts, " "),
		Extractive: topExtracts(candidates),
		Meta: EmailMeta{
			TotalItems:        len(items),
			RelevantItems:     len(relevant),
			UnreadCount:       unread,
			HighPriorityCount: high,
			AttachmentCount:   attachments,
			FolderCounts:      folders,
		},
	}
}

func singularVerb(n int) string {
	if n == 1 {
		return "s"
	}
	return ""
}

func iesOrY(n int) string {
	if n == 1 {
		return "ies"
	}
	return "y"
}
