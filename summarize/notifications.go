package summarize

import (
	"fmt"
	"sort"
	"strings"

	"gotrial/domain/stimuli"
)

// NotificationMeta is the statistics block of a notification digest.
type NotificationMeta struct {
	TotalItems        int            `json:"totalItems"`
	RelevantItems     int            `json:"relevantItems"`
	UnreadCount       int            `json:"unreadCount"`
	HighPriorityCount int            `json:"highPriorityCount"`
	Categories        map[string]int `json:"categories"`
}

// NotificationDigest is the programmatic rendition of the notification corpus.
type NotificationDigest struct {
	Summary    string           `json:"summary"`
	Extractive []Extract        `json:"extractive"`
	Meta       NotificationMeta `json:"meta"`
}

// Notifications summarizes a notification corpus. Irrelevant items are
// excluded from scoring and from the relevance counters but still counted in
// TotalItems.
func Notifications(items []stimuli.NotificationItem) NotificationDigest {
	var relevant []stimuli.NotificationItem
	for _, item := range items {
		if !item.Irrelevant {
			relevant = append(relevant, item)
		}
	}

	var unread, high []stimuli.NotificationItem
	categories := map[string]int{}
	for _, item := range relevant {
		if item.Unread {
			unread = append(unread, item)
		}
		if item.Priority == "high" {
			high = append(high, item)
		}
		categories[item.Category]++
	}

	model := NewModel()
	docs := make([]string, len(relevant))
	for i, item := range relevant {
		docs[i] = item.Title + ". " + item.Message + "."
		model.AddDocument(docs[i])
	}

	var candidates []Extract
	for i, doc := range docs {
		for _, s := range scoreDocument(model, doc, i) {
			candidates = append(candidates, Extract{Text: s.text, Score: s.score, ItemID: relevant[i].ID})
		}
	}

	// Most pressing notifications first: priority rank, then later timestamp
	sorted := make([]stimuli.NotificationItem, len(relevant))
	copy(sorted, relevant)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := priorityRank(sorted[i].Priority), priorityRank(sorted[j].Priority)
		if pi != pj {
			return pi > pj
		}
		return clockMinutes(sorted[i].Timestamp) > clockMinutes(sorted[j].Timestamp)
	})
	var next []string
	for _, item := range sorted {
		if len(next) == 2 {
			break
		}
		next = append(next, fmt.Sprintf("%s at %s", item.Title, item.Timestamp))
	}

	parts := []string{
		fmt.Sprintf("You have %d unread notification%s across %d categories.", len(unread), plural(len(unread)), len(categories)),
	}
	if len(high) > 0 {
		titles := make([]string, len(high))
		for i, item := range high {
			titles[i] = fmt.Sprintf("%q", item.Title)
		}
		parts = append(parts, "High-priority alerts: "+strings.Join(titles, ", ")+".")
	}
	if len(next) > 0 {
		parts = append(parts, "Up next: "+strings.Join(next, ", ")+".")
	}

	return NotificationDigest{
		Summary:    strings.Join(parts, " "),
		Extractive: topExtracts(candidates),
		Meta: NotificationMeta{
			TotalItems:        len(items),
			RelevantItems:     len(relevant),
			UnreadCount:       len(unread),
			HighPriorityCount: len(high),
			Categories:        categories,
		},
	}
}

func priorityRank(p string) int {
	switch p {
	case "high":
		return 2
	case "medium":
		return 1
	}
	return 0
}

// clockMinutes parses "H:MM AM/PM" into minutes since midnight. Unparseable
// timestamps sort first.
func clockMinutes(ts string) int {
	var h, m int
	var mod string
	if _, err := fmt.Sscanf(ts, "%d:%d %s", &h, &m, &mod); err != nil {
		return -1
	}
	if mod == "PM" && h < 12 {
		h += 12
	}
	if mod == "AM" && h == 12 {
		h = 0
	}
	return h*60 + m
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
