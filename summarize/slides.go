package summarize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"gotrial/domain/stimuli"
)

// SlideMeta is the statistics block of a deck digest.
type SlideMeta struct {
	TotalSlides         int            `json:"totalSlides"`
	RelevantSlides      int            `json:"relevantSlides"`
	SlideTypeCounts     map[string]int `json:"slideTypeCounts"`
	ChartSlides         int            `json:"chartSlides"`
	AverageBulletPoints float64        `json:"averageBulletPoints"`
}

// SlideDigest is the programmatic rendition of the deck corpus.
type SlideDigest struct {
	Summary    string    `json:"summary"`
	Extractive []Extract `json:"extractive"`
	Meta       SlideMeta `json:"meta"`
}

// Slides summarizes a presentation deck. Chart slides contribute no text to
// scoring; extracts keep the title of their originating slide.
func Slides(items []stimuli.SlideItem) SlideDigest {
	var relevant []stimuli.SlideItem
	for _, item := range items {
		if !item.Irrelevant {
			relevant = append(relevant, item)
		}
	}

	typeCounts := map[string]int{}
	chartSlides := 0
	var bulletCounts []float64
	for _, s := range relevant {
		typeCounts[s.Type]++
		if s.ChartType != "" {
			chartSlides++
		}
		if s.Type == "bullet points" && len(s.Bullets) > 0 {
			bulletCounts = append(bulletCounts, float64(len(s.Bullets)))
		}
	}
	avgBullets := 0.0
	if len(bulletCounts) > 0 {
		avgBullets, _ = stats.Round(mustMean(bulletCounts), 1)
	}

	model := NewModel()
	docs := make([]string, len(relevant))
	for i, s := range relevant {
		docs[i] = slideText(s)
		model.AddDocument(docs[i])
	}

	var candidates []Extract
	for i, doc := range docs {
		for _, s := range scoreDocument(model, doc, i) {
			candidates = append(candidates, Extract{Text: s.text, Score: s.score, Title: relevant[i].Title})
		}
	}

	// Largest bullet sections first
	bullets := make([]stimuli.SlideItem, 0, len(relevant))
	for _, s := range relevant {
		if s.Type == "bullet points" && len(s.Bullets) > 0 {
			bullets = append(bullets, s)
		}
	}
	sort.SliceStable(bullets, func(i, j int) bool {
		return len(bullets[i].Bullets) > len(bullets[j].Bullets)
	})
	var sections []string
	for _, s := range bullets {
		if len(sections) == 2 {
			break
		}
		sections = append(sections, fmt.Sprintf("%q", s.Title))
	}

	parts := []string{
		fmt.Sprintf("This deck has %d slides (of %d) focused on the quarterly results.", len(relevant), len(items)),
		fmt.Sprintf("Includes %d chart slide%s and bullet slides averaging %.1f items.", chartSlides, plural(chartSlides), avgBullets),
	}
	if len(sections) > 0 {
		parts = append(parts, "Key sections include "+strings.Join(sections, " and ")+".")
	}

	return SlideDigest{
		Summary:    strings.Join(parts, " "),
		Extractive: topExtracts(candidates),
		Meta: SlideMeta{
			TotalSlides:         len(items),
			RelevantSlides:      len(relevant),
			SlideTypeCounts:     typeCounts,
			ChartSlides:         chartSlides,
			AverageBulletPoints: avgBullets,
		},
	}
}

// slideText flattens a slide into scoring text: title, textual content, notes.
// Structured chart data stays out of the text model.
func slideText(s stimuli.SlideItem) string {
	var b strings.Builder
	b.WriteString(s.Title)
	b.WriteString(". ")
	if s.Body != "" {
		b.WriteString(strings.ReplaceAll(s.Body, "\n", ". "))
		b.WriteString(". ")
	} else if len(s.Bullets) > 0 {
		b.WriteString(strings.Join(s.Bullets, ". "))
		b.WriteString(". ")
	}
	b.WriteString(s.Notes)
	return b.String()
}

func mustMean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}
