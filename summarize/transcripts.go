package summarize

import (
	"fmt"
	"strings"

	"gotrial/domain/stimuli"
)

// TranscriptMeta is the statistics block of a meeting digest.
type TranscriptMeta struct {
	TotalItems    int            `json:"totalItems"`
	RelevantItems int            `json:"relevantItems"`
	SpeakerCounts map[string]int `json:"speakerCounts"`
	EarliestTime  string         `json:"earliestTime"`
	LatestTime    string         `json:"latestTime"`
}

// TranscriptDigest is the programmatic rendition of the transcript corpus.
type TranscriptDigest struct {
	Summary    string         `json:"summary"`
	Extractive []Extract      `json:"extractive"`
	Meta       TranscriptMeta `json:"meta"`
}

// Transcripts summarizes a meeting-transcript corpus. Extracts keep the
// speaker and timestamp of their originating turn.
func Transcripts(items []stimuli.TranscriptItem) TranscriptDigest {
	var relevant []stimuli.TranscriptItem
	for _, item := range items {
		if !item.Irrelevant {
			relevant = append(relevant, item)
		}
	}

	speakers := map[string]int{}
	earliest, latest := "", ""
	for _, item := range items {
		speakers[item.Speaker]++
		if earliest == "" || item.Time < earliest {
			earliest = item.Time
		}
		if item.Time > latest {
			latest = item.Time
		}
	}

	model := NewModel()
	docs := make([]string, len(relevant))
	for i, item := range relevant {
		docs[i] = item.Content
		model.AddDocument(docs[i])
	}

	var candidates []Extract
	for i, doc := range docs {
		for _, s := range scoreDocument(model, doc, i) {
			candidates = append(candidates, Extract{
				Text:    s.text,
				Score:   s.score,
				Speaker: relevant[i].Speaker,
				Time:    relevant[i].Time,
			})
		}
	}

	parts := []string{
		fmt.Sprintf("The meeting covers %d turn%s from %d speakers.", len(items), plural(len(items)), len(speakers)),
	}
	if earliest != "" {
		parts = append(parts, fmt.Sprintf("Discussion runs from %s to %s.", earliest, latest))
	}

	return TranscriptDigest{
		Summary:    strings.Join(parts, " "),
		Extractive: topExtracts(candidates),
		Meta: TranscriptMeta{
			TotalItems:    len(items),
			RelevantItems: len(relevant),
			SpeakerCounts: speakers,
			EarliestTime:  earliest,
			LatestTime:    latest,
		},
	}
}
