package summarize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"gotrial/domain/stimuli"
)

// SearchMeta is the statistics block of a results-page digest.
type SearchMeta struct {
	TotalItems       int            `json:"totalItems"`
	RelevantItems    int            `json:"relevantItems"`
	HasVideoCount    int            `json:"hasVideoCount"`
	AverageCitations float64        `json:"averageCitations"`
	TypeCounts       map[string]int `json:"typeCounts"`
	TopSources       []string       `json:"topSources"`
}

// SearchDigest is the programmatic rendition of the search-results corpus.
type SearchDigest struct {
	Summary    string     `json:"summary"`
	Extractive []Extract  `json:"extractive"`
	Meta       SearchMeta `json:"meta"`
}

// SearchResults summarizes a search-results page.
func SearchResults(items []stimuli.SearchResultItem) SearchDigest {
	var relevant []stimuli.SearchResultItem
	for _, item := range items {
		if !item.Irrelevant {
			relevant = append(relevant, item)
		}
	}

	videos := 0
	typeCounts := map[string]int{}
	var citations []float64
	for _, r := range relevant {
		if r.HasVideo {
			videos++
		}
		typeCounts[r.Type]++
		citations = append(citations, float64(r.Citations))
	}
	avgCitations := 0.0
	if len(citations) > 0 {
		avgCitations, _ = stats.Round(mustMean(citations), 1)
	}

	// Most cited sources first
	cited := make([]stimuli.SearchResultItem, len(relevant))
	copy(cited, relevant)
	sort.SliceStable(cited, func(i, j int) bool {
		return cited[i].Citations > cited[j].Citations
	})
	var topSources []string
	for _, r := range cited {
		if len(topSources) == 2 {
			break
		}
		topSources = append(topSources, r.Source)
	}

	model := NewModel()
	docs := make([]string, len(relevant))
	for i, r := range relevant {
		docs[i] = r.Title + ". " + r.Snippet
		model.AddDocument(docs[i])
	}

	var candidates []Extract
	for i, doc := range docs {
		for _, s := range scoreDocument(model, doc, i) {
			candidates = append(candidates, Extract{Text: s.text, Score: s.score, ItemID: relevant[i].ID})
		}
	}

	parts := []string{
		fmt.Sprintf("Found %d relevant search result%s across %d content types.", len(relevant), plural(len(relevant)), len(typeCounts)),
		fmt.Sprintf("%d result%s include video; average citations per item: %v.", videos, plural(videos), avgCitations),
	}
	if len(topSources) > 0 {
		parts = append(parts, "Top sources by citations: "+strings.Join(topSources, " and ")+".")
	}
	parts = append(parts, "Other less relevant entries are filtered out for focus.")

	return SearchDigest{
		Summary:    strings.Join(parts, " "),
		Extractive: topExtracts(candidates),
		Meta: SearchMeta{
			TotalItems:       len(items),
			RelevantItems:    len(relevant),
			HasVideoCount:    videos,
			AverageCitations: avgCitations,
			TypeCounts:       typeCounts,
			TopSources:       topSources,
		},
	}
}
