// Package summarize builds the programmatic rendition of each corpus: a
// statistical digest of counts and breakdowns plus the top TF-IDF scored
// sentences, attributed back to their source items. All statistics are local
// to a single call; nothing is shared across corpora or requests.
package summarize

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Model is a bag-of-documents TF-IDF model. Term frequency is the raw count
// of a term within one document; inverse document frequency is computed over
// the documents added to this model only.
type Model struct {
	termCounts []map[string]int
	docFreq    map[string]int
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{docFreq: make(map[string]int)}
}

// AddDocument tokenizes text and adds it as the next document.
func (m *Model) AddDocument(text string) {
	counts := make(map[string]int)
	for _, term := range Tokenize(text) {
		counts[term]++
	}
	for term := range counts {
		m.docFreq[term]++
	}
	m.termCounts = append(m.termCounts, counts)
}

// TFIDF returns the weight of term within the document at docIndex:
// tf(term, doc) * (1 + log(N / (1 + df(term)))). Terms absent from the
// document score zero.
func (m *Model) TFIDF(term string, docIndex int) float64 {
	if docIndex < 0 || docIndex >= len(m.termCounts) {
		return 0
	}
	tf := m.termCounts[docIndex][term]
	if tf == 0 {
		return 0
	}
	idf := 1 + math.Log(float64(len(m.termCounts))/float64(1+m.docFreq[term]))
	return float64(tf) * idf
}

// Tokenize lowercases text and splits it into alphanumeric word tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Sentences splits text into sentences on terminal punctuation, keeping the
// delimiter and trimming surrounding space. Text without terminal punctuation
// yields a single sentence.
func Sentences(text string) []string {
	var out []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(b.String()); s != "" && s != "." && s != "!" && s != "?" {
				out = append(out, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}
	return out
}

// Extract is one ranked sentence attributed to its source item. ItemID is set
// for item-keyed corpora; Speaker/Time for transcripts; Title for slides.
type Extract struct {
	Text    string  `json:"text"`
	Score   float64 `json:"score"`
	ItemID  int     `json:"itemId,omitempty"`
	Speaker string  `json:"speaker,omitempty"`
	Time    string  `json:"time,omitempty"`
	Title   string  `json:"title,omitempty"`
}

// extractCount is the number of highlight sentences each digest carries.
const extractCount = 3

// topExtracts ranks candidates by score descending and keeps the best three.
// The sort is stable: ties keep original document order, which makes digest
// output deterministic for identical input.
func topExtracts(candidates []Extract) []Extract {
	ranked := make([]Extract, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > extractCount {
		ranked = ranked[:extractCount]
	}
	return ranked
}

// scoreDocument scores every sentence of the document at docIndex as the sum
// of TF-IDF weights of its tokens against that document's statistics.
func scoreDocument(m *Model, doc string, docIndex int) []scoredSentence {
	var out []scoredSentence
	for _, sentence := range Sentences(doc) {
		var score float64
		for _, term := range Tokenize(sentence) {
			score += m.TFIDF(term, docIndex)
		}
		out = append(out, scoredSentence{text: sentence, score: score})
	}
	return out
}

type scoredSentence struct {
	text  string
	score float64
}
