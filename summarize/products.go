package summarize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"gotrial/domain/stimuli"
)

// ProductMeta is the statistics block of a listing digest.
type ProductMeta struct {
	TotalItems        int            `json:"totalItems"`
	RelevantItems     int            `json:"relevantItems"`
	InStockCount      int            `json:"inStockCount"`
	FreeShippingCount int            `json:"freeShippingCount"`
	AverageRating     float64        `json:"averageRating"`
	BrandCounts       map[string]int `json:"brandCounts"`
}

// ProductDigest is the programmatic rendition of the listing corpus.
type ProductDigest struct {
	Summary    string      `json:"summary"`
	Extractive []Extract   `json:"extractive"`
	Meta       ProductMeta `json:"meta"`
}

// Products summarizes a shopping listing.
func Products(items []stimuli.ProductItem) ProductDigest {
	var relevant []stimuli.ProductItem
	for _, item := range items {
		if !item.Irrelevant {
			relevant = append(relevant, item)
		}
	}

	inStock, freeShipping := 0, 0
	brands := map[string]int{}
	var ratings []float64
	for _, p := range relevant {
		if p.InStock {
			inStock++
		}
		if p.FreeShipping {
			freeShipping++
		}
		brands[p.Brand]++
		ratings = append(ratings, p.Rating)
	}
	avgRating := 0.0
	if len(ratings) > 0 {
		avgRating, _ = stats.Round(mustMean(ratings), 2)
	}

	model := NewModel()
	docs := make([]string, len(relevant))
	for i, p := range relevant {
		docs[i] = p.ProductName + ". " + p.Description
		model.AddDocument(docs[i])
	}

	var candidates []Extract
	for i, doc := range docs {
		for _, s := range scoreDocument(model, doc, i) {
			candidates = append(candidates, Extract{Text: s.text, Score: s.score, ItemID: relevant[i].ID})
		}
	}

	// Best deals: deepest discount first, rating as tie-break
	deals := make([]stimuli.ProductItem, len(relevant))
	copy(deals, relevant)
	sort.SliceStable(deals, func(i, j int) bool {
		di, dj := discountPercent(deals[i].Discount), discountPercent(deals[j].Discount)
		if di != dj {
			return di > dj
		}
		return deals[i].Rating > deals[j].Rating
	})
	var top []string
	for _, p := range deals {
		if len(top) == 2 {
			break
		}
		top = append(top, fmt.Sprintf("%s (%s)", p.ProductName, p.Discount))
	}

	parts := []string{
		fmt.Sprintf("We found %d active products with an average rating of %v.", len(relevant), avgRating),
	}
	if len(top) > 0 {
		parts = append(parts, "Top deals: "+strings.Join(top, " and ")+".")
	}
	parts = append(parts, "Accessories and low-priority items are filtered out for clarity.")

	return ProductDigest{
		Summary:    strings.Join(parts, " "),
		Extractive: topExtracts(candidates),
		Meta: ProductMeta{
			TotalItems:        len(items),
			RelevantItems:     len(relevant),
			InStockCount:      inStock,
			FreeShippingCount: freeShipping,
			AverageRating:     avgRating,
			BrandCounts:       brands,
		},
	}
}

// discountPercent parses "NN% off" labels; anything else counts as zero.
func discountPercent(d string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(d, "% off"))
	if err != nil {
		return 0
	}
	return n
}
