package rfq

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category labels assigned by guessCategory.
const (
	CategoryConcrete   = "concrete"
	CategorySteel      = "steel"
	CategoryTimber     = "timber"
	CategoryMasonry    = "masonry"
	CategoryInsulation = "insulation"
	CategoryGeneral    = "general"
)

var categoryKeywords = []struct {
	category string
	words    []string
}{
	{CategoryConcrete, []string{"cement", "concrete", "mortar", "screed"}},
	{CategorySteel, []string{"rebar", "steel", "beam", "profile"}},
	{CategoryTimber, []string{"timber", "wood", "plank", "plywood", "osb"}},
	{CategoryMasonry, []string{"brick", "block", "masonry", "paving"}},
	{CategoryInsulation, []string{"insulation", "mineral wool", "styrofoam", "eps"}},
}

var urgencyWords = []string{"urgent", "asap", "immediately", "this week"}

var volumeWords = []string{"pallet", "tonne", "ton", "truckload", "m3", "project", "site"}

var (
	budgetHigh = decimal.NewFromInt(10000)
	budgetMid  = decimal.NewFromInt(1000)
)

// scoreLead rates a request 0-100. The heuristic favors concrete volume
// and budget signals over polite prose: a two-word request with a big
// budget outranks a long story with no numbers.
func scoreLead(in CreateInput) int {
	text := strings.ToLower(in.Description)
	score := 20

	for _, w := range urgencyWords {
		if strings.Contains(text, w) {
			score += 15
			break
		}
	}

	for _, w := range volumeWords {
		if strings.Contains(text, w) {
			score += 10
			break
		}
	}

	if in.Budget != nil {
		switch {
		case in.Budget.GreaterThanOrEqual(budgetHigh):
			score += 40
		case in.Budget.GreaterThanOrEqual(budgetMid):
			score += 20
		case in.Budget.IsPositive():
			score += 5
		}
	}

	// A reachable requester is worth more to partners.
	if in.Phone != nil && *in.Phone != "" {
		score += 10
	}
	if in.City != nil && *in.City != "" {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

func guessCategory(description string) string {
	text := strings.ToLower(description)
	for _, c := range categoryKeywords {
		for _, w := range c.words {
			if strings.Contains(text, w) {
				return c.category
			}
		}
	}
	return CategoryGeneral
}
