// Package categorize assigns each candidate transaction one value from the
// fixed category vocabulary using ordered keyword rules. Matching is a pure
// function of (description, direction), so results are deterministic.
package categorize

import (
	"strings"

	"github.com/ledgerflow/statement-engine/internal/models"
)

type rule struct {
	category string
	keywords []string
}

// rules are scanned in order and the first matching group wins, so the
// ordering is part of the contract. Keywords lean Nigerian because that is
// where most of the statements come from, but the generic terms carry other
// regions.
var rules = []rule{
	{models.CategoryFood, []string{
		"restaurant", "food", "eatery", "kitchen", "grocer", "supermarket",
		"shoprite", "spar", "market", "cafe", "bakery", "pizza", "burger",
		"kfc", "chicken republic", "domino",
	}},
	{models.CategoryTransport, []string{
		"uber", "bolt", "taxi", "bus ", "fuel", "petrol", "diesel",
		"filling station", "transport", "flight", "airline", "brt", "okada",
	}},
	{models.CategoryEntertainment, []string{
		"netflix", "spotify", "cinema", "movie", "game", "betting",
		"bet9ja", "sportybet", "showmax", "concert",
	}},
	{models.CategoryUtilities, []string{
		"airtime", "data", "mtn", "glo ", "airtel", "9mobile",
		"electricity", "nepa", "phcn", "ikedc", "ekedc", "dstv", "gotv",
		"internet", "utility", "water",
	}},
	{models.CategoryRentBills, []string{
		"rent", "landlord", "bill", "subscription", "insurance", "levy",
		"service charge",
	}},
	{models.CategoryShopping, []string{
		"jumia", "konga", "amazon", "aliexpress", "store", "shop", "mall",
		"boutique",
	}},
	{models.CategoryHealth, []string{
		"hospital", "pharmacy", "clinic", "drug", "medical", "dental",
		"gym", "lab ",
	}},
	{models.CategoryCash, []string{
		"atm", "cash withdrawal", "withdrawal", "cashout", "cash out",
	}},
	{models.CategoryTransfer, []string{
		"transfer", "trf", "nip", "ussd",
	}},
}

// Guess maps a description to a category. Income-direction candidates are
// always Income regardless of text; everything else falls through the
// keyword rules to Other.
func Guess(description string, direction models.Direction) string {
	if direction == models.DirectionIncome {
		return models.CategoryIncome
	}
	lower := strings.ToLower(description)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return models.CategoryOther
}
