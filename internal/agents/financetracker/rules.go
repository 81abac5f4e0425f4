// internal/agents/financetracker/rules.go
package financetracker

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	markedAmountPattern = regexp.MustCompile(`(?i)(?:[₹$€£]|\b(?:rs\.?|inr))\s*(\d+(?:,\d+)*)(\.\d{1,2})?`)
	bareAmountPattern   = regexp.MustCompile(`(\d+(?:,\d+)*)(\.\d{1,2})?`)
)

// maxAmount bounds a single line; larger figures are treated as unparsed.
const maxAmount = 1e12

type categoryRule struct {
	category string
	pattern  *regexp.Regexp
}

// First match wins. Keywords match whole words with an optional plural "s".
var categoryRules = []categoryRule{
	{CategoryFood, keywords("swiggy", "zomato", "restaurant", "cafe", "coffee", "starbucks", "food", "lunch", "lunches", "dinner", "breakfast", "pizza", "burger", "grocery", "groceries", "snack", "tea")},
	{CategoryTransport, keywords("uber", "ola", "lyft", "taxi", "cab", "metro", "bus", "buses", "train", "fuel", "petrol", "diesel", "parking", "toll", "flight")},
	{CategoryShopping, keywords("amazon", "flipkart", "myntra", "shopping", "mall", "clothes", "shirt", "shoes", "electronics", "gift")},
	{CategoryBills, keywords("electricity", "water bill", "internet", "wifi", "broadband", "phone", "mobile", "recharge", "rent", "bill", "insurance", "gas bill")},
	{CategoryEntertainment, keywords("netflix", "spotify", "prime video", "hotstar", "movie", "cinema", "concert", "game", "gaming", "party", "parties")},
}

func keywords(words ...string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)s?\b`)
}

func categorize(line string) string {
	for _, r := range categoryRules {
		if r.pattern.MatchString(line) {
			return r.category
		}
	}
	return CategoryMisc
}

// amountSpan locates the amount in line as submatch indexes. A number with a
// currency marker wins over an earlier bare one, so "Order #4521 Zomato ₹650"
// reads as 650.
func amountSpan(line string) []int {
	if loc := markedAmountPattern.FindStringSubmatchIndex(line); loc != nil {
		return loc
	}
	return bareAmountPattern.FindStringSubmatchIndex(line)
}

// parseAmount returns the amount in line. Commas are digit grouping in either
// western (1,200,000) or Indian (12,00,000) style.
func parseAmount(line string) (float64, bool) {
	loc := amountSpan(line)
	if loc == nil {
		return 0, false
	}
	digits := strings.ReplaceAll(line[loc[2]:loc[3]], ",", "")
	if loc[4] >= 0 {
		digits += line[loc[4]:loc[5]]
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) || v > maxAmount {
		return 0, false
	}
	return v, true
}

// describe strips the amount from line, leaving the merchant or note.
func describe(line string) string {
	loc := amountSpan(line)
	if loc == nil {
		return line
	}
	desc := strings.Join(strings.Fields(line[:loc[0]]+" "+line[loc[1]:]), " ")
	desc = strings.Trim(desc, "-:–, ")
	if desc == "" {
		return line
	}
	return desc
}

func parseExpenses(raw string) (expenses []Expense, unparsed []string) {
	expenses, unparsed = []Expense{}, []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		amount, ok := parseAmount(line)
		if !ok || amount <= 0 {
			unparsed = append(unparsed, line)
			continue
		}
		expenses = append(expenses, Expense{
			Description: describe(line),
			Amount:      round(amount, 2),
			Category:    categorize(line),
		})
	}
	return expenses, unparsed
}

// breakdown sums expenses per category in order of first appearance.
func breakdown(expenses []Expense) ([]CategoryAmount, float64) {
	out := []CategoryAmount{}
	index := make(map[string]int)
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(out)
			index[e.Category] = i
			out = append(out, CategoryAmount{Category: e.Category})
		}
		out[i].Amount = round(out[i].Amount+e.Amount, 2)
	}

	total := 0.0
	for _, c := range out {
		total += c.Amount
	}
	total = round(total, 2)
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return out, 0
	}

	for i := range out {
		out[i].Percentage = round(out[i].Amount/total*100, 1)
	}
	return out, total
}

func shareOf(categories []CategoryAmount, name string, total float64) float64 {
	if total == 0 {
		return 0
	}
	for _, c := range categories {
		if c.Category == name {
			return c.Amount / total
		}
	}
	return 0
}

func topCategory(categories []CategoryAmount) string {
	top := ""
	best := 0.0
	for _, c := range categories {
		if c.Amount > best {
			top, best = c.Category, c.Amount
		}
	}
	return top
}

func savingsTip(cfg *Config, categories []CategoryAmount, total float64) string {
	if total == 0 {
		return "Add one expense per line with an amount, for example \"Uber ₹300\", to get a breakdown."
	}
	if share := shareOf(categories, CategoryFood, total); share > cfg.FoodShareThreshold {
		return fmt.Sprintf("Food & Drinks make up %.0f%% of your spending. Cooking at home a few more days a week could cut this noticeably.", share*100)
	}
	if share := shareOf(categories, CategoryShopping, total); share > cfg.ShoppingShareThreshold {
		return fmt.Sprintf("Shopping is %.0f%% of your spending. Try a 48-hour wait before non-essential purchases.", share*100)
	}
	return "Your spending looks balanced. Setting aside a fixed 10% of income each month is an easy next step."
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
