// internal/agents/shopsmart/rules.go
package shopsmart

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

var wordSplit = regexp.MustCompile(`[^\p{L}\p{N}]+`)

var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "some": true,
	"something": true, "gift": true, "gifts": true, "like": true, "likes": true,
	"who": true, "that": true, "into": true, "loves": true, "love": true,
}

// interestTerms lowercases the interest and keeps words of three or more
// letters. If nothing survives, the whole phrase is the only term.
func interestTerms(interest string) []string {
	lower := strings.ToLower(strings.TrimSpace(interest))
	var terms []string
	for _, w := range wordSplit.Split(lower, -1) {
		if utf8.RuneCountInString(w) < 3 || stopWords[w] || slices.Contains(terms, w) {
			continue
		}
		terms = append(terms, w)
	}
	if len(terms) == 0 {
		return []string{lower}
	}
	return terms
}

func haystack(p Product) string {
	parts := append([]string{p.Name, p.Description, p.Category}, p.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

func matchesInterest(p Product, terms []string) bool {
	text := haystack(p)
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

func matchesGender(p Product, gender string) bool {
	return gender == GenderAny || p.Gender == GenderUnisex || p.Gender == gender
}

func matchesAge(p Product, age string) bool {
	return age == AgeAny || slices.Contains(p.AgeGroups, age)
}

// filter narrows the catalog by interest, gender and age. When nothing
// matches it drops the profile filters, then the interest.
func filter(products []Product, terms []string, age, gender string) ([]Product, string) {
	var exact, interest []Product
	for _, p := range products {
		if !matchesInterest(p, terms) {
			continue
		}
		interest = append(interest, p)
		if matchesGender(p, gender) && matchesAge(p, age) {
			exact = append(exact, p)
		}
	}
	switch {
	case len(exact) > 0:
		return exact, MatchExact
	case len(interest) > 0:
		return interest, MatchInterest
	default:
		return slices.Clone(products), MatchPopular
	}
}

func reasonFor(matchType string, p Product, input *Input, terms []string) string {
	switch matchType {
	case MatchExact:
		return fmt.Sprintf("Matches your interest in %s and suits %s", matchedTerm(p, terms), profileLabel(input))
	case MatchInterest:
		return fmt.Sprintf("Matches your interest in %s", matchedTerm(p, terms))
	default:
		return fmt.Sprintf("Popular %s pick rated %.1f/5", p.Category, p.Rating)
	}
}

func matchedTerm(p Product, terms []string) string {
	text := haystack(p)
	for _, t := range terms {
		if strings.Contains(text, t) {
			return t
		}
	}
	return terms[0]
}

func profileLabel(input *Input) string {
	age, gender := input.AgeGroup, input.Gender
	switch {
	case age == AgeAny && gender == GenderAny:
		return "any shopper"
	case age == AgeAny:
		return gender + " shoppers"
	case gender == GenderAny:
		return age + " shoppers"
	default:
		return gender + " " + age + " shoppers"
	}
}

func summaryFor(matchType string, count int, interest string) string {
	interest = strings.TrimSpace(interest)
	switch matchType {
	case MatchExact:
		return fmt.Sprintf("Found %s for %q.", picks(count), interest)
	case MatchInterest:
		return fmt.Sprintf("Nothing matched %q for that profile, so here are %s for any shopper.", interest, picks(count))
	default:
		return fmt.Sprintf("We couldn't find %q in the catalog, so here are %s instead.", interest, picks(count))
	}
}

func picks(n int) string {
	if n == 1 {
		return "1 pick"
	}
	return fmt.Sprintf("%d picks", n)
}
