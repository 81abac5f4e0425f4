// internal/agents/inboxzero/rules.go
package inboxzero

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	urgencyKeywords   = []string{"urgent", "critical", "deadline eod"}
	schedulingPattern = regexp.MustCompile(`\b(meeting|meet|schedule|calendar|call|appointment|availability)\b`)
	questionPattern   = regexp.MustCompile(`\?|\b(question|questions|feedback|thoughts|could you|can you|would you)\b`)
	promotionKeywords = []string{"newsletter", "promotion", "unsubscribe"}
	eodPattern        = regexp.MustCompile(`\beod\b|end of (the )?day`)
	reviewPattern     = regexp.MustCompile(`\breview`)
)

const (
	shortThanksMaxRunes = 100
	summaryMaxRunes     = 120
)

// classify applies the ordered rules; the first match wins.
func classify(text string, spamRoll func() bool) classification {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, urgencyKeywords):
		return classification{
			Category: CategoryImportant,
			Rule:     "urgency",
			EOD:      eodPattern.MatchString(lower),
			Review:   reviewPattern.MatchString(lower),
		}
	case schedulingPattern.MatchString(lower):
		return classification{Category: CategoryNeedsAction, Rule: "scheduling"}
	case questionPattern.MatchString(lower):
		return classification{Category: CategoryNeedsAction, Rule: "question"}
	case containsAny(lower, promotionKeywords):
		if spamRoll() {
			return classification{Category: CategorySpam, Rule: "promotion-spam"}
		}
		return classification{Category: CategoryArchive, Rule: "promotion"}
	case strings.Contains(lower, "thank") && utf8.RuneCountInString(text) < shortThanksMaxRunes:
		return classification{Category: CategoryFYI, Rule: "thanks"}
	default:
		return classification{Category: CategoryFYI, Rule: "default"}
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func actionItemsFor(cls classification) []string {
	switch cls.Rule {
	case "urgency":
		items := make([]string, 0, 3)
		if cls.EOD {
			items = append(items, "Complete the requested work before end of day (EOD)")
		} else {
			items = append(items, "Respond to the sender as soon as possible")
		}
		if cls.Review {
			items = append(items, "Review the referenced material and send feedback")
		}
		items = append(items, "Block focus time on your calendar today")
		return items
	case "scheduling":
		return []string{
			"Check your calendar for availability",
			"Confirm or propose a meeting time",
		}
	case "question":
		return []string{"Reply with answers to the sender's questions"}
	default:
		return []string{}
	}
}

var suggestedReplies = map[string]string{
	"urgency":        "Thanks for flagging this. I'm on it and will have an update for you before the deadline.",
	"scheduling":     "Thanks for reaching out. I've checked my calendar and can share a few times that work for me.",
	"question":       "Thanks for your message. Here are my thoughts on your questions, happy to discuss further.",
	"promotion":      "No reply needed. This message has been archived.",
	"promotion-spam": "No reply needed. This message looks like unsolicited promotion and was moved to spam.",
	"thanks":         "You're welcome! Glad I could help.",
	"default":        "Thanks for the update, noted.",
}

// summarize picks the subject line, or the first line, trimmed to a readable length.
func summarize(text string) string {
	first := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "subject:") {
			first = strings.TrimSpace(line[len("subject:"):])
			break
		}
		if first == "" {
			first = line
		}
	}
	if utf8.RuneCountInString(first) > summaryMaxRunes {
		first = string([]rune(first)[:summaryMaxRunes]) + "..."
	}
	return "Email about: " + first
}
