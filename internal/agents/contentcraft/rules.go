// internal/agents/contentcraft/rules.go
package contentcraft

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const topicMaxRunes = 80

// topicOf is the prompt's first line, trimmed of trailing punctuation.
func topicOf(prompt string) string {
	topic := strings.TrimSpace(strings.SplitN(strings.TrimSpace(prompt), "\n", 2)[0])
	topic = strings.TrimRight(topic, ".!?,;: ")
	if utf8.RuneCountInString(topic) > topicMaxRunes {
		topic = strings.TrimSpace(string([]rune(topic)[:topicMaxRunes]))
	}
	return topic
}

// hashtagsFor builds tags from the first distinct topic words of four or more letters.
func hashtagsFor(topic string, limit int) []string {
	tags := []string{}
	if limit <= 0 {
		return tags
	}
	seen := make(map[string]bool)
	for _, word := range strings.Fields(topic) {
		clean := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, word)
		if utf8.RuneCountInString(clean) < 4 {
			continue
		}
		key := strings.ToLower(clean)
		if seen[key] {
			continue
		}
		seen[key] = true
		runes := []rune(key)
		runes[0] = unicode.ToUpper(runes[0])
		tags = append(tags, "#"+string(runes))
		if len(tags) == limit {
			break
		}
	}
	return tags
}

func compose(cls classification, maxHashtags int) (title, content string, hashtags []string) {
	topic := cls.Topic
	hashtags = []string{}

	switch cls.ContentType {
	case TypeBlogPost:
		title = fmt.Sprintf("The Complete Guide to %s", topic)
		paragraphs := []string{
			fmt.Sprintf("%s is changing how modern teams work. In this post we break down what it is, why it matters and how to get started without a large upfront investment.", topic),
			"Start small: pick one repetitive process, measure how long it takes today and set a clear goal for improvement. Quick wins build the momentum you need for bigger changes.",
		}
		if cls.Variant {
			paragraphs = append(paragraphs, "Finally, review your results every month. The teams that benefit most treat this as an ongoing practice rather than a one-off project.")
		}
		content = strings.Join(paragraphs, "\n\n")

	case TypeSocialMediaCaption:
		title = fmt.Sprintf("Caption: %s", topic)
		content = fmt.Sprintf("Big things are happening with %s! Here's why we're excited and why you should be too.", topic)
		tags := hashtagsFor(topic, maxHashtags)
		if cls.Variant {
			tags = append(tags, "#Innovation", "#GrowthMindset")
		}
		hashtags = append(hashtags, tags...)
		if len(hashtags) > 0 {
			content += "\n\n" + strings.Join(hashtags, " ")
		}

	case TypeProductDescription:
		title = topic
		content = fmt.Sprintf("Meet %s: thoughtfully designed, built to last and made for everyday use. It combines smart features with a clean look that fits right into your routine.", topic)
		if cls.Variant {
			content += " Order today and enjoy free shipping with a 30-day satisfaction guarantee."
		}

	case TypeEmailDraft:
		title = fmt.Sprintf("Quick follow-up: %s", topic)
		content = fmt.Sprintf("Hi there,\n\nI wanted to reach out about %s. I think there's a great opportunity for us to work together and I'd love to share a few ideas.\n\nWould you have 15 minutes this week for a quick call?\n\nBest regards", topic)
		if cls.Variant {
			content += "\n\nP.S. I've attached a short overview in case it's helpful before we talk."
		}
	}

	return title, content, hashtags
}
