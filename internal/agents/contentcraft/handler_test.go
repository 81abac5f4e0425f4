// internal/agents/contentcraft/handler_test.go
package contentcraft

import (
	"context"
	"strings"
	"testing"

	"agent-demos/internal/common/errors"
	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/simulator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(t *testing.T, rng simulator.Rand) *simulator.Simulator[Input, classification, Output] {
	t.Helper()
	return NewSimulator(DefaultConfig(), simulator.Options{
		Rand:   rng,
		Delay:  simulator.NoDelay{},
		Logger: logger.NewTestLogger(t),
	})
}

func TestHandler_Run_AllContentTypes(t *testing.T) {
	for _, contentType := range contentTypes {
		for _, variant := range []bool{false, true} {
			rng := simulator.FixedRand{Float: 0.9}
			if variant {
				rng.Float = 0.1
			}
			sim := newTestSimulator(t, rng)

			out, err := sim.Run(context.Background(), &Input{
				Prompt:      "workflow automation for small businesses",
				ContentType: contentType,
			})
			require.NoError(t, err, contentType)

			assert.Equal(t, contentType, out.ContentType)
			assert.NotEmpty(t, out.Title)
			assert.Contains(t, out.Content, "workflow automation for small businesses")
			assert.Equal(t, len(strings.Fields(out.Content)), out.WordCount)
			assert.NotNil(t, out.Hashtags)
		}
	}
}

func TestHandler_Run_VariantAddsContent(t *testing.T) {
	input := &Input{Prompt: "Eco-friendly bamboo toothbrush", ContentType: TypeProductDescription}

	plain, err := newTestSimulator(t, simulator.FixedRand{Float: 0.99}).Run(context.Background(), input)
	require.NoError(t, err)
	extended, err := newTestSimulator(t, simulator.FixedRand{Float: 0.01}).Run(context.Background(), input)
	require.NoError(t, err)

	assert.Greater(t, extended.WordCount, plain.WordCount)
	assert.Contains(t, extended.Content, "free shipping")
	assert.NotContains(t, plain.Content, "free shipping")
}

func TestHandler_Run_BlogPostParagraphs(t *testing.T) {
	input := &Input{Prompt: "Remote team productivity.", ContentType: TypeBlogPost}

	out, err := newTestSimulator(t, simulator.FixedRand{Float: 0.99}).Run(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "The Complete Guide to Remote team productivity", out.Title)
	assert.Len(t, strings.Split(out.Content, "\n\n"), 2)

	out, err = newTestSimulator(t, simulator.FixedRand{Float: 0.01}).Run(context.Background(), input)
	require.NoError(t, err)
	assert.Len(t, strings.Split(out.Content, "\n\n"), 3)
	assert.Empty(t, out.Hashtags)
}

func TestHandler_Run_SocialHashtags(t *testing.T) {
	input := &Input{Prompt: "launching our new coffee subscription service", ContentType: TypeSocialMediaCaption}

	out, err := newTestSimulator(t, simulator.FixedRand{Float: 0.99}).Run(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, []string{"#Launching", "#Coffee", "#Subscription"}, out.Hashtags)
	assert.True(t, strings.HasSuffix(out.Content, "#Launching #Coffee #Subscription"))

	out, err = newTestSimulator(t, simulator.FixedRand{Float: 0.01}).Run(context.Background(), input)
	require.NoError(t, err)
	assert.Len(t, out.Hashtags, 5)
	assert.Contains(t, out.Hashtags, "#Innovation")
}

func TestHandler_Run_Validation(t *testing.T) {
	sim := newTestSimulator(t, simulator.NewSeededRand(1))

	tests := []struct {
		name    string
		input   *Input
		message string
	}{
		{
			name:    "short prompt",
			input:   &Input{Prompt: "too short", ContentType: TypeBlogPost},
			message: "prompt must be at least 10 characters",
		},
		{
			name:    "unknown content type",
			input:   &Input{Prompt: "a long enough prompt", ContentType: "poem"},
			message: "contentType must be one of: blogPost, socialMediaCaption, productDescription, emailDraft",
		},
		{
			name:    "prompt reported before content type",
			input:   &Input{Prompt: "short", ContentType: ""},
			message: "prompt must be at least 10 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.Run(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeValidationFailed, errors.Code(err))
			assert.Equal(t, tt.message, errors.Normalize(err).Message)
		})
	}
}

func TestHashtagsFor(t *testing.T) {
	assert.Equal(t, []string{"#Über", "#Coffee"}, hashtagsFor("über coffee coffee to go", 3))
	assert.Empty(t, hashtagsFor("a b c", 3))
	assert.Empty(t, hashtagsFor("plenty of words", 0))
}
