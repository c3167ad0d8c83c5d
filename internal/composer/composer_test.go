package composer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/icebutcher-assistant/internal/knowledge"
)

func testFAQ(t *testing.T) knowledge.FAQ {
	t.Helper()
	faq, err := knowledge.NewFAQ(json.RawMessage(`{"faqs":[{"question":"What are your hours?","answer":"9 to 5 <weekdays>"}]}`))
	require.NoError(t, err)
	return faq
}

func TestCompose_ContainsAllParts(t *testing.T) {
	faq := testFAQ(t)
	matches := []knowledge.Item{
		knowledge.NewItem("Polar Bear", "https://example.com/bear.png"),
	}

	prompt, err := Compose("what are your hours", faq, matches)
	require.NoError(t, err)

	assert.Contains(t, prompt, `named "Ice Butcher"`)
	assert.Contains(t, prompt, "Only show the order link when asked explicitly")
	assert.Contains(t, prompt, "FAQ Data:")
	assert.Contains(t, prompt, `"question": "What are your hours?"`)
	// HTML characters are not escaped
	assert.Contains(t, prompt, "9 to 5 <weekdays>")
	assert.Contains(t, prompt, `"name": "Polar Bear"`)
	assert.Contains(t, prompt, "https://example.com/bear.png")
	assert.True(t, strings.HasSuffix(prompt, "what are your hours"))
}

func TestCompose_Order(t *testing.T) {
	prompt, err := Compose("USER MESSAGE", testFAQ(t), []knowledge.Item{knowledge.NewItem("Swan", "swan.png")})
	require.NoError(t, err)

	preamble := strings.Index(prompt, "You are an AI assistant")
	faq := strings.Index(prompt, "FAQ Data:")
	sculptures := strings.Index(prompt, "Standard Sculptures")
	input := strings.Index(prompt, "USER MESSAGE")

	assert.True(t, preamble >= 0 && preamble < faq && faq < sculptures && sculptures < input,
		"unexpected section order: %d %d %d %d", preamble, faq, sculptures, input)
}

func TestCompose_Pure(t *testing.T) {
	faq := testFAQ(t)
	matches := []knowledge.Item{
		knowledge.NewItem("Swan", "swan.png"),
		knowledge.NewItem("Ice Luge", "luge.png"),
	}

	first, err := Compose("hello", faq, matches)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Compose("hello", faq, matches)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCompose_UserInputWithPlaceholderText(t *testing.T) {
	prompt, err := Compose("what does {{.FAQ}} mean", testFAQ(t), nil)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(prompt, "what does {{.FAQ}} mean"))
	assert.Equal(t, 1, strings.Count(prompt, "FAQ Data:"))
}

func TestCompose_NoMatches(t *testing.T) {
	prompt, err := Compose("hi", testFAQ(t), nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, "use these when user asks for a sculpture image):\n[]")
}

func TestKeywordGenerationPrompt(t *testing.T) {
	prompt := KeywordGenerationPrompt("generate a polar bear")

	assert.Contains(t, prompt, "generate a polar bear")
	assert.Contains(t, prompt, "no human should be present")
	assert.Contains(t, prompt, "professional DSLR camera")
	assert.Contains(t, prompt, "as simple as possible")
}

func TestVisionGenerationPrompt(t *testing.T) {
	prompt := VisionGenerationPrompt("a heart with two initials")

	assert.True(t, strings.HasPrefix(prompt, "Create an image of an ice engraving."))
	assert.True(t, strings.HasSuffix(prompt, "a heart with two initials"))
}

func TestVisionInstructionAndCaption(t *testing.T) {
	assert.Contains(t, VisionInstruction(), "5-inch thick ice block")
	assert.Equal(t, "Here is your ice Sculpture:\n", ImageCaption())
}
