package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/icebutcher-assistant/internal/matching"
)

func setPromptFlags(t *testing.T, summary bool) {
	t.Helper()
	prevCatalog, prevFAQ, prevLimit, prevSummary := promptCatalog, promptFAQ, promptLimit, promptSummary
	t.Cleanup(func() {
		promptCatalog, promptFAQ, promptLimit, promptSummary = prevCatalog, prevFAQ, prevLimit, prevSummary
	})
	promptCatalog, promptFAQ, promptLimit, promptSummary = "testdata/catalog.json", "testdata/faq.json", matching.DefaultLimit, summary
}

func TestPromptCommand_Conversational(t *testing.T) {
	setPromptFlags(t, true)
	cmd, stdout, stderr := newTestCommand(t)

	require.NoError(t, runPrompt(cmd, []string{"What", "are", "your", "HOURS"}))

	prompt := stdout.String()
	assert.Contains(t, prompt, "Ice Butcher")
	assert.Contains(t, prompt, "FAQ Data:")
	assert.Contains(t, prompt, "9am–5pm")
	assert.Contains(t, prompt, `"name": "Polar Bear"`)
	assert.True(t, strings.HasSuffix(prompt, "what are your hours\n"))

	assert.Contains(t, stderr.String(), "COMPOSED PROMPT")
	assert.Contains(t, stderr.String(), "Catalog entries: 4")
}

func TestPromptCommand_Generation(t *testing.T) {
	setPromptFlags(t, false)
	// Generation prompts never touch the assets
	promptCatalog, promptFAQ = "testdata/missing.json", "testdata/missing.json"
	cmd, stdout, stderr := newTestCommand(t)

	require.NoError(t, runPrompt(cmd, []string{"Generate a polar bear"}))

	assert.Contains(t, stdout.String(), "generate a polar bear")
	assert.Contains(t, stdout.String(), "no human should be present")
	assert.Empty(t, stderr.String())
}

func TestPromptCommand_MissingAssets(t *testing.T) {
	setPromptFlags(t, false)
	promptFAQ = "testdata/missing.json"
	cmd, _, _ := newTestCommand(t)

	assert.Error(t, runPrompt(cmd, []string{"hello"}))
}
