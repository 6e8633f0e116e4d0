package llm

import (
	"fmt"
	"unicode/utf8"
)

// MaxDatasetChars bounds how much of the uploaded dataset is sent to the model.
const MaxDatasetChars = 2000

const analysisSystemPrompt = `You are a business growth consultant and marketing strategist. You will receive a business problem and a sample of the business's data.

Your task:
1. Identify the key insights and patterns in the data
2. Give concrete, actionable recommendations that address the problem
3. Write one marketing post for Instagram and one for LinkedIn

Reply in exactly this layout, with each marker at the start of its section and in this order:
INSIGHTS: [analysis and recommendations]
INSTAGRAM_POST: [engaging Instagram post with emojis and hashtags]
LINKEDIN_POST: [professional LinkedIn post]`

// BuildAnalysisPrompt returns the system and user prompts for one analysis.
// Output is deterministic for identical inputs.
func BuildAnalysisPrompt(problemStatement, datasetText string) (string, string) {
	userPrompt := fmt.Sprintf(
		"Business Problem: %s\n\nDataset Content (first %d chars):\n%s\n\nPlease analyze this data and provide insights and marketing content.",
		problemStatement, MaxDatasetChars, truncate(datasetText, MaxDatasetChars),
	)
	return analysisSystemPrompt, userPrompt
}

// truncate keeps the first max characters of s without splitting a rune.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
