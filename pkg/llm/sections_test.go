package llm

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func strPtr(s string) *string {
	return &s
}

func TestParseSections(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		insights  string
		instagram *string
		linkedin  *string
	}{
		{
			name:      "all markers in order",
			input:     "INSIGHTS: Sales up 20%. INSTAGRAM_POST: 🎉 Great quarter! #growth LINKEDIN_POST: Our Q3 results show strong momentum.",
			insights:  "Sales up 20%.",
			instagram: strPtr("🎉 Great quarter! #growth"),
			linkedin:  strPtr("Our Q3 results show strong momentum."),
		},
		{
			name:      "multiline sections are trimmed",
			input:     "INSIGHTS:\n\n- churn is up\n- repeat buyers spend more\n\nINSTAGRAM_POST:\nCome back! 🛍️\n\nLINKEDIN_POST:\nRetention matters.\n",
			insights:  "- churn is up\n- repeat buyers spend more",
			instagram: strPtr("Come back! 🛍️"),
			linkedin:  strPtr("Retention matters."),
		},
		{
			name:     "missing insights marker falls back to whole text",
			input:    "  The model ignored the layout.  ",
			insights: "The model ignored the layout.",
		},
		{
			name:      "missing linkedin marker",
			input:     "INSIGHTS: a INSTAGRAM_POST: b",
			insights:  "a",
			instagram: strPtr("b"),
		},
		{
			name:     "missing instagram marker keeps linkedin inside insights",
			input:    "INSIGHTS: a LINKEDIN_POST: c",
			insights: "a LINKEDIN_POST: c",
			linkedin: strPtr("c"),
		},
		{
			name:      "empty post section is present but empty",
			input:     "INSIGHTS: a INSTAGRAM_POST:   LINKEDIN_POST: c",
			insights:  "a",
			instagram: strPtr(""),
			linkedin:  strPtr("c"),
		},
		{
			name:      "posts without insights marker",
			input:     "Preamble INSTAGRAM_POST: b LINKEDIN_POST: c",
			insights:  "Preamble INSTAGRAM_POST: b LINKEDIN_POST: c",
			instagram: strPtr("b"),
			linkedin:  strPtr("c"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSections(tt.input)
			assert.Equal(t, tt.insights, got.Insights)
			assert.Equal(t, tt.instagram, got.Instagram)
			assert.Equal(t, tt.linkedin, got.LinkedIn)
		})
	}
}

func TestParseSections_SubstringsBetweenMarkers(t *testing.T) {
	parts := []string{"first block", "second block", "third block"}
	input := InsightsMarker + parts[0] + InstagramMarker + parts[1] + LinkedInMarker + parts[2]

	got := ParseSections(input)

	assert.Equal(t, parts[0], got.Insights)
	assert.Equal(t, parts[1], *got.Instagram)
	assert.Equal(t, parts[2], *got.LinkedIn)
	assert.Equal(t, false, strings.Contains(got.Insights, InstagramMarker))
}
