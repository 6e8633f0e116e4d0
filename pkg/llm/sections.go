package llm

import "strings"

const (
	InsightsMarker  = "INSIGHTS:"
	InstagramMarker = "INSTAGRAM_POST:"
	LinkedInMarker  = "LINKEDIN_POST:"
)

// Sections is a model reply split by marker. A nil post means its marker was absent.
type Sections struct {
	Insights  string
	Instagram *string
	LinkedIn  *string
}

// ParseSections splits a reply into insights and platform posts.
//
// Each section runs from its marker to the next expected marker or the end of
// the text. Insights stop only at INSTAGRAM_POST, Instagram stops only at
// LINKEDIN_POST, and LinkedIn runs to the end. When INSIGHTS is missing the whole
// reply is used as the insights text, so a successful model call always yields
// an insight. Stored content depends on this leniency; keep it.
func ParseSections(text string) Sections {
	var s Sections

	if insights, ok := span(text, InsightsMarker, InstagramMarker); ok {
		s.Insights = insights
	} else {
		s.Insights = strings.TrimSpace(text)
	}

	if post, ok := span(text, InstagramMarker, LinkedInMarker); ok {
		s.Instagram = &post
	}

	if post, ok := span(text, LinkedInMarker, ""); ok {
		s.LinkedIn = &post
	}

	return s
}

// span returns the trimmed text between the first marker and the first stop after it.
// An empty stop means "until the end".
func span(text, marker, stop string) (string, bool) {
	start := strings.Index(text, marker)
	if start < 0 {
		return "", false
	}

	rest := text[start+len(marker):]
	if stop != "" {
		if end := strings.Index(rest, stop); end >= 0 {
			rest = rest[:end]
		}
	}

	return strings.TrimSpace(rest), true
}
