package intel

import (
	"fmt"
	"strings"
)

// FormatEvidence renders search results into the source-block form embedded
// in model prompts: one "Source: title (url)" header per hit, followed by
// its snippet.
func FormatEvidence(results []SearchResult) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, fmt.Sprintf("Source: %s (%s)\n%s", r.Title, r.URL, r.Snippet))
	}
	return strings.Join(blocks, "\n\n")
}
