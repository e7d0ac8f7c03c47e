package assistant

import (
	"regexp"
	"strings"

	"kbchat/internal/domain/thread"
)

// citationPattern matches the inline citation format the instruction
// template enforces: (filename, page/section).
var citationPattern = regexp.MustCompile(`\(([^(),]+?),\s*([^()]+?)\)`)

// extractCitations scans assembled assistant text for inline citations and
// resolves each referenced document against the registry. References to
// unknown documents are dropped rather than treated as fatal; offsets cover
// the full parenthesized citation in the text.
func (e *Engine) extractCitations(text string) []thread.Citation {
	matches := citationPattern.FindAllStringSubmatchIndex(text, -1)
	citations := make([]thread.Citation, 0, len(matches))
	seen := make(map[string]bool)

	for _, m := range matches {
		start, end := m[0], m[1]
		ref := strings.TrimSpace(text[m[2]:m[3]])
		section := strings.TrimSpace(text[m[4]:m[5]])

		doc, ok := e.registry.Resolve(ref)
		if !ok {
			e.log.Debug().Str("reference", ref).Msg("citation to unknown document dropped")
			continue
		}

		key := doc.ID + "|" + section + "|" + text[start:end]
		if seen[key] {
			continue
		}
		seen[key] = true

		label := doc.Filename
		if section != "" {
			label = doc.Filename + ", " + section
		}
		citations = append(citations, thread.Citation{
			DocumentID: doc.ID,
			Label:      label,
			StartIndex: start,
			EndIndex:   end,
		})
	}

	return citations
}
