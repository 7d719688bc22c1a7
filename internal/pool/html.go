package pool

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractSentences pulls candidate pool sentences out of an HTML document:
// visible text only, split into sentences, filtered to short declarative
// clauses between minWords and maxWords.
func ExtractSentences(htmlContent string, minWords, maxWords int) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	text := extractVisibleText(doc)
	var out []string
	for _, s := range splitSentences(text) {
		s = Normalize(s)
		if !usableClause(s, minWords, maxWords) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// extractVisibleText collects text nodes, skipping scripts/styles.
func extractVisibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "nav", "header", "footer":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}

// splitSentences splits text on sentence terminators (simple heuristic).
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// usableClause filters out fragments, headings, and anything that cannot
// stand alone as an independent declarative clause.
func usableClause(s string, minWords, maxWords int) bool {
	if s == "" {
		return false
	}
	words := strings.Fields(s)
	if len(words) < minWords || len(words) > maxWords {
		return false
	}
	// Reject list fragments and quotes; slot-fillers must be plain clauses.
	if strings.ContainsAny(s, "\"()[]{};:|") {
		return false
	}
	for _, w := range words {
		if strings.IndexFunc(w, isLetter) < 0 {
			return false
		}
	}
	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r >= 0x00C0
}
