// Package jdsource loads a single JobDescription document (spec.md §6).
// When requirements_text entries look like scraped HTML fragments, they
// are reduced to plain text the same way the sibling job-aggregator
// module's scrapers flatten a scraped job posting's markup, so a JD
// assembled straight from a scraped page flows into the core unchanged.
package jdsource

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/learnbot/hrscreening/internal/screenschema"
)

// Load reads and validates a single JobDescription from r, reducing any
// HTML-looking requirements_text entries to their plain text content.
func Load(r io.Reader) (screenschema.JobDescription, error) {
	var job screenschema.JobDescription
	if err := json.NewDecoder(r).Decode(&job); err != nil {
		return screenschema.JobDescription{}, fmt.Errorf("decode job description: %w", err)
	}

	for i, text := range job.RequirementsText {
		if looksLikeHTML(text) {
			job.RequirementsText[i] = htmlToText(text)
		}
	}

	if err := job.Validate(); err != nil {
		return screenschema.JobDescription{}, fmt.Errorf("validate job description: %w", err)
	}
	return job, nil
}

func looksLikeHTML(text string) bool {
	return strings.Contains(text, "<") && strings.Contains(text, ">")
}

// htmlToText walks the parsed document and concatenates text nodes,
// grounded on the sibling scraper module's extractText helper.
func htmlToText(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	text := extractText(doc)
	return strings.Join(strings.Fields(text), " ")
}

func extractText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(extractText(c))
		sb.WriteString(" ")
	}
	return sb.String()
}
