// Package render turns post bodies into block nodes and styles their inline text.
//
// Only the block shapes used by the site's content are recognised: three
// heading levels, bullet items, bullet items with a bold label, and
// paragraphs. Every other line becomes a paragraph holding its literal text.
package render

import (
	"regexp"
	"strings"

	"github.com/rpupo63/portfolio-site-backend/models"
)

// headingPrefixes is ordered most specific first so "### " is never read as "# ".
var headingPrefixes = []struct {
	prefix string
	level  int
}{
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

const listPrefix = "- "

// labeledItem matches "- **LABEL**: REST". The label is the shortest run up
// to the first "**: ", both groups must be non-empty.
var labeledItem = regexp.MustCompile(`^- \*\*(.+?)\*\*: (.+)$`)

// Blocks parses body line by line. Blank lines are dropped, output order
// follows source order, and no input can make it fail.
func Blocks(body string) []models.Block {
	lines := strings.Split(body, "\n")
	blocks := make([]models.Block, 0, len(lines))
	for _, line := range lines {
		if block, ok := Line(line); ok {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// Line classifies a single line. ok is false for lines that are blank after trimming.
func Line(line string) (block models.Block, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return models.Block{}, false
	}

	for _, h := range headingPrefixes {
		if text, found := strings.CutPrefix(trimmed, h.prefix); found {
			return models.Heading(h.level, text), true
		}
	}

	if m := labeledItem.FindStringSubmatch(trimmed); m != nil {
		return models.LabeledListItem(m[1], m[2]), true
	}

	if text, found := strings.CutPrefix(trimmed, listPrefix); found {
		return models.ListItem(text), true
	}

	return models.Paragraph(trimmed), true
}

// Headings returns the heading blocks of body, for building a table of contents.
func Headings(body string) []models.Block {
	var out []models.Block
	for _, b := range Blocks(body) {
		if b.Kind == models.KindHeading {
			out = append(out, b)
		}
	}
	return out
}
