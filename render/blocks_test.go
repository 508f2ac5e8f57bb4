package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/models"
)

func TestBlocks(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []models.Block
	}{
		{
			name: "level 3 heading wins over level 1",
			body: "### X",
			want: []models.Block{models.Heading(3, "X")},
		},
		{
			name: "level 2 heading",
			body: "## Performance Improvements",
			want: []models.Block{models.Heading(2, "Performance Improvements")},
		},
		{
			name: "level 1 heading",
			body: "# Title",
			want: []models.Block{models.Heading(1, "Title")},
		},
		{
			name: "labeled list item",
			body: "- **Role**: Engineer",
			want: []models.Block{models.LabeledListItem("Role", "Engineer")},
		},
		{
			name: "label stops at first closing marker",
			body: "- **A**: b **c**: d",
			want: []models.Block{models.LabeledListItem("A", "b **c**: d")},
		},
		{
			name: "unterminated label demotes to list item",
			body: "- **Broken label without close",
			want: []models.Block{models.ListItem("**Broken label without close")},
		},
		{
			name: "label without text demotes to list item",
			body: "- **Role**: ",
			want: []models.Block{models.ListItem("**Role**:")},
		},
		{
			name: "label missing colon demotes to list item",
			body: "- **Role** Engineer",
			want: []models.Block{models.ListItem("**Role** Engineer")},
		},
		{
			name: "generic list item",
			body: "- plain item",
			want: []models.Block{models.ListItem("plain item")},
		},
		{
			name: "blank lines collapse",
			body: "A\n\n\nB",
			want: []models.Block{models.Paragraph("A"), models.Paragraph("B")},
		},
		{
			name: "lines are trimmed",
			body: "   ## Indented  \r\n\t- item\t",
			want: []models.Block{models.Heading(2, "Indented"), models.ListItem("item")},
		},
		{
			name: "hash without space is a paragraph",
			body: "#hashtag",
			want: []models.Block{models.Paragraph("#hashtag")},
		},
		{
			name: "four hashes is a paragraph",
			body: "#### Deep",
			want: []models.Block{models.Paragraph("#### Deep")},
		},
		{
			name: "dash without space is a paragraph",
			body: "-not a list",
			want: []models.Block{models.Paragraph("-not a list")},
		},
		{
			name: "inline markup is kept literally",
			body: "Some **bold** and `code`.",
			want: []models.Block{models.Paragraph("Some **bold** and `code`.")},
		},
		{
			name: "empty body",
			body: "",
			want: []models.Block{},
		},
		{
			name: "whitespace only body",
			body: " \n\t\n  ",
			want: []models.Block{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Blocks(tt.body))
		})
	}
}

func TestBlocks_PreservesLineOrder(t *testing.T) {
	var lines []string
	for i := 0; i < 50; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
		if i%3 == 0 {
			lines = append(lines, "")
		}
	}

	blocks := Blocks(strings.Join(lines, "\n"))
	require.Len(t, blocks, 50)
	for i, b := range blocks {
		assert.Equal(t, fmt.Sprintf("line %d", i), b.Text)
	}
}

func TestBlocks_OddInputDoesNotPanic(t *testing.T) {
	inputs := []string{
		"- **",
		"- ****: ",
		"- **\x00**: \xff",
		"# ",
		"##",
		strings.Repeat("- **a", 1000),
		"\n\n\n",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Blocks(in) })
	}
}

func TestLine_Blank(t *testing.T) {
	_, ok := Line("   \t ")
	assert.False(t, ok)
}

func TestHeadings(t *testing.T) {
	body := "# One\ntext\n## Two\n- item\n### Three"
	assert.Equal(t, []models.Block{
		models.Heading(1, "One"),
		models.Heading(2, "Two"),
		models.Heading(3, "Three"),
	}, Headings(body))
}

const samplePost = `
# Release Notes

The new release brings a number of changes worth reading about.

## Performance

- **Faster builds**: Compilation is up to 30% quicker
- **Smaller bundles**: Better tree shaking
- Improved caching

### Caveats

- **Unfinished label
Some **inline** text stays literal.
`

func TestBlocks_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "sample_post", dumpBlocks(Blocks(samplePost)))
}

// dumpBlocks writes one block per line as "kind|level|label|text".
func dumpBlocks(blocks []models.Block) []byte {
	var sb strings.Builder
	for _, b := range blocks {
		fmt.Fprintf(&sb, "%s|%d|%s|%s\n", b.Kind, b.Level, b.Label, b.Text)
	}
	return []byte(sb.String())
}
