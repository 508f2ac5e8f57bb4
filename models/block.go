package models

// BlockKind tags the variant held by a Block
type BlockKind string

const (
	KindHeading         BlockKind = "heading"
	KindParagraph       BlockKind = "paragraph"
	KindListItem        BlockKind = "list_item"
	KindLabeledListItem BlockKind = "labeled_list_item"
)

// Block is one structural unit of a rendered body.
// Level is set only for headings (1..3), Label only for labeled list items.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"`
	Label string    `json:"label,omitempty"`
	Text  string    `json:"text"`
}

func Heading(level int, text string) Block {
	return Block{Kind: KindHeading, Level: level, Text: text}
}

func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

func ListItem(text string) Block {
	return Block{Kind: KindListItem, Text: text}
}

func LabeledListItem(label, text string) Block {
	return Block{Kind: KindLabeledListItem, Label: label, Text: text}
}
