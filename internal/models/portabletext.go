package models

import "strings"

// PortableText is the rich-text block array the content store uses for
// long-form fields.
type PortableText []Block

// Block is one paragraph-level node.
type Block struct {
	Type     string    `json:"_type"`
	Key      string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
}

// Span is an inline text run.
type Span struct {
	Type  string   `json:"_type"`
	Key   string   `json:"_key,omitempty"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef defines an annotation such as a link.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// PlainText flattens the blocks: span text is concatenated within a block,
// blocks are joined by a single space, and the result is trimmed.
func (pt PortableText) PlainText() string {
	parts := make([]string, 0, len(pt))
	for _, b := range pt {
		var sb strings.Builder
		for _, span := range b.Children {
			sb.WriteString(span.Text)
		}
		parts = append(parts, sb.String())
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Excerpt returns PlainText cut to at most n runes on a word boundary,
// with an ellipsis when shortened.
func (pt PortableText) Excerpt(n int) string {
	text := pt.PlainText()
	runes := []rune(text)
	if n <= 0 || len(runes) <= n {
		return text
	}
	cut := string(runes[:n])
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
