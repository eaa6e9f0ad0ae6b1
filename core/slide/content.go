// Package slide holds the slide domain: the content model, the rendering
// engine that turns an authored slide body into typed content blocks, and the
// administration service around slide storage.
package slide

type BlockKind string

const (
	BlockList       BlockKind = "list"
	BlockParagraphs BlockKind = "paragraphs"
	BlockCode       BlockKind = "code"
	BlockTable      BlockKind = "table"
)

type SpanKind string

const (
	SpanPlain  SpanKind = "plain"
	SpanBold   SpanKind = "bold"
	SpanItalic SpanKind = "italic"
	SpanCode   SpanKind = "code"
)

// Span is one styled run of item text. The frontend maps each kind to its
// emphasis styling.
type Span struct {
	Kind SpanKind `json:"kind"`
	Text string   `json:"text"`
}

// FormattedText is a line of item text split into its ordered styled spans.
type FormattedText []Span

// ContentBlock is one unit of structured slide output, consumed as-is by the
// frontend renderer. Which fields are set depends on Kind:
//   - list: Title (may be empty) + Items
//   - paragraphs: Items
//   - code: Text (verbatim, not formatted)
//   - table: Header + Rows (cells verbatim, not formatted)
type ContentBlock struct {
	Kind   BlockKind       `json:"kind"`
	Title  string          `json:"title,omitempty"`
	Items  []FormattedText `json:"items,omitempty"`
	Text   string          `json:"text,omitempty"`
	Header []string        `json:"header,omitempty"`
	Rows   [][]string      `json:"rows,omitempty"`
}
