package slide

import (
	"reflect"
	"strings"
	"testing"
)

// pt builds the FormattedText of a line with no inline emphasis.
func pt(s string) FormattedText { return FormattedText{plain(s)} }

func items(lines ...string) []FormattedText {
	fts := make([]FormattedText, len(lines))
	for i, l := range lines {
		fts[i] = FormatText(l)
	}
	return fts
}

func listBlock(title string, itms ...string) ContentBlock {
	return ContentBlock{Kind: BlockList, Title: title, Items: items(itms...)}
}

func paragraphsBlock(lines ...string) ContentBlock {
	return ContentBlock{Kind: BlockParagraphs, Items: items(lines...)}
}

func TestParseContent(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []ContentBlock
	}{
		{
			name: "empty body",
			body: "",
			want: nil,
		},
		{
			name: "blank lines only",
			body: "\n   \n\t\n",
			want: nil,
		},
		{
			name: "title line contributes nothing",
			body: "# Main Title",
			want: nil,
		},
		{
			name: "title line does not interrupt a paragraph",
			body: "first\n# Main Title\nsecond",
			want: []ContentBlock{paragraphsBlock("first", "second")},
		},
		{
			name: "plain text paragraphs keep raw lines",
			body: "first line\n  indented second",
			want: []ContentBlock{paragraphsBlock("first line", "  indented second")},
		},
		{
			name: "untitled list",
			body: "- item one\n- item two",
			want: []ContentBlock{listBlock("", "item one", "item two")},
		},
		{
			name: "titled list",
			body: "## Steps\n- item",
			want: []ContentBlock{listBlock("Steps", "item")},
		},
		{
			name: "sub header also opens a list",
			body: "### Details\n- item",
			want: []ContentBlock{listBlock("Details", "item")},
		},
		{
			name: "empty section dropped between consecutive headers",
			body: "## Title A\n## Title B\n- item",
			want: []ContentBlock{listBlock("Title B", "item")},
		},
		{
			name: "header with no items yields nothing",
			body: "## Lonely",
			want: nil,
		},
		{
			name: "status markers preserved on items",
			body: "✅ Done thing\n❌ Not done",
			want: []ContentBlock{listBlock("", "✅ Done thing", "❌ Not done")},
		},
		{
			name: "ordered item prefixes stripped",
			body: "1. one\n2. two\n10. ten",
			want: []ContentBlock{listBlock("", "one", "two", "ten")},
		},
		{
			name: "dash then ordered prefix both stripped",
			body: "- 1. mixed",
			want: []ContentBlock{listBlock("", "mixed")},
		},
		{
			name: "blank line does not split a list",
			body: "- a\n\n- b",
			want: []ContentBlock{listBlock("", "a", "b")},
		},
		{
			name: "text after list flushes the list",
			body: "- a\nplain",
			want: []ContentBlock{listBlock("", "a"), paragraphsBlock("plain")},
		},
		{
			name: "list after text flushes the text",
			body: "plain\n- a",
			want: []ContentBlock{paragraphsBlock("plain"), listBlock("", "a")},
		},
		{
			name: "items get inline formatting",
			body: "- **bold** item",
			want: []ContentBlock{{
				Kind:  BlockList,
				Items: []FormattedText{{bold("bold"), plain(" item")}},
			}},
		},
		{
			name: "code fence",
			body: "```\nconst x = 1;\n```",
			want: []ContentBlock{{Kind: BlockCode, Text: "const x = 1;"}},
		},
		{
			name: "code keeps interior blank lines and indentation",
			body: "```\nif x {\n\n\ty()\n}\n```",
			want: []ContentBlock{{Kind: BlockCode, Text: "if x {\n\n\ty()\n}"}},
		},
		{
			name: "code is not inline formatted",
			body: "```\n**not bold**\n```",
			want: []ContentBlock{{Kind: BlockCode, Text: "**not bold**"}},
		},
		{
			name: "unterminated fence loses its content",
			body: "```\nconst x = 1;",
			want: nil,
		},
		{
			name: "title line skipped even inside a fence",
			body: "```\n# comment\nx\n```",
			want: []ContentBlock{{Kind: BlockCode, Text: "x"}},
		},
		{
			name: "fence does not flush an open list",
			body: "- a\n```\ncode\n```\n- b",
			want: []ContentBlock{
				{Kind: BlockCode, Text: "code"},
				listBlock("", "a", "b"),
			},
		},
		{
			name: "table round trip drops the separator row",
			body: "| Col1 | Col2 |\n|------|------|\n| a    | b    |\n| c    | d    |",
			want: []ContentBlock{{
				Kind:   BlockTable,
				Header: []string{"Col1", "Col2"},
				Rows:   [][]string{{"a", "b"}, {"c", "d"}},
			}},
		},
		{
			name: "header only table",
			body: "| Col1 | Col2 |",
			want: []ContentBlock{{
				Kind:   BlockTable,
				Header: []string{"Col1", "Col2"},
				Rows:   [][]string{},
			}},
		},
		{
			name: "separator rows alone never emit a table",
			body: "|---|---|\n|:--|--:|",
			want: nil,
		},
		{
			name: "malformed separator cells leak into rows",
			body: "| A |\n|--x--|",
			want: []ContentBlock{{
				Kind:   BlockTable,
				Header: []string{"A"},
				Rows:   [][]string{{"--x--"}},
			}},
		},
		{
			name: "blank line terminates a table run",
			body: "| a | b |\n\n| c | d |",
			want: []ContentBlock{
				{Kind: BlockTable, Header: []string{"a", "b"}, Rows: [][]string{}},
				{Kind: BlockTable, Header: []string{"c", "d"}, Rows: [][]string{}},
			},
		},
		{
			name: "table flushes an open section first",
			body: "- a\n| x |",
			want: []ContentBlock{
				listBlock("", "a"),
				{Kind: BlockTable, Header: []string{"x"}, Rows: [][]string{}},
			},
		},
		{
			name: "header line ends a table and opens a list",
			body: "| a |\n## H\n- x",
			want: []ContentBlock{
				{Kind: BlockTable, Header: []string{"a"}, Rows: [][]string{}},
				listBlock("H", "x"),
			},
		},
		{
			name: "unterminated table finalized at end of input",
			body: "| a | b |\n| c | d |",
			want: []ContentBlock{{
				Kind:   BlockTable,
				Header: []string{"a", "b"},
				Rows:   [][]string{{"c", "d"}},
			}},
		},
		{
			name: "mixed document keeps construct order",
			body: "# Deck\nintro\n\n## Points\n- one\n- two\n\n| k | v |\n|---|---|\n| a | 1 |\n\n```\ndone()\n```",
			want: []ContentBlock{
				paragraphsBlock("intro"),
				listBlock("Points", "one", "two"),
				{Kind: BlockTable, Header: []string{"k", "v"}, Rows: [][]string{{"a", "1"}}},
				{Kind: BlockCode, Text: "done()"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseContent(tt.body); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseContent() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseContentDeterminism(t *testing.T) {
	body := "## T\n- a\n\n| x |\n|---|\n| y |\n\n```\nz\n```\ntail"
	first := ParseContent(body)
	second := ParseContent(body)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ParseContent() is not deterministic: %#v != %#v", first, second)
	}
}

func TestParseContentUnterminatedFenceSwallowsEverything(t *testing.T) {
	body := "before\n```\nconst x = 1;\n- not a list\n| not | a | table |"
	blocks := ParseContent(body)

	if len(blocks) != 1 {
		t.Fatalf("ParseContent() returned %d blocks, want 1", len(blocks))
	}
	if blocks[0].Kind != BlockParagraphs {
		t.Errorf("blocks[0].Kind = %s, want %s", blocks[0].Kind, BlockParagraphs)
	}
	for _, b := range blocks {
		if b.Kind == BlockCode {
			t.Error("unterminated fence must not emit a code block")
		}
		if strings.Contains(b.Text, "const x = 1;") {
			t.Error("swallowed fence content leaked into the output")
		}
	}
}
