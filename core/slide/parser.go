package slide

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	orderedItemRegex   = regexp.MustCompile(`^\d+\.\s`)
	separatorCellRegex = regexp.MustCompile(`^[-:]+$`)
	separatorRowRegex  = regexp.MustCompile(`^\|[-:\s|]+\|$`)
)

type sectionKind int

const (
	listSection sectionKind = iota
	textSection
)

// section is an in-progress list or paragraph accumulation. It only exists
// while being built; flushSection turns it into a ContentBlock (or drops it
// when empty).
type section struct {
	kind  sectionKind
	title string
	items []string
}

type parseState struct {
	blocks  []ContentBlock
	section *section
	inCode  bool
	code    strings.Builder
	inTable bool
	rows    [][]string
}

// ParseContent converts a raw slide body into its ordered sequence of content
// blocks. It is a single left-to-right scan over lines carrying transient
// state; line rules apply in a fixed precedence order and the first match
// wins. The scan never fails: malformed constructs degrade (an unterminated
// table is finalized with the rows collected so far, an unterminated code
// fence swallows the rest of the input).
func ParseContent(body string) []ContentBlock {
	st := &parseState{}
	for _, line := range strings.Split(body, "\n") {
		st.processLine(line)
	}
	st.finish()
	return st.blocks
}

func (st *parseState) processLine(line string) {
	// the slide title is rendered by the page chrome, never by the body
	if strings.HasPrefix(line, "# ") {
		return
	}

	// a fence toggles code mode before any other accumulator is considered,
	// so a fence line is never read as a table or list line and never
	// flushes an open section
	if strings.HasPrefix(line, "```") {
		if st.inCode {
			st.blocks = append(st.blocks, ContentBlock{
				Kind: BlockCode,
				Text: strings.TrimRightFunc(st.code.String(), unicode.IsSpace),
			})
			st.code.Reset()
		}
		st.inCode = !st.inCode
		return
	}
	if st.inCode {
		st.code.WriteString(line)
		st.code.WriteByte('\n')
		return
	}

	if strings.HasPrefix(line, "|") {
		st.flushSection()
		if !st.inTable {
			st.inTable = true
			st.rows = nil
		}
		// the full-row separator check is authoritative: even if cell
		// splitting leaves something behind on a malformed separator row,
		// a pure separator row contributes nothing
		if cells := splitTableCells(line); len(cells) > 0 && !separatorRowRegex.MatchString(line) {
			st.rows = append(st.rows, cells)
		}
		return
	}
	// the first non-table line (blank lines included) finalizes an
	// in-progress table, then gets processed normally
	if st.inTable && len(st.rows) > 0 {
		st.flushTable()
	}

	switch {
	case strings.HasPrefix(line, "## "):
		st.flushSection()
		st.section = &section{kind: listSection, title: strings.TrimPrefix(line, "## ")}
	case strings.HasPrefix(line, "### "):
		st.flushSection()
		st.section = &section{kind: listSection, title: strings.TrimPrefix(line, "### ")}
	case isListItem(line):
		if st.section == nil || st.section.kind != listSection {
			st.flushSection()
			st.section = &section{kind: listSection}
		}
		st.section.items = append(st.section.items, listItemText(line))
	case strings.TrimSpace(line) != "":
		if st.section == nil || st.section.kind != textSection {
			st.flushSection()
			st.section = &section{kind: textSection}
		}
		st.section.items = append(st.section.items, line)
	}
	// blank lines fall through: they neither flush nor open anything
}

func (st *parseState) finish() {
	if st.inTable && len(st.rows) > 0 {
		st.flushTable()
	}
	// an unterminated code fence emits nothing; its accumulator is discarded
	st.flushSection()
}

// flushSection finalizes the open section into a block, formatting each item,
// and clears it. Empty sections are dropped silently; flushing with no open
// section is a no-op.
func (st *parseState) flushSection() {
	sec := st.section
	st.section = nil
	if sec == nil || len(sec.items) == 0 {
		return
	}

	items := make([]FormattedText, len(sec.items))
	for i, item := range sec.items {
		items[i] = FormatText(item)
	}
	switch sec.kind {
	case listSection:
		st.blocks = append(st.blocks, ContentBlock{Kind: BlockList, Title: sec.title, Items: items})
	case textSection:
		st.blocks = append(st.blocks, ContentBlock{Kind: BlockParagraphs, Items: items})
	}
}

// flushTable emits the collected rows with the first row as the header.
func (st *parseState) flushTable() {
	st.blocks = append(st.blocks, ContentBlock{
		Kind:   BlockTable,
		Header: st.rows[0],
		Rows:   st.rows[1:],
	})
	st.rows = nil
	st.inTable = false
}

// splitTableCells splits a table line on "|" and keeps the trimmed cells,
// dropping empty cells and dash/colon separator cells.
func splitTableCells(line string) []string {
	var cells []string
	for _, cell := range strings.Split(line, "|") {
		cell = strings.TrimSpace(cell)
		if cell == "" || separatorCellRegex.MatchString(cell) {
			continue
		}
		cells = append(cells, cell)
	}
	return cells
}

func isListItem(line string) bool {
	return strings.HasPrefix(line, "- ") ||
		strings.HasPrefix(line, "✅ ") ||
		strings.HasPrefix(line, "❌ ") ||
		orderedItemRegex.MatchString(line)
}

// listItemText strips the list marker (and any ordered "1. " prefix) from an
// item line. The ✅/❌ status markers stay visible in the rendered item.
func listItemText(line string) string {
	text := line
	var marker string
	switch {
	case strings.HasPrefix(text, "- "):
		text = strings.TrimPrefix(text, "- ")
	case strings.HasPrefix(text, "✅ "):
		text = strings.TrimPrefix(text, "✅ ")
		marker = "✅ "
	case strings.HasPrefix(text, "❌ "):
		text = strings.TrimPrefix(text, "❌ ")
		marker = "❌ "
	}
	text = orderedItemRegex.ReplaceAllString(text, "")
	return marker + text
}
