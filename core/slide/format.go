package slide

import "regexp"

var (
	boldRegex   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRegex = regexp.MustCompile(`\*(.*?)\*`)
	codeRegex   = regexp.MustCompile("`(.*?)`")
)

// FormatText splits a line of item text into styled spans by applying three
// substitution passes in a fixed order: **bold**, then *italic*, then `code`.
// Each pass only rewrites text the previous passes left plain; every match is
// the shortest non-overlapping one.
//
// A lone asterisk left over from an unpaired bold delimiter stays in the
// plain text and may pair with another lone asterisk later on the line during
// the italic pass. Authored content relies on the pass order, so it is part
// of the contract.
func FormatText(line string) FormattedText {
	spans := FormattedText{{Kind: SpanPlain, Text: line}}
	spans = rewritePlain(spans, boldRegex, SpanBold)
	spans = rewritePlain(spans, italicRegex, SpanItalic)
	spans = rewritePlain(spans, codeRegex, SpanCode)
	return spans
}

// rewritePlain rewrites every plain span in place, carving out a span of the
// given kind for each delimited match and leaving the surrounding text plain.
// Non-plain spans pass through untouched.
func rewritePlain(spans FormattedText, re *regexp.Regexp, kind SpanKind) FormattedText {
	out := make(FormattedText, 0, len(spans))
	for _, sp := range spans {
		if sp.Kind != SpanPlain {
			out = append(out, sp)
			continue
		}
		matches := re.FindAllStringSubmatchIndex(sp.Text, -1)
		if len(matches) == 0 {
			out = append(out, sp)
			continue
		}
		last := 0
		for _, m := range matches {
			if m[0] > last {
				out = append(out, Span{Kind: SpanPlain, Text: sp.Text[last:m[0]]})
			}
			out = append(out, Span{Kind: kind, Text: sp.Text[m[2]:m[3]]})
			last = m[1]
		}
		if last < len(sp.Text) {
			out = append(out, Span{Kind: SpanPlain, Text: sp.Text[last:]})
		}
	}
	return out
}
