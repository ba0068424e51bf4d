package extractor

import (
	"regexp"
	"strings"
)

// ScrapePDFText is a crude fallback for PDFs the structured extractor cannot
// read. It makes two passes over the raw bytes and concatenates the results:
//
//  1. Literal show-text operators: parenthesis-delimited strings inside
//     BT/ET text blocks.
//  2. Any run of six or more consecutive printable-ASCII characters found
//     anywhere in the stream.
//
// This is not real PDF text extraction and will frequently come up empty on
// modern compressed or encoded PDFs. That is a documented limitation; the
// structured extractor is the good path.
func ScrapePDFText(data []byte) string {
	var b strings.Builder

	if s := scrapeShowText(data); s != "" {
		b.WriteString(s)
		b.WriteString("\n")
	}
	if s := scrapePrintableRuns(data); s != "" {
		b.WriteString(s)
	}
	return b.String()
}

var (
	btBlock = regexp.MustCompile(`(?s)BT(.*?)ET`)
	// Parenthesised string with \-escapes, as used by Tj/TJ operators.
	showText = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)`)
)

func scrapeShowText(data []byte) string {
	var blocks []string
	for _, block := range btBlock.FindAllSubmatch(data, -1) {
		var parts []string
		for _, m := range showText.FindAllSubmatch(block[1], -1) {
			s := unescapePDFString(string(m[1]))
			if strings.TrimSpace(s) != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			// Strings within one text block usually belong to one visual
			// line; separate blocks get separate lines.
			blocks = append(blocks, strings.Join(parts, " "))
		}
	}
	return strings.Join(blocks, "\n")
}

func unescapePDFString(s string) string {
	r := strings.NewReplacer(
		`\(`, "(", `\)`, ")", `\\`, `\`,
		`\n`, "\n", `\r`, "\r", `\t`, "\t",
	)
	return r.Replace(s)
}

// scrapePrintableRuns collects every run of >=6 printable characters.
// Shorter runs are almost always operator noise.
func scrapePrintableRuns(data []byte) string {
	var out []string
	var run []byte

	flush := func() {
		if len(run) >= 6 {
			out = append(out, string(run))
		}
		run = run[:0]
	}

	for _, c := range data {
		if (c >= 0x20 && c <= 0x7E) || c == '\t' {
			run = append(run, c)
			continue
		}
		flush()
	}
	flush()

	// One run per line: merging runs end to end would glue unrelated
	// fragments into fake amounts.
	return strings.Join(out, "\n")
}

// UsableLen counts the characters of text that are not whitespace, giving a
// cheap signal of whether a scrape produced anything worth parsing.
func UsableLen(text string) int {
	n := 0
	for _, r := range text {
		if r > ' ' {
			n++
		}
	}
	return n
}
