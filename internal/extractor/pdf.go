// Package extractor turns uploaded file bytes into text the parsers can
// work with: structured PDF extraction, a raw-byte PDF scrape for when that
// fails, and XLSX flattening.
package extractor

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractPDFText reads a PDF from memory and returns its text content. It
// tries multiple extraction methods because no single one handles every
// encoder. The library panics on some malformed files, hence the recover.
func ExtractPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library crashed: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	numPages := r.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	// Method 1: row-based extraction, best layout preservation.
	if text := extractByRow(r, numPages); IsReadable(text) {
		return text, nil
	}

	// Method 2: raw content objects regrouped into rows by coordinates.
	if text := extractByContent(r, numPages); IsReadable(text) {
		return text, nil
	}

	// Method 3: plain-text extraction with per-page font maps.
	if text := extractByPlainText(r, numPages); IsReadable(text) {
		return text, nil
	}

	return "", fmt.Errorf("no readable text could be extracted")
}

func extractByRow(r *pdf.Reader, numPages int) string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return strings.Join(pages, "\n")
}

// extractByContent groups text objects by Y coordinate to rebuild rows,
// sorting each row left to right. PDF Y runs bottom-to-top.
func extractByContent(r *pdf.Reader, numPages int) string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		if len(content.Text) == 0 {
			continue
		}

		type textItem struct {
			x float64
			s string
		}
		rowMap := make(map[int][]textItem)
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			yKey := int(math.Round(t.Y))
			rowMap[yKey] = append(rowMap[yKey], textItem{x: t.X, s: t.S})
		}

		yKeys := make([]int, 0, len(rowMap))
		for y := range rowMap {
			yKeys = append(yKeys, y)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(yKeys)))

		var lines []string
		for _, y := range yKeys {
			items := rowMap[y]
			sort.Slice(items, func(a, b int) bool { return items[a].x < items[b].x })

			var parts []string
			var prevX float64
			for j, item := range items {
				if j > 0 && item.x-prevX > 15 {
					// Large horizontal gap: treat as a column separator.
					parts = append(parts, "  ")
				}
				parts = append(parts, item.s)
				prevX = item.x
			}
			if line := strings.TrimSpace(strings.Join(parts, "")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return strings.Join(pages, "\n")
}

func extractByPlainText(r *pdf.Reader, numPages int) string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fontNames := page.Fonts()
		fonts := make(map[string]*pdf.Font, len(fontNames))
		for _, name := range fontNames {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n")
}

// IsReadable reports whether extracted text is long enough and mostly plain
// ASCII. Identity-encoded fonts decode into garbage that passes broader
// unicode checks, so the character test is deliberately strict.
func IsReadable(text string) bool {
	if len(strings.TrimSpace(text)) <= 50 {
		return false
	}
	total, readable := 0, 0
	for _, r := range text {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
			strings.ContainsRune(`.,-/:;()'"₦$%&@#!?+=*`, r) {
			readable++
		}
	}
	return total > 0 && float64(readable)/float64(total) > 0.6
}
