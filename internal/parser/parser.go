// Package parser holds the format-specific extraction strategies and the
// dispatcher that picks which ones to run for an upload.
package parser

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledgerflow/statement-engine/internal/models"
)

// Strategy is one format-specific parser. Implementations are stateless pure
// functions of the decoded text: they never error, they just return whatever
// candidates they could extract, possibly none.
type Strategy interface {
	// Parse extracts candidate transactions from decoded statement text.
	Parse(text string) []models.CandidateTransaction
	// Name returns a short identifier for logs.
	Name() string
}

// Kind is the coarse file classification driving dispatch.
type Kind string

const (
	KindCSV     Kind = "csv"
	KindPDF     Kind = "pdf"
	KindExcel   Kind = "excel"
	KindUnknown Kind = "unknown"
)

// DetectKind classifies an upload from its declared filename and MIME type.
// The declaration is a hint, not a promise; unknown types go through the
// generic fallback chain.
func DetectKind(fileName, fileType string) Kind {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	mime := strings.ToLower(fileType)

	switch {
	case ext == "csv" || strings.Contains(mime, "csv"):
		return KindCSV
	case ext == "pdf" || strings.Contains(mime, "pdf"):
		return KindPDF
	case ext == "xls" || ext == "xlsx" ||
		strings.Contains(mime, "spreadsheet") || strings.Contains(mime, "excel"):
		return KindExcel
	default:
		return KindUnknown
	}
}

// StrategiesFor returns the ordered parser chain for a file kind. The text
// is consulted only to sniff the wallet-statement layout, which has no
// extension of its own.
func StrategiesFor(kind Kind, text string) []Strategy {
	switch kind {
	case KindCSV:
		return []Strategy{TableStrategy{}}
	case KindPDF:
		// PDF text has already been through an extractor by the time it
		// gets here; line shapes, not columns, are all that is left.
		if LooksLikeWallet(text) {
			return []Strategy{WalletStrategy{}, FreeTextStrategy{}}
		}
		return []Strategy{FreeTextStrategy{}}
	case KindExcel:
		return []Strategy{TableStrategy{}, FreeTextStrategy{}}
	default:
		if LooksLikeWallet(text) {
			return []Strategy{TableStrategy{}, WalletStrategy{}, FreeTextStrategy{}}
		}
		return []Strategy{TableStrategy{}, FreeTextStrategy{}}
	}
}

// Dispatch runs the parser chain for the given kind, stopping at the first
// strategy that yields any candidates. A strategy coming back empty is not
// an error, the next one simply gets its turn.
func Dispatch(kind Kind, text string) []models.CandidateTransaction {
	for _, s := range StrategiesFor(kind, text) {
		if txns := s.Parse(text); len(txns) > 0 {
			return txns
		}
	}
	return nil
}

const (
	// maxDescriptionLen bounds how much free text a candidate carries.
	maxDescriptionLen = 150
	// descPlaceholder stands in when stripping leaves nothing usable.
	descPlaceholder = "Transaction"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// cleanDescription collapses whitespace, trims separators left behind by
// fragment stripping, and enforces the length bound. Anything under three
// characters becomes the placeholder.
func cleanDescription(s string) string {
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.Trim(s, " -|,.:;")
	if len(s) > maxDescriptionLen {
		s = strings.TrimSpace(s[:maxDescriptionLen])
	}
	if len(s) < 3 {
		return descPlaceholder
	}
	return s
}
