// Package ingest is the entry point of the statement engine: it decodes the
// transport encoding, drives the format dispatcher, runs duplicate
// detection, and assembles the final parse result.
package ingest

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ledgerflow/statement-engine/internal/dedupe"
	"github.com/ledgerflow/statement-engine/internal/extractor"
	"github.com/ledgerflow/statement-engine/internal/models"
	"github.com/ledgerflow/statement-engine/internal/parser"
)

var (
	// ErrDecode is the only fatal parse-path failure: without valid bytes
	// no parser can run, so the whole request aborts.
	ErrDecode = errors.New("file content is not readable as base64")
	// ErrTooLarge rejects decoded payloads above the configured cap before
	// any regex scanning happens.
	ErrTooLarge = errors.New("decoded file exceeds the size limit")
)

// LedgerLookup is the engine's single external dependency: the existing
// transactions recorded against an account, read once per request.
type LedgerLookup interface {
	ExistingTransactions(accountID string) ([]models.ExistingTransaction, error)
}

// Upload is one ingestion request, transport-independent.
type Upload struct {
	FileContent string `json:"file_content"` // base64-encoded bytes
	FileName    string `json:"file_name"`
	FileType    string `json:"file_type"` // declared MIME type, may be generic
	AccountID   string `json:"account_id"`
}

// Service orchestrates one upload at a time. It holds no per-request state,
// so concurrent calls are safe.
type Service struct {
	ledger   LedgerLookup
	maxBytes int
	logger   *log.Logger
}

// New builds a Service. maxBytes <= 0 disables the size cap.
func New(ledger LedgerLookup, maxBytes int, logger *log.Logger) *Service {
	return &Service{ledger: ledger, maxBytes: maxBytes, logger: logger}
}

// minScrapedChars is the least amount of usable text a PDF scrape must yield
// before the raw bytes themselves become the last-resort parser input.
const minScrapedChars = 100

// Ingest processes one upload end to end. A file that decodes but yields no
// transactions is a valid empty result, not an error.
func (s *Service) Ingest(upload Upload) (*models.ParseResult, error) {
	data, err := decodeContent(upload.FileContent)
	if err != nil {
		return nil, err
	}
	if s.maxBytes > 0 && len(data) > s.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	uploadID := uuid.NewString()
	kind := parser.DetectKind(upload.FileName, upload.FileType)
	s.logger.Info("ingesting statement",
		"upload_id", uploadID, "file", upload.FileName, "kind", kind, "bytes", len(data))

	candidates := s.parse(kind, data)

	result := &models.ParseResult{
		UploadID:     uploadID,
		Transactions: candidates,
	}
	if result.Transactions == nil {
		result.Transactions = []models.CandidateTransaction{}
	}
	result.TotalCount = len(result.Transactions)

	if result.TotalCount == 0 {
		result.Message = "No transactions found in the uploaded file. " +
			"The format may not be recognized; try a CSV export from your bank."
		s.logger.Warn("no transactions found", "upload_id", uploadID, "file", upload.FileName)
		return result, nil
	}

	existing, err := s.ledger.ExistingTransactions(upload.AccountID)
	if err != nil {
		return nil, fmt.Errorf("ledger lookup for account %q: %w", upload.AccountID, err)
	}
	result.DuplicateCount = dedupe.MarkDuplicates(result.Transactions, existing)

	for _, t := range result.Transactions {
		if t.Direction == models.DirectionIncome {
			result.IncomeTotal += t.Amount
		} else {
			result.ExpenseTotal += t.Amount
		}
	}

	s.logger.Info("ingest complete",
		"upload_id", uploadID, "total", result.TotalCount, "duplicates", result.DuplicateCount)
	return result, nil
}

// parse picks the parser input for the detected kind and runs the dispatch
// chain. Parser-level failures never surface; the worst case is an empty
// candidate list.
func (s *Service) parse(kind parser.Kind, data []byte) []models.CandidateTransaction {
	switch kind {
	case parser.KindPDF:
		return parser.Dispatch(parser.KindPDF, s.pdfText(data))
	case parser.KindExcel:
		text, err := extractor.FlattenWorkbook(data)
		if err != nil {
			// Not a real workbook (old .xls, or mislabeled text): fall
			// through the generic chain over the raw text.
			s.logger.Debug("workbook flatten failed, using raw text", "err", err)
			return parser.Dispatch(parser.KindExcel, string(data))
		}
		return parser.Dispatch(parser.KindExcel, text)
	default:
		return parser.Dispatch(kind, string(data))
	}
}

// pdfText runs the extraction cascade: structured library first, then the
// raw-byte scrape, then the raw bytes themselves as a last resort.
func (s *Service) pdfText(data []byte) string {
	text, err := extractor.ExtractPDFText(data)
	if err == nil {
		return text
	}
	s.logger.Debug("structured pdf extraction failed", "err", err)

	scraped := extractor.ScrapePDFText(data)
	if extractor.UsableLen(scraped) < minScrapedChars {
		return string(data)
	}
	return scraped
}

// decodeContent decodes the transport encoding, tolerating data-URL
// prefixes and missing padding from browser uploads.
func decodeContent(content string) ([]byte, error) {
	content = strings.TrimSpace(content)
	if idx := strings.Index(content, ";base64,"); idx >= 0 {
		content = content[idx+len(";base64,"):]
	}

	if data, err := base64.StdEncoding.DecodeString(content); err == nil {
		return data, nil
	}
	data, err := base64.RawStdEncoding.DecodeString(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return data, nil
}
