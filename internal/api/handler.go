// Package api exposes the ingestion engine over HTTP.
package api

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"github.com/ledgerflow/statement-engine/internal/ingest"
	"github.com/ledgerflow/statement-engine/internal/models"
)

// IngestResponse is the JSON envelope for /api/ingest.
type IngestResponse struct {
	Success        bool                          `json:"success"`
	Error          string                        `json:"error,omitempty"`
	UploadID       string                        `json:"upload_id,omitempty"`
	Transactions   []models.CandidateTransaction `json:"transactions"`
	TotalCount     int                           `json:"total_count"`
	DuplicateCount int                           `json:"duplicate_count"`
	IncomeTotal    float64                       `json:"income_total"`
	ExpenseTotal   float64                       `json:"expense_total"`
	Message        string                        `json:"message,omitempty"`
}

// Handler wires the ingest service into fiber routes.
type Handler struct {
	Service *ingest.Service
	Logger  *log.Logger
}

// Register sets up the HTTP routes.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/ingest", h.HandleIngest)
}

// HandleHealth reports service liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"engine": "statement-engine",
	})
}

// HandleIngest accepts a base64-encoded statement upload and returns the
// parsed candidate transactions.
func (h *Handler) HandleIngest(c *fiber.Ctx) error {
	var upload ingest.Upload
	if err := c.BodyParser(&upload); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if upload.FileContent == "" {
		return writeError(c, fiber.StatusBadRequest, "file_content is required")
	}
	if upload.AccountID == "" {
		return writeError(c, fiber.StatusBadRequest, "account_id is required")
	}

	result, err := h.Service.Ingest(upload)
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrDecode):
			return writeError(c, fiber.StatusUnprocessableEntity,
				"could not read the uploaded file: the content is not valid base64")
		case errors.Is(err, ingest.ErrTooLarge):
			return writeError(c, fiber.StatusRequestEntityTooLarge, err.Error())
		default:
			h.Logger.Error("ingest failed", "err", err)
			return writeError(c, fiber.StatusInternalServerError, "internal error")
		}
	}

	return c.JSON(IngestResponse{
		Success:        true,
		UploadID:       result.UploadID,
		Transactions:   result.Transactions,
		TotalCount:     result.TotalCount,
		DuplicateCount: result.DuplicateCount,
		IncomeTotal:    result.IncomeTotal,
		ExpenseTotal:   result.ExpenseTotal,
		Message:        result.Message,
	})
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(IngestResponse{
		Success:      false,
		Error:        msg,
		Transactions: []models.CandidateTransaction{},
	})
}
