package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/factoryops/factory_books_app/internal/core/domain"
)

// ChequeResponse is the API representation of a cheque.
type ChequeResponse struct {
	ChequeID            string          `json:"chequeID"`
	Amount              decimal.Decimal `json:"amount"`
	Direction           string          `json:"direction"`
	Status              string          `json:"status"`
	LinkedTransactionID string          `json:"linkedTransactionID"`
	DueDate             string          `json:"dueDate"`
	LastUpdatedAt       time.Time       `json:"lastUpdatedAt"`
}

// ToChequeResponse converts a domain cheque to its DTO.
func ToChequeResponse(c *domain.Cheque) ChequeResponse {
	return ChequeResponse{
		ChequeID:            c.ChequeID,
		Amount:              c.Amount,
		Direction:           string(c.Direction),
		Status:              string(c.Status),
		LinkedTransactionID: c.LinkedTransactionID,
		DueDate:             c.DueDate.Format("2006-01-02"),
		LastUpdatedAt:       c.LastUpdatedAt,
	}
}
