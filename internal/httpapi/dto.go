package httpapi

import (
	"github.com/google/uuid"

	"github.com/okezie/bankclients/internal/ledger"
)

// Request bodies keep the exact field casing of the public API.

type createAccountRequest struct {
	Name   string   `json:"Name" validate:"required"`
	Salary *float64 `json:"salary" validate:"required"`
}

type deleteAccountRequest struct {
	ID uuid.UUID `json:"Id" validate:"required"`
}

type depositRequest struct {
	ID     uuid.UUID `json:"Id" validate:"required"`
	Amount *float64  `json:"depositAmount" validate:"required"`
}

type withdrawRequest struct {
	ID     uuid.UUID `json:"Id" validate:"required"`
	Amount *float64  `json:"withdrawAmount" validate:"required"`
}

type transferRequest struct {
	SenderID   uuid.UUID `json:"senderId" validate:"required"`
	ReceiverID uuid.UUID `json:"receiverId" validate:"required"`
	Amount     *float64  `json:"transferAmount" validate:"required"`
}

// clientResponse mirrors the persisted column naming.
type clientResponse struct {
	ID           uuid.UUID `json:"Id"`
	Name         string    `json:"Name"`
	Salary       float64   `json:"salary"`
	Balance      float64   `json:"balance"`
	CreationDate string    `json:"creationDate"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toClientResponse(c ledger.Client) clientResponse {
	return clientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Salary:       c.Salary,
		Balance:      c.Balance,
		CreationDate: c.CreationDate(),
	}
}

func toClientResponses(cs []ledger.Client) []clientResponse {
	out := make([]clientResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toClientResponse(c))
	}
	return out
}
