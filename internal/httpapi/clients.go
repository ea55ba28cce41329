// Client handlers: the full /api/BankClients surface.
package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	req, ok := r.Context().Value(ctxKeyCreateAccount).(createAccountRequest)
	if !ok {
		toJSON(w, http.StatusInternalServerError, errorResponse{Error: "validated request missing"})
		return
	}
	c, err := s.svc.Create(r.Context(), req.Name, *req.Salary)
	if err != nil {
		writeServiceErr(w, err, "Account not found", "")
		return
	}
	toJSON(w, http.StatusOK, toClientResponse(c))
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	req, ok := r.Context().Value(ctxKeyDeleteAccount).(deleteAccountRequest)
	if !ok {
		toJSON(w, http.StatusInternalServerError, errorResponse{Error: "validated request missing"})
		return
	}
	if err := s.svc.Delete(r.Context(), req.ID); err != nil {
		writeServiceErr(w, err, "Account not found", "")
		return
	}
	toJSON(w, http.StatusOK, messageResponse{Message: "Account deleted successfully"})
}

func (s *Server) deposit(w http.ResponseWriter, r *http.Request) {
	req, ok := r.Context().Value(ctxKeyDeposit).(depositRequest)
	if !ok {
		toJSON(w, http.StatusInternalServerError, errorResponse{Error: "validated request missing"})
		return
	}
	c, err := s.svc.Deposit(r.Context(), req.ID, *req.Amount)
	if err != nil {
		writeServiceErr(w, err, "Account not found", "")
		return
	}
	msg := fmt.Sprintf("Deposited %v successfully. New balance: %v", *req.Amount, c.Balance)
	toJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	req, ok := r.Context().Value(ctxKeyWithdraw).(withdrawRequest)
	if !ok {
		toJSON(w, http.StatusInternalServerError, errorResponse{Error: "validated request missing"})
		return
	}
	c, err := s.svc.Withdraw(r.Context(), req.ID, *req.Amount)
	if err != nil {
		writeServiceErr(w, err, "Account not found", "Insufficient balance for withdrawal")
		return
	}
	msg := fmt.Sprintf("Withdrew %v successfully. New balance: %v", *req.Amount, c.Balance)
	toJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	req, ok := r.Context().Value(ctxKeyTransfer).(transferRequest)
	if !ok {
		toJSON(w, http.StatusInternalServerError, errorResponse{Error: "validated request missing"})
		return
	}
	sender, receiver, err := s.svc.Transfer(r.Context(), req.SenderID, req.ReceiverID, *req.Amount)
	if err != nil {
		writeServiceErr(w, err, "Sender or receiver account not found", "Insufficient balance for transfer")
		return
	}
	msg := fmt.Sprintf("Transferred %v from %s to %s", *req.Amount, sender.Name, receiver.Name)
	toJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (s *Server) retrieveByID(w http.ResponseWriter, r *http.Request) {
	id, ok := r.Context().Value(ctxKeyClientID).(uuid.UUID)
	if !ok {
		toJSON(w, http.StatusInternalServerError, errorResponse{Error: "validated query missing"})
		return
	}
	c, err := s.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceErr(w, err, "Client not found", "")
		return
	}
	toJSON(w, http.StatusOK, toClientResponse(c))
}

func (s *Server) retrieveBySalary(w http.ResponseWriter, r *http.Request) {
	clients, err := s.svc.ListBySalaryAbove(r.Context())
	if err != nil {
		writeServiceErr(w, err, "", "")
		return
	}
	toJSON(w, http.StatusOK, toClientResponses(clients))
}

func (s *Server) retrieveByBalance(w http.ResponseWriter, r *http.Request) {
	clients, err := s.svc.ListByBalanceAbove(r.Context())
	if err != nil {
		writeServiceErr(w, err, "", "")
		return
	}
	toJSON(w, http.StatusOK, toClientResponses(clients))
}

func (s *Server) retrieveByCreationDate(w http.ResponseWriter, r *http.Request) {
	after, ok := r.Context().Value(ctxKeyCreatedAfter).(time.Time)
	if !ok {
		toJSON(w, http.StatusInternalServerError, errorResponse{Error: "validated query missing"})
		return
	}
	clients, err := s.svc.ListCreatedAfter(r.Context(), after)
	if err != nil {
		writeServiceErr(w, err, "", "")
		return
	}
	toJSON(w, http.StatusOK, toClientResponses(clients))
}

func (s *Server) retrieveHighestSalary(w http.ResponseWriter, r *http.Request) {
	c, err := s.svc.HighestSalary(r.Context())
	if err != nil {
		writeServiceErr(w, err, "No clients found", "")
		return
	}
	toJSON(w, http.StatusOK, toClientResponse(c))
}
