package httpapi

// Per-route validation middleware: each middleware parses and validates its
// request, then stashes the result in the request context for the handler.

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/okezie/bankclients/internal/ledger"
)

type ctxKey string

const (
	ctxKeyCreateAccount ctxKey = "validatedCreateAccount"
	ctxKeyDeleteAccount ctxKey = "validatedDeleteAccount"
	ctxKeyDeposit       ctxKey = "validatedDeposit"
	ctxKeyWithdraw      ctxKey = "validatedWithdraw"
	ctxKeyTransfer      ctxKey = "validatedTransfer"
	ctxKeyClientID      ctxKey = "validatedClientID"
	ctxKeyCreatedAfter  ctxKey = "validatedCreatedAfter"
)

// decodeBody strictly decodes a JSON body into dst and runs struct
// validation. On failure it writes 400 with msg and returns false.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any, msg string) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		invalidInput(w, "invalid JSON: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		invalidInput(w, msg)
		return false
	}
	return true
}

func (s *Server) validateCreateAccount() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req createAccountRequest
			if !s.decodeBody(w, r, &req, "Name and Salary are required.") {
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyCreateAccount, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *Server) validateDeleteAccount() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req deleteAccountRequest
			if !s.decodeBody(w, r, &req, "Id is required") {
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyDeleteAccount, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *Server) validateDeposit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req depositRequest
			if !s.decodeBody(w, r, &req, "Id and depositAmount are required") {
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyDeposit, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *Server) validateWithdraw() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req withdrawRequest
			if !s.decodeBody(w, r, &req, "Id and withdrawAmount are required") {
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyWithdraw, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *Server) validateTransfer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req transferRequest
			if !s.decodeBody(w, r, &req, "senderId, receiverId and transferAmount are required") {
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyTransfer, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validateRetrieveByID parses the clientId query param.
func (s *Server) validateRetrieveByID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.URL.Query().Get("clientId")
			if raw == "" {
				invalidInput(w, "clientId is required")
				return
			}
			id, err := uuid.Parse(raw)
			if err != nil {
				invalidInput(w, "invalid clientId")
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyClientID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validateRetrieveByCreationDate parses the creation_date query param in the
// canonical layout.
func (s *Server) validateRetrieveByCreationDate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.URL.Query().Get("creation_date")
			if raw == "" {
				invalidInput(w, "creation_date is required")
				return
			}
			after, err := ledger.ParseCreationDate(raw)
			if err != nil {
				invalidInput(w, "invalid creation_date; expected "+ledger.TimeLayout)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyCreatedAfter, after)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
