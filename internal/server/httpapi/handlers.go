package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/accountd/internal/common"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRegister creates an account and returns its session token in the
// Authorization response header.
//
// POST /users {"email":..., "password":...} -> 201 {"email":...}
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrors(w, http.StatusUnprocessableEntity, msgEmailBlank)
		return
	}

	account, tok, err := s.accounts.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		// at registration a validation failure means a blank field, not a
		// confirmation mismatch
		switch {
		case errors.Is(err, common.ErrValidation):
			s.writeErrors(w, http.StatusUnprocessableEntity, msgEmailBlank)
		case errors.Is(err, common.ErrWeakPassword):
			s.writeErrors(w, http.StatusUnprocessableEntity, msgPasswordBlank)
		default:
			s.writeServiceError(w, r, err)
		}
		return
	}

	s.logger.Info(r.Context(), "account registered", "email", account.Email)

	w.Header().Set("Authorization", "Bearer "+tok)
	s.writeJSON(w, http.StatusCreated, accountResponse{Email: account.Email})
}

// handleLogin authenticates an existing account.
//
// POST /users/sign_in {"email":..., "password":...} -> 200 {"email":...}
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrors(w, http.StatusUnauthorized, msgInvalidLogin)
		return
	}

	account, tok, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthenticated) {
			s.writeErrors(w, http.StatusUnauthorized, msgInvalidLogin)
			return
		}
		s.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+tok)
	s.writeJSON(w, http.StatusOK, accountResponse{Email: account.Email})
}

// handleUpdate changes the authenticated account's password after
// re-verifying the current one.
//
// PUT /users {"current_password":..., "password":..., "password_confirmation":...}
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	accountID, ok := AccountIDFromContext(r.Context())
	if !ok {
		s.writeErrors(w, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrors(w, http.StatusUnprocessableEntity, msgPasswordBlank)
		return
	}

	account, err := s.accounts.ChangePassword(r.Context(), accountID,
		req.CurrentPassword, req.Password, req.PasswordConfirmation)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "password changed", "email", account.Email)

	s.writeJSON(w, http.StatusOK, updateResponse{
		Message: msgAccountUpdated,
		User:    accountResponse{Email: account.Email},
	})
}

// handleDelete permanently removes the authenticated account. The current
// plaintext password must be supplied in the body; token possession alone
// is not sufficient.
//
// DELETE /users {"current_password":...}
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := AccountIDFromContext(r.Context())
	if !ok {
		s.writeErrors(w, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	var req deleteRequest
	if r.Body != nil {
		// an absent or empty body means no password was supplied, which is
		// reported distinctly from a wrong password
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	if err := s.accounts.Delete(r.Context(), accountID, req.CurrentPassword); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "account deleted", "account_id", accountID)

	s.writeJSON(w, http.StatusOK, messageResponse{Message: msgAccountDeleted})
}

// writeServiceError maps tagged service failures to the wire contract.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrEmailTaken):
		s.writeErrors(w, http.StatusUnprocessableEntity, msgEmailTaken)
	case errors.Is(err, common.ErrValidation):
		s.writeErrors(w, http.StatusUnprocessableEntity, msgPasswordMismatch)
	case errors.Is(err, common.ErrWeakPassword):
		s.writeErrors(w, http.StatusUnprocessableEntity, msgPasswordTooShort)
	case errors.Is(err, common.ErrMissingCurrentPassword):
		s.writeErrors(w, http.StatusUnprocessableEntity, msgCurrentPasswordMissing)
	case errors.Is(err, common.ErrIncorrectPassword):
		s.writeErrors(w, http.StatusUnprocessableEntity, msgCurrentPasswordWrong)
	case errors.Is(err, common.ErrNotFound):
		s.writeErrors(w, http.StatusUnprocessableEntity, msgAccountGone)
	case errors.Is(err, common.ErrUnauthenticated):
		s.writeErrors(w, http.StatusUnauthorized, msgSignInRequired)
	default:
		s.logger.Error(r.Context(), "request failed", "error", err.Error())
		s.writeErrors(w, http.StatusInternalServerError, msgInternal)
	}
}

func (s *Server) writeErrors(w http.ResponseWriter, status int, messages ...string) {
	s.writeJSON(w, status, errorResponse{Errors: messages})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
