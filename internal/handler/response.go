package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/AlexZinkM/unified-wallet/internal/model"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the consistent error body with a status derived from the error kind.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), model.ErrorResponse{
		Error: err.Error(),
		Code:  model.ErrorCode(err),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidMnemonic),
		errors.Is(err, model.ErrInvalidKeyFormat),
		errors.Is(err, model.ErrInvalidTransaction),
		errors.Is(err, model.ErrEmptyPassword),
		errors.Is(err, model.ErrUnsupportedChain),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrNoWalletFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrChainUnavailable):
		return http.StatusConflict
	case errors.Is(err, model.ErrWalletLocked):
		return http.StatusLocked
	case errors.Is(err, model.ErrSendCooldown):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

var errBadRequest = errors.New("bad request")

// decodeJSON decodes a size-limited JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %w", errBadRequest, err)
	}
	return nil
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed. Should be "+method, http.StatusMethodNotAllowed)
		return false
	}
	return true
}
