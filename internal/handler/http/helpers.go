// Package http contains the chi HTTP handlers for the API.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/httputil"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/middleware"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/validator"
)

const maxBodyBytes = 1 << 20 // 1MB

// decodeAndValidate reads the JSON body into dst and runs struct validation.
// It writes the error response itself and reports whether to continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), nil)
		return false
	}

	if err := validator.Validate(dst); err != nil {
		httputil.WriteValidationError(w, err)
		return false
	}

	return true
}

// idParam extracts a positive int64 URL parameter.
func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid "+name), nil)
		return 0, false
	}
	return id, true
}

// currentUser returns the authenticated user; the auth middleware guarantees
// it is present on protected routes.
func currentUser(r *http.Request) *middleware.AuthUser {
	return middleware.UserFromContext(r.Context())
}
