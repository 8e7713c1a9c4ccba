package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jjmunozz/StrategicTeam-SGC/errs"
)

const (
	maxBodyBytes    = 1 << 20
	defaultPageSize = 100
	maxPageSize     = 1000
)

// parseIDParam reads a positive integer id from the URL path
func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewMissingRequiredFieldError(name)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewValidationError(name, "debe ser un entero positivo")
	}
	return uint(id), nil
}

// readBody reads at most maxBodyBytes of the request body
func readBody(r *http.Request) ([]byte, error) {
	bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, errs.NewBadRequestError("failed to read request body")
	}
	if len(bodyBytes) > maxBodyBytes {
		return nil, errs.NewValidationError("body", "el cuerpo de la solicitud es demasiado grande")
	}
	return bodyBytes, nil
}

// decodeBody unmarshals a JSON request body into dst
func decodeBody(bodyBytes []byte, dst any, payloadType string) error {
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(dst); err != nil {
		return errs.NewMalformedPayloadError(payloadType, err)
	}
	return nil
}

// parsePagination reads skip/limit query parameters
func parsePagination(r *http.Request) (skip, limit int, err error) {
	skip, err = queryInt(r, "skip", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err = queryInt(r, "limit", defaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	if skip < 0 {
		return 0, 0, errs.NewValidationError("skip", "no puede ser negativo")
	}
	if limit < 0 || limit > maxPageSize {
		return 0, 0, errs.NewValidationError("limit", "debe estar entre 0 y 1000")
	}
	return skip, limit, nil
}

func queryInt(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValidationError(name, "debe ser un entero")
	}
	return n, nil
}
