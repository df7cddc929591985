package api

import (
	"errors"
	"net/http"

	"github.com/nhalm/search-gateway/internal/apperrors"
)

// User-facing error messages. The catalog message is fixed wording the
// original endpoint exposed; clients match on it.
const (
	msgCatalogUnavailable    = "Failed to fetch data from IKEA API"
	msgGenerationUnavailable = "Failed to generate response"
)

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		BadRequest(w, r, err, err.Error())
		return
	}

	var upstreamErr *apperrors.UpstreamError
	if errors.As(err, &upstreamErr) {
		BadGateway(w, r, err, msgCatalogUnavailable)
		return
	}

	var generationErr *apperrors.GenerationError
	if errors.As(err, &generationErr) {
		BadGateway(w, r, err, msgGenerationUnavailable)
		return
	}

	InternalError(w, r, err, "internal server error")
}
