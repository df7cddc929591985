package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/nhalm/canonlog"
	"github.com/shopspring/decimal"

	"github.com/nhalm/search-gateway/internal/id"
	"github.com/nhalm/search-gateway/internal/models"
)

// SearchService defines only the methods the API layer needs from the
// search service.
type SearchService interface {
	Search(ctx context.Context, query models.SearchQuery) (*models.SearchResult, error)
}

type Handler struct {
	searchSvc SearchService
}

func NewHandler(searchSvc SearchService) *Handler {
	return &Handler{
		searchSvc: searchSvc,
	}
}

// SearchProduct handles GET /search_product.
//
// @Summary Search products
// @Description Searches the catalog, filters the hits, and returns a generated summary alongside the shortlist.
// @Tags search
// @Produce json
// @Param query query string true "Search query"
// @Param max_price query number false "Keep products priced at or below this value"
// @Param availability query string false "Keep products whose availability matches exactly (case-insensitive)"
// @Success 200 {object} SearchProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /search_product [get]
func (h *Handler) SearchProduct(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	req := SearchProductRequest{
		Query:        strings.TrimSpace(params.Get("query")),
		MaxPrice:     strings.TrimSpace(params.Get("max_price")),
		Availability: strings.TrimSpace(params.Get("availability")),
	}

	if err := ValidateStruct(req); err != nil {
		BadRequest(w, r, err, err.Error())
		return
	}

	query := models.SearchQuery{
		Query:        req.Query,
		Availability: req.Availability,
	}

	if req.MaxPrice != "" {
		maxPrice, err := decimal.NewFromString(req.MaxPrice)
		if err != nil || maxPrice.Sign() <= 0 {
			BadRequest(w, r, err, "max_price must be a positive number")
			return
		}
		query.MaxPrice = &maxPrice
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"search_id":    id.GenerateIDWithPrefix("srch_"),
		"search_query": req.Query,
	})

	result, err := h.searchSvc.Search(r.Context(), query)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"result_count": len(result.Products),
	})

	products := result.Products
	if products == nil {
		products = []models.Product{}
	}

	Success(w, SearchProductResponse{
		Query:    result.Query,
		Response: result.Response,
		Products: products,
	})
}
