package api

import "github.com/nhalm/search-gateway/internal/models"

// SearchProductRequest represents the query parameters of a product search.
// @Description Query parameters for a product search
type SearchProductRequest struct {
	Query        string `json:"query" validate:"required,max=255"`
	MaxPrice     string `json:"max_price" validate:"omitempty,max=32"`
	Availability string `json:"availability" validate:"omitempty,max=100"`
}

// SearchProductResponse is the unified success payload: the generated text
// plus the filtered shortlist it describes.
// @Description Search result with generated summary and filtered products
type SearchProductResponse struct {
	Query    string           `json:"query"`
	Response string           `json:"response"`
	Products []models.Product `json:"products"`
}
