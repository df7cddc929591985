package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nhalm/search-gateway/internal/models"
)

// maxShortlist caps how many products reach the generation prompt, bounding
// its size. Truncation keeps the catalog's original order.
const maxShortlist = 5

const systemInstruction = "You are an IKEA product expert"

// CatalogClient defines only what the service needs from the catalog.
type CatalogClient interface {
	Search(ctx context.Context, query string) ([]models.Product, error)
}

// CompletionClient defines only what the service needs from the
// text-generation upstream.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type SearchService struct {
	catalog CatalogClient
	genai   CompletionClient
}

func NewSearchService(catalog CatalogClient, genai CompletionClient) *SearchService {
	return &SearchService{catalog: catalog, genai: genai}
}

// Search runs the full pipeline: catalog fetch, client-side filtering,
// shortlist truncation, then one completion call to render the shortlist as
// natural language. The two upstream calls are strictly sequential. The
// generation call is made even when the filtered list is empty, matching the
// catalog's lenient empty-payload contract.
func (s *SearchService) Search(ctx context.Context, query models.SearchQuery) (*models.SearchResult, error) {
	products, err := s.catalog.Search(ctx, query.Query)
	if err != nil {
		return nil, err
	}

	if query.MaxPrice != nil {
		products = filterByMaxPrice(products, *query.MaxPrice)
	}
	if query.Availability != "" {
		products = filterByAvailability(products, query.Availability)
	}
	if len(products) > maxShortlist {
		products = products[:maxShortlist]
	}

	prompt, err := buildPrompt(query.Query, products)
	if err != nil {
		return nil, err
	}

	text, err := s.genai.Complete(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	return &models.SearchResult{
		Query:    query.Query,
		Response: text,
		Products: products,
	}, nil
}

// filterByMaxPrice keeps products priced at or below max. Products whose
// price field cannot be parsed are dropped rather than failing the request.
func filterByMaxPrice(products []models.Product, max decimal.Decimal) []models.Product {
	kept := products[:0:0]
	for _, p := range products {
		price, ok := ParsePrice(p.Price)
		if !ok {
			continue
		}
		if price.LessThanOrEqual(max) {
			kept = append(kept, p)
		}
	}
	return kept
}

// filterByAvailability keeps products whose availability equals want,
// compared case-insensitively. Exact equality, not substring.
func filterByAvailability(products []models.Product, want string) []models.Product {
	kept := products[:0:0]
	for _, p := range products {
		if strings.EqualFold(p.Availability, want) {
			kept = append(kept, p)
		}
	}
	return kept
}

// ParsePrice turns a catalog price string like "$499" or "1,299.00" into a
// decimal. One leading currency symbol is stripped; thousands separators are
// removed. Returns false when no number remains.
func ParsePrice(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	for _, symbol := range []string{"$", "€", "£", "¥"} {
		if strings.HasPrefix(s, symbol) {
			s = strings.TrimSpace(s[len(symbol):])
			break
		}
	}
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func buildPrompt(query string, products []models.Product) (string, error) {
	if products == nil {
		products = []models.Product{}
	}
	serialized, err := json.Marshal(products)
	if err != nil {
		return "", fmt.Errorf("serialize shortlist: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are an IKEA shopping assistant. Reformat the following product search results for the query ")
	fmt.Fprintf(&b, "%q", query)
	b.WriteString(" into a clear, user-friendly response:\n")
	b.Write(serialized)
	return b.String(), nil
}
