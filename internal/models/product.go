package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Product is one catalog search hit. The catalog contract only pins down
// name, price, and availability; any other field the catalog sends is kept
// verbatim in Extra so the generation prompt and the API response can carry
// it through unchanged.
type Product struct {
	Name         string
	Price        string
	Availability string
	Extra        map[string]json.RawMessage
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for key, raw := range fields {
		switch key {
		case "name":
			_ = json.Unmarshal(raw, &p.Name)
		case "price":
			_ = json.Unmarshal(raw, &p.Price)
		case "availability":
			_ = json.Unmarshal(raw, &p.Availability)
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]json.RawMessage)
			}
			p.Extra[key] = raw
		}
	}
	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(p.Extra)+3)
	for key, raw := range p.Extra {
		fields[key] = raw
	}

	name, err := json.Marshal(p.Name)
	if err != nil {
		return nil, err
	}
	price, err := json.Marshal(p.Price)
	if err != nil {
		return nil, err
	}
	availability, err := json.Marshal(p.Availability)
	if err != nil {
		return nil, err
	}
	fields["name"] = name
	fields["price"] = price
	fields["availability"] = availability

	return json.Marshal(fields)
}

// SearchQuery is the validated input to a catalog search. MaxPrice is nil
// when no price filter was requested.
type SearchQuery struct {
	Query        string
	MaxPrice     *decimal.Decimal
	Availability string
}

// SearchResult is the outcome of one search: the generated summary text plus
// the filtered shortlist it was produced from.
type SearchResult struct {
	Query    string
	Response string
	Products []Product
}
