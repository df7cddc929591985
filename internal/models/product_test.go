package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRoundTripKeepsExtraFields(t *testing.T) {
	src := `{"name": "BILLY", "price": "$49", "availability": "In Stock", "color": "birch", "dimensions": {"w": 80, "h": 202}}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(src), &p))

	assert.Equal(t, "BILLY", p.Name)
	assert.Equal(t, "$49", p.Price)
	assert.Equal(t, "In Stock", p.Availability)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, src, string(out))
}

func TestProductKnownFieldsWinOverExtra(t *testing.T) {
	p := Product{
		Name:  "KALLAX",
		Price: "$89",
		Extra: map[string]json.RawMessage{"name": json.RawMessage(`"stale"`)},
	}

	out, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "KALLAX", decoded["name"])
}

func TestProductUnmarshalNonObjectFails(t *testing.T) {
	var p Product
	assert.Error(t, json.Unmarshal([]byte(`"just a string"`), &p))
}
