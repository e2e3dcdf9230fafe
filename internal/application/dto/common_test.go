package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPageLinks(t *testing.T) {
	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name     string
		count    int
		page     int
		pageSize int
		want     PageLinks
	}{
		{"única página", 5, 1, 10, PageLinks{Next: nil, Previous: nil}},
		{"primera de varias", 150, 1, 100, PageLinks{Next: intPtr(2), Previous: nil}},
		{"última de varias", 150, 2, 100, PageLinks{Next: nil, Previous: intPtr(1)}},
		{"página intermedia", 50, 2, 10, PageLinks{Next: intPtr(3), Previous: intPtr(1)}},
		{"sin resultados", 0, 1, 10, PageLinks{Next: nil, Previous: nil}},
		{"más allá de la última: previous apunta a la última real", 30, 9, 10, PageLinks{Next: nil, Previous: intPtr(3)}},
		{"página inválida se trata como la primera", 30, 0, 10, PageLinks{Next: intPtr(2), Previous: nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPageLinks(tt.count, tt.page, tt.pageSize))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 20))
	assert.Equal(t, 20, Offset(2, 20))
	assert.Equal(t, 180, Offset(10, 20))
	assert.Equal(t, 0, Offset(0, 20), "página inválida no produce offset negativo")
}

func TestDateJSON(t *testing.T) {
	t.Run("serializa solo la fecha", func(t *testing.T) {
		d := NewDate(time.Date(2025, time.June, 15, 13, 45, 0, 0, time.UTC))
		b, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2025-06-15"`, string(b))
	})

	t.Run("parsea YYYY-MM-DD", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2025-06-15"`), &d))
		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, time.June, d.Month())
		assert.Equal(t, 15, d.Day())
	})

	t.Run("rechaza formatos con hora", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"2025-06-15T10:00:00Z"`), &d))
	})

	t.Run("null no es error", func(t *testing.T) {
		var d Date
		assert.NoError(t, json.Unmarshal([]byte(`null`), &d))
	})
}
