package alert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLowStock(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		minThreshold int
		want         bool
	}{
		{"por debajo del umbral", 2, 5, true},
		{"exactamente en el umbral", 5, 5, true},
		{"por encima del umbral", 6, 5, false},
		{"cantidad cero con umbral cero", 0, 0, true},
		{"sin stock y umbral positivo", 0, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LowStock(tt.quantity, tt.minThreshold))
		})
	}
}

func TestExpired(t *testing.T) {
	ref := date(2025, time.June, 15)

	t.Run("sin fecha de vencimiento nunca vence", func(t *testing.T) {
		assert.False(t, Expired(nil, ref))
	})

	t.Run("vencido en el pasado", func(t *testing.T) {
		exp := date(2025, time.June, 1)
		assert.True(t, Expired(&exp, ref))
	})

	t.Run("vence hoy cuenta como vencido", func(t *testing.T) {
		exp := date(2025, time.June, 15)
		assert.True(t, Expired(&exp, ref))
	})

	t.Run("vence mañana no está vencido", func(t *testing.T) {
		exp := date(2025, time.June, 16)
		assert.False(t, Expired(&exp, ref))
	})

	t.Run("compara por fecha calendario, no por instante", func(t *testing.T) {
		// Vencimiento a medianoche, referencia ya avanzado el mismo día:
		// siguen siendo el mismo día calendario, por lo tanto vencido.
		exp := date(2025, time.June, 15)
		refLater := time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC)
		assert.True(t, Expired(&exp, refLater))
	})
}

func TestDateOf(t *testing.T) {
	instant := time.Date(2025, time.June, 15, 18, 30, 45, 123, time.UTC)
	got := DateOf(instant)
	assert.Equal(t, date(2025, time.June, 15), got)

	// Un instante en otra zona se trunca sobre su fecha UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	late := time.Date(2025, time.June, 15, 22, 0, 0, 0, loc) // 03:00 del 16 en UTC
	assert.Equal(t, date(2025, time.June, 16), DateOf(late))
}

func TestEvaluate(t *testing.T) {
	ref := date(2025, time.June, 15)
	expired := date(2025, time.June, 1)
	fresh := date(2025, time.December, 1)

	tests := []struct {
		name         string
		quantity     int
		minThreshold int
		expiration   *time.Time
		want         Flags
	}{
		{"normal", 10, 5, &fresh, Flags{IsLowStock: false, HasExpiry: false}},
		{"solo stock bajo", 3, 5, &fresh, Flags{IsLowStock: true, HasExpiry: false}},
		{"solo vencido", 10, 5, &expired, Flags{IsLowStock: false, HasExpiry: true}},
		{"ambos estados a la vez", 3, 5, &expired, Flags{IsLowStock: true, HasExpiry: true}},
		{"sin fecha de vencimiento", 3, 5, nil, Flags{IsLowStock: true, HasExpiry: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.quantity, tt.minThreshold, tt.expiration, ref)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Los fragmentos SQL y las funciones Go son el mismo predicado; si alguien
// cambia un umbral de lado Go este test lo obliga a mirar el lado SQL.
func TestSQLFragmentsMatchGoPredicates(t *testing.T) {
	require.Equal(t, "p.quantity <= p.min_threshold", LowStockSQL,
		"el predicado SQL de stock bajo debe ser <= (inclusivo), igual que LowStock")
	require.Equal(t, "(p.expiration_date IS NOT NULL AND p.expiration_date <= @ref_date)", ExpiredSQL,
		"el predicado SQL de vencimiento debe ser <= e ignorar NULL, igual que Expired")
}
