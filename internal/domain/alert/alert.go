// Package alert define los estados derivados de un producto: stock bajo y
// vencimiento. Es la única fuente de verdad de esos umbrales.
//
// Cada predicado existe en dos formas que deben coincidir siempre:
//
//   - la función Go, usada al anotar entidades ya cargadas (listados, detalle);
//   - el fragmento SQL, usado en consultas orientadas a conjuntos (alertas,
//     agregados del dashboard) para no traer todas las filas a memoria.
//
// Ambas formas viven en este archivo y alert_test.go las fija a la misma tabla
// de verdad. Cualquier cambio de umbral se hace aquí y en ningún otro lado.
package alert

import "time"

// Fragmentos SQL de los predicados, sobre el alias p de products.
// @ref_date es la fecha de evaluación (pgx.NamedArgs), tipo DATE.
const (
	LowStockSQL = "p.quantity <= p.min_threshold"
	ExpiredSQL  = "(p.expiration_date IS NOT NULL AND p.expiration_date <= @ref_date)"
)

// LowStock indica si la cantidad está en o por debajo del umbral mínimo.
func LowStock(quantity, minThreshold int) bool {
	return quantity <= minThreshold
}

// Expired indica si el producto tiene fecha de vencimiento y esta es anterior
// o igual a la fecha de referencia. La comparación es por fecha calendario:
// vencer "hoy" cuenta como vencido. Sin fecha de vencimiento nunca es true.
func Expired(expiration *time.Time, ref time.Time) bool {
	if expiration == nil {
		return false
	}
	return !DateOf(*expiration).After(DateOf(ref))
}

// DateOf trunca un instante a su fecha calendario en UTC. Las fechas de
// vencimiento se guardan como DATE, así que toda comparación pasa por aquí.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Flags agrupa los dos derivados de un producto para una fecha de referencia.
type Flags struct {
	IsLowStock bool
	HasExpiry  bool
}

// Evaluate calcula ambos flags de una vez (camino por entidad).
func Evaluate(quantity, minThreshold int, expiration *time.Time, ref time.Time) Flags {
	return Flags{
		IsLowStock: LowStock(quantity, minThreshold),
		HasExpiry:  Expired(expiration, ref),
	}
}
