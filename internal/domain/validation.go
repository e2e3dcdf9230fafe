package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError error de entrada con detalle por campo. La capa HTTP lo
// traduce a 400 con el mapa de campos en el cuerpo.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError construye el error con un mapa inicial.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add registra el problema de un campo y devuelve el mismo error (encadenable).
func (e *ValidationError) Add(field, problem string) *ValidationError {
	e.Fields[field] = problem
	return e
}

// Empty indica si no se registró ningún problema.
func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

// Error implementa error con los campos en orden estable.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validación: " + strings.Join(parts, "; ")
}
