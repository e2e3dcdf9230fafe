package dto

import (
	"fmt"
	"time"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"` // detalle por campo en errores de validación
}

// PageQuery parámetros de paginación por número de página.
type PageQuery struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// PageLinks indicadores de página siguiente y anterior (null si no aplican).
type PageLinks struct {
	Next     *int `json:"next"`
	Previous *int `json:"previous"`
}

// BuildPageLinks calcula next/previous para un total, página y tamaño dados.
// Una página más allá de la última devuelve Next nulo y Previous apuntando a
// la última página real: página vacía pero válida, nunca un error.
func BuildPageLinks(count, page, pageSize int) PageLinks {
	if page < 1 {
		page = 1
	}
	lastPage := (count + pageSize - 1) / pageSize
	if lastPage < 1 {
		lastPage = 1
	}
	var links PageLinks
	if page < lastPage {
		next := page + 1
		links.Next = &next
	}
	if page > 1 {
		prev := page - 1
		if prev > lastPage {
			prev = lastPage
		}
		links.Previous = &prev
	}
	return links
}

// Offset devuelve el offset SQL de la página (1-indexada).
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// Date serializa una fecha calendario como "YYYY-MM-DD" (sin hora ni zona).
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate construye una Date a partir de un instante.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// MarshalJSON serializa como "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format(dateLayout))), nil
}

// UnmarshalJSON acepta "YYYY-MM-DD" o null.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("fecha inválida %q (se espera YYYY-MM-DD)", s)
	}
	d.Time = t
	return nil
}
