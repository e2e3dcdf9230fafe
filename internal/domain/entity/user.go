package entity

import "time"

// User representa una cuenta del sistema. Cada usuario es dueño de sus propias
// categorías y, a través de ellas, de sus productos.
type User struct {
	ID           string
	Username     string // único en todo el sistema
	Email        string // opcional
	Phone        string // opcional, numérico, máx 8 caracteres
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
