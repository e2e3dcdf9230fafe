package entity

import "time"

// Token representa una sesión emitida en login. Se guarda el hash SHA-256 del
// JWT firmado (nunca el token en claro) para poder revocarlo en logout y para
// que el middleware de auth falle cerrado si la fila no existe.
type Token struct {
	ID        string
	UserID    string
	TokenHash string // hex(SHA-256(token firmado)), único
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión ya venció respecto al instante dado.
func (t *Token) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
