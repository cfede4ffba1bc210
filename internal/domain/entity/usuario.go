package entity

import "time"

// Usuario representa un vendedor del sistema.
type Usuario struct {
	ID       string
	Nombre   string
	Apellido string
	Email    string
	Password string // bcrypt hash, nunca plano en dominio después de persistir
	CreadoEn time.Time
}
