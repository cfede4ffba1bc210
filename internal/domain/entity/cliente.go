package entity

import "time"

// Cliente representa un cliente de un vendedor. Vendedor se asigna al crear
// y es inmutable: todas las verificaciones de acceso se hacen contra él.
type Cliente struct {
	ID       string
	Nombre   string
	Apellido string
	Empresa  string
	Email    string
	Telefono string
	Vendedor string // ID del Usuario dueño
	CreadoEn time.Time
}
