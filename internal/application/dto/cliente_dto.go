package dto

import "time"

// ClienteInput datos para crear un cliente. El vendedor se toma del caller.
type ClienteInput struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Empresa  string `json:"empresa"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// ClienteUpdateInput actualización parcial: solo se aplican los campos presentes.
// No incluye vendedor: el dueño de un cliente es inmutable.
type ClienteUpdateInput struct {
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
	Empresa  *string `json:"empresa"`
	Email    *string `json:"email"`
	Telefono *string `json:"telefono"`
}

// ClienteResponse representación de un cliente en respuestas.
type ClienteResponse struct {
	ID       string    `json:"id"`
	Nombre   string    `json:"nombre"`
	Apellido string    `json:"apellido"`
	Empresa  string    `json:"empresa"`
	Email    string    `json:"email"`
	Telefono string    `json:"telefono,omitempty"`
	Vendedor string    `json:"vendedor"`
	Creado   time.Time `json:"creado"`
}
