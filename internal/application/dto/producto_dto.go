package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductoInput datos para crear un producto.
type ProductoInput struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Existencia  int             `json:"existencia"`
	Precio      decimal.Decimal `json:"precio"`
}

// ProductoUpdateInput actualización parcial: solo se aplican los campos presentes.
type ProductoUpdateInput struct {
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Existencia  *int             `json:"existencia"`
	Precio      *decimal.Decimal `json:"precio"`
}

// ProductoResponse representación de un producto en respuestas.
type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	Existencia  int             `json:"existencia"`
	Precio      decimal.Decimal `json:"precio"`
	Creado      time.Time       `json:"creado"`
}
