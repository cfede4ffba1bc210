package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del catálogo. No tiene dueño: cualquier
// vendedor autenticado puede crearlo, editarlo o venderlo.
type Producto struct {
	ID          string
	Nombre      string
	Descripcion string
	Existencia  int // unidades disponibles, nunca negativo
	Precio      decimal.Decimal
	CreadoEn    time.Time
}
