package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un pedido. Solo COMPLETADO cuenta en los rankings.
const (
	EstadoPendiente  = "PENDIENTE"
	EstadoCompletado = "COMPLETADO"
	EstadoCancelado  = "CANCELADO"
)

// EstadoValido reporta si s es uno de los estados reconocidos.
func EstadoValido(s string) bool {
	return s == EstadoPendiente || s == EstadoCompletado || s == EstadoCancelado
}

// ArticuloPedido es una línea del pedido: producto y cantidad solicitada.
type ArticuloPedido struct {
	ProductoID string `json:"id"`
	Cantidad   int    `json:"cantidad"`
}

// Pedido representa una orden de venta de un cliente. Vendedor se copia del
// dueño del cliente al crear y es la referencia de autorización del pedido.
type Pedido struct {
	ID        string
	Articulos []ArticuloPedido
	Total     decimal.Decimal
	ClienteID string
	Vendedor  string
	Estado    string
	CreadoEn  time.Time
}
