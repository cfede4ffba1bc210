package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArticuloInput línea de pedido: producto y cantidad solicitada.
type ArticuloInput struct {
	ID       string `json:"id"`
	Cantidad int    `json:"cantidad"`
}

// PedidoInput datos para crear un pedido. La clave "pedido" conserva el nombre
// histórico del API para las líneas.
type PedidoInput struct {
	Articulos []ArticuloInput `json:"pedido"`
	Total     decimal.Decimal `json:"total"`
	Cliente   string          `json:"cliente"`
	Estado    string          `json:"estado"`
}

// PedidoUpdateInput actualización parcial. Articulos == nil significa que la
// actualización no toca las líneas ni las existencias.
type PedidoUpdateInput struct {
	Articulos []ArticuloInput  `json:"pedido"`
	Total     *decimal.Decimal `json:"total"`
	Cliente   *string          `json:"cliente"`
	Estado    *string          `json:"estado"`
}

// ArticuloResponse línea de pedido en respuestas.
type ArticuloResponse struct {
	ID       string `json:"id"`
	Cantidad int    `json:"cantidad"`
}

// PedidoResponse representación de un pedido en respuestas.
type PedidoResponse struct {
	ID        string             `json:"id"`
	Articulos []ArticuloResponse `json:"pedido"`
	Total     decimal.Decimal    `json:"total"`
	Cliente   string             `json:"cliente"`
	Vendedor  string             `json:"vendedor"`
	Estado    string             `json:"estado"`
	Creado    time.Time          `json:"creado"`
}

// MensajeResponse confirmación simple de mutaciones de borrado.
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

// ClienteRankingResponse entrada de mejoresClientes.
type ClienteRankingResponse struct {
	Cliente ClienteResponse `json:"cliente"`
	Total   decimal.Decimal `json:"total"`
}

// VendedorRankingResponse entrada de mejoresVendedores.
type VendedorRankingResponse struct {
	Vendedor UsuarioResponse `json:"vendedor"`
	Total    decimal.Decimal `json:"total"`
}
