package ventas

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta fn dentro de una transacción, con repos atados a ella.
// La reserva de existencias y la escritura del pedido comparten la misma tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		pedidoRepo repository.PedidoRepository,
	) error) error
}

// LineaNota línea resuelta (producto + precios) para la nota de pedido en PDF.
type LineaNota struct {
	Nombre   string
	Cantidad int
	Precio   decimal.Decimal
	Subtotal decimal.Decimal
}

// NotaPedidoGenerator genera la representación en PDF de un pedido.
type NotaPedidoGenerator interface {
	GenerarNotaPedido(
		ctx context.Context,
		pedido *entity.Pedido,
		cliente *entity.Cliente,
		vendedor *entity.Usuario,
		lineas []LineaNota,
	) ([]byte, error)
}
