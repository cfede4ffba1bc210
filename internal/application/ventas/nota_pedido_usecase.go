package ventas

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// NotaPedidoUseCase genera la nota de pedido en PDF: resuelve cliente,
// vendedor y productos del pedido y delega el render al generador.
type NotaPedidoUseCase struct {
	pedidoRepo   repository.PedidoRepository
	clienteRepo  repository.ClienteRepository
	usuarioRepo  repository.UsuarioRepository
	productoRepo repository.ProductoRepository
	generator    NotaPedidoGenerator
}

// NewNotaPedidoUseCase construye el caso de uso.
func NewNotaPedidoUseCase(
	pedidoRepo repository.PedidoRepository,
	clienteRepo repository.ClienteRepository,
	usuarioRepo repository.UsuarioRepository,
	productoRepo repository.ProductoRepository,
	generator NotaPedidoGenerator,
) *NotaPedidoUseCase {
	return &NotaPedidoUseCase{
		pedidoRepo:   pedidoRepo,
		clienteRepo:  clienteRepo,
		usuarioRepo:  usuarioRepo,
		productoRepo: productoRepo,
		generator:    generator,
	}
}

// Generar produce el PDF de un pedido; solo el vendedor dueño puede descargarlo.
func (uc *NotaPedidoUseCase) Generar(ctx context.Context, pedidoID, vendedorID string) ([]byte, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrPedidoNoEncontrado
	}
	if err := domain.VerificarVendedor(pedido.Vendedor, vendedorID); err != nil {
		return nil, err
	}
	cliente, err := uc.clienteRepo.GetByID(pedido.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNoEncontrado
	}
	vendedor, err := uc.usuarioRepo.GetByID(pedido.Vendedor)
	if err != nil {
		return nil, err
	}
	if vendedor == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}

	lineas := make([]LineaNota, 0, len(pedido.Articulos))
	for _, articulo := range pedido.Articulos {
		producto, err := uc.productoRepo.GetByID(articulo.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			return nil, domain.ErrProductoNoEncontrado
		}
		cantidad := decimal.NewFromInt(int64(articulo.Cantidad))
		lineas = append(lineas, LineaNota{
			Nombre:   producto.Nombre,
			Cantidad: articulo.Cantidad,
			Precio:   producto.Precio,
			Subtotal: producto.Precio.Mul(cantidad),
		})
	}
	return uc.generator.GenerarNotaPedido(ctx, pedido, cliente, vendedor, lineas)
}
