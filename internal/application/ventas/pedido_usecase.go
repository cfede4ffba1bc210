package ventas

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// Tamaños de los rankings de facturación.
const (
	topClientes   = 10
	topVendedores = 3
)

// PedidoUseCase creación, consulta y modificación de pedidos, incluida la
// reserva transaccional de existencias y los rankings de facturación.
type PedidoUseCase struct {
	txRunner     TxRunner
	pedidoRepo   repository.PedidoRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	rankingRepo  repository.RankingRepository
}

// NewPedidoUseCase construye el caso de uso de pedidos.
func NewPedidoUseCase(
	txRunner TxRunner,
	pedidoRepo repository.PedidoRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	rankingRepo repository.RankingRepository,
) *PedidoUseCase {
	return &PedidoUseCase{
		txRunner:     txRunner,
		pedidoRepo:   pedidoRepo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		rankingRepo:  rankingRepo,
	}
}

// Crear registra un pedido para un cliente del vendedor autenticado. La reserva
// de existencias y la escritura del pedido comparten una transacción: si alguna
// línea excede el stock disponible no se descuenta nada.
func (uc *PedidoUseCase) Crear(ctx context.Context, vendedorID string, in dto.PedidoInput) (*dto.PedidoResponse, error) {
	if len(in.Articulos) == 0 || in.Cliente == "" {
		return nil, domain.ErrEntradaInvalida
	}
	cliente, err := uc.clienteRepo.GetByID(in.Cliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNoEncontrado
	}
	if err := domain.VerificarVendedor(cliente.Vendedor, vendedorID); err != nil {
		return nil, err
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoPendiente
	}
	if !entity.EstadoValido(estado) {
		return nil, domain.ErrEntradaInvalida
	}

	pedido := &entity.Pedido{
		ID:        uuid.New().String(),
		Articulos: toArticulos(in.Articulos),
		Total:     in.Total,
		ClienteID: cliente.ID,
		Vendedor:  cliente.Vendedor,
		Estado:    estado,
		CreadoEn:  time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		pedidoRepo repository.PedidoRepository,
	) error {
		if err := reservarExistencias(productoRepo, pedido.Articulos); err != nil {
			return err
		}
		return pedidoRepo.Create(pedido)
	})
	if err != nil {
		return nil, err
	}
	return ToPedidoResponse(pedido), nil
}

// Actualizar modifica un pedido del vendedor autenticado. Si el input trae
// líneas nuevas, se reservan sus existencias en la misma transacción que la
// escritura; si no las trae, el stock no se toca.
func (uc *PedidoUseCase) Actualizar(ctx context.Context, id, vendedorID string, in dto.PedidoUpdateInput) (*dto.PedidoResponse, error) {
	pedido, err := uc.buscarPropio(id, vendedorID)
	if err != nil {
		return nil, err
	}
	if in.Cliente != nil {
		cliente, err := uc.clienteRepo.GetByID(*in.Cliente)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, domain.ErrClienteNoEncontrado
		}
		if err := domain.VerificarVendedor(cliente.Vendedor, vendedorID); err != nil {
			return nil, err
		}
		pedido.ClienteID = cliente.ID
	}
	if in.Estado != nil {
		if !entity.EstadoValido(*in.Estado) {
			return nil, domain.ErrEntradaInvalida
		}
		pedido.Estado = *in.Estado
	}
	if in.Total != nil {
		pedido.Total = *in.Total
	}

	if in.Articulos == nil {
		if err := uc.pedidoRepo.Update(pedido); err != nil {
			return nil, err
		}
		return ToPedidoResponse(pedido), nil
	}

	pedido.Articulos = toArticulos(in.Articulos)
	err = uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		pedidoRepo repository.PedidoRepository,
	) error {
		if err := reservarExistencias(productoRepo, pedido.Articulos); err != nil {
			return err
		}
		return pedidoRepo.Update(pedido)
	})
	if err != nil {
		return nil, err
	}
	return ToPedidoResponse(pedido), nil
}

// Obtener devuelve un pedido por ID, solo para su vendedor.
func (uc *PedidoUseCase) Obtener(id, vendedorID string) (*dto.PedidoResponse, error) {
	pedido, err := uc.buscarPropio(id, vendedorID)
	if err != nil {
		return nil, err
	}
	return ToPedidoResponse(pedido), nil
}

// Listar devuelve todos los pedidos, sin filtrar.
func (uc *PedidoUseCase) Listar() ([]*dto.PedidoResponse, error) {
	pedidos, err := uc.pedidoRepo.List()
	if err != nil {
		return nil, err
	}
	return mapPedidos(pedidos), nil
}

// ListarPorVendedor devuelve los pedidos del vendedor autenticado.
func (uc *PedidoUseCase) ListarPorVendedor(vendedorID string) ([]*dto.PedidoResponse, error) {
	pedidos, err := uc.pedidoRepo.ListByVendedor(vendedorID)
	if err != nil {
		return nil, err
	}
	return mapPedidos(pedidos), nil
}

// ListarPorEstado devuelve los pedidos del vendedor con un estado dado.
func (uc *PedidoUseCase) ListarPorEstado(vendedorID, estado string) ([]*dto.PedidoResponse, error) {
	if !entity.EstadoValido(estado) {
		return nil, domain.ErrEntradaInvalida
	}
	pedidos, err := uc.pedidoRepo.ListByVendedorYEstado(vendedorID, estado)
	if err != nil {
		return nil, err
	}
	return mapPedidos(pedidos), nil
}

// Eliminar borra un pedido; requiere ser el dueño. No repone existencias.
func (uc *PedidoUseCase) Eliminar(id, vendedorID string) (*dto.MensajeResponse, error) {
	if _, err := uc.buscarPropio(id, vendedorID); err != nil {
		return nil, err
	}
	if err := uc.pedidoRepo.Delete(id); err != nil {
		return nil, err
	}
	return &dto.MensajeResponse{Mensaje: "Pedido eliminado"}, nil
}

// MejoresClientes top 10 de clientes por total facturado en pedidos COMPLETADO.
func (uc *PedidoUseCase) MejoresClientes(ctx context.Context) ([]*dto.ClienteRankingResponse, error) {
	rankings, err := uc.rankingRepo.MejoresClientes(ctx, topClientes)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteRankingResponse, 0, len(rankings))
	for _, r := range rankings {
		c := r.Cliente
		out = append(out, &dto.ClienteRankingResponse{
			Cliente: *ToClienteResponse(&c),
			Total:   r.Total,
		})
	}
	return out, nil
}

// MejoresVendedores top 3 de vendedores por total facturado en pedidos COMPLETADO.
func (uc *PedidoUseCase) MejoresVendedores(ctx context.Context) ([]*dto.VendedorRankingResponse, error) {
	rankings, err := uc.rankingRepo.MejoresVendedores(ctx, topVendedores)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VendedorRankingResponse, 0, len(rankings))
	for _, r := range rankings {
		u := r.Vendedor
		out = append(out, &dto.VendedorRankingResponse{
			Vendedor: dto.UsuarioResponse{
				ID:       u.ID,
				Nombre:   u.Nombre,
				Apellido: u.Apellido,
				Email:    u.Email,
				Creado:   u.CreadoEn,
			},
			Total: r.Total,
		})
	}
	return out, nil
}

// reservarExistencias recorre las líneas en orden de entrada: bloquea el
// producto, verifica la cantidad solicitada y descuenta. Se ejecuta dentro de
// una transacción, así que un fallo en cualquier línea revierte todo.
func reservarExistencias(productoRepo repository.ProductoRepository, articulos []entity.ArticuloPedido) error {
	for _, articulo := range articulos {
		if articulo.Cantidad <= 0 {
			return domain.ErrEntradaInvalida
		}
		producto, err := productoRepo.GetForUpdate(articulo.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrProductoNoEncontrado
		}
		if articulo.Cantidad > producto.Existencia {
			return fmt.Errorf("el artículo %s: %w", producto.Nombre, domain.ErrExistenciaInsuficiente)
		}
		if err := productoRepo.UpdateExistencia(producto.ID, producto.Existencia-articulo.Cantidad); err != nil {
			return err
		}
	}
	return nil
}

// buscarPropio carga el pedido y verifica que pertenezca al vendedor.
func (uc *PedidoUseCase) buscarPropio(id, vendedorID string) (*entity.Pedido, error) {
	pedido, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrPedidoNoEncontrado
	}
	if err := domain.VerificarVendedor(pedido.Vendedor, vendedorID); err != nil {
		return nil, err
	}
	return pedido, nil
}

func toArticulos(in []dto.ArticuloInput) []entity.ArticuloPedido {
	out := make([]entity.ArticuloPedido, 0, len(in))
	for _, a := range in {
		out = append(out, entity.ArticuloPedido{ProductoID: a.ID, Cantidad: a.Cantidad})
	}
	return out
}

func mapPedidos(pedidos []*entity.Pedido) []*dto.PedidoResponse {
	out := make([]*dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, ToPedidoResponse(p))
	}
	return out
}

// ToPedidoResponse mapea la entidad a la respuesta pública.
func ToPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	if p == nil {
		return nil
	}
	articulos := make([]dto.ArticuloResponse, 0, len(p.Articulos))
	for _, a := range p.Articulos {
		articulos = append(articulos, dto.ArticuloResponse{ID: a.ProductoID, Cantidad: a.Cantidad})
	}
	return &dto.PedidoResponse{
		ID:        p.ID,
		Articulos: articulos,
		Total:     p.Total,
		Cliente:   p.ClienteID,
		Vendedor:  p.Vendedor,
		Estado:    p.Estado,
		Creado:    p.CreadoEn,
	}
}
