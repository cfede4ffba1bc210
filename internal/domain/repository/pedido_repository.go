package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// PedidoRepository define el puerto de persistencia para Pedido (DIP).
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	GetByID(id string) (*entity.Pedido, error)
	Update(pedido *entity.Pedido) error
	List() ([]*entity.Pedido, error)
	ListByVendedor(vendedorID string) ([]*entity.Pedido, error)
	ListByVendedorYEstado(vendedorID, estado string) ([]*entity.Pedido, error)
	Delete(id string) error
}
