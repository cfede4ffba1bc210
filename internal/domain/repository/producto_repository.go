package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// GetForUpdate bloquea la fila del producto dentro de la transacción actual;
// fuera de una transacción se comporta como GetByID.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetForUpdate(id string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	UpdateExistencia(id string, existencia int) error
	List() ([]*entity.Producto, error)
	Search(texto string, limit int) ([]*entity.Producto, error)
	Delete(id string) error
}
