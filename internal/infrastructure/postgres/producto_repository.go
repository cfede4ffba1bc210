package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, nombre, descripcion, existencia, precio, creado_en`

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (id, nombre, descripcion, existencia, precio, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Existencia, p.Precio, p.CreadoEn,
	)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	return scanProducto(r.q.QueryRow(context.Background(), query, id), "get producto")
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene efecto dentro de una transacción.
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1 FOR UPDATE`
	return scanProducto(r.q.QueryRow(context.Background(), query, id), "lock producto")
}

// Update actualiza los datos de un producto, incluida la existencia.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, existencia = $4, precio = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Existencia, p.Precio,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateExistencia actualiza solo las unidades disponibles (reserva de stock).
func (r *ProductoRepo) UpdateExistencia(id string, existencia int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET existencia = $2 WHERE id = $1`,
		id, existencia,
	)
	if err != nil {
		return fmt.Errorf("update existencia: %w", err)
	}
	return nil
}

// List devuelve todos los productos.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos ORDER BY creado_en DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	return collectProductos(rows)
}

// Search busca por texto libre sobre nombre y descripción (índice full-text en
// español) y corta en limit resultados.
func (r *ProductoRepo) Search(texto string, limit int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoColumns + `
		FROM productos
		WHERE busqueda @@ plainto_tsquery('spanish', $1)
		ORDER BY ts_rank(busqueda, plainto_tsquery('spanish', $1)) DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, texto, limit)
	if err != nil {
		return nil, fmt.Errorf("search productos: %w", err)
	}
	return collectProductos(rows)
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func scanProducto(row pgx.Row, op string) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Existencia, &p.Precio, &p.CreadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func collectProductos(rows pgx.Rows) ([]*entity.Producto, error) {
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Existencia, &p.Precio, &p.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
