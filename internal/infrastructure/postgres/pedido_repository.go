package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL (usable con pool o tx).
// Las líneas del pedido se guardan como JSONB en la columna articulos.
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

const pedidoColumns = `id, articulos, total, cliente, vendedor, estado, creado_en`

// Create persiste un nuevo pedido.
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	articulos, err := json.Marshal(p.Articulos)
	if err != nil {
		return fmt.Errorf("marshal articulos: %w", err)
	}
	query := `
		INSERT INTO pedidos (id, articulos, total, cliente, vendedor, estado, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		p.ID, articulos, p.Total, p.ClienteID, p.Vendedor, p.Estado, p.CreadoEn,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID. Devuelve (nil, nil) si no existe.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE id = $1`
	return scanPedido(r.q.QueryRow(context.Background(), query, id), "get pedido")
}

// Update reemplaza los datos del pedido.
func (r *PedidoRepo) Update(p *entity.Pedido) error {
	articulos, err := json.Marshal(p.Articulos)
	if err != nil {
		return fmt.Errorf("marshal articulos: %w", err)
	}
	query := `
		UPDATE pedidos
		SET articulos = $2, total = $3, cliente = $4, estado = $5
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		p.ID, articulos, p.Total, p.ClienteID, p.Estado,
	)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	return nil
}

// List devuelve todos los pedidos.
func (r *PedidoRepo) List() ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos ORDER BY creado_en DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	return collectPedidos(rows)
}

// ListByVendedor devuelve los pedidos de un vendedor.
func (r *PedidoRepo) ListByVendedor(vendedorID string) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE vendedor = $1 ORDER BY creado_en DESC`
	rows, err := r.q.Query(context.Background(), query, vendedorID)
	if err != nil {
		return nil, fmt.Errorf("list pedidos by vendedor: %w", err)
	}
	return collectPedidos(rows)
}

// ListByVendedorYEstado devuelve los pedidos de un vendedor con un estado dado.
func (r *PedidoRepo) ListByVendedorYEstado(vendedorID, estado string) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE vendedor = $1 AND estado = $2 ORDER BY creado_en DESC`
	rows, err := r.q.Query(context.Background(), query, vendedorID, estado)
	if err != nil {
		return nil, fmt.Errorf("list pedidos by estado: %w", err)
	}
	return collectPedidos(rows)
}

// Delete elimina un pedido por ID.
func (r *PedidoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	return nil
}

func scanPedido(row pgx.Row, op string) (*entity.Pedido, error) {
	var p entity.Pedido
	var articulos []byte
	err := row.Scan(&p.ID, &articulos, &p.Total, &p.ClienteID, &p.Vendedor, &p.Estado, &p.CreadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(articulos, &p.Articulos); err != nil {
		return nil, fmt.Errorf("unmarshal articulos: %w", err)
	}
	return &p, nil
}

func collectPedidos(rows pgx.Rows) ([]*entity.Pedido, error) {
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		var articulos []byte
		if err := rows.Scan(&p.ID, &articulos, &p.Total, &p.ClienteID, &p.Vendedor, &p.Estado, &p.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		if err := json.Unmarshal(articulos, &p.Articulos); err != nil {
			return nil, fmt.Errorf("unmarshal articulos: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
