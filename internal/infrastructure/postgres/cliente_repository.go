package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColumns = `id, nombre, apellido, empresa, email, telefono, vendedor, creado_en`

// Create persiste un nuevo cliente con su vendedor asignado.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nombre, apellido, empresa, email, telefono, vendedor, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Apellido, c.Empresa, c.Email, c.Telefono, c.Vendedor, c.CreadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailYaRegistrado
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE id = $1`
	return scanCliente(r.q.QueryRow(context.Background(), query, id), "get cliente")
}

// GetByEmail obtiene un cliente por email. Devuelve (nil, nil) si no existe.
func (r *ClienteRepo) GetByEmail(email string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE email = $1`
	return scanCliente(r.q.QueryRow(context.Background(), query, email), "get cliente by email")
}

// Update actualiza los datos del cliente. Vendedor no se toca: es inmutable.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nombre = $2, apellido = $3, empresa = $4, email = $5, telefono = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Apellido, c.Empresa, c.Email, c.Telefono,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailYaRegistrado
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// List devuelve todos los clientes.
func (r *ClienteRepo) List() ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes ORDER BY creado_en DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return collectClientes(rows)
}

// ListByVendedor devuelve los clientes de un vendedor.
func (r *ClienteRepo) ListByVendedor(vendedorID string) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE vendedor = $1 ORDER BY creado_en DESC`
	rows, err := r.q.Query(context.Background(), query, vendedorID)
	if err != nil {
		return nil, fmt.Errorf("list clientes by vendedor: %w", err)
	}
	return collectClientes(rows)
}

// Delete elimina un cliente por ID.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

func scanCliente(row pgx.Row, op string) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(&c.ID, &c.Nombre, &c.Apellido, &c.Empresa, &c.Email, &c.Telefono, &c.Vendedor, &c.CreadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func collectClientes(rows pgx.Rows) ([]*entity.Cliente, error) {
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Apellido, &c.Empresa, &c.Email, &c.Telefono, &c.Vendedor, &c.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
