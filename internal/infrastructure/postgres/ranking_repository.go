package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.RankingRepository = (*RankingRepo)(nil)

// RankingRepo consultas de agregación de solo lectura sobre pedidos COMPLETADO.
type RankingRepo struct {
	pool *pgxpool.Pool
}

// NewRankingRepository construye el adaptador de rankings.
func NewRankingRepository(pool *pgxpool.Pool) *RankingRepo {
	return &RankingRepo{pool: pool}
}

// MejoresClientes agrupa los pedidos completados por cliente, suma totales y
// devuelve los limit clientes con mayor facturación, de mayor a menor.
func (r *RankingRepo) MejoresClientes(ctx context.Context, limit int) ([]repository.ClienteRanking, error) {
	const query = `
	SELECT c.id, c.nombre, c.apellido, c.empresa, c.email, c.telefono, c.vendedor, c.creado_en,
	       SUM(p.total) AS total
	FROM pedidos p
	JOIN clientes c ON c.id = p.cliente
	WHERE p.estado = 'COMPLETADO'
	GROUP BY c.id, c.nombre, c.apellido, c.empresa, c.email, c.telefono, c.vendedor, c.creado_en
	ORDER BY total DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ranking.MejoresClientes: %w", err)
	}
	defer rows.Close()

	var results []repository.ClienteRanking
	for rows.Next() {
		var row repository.ClienteRanking
		var c entity.Cliente
		if err := rows.Scan(
			&c.ID, &c.Nombre, &c.Apellido, &c.Empresa, &c.Email, &c.Telefono, &c.Vendedor, &c.CreadoEn,
			&row.Total,
		); err != nil {
			return nil, fmt.Errorf("ranking.MejoresClientes scan: %w", err)
		}
		row.Cliente = c
		results = append(results, row)
	}
	return results, rows.Err()
}

// MejoresVendedores agrupa los pedidos completados por vendedor, suma totales y
// devuelve los limit vendedores con mayor facturación, de mayor a menor.
func (r *RankingRepo) MejoresVendedores(ctx context.Context, limit int) ([]repository.VendedorRanking, error) {
	const query = `
	SELECT u.id, u.nombre, u.apellido, u.email, u.creado_en,
	       SUM(p.total) AS total
	FROM pedidos p
	JOIN usuarios u ON u.id = p.vendedor
	WHERE p.estado = 'COMPLETADO'
	GROUP BY u.id, u.nombre, u.apellido, u.email, u.creado_en
	ORDER BY total DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ranking.MejoresVendedores: %w", err)
	}
	defer rows.Close()

	var results []repository.VendedorRanking
	for rows.Next() {
		var row repository.VendedorRanking
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.CreadoEn, &row.Total); err != nil {
			return nil, fmt.Errorf("ranking.MejoresVendedores scan: %w", err)
		}
		row.Vendedor = u
		results = append(results, row)
	}
	return results, rows.Err()
}
