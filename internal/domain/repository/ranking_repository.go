package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ClienteRanking total facturado por un cliente en pedidos COMPLETADO.
type ClienteRanking struct {
	Cliente entity.Cliente
	Total   decimal.Decimal
}

// VendedorRanking total facturado por un vendedor en pedidos COMPLETADO.
type VendedorRanking struct {
	Vendedor entity.Usuario
	Total    decimal.Decimal
}

// RankingRepository consultas de agregación de solo lectura sobre pedidos.
type RankingRepository interface {
	MejoresClientes(ctx context.Context, limit int) ([]ClienteRanking, error)
	MejoresVendedores(ctx context.Context, limit int) ([]VendedorRanking, error)
}
