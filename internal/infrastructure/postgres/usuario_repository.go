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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nombre, apellido, email, password, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Apellido, u.Email, u.Password, u.CreadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailYaRegistrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre, apellido, email, password, creado_en
		FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get usuario")
}

// GetByEmail obtiene un usuario por email. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre, apellido, email, password, creado_en
		FROM usuarios WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get usuario by email")
}

func (r *UsuarioRepo) scanOne(row pgx.Row, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.Password, &u.CreadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
