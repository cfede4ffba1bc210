package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// Costo bcrypt histórico del sistema.
const bcryptCost = 10

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Registrar crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailYaRegistrado si el email ya existe.
func (uc *AuthUseCase) Registrar(in dto.RegistroInput) (*dto.UsuarioResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existente, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailYaRegistrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		ID:       uuid.New().String(),
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		Email:    in.Email,
		Password: string(hash),
		CreadoEn: time.Now(),
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return ToUsuarioResponse(usuario), nil
}

// Autenticar verifica email/password y genera el token de sesión (24h por defecto).
func (uc *AuthUseCase) Autenticar(in dto.LoginInput) (*dto.TokenResponse, error) {
	usuario, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	t, err := token.Generate(
		uc.jwtCfg.Secret,
		usuario.ID, usuario.Email, usuario.Nombre, usuario.Apellido,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours,
	)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: t}, nil
}

// UsuarioActual devuelve el usuario autenticado a partir de su ID (query obtenerUsuario).
func (uc *AuthUseCase) UsuarioActual(id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	return ToUsuarioResponse(usuario), nil
}

// ToUsuarioResponse mapea la entidad a la respuesta pública (sin hash).
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Email:    u.Email,
		Creado:   u.CreadoEn,
	}
}
