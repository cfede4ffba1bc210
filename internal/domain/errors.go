package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado           = errors.New("recurso no encontrado")
	ErrUsuarioNoEncontrado    = errors.New("el usuario no está registrado")
	ErrProductoNoEncontrado   = errors.New("producto no encontrado")
	ErrClienteNoEncontrado    = errors.New("cliente no encontrado")
	ErrPedidoNoEncontrado     = errors.New("pedido no encontrado")
	ErrEmailYaRegistrado      = errors.New("el email ya está registrado")
	ErrCredencialesInvalidas  = errors.New("el password es incorrecto")
	ErrTokenInvalido          = errors.New("token inválido o expirado")
	ErrNoAutenticado          = errors.New("se requiere iniciar sesión")
	ErrNoAutorizado           = errors.New("no tienes las credenciales")
	ErrExistenciaInsuficiente = errors.New("excede la cantidad disponible")
	ErrEntradaInvalida        = errors.New("entrada inválida")
)
