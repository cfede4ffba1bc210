package graphql

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// Response envoltorio de respuesta: data o errors, nunca ambos.
type Response struct {
	Data   interface{}  `json:"data,omitempty"`
	Errors []ErrorEntry `json:"errors,omitempty"`
}

// ErrorEntry error de operación con código estable en extensions.
type ErrorEntry struct {
	Message    string     `json:"message"`
	Extensions Extensions `json:"extensions"`
}

// Extensions metadatos del error.
type Extensions struct {
	Code string `json:"code"`
}

// Códigos de error expuestos por el API.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeForbidden          = "FORBIDDEN"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
	CodeBadUserInput       = "BAD_USER_INPUT"
	CodeUndefinedOperation = "UNDEFINED_OPERATION"
	CodeInternal           = "INTERNAL"
)

// undefinedOperationError operación que el router no reconoce.
type undefinedOperationError struct {
	name string
}

func (e undefinedOperationError) Error() string {
	return "operación no definida: " + e.name
}

func errUndefinedOperation(name string) error {
	return undefinedOperationError{name: name}
}

// codeFor mapea un error de dominio a su código estable.
func codeFor(err error) string {
	var undefined undefinedOperationError
	if errors.As(err, &undefined) {
		return CodeUndefinedOperation
	}
	switch {
	case errors.Is(err, domain.ErrNoEncontrado),
		errors.Is(err, domain.ErrUsuarioNoEncontrado),
		errors.Is(err, domain.ErrProductoNoEncontrado),
		errors.Is(err, domain.ErrClienteNoEncontrado),
		errors.Is(err, domain.ErrPedidoNoEncontrado):
		return CodeNotFound
	case errors.Is(err, domain.ErrEmailYaRegistrado):
		return CodeAlreadyExists
	case errors.Is(err, domain.ErrCredencialesInvalidas):
		return CodeInvalidCredentials
	case errors.Is(err, domain.ErrTokenInvalido):
		return CodeInvalidToken
	case errors.Is(err, domain.ErrNoAutenticado):
		return CodeUnauthenticated
	case errors.Is(err, domain.ErrNoAutorizado):
		return CodeForbidden
	case errors.Is(err, domain.ErrExistenciaInsuficiente):
		return CodeInsufficientStock
	case errors.Is(err, domain.ErrEntradaInvalida):
		return CodeBadUserInput
	default:
		return CodeInternal
	}
}

// respondData responde una operación exitosa.
func respondData(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Response{Data: data})
}

// errorEntry arma la entrada de error para el caller. Los errores que no son
// de dominio se loguean y salen como fallo genérico: nunca un éxito vacío y
// nunca detalles internos hacia el caller.
func errorEntry(c *fiber.Ctx, err error) ErrorEntry {
	code := codeFor(err)
	msg := err.Error()
	if code == CodeInternal {
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno de operación")
		msg = "error interno"
	}
	return ErrorEntry{Message: msg, Extensions: Extensions{Code: code}}
}

// respondError responde el fallo de una operación.
func respondError(c *fiber.Ctx, err error) error {
	return c.JSON(Response{Errors: []ErrorEntry{errorEntry(c, err)}})
}

// statusFor mapea un error a status HTTP, para las rutas que no responden
// con el envoltorio de operaciones (descarga de PDF).
func statusFor(err error) int {
	switch codeFor(err) {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeAlreadyExists:
		return fiber.StatusConflict
	case CodeInvalidCredentials, CodeInvalidToken, CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeInsufficientStock, CodeBadUserInput:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
