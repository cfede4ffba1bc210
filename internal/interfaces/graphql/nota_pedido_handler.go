package graphql

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/ventas"
)

// NotaPedidoHandler descarga de la nota de pedido en PDF.
type NotaPedidoHandler struct {
	uc *ventas.NotaPedidoUseCase
}

// NewNotaPedidoHandler construye el handler.
func NewNotaPedidoHandler(uc *ventas.NotaPedidoUseCase) *NotaPedidoHandler {
	return &NotaPedidoHandler{uc: uc}
}

// Descargar genera y entrega el PDF del pedido. Solo el vendedor dueño.
func (h *NotaPedidoHandler) Descargar(c *fiber.Ctx) error {
	usuario, err := RequireUsuario(c)
	if err != nil {
		return c.Status(statusFor(err)).JSON(Response{Errors: []ErrorEntry{errorEntry(c, err)}})
	}
	pdfBytes, err := h.uc.Generar(c.Context(), c.Params("id"), usuario.UsuarioID)
	if err != nil {
		return c.Status(statusFor(err)).JSON(Response{Errors: []ErrorEntry{errorEntry(c, err)}})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="nota-pedido.pdf"`)
	return c.Send(pdfBytes)
}
