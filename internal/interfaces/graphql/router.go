package graphql

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/catalogo"
	"github.com/jhoicas/ventas-api/internal/application/ventas"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductoUC   *catalogo.ProductoUseCase
	ClienteUC    *ventas.ClienteUseCase
	PedidoUC     *ventas.PedidoUseCase
	NotaPedidoUC *ventas.NotaPedidoUseCase
	JWTSecret    string
}

// Router registra las rutas de la API: el endpoint único de operaciones y la
// descarga de la nota de pedido. La identidad se resuelve una sola vez por
// request en AuthMiddleware.
func Router(app *fiber.App, deps RouterDeps) {
	resolver := NewResolver(deps.AuthUC, deps.ProductoUC, deps.ClienteUC, deps.PedidoUC)

	app.Post("/graphql", AuthMiddleware(deps.JWTSecret), resolver.Resolve)

	notaHandler := NewNotaPedidoHandler(deps.NotaPedidoUC)
	app.Get("/pedidos/:id/pdf", AuthMiddleware(deps.JWTSecret), notaHandler.Descargar)
}
