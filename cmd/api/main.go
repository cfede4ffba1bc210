package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/catalogo"
	"github.com/jhoicas/ventas-api/internal/application/ventas"
	infrapdf "github.com/jhoicas/ventas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ventas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ventas-api/internal/interfaces/graphql"
	"github.com/jhoicas/ventas-api/pkg/config"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	rankingRepo := postgres.NewRankingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	productoUC := catalogo.NewProductoUseCase(productoRepo)
	clienteUC := ventas.NewClienteUseCase(clienteRepo)
	pedidoUC := ventas.NewPedidoUseCase(txRunner, pedidoRepo, clienteRepo, productoRepo, rankingRepo)

	// PDF: nota de pedido para imprimir o enviar al cliente
	notaGenerator := infrapdf.NewMarotoNotaPedido()
	notaPedidoUC := ventas.NewNotaPedidoUseCase(pedidoRepo, clienteRepo, usuarioRepo, productoRepo, notaGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	graphql.Router(app, graphql.RouterDeps{
		AuthUC:       authUC,
		ProductoUC:   productoUC,
		ClienteUC:    clienteUC,
		PedidoUC:     pedidoUC,
		NotaPedidoUC: notaPedidoUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
