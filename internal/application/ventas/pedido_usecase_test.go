package ventas_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/ventas"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

type pedidoFixture struct {
	uc        *ventas.PedidoUseCase
	productos *fakeProductoRepo
	pedidos   *fakePedidoRepo
	clientes  *fakeClienteRepo
	rankings  *fakeRankingRepo
}

func nuevoPedidoFixture(t *testing.T) *pedidoFixture {
	t.Helper()
	productos := newFakeProductoRepo()
	pedidos := newFakePedidoRepo()
	clientes := newFakeClienteRepo()
	rankings := &fakeRankingRepo{}
	tx := &fakeTxRunner{productos: productos, pedidos: pedidos}
	return &pedidoFixture{
		uc:        ventas.NewPedidoUseCase(tx, pedidos, clientes, productos, rankings),
		productos: productos,
		pedidos:   pedidos,
		clientes:  clientes,
		rankings:  rankings,
	}
}

func (fx *pedidoFixture) conProducto(id, nombre string, existencia int) {
	fx.productos.productos[id] = &entity.Producto{
		ID:         id,
		Nombre:     nombre,
		Existencia: existencia,
		Precio:     decimal.NewFromInt(100),
		CreadoEn:   time.Now(),
	}
}

func (fx *pedidoFixture) conCliente(id, vendedorID string) {
	fx.clientes.clientes[id] = &entity.Cliente{
		ID:       id,
		Nombre:   "Carlos",
		Apellido: "Ruiz",
		Email:    id + "@correo.com",
		Vendedor: vendedorID,
		CreadoEn: time.Now(),
	}
}

const (
	productoCafe   = "00000000-0000-0000-0000-000000000c01"
	productoAzucar = "00000000-0000-0000-0000-000000000c02"
	clienteID      = "00000000-0000-0000-0000-0000000000c1"
)

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestPedidoCrear_DescuentaExistencias(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conProducto(productoCafe, "Café", 5)
	fx.conCliente(clienteID, vendedorA)

	resp, err := fx.uc.Crear(context.Background(), vendedorA, dto.PedidoInput{
		Articulos: []dto.ArticuloInput{{ID: productoCafe, Cantidad: 3}},
		Total:     decimal.NewFromInt(300),
		Cliente:   clienteID,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoPendiente, resp.Estado, "sin estado en el input queda PENDIENTE")
	assert.Equal(t, vendedorA, resp.Vendedor)
	assert.Equal(t, 2, fx.productos.existencia(productoCafe), "5 - 3 = 2 unidades")

	guardado, _ := fx.pedidos.GetByID(resp.ID)
	require.NotNil(t, guardado, "el pedido debe quedar persistido")
}

func TestPedidoCrear_ExistenciaInsuficiente_NoDescuentaNada(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conProducto(productoCafe, "Café", 5)
	fx.conCliente(clienteID, vendedorA)

	_, err := fx.uc.Crear(context.Background(), vendedorA, dto.PedidoInput{
		Articulos: []dto.ArticuloInput{{ID: productoCafe, Cantidad: 6}},
		Total:     decimal.NewFromInt(600),
		Cliente:   clienteID,
	})
	require.ErrorIs(t, err, domain.ErrExistenciaInsuficiente)
	assert.Contains(t, err.Error(), "Café", "el error debe nombrar el artículo que excede el stock")

	assert.Equal(t, 5, fx.productos.existencia(productoCafe), "el stock no debe cambiar")
	todos, _ := fx.pedidos.List()
	assert.Empty(t, todos, "no debe quedar ningún pedido persistido")
}

func TestPedidoCrear_FallaUnaLinea_RevierteLasAnteriores(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conProducto(productoCafe, "Café", 5)
	fx.conProducto(productoAzucar, "Azúcar", 1)
	fx.conCliente(clienteID, vendedorA)

	// La primera línea cabe, la segunda no: todo debe revertirse.
	_, err := fx.uc.Crear(context.Background(), vendedorA, dto.PedidoInput{
		Articulos: []dto.ArticuloInput{
			{ID: productoCafe, Cantidad: 3},
			{ID: productoAzucar, Cantidad: 2},
		},
		Total:   decimal.NewFromInt(500),
		Cliente: clienteID,
	})
	require.ErrorIs(t, err, domain.ErrExistenciaInsuficiente)

	assert.Equal(t, 5, fx.productos.existencia(productoCafe), "la línea ya descontada debe revertirse")
	assert.Equal(t, 1, fx.productos.existencia(productoAzucar))
}

func TestPedidoCrear_ProductoInexistente_NotFound(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conCliente(clienteID, vendedorA)

	_, err := fx.uc.Crear(context.Background(), vendedorA, dto.PedidoInput{
		Articulos: []dto.ArticuloInput{{ID: "00000000-0000-0000-0000-00000000dead", Cantidad: 1}},
		Cliente:   clienteID,
	})
	assert.ErrorIs(t, err, domain.ErrProductoNoEncontrado)
}

func TestPedidoCrear_ClienteDeOtroVendedor_Forbidden(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conProducto(productoCafe, "Café", 5)
	fx.conCliente(clienteID, vendedorB)

	_, err := fx.uc.Crear(context.Background(), vendedorA, dto.PedidoInput{
		Articulos: []dto.ArticuloInput{{ID: productoCafe, Cantidad: 1}},
		Cliente:   clienteID,
	})
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
	assert.Equal(t, 5, fx.productos.existencia(productoCafe))
}

func TestPedidoCrear_SinArticulosOSinCliente_BadInput(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conCliente(clienteID, vendedorA)

	_, err := fx.uc.Crear(context.Background(), vendedorA, dto.PedidoInput{Cliente: clienteID})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = fx.uc.Crear(context.Background(), vendedorA, dto.PedidoInput{
		Articulos: []dto.ArticuloInput{{ID: productoCafe, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestPedidoCrear_CantidadNoPositiva_BadInput(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conProducto(productoCafe, "Café", 5)
	fx.conCliente(clienteID, vendedorA)

	_, err := fx.uc.Crear(context.Background(), vendedorA, dto.PedidoInput{
		Articulos: []dto.ArticuloInput{{ID: productoCafe, Cantidad: 0}},
		Cliente:   clienteID,
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestPedidoCrear_EstadoInvalido_BadInput(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conProducto(productoCafe, "Café", 5)
	fx.conCliente(clienteID, vendedorA)

	_, err := fx.uc.Crear(context.Background(), vendedorA, dto.PedidoInput{
		Articulos: []dto.ArticuloInput{{ID: productoCafe, Cantidad: 1}},
		Cliente:   clienteID,
		Estado:    "ENVIADO",
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualizar
// ──────────────────────────────────────────────────────────────────────────────

func crearPedido(t *testing.T, fx *pedidoFixture, cantidad int) *dto.PedidoResponse {
	t.Helper()
	resp, err := fx.uc.Crear(context.Background(), vendedorA, dto.PedidoInput{
		Articulos: []dto.ArticuloInput{{ID: productoCafe, Cantidad: cantidad}},
		Total:     decimal.NewFromInt(int64(cantidad) * 100),
		Cliente:   clienteID,
	})
	require.NoError(t, err)
	return resp
}

func TestPedidoActualizar_SoloEstado_NoTocaStock(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conProducto(productoCafe, "Café", 5)
	fx.conCliente(clienteID, vendedorA)
	pedido := crearPedido(t, fx, 3)
	require.Equal(t, 2, fx.productos.existencia(productoCafe))

	completado := entity.EstadoCompletado
	resp, err := fx.uc.Actualizar(context.Background(), pedido.ID, vendedorA, dto.PedidoUpdateInput{
		Estado: &completado,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoCompletado, resp.Estado)
	assert.Equal(t, 2, fx.productos.existencia(productoCafe),
		"cambiar solo el estado no debe tocar existencias")
}

func TestPedidoActualizar_ConArticulos_ReservaLasNuevasLineas(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conProducto(productoCafe, "Café", 10)
	fx.conCliente(clienteID, vendedorA)
	pedido := crearPedido(t, fx, 3) // stock: 7

	resp, err := fx.uc.Actualizar(context.Background(), pedido.ID, vendedorA, dto.PedidoUpdateInput{
		Articulos: []dto.ArticuloInput{{ID: productoCafe, Cantidad: 2}},
	})
	require.NoError(t, err)

	require.Len(t, resp.Articulos, 1)
	assert.Equal(t, 2, resp.Articulos[0].Cantidad)
	assert.Equal(t, 5, fx.productos.existencia(productoCafe), "7 - 2 = 5 tras reservar las líneas nuevas")
}

func TestPedidoActualizar_ArticulosSinStock_NoCambiaNada(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conProducto(productoCafe, "Café", 5)
	fx.conCliente(clienteID, vendedorA)
	pedido := crearPedido(t, fx, 3) // stock: 2

	_, err := fx.uc.Actualizar(context.Background(), pedido.ID, vendedorA, dto.PedidoUpdateInput{
		Articulos: []dto.ArticuloInput{{ID: productoCafe, Cantidad: 4}},
	})
	require.ErrorIs(t, err, domain.ErrExistenciaInsuficiente)

	assert.Equal(t, 2, fx.productos.existencia(productoCafe))
	guardado, _ := fx.pedidos.GetByID(pedido.ID)
	require.Len(t, guardado.Articulos, 1)
	assert.Equal(t, 3, guardado.Articulos[0].Cantidad, "el pedido persistido no debe cambiar")
}

func TestPedidoActualizar_OtroVendedor_Forbidden(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conProducto(productoCafe, "Café", 5)
	fx.conCliente(clienteID, vendedorA)
	pedido := crearPedido(t, fx, 1)

	completado := entity.EstadoCompletado
	_, err := fx.uc.Actualizar(context.Background(), pedido.ID, vendedorB, dto.PedidoUpdateInput{
		Estado: &completado,
	})
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestPedidoObtener_OtroVendedor_Forbidden(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conProducto(productoCafe, "Café", 5)
	fx.conCliente(clienteID, vendedorA)
	pedido := crearPedido(t, fx, 1)

	_, err := fx.uc.Obtener(pedido.ID, vendedorB)
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)

	visto, err := fx.uc.Obtener(pedido.ID, vendedorA)
	require.NoError(t, err)
	assert.Equal(t, pedido.ID, visto.ID)
}

func TestPedidoListarPorEstado_EstadoInvalido_BadInput(t *testing.T) {
	fx := nuevoPedidoFixture(t)

	_, err := fx.uc.ListarPorEstado(vendedorA, "ENVIADO")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestPedidoListarPorEstado_FiltraPorVendedorYEstado(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conProducto(productoCafe, "Café", 10)
	fx.conCliente(clienteID, vendedorA)
	pedido := crearPedido(t, fx, 1)
	crearPedido(t, fx, 1)

	completado := entity.EstadoCompletado
	_, err := fx.uc.Actualizar(context.Background(), pedido.ID, vendedorA, dto.PedidoUpdateInput{
		Estado: &completado,
	})
	require.NoError(t, err)

	pendientes, err := fx.uc.ListarPorEstado(vendedorA, entity.EstadoPendiente)
	require.NoError(t, err)
	assert.Len(t, pendientes, 1)

	completados, err := fx.uc.ListarPorEstado(vendedorA, entity.EstadoCompletado)
	require.NoError(t, err)
	assert.Len(t, completados, 1)
}

func TestPedidoEliminar_NoReponeExistencias(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	fx.conProducto(productoCafe, "Café", 5)
	fx.conCliente(clienteID, vendedorA)
	pedido := crearPedido(t, fx, 3)

	msg, err := fx.uc.Eliminar(pedido.ID, vendedorA)
	require.NoError(t, err)
	assert.Equal(t, "Pedido eliminado", msg.Mensaje)

	assert.Equal(t, 2, fx.productos.existencia(productoCafe),
		"eliminar un pedido no repone el stock descontado")
	quedado, _ := fx.pedidos.GetByID(pedido.ID)
	assert.Nil(t, quedado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rankings
// ──────────────────────────────────────────────────────────────────────────────

func TestMejoresClientes_RespetaElLimite(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	for i := 0; i < 12; i++ {
		fx.rankings.clientes = append(fx.rankings.clientes, repository.ClienteRanking{
			Cliente: entity.Cliente{ID: clienteID, Nombre: "Carlos"},
			Total:   decimal.NewFromInt(int64(1000 - i)),
		})
	}

	top, err := fx.uc.MejoresClientes(context.Background())
	require.NoError(t, err)
	assert.Len(t, top, 10, "el ranking de clientes es top 10")
}

func TestMejoresVendedores_RespetaElLimite(t *testing.T) {
	fx := nuevoPedidoFixture(t)
	for i := 0; i < 5; i++ {
		fx.rankings.vendedores = append(fx.rankings.vendedores, repository.VendedorRanking{
			Vendedor: entity.Usuario{ID: vendedorA, Nombre: "Ana"},
			Total:    decimal.NewFromInt(int64(1000 - i)),
		})
	}

	top, err := fx.uc.MejoresVendedores(context.Background())
	require.NoError(t, err)
	assert.Len(t, top, 3, "el ranking de vendedores es top 3")
}
