package graphql

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/catalogo"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/ventas"
	"github.com/jhoicas/ventas-api/internal/domain"
)

// Request operación nombrada con sus variables, sobre el endpoint único.
type Request struct {
	Operation string          `json:"operation"`
	Variables json.RawMessage `json:"variables"`
}

// Resolver despacha cada operación nombrada al caso de uso correspondiente,
// inyectando la identidad del caller. Sin lógica de negocio propia.
type Resolver struct {
	authUC     *auth.AuthUseCase
	productoUC *catalogo.ProductoUseCase
	clienteUC  *ventas.ClienteUseCase
	pedidoUC   *ventas.PedidoUseCase
}

// NewResolver construye el resolver con sus casos de uso.
func NewResolver(
	authUC *auth.AuthUseCase,
	productoUC *catalogo.ProductoUseCase,
	clienteUC *ventas.ClienteUseCase,
	pedidoUC *ventas.PedidoUseCase,
) *Resolver {
	return &Resolver{
		authUC:     authUC,
		productoUC: productoUC,
		clienteUC:  clienteUC,
		pedidoUC:   pedidoUC,
	}
}

// ── Formas de variables por operación ─────────────────────────────────────────

type idArgs struct {
	ID string `json:"id"`
}

type textoArgs struct {
	Texto string `json:"texto"`
}

type estadoArgs struct {
	Estado string `json:"estado"`
}

type registroArgs struct {
	Input dto.RegistroInput `json:"input"`
}

type loginArgs struct {
	Input dto.LoginInput `json:"input"`
}

type productoArgs struct {
	Input dto.ProductoInput `json:"input"`
}

type productoUpdateArgs struct {
	ID    string                  `json:"id"`
	Input dto.ProductoUpdateInput `json:"input"`
}

type clienteArgs struct {
	Input dto.ClienteInput `json:"input"`
}

type clienteUpdateArgs struct {
	ID    string                 `json:"id"`
	Input dto.ClienteUpdateInput `json:"input"`
}

type pedidoArgs struct {
	Input dto.PedidoInput `json:"input"`
}

type pedidoUpdateArgs struct {
	ID    string                `json:"id"`
	Input dto.PedidoUpdateInput `json:"input"`
}

// Resolve atiende POST /graphql: decodifica la operación y despacha.
func (r *Resolver) Resolve(c *fiber.Ctx) error {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.ErrEntradaInvalida)
	}

	out, err := r.dispatch(c, req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, out)
}

func (r *Resolver) dispatch(c *fiber.Ctx, req Request) (interface{}, error) {
	switch req.Operation {

	// ── Queries ──────────────────────────────────────────────────────────

	case "obtenerUsuario":
		usuario, err := RequireUsuario(c)
		if err != nil {
			return nil, err
		}
		return r.authUC.UsuarioActual(usuario.UsuarioID)

	case "obtenerProductos":
		return r.productoUC.Listar()

	case "obtenerProducto":
		var args idArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.productoUC.Obtener(args.ID)

	case "buscarProducto":
		var args textoArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.productoUC.Buscar(args.Texto)

	case "obtenerClientes":
		return r.clienteUC.Listar()

	case "obtenerClientesVendedor":
		usuario, err := RequireUsuario(c)
		if err != nil {
			return nil, err
		}
		return r.clienteUC.ListarPorVendedor(usuario.UsuarioID)

	case "obtenerCliente":
		usuario, err := RequireUsuario(c)
		if err != nil {
			return nil, err
		}
		var args idArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.clienteUC.Obtener(args.ID, usuario.UsuarioID)

	case "obtenerPedidos":
		return r.pedidoUC.Listar()

	case "obtenerPedidosVendedor":
		usuario, err := RequireUsuario(c)
		if err != nil {
			return nil, err
		}
		return r.pedidoUC.ListarPorVendedor(usuario.UsuarioID)

	case "obtenerPedido":
		usuario, err := RequireUsuario(c)
		if err != nil {
			return nil, err
		}
		var args idArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.pedidoUC.Obtener(args.ID, usuario.UsuarioID)

	case "obtenerPedidoEstado":
		usuario, err := RequireUsuario(c)
		if err != nil {
			return nil, err
		}
		var args estadoArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.pedidoUC.ListarPorEstado(usuario.UsuarioID, args.Estado)

	case "mejoresClientes":
		return r.pedidoUC.MejoresClientes(c.Context())

	case "mejoresVendedores":
		return r.pedidoUC.MejoresVendedores(c.Context())

	// ── Mutations ────────────────────────────────────────────────────────

	case "nuevoUsuario":
		var args registroArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.authUC.Registrar(args.Input)

	case "autenticarUsuario":
		var args loginArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.authUC.Autenticar(args.Input)

	case "nuevoProducto":
		var args productoArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.productoUC.Crear(args.Input)

	case "actualizarProducto":
		var args productoUpdateArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.productoUC.Actualizar(args.ID, args.Input)

	case "eliminarProducto":
		var args idArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.productoUC.Eliminar(args.ID)

	case "nuevoCliente":
		usuario, err := RequireUsuario(c)
		if err != nil {
			return nil, err
		}
		var args clienteArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.clienteUC.Crear(usuario.UsuarioID, args.Input)

	case "actualizarCliente":
		usuario, err := RequireUsuario(c)
		if err != nil {
			return nil, err
		}
		var args clienteUpdateArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.clienteUC.Actualizar(args.ID, usuario.UsuarioID, args.Input)

	case "eliminarCliente":
		usuario, err := RequireUsuario(c)
		if err != nil {
			return nil, err
		}
		var args idArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.clienteUC.Eliminar(args.ID, usuario.UsuarioID)

	case "nuevoPedido":
		usuario, err := RequireUsuario(c)
		if err != nil {
			return nil, err
		}
		var args pedidoArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.pedidoUC.Crear(c.Context(), usuario.UsuarioID, args.Input)

	case "actualizarPedido":
		usuario, err := RequireUsuario(c)
		if err != nil {
			return nil, err
		}
		var args pedidoUpdateArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.pedidoUC.Actualizar(c.Context(), args.ID, usuario.UsuarioID, args.Input)

	case "eliminarPedido":
		usuario, err := RequireUsuario(c)
		if err != nil {
			return nil, err
		}
		var args idArgs
		if err := decode(req.Variables, &args); err != nil {
			return nil, err
		}
		return r.pedidoUC.Eliminar(args.ID, usuario.UsuarioID)
	}

	return nil, errUndefinedOperation(req.Operation)
}

// decode deserializa las variables de la operación; nil equivale a objeto vacío.
func decode(raw json.RawMessage, into interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return domain.ErrEntradaInvalida
	}
	return nil
}
