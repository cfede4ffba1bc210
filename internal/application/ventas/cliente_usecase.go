package ventas

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ClienteUseCase CRUD de clientes con regla de propiedad: cada cliente
// pertenece al vendedor que lo creó y solo él puede verlo o modificarlo.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso de clientes.
func NewClienteUseCase(clienteRepo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo}
}

// Crear registra un cliente y lo asigna al vendedor autenticado.
// Devuelve ErrEmailYaRegistrado si el email de cliente ya existe.
func (uc *ClienteUseCase) Crear(vendedorID string, in dto.ClienteInput) (*dto.ClienteResponse, error) {
	if in.Nombre == "" || in.Email == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existente, err := uc.clienteRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailYaRegistrado
	}
	cliente := &entity.Cliente{
		ID:       uuid.New().String(),
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		Empresa:  in.Empresa,
		Email:    in.Email,
		Telefono: in.Telefono,
		Vendedor: vendedorID,
		CreadoEn: time.Now(),
	}
	if err := uc.clienteRepo.Create(cliente); err != nil {
		return nil, err
	}
	return ToClienteResponse(cliente), nil
}

// Obtener devuelve un cliente por ID, solo para su vendedor.
func (uc *ClienteUseCase) Obtener(id, vendedorID string) (*dto.ClienteResponse, error) {
	cliente, err := uc.buscarPropio(id, vendedorID)
	if err != nil {
		return nil, err
	}
	return ToClienteResponse(cliente), nil
}

// Listar devuelve todos los clientes, sin filtrar.
func (uc *ClienteUseCase) Listar() ([]*dto.ClienteResponse, error) {
	clientes, err := uc.clienteRepo.List()
	if err != nil {
		return nil, err
	}
	return mapClientes(clientes), nil
}

// ListarPorVendedor devuelve los clientes del vendedor autenticado.
func (uc *ClienteUseCase) ListarPorVendedor(vendedorID string) ([]*dto.ClienteResponse, error) {
	clientes, err := uc.clienteRepo.ListByVendedor(vendedorID)
	if err != nil {
		return nil, err
	}
	return mapClientes(clientes), nil
}

// Actualizar aplica solo los campos presentes del input; requiere ser el dueño.
func (uc *ClienteUseCase) Actualizar(id, vendedorID string, in dto.ClienteUpdateInput) (*dto.ClienteResponse, error) {
	cliente, err := uc.buscarPropio(id, vendedorID)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		cliente.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		cliente.Apellido = *in.Apellido
	}
	if in.Empresa != nil {
		cliente.Empresa = *in.Empresa
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if err := uc.clienteRepo.Update(cliente); err != nil {
		return nil, err
	}
	return ToClienteResponse(cliente), nil
}

// Eliminar borra un cliente; requiere ser el dueño.
func (uc *ClienteUseCase) Eliminar(id, vendedorID string) (*dto.MensajeResponse, error) {
	if _, err := uc.buscarPropio(id, vendedorID); err != nil {
		return nil, err
	}
	if err := uc.clienteRepo.Delete(id); err != nil {
		return nil, err
	}
	return &dto.MensajeResponse{Mensaje: "Cliente eliminado"}, nil
}

// buscarPropio carga el cliente y verifica que pertenezca al vendedor.
func (uc *ClienteUseCase) buscarPropio(id, vendedorID string) (*entity.Cliente, error) {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNoEncontrado
	}
	if err := domain.VerificarVendedor(cliente.Vendedor, vendedorID); err != nil {
		return nil, err
	}
	return cliente, nil
}

func mapClientes(clientes []*entity.Cliente) []*dto.ClienteResponse {
	out := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, ToClienteResponse(c))
	}
	return out
}

// ToClienteResponse mapea la entidad a la respuesta pública.
func ToClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:       c.ID,
		Nombre:   c.Nombre,
		Apellido: c.Apellido,
		Empresa:  c.Empresa,
		Email:    c.Email,
		Telefono: c.Telefono,
		Vendedor: c.Vendedor,
		Creado:   c.CreadoEn,
	}
}
