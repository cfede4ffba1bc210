package catalogo

import (
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Máximo de resultados de búsqueda de texto libre.
const searchLimit = 10

// ProductoUseCase CRUD del catálogo de productos. Los productos no tienen
// dueño: cualquier vendedor autenticado puede gestionarlos.
type ProductoUseCase struct {
	productoRepo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso de catálogo.
func NewProductoUseCase(productoRepo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo}
}

// Crear persiste un nuevo producto.
func (uc *ProductoUseCase) Crear(in dto.ProductoInput) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Existencia < 0 || in.Precio.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	producto := &entity.Producto{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Existencia:  in.Existencia,
		Precio:      in.Precio,
		CreadoEn:    time.Now(),
	}
	if err := uc.productoRepo.Create(producto); err != nil {
		return nil, err
	}
	return ToProductoResponse(producto), nil
}

// Obtener devuelve un producto por ID.
func (uc *ProductoUseCase) Obtener(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrProductoNoEncontrado
	}
	return ToProductoResponse(producto), nil
}

// Listar devuelve todos los productos.
func (uc *ProductoUseCase) Listar() ([]*dto.ProductoResponse, error) {
	productos, err := uc.productoRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, ToProductoResponse(p))
	}
	return out, nil
}

// Actualizar aplica solo los campos presentes del input y devuelve el producto resultante.
func (uc *ProductoUseCase) Actualizar(id string, in dto.ProductoUpdateInput) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrProductoNoEncontrado
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.Existencia != nil {
		if *in.Existencia < 0 {
			return nil, domain.ErrEntradaInvalida
		}
		producto.Existencia = *in.Existencia
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		producto.Precio = *in.Precio
	}
	if err := uc.productoRepo.Update(producto); err != nil {
		return nil, err
	}
	return ToProductoResponse(producto), nil
}

// Eliminar borra un producto y devuelve un mensaje de confirmación.
func (uc *ProductoUseCase) Eliminar(id string) (*dto.MensajeResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrProductoNoEncontrado
	}
	if err := uc.productoRepo.Delete(id); err != nil {
		return nil, err
	}
	return &dto.MensajeResponse{Mensaje: "Producto eliminado"}, nil
}

// Buscar hace búsqueda de texto libre sobre nombre y descripción, máximo 10 resultados.
// El texto se normaliza sin tildes para que "cafe" encuentre "café".
func (uc *ProductoUseCase) Buscar(texto string) ([]*dto.ProductoResponse, error) {
	productos, err := uc.productoRepo.Search(plegarTildes(texto), searchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, ToProductoResponse(p))
	}
	return out, nil
}

// plegarTildes elimina marcas diacríticas del texto de búsqueda (NFD -> quitar Mn -> NFC).
func plegarTildes(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// ToProductoResponse mapea la entidad a la respuesta pública.
func ToProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Existencia:  p.Existencia,
		Precio:      p.Precio,
		Creado:      p.CreadoEn,
	}
}
