package ventas_test

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/application/ventas"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{clientes: make(map[string]*entity.Cliente)}
}

func (f *fakeClienteRepo) Create(c *entity.Cliente) error {
	cp := *c
	f.clientes[c.ID] = &cp
	return nil
}

func (f *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClienteRepo) GetByEmail(email string) (*entity.Cliente, error) {
	for _, c := range f.clientes {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeClienteRepo) Update(c *entity.Cliente) error {
	cp := *c
	f.clientes[c.ID] = &cp
	return nil
}

func (f *fakeClienteRepo) List() ([]*entity.Cliente, error) {
	out := make([]*entity.Cliente, 0, len(f.clientes))
	for _, c := range f.clientes {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeClienteRepo) ListByVendedor(vendedorID string) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range f.clientes {
		if c.Vendedor == vendedorID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeClienteRepo) Delete(id string) error {
	delete(f.clientes, id)
	return nil
}

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: make(map[string]*entity.Producto)}
}

func (f *fakeProductoRepo) Create(p *entity.Producto) error {
	cp := *p
	f.productos[p.ID] = &cp
	return nil
}

func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, ok := f.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return f.GetByID(id)
}

func (f *fakeProductoRepo) Update(p *entity.Producto) error {
	cp := *p
	f.productos[p.ID] = &cp
	return nil
}

func (f *fakeProductoRepo) UpdateExistencia(id string, existencia int) error {
	if p, ok := f.productos[id]; ok {
		p.Existencia = existencia
	}
	return nil
}

func (f *fakeProductoRepo) List() ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(f.productos))
	for _, p := range f.productos {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductoRepo) Search(texto string, limit int) ([]*entity.Producto, error) {
	return nil, nil
}

func (f *fakeProductoRepo) Delete(id string) error {
	delete(f.productos, id)
	return nil
}

// existencia lee el stock actual de un producto, para aserciones.
func (f *fakeProductoRepo) existencia(id string) int {
	if p, ok := f.productos[id]; ok {
		return p.Existencia
	}
	return -1
}

type fakePedidoRepo struct {
	pedidos map[string]*entity.Pedido
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{pedidos: make(map[string]*entity.Pedido)}
}

func (f *fakePedidoRepo) Create(p *entity.Pedido) error {
	cp := *p
	f.pedidos[p.ID] = &cp
	return nil
}

func (f *fakePedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	p, ok := f.pedidos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePedidoRepo) Update(p *entity.Pedido) error {
	cp := *p
	f.pedidos[p.ID] = &cp
	return nil
}

func (f *fakePedidoRepo) List() ([]*entity.Pedido, error) {
	out := make([]*entity.Pedido, 0, len(f.pedidos))
	for _, p := range f.pedidos {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakePedidoRepo) ListByVendedor(vendedorID string) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range f.pedidos {
		if p.Vendedor == vendedorID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePedidoRepo) ListByVendedorYEstado(vendedorID, estado string) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range f.pedidos {
		if p.Vendedor == vendedorID && p.Estado == estado {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePedidoRepo) Delete(id string) error {
	delete(f.pedidos, id)
	return nil
}

type fakeRankingRepo struct {
	clientes   []repository.ClienteRanking
	vendedores []repository.VendedorRanking
}

func (f *fakeRankingRepo) MejoresClientes(ctx context.Context, limit int) ([]repository.ClienteRanking, error) {
	if limit < len(f.clientes) {
		return f.clientes[:limit], nil
	}
	return f.clientes, nil
}

func (f *fakeRankingRepo) MejoresVendedores(ctx context.Context, limit int) ([]repository.VendedorRanking, error) {
	if limit < len(f.vendedores) {
		return f.vendedores[:limit], nil
	}
	return f.vendedores, nil
}

// fakeTxRunner imita la semántica transaccional: toma una copia del estado
// antes de ejecutar fn y lo restaura si fn falla.
type fakeTxRunner struct {
	productos *fakeProductoRepo
	pedidos   *fakePedidoRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	productoRepo repository.ProductoRepository,
	pedidoRepo repository.PedidoRepository,
) error) error {
	productosAntes := make(map[string]*entity.Producto, len(f.productos.productos))
	for id, p := range f.productos.productos {
		cp := *p
		productosAntes[id] = &cp
	}
	pedidosAntes := make(map[string]*entity.Pedido, len(f.pedidos.pedidos))
	for id, p := range f.pedidos.pedidos {
		cp := *p
		pedidosAntes[id] = &cp
	}

	if err := fn(f.productos, f.pedidos); err != nil {
		f.productos.productos = productosAntes
		f.pedidos.pedidos = pedidosAntes
		return err
	}
	return nil
}

var _ ventas.TxRunner = (*fakeTxRunner)(nil)
