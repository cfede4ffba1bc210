// Package pdf implementa la generación de la nota de pedido: el documento
// imprimible que el vendedor entrega o envía a su cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nota de pedido + N° + Fecha + Estado                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENDEDOR: nombre + email                                   │
//	│  CLIENTE: nombre + empresa + contacto                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DEL PEDIDO                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/ventas-api/internal/application/ventas"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ventas.NotaPedidoGenerator = (*MarotoNotaPedido)(nil)

// MarotoNotaPedido implementa ventas.NotaPedidoGenerator usando Maroto v2.
type MarotoNotaPedido struct{}

// NewMarotoNotaPedido construye el generador.
func NewMarotoNotaPedido() *MarotoNotaPedido { return &MarotoNotaPedido{} }

// GenerarNotaPedido genera el PDF y devuelve sus bytes.
func (g *MarotoNotaPedido) GenerarNotaPedido(
	_ context.Context,
	pedido *entity.Pedido,
	cliente *entity.Cliente,
	vendedor *entity.Usuario,
	lineas []ventas.LineaNota,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota de pedido", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(pedido))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(vendedorRow(vendedor))
	m.AddRows(clienteRow(cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lineas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(pedido))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y número, fecha y estado del pedido (der).
func headerRow(pedido *entity.Pedido) core.Row {
	fecha := pedido.CreadoEn.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("NOTA DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Pedido N° "+pedido.ID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Estado: "+pedido.Estado, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// vendedorRow: datos del vendedor responsable.
func vendedorRow(vendedor *entity.Usuario) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("VENDEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s %s   |   %s", vendedor.Nombre, vendedor.Apellido, vendedor.Email),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// clienteRow: datos del cliente del pedido.
func clienteRow(cliente *entity.Cliente) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s %s", cliente.Nombre, cliente.Apellido), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Empresa: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(cliente.Empresa, "—"),
				nonEmpty(cliente.Email, "—"),
				nonEmpty(cliente.Telefono, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableLineRows: una fila por línea del pedido.
func tableLineRows(lineas []ventas.LineaNota) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", l.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.Precio.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+l.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total del pedido alineado a la derecha.
func totalRow(pedido *entity.Pedido) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL DEL PEDIDO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+pedido.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
