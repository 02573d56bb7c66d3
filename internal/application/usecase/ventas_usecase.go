package usecase

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/boadigital/bazar-ops/internal/application/dto"
	"github.com/boadigital/bazar-ops/internal/domain"
	"github.com/boadigital/bazar-ops/internal/domain/entity"
	"github.com/boadigital/bazar-ops/internal/domain/repository"
)

const (
	fechaLayout     = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// VentasUseCase registro de ventas y devoluciones del día.
type VentasUseCase struct {
	catalog repository.CatalogRepository
	sales   repository.SalesRepository
	now     func() time.Time
}

// NewVentasUseCase construye el caso de uso.
func NewVentasUseCase(catalog repository.CatalogRepository, sales repository.SalesRepository) *VentasUseCase {
	return &VentasUseCase{catalog: catalog, sales: sales, now: time.Now}
}

// RegistrarVenta busca el producto en el catálogo y agrega una venta al
// archivo del lugar para hoy. El precio se toma textual del catálogo.
func (uc *VentasUseCase) RegistrarVenta(lugar, codigo string) (*dto.MessageResponse, error) {
	if strings.TrimSpace(lugar) == "" {
		return nil, domain.ErrInvalidInput
	}
	codigo = strings.ToUpper(strings.TrimSpace(codigo))

	p, err := uc.catalog.FindByCode(codigo)
	if err != nil {
		return nil, err
	}

	venta := entity.Venta{
		Timestamp:   uc.now().Format(timestampLayout),
		Lugar:       lugar,
		CodFabrica:  p.CodFabrica,
		CodVenta:    p.CodVenta,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
	}
	if err := uc.sales.AppendSale(venta); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Venta registrada correctamente"}, nil
}

// ProcesarDevolucion registra una devolución en el archivo compartido del
// día. Exige que exista al menos una venta del producto hoy en el lugar.
//
// El precio devuelto es la negación numérica del precio de catálogo. El
// sistema anterior alternaba entre negación numérica y concatenar "-" al
// string cuando el precio no parseaba; esa segunda rama producía montos
// ilegibles, así que aquí un precio de catálogo no numérico es un error de
// validación.
func (uc *VentasUseCase) ProcesarDevolucion(lugar, codigo, motivo string) (*dto.ReturnResponse, error) {
	if strings.TrimSpace(lugar) == "" {
		return nil, domain.ErrInvalidInput
	}
	codigo = strings.ToUpper(strings.TrimSpace(codigo))

	p, err := uc.catalog.FindByCode(codigo)
	if err != nil {
		return nil, err
	}

	hoy := uc.now().Format(fechaLayout)
	encontradas := 0
	for _, v := range uc.sales.SalesByLugar(lugar, hoy) {
		if v.CodVenta == codigo || v.CodFabrica == codigo {
			encontradas++
		}
	}
	if encontradas == 0 {
		return nil, domain.ErrSinVentas
	}

	monto, ok := domain.ParseMonto(p.Precio)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	dev := entity.Devolucion{
		Timestamp:   uc.now().Format(timestampLayout),
		Lugar:       lugar,
		CodFabrica:  p.CodFabrica,
		CodVenta:    p.CodVenta,
		Descripcion: p.Descripcion,
		Precio:      strconv.FormatInt(-monto, 10),
		Motivo:      strings.TrimSpace(motivo),
		Tipo:        "devolucion",
	}
	if err := uc.sales.AppendReturn(dev); err != nil {
		return nil, err
	}
	return &dto.ReturnResponse{
		Message:           "Devolución registrada correctamente",
		VentasEncontradas: encontradas,
	}, nil
}

// TransaccionesDelDia devuelve las ventas del lugar y las devoluciones del
// día que le pertenecen, mezcladas y ordenadas por timestamp descendente,
// con los totales del día. El monto total suma los precios con signo.
func (uc *VentasUseCase) TransaccionesDelDia(lugar string) (*dto.TransaccionesDiaResponse, error) {
	if strings.TrimSpace(lugar) == "" {
		return nil, domain.ErrInvalidInput
	}
	hoy := uc.now().Format(fechaLayout)

	resp := &dto.TransaccionesDiaResponse{
		Transacciones: []dto.Transaccion{},
		Lugar:         lugar,
		Fecha:         hoy,
	}

	for _, v := range uc.sales.SalesByLugar(lugar, hoy) {
		resp.Transacciones = append(resp.Transacciones, dto.Transaccion{
			Timestamp:   v.Timestamp,
			Lugar:       v.Lugar,
			CodFabrica:  v.CodFabrica,
			CodVenta:    v.CodVenta,
			Descripcion: v.Descripcion,
			Precio:      v.Precio,
			Tipo:        "venta",
		})
		resp.TotalVentas++
		if n, ok := domain.ParseMonto(v.Precio); ok {
			resp.MontoTotal += n
		}
	}

	for _, d := range uc.sales.ReturnsForDate(hoy) {
		if d.Lugar != lugar {
			continue
		}
		resp.Transacciones = append(resp.Transacciones, dto.Transaccion{
			Timestamp:   d.Timestamp,
			Lugar:       d.Lugar,
			CodFabrica:  d.CodFabrica,
			CodVenta:    d.CodVenta,
			Descripcion: d.Descripcion,
			Precio:      d.Precio,
			Motivo:      d.Motivo,
			Tipo:        "devolucion",
		})
		resp.TotalDevoluciones++
		if n, ok := domain.ParseMonto(d.Precio); ok {
			resp.MontoTotal += n // el precio viene negado
			if n < 0 {
				resp.MontoDevoluciones += -n
			} else {
				resp.MontoDevoluciones += n
			}
		}
	}

	sort.SliceStable(resp.Transacciones, func(i, j int) bool {
		return resp.Transacciones[i].Timestamp > resp.Transacciones[j].Timestamp
	})
	resp.VentasNetas = resp.TotalVentas - resp.TotalDevoluciones
	return resp, nil
}
