package usecase

import (
	"strings"
	"unicode"

	"github.com/boadigital/bazar-ops/internal/application/dto"
	"github.com/boadigital/bazar-ops/internal/domain"
	"github.com/boadigital/bazar-ops/internal/domain/repository"
)

// CatalogConfig formato de los códigos de producto aceptados.
type CatalogConfig struct {
	SalesPrefix string // ej. "BI"
	SalesLength int    // ej. 8 (BINNNNCC)
}

// CatalogUseCase búsqueda de productos en el catálogo.
// El catálogo se relee del disco en cada consulta (sin caché).
type CatalogUseCase struct {
	repo repository.CatalogRepository
	cfg  CatalogConfig
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository, cfg CatalogConfig) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, cfg: cfg}
}

// Buscar busca un producto por código de fábrica o de venta.
//
// Atajo de digitación: un código de 5 caracteres que no empieza con el
// prefijo de venta se reintenta como <prefijo>6 + código contra cod_venta
// (los vendedores suelen teclear solo los últimos 5 del código de venta).
// Si el atajo no resuelve, se valida el formato y se busca normal.
func (uc *CatalogUseCase) Buscar(codigo string) (*dto.ProductoResponse, error) {
	codigo = strings.ToUpper(strings.TrimSpace(codigo))

	if len(codigo) == 5 && !strings.HasPrefix(codigo, uc.cfg.SalesPrefix) {
		potencial := uc.cfg.SalesPrefix + "6" + codigo
		for _, p := range uc.repo.All() {
			if p.CodVenta == potencial {
				return &dto.ProductoResponse{
					Producto: p,
					Imagen:   uc.repo.PhotoURL(p.CodFabrica),
				}, nil
			}
		}
	}

	if !uc.esCodigoFabrica(codigo) && !uc.esCodigoVenta(codigo) {
		return nil, domain.ErrInvalidInput
	}

	p, err := uc.repo.FindByCode(codigo)
	if err != nil {
		return nil, err
	}
	return &dto.ProductoResponse{
		Producto: *p,
		Imagen:   uc.repo.PhotoURL(p.CodFabrica),
	}, nil
}

// esCodigoFabrica: 3 a 8 caracteres alfanuméricos.
func (uc *CatalogUseCase) esCodigoFabrica(codigo string) bool {
	if len(codigo) < 3 || len(codigo) > 8 {
		return false
	}
	for _, c := range codigo {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}

// esCodigoVenta: prefijo + 4 dígitos + 2 letras, largo total fijo.
func (uc *CatalogUseCase) esCodigoVenta(codigo string) bool {
	if !strings.HasPrefix(codigo, uc.cfg.SalesPrefix) || len(codigo) != uc.cfg.SalesLength {
		return false
	}
	resto := codigo[len(uc.cfg.SalesPrefix):]
	if len(resto) < 6 {
		return false
	}
	for _, c := range resto[:4] {
		if c < '0' || c > '9' {
			return false
		}
	}
	for _, c := range resto[4:] {
		if !unicode.IsLetter(c) {
			return false
		}
	}
	return true
}
