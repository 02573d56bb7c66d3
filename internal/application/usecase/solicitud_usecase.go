package usecase

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/boadigital/bazar-ops/internal/application/dto"
	"github.com/boadigital/bazar-ops/internal/domain"
	"github.com/boadigital/bazar-ops/internal/domain/entity"
	"github.com/boadigital/bazar-ops/internal/domain/repository"
)

// SolicitudUseCase cola simple de tickets sobre el archivo solicitudes.csv.
type SolicitudUseCase struct {
	repo       repository.SolicitudRepository
	directorio repository.DirectoryRepository
	now        func() time.Time
}

// NewSolicitudUseCase construye el caso de uso.
func NewSolicitudUseCase(repo repository.SolicitudRepository, directorio repository.DirectoryRepository) *SolicitudUseCase {
	return &SolicitudUseCase{repo: repo, directorio: directorio, now: time.Now}
}

// Crear valida según el tipo y agrega el ticket en estado Pendiente.
// Ninguna validación fallida llega a tocar el archivo.
//
// El id es timestamp compacto más un sufijo aleatorio de dos dígitos; la
// probabilidad de colisión en el mismo segundo es distinta de cero y se
// acepta para esta funcionalidad.
func (uc *SolicitudUseCase) Crear(in dto.CreateSolicitudRequest) (*dto.CreateSolicitudResponse, error) {
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.TipoDevolucion
	}
	if tipo == entity.TipoDevolucion {
		if in.Cliente == "" || in.Monto == "" {
			return nil, fmt.Errorf("%w: faltan datos de devolución", domain.ErrInvalidInput)
		}
	} else if in.Motivo == "" {
		return nil, fmt.Errorf("%w: debe detallar la solicitud", domain.ErrInvalidInput)
	}

	now := uc.now()
	id := now.Format("20060102150405") + fmt.Sprintf("%02d", 10+rand.Intn(90))

	s := entity.Solicitud{
		ID:                id,
		Timestamp:         now.Format(timestampLayout),
		SolicitanteNombre: in.Solicitante,
		Tipo:              tipo,
		ClienteNombre:     in.Cliente,
		Banco:             in.Banco,
		RUT:               in.RUT,
		Email:             in.Email,
		Monto:             montoODefault(in.Monto),
		Motivo:            in.Motivo,
		Estado:            entity.EstadoPendiente,
		ComentarioCierre:  "",
	}
	if err := uc.repo.Append(s); err != nil {
		return nil, err
	}
	return &dto.CreateSolicitudResponse{ID: id}, nil
}

// Listar devuelve todas las solicitudes ordenadas por timestamp descendente.
func (uc *SolicitudUseCase) Listar() *dto.SolicitudesResponse {
	solicitudes := uc.repo.All()
	sort.SliceStable(solicitudes, func(i, j int) bool {
		return solicitudes[i].Timestamp > solicitudes[j].Timestamp
	})
	return &dto.SolicitudesResponse{Solicitudes: solicitudes}
}

// Cerrar marca la solicitud como cerrada con el comentario dado y reescribe
// el archivo completo. El comentario es obligatorio; sin él la solicitud
// permanece Pendiente y no se escribe nada.
func (uc *SolicitudUseCase) Cerrar(id, comentario string) error {
	comentario = strings.TrimSpace(comentario)
	if comentario == "" {
		return fmt.Errorf("%w: comentario obligatorio", domain.ErrInvalidInput)
	}

	solicitudes := uc.repo.All()
	encontrada := false
	for i := range solicitudes {
		if solicitudes[i].ID == id {
			solicitudes[i].Estado = entity.EstadoCerrado
			solicitudes[i].ComentarioCierre = comentario
			encontrada = true
			break
		}
	}
	if !encontrada {
		return domain.ErrNotFound
	}
	return uc.repo.SaveAll(solicitudes)
}

// Pendientes cuenta las solicitudes en estado Pendiente (badge de portada).
func (uc *SolicitudUseCase) Pendientes() *dto.PendientesResponse {
	count := 0
	for _, s := range uc.repo.All() {
		if s.Estado == entity.EstadoPendiente {
			count++
		}
	}
	return &dto.PendientesResponse{Pendientes: count}
}

// Login identifica al usuario por nombre contra telefonos.csv, sin
// distinguir mayúsculas. allow == "A" marca administrador.
func (uc *SolicitudUseCase) Login(identificador string) (*dto.SolicitudLoginResponse, error) {
	buscado := strings.ToLower(strings.TrimSpace(identificador))
	if buscado == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, t := range uc.directorio.Telefonos() {
		if strings.ToLower(strings.TrimSpace(t.Get("nombre"))) == buscado {
			return &dto.SolicitudLoginResponse{
				Nombre:  t.Get("nombre"),
				EsAdmin: strings.TrimSpace(t.Get("allow")) == "A",
			}, nil
		}
	}
	return nil, domain.ErrNotFound
}

func montoODefault(monto string) string {
	if monto == "" {
		return "0"
	}
	return monto
}
