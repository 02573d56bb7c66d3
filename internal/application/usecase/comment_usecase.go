package usecase

import (
	"strings"
	"time"

	"github.com/boadigital/bazar-ops/internal/application/dto"
	"github.com/boadigital/bazar-ops/internal/domain"
	"github.com/boadigital/bazar-ops/internal/domain/repository"
)

// CommentUseCase captura de comentarios libres de eventos y puntos de venta.
type CommentUseCase struct {
	repo repository.CommentRepository
	now  func() time.Time
}

// NewCommentUseCase construye el caso de uso.
func NewCommentUseCase(repo repository.CommentRepository) *CommentUseCase {
	return &CommentUseCase{repo: repo, now: time.Now}
}

// GuardarEvento guarda un comentario de la sección de eventos/bazares.
func (uc *CommentUseCase) GuardarEvento(comentario string) (*dto.MessageResponse, error) {
	return uc.guardar(comentario, uc.repo.AppendEvento)
}

// GuardarPunto guarda un comentario de la sección de puntos de venta.
func (uc *CommentUseCase) GuardarPunto(comentario string) (*dto.MessageResponse, error) {
	return uc.guardar(comentario, uc.repo.AppendPunto)
}

func (uc *CommentUseCase) guardar(comentario string, appendFn func(string, string) error) (*dto.MessageResponse, error) {
	comentario = strings.TrimSpace(comentario)
	if comentario == "" {
		return nil, domain.ErrComentarioVacio
	}
	if err := appendFn(uc.now().Format(timestampLayout), comentario); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Comentario guardado"}, nil
}
