package csvstore

import (
	"strings"

	"github.com/boadigital/bazar-ops/internal/domain/repository"
)

var commentFields = []string{"timestamp", "comment"}

var _ repository.CommentRepository = (*CommentRepo)(nil)

// CommentRepo implementa CommentRepository sobre archivos por día en el
// directorio de comentarios: commentsventa_<fecha>.csv para eventos y
// commentsbazar_<fecha>.csv para puntos de venta.
type CommentRepo struct {
	store *Store
}

// NewCommentRepository construye el adaptador sobre un Store con raíz en el
// directorio de comentarios.
func NewCommentRepository(store *Store) *CommentRepo {
	return &CommentRepo{store: store}
}

// AppendEvento agrega un comentario de eventos al archivo del día.
func (r *CommentRepo) AppendEvento(timestamp, comentario string) error {
	return r.append("commentsventa_", timestamp, comentario)
}

// AppendPunto agrega un comentario de puntos de venta al archivo del día.
func (r *CommentRepo) AppendPunto(timestamp, comentario string) error {
	return r.append("commentsbazar_", timestamp, comentario)
}

func (r *CommentRepo) append(prefix, timestamp, comentario string) error {
	fecha := timestamp
	if i := strings.IndexByte(timestamp, ' '); i > 0 {
		fecha = timestamp[:i]
	}
	return r.store.Append(prefix+fecha+".csv", Record{
		"timestamp": timestamp,
		"comment":   comentario,
	}, commentFields)
}
