package pgsql

import (
	"context"
	"fmt"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates a new repository for document number counters.
func newPgxSequenceRepository(pool *pgxpool.Pool) *PgxSequenceRepository {
	return &PgxSequenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextNumberTx increments the (business, kind) counter and returns the
// formatted document number. The upsert takes a row lock, so concurrent
// allocations for the same series serialise on it and no number is issued
// twice.
func (r *PgxSequenceRepository) NextNumberTx(ctx context.Context, tx pgx.Tx, businessID string, kind domain.DocumentKind) (string, error) {
	prefix := kind.Prefix()
	if prefix == "" {
		return "", apperrors.NewAppError(500, fmt.Sprintf("no number prefix for document kind %q", kind), nil)
	}

	var next int64
	query := `
		INSERT INTO document_sequences (business_id, kind, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (business_id, kind)
		DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value;
	`
	if err := tx.QueryRow(ctx, query, businessID, string(kind)).Scan(&next); err != nil {
		return "", apperrors.NewAppError(500, "failed to allocate document number", err)
	}
	return fmt.Sprintf("%s-%04d", prefix, next), nil
}
