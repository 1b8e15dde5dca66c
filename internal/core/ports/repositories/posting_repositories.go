package repositories

import (
	"context"
	"time"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PostingWriter defines write operations for ledger postings. Postings are
// only ever written as full groups inside a caller-held transaction.
type PostingWriter interface {
	// SavePostingsTx batch-inserts a validated posting group.
	SavePostingsTx(ctx context.Context, tx pgx.Tx, postings []domain.Posting) error
}

// PostingReader defines read operations for ledger postings.
type PostingReader interface {
	// FindPostingsByAccount retrieves an account's postings in a date range,
	// ordered by transaction date then insertion order.
	FindPostingsByAccount(ctx context.Context, businessID, accountID string, from, to time.Time) ([]domain.Posting, error)

	// FindPostingsBySource retrieves the posting group written for a document.
	FindPostingsBySource(ctx context.Context, businessID string, source domain.SourceRef) ([]domain.Posting, error)

	// SumAccountBefore returns the account's net (debit - credit) over postings
	// dated strictly before the given date.
	SumAccountBefore(ctx context.Context, businessID, accountID string, before time.Time) (decimal.Decimal, error)
}

// SequenceRepository allocates gapless per-business document numbers. The
// counter row lock serialises concurrent allocations for one kind.
type SequenceRepository interface {
	// NextNumberTx increments the counter for (businessID, kind) and returns
	// the formatted document number, e.g. INV-0042.
	NextNumberTx(ctx context.Context, tx pgx.Tx, businessID string, kind domain.DocumentKind) (string, error)
}

// PostingRepositoryFacade combines posting reader and writer interfaces
type PostingRepositoryFacade interface {
	PostingReader
	PostingWriter
}

// PostingRepositoryWithTx extends PostingRepositoryFacade with transaction capabilities
type PostingRepositoryWithTx interface {
	PostingRepositoryFacade
	TransactionManager
}
