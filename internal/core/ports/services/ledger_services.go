package services

import (
	"context"
	"time"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/Omerhrr/Booklet/internal/dto"
	"github.com/jackc/pgx/v5"
)

// LedgerSvc is the posting engine. Every balanced posting group in the system
// flows through PostGroupTx; workflow services call it inside their own
// transactions.
type LedgerSvc interface {
	// PostGroupTx validates a draft posting group and writes it inside the
	// caller's transaction. Validation failures leave the transaction usable
	// for rollback by the caller.
	PostGroupTx(ctx context.Context, tx pgx.Tx, businessID, branchID string, date time.Time, lines []domain.DraftLine) ([]domain.Posting, error)

	// CreateJournalVoucher numbers and posts a manual journal entry.
	CreateJournalVoucher(ctx context.Context, businessID string, req dto.CreateJournalVoucherRequest) ([]domain.Posting, error)

	// GetPostingsBySource retrieves the posting group written for a document.
	GetPostingsBySource(ctx context.Context, businessID string, source domain.SourceRef) ([]domain.Posting, error)
}
