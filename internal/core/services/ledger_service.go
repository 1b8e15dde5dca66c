package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/dto"
	"github.com/Omerhrr/Booklet/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
)

// ledgerService is the posting engine. Every balanced posting group flows
// through PostGroupTx inside a caller-held transaction.
type ledgerService struct {
	BaseService
	accountRepo  portsrepo.AccountReader
	postingRepo  portsrepo.PostingRepositoryFacade
	sequenceRepo portsrepo.SequenceRepository
	txManager    portsrepo.TransactionManager
}

// NewLedgerService creates a new LedgerSvc.
func NewLedgerService(accountRepo portsrepo.AccountReader, postingRepo portsrepo.PostingRepositoryFacade, sequenceRepo portsrepo.SequenceRepository, txManager portsrepo.TransactionManager) portssvc.LedgerSvc {
	return &ledgerService{
		accountRepo:  accountRepo,
		postingRepo:  postingRepo,
		sequenceRepo: sequenceRepo,
		txManager:    txManager,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// PostGroupTx validates a draft posting group and writes it inside the
// caller's transaction. The group must balance within tolerance and every
// line must reference an existing account of the business.
func (s *ledgerService) PostGroupTx(ctx context.Context, tx pgx.Tx, businessID, branchID string, date time.Time, lines []domain.DraftLine) ([]domain.Posting, error) {
	if err := accounting.ValidateGroupBalance(lines); err != nil {
		return nil, err
	}

	accountIDs := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		accountIDs = append(accountIDs, line.AccountID)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, businessID, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "failed to fetch accounts for posting group", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to fetch accounts for posting group: %w", err)
	}
	for _, id := range accountIDs {
		account, ok := accounts[id]
		if !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrUnknownAccount, id)
		}
		if !account.AccountType.IsValid() {
			return nil, fmt.Errorf("%w: account %s has invalid type %s", apperrors.ErrValidation, id, account.AccountType)
		}
	}

	now := time.Now()
	postings := make([]domain.Posting, len(lines))
	for i, line := range lines {
		postings[i] = domain.Posting{
			PostingID:       uuid.NewString(),
			BusinessID:      businessID,
			BranchID:        branchID,
			AccountID:       line.AccountID,
			TransactionDate: date,
			Description:     line.Description,
			Debit:           line.Debit,
			Credit:          line.Credit,
			Source:          line.Source,
			CreatedAt:       now,
		}
	}

	if err := s.postingRepo.SavePostingsTx(ctx, tx, postings); err != nil {
		s.LogError(ctx, err, "failed to save posting group", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to save posting group: %w", err)
	}

	s.LogDebug(ctx, "posting group written",
		slog.String("business_id", businessID),
		slog.Int("lines", len(postings)))
	return postings, nil
}

// CreateJournalVoucher numbers and posts a manual journal entry in its own
// transaction.
func (s *ledgerService) CreateJournalVoucher(ctx context.Context, businessID string, req dto.CreateJournalVoucherRequest) ([]domain.Posting, error) {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	number, err := s.sequenceRepo.NextNumberTx(ctx, tx, businessID, domain.KindJournal)
	if err != nil {
		s.LogError(ctx, err, "failed to allocate journal number", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to allocate journal number: %w", err)
	}

	source := domain.SourceRef{Kind: domain.SourceJournalVoucher, DocumentID: uuid.NewString()}
	lines := make([]domain.DraftLine, len(req.Lines))
	for i, lr := range req.Lines {
		description := lr.Description
		if description == "" {
			description = req.Description
		}
		if description == "" {
			description = fmt.Sprintf("Journal voucher %s", number)
		}
		lines[i] = domain.DraftLine{
			AccountID:   lr.AccountID,
			Description: description,
			Debit:       lr.Debit,
			Credit:      lr.Credit,
			Source:      source,
		}
	}

	postings, err := s.PostGroupTx(ctx, tx, businessID, req.BranchID, req.Date, lines)
	if err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "journal voucher created",
		slog.String("business_id", businessID),
		slog.String("number", number))
	return postings, nil
}

// GetPostingsBySource retrieves the posting group written for a document.
func (s *ledgerService) GetPostingsBySource(ctx context.Context, businessID string, source domain.SourceRef) ([]domain.Posting, error) {
	if source.IsZero() {
		return nil, fmt.Errorf("%w: source reference is required", apperrors.ErrValidation)
	}
	return s.postingRepo.FindPostingsBySource(ctx, businessID, source)
}
