package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/core/services"
	"github.com/Omerhrr/Booklet/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	accountRepo  *MockAccountRepository
	postingRepo  *MockPostingRepository
	sequenceRepo *MockSequenceRepository
	txManager    *MockTxManager
	service      portssvc.LedgerSvc
	ctx          context.Context
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.accountRepo = new(MockAccountRepository)
	s.postingRepo = new(MockPostingRepository)
	s.sequenceRepo = new(MockSequenceRepository)
	s.txManager = new(MockTxManager)
	s.service = services.NewLedgerService(s.accountRepo, s.postingRepo, s.sequenceRepo, s.txManager)
	s.ctx = context.Background()
}

func (s *LedgerServiceTestSuite) accounts(types map[string]domain.AccountType) map[string]domain.Account {
	out := make(map[string]domain.Account, len(types))
	for id, t := range types {
		out[id] = domain.Account{AccountID: id, BusinessID: "biz-1", Name: id, AccountType: t, IsActive: true}
	}
	return out
}

func (s *LedgerServiceTestSuite) TestPostGroupTx_Success() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	source := domain.SourceRef{Kind: domain.SourceJournalVoucher, DocumentID: "doc-1"}
	lines := []domain.DraftLine{
		{AccountID: "acc-cash", Description: "Cash received", Debit: decimal.NewFromInt(250), Source: source},
		{AccountID: "acc-revenue", Description: "Cash received", Credit: decimal.NewFromInt(250), Source: source},
	}

	s.accountRepo.On("FindAccountsByIDs", s.ctx, "biz-1", []string{"acc-cash", "acc-revenue"}).
		Return(s.accounts(map[string]domain.AccountType{"acc-cash": domain.Asset, "acc-revenue": domain.Revenue}), nil)

	var saved []domain.Posting
	s.postingRepo.On("SavePostingsTx", s.ctx, mock.Anything, mock.AnythingOfType("[]domain.Posting")).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).([]domain.Posting)
		}).
		Return(nil)

	postings, err := s.service.PostGroupTx(s.ctx, nil, "biz-1", "branch-1", date, lines)

	s.NoError(err)
	s.Len(postings, 2)
	s.Equal(saved, postings)
	for _, p := range postings {
		s.NotEmpty(p.PostingID)
		s.Equal("biz-1", p.BusinessID)
		s.Equal("branch-1", p.BranchID)
		s.Equal(date, p.TransactionDate)
		s.Equal(source, p.Source)
	}
	s.True(postings[0].Debit.Equal(decimal.NewFromInt(250)))
	s.True(postings[1].Credit.Equal(decimal.NewFromInt(250)))
	s.accountRepo.AssertExpectations(s.T())
	s.postingRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestPostGroupTx_WithinTolerance() {
	source := domain.SourceRef{Kind: domain.SourceJournalVoucher, DocumentID: "doc-2"}
	lines := []domain.DraftLine{
		{AccountID: "acc-cash", Debit: decimal.RequireFromString("100.005"), Source: source},
		{AccountID: "acc-revenue", Credit: decimal.NewFromInt(100), Source: source},
	}

	s.accountRepo.On("FindAccountsByIDs", s.ctx, "biz-1", []string{"acc-cash", "acc-revenue"}).
		Return(s.accounts(map[string]domain.AccountType{"acc-cash": domain.Asset, "acc-revenue": domain.Revenue}), nil)
	s.postingRepo.On("SavePostingsTx", s.ctx, mock.Anything, mock.Anything).Return(nil)

	_, err := s.service.PostGroupTx(s.ctx, nil, "biz-1", "branch-1", time.Now(), lines)

	s.NoError(err)
}

func (s *LedgerServiceTestSuite) TestPostGroupTx_Unbalanced() {
	lines := []domain.DraftLine{
		{AccountID: "acc-cash", Debit: decimal.NewFromInt(100)},
		{AccountID: "acc-revenue", Credit: decimal.NewFromInt(90)},
	}

	_, err := s.service.PostGroupTx(s.ctx, nil, "biz-1", "branch-1", time.Now(), lines)

	s.ErrorIs(err, apperrors.ErrUnbalancedEntry)
	s.postingRepo.AssertNotCalled(s.T(), "SavePostingsTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestPostGroupTx_SingleLine() {
	lines := []domain.DraftLine{
		{AccountID: "acc-cash", Debit: decimal.NewFromInt(100)},
	}

	_, err := s.service.PostGroupTx(s.ctx, nil, "biz-1", "branch-1", time.Now(), lines)

	s.ErrorIs(err, apperrors.ErrEmptyEntry)
}

func (s *LedgerServiceTestSuite) TestPostGroupTx_NegativeAmount() {
	lines := []domain.DraftLine{
		{AccountID: "acc-cash", Debit: decimal.NewFromInt(-100)},
		{AccountID: "acc-revenue", Credit: decimal.NewFromInt(-100)},
	}

	_, err := s.service.PostGroupTx(s.ctx, nil, "biz-1", "branch-1", time.Now(), lines)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestPostGroupTx_UnknownAccount() {
	lines := []domain.DraftLine{
		{AccountID: "acc-cash", Debit: decimal.NewFromInt(100)},
		{AccountID: "acc-ghost", Credit: decimal.NewFromInt(100)},
	}

	s.accountRepo.On("FindAccountsByIDs", s.ctx, "biz-1", []string{"acc-cash", "acc-ghost"}).
		Return(s.accounts(map[string]domain.AccountType{"acc-cash": domain.Asset}), nil)

	_, err := s.service.PostGroupTx(s.ctx, nil, "biz-1", "branch-1", time.Now(), lines)

	s.ErrorIs(err, apperrors.ErrUnknownAccount)
	s.Contains(err.Error(), "acc-ghost")
	s.postingRepo.AssertNotCalled(s.T(), "SavePostingsTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestCreateJournalVoucher_Success() {
	expectTx(s.txManager, true)
	s.sequenceRepo.On("NextNumberTx", s.ctx, mock.Anything, "biz-1", domain.KindJournal).Return("JV-0001", nil)
	s.accountRepo.On("FindAccountsByIDs", s.ctx, "biz-1", []string{"acc-cash", "acc-equity"}).
		Return(s.accounts(map[string]domain.AccountType{"acc-cash": domain.Asset, "acc-equity": domain.Equity}), nil)
	s.postingRepo.On("SavePostingsTx", s.ctx, mock.Anything, mock.Anything).Return(nil)

	req := dto.CreateJournalVoucherRequest{
		BranchID:    "branch-1",
		Date:        time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Description: "Owner capital injection",
		Lines: []dto.JournalLineRequest{
			{AccountID: "acc-cash", Debit: decimal.NewFromInt(5000)},
			{AccountID: "acc-equity", Credit: decimal.NewFromInt(5000)},
		},
	}

	postings, err := s.service.CreateJournalVoucher(s.ctx, "biz-1", req)

	s.NoError(err)
	s.Len(postings, 2)
	s.Equal(domain.SourceJournalVoucher, postings[0].Source.Kind)
	s.NotEmpty(postings[0].Source.DocumentID)
	s.Equal(postings[0].Source, postings[1].Source)
	s.Equal("Owner capital injection", postings[0].Description)
	s.txManager.AssertCalled(s.T(), "Commit", s.ctx, mock.Anything)
	s.sequenceRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestCreateJournalVoucher_UnbalancedRollsBack() {
	expectTx(s.txManager, false)
	s.sequenceRepo.On("NextNumberTx", s.ctx, mock.Anything, "biz-1", domain.KindJournal).Return("JV-0002", nil)

	req := dto.CreateJournalVoucherRequest{
		BranchID: "branch-1",
		Date:     time.Now(),
		Lines: []dto.JournalLineRequest{
			{AccountID: "acc-cash", Debit: decimal.NewFromInt(100)},
			{AccountID: "acc-equity", Credit: decimal.NewFromInt(50)},
		},
	}

	_, err := s.service.CreateJournalVoucher(s.ctx, "biz-1", req)

	s.ErrorIs(err, apperrors.ErrUnbalancedEntry)
	s.txManager.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
	s.txManager.AssertCalled(s.T(), "Rollback", s.ctx, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestGetPostingsBySource_ZeroRef() {
	_, err := s.service.GetPostingsBySource(s.ctx, "biz-1", domain.SourceRef{})

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestGetPostingsBySource_Success() {
	source := domain.SourceRef{Kind: domain.SourceSalesInvoice, DocumentID: "inv-1"}
	expected := []domain.Posting{{PostingID: "p-1", Source: source}}
	s.postingRepo.On("FindPostingsBySource", s.ctx, "biz-1", source).Return(expected, nil)

	postings, err := s.service.GetPostingsBySource(s.ctx, "biz-1", source)

	s.NoError(err)
	s.Equal(expected, postings)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func TestLedgerServicePostingIDsAreUnique(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	postingRepo := new(MockPostingRepository)
	service := services.NewLedgerService(accountRepo, postingRepo, new(MockSequenceRepository), new(MockTxManager))

	source := domain.SourceRef{Kind: domain.SourceJournalVoucher, DocumentID: "doc-3"}
	lines := []domain.DraftLine{
		{AccountID: "a", Debit: decimal.NewFromInt(10), Source: source},
		{AccountID: "b", Credit: decimal.NewFromInt(10), Source: source},
	}
	accountRepo.On("FindAccountsByIDs", mock.Anything, "biz-1", mock.Anything).
		Return(map[string]domain.Account{
			"a": {AccountID: "a", AccountType: domain.Asset},
			"b": {AccountID: "b", AccountType: domain.Revenue},
		}, nil)
	postingRepo.On("SavePostingsTx", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	postings, err := service.PostGroupTx(context.Background(), nil, "biz-1", "branch-1", time.Now(), lines)

	assert.NoError(t, err)
	assert.NotEqual(t, postings[0].PostingID, postings[1].PostingID)
}
