package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/core/services"
	"github.com/Omerhrr/Booklet/internal/dto"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	purchaseRepo *MockPurchaseRepository
	sequenceRepo *MockSequenceRepository
	productRepo  *MockProductRepository
	partyRepo    *MockPartyRepository
	accountRepo  *MockAccountRepository
	postingRepo  *MockPostingRepository
	businessRepo *MockBusinessRepository
	txManager    *MockTxManager
	service      portssvc.PurchaseSvc
	ctx          context.Context

	savedPostings []domain.Posting
}

func (s *PurchaseServiceTestSuite) SetupTest() {
	s.purchaseRepo = new(MockPurchaseRepository)
	s.sequenceRepo = new(MockSequenceRepository)
	s.productRepo = new(MockProductRepository)
	s.partyRepo = new(MockPartyRepository)
	s.accountRepo = new(MockAccountRepository)
	s.postingRepo = new(MockPostingRepository)
	s.businessRepo = new(MockBusinessRepository)
	s.txManager = new(MockTxManager)
	s.savedPostings = nil

	ledgerSvc := services.NewLedgerService(s.accountRepo, s.postingRepo, s.sequenceRepo, s.txManager)
	s.service = services.NewPurchaseService(s.purchaseRepo, s.sequenceRepo, s.productRepo, s.partyRepo,
		s.accountRepo, s.businessRepo, ledgerSvc, s.txManager)
	s.ctx = context.Background()
}

func (s *PurchaseServiceTestSuite) stubSystemAccounts(accounts map[string]domain.Account) {
	byID := make(map[string]domain.Account, len(accounts))
	for name, account := range accounts {
		account.Name = name
		a := account
		s.accountRepo.On("FindAccountByName", s.ctx, "biz-1", name).Return(&a, nil).Maybe()
		byID[account.AccountID] = a
	}
	s.accountRepo.On("FindAccountsByIDs", s.ctx, "biz-1", mock.Anything).Return(byID, nil).Maybe()
}

func (s *PurchaseServiceTestSuite) capturePostings() {
	s.postingRepo.On("SavePostingsTx", s.ctx, mock.Anything, mock.AnythingOfType("[]domain.Posting")).
		Run(func(args mock.Arguments) {
			s.savedPostings = append(s.savedPostings, args.Get(2).([]domain.Posting)...)
		}).
		Return(nil)
}

func (s *PurchaseServiceTestSuite) postingFor(accountID string) domain.Posting {
	for _, p := range s.savedPostings {
		if p.AccountID == accountID {
			return p
		}
	}
	s.FailNowf("posting not found", "no posting for account %s", accountID)
	return domain.Posting{}
}

func (s *PurchaseServiceTestSuite) purchaseSystemAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		domain.AccountInventory:       {AccountID: "acc-inv", BusinessID: "biz-1", AccountType: domain.Asset},
		domain.AccountAccountsPayable: {AccountID: "acc-ap", BusinessID: "biz-1", AccountType: domain.Liability},
		domain.AccountInputVAT:        {AccountID: "acc-ivat", BusinessID: "biz-1", AccountType: domain.Asset},
		domain.AccountCash:            {AccountID: "acc-cash", BusinessID: "biz-1", AccountType: domain.Asset},
	}
}

func (s *PurchaseServiceTestSuite) TestCreateBill_Success() {
	s.businessRepo.On("FindBusinessByID", s.ctx, "biz-1").Return(&domain.Business{
		BusinessID: "biz-1", IsVATRegistered: true, VATRate: decimal.NewFromInt(10),
	}, nil)
	s.partyRepo.On("FindVendorByID", s.ctx, "biz-1", "vend-1").Return(&domain.Vendor{
		VendorID: "vend-1", BusinessID: "biz-1", BranchID: "branch-1",
	}, nil)
	s.stubSystemAccounts(s.purchaseSystemAccounts())
	expectTx(s.txManager, true)
	s.productRepo.On("LockProductsTx", s.ctx, mock.Anything, "branch-1", []string{"prod-1"}).
		Return(map[string]domain.Product{
			"prod-1": {ProductID: "prod-1", Name: "Widget", StockQuantity: decimal.NewFromInt(3)},
		}, nil)
	s.sequenceRepo.On("NextNumberTx", s.ctx, mock.Anything, "biz-1", domain.KindPurchaseBill).
		Return("PB-0001", nil)

	var savedBill domain.PurchaseBill
	s.purchaseRepo.On("SaveBillTx", s.ctx, mock.Anything, mock.AnythingOfType("domain.PurchaseBill")).
		Run(func(args mock.Arguments) { savedBill = args.Get(2).(domain.PurchaseBill) }).
		Return(nil)
	s.productRepo.On("AdjustStockTx", s.ctx, mock.Anything, "prod-1", decimal.NewFromInt(5)).Return(nil)
	s.capturePostings()

	bill, err := s.service.CreateBill(s.ctx, "biz-1", dto.CreateBillRequest{
		BranchID: "branch-1",
		VendorID: "vend-1",
		BillDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:  time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Items: []dto.InvoiceItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(5), Price: decimal.NewFromInt(40)},
		},
	})

	s.Require().NoError(err)
	s.Equal("PB-0001", bill.BillNumber)
	s.True(bill.SubTotal.Equal(decimal.NewFromInt(200)))
	s.True(bill.VATAmount.Equal(decimal.NewFromInt(20)))
	s.True(bill.TotalAmount.Equal(decimal.NewFromInt(220)))
	s.True(bill.PaidAmount.IsZero())
	s.Equal(domain.StatusUnpaid, bill.Status)
	s.Equal(bill.BillID, savedBill.BillID)
	s.Len(savedBill.Items, 1)

	s.Len(s.savedPostings, 3)
	s.True(s.postingFor("acc-inv").Debit.Equal(decimal.NewFromInt(200)))
	s.True(s.postingFor("acc-ivat").Debit.Equal(decimal.NewFromInt(20)))
	s.True(s.postingFor("acc-ap").Credit.Equal(decimal.NewFromInt(220)))
	for _, p := range s.savedPostings {
		s.Equal(domain.SourcePurchaseBill, p.Source.Kind)
		s.Equal(bill.BillID, p.Source.DocumentID)
	}
	s.txManager.AssertCalled(s.T(), "Commit", s.ctx, mock.Anything)
}

func (s *PurchaseServiceTestSuite) TestCreateBill_BranchMismatch() {
	s.businessRepo.On("FindBusinessByID", s.ctx, "biz-1").Return(&domain.Business{BusinessID: "biz-1"}, nil)
	s.partyRepo.On("FindVendorByID", s.ctx, "biz-1", "vend-1").Return(&domain.Vendor{
		VendorID: "vend-1", BusinessID: "biz-1", BranchID: "branch-2",
	}, nil)

	_, err := s.service.CreateBill(s.ctx, "biz-1", dto.CreateBillRequest{
		BranchID: "branch-1",
		VendorID: "vend-1",
		BillDate: time.Now(),
		Items: []dto.InvoiceItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(10)},
		},
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrBranchMismatch)
	s.txManager.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *PurchaseServiceTestSuite) TestCreateBill_UnknownProduct() {
	s.businessRepo.On("FindBusinessByID", s.ctx, "biz-1").Return(&domain.Business{BusinessID: "biz-1"}, nil)
	s.partyRepo.On("FindVendorByID", s.ctx, "biz-1", "vend-1").Return(&domain.Vendor{
		VendorID: "vend-1", BusinessID: "biz-1", BranchID: "branch-1",
	}, nil)
	s.stubSystemAccounts(s.purchaseSystemAccounts())
	expectTx(s.txManager, false)
	s.productRepo.On("LockProductsTx", s.ctx, mock.Anything, "branch-1", []string{"prod-ghost"}).
		Return(map[string]domain.Product{}, nil)

	_, err := s.service.CreateBill(s.ctx, "biz-1", dto.CreateBillRequest{
		BranchID: "branch-1",
		VendorID: "vend-1",
		BillDate: time.Now(),
		Items: []dto.InvoiceItemRequest{
			{ProductID: "prod-ghost", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(10)},
		},
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.purchaseRepo.AssertNotCalled(s.T(), "SaveBillTx", mock.Anything, mock.Anything, mock.Anything)
	s.txManager.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *PurchaseServiceTestSuite) TestRecordBillPayment_FullSettlement() {
	s.stubSystemAccounts(s.purchaseSystemAccounts())
	s.accountRepo.On("FindAccountByID", s.ctx, "biz-1", "acc-cash").Return(&domain.Account{
		AccountID: "acc-cash", BusinessID: "biz-1", Name: domain.AccountCash, AccountType: domain.Asset,
	}, nil)
	expectTx(s.txManager, true)
	s.purchaseRepo.On("FindBillForUpdateTx", s.ctx, mock.Anything, "biz-1", "bill-1").
		Return(&domain.PurchaseBill{
			BillID: "bill-1", BillNumber: "PB-0007", BusinessID: "biz-1", BranchID: "branch-1",
			TotalAmount: decimal.NewFromInt(220), PaidAmount: decimal.Zero, Status: domain.StatusUnpaid,
		}, nil)
	s.purchaseRepo.On("UpdateBillPaymentTx", s.ctx, mock.Anything, "bill-1",
		decimal.NewFromInt(220), decimal.Zero.Add(decimal.NewFromInt(220)), domain.StatusPaid).
		Return(nil)
	s.capturePostings()

	bill, err := s.service.RecordBillPayment(s.ctx, "biz-1", "bill-1", dto.RecordPaymentRequest{
		Amount:      decimal.NewFromInt(220),
		AccountID:   "acc-cash",
		PaymentDate: time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
	})

	s.Require().NoError(err)
	s.Equal(domain.StatusPaid, bill.Status)
	s.True(bill.PaidAmount.Equal(decimal.NewFromInt(220)))

	s.Len(s.savedPostings, 2)
	s.True(s.postingFor("acc-ap").Debit.Equal(decimal.NewFromInt(220)))
	s.True(s.postingFor("acc-cash").Credit.Equal(decimal.NewFromInt(220)))
}

func (s *PurchaseServiceTestSuite) TestRecordBillPayment_Overpayment() {
	s.stubSystemAccounts(s.purchaseSystemAccounts())
	s.accountRepo.On("FindAccountByID", s.ctx, "biz-1", "acc-cash").Return(&domain.Account{
		AccountID: "acc-cash", BusinessID: "biz-1", Name: domain.AccountCash, AccountType: domain.Asset,
	}, nil)
	expectTx(s.txManager, false)
	s.purchaseRepo.On("FindBillForUpdateTx", s.ctx, mock.Anything, "biz-1", "bill-1").
		Return(&domain.PurchaseBill{
			BillID: "bill-1", BusinessID: "biz-1", BranchID: "branch-1",
			TotalAmount: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(80),
		}, nil)

	_, err := s.service.RecordBillPayment(s.ctx, "biz-1", "bill-1", dto.RecordPaymentRequest{
		Amount:      decimal.NewFromInt(30),
		AccountID:   "acc-cash",
		PaymentDate: time.Now(),
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.purchaseRepo.AssertNotCalled(s.T(), "UpdateBillPaymentTx",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PurchaseServiceTestSuite) TestCreateDebitNote_Success() {
	s.stubSystemAccounts(s.purchaseSystemAccounts())
	expectTx(s.txManager, true)

	bill := domain.PurchaseBill{
		BillID: "bill-1", BillNumber: "PB-0003", BusinessID: "biz-1", BranchID: "branch-1",
		VendorID: "vend-1",
		SubTotal: decimal.NewFromInt(500), VATAmount: decimal.NewFromInt(50),
		TotalAmount: decimal.NewFromInt(550), PaidAmount: decimal.Zero, Status: domain.StatusUnpaid,
		Items: []domain.PurchaseBillItem{
			{ItemID: "item-1", BillID: "bill-1", ProductID: "prod-1",
				Quantity: decimal.NewFromInt(10), Price: decimal.NewFromInt(50)},
		},
	}
	s.purchaseRepo.On("FindBillForUpdateTx", s.ctx, mock.Anything, "biz-1", "bill-1").Return(&bill, nil)
	s.productRepo.On("LockProductsTx", s.ctx, mock.Anything, "branch-1", []string{"prod-1"}).
		Return(map[string]domain.Product{
			"prod-1": {ProductID: "prod-1", Name: "Widget", StockQuantity: decimal.NewFromInt(10)},
		}, nil)
	s.sequenceRepo.On("NextNumberTx", s.ctx, mock.Anything, "biz-1", domain.KindDebitNote).
		Return("DN-0001", nil)

	var savedNote domain.DebitNote
	s.purchaseRepo.On("SaveDebitNoteTx", s.ctx, mock.Anything, mock.AnythingOfType("domain.DebitNote")).
		Run(func(args mock.Arguments) { savedNote = args.Get(2).(domain.DebitNote) }).
		Return(nil)
	s.purchaseRepo.On("AddReturnedQuantityTx", s.ctx, mock.Anything, "item-1", decimal.NewFromInt(2)).
		Return(nil)
	s.productRepo.On("AdjustStockTx", s.ctx, mock.Anything, "prod-1", decimal.NewFromInt(-2)).Return(nil)

	var reducedTotal decimal.Decimal
	s.purchaseRepo.On("UpdateBillPaymentTx", s.ctx, mock.Anything, "bill-1",
		mock.Anything, decimal.Zero, domain.StatusUnpaid).
		Run(func(args mock.Arguments) { reducedTotal = args.Get(3).(decimal.Decimal) }).
		Return(nil)
	s.capturePostings()

	note, err := s.service.CreateDebitNote(s.ctx, "biz-1", dto.CreateDebitNoteRequest{
		BillID:   "bill-1",
		NoteDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Reason:   "damaged goods",
		Items:    []dto.ReturnItemRequest{{ItemID: "item-1", Quantity: decimal.NewFromInt(2)}},
	})

	s.Require().NoError(err)
	s.Equal("DN-0001", note.DebitNoteNumber)
	s.Equal("vend-1", note.VendorID)
	s.True(note.TotalAmount.Equal(decimal.NewFromInt(110)))
	s.Equal(note.DebitNoteID, savedNote.DebitNoteID)
	s.True(reducedTotal.Equal(decimal.NewFromInt(440)))

	s.Len(s.savedPostings, 3)
	s.True(s.postingFor("acc-ap").Debit.Equal(decimal.NewFromInt(110)))
	s.True(s.postingFor("acc-inv").Credit.Equal(decimal.NewFromInt(100)))
	s.True(s.postingFor("acc-ivat").Credit.Equal(decimal.NewFromInt(10)))
	for _, p := range s.savedPostings {
		s.Equal(domain.SourceDebitNote, p.Source.Kind)
		s.Equal(note.DebitNoteID, p.Source.DocumentID)
	}
}

func (s *PurchaseServiceTestSuite) TestCreateDebitNote_OverReturn() {
	s.stubSystemAccounts(s.purchaseSystemAccounts())
	expectTx(s.txManager, false)
	s.purchaseRepo.On("FindBillForUpdateTx", s.ctx, mock.Anything, "biz-1", "bill-1").
		Return(&domain.PurchaseBill{
			BillID: "bill-1", BusinessID: "biz-1", BranchID: "branch-1",
			SubTotal: decimal.NewFromInt(500), TotalAmount: decimal.NewFromInt(500),
			Items: []domain.PurchaseBillItem{
				{ItemID: "item-1", BillID: "bill-1", ProductID: "prod-1",
					Quantity: decimal.NewFromInt(10), ReturnedQuantity: decimal.NewFromInt(9),
					Price: decimal.NewFromInt(50)},
			},
		}, nil)

	_, err := s.service.CreateDebitNote(s.ctx, "biz-1", dto.CreateDebitNoteRequest{
		BillID:   "bill-1",
		NoteDate: time.Now(),
		Items:    []dto.ReturnItemRequest{{ItemID: "item-1", Quantity: decimal.NewFromInt(2)}},
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrOverReturn)
	s.purchaseRepo.AssertNotCalled(s.T(), "SaveDebitNoteTx", mock.Anything, mock.Anything, mock.Anything)
	s.txManager.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func TestPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
