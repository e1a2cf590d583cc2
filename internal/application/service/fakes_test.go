package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// docStore is an in-memory DocumentRepository and DocumentLineRepository
type docStore struct {
	documents map[uuid.UUID]*entity.Document
	lines     map[uuid.UUID][]entity.DocumentLine
}

func newDocStore() *docStore {
	return &docStore{
		documents: make(map[uuid.UUID]*entity.Document),
		lines:     make(map[uuid.UUID][]entity.DocumentLine),
	}
}

func (s *docStore) Create(_ context.Context, document *entity.Document) error {
	if document.ID == uuid.Nil {
		document.ID = uuid.New()
	}
	clone := *document
	s.documents[document.ID] = &clone
	return nil
}

func (s *docStore) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	document, ok := s.documents[id]
	if !ok {
		return nil, nil
	}
	clone := *document
	return &clone, nil
}

func (s *docStore) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	document, err := s.GetByID(ctx, id)
	if err != nil || document == nil {
		return document, err
	}
	document.Lines = append([]entity.DocumentLine(nil), s.lines[id]...)
	return document, nil
}

func (s *docStore) Update(_ context.Context, document *entity.Document) error {
	clone := *document
	s.documents[document.ID] = &clone
	return nil
}

func (s *docStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.documents, id)
	return nil
}

func (s *docStore) List(_ context.Context, userID uuid.UUID, kind enum.DocumentKind, _ *repository.DocumentFilterParams) ([]entity.Document, int64, error) {
	var out []entity.Document
	for _, document := range s.documents {
		if document.UserID == userID && document.Kind == kind {
			out = append(out, *document)
		}
	}
	return out, int64(len(out)), nil
}

func (s *docStore) UpdateStatus(_ context.Context, id uuid.UUID, status enum.DocumentStatus) error {
	if document, ok := s.documents[id]; ok {
		document.Status = status
	}
	return nil
}

func (s *docStore) NextSequenceNumber(_ context.Context, userID uuid.UUID, kind enum.DocumentKind) (int, error) {
	count := 0
	for _, document := range s.documents {
		if document.UserID == userID && document.Kind == kind {
			count++
		}
	}
	return count + 1, nil
}

func (s *docStore) CreateBatch(_ context.Context, lines []entity.DocumentLine) error {
	for _, line := range lines {
		if line.ID == uuid.Nil {
			line.ID = uuid.New()
		}
		s.lines[line.DocumentID] = append(s.lines[line.DocumentID], line)
	}
	return nil
}

func (s *docStore) GetByDocumentID(_ context.Context, documentID uuid.UUID) ([]entity.DocumentLine, error) {
	return append([]entity.DocumentLine(nil), s.lines[documentID]...), nil
}

func (s *docStore) DeleteByDocumentID(_ context.Context, documentID uuid.UUID) error {
	delete(s.lines, documentID)
	return nil
}

// fakeItemRepo is an in-memory ItemRepository
type fakeItemRepo struct {
	items map[uuid.UUID]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*entity.Item)}
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *item
	return &clone, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.Item) error {
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) List(_ context.Context, userID uuid.UUID, _ *repository.ItemFilterParams) ([]entity.Item, int64, error) {
	var out []entity.Item
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeItemRepo) ListLowStock(_ context.Context, userID uuid.UUID) ([]entity.Item, error) {
	var out []entity.Item
	for _, item := range r.items {
		if item.UserID == userID && item.LowStockThreshold > 0 && item.StockQuantity <= item.LowStockThreshold {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) AdjustStock(_ context.Context, id uuid.UUID, delta float64) error {
	if item, ok := r.items[id]; ok {
		item.StockQuantity += delta
	}
	return nil
}

// fakeCustomerRepo is an in-memory CustomerRepository
type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	clone := *customer
	r.customers[customer.ID] = &clone
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	clone := *customer
	return &clone, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	clone := *customer
	r.customers[customer.ID] = &clone
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, userID uuid.UUID, _ *repository.PartyFilterParams) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, customer := range r.customers {
		if customer.UserID == userID {
			out = append(out, *customer)
		}
	}
	return out, int64(len(out)), nil
}

// fakeVendorRepo is an in-memory VendorRepository
type fakeVendorRepo struct {
	vendors map[uuid.UUID]*entity.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[uuid.UUID]*entity.Vendor)}
}

func (r *fakeVendorRepo) Create(_ context.Context, vendor *entity.Vendor) error {
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	clone := *vendor
	r.vendors[vendor.ID] = &clone
	return nil
}

func (r *fakeVendorRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, ok := r.vendors[id]
	if !ok {
		return nil, nil
	}
	clone := *vendor
	return &clone, nil
}

func (r *fakeVendorRepo) Update(_ context.Context, vendor *entity.Vendor) error {
	clone := *vendor
	r.vendors[vendor.ID] = &clone
	return nil
}

func (r *fakeVendorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.vendors, id)
	return nil
}

func (r *fakeVendorRepo) List(_ context.Context, userID uuid.UUID, _ *repository.PartyFilterParams) ([]entity.Vendor, int64, error) {
	var out []entity.Vendor
	for _, vendor := range r.vendors {
		if vendor.UserID == userID {
			out = append(out, *vendor)
		}
	}
	return out, int64(len(out)), nil
}

// fakeCompanyRepo is an in-memory CompanyRepository
type fakeCompanyRepo struct {
	companies map[uuid.UUID]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[uuid.UUID]*entity.Company)}
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	clone := *company
	r.companies[company.ID] = &clone
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Company, error) {
	company, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	clone := *company
	return &clone, nil
}

func (r *fakeCompanyRepo) GetDefault(_ context.Context, userID uuid.UUID) (*entity.Company, error) {
	for _, company := range r.companies {
		if company.UserID == userID && company.IsDefault {
			clone := *company
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *entity.Company) error {
	clone := *company
	r.companies[company.ID] = &clone
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.companies, id)
	return nil
}

func (r *fakeCompanyRepo) List(_ context.Context, userID uuid.UUID, _ *pagination.Params, _ string) ([]entity.Company, int64, error) {
	var out []entity.Company
	for _, company := range r.companies {
		if company.UserID == userID {
			out = append(out, *company)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeCompanyRepo) SetDefault(_ context.Context, userID, id uuid.UUID) error {
	for _, company := range r.companies {
		if company.UserID == userID {
			company.IsDefault = company.ID == id
		}
	}
	return nil
}

// fakeBankAccountRepo is an in-memory BankAccountRepository
type fakeBankAccountRepo struct {
	accounts map[uuid.UUID]*entity.BankAccount
}

func newFakeBankAccountRepo() *fakeBankAccountRepo {
	return &fakeBankAccountRepo{accounts: make(map[uuid.UUID]*entity.BankAccount)}
}

func (r *fakeBankAccountRepo) Create(_ context.Context, account *entity.BankAccount) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *fakeBankAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.BankAccount, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	clone := *account
	return &clone, nil
}

func (r *fakeBankAccountRepo) Update(_ context.Context, account *entity.BankAccount) error {
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *fakeBankAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.accounts, id)
	return nil
}

func (r *fakeBankAccountRepo) List(_ context.Context, userID uuid.UUID, _ *pagination.Params) ([]entity.BankAccount, int64, error) {
	var out []entity.BankAccount
	for _, account := range r.accounts {
		if account.UserID == userID {
			out = append(out, *account)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeBankAccountRepo) SetDefault(_ context.Context, userID, id uuid.UUID) error {
	for _, account := range r.accounts {
		if account.UserID == userID {
			account.IsDefault = account.ID == id
		}
	}
	return nil
}

// fakePaymentRepo is an in-memory PaymentRepository
type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	clone := *payment
	r.payments[payment.ID] = &clone
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	clone := *payment
	return &clone, nil
}

func (r *fakePaymentRepo) Update(_ context.Context, payment *entity.Payment) error {
	clone := *payment
	r.payments[payment.ID] = &clone
	return nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.payments, id)
	return nil
}

func (r *fakePaymentRepo) List(_ context.Context, userID uuid.UUID, _ *repository.PaymentFilterParams) ([]entity.Payment, int64, error) {
	var out []entity.Payment
	for _, payment := range r.payments {
		if payment.UserID == userID {
			out = append(out, *payment)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakePaymentRepo) SumForDocument(_ context.Context, documentID uuid.UUID) (float64, error) {
	var sum float64
	for _, payment := range r.payments {
		if payment.DocumentID != nil && *payment.DocumentID == documentID {
			sum += payment.Amount
		}
	}
	return sum, nil
}

// fakeAnalyticsRepo returns canned aggregates and records the bounds it was
// queried with
type fakeAnalyticsRepo struct {
	aggregates  map[enum.DocumentKind]repository.DocumentAggregate
	expenses    float64
	receivables float64
	payables    float64
	customers   int64
	vendors     int64
	items       int64

	lastFrom *time.Time
	lastTo   *time.Time
}

func (r *fakeAnalyticsRepo) AggregateDocuments(_ context.Context, _ uuid.UUID, kind enum.DocumentKind, from, to *time.Time) (repository.DocumentAggregate, error) {
	r.lastFrom, r.lastTo = from, to
	return r.aggregates[kind], nil
}

func (r *fakeAnalyticsRepo) OutstandingReceivables(_ context.Context, _ uuid.UUID) (float64, error) {
	return r.receivables, nil
}

func (r *fakeAnalyticsRepo) OutstandingPayables(_ context.Context, _ uuid.UUID) (float64, error) {
	return r.payables, nil
}

func (r *fakeAnalyticsRepo) ExpenseTotal(_ context.Context, _ uuid.UUID, from, to *time.Time) (float64, error) {
	r.lastFrom, r.lastTo = from, to
	return r.expenses, nil
}

func (r *fakeAnalyticsRepo) CountCustomers(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.customers, nil
}

func (r *fakeAnalyticsRepo) CountVendors(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.vendors, nil
}

func (r *fakeAnalyticsRepo) CountItems(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.items, nil
}

// fakeUserRepo is an in-memory UserRepository
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

// fakeStockAdjustmentRepo is an in-memory StockAdjustmentRepository
type fakeStockAdjustmentRepo struct {
	adjustments []entity.StockAdjustment
}

func newFakeStockAdjustmentRepo() *fakeStockAdjustmentRepo {
	return &fakeStockAdjustmentRepo{}
}

func (r *fakeStockAdjustmentRepo) Create(_ context.Context, adjustment *entity.StockAdjustment) error {
	if adjustment.ID == uuid.Nil {
		adjustment.ID = uuid.New()
	}
	r.adjustments = append(r.adjustments, *adjustment)
	return nil
}

func (r *fakeStockAdjustmentRepo) List(_ context.Context, userID uuid.UUID, params *repository.StockAdjustmentFilterParams) ([]entity.StockAdjustment, int64, error) {
	var out []entity.StockAdjustment
	for _, adjustment := range r.adjustments {
		if adjustment.UserID != userID {
			continue
		}
		if params != nil && params.ItemID != nil && adjustment.ItemID != *params.ItemID {
			continue
		}
		out = append(out, adjustment)
	}
	return out, int64(len(out)), nil
}
