package invoice

import (
	"context"
	"testing"
	"time"

	"invoicely/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// memInvoiceStore is an in-memory InvoiceRepository for tests.
type memInvoiceStore struct {
	invoices map[string]models.Invoice
}

func newMemInvoiceStore() *memInvoiceStore {
	return &memInvoiceStore{invoices: make(map[string]models.Invoice)}
}

func (s *memInvoiceStore) Insert(_ context.Context, inv models.Invoice) (string, error) {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	inv.CreatedAt = time.Now()
	inv.UpdatedAt = time.Now()
	s.invoices[inv.ID] = inv
	return inv.ID, nil
}

func (s *memInvoiceStore) GetByID(_ context.Context, id string) (*models.Invoice, error) {
	inv, ok := s.invoices[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (s *memInvoiceStore) GetByOwner(_ context.Context, owner string) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range s.invoices {
		if inv.Owner == owner {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (s *memInvoiceStore) UpdateByID(_ context.Context, id string, fields map[string]any) (*models.Invoice, error) {
	inv, ok := s.invoices[id]
	if !ok {
		return nil, nil
	}
	for key, val := range fields {
		switch key {
		case "invoiceNumber":
			inv.InvoiceNumber = val.(string)
		case "invoiceDate":
			inv.InvoiceDate = val.(time.Time)
		case "dueDate":
			inv.DueDate = val.(time.Time)
		case "billFrom":
			inv.BillFrom = val.(models.BillFrom)
		case "billTo":
			inv.BillTo = val.(models.BillTo)
		case "items":
			inv.Items = val.([]models.LineItem)
		case "notes":
			inv.Notes = val.(string)
		case "paymentTerms":
			inv.PaymentTerms = val.(string)
		case "status":
			inv.Status = val.(string)
		case "subtotal":
			inv.Subtotal = val.(float64)
		case "taxTotal":
			inv.TaxTotal = val.(float64)
		case "total":
			inv.Total = val.(float64)
		case "updatedAt":
			inv.UpdatedAt = val.(time.Time)
		}
	}
	s.invoices[id] = inv
	return &inv, nil
}

func (s *memInvoiceStore) DeleteByIDAndOwner(_ context.Context, id, owner string) (*models.Invoice, error) {
	inv, ok := s.invoices[id]
	if !ok || inv.Owner != owner {
		return nil, nil
	}
	delete(s.invoices, id)
	return &inv, nil
}

func (s *memInvoiceStore) AggregateStats(_ context.Context, owner string) (*models.InvoiceStats, error) {
	owned, _ := s.GetByOwner(context.Background(), owner)
	stats := ComputeStatistics(owned)
	return &stats, nil
}

// memUserStore is an in-memory UserRepository for tests.
type memUserStore struct {
	users map[string]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]models.User)}
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	usr, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &usr, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, usr := range s.users {
		if usr.Email == email {
			u := usr
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) UpdateProfile(_ context.Context, id string, fields map[string]any) (*models.User, error) {
	usr, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	for key, val := range fields {
		switch key {
		case "name":
			usr.Name = val.(string)
		case "businessName":
			usr.BusinessName = val.(string)
		case "address":
			usr.Address = val.(string)
		case "phone":
			usr.Phone = val.(string)
		}
	}
	s.users[id] = usr
	return &usr, nil
}

type InvoiceServiceSuite struct {
	suite.Suite
	ctx     context.Context
	service *DefaultInvoiceService
	repo    *memInvoiceStore
	users   *memUserStore
	owner   string
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = newMemInvoiceStore()
	s.users = newMemUserStore()
	s.service = &DefaultInvoiceService{Repo: s.repo, Users: s.users}

	owner := &models.User{
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		BusinessName: "Analytical Engines Ltd",
		Address:      "12 Byron Street",
		Phone:        "+44 20 0000 0000",
	}
	s.Require().NoError(s.users.Create(s.ctx, owner))
	s.owner = owner.ID
}

func (s *InvoiceServiceSuite) validInput() CreateInvoiceInput {
	return CreateInvoiceInput{
		InvoiceNumber: "INV-007",
		InvoiceDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		BillTo:        &models.BillTo{ClientName: "Globex", Email: "ap@globex.test"},
		Items: []LineItemInput{
			item("laptop", 2, 999, 8),
			item("mouse", 3, 25, 8),
		},
	}
}

func (s *InvoiceServiceSuite) TestCreateComputesTotals() {
	inv, err := s.service.CreateInvoice(s.ctx, s.owner, s.validInput())
	s.Require().NoError(err)
	s.NotEmpty(inv.ID)
	s.Equal(models.StatusPending, inv.Status)
	s.InDelta(2073.0, inv.Subtotal, 1e-9)
	s.InDelta(165.84, inv.TaxTotal, 1e-9)
	s.InDelta(2238.84, inv.Total, 1e-9)
	s.Len(inv.Items, 2)
}

func (s *InvoiceServiceSuite) TestCreateMissingRequiredFields() {
	in := s.validInput()
	in.BillTo = nil
	in.Items = nil

	_, err := s.service.CreateInvoice(s.ctx, s.owner, in)
	s.Require().Error(err)
	var validation ValidationError
	s.Require().ErrorAs(err, &validation)
	s.ElementsMatch([]string{"billTo", "items"}, validation.Fields)
	s.Empty(s.repo.invoices)
}

func (s *InvoiceServiceSuite) TestCreateDefaultsBillFromProfile() {
	in := s.validInput()
	in.BillFrom = nil

	inv, err := s.service.CreateInvoice(s.ctx, s.owner, in)
	s.Require().NoError(err)
	s.Equal("Analytical Engines Ltd", inv.BillFrom.BusinessName)
	s.Equal("ada@example.com", inv.BillFrom.Email)
	s.Equal("12 Byron Street", inv.BillFrom.Address)
}

func (s *InvoiceServiceSuite) TestCreateBillFromNameFallback() {
	usr := &models.User{Name: "Solo Freelancer", Email: "solo@example.com"}
	s.Require().NoError(s.users.Create(s.ctx, usr))

	inv, err := s.service.CreateInvoice(s.ctx, usr.ID, s.validInput())
	s.Require().NoError(err)
	s.Equal("Solo Freelancer", inv.BillFrom.BusinessName)
}

func (s *InvoiceServiceSuite) TestCreateDerivesInvoiceNumber() {
	_, err := s.service.CreateInvoice(s.ctx, s.owner, s.validInput()) // INV-007
	s.Require().NoError(err)

	in := s.validInput()
	in.InvoiceNumber = ""
	inv, err := s.service.CreateInvoice(s.ctx, s.owner, in)
	s.Require().NoError(err)
	s.Equal("INV-008", inv.InvoiceNumber)
}

func (s *InvoiceServiceSuite) TestCreateFirstDerivedNumber() {
	in := s.validInput()
	in.InvoiceNumber = ""
	inv, err := s.service.CreateInvoice(s.ctx, s.owner, in)
	s.Require().NoError(err)
	s.Equal("INV-001", inv.InvoiceNumber)
}

func (s *InvoiceServiceSuite) TestGetMalformedID() {
	_, err := s.service.GetInvoice(s.ctx, s.owner, "not-a-uuid")
	var invalid InvalidIDError
	s.Require().ErrorAs(err, &invalid)
}

func (s *InvoiceServiceSuite) TestGetAbsent() {
	_, err := s.service.GetInvoice(s.ctx, s.owner, uuid.New().String())
	var notFound NotFoundError
	s.Require().ErrorAs(err, &notFound)
}

func (s *InvoiceServiceSuite) TestGetWrongOwner() {
	created, err := s.service.CreateInvoice(s.ctx, s.owner, s.validInput())
	s.Require().NoError(err)

	_, err = s.service.GetInvoice(s.ctx, uuid.New().String(), created.ID)
	var unauthorized UnauthorizedError
	s.Require().ErrorAs(err, &unauthorized)
}

func (s *InvoiceServiceSuite) TestGetBackfillsLegacyBillFrom() {
	in := s.validInput()
	in.BillFrom = &models.BillFrom{Email: "old@example.com"} // no business name
	created, err := s.service.CreateInvoice(s.ctx, s.owner, in)
	s.Require().NoError(err)

	got, err := s.service.GetInvoice(s.ctx, s.owner, created.ID)
	s.Require().NoError(err)
	s.Equal("Analytical Engines Ltd", got.BillFrom.BusinessName)
}

func (s *InvoiceServiceSuite) TestListSortsByInvoiceDateDescending() {
	older := s.validInput()
	older.InvoiceNumber = "INV-001"
	older.InvoiceDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := s.validInput()
	newer.InvoiceNumber = "INV-002"
	newer.InvoiceDate = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.service.CreateInvoice(s.ctx, s.owner, older)
	s.Require().NoError(err)
	_, err = s.service.CreateInvoice(s.ctx, s.owner, newer)
	s.Require().NoError(err)

	invoices, err := s.service.ListInvoices(s.ctx, s.owner)
	s.Require().NoError(err)
	s.Require().Len(invoices, 2)
	s.Equal("INV-002", invoices[0].InvoiceNumber)
	s.Equal("INV-001", invoices[1].InvoiceNumber)
}

func (s *InvoiceServiceSuite) TestUpdateOmittingItemsPreservesTotals() {
	created, err := s.service.CreateInvoice(s.ctx, s.owner, s.validInput())
	s.Require().NoError(err)

	notes := "payment due on receipt"
	updated, err := s.service.UpdateInvoice(s.ctx, s.owner, created.ID, UpdateInvoiceInput{
		Notes: &notes,
	})
	s.Require().NoError(err)

	s.Equal(created.Items, updated.Items)
	s.Equal(created.Subtotal, updated.Subtotal)
	s.Equal(created.TaxTotal, updated.TaxTotal)
	s.Equal(created.Total, updated.Total)
	s.Equal(notes, updated.Notes)
}

func (s *InvoiceServiceSuite) TestUpdateItemsRecomputesTotals() {
	created, err := s.service.CreateInvoice(s.ctx, s.owner, s.validInput())
	s.Require().NoError(err)

	updated, err := s.service.UpdateInvoice(s.ctx, s.owner, created.ID, UpdateInvoiceInput{
		Items: []LineItemInput{item("single", 1, 100, 10)},
	})
	s.Require().NoError(err)
	s.InDelta(100.0, updated.Subtotal, 1e-9)
	s.InDelta(10.0, updated.TaxTotal, 1e-9)
	s.InDelta(110.0, updated.Total, 1e-9)
	s.Len(updated.Items, 1)
}

func (s *InvoiceServiceSuite) TestUpdateStatusIndependently() {
	created, err := s.service.CreateInvoice(s.ctx, s.owner, s.validInput())
	s.Require().NoError(err)

	status := models.StatusPaid
	updated, err := s.service.UpdateInvoice(s.ctx, s.owner, created.ID, UpdateInvoiceInput{
		Status: &status,
	})
	s.Require().NoError(err)
	s.Equal(models.StatusPaid, updated.Status)
	s.Equal(created.Total, updated.Total)
}

func (s *InvoiceServiceSuite) TestUpdateRejectsUnknownStatus() {
	created, err := s.service.CreateInvoice(s.ctx, s.owner, s.validInput())
	s.Require().NoError(err)

	status := "Archived"
	_, err = s.service.UpdateInvoice(s.ctx, s.owner, created.ID, UpdateInvoiceInput{
		Status: &status,
	})
	var validation ValidationError
	s.Require().ErrorAs(err, &validation)
}

func (s *InvoiceServiceSuite) TestUpdateWrongOwnerCollapsesToNotFound() {
	created, err := s.service.CreateInvoice(s.ctx, s.owner, s.validInput())
	s.Require().NoError(err)

	notes := "probe"
	_, err = s.service.UpdateInvoice(s.ctx, uuid.New().String(), created.ID, UpdateInvoiceInput{
		Notes: &notes,
	})
	var notFound NotFoundError
	s.Require().ErrorAs(err, &notFound)
}

func (s *InvoiceServiceSuite) TestDeleteWrongOwnerKeepsRecord() {
	created, err := s.service.CreateInvoice(s.ctx, s.owner, s.validInput())
	s.Require().NoError(err)

	_, err = s.service.DeleteInvoice(s.ctx, uuid.New().String(), created.ID)
	var notFound NotFoundError
	s.Require().ErrorAs(err, &notFound)

	still, err := s.service.GetInvoice(s.ctx, s.owner, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, still.ID)
}

func (s *InvoiceServiceSuite) TestDeleteOwned() {
	created, err := s.service.CreateInvoice(s.ctx, s.owner, s.validInput())
	s.Require().NoError(err)

	confirmation, err := s.service.DeleteInvoice(s.ctx, s.owner, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, confirmation.ID)

	_, err = s.service.GetInvoice(s.ctx, s.owner, created.ID)
	var notFound NotFoundError
	s.Require().ErrorAs(err, &notFound)
}

func (s *InvoiceServiceSuite) TestStatistics() {
	created, err := s.service.CreateInvoice(s.ctx, s.owner, s.validInput())
	s.Require().NoError(err)

	status := models.StatusPaid
	_, err = s.service.UpdateInvoice(s.ctx, s.owner, created.ID, UpdateInvoiceInput{Status: &status})
	s.Require().NoError(err)

	stats, err := s.service.Statistics(s.ctx, s.owner)
	s.Require().NoError(err)
	s.Equal(int64(1), stats.TotalInvoices)
	s.InDelta(2238.84, stats.PaidAmount, 1e-9)
	s.InDelta(stats.TotalAmount, stats.PaidAmount, 1e-9)
}
