package billing

import (
	"context"
	"testing"
	"time"

	domainbilling "github.com/glassshop/backend/internal/domain/billing"
	"github.com/glassshop/backend/internal/domain/catalog"
	"github.com/glassshop/backend/internal/domain/partner"
	"github.com/glassshop/backend/internal/domain/pricing"
	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---- in-memory fakes ----

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*domainbilling.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*domainbilling.Invoice)}
}

func (r *fakeInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*domainbilling.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return inv, nil
}

func (r *fakeInvoiceRepo) FindByCustomerID(_ context.Context, customerID uuid.UUID) ([]domainbilling.Invoice, error) {
	var out []domainbilling.Invoice
	for _, inv := range r.invoices {
		if inv.CustomerID == customerID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) FindByDateRange(_ context.Context, start, end time.Time) ([]domainbilling.Invoice, error) {
	var out []domainbilling.Invoice
	for _, inv := range r.invoices {
		if !inv.IssueDate.Before(start) && !inv.IssueDate.After(end) {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) FindAll(_ context.Context, _ shared.Filter) ([]domainbilling.Invoice, error) {
	var out []domainbilling.Invoice
	for _, inv := range r.invoices {
		out = append(out, *inv)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Save(_ context.Context, invoice *domainbilling.Invoice) error {
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.invoices[id]
	return ok, nil
}

type fakePaymentRepo struct {
	payments []*domainbilling.Payment
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*domainbilling.Payment, error) {
	for _, p := range r.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakePaymentRepo) FindByCustomerID(_ context.Context, customerID uuid.UUID) ([]domainbilling.Payment, error) {
	var out []domainbilling.Payment
	for _, p := range r.payments {
		if p.CustomerID == customerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) FindByInvoiceID(_ context.Context, invoiceID uuid.UUID) ([]domainbilling.Payment, error) {
	var out []domainbilling.Payment
	for _, p := range r.payments {
		if p.InvoiceID != nil && *p.InvoiceID == invoiceID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Save(_ context.Context, payment *domainbilling.Payment) error {
	r.payments = append(r.payments, payment)
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*partner.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*partner.Customer)}
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) FindByPhone(_ context.Context, phone string) (*partner.Customer, error) {
	for _, c := range r.customers {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCustomerRepo) FindAll(_ context.Context, _ shared.Filter) ([]partner.Customer, error) {
	var out []partner.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Save(_ context.Context, customer *partner.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

type fakeGlassTypeRepo struct {
	types map[uuid.UUID]*catalog.GlassType
}

func newFakeGlassTypeRepo() *fakeGlassTypeRepo {
	return &fakeGlassTypeRepo{types: make(map[uuid.UUID]*catalog.GlassType)}
}

func (r *fakeGlassTypeRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.GlassType, error) {
	gt, ok := r.types[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return gt, nil
}

func (r *fakeGlassTypeRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.GlassType, error) {
	var out []catalog.GlassType
	for _, gt := range r.types {
		out = append(out, *gt)
	}
	return out, nil
}

func (r *fakeGlassTypeRepo) Save(_ context.Context, gt *catalog.GlassType) error {
	r.types[gt.ID] = gt
	return nil
}

func (r *fakeGlassTypeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.types, id)
	return nil
}

func (r *fakeGlassTypeRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.types)), nil
}

type fakeRateRepo struct {
	rates []*catalog.ShatafRate
}

func (r *fakeRateRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.ShatafRate, error) {
	for _, rate := range r.rates {
		if rate.ID == id {
			return rate, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeRateRepo) FindByStyleAndThickness(_ context.Context, style catalog.ShatafType, thicknessMM decimal.Decimal) ([]catalog.ShatafRate, error) {
	var out []catalog.ShatafRate
	for _, rate := range r.rates {
		if rate.Style == style && rate.Active && rate.AppliesToThickness(thicknessMM) {
			out = append(out, *rate)
		}
	}
	return out, nil
}

func (r *fakeRateRepo) FindByStyle(_ context.Context, style catalog.ShatafType) ([]catalog.ShatafRate, error) {
	var out []catalog.ShatafRate
	for _, rate := range r.rates {
		if rate.Style == style {
			out = append(out, *rate)
		}
	}
	return out, nil
}

func (r *fakeRateRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.ShatafRate, error) {
	var out []catalog.ShatafRate
	for _, rate := range r.rates {
		out = append(out, *rate)
	}
	return out, nil
}

func (r *fakeRateRepo) Save(_ context.Context, rate *catalog.ShatafRate) error {
	for idx, existing := range r.rates {
		if existing.ID == rate.ID {
			r.rates[idx] = rate
			return nil
		}
	}
	r.rates = append(r.rates, rate)
	return nil
}

func (r *fakeRateRepo) Delete(_ context.Context, id uuid.UUID) error {
	for idx, rate := range r.rates {
		if rate.ID == id {
			r.rates = append(r.rates[:idx], r.rates[idx+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

// ---- fixture ----

type serviceFixture struct {
	svc       *InvoiceService
	invoices  *fakeInvoiceRepo
	payments  *fakePaymentRepo
	customers *fakeCustomerRepo
	glass     *fakeGlassTypeRepo
	glassType *catalog.GlassType
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	glass := newFakeGlassTypeRepo()
	gt, err := catalog.NewGlassType("Clear Float", "clear",
		decimal.NewFromInt(6), valueobject.NewMoneyEGPFromFloat(150.00))
	require.NoError(t, err)
	require.NoError(t, glass.Save(context.Background(), gt))

	rates := &fakeRateRepo{}
	sanding, err := catalog.NewShatafRate(catalog.ShatafSanding,
		decimal.NewFromInt(4), decimal.NewFromInt(8), valueobject.NewMoneyEGPFromFloat(20.00))
	require.NoError(t, err)
	require.NoError(t, rates.Save(context.Background(), sanding))

	invoices := newFakeInvoiceRepo()
	payments := &fakePaymentRepo{}
	customers := newFakeCustomerRepo()

	pricer := pricing.NewService(catalog.NewRateCatalog(rates))

	return &serviceFixture{
		svc:       NewInvoiceService(invoices, payments, customers, glass, pricer, zap.NewNop()),
		invoices:  invoices,
		payments:  payments,
		customers: customers,
		glass:     glass,
		glassType: gt,
	}
}

func (f *serviceFixture) addCustomer(t *testing.T, customerType partner.CustomerType) *partner.Customer {
	t.Helper()
	c, err := partner.NewCustomer("Ahmed", "", customerType)
	require.NoError(t, err)
	require.NoError(t, f.customers.Save(context.Background(), c))
	return c
}

// sandingLine prices 1000x500mm of 6mm glass: 75.00 glass + 10.00 cutting
func (f *serviceFixture) sandingLine() LineRequest {
	return LineRequest{
		GlassTypeID: f.glassType.ID,
		Width:       decimal.NewFromInt(1000),
		Height:      decimal.NewFromInt(500),
		Unit:        "MM",
		Style:       string(catalog.ShatafSanding),
		Farma:       string(catalog.FarmaManual),
	}
}

// ---- tests ----

func TestInvoiceService_QuoteLine(t *testing.T) {
	f := newServiceFixture(t)

	quote, err := f.svc.QuoteLine(context.Background(), f.sandingLine())
	require.NoError(t, err)

	assert.True(t, quote.AreaSqm.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, quote.GlassPrice.Equal(decimal.NewFromFloat(75.00)), "glass %s", quote.GlassPrice)
	assert.True(t, quote.CuttingPrice.Equal(decimal.NewFromFloat(10.00)), "cutting %s", quote.CuttingPrice)
	assert.True(t, quote.TotalPrice.Equal(decimal.NewFromFloat(85.00)), "total %s", quote.TotalPrice)

	t.Run("deactivated glass type not quotable", func(t *testing.T) {
		f.glassType.Deactivate()
		_, err := f.svc.QuoteLine(context.Background(), f.sandingLine())
		assert.Error(t, err)
		f.glassType.Activate()
	})
}

func TestInvoiceService_CreateInvoice_CreditCustomer(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	customer := f.addCustomer(t, partner.CustomerTypeCredit)

	t.Run("no initial payment", func(t *testing.T) {
		resp, err := f.svc.CreateInvoice(ctx, CreateInvoiceRequest{
			CustomerID: customer.ID,
			Lines:      []LineRequest{f.sandingLine()},
		})
		require.NoError(t, err)

		assert.Equal(t, string(domainbilling.StatusUnpaid), resp.Status)
		assert.True(t, resp.TotalPrice.Equal(decimal.NewFromFloat(85.00)))
		assert.True(t, resp.RemainingBalance.Equal(decimal.NewFromFloat(85.00)))
		assert.True(t, customer.Balance.Equal(decimal.NewFromFloat(85.00)), "cached balance %s", customer.Balance)
		assert.Empty(t, f.payments.payments)
	})

	t.Run("partial initial payment", func(t *testing.T) {
		partial := decimal.NewFromFloat(35.00)
		resp, err := f.svc.CreateInvoice(ctx, CreateInvoiceRequest{
			CustomerID:     customer.ID,
			Lines:          []LineRequest{f.sandingLine()},
			InitialPayment: &partial,
			PaymentMethod:  "wallet",
		})
		require.NoError(t, err)

		assert.Equal(t, string(domainbilling.StatusPartiallyPaid), resp.Status)
		assert.True(t, resp.RemainingBalance.Equal(decimal.NewFromFloat(50.00)))
		// 85 from the first invoice + 50 remaining from this one
		assert.True(t, customer.Balance.Equal(decimal.NewFromFloat(135.00)), "cached balance %s", customer.Balance)

		require.Len(t, f.payments.payments, 1)
		assert.Equal(t, domainbilling.MethodWallet, f.payments.payments[0].Method)
	})
}

func TestInvoiceService_CreateInvoice_CashCustomer(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	customer := f.addCustomer(t, partner.CustomerTypeCash)

	t.Run("short payment rejected", func(t *testing.T) {
		short := decimal.NewFromFloat(50.00)
		_, err := f.svc.CreateInvoice(ctx, CreateInvoiceRequest{
			CustomerID:     customer.ID,
			Lines:          []LineRequest{f.sandingLine()},
			InitialPayment: &short,
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeCashPaymentShortfall, domainErr.Code)
		assert.Empty(t, f.invoices.invoices)
	})

	t.Run("missing payment rejected", func(t *testing.T) {
		_, err := f.svc.CreateInvoice(ctx, CreateInvoiceRequest{
			CustomerID: customer.ID,
			Lines:      []LineRequest{f.sandingLine()},
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeCashPaymentShortfall, domainErr.Code)
	})

	t.Run("full payment accepted", func(t *testing.T) {
		full := decimal.NewFromFloat(85.00)
		resp, err := f.svc.CreateInvoice(ctx, CreateInvoiceRequest{
			CustomerID:     customer.ID,
			Lines:          []LineRequest{f.sandingLine()},
			InitialPayment: &full,
		})
		require.NoError(t, err)

		assert.Equal(t, string(domainbilling.StatusPaid), resp.Status)
		assert.True(t, resp.RemainingBalance.IsZero())
		assert.True(t, customer.Balance.IsZero())
		require.Len(t, f.payments.payments, 1)
		assert.Equal(t, domainbilling.MethodCash, f.payments.payments[0].Method)
	})
}

func TestInvoiceService_CreateInvoice_InactiveCustomer(t *testing.T) {
	f := newServiceFixture(t)
	customer := f.addCustomer(t, partner.CustomerTypeCredit)
	customer.Deactivate()

	_, err := f.svc.CreateInvoice(context.Background(), CreateInvoiceRequest{
		CustomerID: customer.ID,
		Lines:      []LineRequest{f.sandingLine()},
	})
	assert.Error(t, err)
}

func TestInvoiceService_ApplyPayment(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	customer := f.addCustomer(t, partner.CustomerTypeCredit)

	created, err := f.svc.CreateInvoice(ctx, CreateInvoiceRequest{
		CustomerID: customer.ID,
		Lines:      []LineRequest{f.sandingLine()},
	})
	require.NoError(t, err)

	t.Run("partial payment", func(t *testing.T) {
		resp, err := f.svc.ApplyPayment(ctx, created.ID, ApplyPaymentRequest{
			Amount: decimal.NewFromFloat(35.00),
			Method: "cash",
		})
		require.NoError(t, err)

		assert.Equal(t, string(domainbilling.StatusPartiallyPaid), resp.Status)
		assert.True(t, resp.RemainingBalance.Equal(decimal.NewFromFloat(50.00)))
		assert.True(t, customer.Balance.Equal(decimal.NewFromFloat(50.00)), "cached balance %s", customer.Balance)
	})

	t.Run("overpayment rejected, nothing recorded", func(t *testing.T) {
		paymentsBefore := len(f.payments.payments)

		_, err := f.svc.ApplyPayment(ctx, created.ID, ApplyPaymentRequest{
			Amount: decimal.NewFromFloat(60.00),
			Method: "cash",
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeOverpayment, domainErr.Code)
		assert.Len(t, f.payments.payments, paymentsBefore)
	})

	t.Run("settling payment", func(t *testing.T) {
		resp, err := f.svc.ApplyPayment(ctx, created.ID, ApplyPaymentRequest{
			Amount: decimal.NewFromFloat(50.00),
			Method: "bank_transfer",
		})
		require.NoError(t, err)

		assert.Equal(t, string(domainbilling.StatusPaid), resp.Status)
		assert.True(t, customer.Balance.IsZero())

		payments, err := f.svc.ListPayments(ctx, created.ID)
		require.NoError(t, err)
		assert.Len(t, payments, 2)
	})
}

func TestInvoiceService_CustomerPayments(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	customer := f.addCustomer(t, partner.CustomerTypeCredit)

	t.Run("records a payment with no invoice", func(t *testing.T) {
		resp, err := f.svc.RecordCustomerPayment(ctx, customer.ID, ApplyPaymentRequest{
			Amount: decimal.NewFromFloat(40.00),
			Method: "cash",
			Notes:  "counter deposit",
		})
		require.NoError(t, err)

		assert.Nil(t, resp.InvoiceID)
		assert.True(t, resp.Amount.Equal(decimal.NewFromFloat(40.00)))
		require.Len(t, f.payments.payments, 1)
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		_, err := f.svc.RecordCustomerPayment(ctx, customer.ID, ApplyPaymentRequest{
			Amount: decimal.NewFromFloat(10.00),
			Method: "barter",
		})
		assert.Error(t, err)
		assert.Len(t, f.payments.payments, 1)
	})

	t.Run("unknown customer rejected", func(t *testing.T) {
		_, err := f.svc.RecordCustomerPayment(ctx, uuid.New(), ApplyPaymentRequest{
			Amount: decimal.NewFromFloat(10.00),
			Method: "cash",
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("lists all payments for the customer", func(t *testing.T) {
		payments, err := f.svc.ListCustomerPayments(ctx, customer.ID)
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, "counter deposit", payments[0].Notes)
	})
}

func TestReconciliationService(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	customer := f.addCustomer(t, partner.CustomerTypeCredit)

	_, err := f.svc.CreateInvoice(ctx, CreateInvoiceRequest{
		CustomerID: customer.ID,
		Lines:      []LineRequest{f.sandingLine()},
	})
	require.NoError(t, err)

	reconciler := domainbilling.NewBalanceReconciliationService(f.invoices, zap.NewNop())
	svc := NewReconciliationService(reconciler, f.customers, zap.NewNop())

	t.Run("consistent cache", func(t *testing.T) {
		report, err := svc.CheckBalance(ctx, customer.ID)
		require.NoError(t, err)

		assert.True(t, report.Consistent)
		assert.True(t, report.CachedBalance.Equal(decimal.NewFromFloat(85.00)))
		assert.True(t, report.Discrepancy.IsZero())
	})

	t.Run("drift detected and repaired", func(t *testing.T) {
		// simulate the dual-bookkeeping defect: cache poked directly
		require.NoError(t, customer.IncreaseBalance(valueobject.NewMoneyEGPFromFloat(40.00)))

		report, err := svc.CheckBalance(ctx, customer.ID)
		require.NoError(t, err)
		assert.False(t, report.Consistent)
		assert.True(t, report.Discrepancy.Equal(decimal.NewFromFloat(40.00)), "discrepancy %s", report.Discrepancy)

		repaired, err := svc.RepairBalance(ctx, customer.ID)
		require.NoError(t, err)
		assert.True(t, repaired.Consistent)
		assert.True(t, customer.Balance.Equal(decimal.NewFromFloat(85.00)))
	})
}
