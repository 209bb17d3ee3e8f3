package billing

import (
	"context"
	"time"

	"github.com/glassshop/backend/internal/domain/billing"
	"github.com/glassshop/backend/internal/domain/catalog"
	"github.com/glassshop/backend/internal/domain/partner"
	"github.com/glassshop/backend/internal/domain/pricing"
	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvoiceService orchestrates invoice issuing and payment. It is the only
// place that touches the customer's cached balance, so every cache update
// sits next to the invoice mutation that caused it.
type InvoiceService struct {
	invoiceRepo   billing.InvoiceRepository
	paymentRepo   billing.PaymentRepository
	customerRepo  partner.CustomerRepository
	glassTypeRepo catalog.GlassTypeRepository
	pricer        *pricing.Service
	logger        *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo billing.InvoiceRepository,
	paymentRepo billing.PaymentRepository,
	customerRepo partner.CustomerRepository,
	glassTypeRepo catalog.GlassTypeRepository,
	pricer *pricing.Service,
	logger *zap.Logger,
) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{
		invoiceRepo:   invoiceRepo,
		paymentRepo:   paymentRepo,
		customerRepo:  customerRepo,
		glassTypeRepo: glassTypeRepo,
		pricer:        pricer,
		logger:        logger,
	}
}

// priceLine resolves the glass type and runs the pricing algorithm for one
// line request, returning the calculation plus the metadata the invoice
// needs to store alongside it.
func (s *InvoiceService) priceLine(ctx context.Context, req LineRequest) (*pricing.LineCalculation, *billing.LineMetadata, error) {
	glassType, err := s.glassTypeRepo.FindByID(ctx, req.GlassTypeID)
	if err != nil {
		return nil, nil, err
	}
	if !glassType.Active {
		return nil, nil, shared.NewDomainError(shared.CodeInvalidState,
			"Glass type "+glassType.Name+" is not orderable")
	}

	unit, err := valueobject.ParseLengthUnit(req.Unit)
	if err != nil {
		return nil, nil, shared.NewValidationError(err.Error())
	}
	dims, err := valueobject.NewDimensions(req.Width, req.Height, unit)
	if err != nil {
		return nil, nil, err
	}

	style := catalog.ShatafType(req.Style)
	farma := catalog.FarmaType(req.Farma)

	var manualPrice *valueobject.Money
	if req.ManualCuttingPrice != nil {
		m := valueobject.NewMoneyEGP(*req.ManualCuttingPrice)
		manualPrice = &m
	}

	calc, err := s.pricer.CalculateLinePrice(ctx, pricing.LineRequest{
		Dimensions:         dims,
		GlassType:          glassType,
		Style:              style,
		Farma:              farma,
		DiameterM:          req.DiameterM,
		ManualCuttingPrice: manualPrice,
	})
	if err != nil {
		return nil, nil, err
	}

	meta := &billing.LineMetadata{
		GlassTypeID: glassType.ID,
		Description: req.Description,
		Style:       style,
		Farma:       farma,
		Dimensions:  dims,
	}
	return calc, meta, nil
}

// QuoteLine prices one sheet without touching any invoice
func (s *InvoiceService) QuoteLine(ctx context.Context, req LineRequest) (*QuoteResponse, error) {
	calc, _, err := s.priceLine(ctx, req)
	if err != nil {
		return nil, err
	}

	return &QuoteResponse{
		AreaSqm:      calc.Area().SquareMeters(),
		ShatafMeters: calc.ShatafMeters(),
		GlassPrice:   calc.GlassPrice().Amount(),
		CuttingPrice: calc.CuttingPrice().Amount(),
		TotalPrice:   calc.TotalPrice().Amount(),
	}, nil
}

// CreateInvoice prices every line, issues the invoice and applies the
// initial payment. Cash customers must pay the full total up front; credit
// customers may pay any part of it, and whatever remains is added to their
// cached balance.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.Active {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "Customer is inactive")
	}

	invoice, err := billing.NewInvoice(customer.ID, time.Now(), req.Notes)
	if err != nil {
		return nil, err
	}

	for _, lineReq := range req.Lines {
		calc, meta, err := s.priceLine(ctx, lineReq)
		if err != nil {
			return nil, err
		}
		if err := invoice.AddLine(calc, *meta); err != nil {
			return nil, err
		}
	}

	initialPayment := valueobject.ZeroEGP()
	if req.InitialPayment != nil {
		initialPayment = valueobject.NewMoneyEGP(*req.InitialPayment)
	}

	if customer.IsCashCustomer() {
		if !initialPayment.Equals(invoice.GetTotalMoney()) {
			return nil, shared.NewDomainError(shared.CodeCashPaymentShortfall,
				"Cash customer must pay invoice total "+invoice.GetTotalMoney().String()+
					" in full, got "+initialPayment.String())
		}
	} else if initialPayment.IsNegative() {
		return nil, shared.NewValidationError("Initial payment cannot be negative")
	}

	paidAt := time.Now()
	var payment *billing.Payment
	if initialPayment.IsPositive() {
		if err := invoice.ApplyPayment(initialPayment, paidAt); err != nil {
			return nil, err
		}

		method := billing.MethodCash
		if req.PaymentMethod != "" {
			method, err = billing.ParsePaymentMethod(req.PaymentMethod)
			if err != nil {
				return nil, err
			}
		}
		payment, err = billing.NewPayment(customer.ID, &invoice.ID, initialPayment,
			method, paidAt, "", req.CreatedBy)
		if err != nil {
			return nil, err
		}
	}

	remaining := invoice.RemainingBalance()
	if remaining.IsPositive() {
		if err := customer.IncreaseBalance(remaining); err != nil {
			return nil, err
		}
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	if payment != nil {
		if err := s.paymentRepo.Save(ctx, payment); err != nil {
			return nil, err
		}
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("customer_id", customer.ID.String()),
		zap.String("total", invoice.GetTotalMoney().String()),
		zap.String("status", string(invoice.Status)),
	)

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// ApplyPayment settles part or all of an invoice's remaining balance and
// records the payment transaction
func (s *InvoiceService) ApplyPayment(ctx context.Context, invoiceID uuid.UUID, req ApplyPaymentRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindByID(ctx, invoice.CustomerID)
	if err != nil {
		return nil, err
	}

	method, err := billing.ParsePaymentMethod(req.Method)
	if err != nil {
		return nil, err
	}

	amount := valueobject.NewMoneyEGP(req.Amount)
	paidAt := time.Now()

	if err := invoice.ApplyPayment(amount, paidAt); err != nil {
		return nil, err
	}

	payment, err := billing.NewPayment(customer.ID, &invoice.ID, amount,
		method, paidAt, req.Notes, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	// A stale cache must not block a payment; the reconciliation audit
	// will surface the drift.
	if err := customer.DecreaseBalance(amount); err != nil {
		s.logger.Warn("cached balance not decremented",
			zap.String("customer_id", customer.ID.String()),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// RecordCustomerPayment records a payment from a customer that is not tied
// to any single invoice, e.g. a deposit or a balance payment taken at the
// counter. The cached balance is decremented best effort; the reconciled
// balance is unaffected because it derives from invoices alone.
func (s *InvoiceService) RecordCustomerPayment(ctx context.Context, customerID uuid.UUID, req ApplyPaymentRequest) (*PaymentResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	method, err := billing.ParsePaymentMethod(req.Method)
	if err != nil {
		return nil, err
	}

	amount := valueobject.NewMoneyEGP(req.Amount)
	payment, err := billing.NewPayment(customer.ID, nil, amount,
		method, time.Now(), req.Notes, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := customer.DecreaseBalance(amount); err != nil {
		s.logger.Warn("cached balance not decremented",
			zap.String("customer_id", customer.ID.String()),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// ListCustomerPayments retrieves every payment recorded for a customer,
// newest first, whether or not it was tied to an invoice
func (s *InvoiceService) ListCustomerPayments(ctx context.Context, customerID uuid.UUID) ([]PaymentResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]PaymentResponse, 0, len(payments))
	for idx := range payments {
		responses = append(responses, ToPaymentResponse(&payments[idx]))
	}
	return responses, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// ListByCustomer retrieves all invoices for one customer
func (s *InvoiceService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for idx := range invoices {
		responses = append(responses, ToInvoiceResponse(&invoices[idx]))
	}
	return responses, nil
}

// ListByDateRange retrieves invoices issued between start and end
func (s *InvoiceService) ListByDateRange(ctx context.Context, start, end time.Time) ([]InvoiceResponse, error) {
	if end.Before(start) {
		return nil, shared.NewValidationError("End date cannot be before start date")
	}

	invoices, err := s.invoiceRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for idx := range invoices {
		responses = append(responses, ToInvoiceResponse(&invoices[idx]))
	}
	return responses, nil
}

// ListPayments retrieves the payment transactions recorded for an invoice
func (s *InvoiceService) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	responses := make([]PaymentResponse, 0, len(payments))
	for idx := range payments {
		responses = append(responses, ToPaymentResponse(&payments[idx]))
	}
	return responses, nil
}
