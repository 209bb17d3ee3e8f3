package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// CustomerType decides how invoices are settled. Cash customers pay in full
// when the invoice is issued; credit customers run a balance.
type CustomerType string

const (
	CustomerTypeCash   CustomerType = "cash"
	CustomerTypeCredit CustomerType = "credit"
)

// IsValid checks if the customer type is valid
func (t CustomerType) IsValid() bool {
	return t == CustomerTypeCash || t == CustomerTypeCredit
}

var phonePattern = regexp.MustCompile(`^\+?[0-9\-\s]{7,20}$`)

// Customer is the aggregate root for customer operations. Balance is a
// cached projection of what the customer owes across their invoices; the
// billing reconciliation service audits it against the invoices themselves.
type Customer struct {
	shared.BaseAggregateRoot
	Name    string          `gorm:"type:varchar(200);not null"`
	Phone   string          `gorm:"type:varchar(50);index"`
	Type    CustomerType    `gorm:"type:varchar(20);not null;default:'cash'"`
	Balance decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Notes   string          `gorm:"type:text"`
	Active  bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name, phone string, customerType CustomerType) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return nil, err
		}
	}
	if !customerType.IsValid() {
		return nil, shared.NewValidationError("Invalid customer type: " + string(customerType))
	}

	customer := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Phone:             strings.TrimSpace(phone),
		Type:              customerType,
		Balance:           decimal.Zero,
		Active:            true,
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// IsCashCustomer reports whether invoices must be paid in full on issue
func (c *Customer) IsCashCustomer() bool {
	return c.Type == CustomerTypeCash
}

// GetBalanceMoney returns the cached balance as Money
func (c *Customer) GetBalanceMoney() valueobject.Money {
	return valueobject.NewMoneyEGP(c.Balance)
}

// UpdateName updates the customer's display name
func (c *Customer) UpdateName(name string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerUpdatedEvent(c))

	return nil
}

// UpdatePhone updates the customer's phone number
func (c *Customer) UpdatePhone(phone string) error {
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}

	c.Phone = strings.TrimSpace(phone)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerUpdatedEvent(c))

	return nil
}

// UpdateNotes replaces the free-text notes
func (c *Customer) UpdateNotes(notes string) {
	c.Notes = strings.TrimSpace(notes)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// ChangeType switches the customer between cash and credit settlement
func (c *Customer) ChangeType(customerType CustomerType) error {
	if !customerType.IsValid() {
		return shared.NewValidationError("Invalid customer type: " + string(customerType))
	}
	if customerType == CustomerTypeCash && c.Balance.IsPositive() {
		return shared.NewDomainError(shared.CodeInvalidState,
			"Cannot switch a customer with outstanding balance to cash")
	}

	c.Type = customerType
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerUpdatedEvent(c))

	return nil
}

// IncreaseBalance grows the cached owed balance when a credit invoice is
// issued with an unpaid remainder
func (c *Customer) IncreaseBalance(amount valueobject.Money) error {
	if !amount.IsPositive() {
		return shared.NewValidationError("Balance change must be positive")
	}

	oldBalance := c.Balance
	c.Balance = c.Balance.Add(amount.Amount())
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerBalanceChangedEvent(c, oldBalance, "invoice"))

	return nil
}

// DecreaseBalance shrinks the cached owed balance when a payment lands
func (c *Customer) DecreaseBalance(amount valueobject.Money) error {
	if !amount.IsPositive() {
		return shared.NewValidationError("Balance change must be positive")
	}
	if c.Balance.LessThan(amount.Amount()) {
		return shared.NewDomainError(shared.CodeInvalidState,
			"Balance deduction exceeds cached balance")
	}

	oldBalance := c.Balance
	c.Balance = c.Balance.Sub(amount.Amount())
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerBalanceChangedEvent(c, oldBalance, "payment"))

	return nil
}

// SyncBalance overwrites the cached balance with a reconciled value. Only
// the reconciliation flow calls this, after computing the authoritative
// figure from invoices.
func (c *Customer) SyncBalance(reconciled valueobject.Money) error {
	if reconciled.IsNegative() {
		return shared.NewValidationError("Reconciled balance cannot be negative")
	}

	oldBalance := c.Balance
	c.Balance = reconciled.Amount()
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerBalanceChangedEvent(c, oldBalance, "reconciliation"))

	return nil
}

// Activate marks the customer as active
func (c *Customer) Activate() {
	if c.Active {
		return
	}
	c.Active = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerUpdatedEvent(c))
}

// Deactivate marks the customer as inactive
func (c *Customer) Deactivate() {
	if !c.Active {
		return
	}
	c.Active = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerUpdatedEvent(c))
}

func validateCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewValidationError("Customer name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		return shared.NewValidationError("Invalid phone number format")
	}
	return nil
}
