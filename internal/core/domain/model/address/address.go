// Package address models a customer's saved delivery addresses. At most one
// address per user is the default; the unit of work enforces that across rows.
package address

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a saved delivery address owned by one user.
type Address struct {
	id            kernel.UUID
	userID        kernel.UUID
	label         string
	line          string
	city          string
	postalCode    string
	isDefault     bool
	createdAt     time.Time
	isConstructed bool
}

// NewAddress validates and builds an address. label, line and city are required.
func NewAddress(
	id, userID kernel.UUID,
	label, line, city, postalCode string,
	isDefault bool,
	createdAt time.Time,
) (*Address, error) {
	problems := []error{id.Validate(), userID.Validate()}
	if strings.TrimSpace(label) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("label"))
	}
	if strings.TrimSpace(line) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("line"))
	}
	if strings.TrimSpace(city) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("city"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Address{
		id:            id,
		userID:        userID,
		label:         strings.TrimSpace(label),
		line:          strings.TrimSpace(line),
		city:          strings.TrimSpace(city),
		postalCode:    strings.TrimSpace(postalCode),
		isDefault:     isDefault,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a *Address) ID() kernel.UUID { return a.id }
func (a *Address) UserID() kernel.UUID { return a.userID }
func (a *Address) Label() string { return a.label }
func (a *Address) Line() string { return a.line }
func (a *Address) City() string { return a.city }
func (a *Address) PostalCode() string { return a.postalCode }
func (a *Address) IsDefault() bool { return a.isDefault }
func (a *Address) CreatedAt() time.Time { return a.createdAt }

// OwnedBy reports whether userID owns the address.
func (a *Address) OwnedBy(userID kernel.UUID) bool {
	return a.userID.IsEqual(userID)
}

// MarkDefault flags the address as its owner's default. Clearing the previous
// default is the caller's job and must happen in the same transaction.
func (a *Address) MarkDefault() {
	a.isDefault = true
}

// Formatted renders the address as a single delivery line.
func (a *Address) Formatted() string {
	parts := []string{a.line, a.city}
	if a.postalCode != "" {
		parts = append(parts, a.postalCode)
	}
	return strings.Join(parts, ", ")
}
