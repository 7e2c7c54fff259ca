package repository

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/quickcut/internal/domain/customer"
	"github.com/BruksfildServices01/quickcut/internal/models"
)

func customerID(c models.Customer) uint { return c.ID }

func deriveCustomerStatus(appointments int) string {
	return customer.DeriveStatus(appointments)
}

// CreateCustomer assigns an id from 1001 upward and derives the status.
func (r *ShopRepository) CreateCustomer(ctx context.Context, c *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.insertCustomer(c)
	return r.saveAll(ctx)
}

func (r *ShopRepository) insertCustomer(c *models.Customer) {
	now := r.now()
	c.ID = allocateID(r, KeyCustomers, r.customers, customerID, customer.FirstID)
	c.Status = deriveCustomerStatus(c.Appointments)
	c.CreatedAt = now
	c.UpdatedAt = now

	r.customers = append(r.customers, *c)
}

func (r *ShopRepository) GetCustomer(_ context.Context, id uint) (models.Customer, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.customers, customerID, id)
	if i < 0 {
		return models.Customer{}, false, nil
	}
	return r.customers[i], true, nil
}

func (r *ShopRepository) ListCustomers(_ context.Context) ([]models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return clone(r.customers), nil
}

// UpdateCustomer applies fn and then re-derives the status from the
// appointment count, overriding whatever fn set.
func (r *ShopRepository) UpdateCustomer(ctx context.Context, id uint, fn func(*models.Customer)) (models.Customer, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.customers, customerID, id)
	if i < 0 {
		return models.Customer{}, false, nil
	}

	c := r.customers[i]
	fn(&c)
	c.ID = id
	c.Status = deriveCustomerStatus(c.Appointments)
	c.UpdatedAt = r.now()
	r.customers[i] = c

	return c, true, r.saveAll(ctx)
}

func (r *ShopRepository) DeleteCustomer(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.customers, customerID, id)
	if i < 0 {
		return false, nil
	}
	r.customers = append(r.customers[:i], r.customers[i+1:]...)
	return true, r.saveAll(ctx)
}

// GetOrCreateCustomer matches on the phone number, ignoring formatting, and
// creates a new customer from the full name when none matches.
func (r *ShopRepository) GetOrCreateCustomer(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	want := NormalizePhone(phone)
	for _, c := range r.customers {
		if want != "" && NormalizePhone(c.Phone) == want {
			return c, nil
		}
	}

	first, last := SplitName(name)
	c := models.Customer{
		FirstName: first,
		LastName:  last,
		Phone:     strings.TrimSpace(phone),
		Email:     strings.TrimSpace(email),
	}
	r.insertCustomer(&c)

	return c, r.saveAll(ctx)
}

// NormalizePhone keeps only digits and a leading plus sign.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, ch := range strings.TrimSpace(phone) {
		if ch >= '0' && ch <= '9' || (ch == '+' && i == 0) {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func SplitName(name string) (first, last string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
