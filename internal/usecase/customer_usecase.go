package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"esquadrias_xpto/internal/domain/entities"
	"esquadrias_xpto/internal/usecase/interfaces"
	"esquadrias_xpto/pkg"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidCustomerID = errors.New("invalid customer id")
)

// Brazilian landline/mobile format, DDD optional: (11) 91234-5678, 1234-5678.
var phonePattern = regexp.MustCompile(`^(\(\d{2}\)\s?)?\d{4,5}-\d{4}$`)

type CustomerInput struct {
	Name    string
	Address string
	Phone   string
}

// ICustomerUseCase exposes the cliente registry behind the quote form's
// autocomplete and the cadastro screen.

type ICustomerUseCase interface {
	CreateCustomer(ctx context.Context, in CustomerInput) (entities.Customer, error)
	UpdateCustomer(ctx context.Context, id string, in CustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	ListCustomers(ctx context.Context, query string) ([]entities.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func validateCustomerInput(in *CustomerInput) pkg.FieldErrors {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)

	fieldErrs := pkg.FieldErrors{}
	if in.Name == "" {
		fieldErrs["nome"] = "name is required"
	}
	if in.Address == "" {
		fieldErrs["endereco"] = "address is required"
	}
	if !phonePattern.MatchString(in.Phone) {
		fieldErrs["telefone"] = "phone number is invalid"
	}
	return fieldErrs
}

func (u *CustomerUseCase) CreateCustomer(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	if fieldErrs := validateCustomerInput(&in); len(fieldErrs) > 0 {
		return entities.Customer{}, fieldErrs
	}

	c := entities.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) UpdateCustomer(ctx context.Context, id string, in CustomerInput) (entities.Customer, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if fieldErrs := validateCustomerInput(&in); len(fieldErrs) > 0 {
		return entities.Customer{}, fieldErrs
	}

	existing.Name = in.Name
	existing.Address = in.Address
	existing.Phone = in.Phone

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

// ListCustomers returns customers newest first, optionally narrowed by a
// case-insensitive name substring (the autocomplete filter).
func (u *CustomerUseCase) ListCustomers(ctx context.Context, query string) ([]entities.Customer, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all, nil
	}

	matched := make([]entities.Customer, 0, len(all))
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), query) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (u *CustomerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCustomerID
	}
	return u.repo.Delete(ctx, id)
}
