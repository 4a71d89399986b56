package supplier

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("nome do fornecedor não pode ser vazio")
	ErrNotFound  = errors.New("fornecedor não encontrado")
)

// Supplier representa um fornecedor de produtos
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSupplier cria um novo fornecedor
func NewSupplier(name, email, phone, address string) (*Supplier, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Supplier{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do fornecedor
func (s *Supplier) Update(name, email, phone, address string) error {
	if name == "" {
		return ErrEmptyName
	}

	s.Name = name
	s.Email = email
	s.Phone = phone
	s.Address = address
	s.UpdatedAt = time.Now()

	return nil
}
