package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hmelo/inventario-api/pkg/slug"
)

var (
	ErrEmptyName     = errors.New("nome da categoria não pode ser vazio")
	ErrNotFound      = errors.New("categoria não encontrada")
	ErrDuplicateName = errors.New("já existe uma categoria com este nome")
)

// Category representa uma categoria de produtos
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategory cria uma nova categoria com slug derivado do nome
func NewCategory(name, description string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Category{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados da categoria e rederiva o slug
func (c *Category) Update(name, description string) error {
	if name == "" {
		return ErrEmptyName
	}

	c.Name = name
	c.Slug = slug.Make(name)
	c.Description = description
	c.UpdatedAt = time.Now()

	return nil
}
