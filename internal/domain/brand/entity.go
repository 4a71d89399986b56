package brand

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hmelo/inventario-api/pkg/slug"
)

var (
	ErrEmptyName     = errors.New("nome da marca não pode ser vazio")
	ErrNotFound      = errors.New("marca não encontrada")
	ErrDuplicateName = errors.New("já existe uma marca com este nome")
)

// Brand representa uma marca de produtos
type Brand struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBrand cria uma nova marca com slug derivado do nome
func NewBrand(name string) (*Brand, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Brand{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug.Make(name),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza o nome da marca e rederiva o slug
func (b *Brand) Update(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	b.Name = name
	b.Slug = slug.Make(name)
	b.UpdatedAt = time.Now()

	return nil
}
