package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName      = errors.New("nome não pode ser vazio")
	ErrEmptyEmail     = errors.New("email não pode ser vazio")
	ErrInvalidRole    = errors.New("papel de usuário inválido")
	ErrWeakPassword   = errors.New("senha deve ter ao menos 6 caracteres")
	ErrNotFound       = errors.New("usuário não encontrado")
	ErrDuplicateEmail = errors.New("já existe um usuário com este email")
)

// Role representa o papel/função do usuário
type Role string

// Constantes para Role
const (
	RoleAdmin               Role = "ADMIN"                // Administrador do sistema
	RoleManager             Role = "MANAGER"              // Gerente
	RoleSalesRep            Role = "SALES_REP"            // Vendedor / operador de caixa
	RoleInventoryController Role = "INVENTORY_CONTROLLER" // Controlador de estoque
	RoleStaff               Role = "STAFF"                // Funcionário regular
)

// Status representa o status do usuário
type Status string

// Constantes para Status
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User representa um usuário do sistema
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // A senha nunca é serializada
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidRole verifica se o papel informado é um dos papéis conhecidos
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSalesRep, RoleInventoryController, RoleStaff:
		return true
	}
	return false
}

// NewUser cria um novo usuário com senha já em hash
func NewUser(name, email, password string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword configura a senha do usuário com hash bcrypt
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return ErrWeakPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// IsActive verifica se o usuário está ativo
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsAdmin verifica se o usuário é um administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
