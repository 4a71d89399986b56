package discount

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPercentage = errors.New("percentual deve estar entre 0 e 100")
	ErrInvalidPeriod     = errors.New("data final deve ser posterior à data inicial")
	ErrNotFound          = errors.New("desconto não encontrado")
	ErrDuplicateCode     = errors.New("já existe um desconto com este código")
)

// NotActiveReason indica por que um desconto não pode ser aplicado
type NotActiveReason string

const (
	ReasonNotStarted NotActiveReason = "not_started" // Vigência ainda não começou
	ReasonExpired    NotActiveReason = "expired"     // Vigência já terminou
)

// NotActiveError indica que o desconto existe mas está fora da vigência.
// Boundary carrega a data limite violada, para compor a mensagem ao usuário.
type NotActiveError struct {
	Code     string
	Reason   NotActiveReason
	Boundary time.Time
}

func (e *NotActiveError) Error() string {
	if e.Reason == ReasonNotStarted {
		return fmt.Sprintf("desconto %s ainda não está vigente; início em %s", e.Code, e.Boundary.Format("02/01/2006"))
	}
	return fmt.Sprintf("desconto %s expirado; válido até %s", e.Code, e.Boundary.Format("02/01/2006"))
}

// Discount representa um desconto percentual com janela de vigência
type Discount struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Percentage  decimal.Decimal `json:"percentage"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewDiscount cria um novo desconto com o código informado
func NewDiscount(code string, percentage decimal.Decimal, startDate, endDate time.Time, description string) (*Discount, error) {
	if percentage.IsNegative() || percentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidPercentage
	}
	if !startDate.Before(endDate) {
		return nil, ErrInvalidPeriod
	}

	now := time.Now()
	return &Discount{
		ID:          uuid.New().String(),
		Code:        code,
		Percentage:  percentage,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados do desconto mantendo o código
func (d *Discount) Update(percentage decimal.Decimal, startDate, endDate time.Time, description string) error {
	if percentage.IsNegative() || percentage.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidPercentage
	}
	if !startDate.Before(endDate) {
		return ErrInvalidPeriod
	}

	d.Percentage = percentage
	d.StartDate = startDate
	d.EndDate = endDate
	d.Description = description
	d.UpdatedAt = time.Now()

	return nil
}

// ActiveAt verifica se o desconto está vigente no instante informado.
// Retorna NotActiveError distinguindo vigência futura de vigência encerrada.
func (d *Discount) ActiveAt(now time.Time) error {
	if now.Before(d.StartDate) {
		return &NotActiveError{Code: d.Code, Reason: ReasonNotStarted, Boundary: d.StartDate}
	}
	if now.After(d.EndDate) {
		return &NotActiveError{Code: d.Code, Reason: ReasonExpired, Boundary: d.EndDate}
	}
	return nil
}

const codeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCode gera um código alfanumérico aleatório de 8 caracteres
func GenerateCode() string {
	b := make([]byte, 8)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		b[i] = codeChars[n.Int64()]
	}
	return string(b)
}
