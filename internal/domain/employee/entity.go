package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID   string
	Code string
	Name string
	// HourlyRate overrides the organization base rate when positive; zero
	// means "use the organization base rate".
	HourlyRate decimal.Decimal
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
