package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Person is the read-only view of per_personas_pm used to label permission owners
type Person struct {
	ID             decimal.Decimal `gorm:"column:per_idpersona;type:numeric(12,0);primaryKey" json:"per_idpersona"`
	PaternalName   string          `gorm:"column:per_paterno;type:varchar(60)" json:"per_paterno"`
	MaternalName   string          `gorm:"column:per_materno;type:varchar(60)" json:"per_materno"`
	GivenName      string          `gorm:"column:per_nomrazon;type:varchar(120)" json:"per_nomrazon"`
	TaxID          string          `gorm:"column:per_rfc;type:varchar(13)" json:"per_rfc"`
	Status         string          `gorm:"column:per_status;type:varchar(2)" json:"per_status"`
	SalesPersonKey string          `gorm:"column:per_vendedor;type:varchar(10)" json:"per_vendedor"`
}

func (Person) TableName() string {
	return "per_personas_pm"
}

// DisplayName joins the name parts the way the legacy screens print them
func (p Person) DisplayName() string {
	return strings.Join([]string{p.PaternalName, p.MaternalName, p.GivenName}, " ")
}
