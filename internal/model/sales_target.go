package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesTarget is a seller's yearly objective header (legacy table par_objetivos)
type SalesTarget struct {
	Year         decimal.Decimal  `gorm:"column:obm_ano;type:numeric(4,0);primaryKey" json:"obm_ano"`
	SellerID     decimal.Decimal  `gorm:"column:obm_vendedor;type:numeric(12,0);primaryKey" json:"obm_vendedor"`
	Salary       *decimal.Decimal `gorm:"column:obm_sueldo;type:numeric(18,2)" json:"obm_sueldo"`
	OperatedOn   *time.Time       `gorm:"column:obm_fechope;type:date" json:"obm_fechope"`
	OperatedTime string           `gorm:"column:obm_horaope;type:varchar(8)" json:"obm_horaope"`
	OperatorKey  string           `gorm:"column:obm_cveusu;type:varchar(20)" json:"obm_cveusu"`
}

func (SalesTarget) TableName() string {
	return "par_objetivos"
}

type SalesTargetKey struct {
	Year     decimal.Decimal
	SellerID decimal.Decimal
}

func (k SalesTargetKey) String() string {
	return k.Year.String() + "-" + k.SellerID.String()
}

// SalesTargetDetail holds one month of a seller's objective (legacy table par_objetivosdet)
type SalesTargetDetail struct {
	Year         decimal.Decimal  `gorm:"column:obd_ano;type:numeric(4,0);primaryKey" json:"obd_ano"`
	SellerID     decimal.Decimal  `gorm:"column:obd_vendedor;type:numeric(12,0);primaryKey" json:"obd_vendedor"`
	Month        decimal.Decimal  `gorm:"column:obd_mes;type:numeric(2,0);primaryKey" json:"obd_mes"`
	Sales        *decimal.Decimal `gorm:"column:obd_venta;type:numeric(18,2)" json:"obd_venta"`
	Commission   *decimal.Decimal `gorm:"column:obd_comision;type:numeric(18,2)" json:"obd_comision"`
	OperatedOn   *time.Time       `gorm:"column:obd_fechope;type:date" json:"obd_fechope"`
	OperatedTime string           `gorm:"column:obd_horaope;type:varchar(8)" json:"obd_horaope"`
	OperatorKey  string           `gorm:"column:obd_cveusu;type:varchar(20)" json:"obd_cveusu"`
	SalesArea    string           `gorm:"column:obd_areavta;type:varchar(10)" json:"obd_areavta"`
}

func (SalesTargetDetail) TableName() string {
	return "par_objetivosdet"
}

type SalesTargetDetailKey struct {
	Year     decimal.Decimal
	SellerID decimal.Decimal
	Month    decimal.Decimal
}

func (k SalesTargetDetailKey) String() string {
	return k.Year.String() + "-" + k.SellerID.String() + "-" + k.Month.String()
}
