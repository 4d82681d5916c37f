package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Assignment is a warehouse permission held by a person (legacy table par_admalm).
// The business key is (owner, warehouse); one row exists per movement type.
type Assignment struct {
	OwnerID        decimal.Decimal `gorm:"column:adm_idpersona;type:numeric(12,0);primaryKey;index:idx_admalm_owner_profile,priority:1" json:"adm_idpersona"`
	Warehouse      string          `gorm:"column:adm_almacen;type:varchar(10);primaryKey" json:"adm_almacen"`
	MovementType   string          `gorm:"column:adm_tmov;type:varchar(10);primaryKey" json:"adm_tmov"`
	Status         string          `gorm:"column:adm_status;type:varchar(2)" json:"adm_status"`
	UpdatedOn      *time.Time      `gorm:"column:adm_fechaact;type:date" json:"adm_fechaact"`
	OperatorKey    string          `gorm:"column:adm_cveusu;type:varchar(20)" json:"adm_cveusu"`
	OperatedOn     *time.Time      `gorm:"column:adm_fechope;type:date" json:"adm_fechope"`
	IsDefault      bool            `gorm:"column:adm_almdefault" json:"adm_almdefault"`
	EmitterRegion  *int            `gorm:"column:adm_edorepemi" json:"adm_edorepemi"`
	EmitterUnit    string          `gorm:"column:adm_uninegemi;type:varchar(10)" json:"adm_uninegemi"`
	ProfileID      int             `gorm:"column:adm_perfil;index:idx_admalm_owner_profile,priority:2" json:"adm_perfil"`
	ReceiverRegion *int            `gorm:"column:adm_edoreprec" json:"adm_edoreprec"`
	ReceiverUnit   string          `gorm:"column:adm_uninegrec;type:varchar(10)" json:"adm_uninegrec"`
	ReceivingWH    string          `gorm:"column:adm_almrecept;type:varchar(10)" json:"adm_almrecept"`
	PurchaseOrder  string          `gorm:"column:adm_ordencompra;type:varchar(1)" json:"adm_ordencompra"`
}

func (Assignment) TableName() string {
	return "par_admalm"
}

// AssignmentKey identifies a single assignment row
type AssignmentKey struct {
	OwnerID      decimal.Decimal
	Warehouse    string
	MovementType string
}
