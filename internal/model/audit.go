package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ActionApplyPermissions         = "APPLY_PERMISSIONS"
	ActionApplyTransferPermissions = "APPLY_TRANSFER_PERMISSIONS"
)

// AuditEntry tracks who changed which owner/warehouse permissions and when (legacy table bit_bitacora)
type AuditEntry struct {
	ID           uuid.UUID        `gorm:"column:bit_id;type:uuid;primaryKey" json:"bit_id"`
	ParameterID  *int64           `gorm:"column:par_idparameter;index" json:"par_idparameter"`
	OwnerID      *decimal.Decimal `gorm:"column:bit_adm_idpersona;type:numeric(12,0);index" json:"bit_adm_idpersona"`
	Warehouse    string           `gorm:"column:bit_adm_almacen;type:varchar(10)" json:"bit_adm_almacen"`
	Observations string           `gorm:"column:bit_observaciones;type:text" json:"bit_observaciones"`
	OperatorKey  string           `gorm:"column:bit_cveusu;type:varchar(20)" json:"bit_cveusu"`
	OperatedOn   *time.Time       `gorm:"column:bit_fechaope;type:date;index" json:"bit_fechaope"`
	OperatedTime string           `gorm:"column:bit_horaope;type:varchar(8)" json:"bit_horaope"`
}

func (AuditEntry) TableName() string {
	return "bit_bitacora"
}
