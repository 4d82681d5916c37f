package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Well-known parameter types (par_tipopara)
const (
	ParamTypeSalesPerms   = "VENRP"    // permission parameters written by the apply workflow
	ParamTypeWarehouse    = "SA"       // warehouse code -> description
	ParamTypeMovement     = "MP"       // movement type -> description
	ParamTypeProfile      = "PERFREFA" // permission profile -> description
	ParamTypeRegion       = "EQUIEDO"  // region code -> description
	ParamTypeBusinessUnit = "UNINEG"   // business unit (matched on descrip5) -> description
)

// Parameter is a generic key/value configuration row (legacy table pnc_parametr_pm).
// Its logical key is (Type, EntityID); EntityID points to an Identifier.
type Parameter struct {
	ID           int64            `gorm:"column:par_idparameter;primaryKey;autoIncrement" json:"par_idparameter"`
	Type         string           `gorm:"column:par_tipopara;type:varchar(10);not null;index:idx_parametr_type_entity,priority:1" json:"par_tipopara"`
	EntityID     int64            `gorm:"column:par_idenpara;not null;index:idx_parametr_type_entity,priority:2" json:"par_idenpara"`
	Entity       *Identifier      `gorm:"foreignKey:EntityID;references:ID" json:"-"`
	ModuleID     int64            `gorm:"column:par_idmodulo" json:"par_idmodulo"`
	Descrip1     string           `gorm:"column:par_descrip1;type:varchar(255)" json:"par_descrip1"`
	Descrip2     string           `gorm:"column:par_descrip2;type:varchar(255)" json:"par_descrip2"`
	Descrip3     string           `gorm:"column:par_descrip3;type:varchar(255)" json:"par_descrip3"`
	Descrip4     string           `gorm:"column:par_descrip4;type:varchar(255)" json:"par_descrip4"`
	Descrip5     string           `gorm:"column:par_descrip5;type:varchar(255)" json:"par_descrip5"`
	StatusID     int64            `gorm:"column:par_idstatus" json:"par_idstatus"`
	Amount1      *decimal.Decimal `gorm:"column:par_importe1;type:numeric(18,4)" json:"par_importe1"`
	Amount2      *decimal.Decimal `gorm:"column:par_importe2;type:numeric(18,4)" json:"par_importe2"`
	Amount3      *decimal.Decimal `gorm:"column:par_importe3;type:numeric(18,4)" json:"par_importe3"`
	Amount4      *decimal.Decimal `gorm:"column:par_importe4;type:numeric(18,4)" json:"par_importe4"`
	Amount5      *decimal.Decimal `gorm:"column:par_importe5;type:numeric(18,4)" json:"par_importe5"`
	Date1        *time.Time       `gorm:"column:par_fecha1;type:date" json:"par_fecha1"`
	Date2        *time.Time       `gorm:"column:par_fecha2;type:date" json:"par_fecha2"`
	Date3        *time.Time       `gorm:"column:par_fecha3;type:date" json:"par_fecha3"`
	Time1        string           `gorm:"column:par_hora1;type:varchar(8)" json:"par_hora1"`
	Time2        string           `gorm:"column:par_hora2;type:varchar(8)" json:"par_hora2"`
	Time3        string           `gorm:"column:par_hora3;type:varchar(8)" json:"par_hora3"`
	UserID       *int64           `gorm:"column:par_idcveusu" json:"par_idcveusu"`
	OperatedOn   *time.Time       `gorm:"column:par_fechope;type:date" json:"par_fechope"`
	OperatedTime string           `gorm:"column:par_horaope;type:varchar(8)" json:"par_horaope"`
}

func (Parameter) TableName() string {
	return "pnc_parametr_pm"
}

// Identifier maps a numeric id to a symbolic code (legacy table cpp_idenpara)
type Identifier struct {
	ID         int64      `gorm:"column:caip_idenpara;primaryKey;autoIncrement" json:"caip_idenpara"`
	Code       string     `gorm:"column:caip_enpara;type:varchar(20);not null;index" json:"caip_enpara"`
	StatusID   int64      `gorm:"column:caip_idstatus" json:"caip_idstatus"`
	UserID     *int64     `gorm:"column:caip_idcveusu" json:"caip_idcveusu"`
	OperatedAt *time.Time `gorm:"column:caip_fechope" json:"caip_fechope"`
}

func (Identifier) TableName() string {
	return "cpp_idenpara"
}
