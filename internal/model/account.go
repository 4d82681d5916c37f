package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatusCodeActive is the cast_cvstatus code of live catalog rows
const StatusCodeActive = "A"

// Status is a row of the shared status catalog (legacy table cpp_status)
type Status struct {
	ID           int64            `gorm:"column:cast_idstatus;primaryKey;autoIncrement" json:"cast_idstatus"`
	Code         string           `gorm:"column:cast_cvstatus;type:varchar(2);index" json:"cast_cvstatus"`
	ModuleID     int64            `gorm:"column:cast_idmodulo" json:"cast_idmodulo"`
	Description  string           `gorm:"column:cast_status;type:varchar(60)" json:"cast_status"`
	Descrip2     string           `gorm:"column:cast_descrip2;type:varchar(255)" json:"cast_descrip2"`
	Descrip3     string           `gorm:"column:cast_descrip3;type:varchar(255)" json:"cast_descrip3"`
	Descrip4     string           `gorm:"column:cast_descrip4;type:varchar(255)" json:"cast_descrip4"`
	Descrip5     string           `gorm:"column:cast_descrip5;type:varchar(255)" json:"cast_descrip5"`
	ParentID     *int64           `gorm:"column:cast_idstatu" json:"cast_idstatu_id"`
	Amount1      *decimal.Decimal `gorm:"column:cast_importe1;type:numeric(18,4)" json:"cast_importe1"`
	Amount2      *decimal.Decimal `gorm:"column:cast_importe2;type:numeric(18,4)" json:"cast_importe2"`
	Date1        *time.Time       `gorm:"column:cast_fecha1;type:date" json:"cast_fecha1"`
	Date2        *time.Time       `gorm:"column:cast_fecha2;type:date" json:"cast_fecha2"`
	UserID       *int64           `gorm:"column:cast_idcveusu" json:"cast_idcveusu"`
	OperatedOn   *time.Time       `gorm:"column:cast_fechope;type:date" json:"cast_fechope"`
	OperatedTime string           `gorm:"column:cast_horaope;type:varchar(8)" json:"cast_horaope"`
}

func (Status) TableName() string {
	return "cpp_status"
}

// LegacyUser is a login of the older pnc_usuarios table, keyed by its login name
type LegacyUser struct {
	Login        string     `gorm:"column:usu_idusuari;type:varchar(20);primaryKey" json:"usu_idusuari"`
	PaternalName string     `gorm:"column:usu_apusuari;type:varchar(60)" json:"usu_apusuari"`
	MaternalName string     `gorm:"column:usu_amusuari;type:varchar(60)" json:"usu_amusuari"`
	GivenName    string     `gorm:"column:usu_nousuari;type:varchar(60)" json:"usu_nousuari"`
	Department   string     `gorm:"column:usu_depto;type:varchar(10)" json:"usu_depto"`
	AccessKey    string     `gorm:"column:usu_cveacces;type:varchar(60)" json:"-"`
	Status       string     `gorm:"column:usu_status;type:varchar(2)" json:"usu_status"`
	OperatorKey  string     `gorm:"column:usu_cveusu;type:varchar(20)" json:"usu_cveusu"`
	OperatedOn   *time.Time `gorm:"column:usu_fechope;type:date" json:"usu_fechope"`
	EmployeeKey  string     `gorm:"column:usu_cveemp;type:varchar(20)" json:"usu_cveemp"`
	Position     string     `gorm:"column:usu_puesto;type:varchar(10)" json:"usu_puesto"`
	Date         *time.Time `gorm:"column:usu_fecha;type:date" json:"usu_fecha"`
	Days         *int       `gorm:"column:usu_dias" json:"usu_dias"`
	PersonID     *int64     `gorm:"column:usu_idpersona" json:"usu_idpersona"`
	CompanyID    string     `gorm:"column:usu_idempresa;type:varchar(10)" json:"usu_idempresa"`
	MobileKey    string     `gorm:"column:usu_cvemovil;type:varchar(20)" json:"usu_cvemovil"`
}

func (LegacyUser) TableName() string {
	return "pnc_usuarios"
}

// User is a login of pnc_usuariospm; its status points into cpp_status
type User struct {
	ID           int64      `gorm:"column:usu_idusuario;primaryKey;autoIncrement" json:"usu_idusuario"`
	Login        string     `gorm:"column:usu_idusuari;type:varchar(20);uniqueIndex" json:"usu_idusuari"`
	PaternalName string     `gorm:"column:usu_apusuari;type:varchar(60)" json:"usu_apusuari"`
	MaternalName string     `gorm:"column:usu_amusuari;type:varchar(60)" json:"usu_amusuari"`
	GivenName    string     `gorm:"column:usu_nousuari;type:varchar(60)" json:"usu_nousuari"`
	DepartmentID *int64     `gorm:"column:usu_iddepto" json:"usu_iddepto_id"`
	StatusID     *int64     `gorm:"column:usu_idstatus" json:"usu_idstatus_id"`
	Status       *Status    `gorm:"foreignKey:StatusID;references:ID" json:"usu_idstatus,omitempty"`
	CreatedByID  *int64     `gorm:"column:usu_idcveusu" json:"usu_idcveusu_id"`
	PositionID   *int64     `gorm:"column:usu_idpuesto" json:"usu_idpuesto_id"`
	CompanyID    *int64     `gorm:"column:usu_idempresa" json:"usu_idempresa_id"`
	AccessKey    string     `gorm:"column:usu_cveacces;type:varchar(60)" json:"-"`
	OperatedOn   *time.Time `gorm:"column:usu_fechope;type:date" json:"usu_fechope"`
	EmployeeKey  string     `gorm:"column:usu_cveemp;type:varchar(20)" json:"usu_cveemp"`
	Date         *time.Time `gorm:"column:usu_fecha;type:date" json:"usu_fecha"`
	Days         *int       `gorm:"column:usu_dias" json:"usu_dias"`
	PersonID     *int64     `gorm:"column:usu_idpersona" json:"usu_idpersona"`
	MobileKey    string     `gorm:"column:usu_cvemovil;type:varchar(20)" json:"usu_cvemovil"`
}

func (User) TableName() string {
	return "pnc_usuariospm"
}

// FullName prints given name first, the order user pickers expect
func (u User) FullName() string {
	return strings.Join([]string{u.GivenName, u.PaternalName, u.MaternalName}, " ")
}

// Role grants a person a role code, optionally per branch (legacy table per_rolespm)
type Role struct {
	ID           int64           `gorm:"column:rol_idroles;primaryKey;autoIncrement" json:"rol_idroles"`
	PersonID     decimal.Decimal `gorm:"column:rol_idpersona;type:numeric(12,0);index" json:"rol_idpersona"`
	Code         string          `gorm:"column:rol_idrol;type:varchar(10);index" json:"rol_idrol"`
	UserID       *int64          `gorm:"column:rol_idcveusu" json:"rol_idcveusu"`
	OperatedOn   *time.Time      `gorm:"column:rol_fechope;type:date" json:"rol_fechope"`
	BranchRoleID *int64          `gorm:"column:rol_idrolsucursal" json:"rol_idrolsucursal"`
	StatusID     *int64          `gorm:"column:rol_idrolestatus" json:"rol_idrolestatus"`
}

func (Role) TableName() string {
	return "per_rolespm"
}
