package repository

import (
	"context"

	"github.com/VictorGlez97/almperms/internal/model"

	"gorm.io/gorm"
)

// UserFilter matches pnc_usuariospm rows. StatusCode joins cpp_status and compares its code.
type UserFilter struct {
	ID           *int64
	Login        *string
	PaternalName *string
	MaternalName *string
	GivenName    *string
	DepartmentID *int64
	StatusID     *int64
	StatusCode   *string
	CreatedByID  *int64
	PositionID   *int64
	CompanyID    *int64
	EmployeeKey  *string
	Days         *int
	PersonID     *int64
	MobileKey    *string
}

type LegacyUserFilter struct {
	Login        *string
	PaternalName *string
	MaternalName *string
	GivenName    *string
	Department   *string
	Status       *string
	OperatorKey  *string
	EmployeeKey  *string
	Position     *string
	Days         *int
	PersonID     *int64
	CompanyID    *string
	MobileKey    *string
}

type UserRepository interface {
	List(ctx context.Context, filter UserFilter, offset, limit int) ([]model.User, int64, error)
	ListLegacy(ctx context.Context, filter LegacyUserFilter, offset, limit int) ([]model.LegacyUser, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context, filter UserFilter, offset, limit int) ([]model.User, int64, error) {
	var rows []model.User
	var total int64

	db := GetDB(ctx, r.db).Model(&model.User{})
	if filter.StatusCode != nil {
		db = db.Joins("JOIN cpp_status ON cpp_status.cast_idstatus = pnc_usuariospm.usu_idstatus").
			Where("cpp_status.cast_cvstatus = ?", *filter.StatusCode)
	}
	if filter.ID != nil {
		db = db.Where("pnc_usuariospm.usu_idusuario = ?", *filter.ID)
	}
	if filter.Login != nil {
		db = db.Where("pnc_usuariospm.usu_idusuari = ?", *filter.Login)
	}
	if filter.PaternalName != nil {
		db = db.Where("pnc_usuariospm.usu_apusuari ILIKE ?", "%"+*filter.PaternalName+"%")
	}
	if filter.MaternalName != nil {
		db = db.Where("pnc_usuariospm.usu_amusuari ILIKE ?", "%"+*filter.MaternalName+"%")
	}
	if filter.GivenName != nil {
		db = db.Where("pnc_usuariospm.usu_nousuari ILIKE ?", "%"+*filter.GivenName+"%")
	}
	if filter.DepartmentID != nil {
		db = db.Where("pnc_usuariospm.usu_iddepto = ?", *filter.DepartmentID)
	}
	if filter.StatusID != nil {
		db = db.Where("pnc_usuariospm.usu_idstatus = ?", *filter.StatusID)
	}
	if filter.CreatedByID != nil {
		db = db.Where("pnc_usuariospm.usu_idcveusu = ?", *filter.CreatedByID)
	}
	if filter.PositionID != nil {
		db = db.Where("pnc_usuariospm.usu_idpuesto = ?", *filter.PositionID)
	}
	if filter.CompanyID != nil {
		db = db.Where("pnc_usuariospm.usu_idempresa = ?", *filter.CompanyID)
	}
	if filter.EmployeeKey != nil {
		db = db.Where("pnc_usuariospm.usu_cveemp = ?", *filter.EmployeeKey)
	}
	if filter.Days != nil {
		db = db.Where("pnc_usuariospm.usu_dias = ?", *filter.Days)
	}
	if filter.PersonID != nil {
		db = db.Where("pnc_usuariospm.usu_idpersona = ?", *filter.PersonID)
	}
	if filter.MobileKey != nil {
		db = db.Where("pnc_usuariospm.usu_cvemovil = ?", *filter.MobileKey)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Preload("Status").Order("pnc_usuariospm.usu_idusuario asc").
		Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *userRepository) ListLegacy(ctx context.Context, filter LegacyUserFilter, offset, limit int) ([]model.LegacyUser, int64, error) {
	var rows []model.LegacyUser
	var total int64

	db := GetDB(ctx, r.db).Model(&model.LegacyUser{})
	if filter.Login != nil {
		db = db.Where("usu_idusuari = ?", *filter.Login)
	}
	if filter.PaternalName != nil {
		db = db.Where("usu_apusuari ILIKE ?", "%"+*filter.PaternalName+"%")
	}
	if filter.MaternalName != nil {
		db = db.Where("usu_amusuari ILIKE ?", "%"+*filter.MaternalName+"%")
	}
	if filter.GivenName != nil {
		db = db.Where("usu_nousuari ILIKE ?", "%"+*filter.GivenName+"%")
	}
	if filter.Department != nil {
		db = db.Where("usu_depto = ?", *filter.Department)
	}
	if filter.Status != nil {
		db = db.Where("usu_status = ?", *filter.Status)
	}
	if filter.OperatorKey != nil {
		db = db.Where("usu_cveusu = ?", *filter.OperatorKey)
	}
	if filter.EmployeeKey != nil {
		db = db.Where("usu_cveemp = ?", *filter.EmployeeKey)
	}
	if filter.Position != nil {
		db = db.Where("usu_puesto = ?", *filter.Position)
	}
	if filter.Days != nil {
		db = db.Where("usu_dias = ?", *filter.Days)
	}
	if filter.PersonID != nil {
		db = db.Where("usu_idpersona = ?", *filter.PersonID)
	}
	if filter.CompanyID != nil {
		db = db.Where("usu_idempresa = ?", *filter.CompanyID)
	}
	if filter.MobileKey != nil {
		db = db.Where("usu_cvemovil = ?", *filter.MobileKey)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Order("usu_idusuari asc").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
