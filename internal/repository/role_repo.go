package repository

import (
	"context"
	"time"

	"github.com/VictorGlez97/almperms/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sortable person columns for role lookups
const (
	PersonOrderID       = "per_idpersona"
	PersonOrderGiven    = "per_nomrazon"
	PersonOrderPaternal = "per_paterno"
	PersonOrderMaternal = "per_materno"
)

type PersonOrder struct {
	Column string
	Desc   bool
}

type RoleFilter struct {
	Search       string
	ID           *int64
	PersonID     *decimal.Decimal
	Code         *string
	UserID       *int64
	OperatedOn   *time.Time
	BranchRoleID *int64
	StatusID     *int64
}

// RoleScope narrows roles to codes published as parameters of ParamType.
// A role code matches a parameter when it equals the parameter's entity id as text.
// ParamStatusCode compares the parameter's cpp_status code; Codes narrows the role codes.
type RoleScope struct {
	ParamType       *string
	Codes           []string
	ParamStatusCode *string
	StatusID        *int64
	PersonID        *decimal.Decimal
}

type RoleRepository interface {
	List(ctx context.Context, filter RoleFilter, offset, limit int) ([]model.Role, int64, error)
	ListScoped(ctx context.Context, scope RoleScope, offset, limit int) ([]model.Role, int64, error)
	PeopleWithRoles(ctx context.Context, scope RoleScope, order []PersonOrder, offset, limit int) ([]model.Person, int64, error)
	PeopleByRole(ctx context.Context, code *string, offset, limit int) ([]model.Person, int64, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) List(ctx context.Context, filter RoleFilter, offset, limit int) ([]model.Role, int64, error) {
	var rows []model.Role
	var total int64

	db := GetDB(ctx, r.db).Model(&model.Role{})
	if filter.Search != "" {
		db = db.Where("rol_idrol ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.ID != nil {
		db = db.Where("rol_idroles = ?", *filter.ID)
	}
	if filter.PersonID != nil {
		db = db.Where("rol_idpersona = ?", *filter.PersonID)
	}
	if filter.Code != nil {
		db = db.Where("rol_idrol = ?", *filter.Code)
	}
	if filter.UserID != nil {
		db = db.Where("rol_idcveusu = ?", *filter.UserID)
	}
	if filter.OperatedOn != nil {
		db = db.Where("rol_fechope = ?", *filter.OperatedOn)
	}
	if filter.BranchRoleID != nil {
		db = db.Where("rol_idrolsucursal = ?", *filter.BranchRoleID)
	}
	if filter.StatusID != nil {
		db = db.Where("rol_idrolestatus = ?", *filter.StatusID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Order("rol_idroles asc").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *roleRepository) ListScoped(ctx context.Context, scope RoleScope, offset, limit int) ([]model.Role, int64, error) {
	var rows []model.Role
	var total int64

	db := r.applyScope(ctx, GetDB(ctx, r.db).Model(&model.Role{}), scope)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Order("rol_idroles asc").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// PeopleWithRoles lists the persons holding at least one role inside scope
func (r *roleRepository) PeopleWithRoles(ctx context.Context, scope RoleScope, order []PersonOrder, offset, limit int) ([]model.Person, int64, error) {
	holders := r.applyScope(ctx, GetDB(ctx, r.db).Model(&model.Role{}).Select("rol_idpersona"), scope)

	db := GetDB(ctx, r.db).Model(&model.Person{}).Where("per_idpersona IN (?)", holders)
	return listPersons(db, order, offset, limit)
}

// PeopleByRole lists the persons holding code; a nil code matches any role
func (r *roleRepository) PeopleByRole(ctx context.Context, code *string, offset, limit int) ([]model.Person, int64, error) {
	holders := GetDB(ctx, r.db).Model(&model.Role{}).Select("rol_idpersona")
	if code != nil {
		holders = holders.Where("rol_idrol = ?", *code)
	}

	db := GetDB(ctx, r.db).Model(&model.Person{}).Where("per_idpersona IN (?)", holders)
	return listPersons(db, nil, offset, limit)
}

func (r *roleRepository) applyScope(ctx context.Context, db *gorm.DB, scope RoleScope) *gorm.DB {
	if scope.ParamType != nil {
		published := GetDB(ctx, r.db).Model(&model.Parameter{}).
			Select("CAST(pnc_parametr_pm.par_idenpara AS varchar)").
			Where("pnc_parametr_pm.par_tipopara = ?", *scope.ParamType)
		if scope.ParamStatusCode != nil {
			published = published.
				Joins("JOIN cpp_status ON cpp_status.cast_idstatus = pnc_parametr_pm.par_idstatus").
				Where("cpp_status.cast_cvstatus = ?", *scope.ParamStatusCode)
		}
		db = db.Where("rol_idrol IN (?)", published)
	}
	if scope.Codes != nil {
		db = db.Where("rol_idrol IN ?", scope.Codes)
	}
	if scope.StatusID != nil {
		db = db.Where("rol_idrolestatus = ?", *scope.StatusID)
	}
	if scope.PersonID != nil {
		db = db.Where("rol_idpersona = ?", *scope.PersonID)
	}
	return db
}

func listPersons(db *gorm.DB, order []PersonOrder, offset, limit int) ([]model.Person, int64, error) {
	var rows []model.Person
	var total int64

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if len(order) == 0 {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: PersonOrderID}})
	}
	for _, o := range order {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	if err := db.Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
