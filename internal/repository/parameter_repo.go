package repository

import (
	"context"
	"time"

	"github.com/VictorGlez97/almperms/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sortable parameter columns
const (
	ParameterOrderID       = "par_idparameter"
	ParameterOrderDescrip1 = "par_descrip1"
	ParameterOrderEntity   = "par_idenpara"
)

type ParameterOrder struct {
	Column string
	Desc   bool
}

// ParameterFilter holds the optional parameter list filters. Slice filters apply when non-nil,
// so an empty IN list matches nothing.
type ParameterFilter struct {
	ID            *int64
	Type          *string
	EntityID      *int64
	EntityIDIn    []int64
	EntityIDNot   *int64
	ModuleID      *int64
	Descrip1      *string
	Descrip2      *string
	Descrip2In    []string
	Descrip2NotIn []string
	Descrip3      *string
	Descrip3In    []string
	Descrip4      *string
	Descrip5      *string
	StatusID      *int64
	Amount1       *decimal.Decimal
	Amount1Not    *decimal.Decimal
	UserID        *int64
	OperatedOn    *time.Time
	OrderBy       []ParameterOrder
}

type ParameterRepository interface {
	Create(ctx context.Context, p *model.Parameter) error
	Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Parameter, error)
	List(ctx context.Context, filter ParameterFilter, offset, limit int) ([]model.Parameter, int64, error)
	DeleteByDescription(ctx context.Context, paramType, descrip1 string) (int64, error)
	ResolveEntityCodes(ctx context.Context, paramType string, descrip2 []string) ([]string, error)
	DescribeEntity(ctx context.Context, paramType, code string) (string, error)
	DescribeBySlot5(ctx context.Context, paramType, value string) (string, error)
}

type parameterRepository struct {
	db *gorm.DB
}

func NewParameterRepository(db *gorm.DB) ParameterRepository {
	return &parameterRepository{db: db}
}

func (r *parameterRepository) Create(ctx context.Context, p *model.Parameter) error {
	return GetDB(ctx, r.db).Create(p).Error
}

func (r *parameterRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	res := GetDB(ctx, r.db).Model(&model.Parameter{}).Where("par_idparameter = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *parameterRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res := GetDB(ctx, r.db).Where("par_idparameter = ?", id).Delete(&model.Parameter{})
	return res.RowsAffected, res.Error
}

func (r *parameterRepository) FindByID(ctx context.Context, id int64) (*model.Parameter, error) {
	var p model.Parameter
	if err := GetDB(ctx, r.db).Preload("Entity").First(&p, "par_idparameter = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *parameterRepository) List(ctx context.Context, filter ParameterFilter, offset, limit int) ([]model.Parameter, int64, error) {
	var rows []model.Parameter
	var total int64

	db := applyParameterFilter(GetDB(ctx, r.db).Model(&model.Parameter{}), filter)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if len(filter.OrderBy) == 0 {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: ParameterOrderID}})
	}
	for _, o := range filter.OrderBy {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}

	if err := db.Preload("Entity").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *parameterRepository) DeleteByDescription(ctx context.Context, paramType, descrip1 string) (int64, error) {
	res := GetDB(ctx, r.db).
		Where("par_tipopara = ? AND par_descrip1 = ?", paramType, descrip1).
		Delete(&model.Parameter{})
	return res.RowsAffected, res.Error
}

// ResolveEntityCodes returns the identifier codes of every parameter of paramType whose
// second description is in descrip2.
func (r *parameterRepository) ResolveEntityCodes(ctx context.Context, paramType string, descrip2 []string) ([]string, error) {
	var codes []string
	err := GetDB(ctx, r.db).Model(&model.Parameter{}).
		Joins("JOIN cpp_idenpara ON cpp_idenpara.caip_idenpara = pnc_parametr_pm.par_idenpara").
		Where("pnc_parametr_pm.par_tipopara = ? AND pnc_parametr_pm.par_descrip2 IN ?", paramType, descrip2).
		Pluck("cpp_idenpara.caip_enpara", &codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// DescribeEntity returns the first description of the parameter of paramType whose identifier
// code is code, or "" when there is none.
func (r *parameterRepository) DescribeEntity(ctx context.Context, paramType, code string) (string, error) {
	var descs []string
	err := GetDB(ctx, r.db).Model(&model.Parameter{}).
		Joins("JOIN cpp_idenpara ON cpp_idenpara.caip_idenpara = pnc_parametr_pm.par_idenpara").
		Where("pnc_parametr_pm.par_tipopara = ? AND cpp_idenpara.caip_enpara = ?", paramType, code).
		Order("pnc_parametr_pm.par_idparameter").
		Limit(1).
		Pluck("pnc_parametr_pm.par_descrip1", &descs).Error
	if err != nil || len(descs) == 0 {
		return "", err
	}
	return descs[0], nil
}

func (r *parameterRepository) DescribeBySlot5(ctx context.Context, paramType, value string) (string, error) {
	var descs []string
	err := GetDB(ctx, r.db).Model(&model.Parameter{}).
		Where("par_tipopara = ? AND par_descrip5 = ?", paramType, value).
		Order("par_idparameter").
		Limit(1).
		Pluck("par_descrip1", &descs).Error
	if err != nil || len(descs) == 0 {
		return "", err
	}
	return descs[0], nil
}

func applyParameterFilter(db *gorm.DB, f ParameterFilter) *gorm.DB {
	if f.ID != nil {
		db = db.Where("par_idparameter = ?", *f.ID)
	}
	if f.Type != nil {
		db = db.Where("par_tipopara = ?", *f.Type)
	}
	if f.EntityID != nil {
		db = db.Where("par_idenpara = ?", *f.EntityID)
	}
	if f.EntityIDIn != nil {
		db = db.Where("par_idenpara IN ?", f.EntityIDIn)
	}
	if f.EntityIDNot != nil {
		db = db.Where("par_idenpara <> ?", *f.EntityIDNot)
	}
	if f.ModuleID != nil {
		db = db.Where("par_idmodulo = ?", *f.ModuleID)
	}
	if f.Descrip1 != nil {
		db = db.Where("par_descrip1 = ?", *f.Descrip1)
	}
	if f.Descrip2 != nil {
		db = db.Where("par_descrip2 = ?", *f.Descrip2)
	}
	if f.Descrip2In != nil {
		db = db.Where("par_descrip2 IN ?", f.Descrip2In)
	}
	if len(f.Descrip2NotIn) > 0 {
		db = db.Where("par_descrip2 NOT IN ?", f.Descrip2NotIn)
	}
	if f.Descrip3 != nil {
		db = db.Where("par_descrip3 = ?", *f.Descrip3)
	}
	if f.Descrip3In != nil {
		db = db.Where("par_descrip3 IN ?", f.Descrip3In)
	}
	if f.Descrip4 != nil {
		db = db.Where("par_descrip4 = ?", *f.Descrip4)
	}
	if f.Descrip5 != nil {
		db = db.Where("par_descrip5 = ?", *f.Descrip5)
	}
	if f.StatusID != nil {
		db = db.Where("par_idstatus = ?", *f.StatusID)
	}
	if f.Amount1 != nil {
		db = db.Where("par_importe1 = ?", *f.Amount1)
	}
	if f.Amount1Not != nil {
		db = db.Where("par_importe1 <> ?", *f.Amount1Not)
	}
	if f.UserID != nil {
		db = db.Where("par_idcveusu = ?", *f.UserID)
	}
	if f.OperatedOn != nil {
		db = db.Where("par_fechope = ?", *f.OperatedOn)
	}
	return db
}
