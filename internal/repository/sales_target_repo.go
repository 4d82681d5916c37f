package repository

import (
	"context"
	"time"

	"github.com/VictorGlez97/almperms/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SalesTargetFilter holds optional exact-match filters; Search matches the operator key
type SalesTargetFilter struct {
	Search       string
	Year         *decimal.Decimal
	SellerID     *decimal.Decimal
	Salary       *decimal.Decimal
	OperatedOn   *time.Time
	OperatedTime *string
	OperatorKey  *string
}

type SalesTargetDetailFilter struct {
	Search       string
	Year         *decimal.Decimal
	SellerID     *decimal.Decimal
	Month        *decimal.Decimal
	Sales        *decimal.Decimal
	Commission   *decimal.Decimal
	OperatedOn   *time.Time
	OperatedTime *string
	OperatorKey  *string
	SalesArea    *string
}

type SalesTargetRepository interface {
	Create(ctx context.Context, t *model.SalesTarget) error
	Upsert(ctx context.Context, t *model.SalesTarget) error
	Update(ctx context.Context, key model.SalesTargetKey, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, key model.SalesTargetKey) (int64, error)
	FindByKey(ctx context.Context, key model.SalesTargetKey) (*model.SalesTarget, error)
	List(ctx context.Context, filter SalesTargetFilter, offset, limit int) ([]model.SalesTarget, int64, error)
}

type SalesTargetDetailRepository interface {
	Create(ctx context.Context, d *model.SalesTargetDetail) error
	Update(ctx context.Context, key model.SalesTargetDetailKey, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, key model.SalesTargetDetailKey) (int64, error)
	DeleteByTarget(ctx context.Context, key model.SalesTargetKey) (int64, error)
	FindByKey(ctx context.Context, key model.SalesTargetDetailKey) (*model.SalesTargetDetail, error)
	List(ctx context.Context, filter SalesTargetDetailFilter, offset, limit int) ([]model.SalesTargetDetail, int64, error)
}

type salesTargetRepository struct {
	db *gorm.DB
}

func NewSalesTargetRepository(db *gorm.DB) SalesTargetRepository {
	return &salesTargetRepository{db: db}
}

func (r *salesTargetRepository) Create(ctx context.Context, t *model.SalesTarget) error {
	return GetDB(ctx, r.db).Create(t).Error
}

// Upsert inserts the header or overwrites its mutable columns when the key exists
func (r *salesTargetRepository) Upsert(ctx context.Context, t *model.SalesTarget) error {
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "obm_ano"}, {Name: "obm_vendedor"}},
		DoUpdates: clause.AssignmentColumns([]string{"obm_sueldo", "obm_fechope", "obm_horaope", "obm_cveusu"}),
	}).Create(t).Error
}

func (r *salesTargetRepository) Update(ctx context.Context, key model.SalesTargetKey, fields map[string]interface{}) (int64, error) {
	res := targetByKey(GetDB(ctx, r.db).Model(&model.SalesTarget{}), key).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *salesTargetRepository) Delete(ctx context.Context, key model.SalesTargetKey) (int64, error) {
	res := targetByKey(GetDB(ctx, r.db), key).Delete(&model.SalesTarget{})
	return res.RowsAffected, res.Error
}

func (r *salesTargetRepository) FindByKey(ctx context.Context, key model.SalesTargetKey) (*model.SalesTarget, error) {
	var t model.SalesTarget
	if err := targetByKey(GetDB(ctx, r.db), key).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *salesTargetRepository) List(ctx context.Context, filter SalesTargetFilter, offset, limit int) ([]model.SalesTarget, int64, error) {
	var rows []model.SalesTarget
	var total int64

	db := GetDB(ctx, r.db).Model(&model.SalesTarget{})
	if filter.Search != "" {
		db = db.Where("obm_cveusu ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Year != nil {
		db = db.Where("obm_ano = ?", *filter.Year)
	}
	if filter.SellerID != nil {
		db = db.Where("obm_vendedor = ?", *filter.SellerID)
	}
	if filter.Salary != nil {
		db = db.Where("obm_sueldo = ?", *filter.Salary)
	}
	if filter.OperatedOn != nil {
		db = db.Where("obm_fechope = ?", *filter.OperatedOn)
	}
	if filter.OperatedTime != nil {
		db = db.Where("obm_horaope = ?", *filter.OperatedTime)
	}
	if filter.OperatorKey != nil {
		db = db.Where("obm_cveusu = ?", *filter.OperatorKey)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Order("obm_ano desc, obm_vendedor asc").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

type salesTargetDetailRepository struct {
	db *gorm.DB
}

func NewSalesTargetDetailRepository(db *gorm.DB) SalesTargetDetailRepository {
	return &salesTargetDetailRepository{db: db}
}

func (r *salesTargetDetailRepository) Create(ctx context.Context, d *model.SalesTargetDetail) error {
	return GetDB(ctx, r.db).Create(d).Error
}

func (r *salesTargetDetailRepository) Update(ctx context.Context, key model.SalesTargetDetailKey, fields map[string]interface{}) (int64, error) {
	res := detailByKey(GetDB(ctx, r.db).Model(&model.SalesTargetDetail{}), key).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *salesTargetDetailRepository) Delete(ctx context.Context, key model.SalesTargetDetailKey) (int64, error) {
	res := detailByKey(GetDB(ctx, r.db), key).Delete(&model.SalesTargetDetail{})
	return res.RowsAffected, res.Error
}

// DeleteByTarget removes every month of one header
func (r *salesTargetDetailRepository) DeleteByTarget(ctx context.Context, key model.SalesTargetKey) (int64, error) {
	res := GetDB(ctx, r.db).
		Where("obd_ano = ? AND obd_vendedor = ?", key.Year, key.SellerID).
		Delete(&model.SalesTargetDetail{})
	return res.RowsAffected, res.Error
}

func (r *salesTargetDetailRepository) FindByKey(ctx context.Context, key model.SalesTargetDetailKey) (*model.SalesTargetDetail, error) {
	var d model.SalesTargetDetail
	if err := detailByKey(GetDB(ctx, r.db), key).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *salesTargetDetailRepository) List(ctx context.Context, filter SalesTargetDetailFilter, offset, limit int) ([]model.SalesTargetDetail, int64, error) {
	var rows []model.SalesTargetDetail
	var total int64

	db := GetDB(ctx, r.db).Model(&model.SalesTargetDetail{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where("obd_areavta ILIKE ? OR obd_cveusu ILIKE ?", like, like)
	}
	if filter.Year != nil {
		db = db.Where("obd_ano = ?", *filter.Year)
	}
	if filter.SellerID != nil {
		db = db.Where("obd_vendedor = ?", *filter.SellerID)
	}
	if filter.Month != nil {
		db = db.Where("obd_mes = ?", *filter.Month)
	}
	if filter.Sales != nil {
		db = db.Where("obd_venta = ?", *filter.Sales)
	}
	if filter.Commission != nil {
		db = db.Where("obd_comision = ?", *filter.Commission)
	}
	if filter.OperatedOn != nil {
		db = db.Where("obd_fechope = ?", *filter.OperatedOn)
	}
	if filter.OperatedTime != nil {
		db = db.Where("obd_horaope = ?", *filter.OperatedTime)
	}
	if filter.OperatorKey != nil {
		db = db.Where("obd_cveusu = ?", *filter.OperatorKey)
	}
	if filter.SalesArea != nil {
		db = db.Where("obd_areavta = ?", *filter.SalesArea)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Order("obd_ano desc, obd_vendedor asc, obd_mes asc").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func targetByKey(db *gorm.DB, key model.SalesTargetKey) *gorm.DB {
	return db.Where("obm_ano = ? AND obm_vendedor = ?", key.Year, key.SellerID)
}

func detailByKey(db *gorm.DB, key model.SalesTargetDetailKey) *gorm.DB {
	return db.Where("obd_ano = ? AND obd_vendedor = ? AND obd_mes = ?", key.Year, key.SellerID, key.Month)
}
