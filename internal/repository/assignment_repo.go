package repository

import (
	"context"
	"time"

	"github.com/VictorGlez97/almperms/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssignmentFilter holds optional exact-match filters; nil fields are ignored.
// Search matches the warehouse code case-insensitively.
type AssignmentFilter struct {
	Search         string
	OwnerID        *decimal.Decimal
	Warehouse      *string
	MovementType   *string
	Status         *string
	UpdatedOn      *time.Time
	OperatorKey    *string
	OperatedOn     *time.Time
	IsDefault      *bool
	EmitterRegion  *int
	EmitterUnit    *string
	ProfileID      *int
	ReceiverRegion *int
	ReceiverUnit   *string
	ReceivingWH    *string
	PurchaseOrder  *string
}

// AssignmentScope selects the rows a permission replacement clears.
// A nil MovementTypes matches every movement type; ReceiverUnit narrows when set.
type AssignmentScope struct {
	OwnerID       decimal.Decimal
	Warehouse     string
	ProfileID     int
	MovementTypes []string
	ReceiverUnit  *string
}

type AssignmentRepository interface {
	Create(ctx context.Context, a *model.Assignment) error
	Update(ctx context.Context, key model.AssignmentKey, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, key model.AssignmentKey) (int64, error)
	FindByKey(ctx context.Context, key model.AssignmentKey) (*model.Assignment, error)
	List(ctx context.Context, filter AssignmentFilter, offset, limit int) ([]model.Assignment, int64, error)
	DeleteScope(ctx context.Context, scope AssignmentScope) (int64, error)
	DemoteDefaults(ctx context.Context, ownerID decimal.Decimal, profileID int, keepWarehouse string) (int64, error)
	ListDistinctOwners(ctx context.Context, profileID *int, status *string, warehouses []string, offset, limit int) ([]model.Assignment, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, a *model.Assignment) error {
	return GetDB(ctx, r.db).Create(a).Error
}

func (r *assignmentRepository) Update(ctx context.Context, key model.AssignmentKey, fields map[string]interface{}) (int64, error) {
	res := byKey(GetDB(ctx, r.db).Model(&model.Assignment{}), key).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *assignmentRepository) Delete(ctx context.Context, key model.AssignmentKey) (int64, error) {
	res := byKey(GetDB(ctx, r.db), key).Delete(&model.Assignment{})
	return res.RowsAffected, res.Error
}

func (r *assignmentRepository) FindByKey(ctx context.Context, key model.AssignmentKey) (*model.Assignment, error) {
	var a model.Assignment
	if err := byKey(GetDB(ctx, r.db), key).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepository) List(ctx context.Context, filter AssignmentFilter, offset, limit int) ([]model.Assignment, int64, error) {
	var rows []model.Assignment
	var total int64

	db := applyAssignmentFilter(GetDB(ctx, r.db).Model(&model.Assignment{}), filter)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("adm_idpersona asc, adm_almacen asc, adm_tmov asc").
		Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *assignmentRepository) DeleteScope(ctx context.Context, scope AssignmentScope) (int64, error) {
	db := GetDB(ctx, r.db).
		Where("adm_idpersona = ? AND adm_almacen = ? AND adm_perfil = ?", scope.OwnerID, scope.Warehouse, scope.ProfileID)
	if scope.MovementTypes != nil {
		db = db.Where("adm_tmov IN ?", scope.MovementTypes)
	}
	if scope.ReceiverUnit != nil {
		db = db.Where("adm_uninegrec = ?", *scope.ReceiverUnit)
	}
	res := db.Delete(&model.Assignment{})
	return res.RowsAffected, res.Error
}

func (r *assignmentRepository) DemoteDefaults(ctx context.Context, ownerID decimal.Decimal, profileID int, keepWarehouse string) (int64, error) {
	res := GetDB(ctx, r.db).Model(&model.Assignment{}).
		Where("adm_idpersona = ? AND adm_perfil = ? AND adm_almacen <> ?", ownerID, profileID, keepWarehouse).
		Update("adm_almdefault", false)
	return res.RowsAffected, res.Error
}

// ListDistinctOwners returns one assignment per owner (postgres DISTINCT ON)
func (r *assignmentRepository) ListDistinctOwners(ctx context.Context, profileID *int, status *string, warehouses []string, offset, limit int) ([]model.Assignment, error) {
	var rows []model.Assignment

	db := GetDB(ctx, r.db).Model(&model.Assignment{}).Select("DISTINCT ON (adm_idpersona) *")
	if profileID != nil {
		db = db.Where("adm_perfil = ?", *profileID)
	}
	if status != nil {
		db = db.Where("adm_status = ?", *status)
	}
	if warehouses != nil {
		db = db.Where("adm_almacen IN ?", warehouses)
	}

	if err := db.Order("adm_idpersona asc").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func byKey(db *gorm.DB, key model.AssignmentKey) *gorm.DB {
	return db.Where("adm_idpersona = ? AND adm_almacen = ? AND adm_tmov = ?", key.OwnerID, key.Warehouse, key.MovementType)
}

func applyAssignmentFilter(db *gorm.DB, f AssignmentFilter) *gorm.DB {
	if f.Search != "" {
		db = db.Where("adm_almacen ILIKE ?", "%"+f.Search+"%")
	}
	if f.OwnerID != nil {
		db = db.Where("adm_idpersona = ?", *f.OwnerID)
	}
	if f.Warehouse != nil {
		db = db.Where("adm_almacen = ?", *f.Warehouse)
	}
	if f.MovementType != nil {
		db = db.Where("adm_tmov = ?", *f.MovementType)
	}
	if f.Status != nil {
		db = db.Where("adm_status = ?", *f.Status)
	}
	if f.UpdatedOn != nil {
		db = db.Where("adm_fechaact = ?", *f.UpdatedOn)
	}
	if f.OperatorKey != nil {
		db = db.Where("adm_cveusu = ?", *f.OperatorKey)
	}
	if f.OperatedOn != nil {
		db = db.Where("adm_fechope = ?", *f.OperatedOn)
	}
	if f.IsDefault != nil {
		db = db.Where("adm_almdefault = ?", *f.IsDefault)
	}
	if f.EmitterRegion != nil {
		db = db.Where("adm_edorepemi = ?", *f.EmitterRegion)
	}
	if f.EmitterUnit != nil {
		db = db.Where("adm_uninegemi = ?", *f.EmitterUnit)
	}
	if f.ProfileID != nil {
		db = db.Where("adm_perfil = ?", *f.ProfileID)
	}
	if f.ReceiverRegion != nil {
		db = db.Where("adm_edoreprec = ?", *f.ReceiverRegion)
	}
	if f.ReceiverUnit != nil {
		db = db.Where("adm_uninegrec = ?", *f.ReceiverUnit)
	}
	if f.ReceivingWH != nil {
		db = db.Where("adm_almrecept = ?", *f.ReceivingWH)
	}
	if f.PurchaseOrder != nil {
		db = db.Where("adm_ordencompra = ?", *f.PurchaseOrder)
	}
	return db
}
