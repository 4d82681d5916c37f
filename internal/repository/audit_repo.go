package repository

import (
	"context"
	"time"

	"github.com/VictorGlez97/almperms/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AuditFilter narrows the audit log; Observations is a substring match
type AuditFilter struct {
	ID           *uuid.UUID
	ParameterID  *int64
	OwnerID      *decimal.Decimal
	Warehouse    *string
	Observations *string
	OperatorKey  *string
	OperatedOn   *time.Time
}

type AuditRepository interface {
	Log(ctx context.Context, entry *model.AuditEntry) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.AuditEntry, error)
	List(ctx context.Context, filter AuditFilter, offset, limit int) ([]model.AuditEntry, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Log(ctx context.Context, entry *model.AuditEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return GetDB(ctx, r.db).Create(entry).Error
}

func (r *auditRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	res := GetDB(ctx, r.db).Model(&model.AuditEntry{}).Where("bit_id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *auditRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := GetDB(ctx, r.db).Where("bit_id = ?", id).Delete(&model.AuditEntry{})
	return res.RowsAffected, res.Error
}

func (r *auditRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AuditEntry, error) {
	var e model.AuditEntry
	if err := GetDB(ctx, r.db).First(&e, "bit_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *auditRepository) List(ctx context.Context, filter AuditFilter, offset, limit int) ([]model.AuditEntry, int64, error) {
	var logs []model.AuditEntry
	var total int64

	db := GetDB(ctx, r.db).Model(&model.AuditEntry{})
	if filter.ID != nil {
		db = db.Where("bit_id = ?", *filter.ID)
	}
	if filter.ParameterID != nil {
		db = db.Where("par_idparameter = ?", *filter.ParameterID)
	}
	if filter.OwnerID != nil {
		db = db.Where("bit_adm_idpersona = ?", *filter.OwnerID)
	}
	if filter.Warehouse != nil {
		db = db.Where("bit_adm_almacen = ?", *filter.Warehouse)
	}
	if filter.Observations != nil {
		db = db.Where("bit_observaciones ILIKE ?", "%"+*filter.Observations+"%")
	}
	if filter.OperatorKey != nil {
		db = db.Where("bit_cveusu = ?", *filter.OperatorKey)
	}
	if filter.OperatedOn != nil {
		db = db.Where("bit_fechaope = ?", *filter.OperatedOn)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Order("bit_fechaope desc, bit_horaope desc").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
