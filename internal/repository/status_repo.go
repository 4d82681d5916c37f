package repository

import (
	"context"

	"github.com/VictorGlez97/almperms/internal/model"

	"gorm.io/gorm"
)

type StatusFilter struct {
	ID       *int64
	Code     *string
	ModuleID *int64
}

type StatusRepository interface {
	List(ctx context.Context, filter StatusFilter, offset, limit int) ([]model.Status, int64, error)
}

type statusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) List(ctx context.Context, filter StatusFilter, offset, limit int) ([]model.Status, int64, error) {
	var rows []model.Status
	var total int64

	db := GetDB(ctx, r.db).Model(&model.Status{})
	if filter.ID != nil {
		db = db.Where("cast_idstatus = ?", *filter.ID)
	}
	if filter.Code != nil {
		db = db.Where("cast_cvstatus = ?", *filter.Code)
	}
	if filter.ModuleID != nil {
		db = db.Where("cast_idmodulo = ?", *filter.ModuleID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Order("cast_idstatus asc").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
