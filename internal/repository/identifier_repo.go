package repository

import (
	"context"

	"github.com/VictorGlez97/almperms/internal/model"

	"gorm.io/gorm"
)

type IdentifierFilter struct {
	ID       *int64
	Code     *string
	StatusID *int64
	UserID   *int64
}

type IdentifierRepository interface {
	Create(ctx context.Context, i *model.Identifier) error
	List(ctx context.Context, filter IdentifierFilter, offset, limit int) ([]model.Identifier, int64, error)
}

type identifierRepository struct {
	db *gorm.DB
}

func NewIdentifierRepository(db *gorm.DB) IdentifierRepository {
	return &identifierRepository{db: db}
}

func (r *identifierRepository) Create(ctx context.Context, i *model.Identifier) error {
	return GetDB(ctx, r.db).Create(i).Error
}

func (r *identifierRepository) List(ctx context.Context, filter IdentifierFilter, offset, limit int) ([]model.Identifier, int64, error) {
	var rows []model.Identifier
	var total int64

	db := GetDB(ctx, r.db).Model(&model.Identifier{})
	if filter.ID != nil {
		db = db.Where("caip_idenpara = ?", *filter.ID)
	}
	if filter.Code != nil {
		db = db.Where("caip_enpara = ?", *filter.Code)
	}
	if filter.StatusID != nil {
		db = db.Where("caip_idstatus = ?", *filter.StatusID)
	}
	if filter.UserID != nil {
		db = db.Where("caip_idcveusu = ?", *filter.UserID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Order("caip_idenpara asc").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
