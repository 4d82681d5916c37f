package repository

import (
	"context"

	"github.com/VictorGlez97/almperms/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PersonFilter matches exact ids and status; Search matches any name part case-insensitively
type PersonFilter struct {
	ID     *decimal.Decimal
	Status *string
	TaxID  *string
	Search string
}

type PersonRepository interface {
	FindByID(ctx context.Context, id decimal.Decimal) (*model.Person, error)
	FindByIDs(ctx context.Context, ids []decimal.Decimal) (map[string]model.Person, error)
	List(ctx context.Context, filter PersonFilter, offset, limit int) ([]model.Person, int64, error)
}

type personRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) FindByID(ctx context.Context, id decimal.Decimal) (*model.Person, error) {
	var p model.Person
	if err := GetDB(ctx, r.db).First(&p, "per_idpersona = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByIDs loads persons keyed by their id's decimal string
func (r *personRepository) FindByIDs(ctx context.Context, ids []decimal.Decimal) (map[string]model.Person, error) {
	out := make(map[string]model.Person, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []model.Person
	if err := GetDB(ctx, r.db).Where("per_idpersona IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.ID.String()] = p
	}
	return out, nil
}

func (r *personRepository) List(ctx context.Context, filter PersonFilter, offset, limit int) ([]model.Person, int64, error) {
	var rows []model.Person
	var total int64

	db := GetDB(ctx, r.db).Model(&model.Person{})
	if filter.ID != nil {
		db = db.Where("per_idpersona = ?", *filter.ID)
	}
	if filter.Status != nil {
		db = db.Where("per_status = ?", *filter.Status)
	}
	if filter.TaxID != nil {
		db = db.Where("per_rfc = ?", *filter.TaxID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where("per_paterno ILIKE ? OR per_materno ILIKE ? OR per_nomrazon ILIKE ?", like, like, like)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Order("per_idpersona asc").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
