package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/pkg/pagination"

	"github.com/shopspring/decimal"
)

// UpdateParameterRequest patches a parameter row; nil fields are left untouched
type UpdateParameterRequest struct {
	Type     *string          `json:"par_tipopara" binding:"omitempty,min=1,max=10"`
	EntityID *int64           `json:"par_idenpara"`
	ModuleID *int64           `json:"par_idmodulo"`
	Descrip1 *string          `json:"par_descrip1" binding:"omitempty,max=255"`
	Descrip2 *string          `json:"par_descrip2" binding:"omitempty,max=255"`
	Descrip3 *string          `json:"par_descrip3" binding:"omitempty,max=255"`
	Descrip4 *string          `json:"par_descrip4" binding:"omitempty,max=255"`
	Descrip5 *string          `json:"par_descrip5" binding:"omitempty,max=255"`
	StatusID *int64           `json:"par_idstatus"`
	Amount1  *decimal.Decimal `json:"par_importe1"`
	Amount2  *decimal.Decimal `json:"par_importe2"`
	Amount3  *decimal.Decimal `json:"par_importe3"`
	Amount4  *decimal.Decimal `json:"par_importe4"`
	Amount5  *decimal.Decimal `json:"par_importe5"`
	Date1    *string          `json:"par_fecha1"`
	Date2    *string          `json:"par_fecha2"`
	Date3    *string          `json:"par_fecha3"`
	Time1    *string          `json:"par_hora1" binding:"omitempty,datetime=15:04:05"`
	Time2    *string          `json:"par_hora2" binding:"omitempty,datetime=15:04:05"`
	Time3    *string          `json:"par_hora3" binding:"omitempty,datetime=15:04:05"`
	UserID   *int64           `json:"par_idcveusu"`
}

type ParameterService interface {
	List(ctx context.Context, filter repository.ParameterFilter, page, perPage int) ([]model.Parameter, int64, error)
	Create(ctx context.Context, req ParameterDraft) (*model.Parameter, error)
	Update(ctx context.Context, id int64, req UpdateParameterRequest) (*model.Parameter, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type parameterService struct {
	parameterRepo repository.ParameterRepository
	txManager     repository.TransactionManager
	now           func() time.Time
}

func NewParameterService(parameterRepo repository.ParameterRepository, txManager repository.TransactionManager) ParameterService {
	return &parameterService{
		parameterRepo: parameterRepo,
		txManager:     txManager,
		now:           time.Now,
	}
}

var parameterOrderColumns = map[string]bool{
	repository.ParameterOrderID:       true,
	repository.ParameterOrderDescrip1: true,
	repository.ParameterOrderEntity:   true,
}

func (s *parameterService) List(ctx context.Context, filter repository.ParameterFilter, page, perPage int) ([]model.Parameter, int64, error) {
	for _, o := range filter.OrderBy {
		if !parameterOrderColumns[o.Column] {
			return nil, 0, invalidf("cannot order parameters by %q", o.Column)
		}
	}

	p := pagination.New(page, perPage)
	rows, total, err := s.parameterRepo.List(ctx, filter, p.Offset, p.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list parameters: %w", err)
	}
	return rows, total, nil
}

func (s *parameterService) Create(ctx context.Context, req ParameterDraft) (*model.Parameter, error) {
	req.Type = strings.TrimSpace(req.Type)
	if req.Type == "" {
		return nil, invalidf("par_tipopara is required")
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	rows, err := buildParameters([]ParameterDraft{req}, s.now())
	if err != nil {
		return nil, err
	}
	p := rows[0]
	if err := s.parameterRepo.Create(ctx, &p); err != nil {
		return nil, fmt.Errorf("failed to create parameter: %w", err)
	}
	return &p, nil
}

func (s *parameterService) Update(ctx context.Context, id int64, req UpdateParameterRequest) (*model.Parameter, error) {
	req.Type = trimmed(req.Type)
	req.Descrip1 = trimmed(req.Descrip1)
	req.Descrip2 = trimmed(req.Descrip2)
	req.Descrip3 = trimmed(req.Descrip3)
	req.Descrip4 = trimmed(req.Descrip4)
	req.Descrip5 = trimmed(req.Descrip5)
	req.Time1 = trimmed(req.Time1)
	req.Time2 = trimmed(req.Time2)
	req.Time3 = trimmed(req.Time3)
	if req.Type != nil && *req.Type == "" {
		return nil, invalidf("par_tipopara must not be blank")
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	setString(fields, "par_tipopara", req.Type)
	setString(fields, "par_descrip1", req.Descrip1)
	setString(fields, "par_descrip2", req.Descrip2)
	setString(fields, "par_descrip3", req.Descrip3)
	setString(fields, "par_descrip4", req.Descrip4)
	setString(fields, "par_descrip5", req.Descrip5)
	setString(fields, "par_hora1", req.Time1)
	setString(fields, "par_hora2", req.Time2)
	setString(fields, "par_hora3", req.Time3)
	for column, v := range map[string]*int64{
		"par_idenpara": req.EntityID,
		"par_idmodulo": req.ModuleID,
		"par_idstatus": req.StatusID,
		"par_idcveusu": req.UserID,
	} {
		if v != nil {
			fields[column] = *v
		}
	}
	for column, v := range map[string]*decimal.Decimal{
		"par_importe1": req.Amount1,
		"par_importe2": req.Amount2,
		"par_importe3": req.Amount3,
		"par_importe4": req.Amount4,
		"par_importe5": req.Amount5,
	} {
		if v != nil {
			fields[column] = *v
		}
	}
	for column, v := range map[string]*string{
		"par_fecha1": req.Date1,
		"par_fecha2": req.Date2,
		"par_fecha3": req.Date3,
	} {
		d, err := parseDate(column, v)
		if err != nil {
			return nil, err
		}
		if d != nil {
			fields[column] = *d
		}
	}

	now := s.now()
	fields["par_fechope"] = dateOnly(now)
	fields["par_horaope"] = now.Format(timeLayout)

	var updated *model.Parameter
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.parameterRepo.Update(txCtx, id, fields)
		if err != nil {
			return fmt.Errorf("failed to update parameter: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		updated, err = s.parameterRepo.FindByID(txCtx, id)
		return notFound(err)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *parameterService) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := s.parameterRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete parameter: %w", err)
	}
	return n > 0, nil
}
