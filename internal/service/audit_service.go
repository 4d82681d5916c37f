package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/VictorGlez97/almperms/internal/auth"
	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAuditRequest struct {
	ParameterID  *int64           `json:"par_idparameter"`
	OwnerID      *decimal.Decimal `json:"bit_adm_idpersona"`
	Warehouse    string           `json:"bit_adm_almacen" binding:"max=10"`
	Observations string           `json:"bit_observaciones"`
	OperatorKey  string           `json:"bit_cveusu" binding:"max=20"`
}

// UpdateAuditRequest patches an audit entry; the operation date and time are kept
type UpdateAuditRequest struct {
	ParameterID  *int64           `json:"par_idparameter"`
	OwnerID      *decimal.Decimal `json:"bit_adm_idpersona"`
	Warehouse    *string          `json:"bit_adm_almacen" binding:"omitempty,max=10"`
	Observations *string          `json:"bit_observaciones"`
	OperatorKey  *string          `json:"bit_cveusu" binding:"omitempty,max=20"`
}

type AuditService interface {
	List(ctx context.Context, filter repository.AuditFilter, page, perPage int) ([]model.AuditEntry, int64, error)
	Create(ctx context.Context, req CreateAuditRequest) (*model.AuditEntry, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateAuditRequest) (*model.AuditEntry, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type auditService struct {
	auditRepo repository.AuditRepository
	now       func() time.Time
}

func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo, now: time.Now}
}

func (s *auditService) List(ctx context.Context, filter repository.AuditFilter, page, perPage int) ([]model.AuditEntry, int64, error) {
	p := pagination.New(page, perPage)
	logs, total, err := s.auditRepo.List(ctx, filter, p.Offset, p.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit log: %w", err)
	}
	return logs, total, nil
}

func (s *auditService) Create(ctx context.Context, req CreateAuditRequest) (*model.AuditEntry, error) {
	req.Warehouse = strings.TrimSpace(req.Warehouse)
	req.OperatorKey = strings.TrimSpace(req.OperatorKey)
	if req.OperatorKey == "" {
		req.OperatorKey = auth.OperatorFromContext(ctx)
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	now := s.now()
	day := dateOnly(now)
	entry := &model.AuditEntry{
		ID:           uuid.New(),
		ParameterID:  req.ParameterID,
		OwnerID:      req.OwnerID,
		Warehouse:    req.Warehouse,
		Observations: req.Observations,
		OperatorKey:  req.OperatorKey,
		OperatedOn:   &day,
		OperatedTime: now.Format(timeLayout),
	}
	if err := s.auditRepo.Log(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to write audit log: %w", err)
	}
	return entry, nil
}

func (s *auditService) Update(ctx context.Context, id uuid.UUID, req UpdateAuditRequest) (*model.AuditEntry, error) {
	req.Warehouse = trimmed(req.Warehouse)
	req.OperatorKey = trimmed(req.OperatorKey)
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.ParameterID != nil {
		fields["par_idparameter"] = *req.ParameterID
	}
	if req.OwnerID != nil {
		fields["bit_adm_idpersona"] = *req.OwnerID
	}
	setString(fields, "bit_adm_almacen", req.Warehouse)
	setString(fields, "bit_cveusu", req.OperatorKey)
	if req.Observations != nil {
		fields["bit_observaciones"] = *req.Observations
	}

	if len(fields) > 0 {
		n, err := s.auditRepo.Update(ctx, id, fields)
		if err != nil {
			return nil, fmt.Errorf("failed to update audit entry: %w", err)
		}
		if n == 0 {
			return nil, ErrNotFound
		}
	}

	entry, err := s.auditRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return entry, nil
}

func (s *auditService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := s.auditRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete audit entry: %w", err)
	}
	return n > 0, nil
}
