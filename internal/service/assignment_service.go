package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/VictorGlez97/almperms/internal/auth"
	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/pkg/pagination"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UpdateAssignmentRequest patches an assignment; nil fields are left untouched
type UpdateAssignmentRequest struct {
	MovementType   *string `json:"adm_tmov" binding:"omitempty,min=1,max=10"`
	Status         *string `json:"adm_status" binding:"omitempty,max=2"`
	OperatorKey    *string `json:"adm_cveusu" binding:"omitempty,max=20"`
	IsDefault      *bool   `json:"adm_almdefault"`
	EmitterRegion  *int    `json:"adm_edorepemi"`
	EmitterUnit    *string `json:"adm_uninegemi" binding:"omitempty,max=10"`
	ProfileID      *int    `json:"adm_perfil"`
	ReceiverRegion *int    `json:"adm_edoreprec"`
	ReceiverUnit   *string `json:"adm_uninegrec" binding:"omitempty,max=10"`
	ReceivingWH    *string `json:"adm_almrecept" binding:"omitempty,max=10"`
	PurchaseOrder  *string `json:"adm_ordencompra" binding:"omitempty,max=1"`
}

type SearchPermissionsFilter struct {
	Page       int      `json:"page"`
	PerPage    int      `json:"per_page"`
	ProfileID  *int     `json:"adm_perfil"`
	Status     *string  `json:"adm_status"`
	Warehouses []string `json:"adm_almacen__in"`
}

// PermissionSummary labels one owner's assignment with person and parameter descriptions
type PermissionSummary struct {
	OwnerID           string `json:"adm_idpersona"`
	PaternalName      string `json:"per_paterno"`
	MaternalName      string `json:"per_materno"`
	GivenName         string `json:"per_nomrazon"`
	IsDefault         bool   `json:"adm_almdefault"`
	MovementType      string `json:"adm_tmov"`
	ReceivingWH       string `json:"adm_almrecept"`
	ReceiverUnit      string `json:"adm_uninegrec"`
	Person            string `json:"persona"`
	Warehouse         string `json:"almacen"`
	Movement          string `json:"movimiento"`
	Profile           string `json:"perfil"`
	ReceiverRegion    string `json:"estado_rec"`
	ReceiverUnitLabel string `json:"unegocio_rec"`
}

type AssignmentService interface {
	List(ctx context.Context, filter repository.AssignmentFilter, page, perPage int) ([]model.Assignment, int64, error)
	Create(ctx context.Context, req AssignmentDraft) (*model.Assignment, error)
	Update(ctx context.Context, key model.AssignmentKey, req UpdateAssignmentRequest) (*model.Assignment, error)
	Delete(ctx context.Context, key model.AssignmentKey) (bool, error)
	SearchPermissions(ctx context.Context, filter SearchPermissionsFilter) ([]PermissionSummary, error)
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	parameterRepo  repository.ParameterRepository
	personRepo     repository.PersonRepository
	auditRepo      repository.AuditRepository
	txManager      repository.TransactionManager
	now            func() time.Time
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	parameterRepo repository.ParameterRepository,
	personRepo repository.PersonRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		parameterRepo:  parameterRepo,
		personRepo:     personRepo,
		auditRepo:      auditRepo,
		txManager:      txManager,
		now:            time.Now,
	}
}

func (s *assignmentService) List(ctx context.Context, filter repository.AssignmentFilter, page, perPage int) ([]model.Assignment, int64, error) {
	p := pagination.New(page, perPage)
	filter.Search = strings.TrimSpace(filter.Search)
	rows, total, err := s.assignmentRepo.List(ctx, filter, p.Offset, p.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}
	return rows, total, nil
}

func (s *assignmentService) Create(ctx context.Context, req AssignmentDraft) (*model.Assignment, error) {
	operator := auth.OperatorFromContext(ctx)
	normalizeDraft(&req, req.OwnerID, 0, operator)
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	if req.OwnerID.Sign() <= 0 {
		return nil, invalidf("adm_idpersona must be a positive number")
	}

	now := s.now()
	a := buildAssignments([]AssignmentDraft{req}, now)[0]

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.assignmentRepo.Create(txCtx, &a); err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}
		if err := s.logAudit(txCtx, now, a.OwnerID, a.Warehouse, operator,
			fmt.Sprintf("CREATE_ASSIGNMENT: movement %s, profile %d", a.MovementType, a.ProfileID)); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *assignmentService) Update(ctx context.Context, key model.AssignmentKey, req UpdateAssignmentRequest) (*model.Assignment, error) {
	req.MovementType = trimmed(req.MovementType)
	req.Status = trimmed(req.Status)
	req.OperatorKey = trimmed(req.OperatorKey)
	req.EmitterUnit = trimmed(req.EmitterUnit)
	req.ReceiverUnit = trimmed(req.ReceiverUnit)
	req.ReceivingWH = trimmed(req.ReceivingWH)
	req.PurchaseOrder = trimmed(req.PurchaseOrder)
	if req.MovementType != nil && *req.MovementType == "" {
		return nil, invalidf("adm_tmov must not be blank")
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	now := s.now()
	day := dateOnly(now)
	fields := map[string]interface{}{
		"adm_fechaact": day,
		"adm_fechope":  day,
	}
	newKey := key
	if req.MovementType != nil {
		fields["adm_tmov"] = *req.MovementType
		newKey.MovementType = *req.MovementType
	}
	setString(fields, "adm_status", req.Status)
	setString(fields, "adm_cveusu", req.OperatorKey)
	setString(fields, "adm_uninegemi", req.EmitterUnit)
	setString(fields, "adm_uninegrec", req.ReceiverUnit)
	setString(fields, "adm_almrecept", req.ReceivingWH)
	setString(fields, "adm_ordencompra", req.PurchaseOrder)
	if req.IsDefault != nil {
		fields["adm_almdefault"] = *req.IsDefault
	}
	if req.EmitterRegion != nil {
		fields["adm_edorepemi"] = *req.EmitterRegion
	}
	if req.ProfileID != nil {
		fields["adm_perfil"] = *req.ProfileID
	}
	if req.ReceiverRegion != nil {
		fields["adm_edoreprec"] = *req.ReceiverRegion
	}

	var updated *model.Assignment
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.assignmentRepo.Update(txCtx, key, fields)
		if err != nil {
			return fmt.Errorf("failed to update assignment: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		updated, err = s.assignmentRepo.FindByKey(txCtx, newKey)
		if err != nil {
			return fmt.Errorf("failed to reload assignment: %w", err)
		}
		return s.logAudit(txCtx, now, key.OwnerID, key.Warehouse, auth.OperatorFromContext(ctx),
			fmt.Sprintf("UPDATE_ASSIGNMENT: movement %s, %d fields", key.MovementType, len(fields)))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *assignmentService) Delete(ctx context.Context, key model.AssignmentKey) (bool, error) {
	var deleted bool
	now := s.now()
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.assignmentRepo.Delete(txCtx, key)
		if err != nil {
			return fmt.Errorf("failed to delete assignment: %w", err)
		}
		if n == 0 {
			return nil
		}
		deleted = true
		return s.logAudit(txCtx, now, key.OwnerID, key.Warehouse, auth.OperatorFromContext(ctx),
			"DELETE_ASSIGNMENT: movement "+key.MovementType)
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// SearchPermissions returns one labelled row per distinct owner holding a matching assignment
func (s *assignmentService) SearchPermissions(ctx context.Context, filter SearchPermissionsFilter) ([]PermissionSummary, error) {
	p := pagination.New(filter.Page, filter.PerPage)

	rows, err := s.assignmentRepo.ListDistinctOwners(ctx, filter.ProfileID, filter.Status, filter.Warehouses, p.Offset, p.PerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to search permissions: %w", err)
	}

	ids := make([]decimal.Decimal, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.OwnerID)
	}
	persons, err := s.personRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load persons: %w", err)
	}

	out := make([]PermissionSummary, 0, len(rows))
	for _, r := range rows {
		sum := PermissionSummary{
			OwnerID:      r.OwnerID.String(),
			IsDefault:    r.IsDefault,
			MovementType: r.MovementType,
			ReceivingWH:  r.ReceivingWH,
			ReceiverUnit: r.ReceiverUnit,
		}
		if person, ok := persons[r.OwnerID.String()]; ok {
			sum.PaternalName = person.PaternalName
			sum.MaternalName = person.MaternalName
			sum.GivenName = person.GivenName
			sum.Person = person.DisplayName()
		}

		if sum.Warehouse, err = s.parameterRepo.DescribeEntity(ctx, model.ParamTypeWarehouse, r.Warehouse); err != nil {
			return nil, fmt.Errorf("failed to describe warehouse: %w", err)
		}
		if sum.Movement, err = s.parameterRepo.DescribeEntity(ctx, model.ParamTypeMovement, r.MovementType); err != nil {
			return nil, fmt.Errorf("failed to describe movement: %w", err)
		}
		if sum.Profile, err = s.parameterRepo.DescribeEntity(ctx, model.ParamTypeProfile, strconv.Itoa(r.ProfileID)); err != nil {
			return nil, fmt.Errorf("failed to describe profile: %w", err)
		}
		if r.ReceiverRegion != nil {
			if sum.ReceiverRegion, err = s.parameterRepo.DescribeEntity(ctx, model.ParamTypeRegion, strconv.Itoa(*r.ReceiverRegion)); err != nil {
				return nil, fmt.Errorf("failed to describe region: %w", err)
			}
		}
		if r.ReceiverUnit != "" {
			if sum.ReceiverUnitLabel, err = s.parameterRepo.DescribeBySlot5(ctx, model.ParamTypeBusinessUnit, r.ReceiverUnit); err != nil {
				return nil, fmt.Errorf("failed to describe business unit: %w", err)
			}
		}
		out = append(out, sum)
	}
	return out, nil
}

func (s *assignmentService) logAudit(ctx context.Context, now time.Time, owner decimal.Decimal, warehouse, operator, observations string) error {
	day := dateOnly(now)
	o := owner
	entry := &model.AuditEntry{
		OwnerID:      &o,
		Warehouse:    warehouse,
		Observations: observations,
		OperatorKey:  operator,
		OperatedOn:   &day,
		OperatedTime: now.Format(timeLayout),
	}
	if err := s.auditRepo.Log(ctx, entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

func setString(fields map[string]interface{}, column string, v *string) {
	if v != nil {
		fields[column] = strings.TrimSpace(*v)
	}
}

// notFound maps gorm's missing-row error onto ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
