package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/VictorGlez97/almperms/internal/auth"
	"github.com/VictorGlez97/almperms/internal/metrics"
	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	ws "github.com/VictorGlez97/almperms/internal/websocket"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// --- DTOs ---

// AssignmentDraft is one warehouse permission row to insert.
// Owner and profile default to the request's when omitted.
type AssignmentDraft struct {
	OwnerID        decimal.Decimal `json:"adm_idpersona"`
	Warehouse      string          `json:"adm_almacen" binding:"required,max=10"`
	MovementType   string          `json:"adm_tmov" binding:"required,max=10"`
	Status         string          `json:"adm_status" binding:"max=2"`
	OperatorKey    string          `json:"adm_cveusu" binding:"max=20"`
	IsDefault      *bool           `json:"adm_almdefault"`
	EmitterRegion  *int            `json:"adm_edorepemi"`
	EmitterUnit    string          `json:"adm_uninegemi" binding:"max=10"`
	ProfileID      *int            `json:"adm_perfil"`
	ReceiverRegion *int            `json:"adm_edoreprec"`
	ReceiverUnit   string          `json:"adm_uninegrec" binding:"max=10"`
	ReceivingWH    string          `json:"adm_almrecept" binding:"max=10"`
	PurchaseOrder  string          `json:"adm_ordencompra" binding:"max=1"`
}

// ParameterDraft is one parameter row to insert. Dates are YYYY-MM-DD, times HH:MM:SS.
type ParameterDraft struct {
	Type     string           `json:"par_tipopara" binding:"max=10"`
	EntityID int64            `json:"par_idenpara" binding:"required"`
	ModuleID int64            `json:"par_idmodulo"`
	Descrip1 string           `json:"par_descrip1" binding:"max=255"`
	Descrip2 string           `json:"par_descrip2" binding:"max=255"`
	Descrip3 string           `json:"par_descrip3" binding:"max=255"`
	Descrip4 string           `json:"par_descrip4" binding:"max=255"`
	Descrip5 string           `json:"par_descrip5" binding:"max=255"`
	StatusID int64            `json:"par_idstatus"`
	Amount1  *decimal.Decimal `json:"par_importe1"`
	Amount2  *decimal.Decimal `json:"par_importe2"`
	Amount3  *decimal.Decimal `json:"par_importe3"`
	Amount4  *decimal.Decimal `json:"par_importe4"`
	Amount5  *decimal.Decimal `json:"par_importe5"`
	Date1    *string          `json:"par_fecha1"`
	Date2    *string          `json:"par_fecha2"`
	Date3    *string          `json:"par_fecha3"`
	Time1    string           `json:"par_hora1" binding:"omitempty,datetime=15:04:05"`
	Time2    string           `json:"par_hora2" binding:"omitempty,datetime=15:04:05"`
	Time3    string           `json:"par_hora3" binding:"omitempty,datetime=15:04:05"`
	UserID   *int64           `json:"par_idcveusu"`
}

type PermissionRequest struct {
	OwnerID        decimal.Decimal   `json:"adm_idpersona"`
	Warehouse      string            `json:"adm_almacen" binding:"required,max=10"`
	ProfileID      int               `json:"adm_perfil" binding:"required"`
	ParameterType  string            `json:"par_tipopara" binding:"max=10"`
	DescriptionKey string            `json:"par_descrip1" binding:"required,max=255"`
	Assignments    []AssignmentDraft `json:"par_adm_list" binding:"dive"`
	Parameters     []ParameterDraft  `json:"pnc_parametr_list" binding:"dive"`
	IsDefault      bool              `json:"is_default_alm"`
}

// TransferPermissionRequest replaces transfer permissions. Description is matched against
// the second description slot of ParameterType rows to find the movement types involved.
// ExitFlag clears rows for those movements; EntryFlag clears those received by ReceiverUnit.
type TransferPermissionRequest struct {
	OwnerID       decimal.Decimal   `json:"adm_idpersona"`
	Warehouse     string            `json:"adm_almacen" binding:"required,max=10"`
	ProfileID     int               `json:"adm_perfil" binding:"required"`
	ParameterType string            `json:"par_tipopara" binding:"max=10"`
	Description   string            `json:"par_descrip2" binding:"required,max=255"`
	ExitFlag      bool              `json:"te_exists"`
	EntryFlag     bool              `json:"ts_exists"`
	ReceiverUnit  string            `json:"adm_uninegrec" binding:"required_if=EntryFlag true,max=10"`
	Assignments   []AssignmentDraft `json:"par_adm_list" binding:"dive"`
}

type ApplyResult struct {
	Assignments []model.Assignment `json:"par_adm_list"`
	Parameters  []model.Parameter  `json:"pnc_parametr_list"`
}

// PermissionEvent is broadcast after a replacement commits
type PermissionEvent struct {
	OwnerID     string `json:"adm_idpersona"`
	Warehouse   string `json:"adm_almacen"`
	ProfileID   int    `json:"adm_perfil"`
	Assignments int    `json:"assignments"`
	Parameters  int    `json:"parameters"`
	Deleted     int64  `json:"deleted"`
	Operator    string `json:"operator,omitempty"`
}

// Publisher pushes committed changes to subscribers
type Publisher interface {
	Publish(event string, data interface{}) bool
}

type PermissionService interface {
	Apply(ctx context.Context, req PermissionRequest) (ApplyResult, error)
	ApplyTransfer(ctx context.Context, req TransferPermissionRequest) ([]model.Assignment, error)
}

type permissionService struct {
	assignmentRepo repository.AssignmentRepository
	parameterRepo  repository.ParameterRepository
	auditRepo      repository.AuditRepository
	txManager      repository.TransactionManager
	publisher      Publisher
	logger         *logrus.Logger
	defaultType    string
	now            func() time.Time
}

// NewPermissionService wires the replacement workflow. publisher may be nil.
func NewPermissionService(
	assignmentRepo repository.AssignmentRepository,
	parameterRepo repository.ParameterRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	publisher Publisher,
	logger *logrus.Logger,
	defaultType string,
) PermissionService {
	if defaultType == "" {
		defaultType = model.ParamTypeSalesPerms
	}
	return &permissionService{
		assignmentRepo: assignmentRepo,
		parameterRepo:  parameterRepo,
		auditRepo:      auditRepo,
		txManager:      txManager,
		publisher:      publisher,
		logger:         logger,
		defaultType:    defaultType,
		now:            time.Now,
	}
}

// Apply replaces the permissions of (owner, warehouse, profile) and the parameter rows
// keyed by (type, description) with the request's drafts, as one unit.
func (s *permissionService) Apply(ctx context.Context, req PermissionRequest) (ApplyResult, error) {
	start := time.Now()
	operator := auth.OperatorFromContext(ctx)

	if err := s.normalizeApply(&req, operator); err != nil {
		return ApplyResult{}, err
	}

	now := s.now()
	assignments := buildAssignments(req.Assignments, now)
	parameters, err := buildParameters(req.Parameters, now)
	if err != nil {
		return ApplyResult{}, err
	}

	cs := newChangeSet()
	cs.deleteAssignments(s.assignmentRepo, func() (repository.AssignmentScope, bool) {
		return repository.AssignmentScope{
			OwnerID:   req.OwnerID,
			Warehouse: req.Warehouse,
			ProfileID: req.ProfileID,
		}, true
	})
	cs.deleteParameters(s.parameterRepo, req.ParameterType, req.DescriptionKey)
	if req.IsDefault {
		cs.demoteDefaults(s.assignmentRepo, req.OwnerID, req.ProfileID, req.Warehouse)
	}
	cs.insertAssignments(s.assignmentRepo, assignments)
	cs.insertParameters(s.parameterRepo, parameters)
	cs.audit(s.auditRepo, func() *model.AuditEntry {
		var paramID *int64
		if len(parameters) > 0 {
			id := parameters[0].ID
			paramID = &id
		}
		return s.auditEntry(now, req.OwnerID, req.Warehouse, operator, paramID, fmt.Sprintf(
			"%s: profile %d, %d assignments, %d parameters (%s/%s), default=%t",
			model.ActionApplyPermissions, req.ProfileID, len(assignments), len(parameters),
			req.ParameterType, req.DescriptionKey, req.IsDefault,
		))
	})

	err = cs.commit(ctx, s.txManager)
	metrics.ObserveWorkflow(metrics.OpApply, start, err)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"owner":     req.OwnerID.String(),
			"warehouse": req.Warehouse,
			"profile":   req.ProfileID,
			"step":      cs.failed,
		}).Warn("Permission apply rolled back")
		return ApplyResult{}, err
	}
	cs.record()

	s.logger.WithFields(logrus.Fields{
		"owner":       req.OwnerID.String(),
		"warehouse":   req.Warehouse,
		"profile":     req.ProfileID,
		"deleted":     cs.totalDeleted(),
		"demoted":     cs.demoted,
		"assignments": len(assignments),
		"parameters":  len(parameters),
	}).Info("Permissions applied")

	s.publish(ws.EventPermissionsApplied, PermissionEvent{
		OwnerID:     req.OwnerID.String(),
		Warehouse:   req.Warehouse,
		ProfileID:   req.ProfileID,
		Assignments: len(assignments),
		Parameters:  len(parameters),
		Deleted:     cs.totalDeleted(),
		Operator:    operator,
	})

	return ApplyResult{Assignments: assignments, Parameters: parameters}, nil
}

// ApplyTransfer replaces transfer permissions. The movement types to clear are read from
// the parameter table inside the same unit; when none resolve, or neither flag is set,
// the drafts are inserted without deleting anything.
func (s *permissionService) ApplyTransfer(ctx context.Context, req TransferPermissionRequest) ([]model.Assignment, error) {
	start := time.Now()
	operator := auth.OperatorFromContext(ctx)

	if err := s.normalizeTransfer(&req, operator); err != nil {
		return nil, err
	}

	now := s.now()
	assignments := buildAssignments(req.Assignments, now)

	var codes []string
	cs := newChangeSet()
	cs.add("resolve movement types", func(txCtx context.Context) error {
		var err error
		codes, err = s.parameterRepo.ResolveEntityCodes(txCtx, req.ParameterType, []string{req.Description})
		return err
	})
	if req.ExitFlag {
		cs.deleteAssignments(s.assignmentRepo, func() (repository.AssignmentScope, bool) {
			return repository.AssignmentScope{
				OwnerID:       req.OwnerID,
				Warehouse:     req.Warehouse,
				ProfileID:     req.ProfileID,
				MovementTypes: codes,
			}, len(codes) > 0
		})
	}
	if req.EntryFlag {
		unit := req.ReceiverUnit
		cs.deleteAssignments(s.assignmentRepo, func() (repository.AssignmentScope, bool) {
			return repository.AssignmentScope{
				OwnerID:       req.OwnerID,
				Warehouse:     req.Warehouse,
				ProfileID:     req.ProfileID,
				MovementTypes: codes,
				ReceiverUnit:  &unit,
			}, len(codes) > 0
		})
	}
	cs.insertAssignments(s.assignmentRepo, assignments)
	cs.audit(s.auditRepo, func() *model.AuditEntry {
		return s.auditEntry(now, req.OwnerID, req.Warehouse, operator, nil, fmt.Sprintf(
			"%s: profile %d, %d assignments, movements [%s], exit=%t entry=%t",
			model.ActionApplyTransferPermissions, req.ProfileID, len(assignments),
			strings.Join(codes, ","), req.ExitFlag, req.EntryFlag,
		))
	})

	err := cs.commit(ctx, s.txManager)
	metrics.ObserveWorkflow(metrics.OpApplyTransfer, start, err)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"owner":     req.OwnerID.String(),
			"warehouse": req.Warehouse,
			"profile":   req.ProfileID,
			"step":      cs.failed,
		}).Warn("Transfer permission apply rolled back")
		return nil, err
	}
	cs.record()

	s.logger.WithFields(logrus.Fields{
		"owner":       req.OwnerID.String(),
		"warehouse":   req.Warehouse,
		"profile":     req.ProfileID,
		"movements":   codes,
		"deleted":     cs.totalDeleted(),
		"assignments": len(assignments),
	}).Info("Transfer permissions applied")

	s.publish(ws.EventTransferPermissionsApplied, PermissionEvent{
		OwnerID:     req.OwnerID.String(),
		Warehouse:   req.Warehouse,
		ProfileID:   req.ProfileID,
		Assignments: len(assignments),
		Deleted:     cs.totalDeleted(),
		Operator:    operator,
	})

	return assignments, nil
}

func (s *permissionService) normalizeApply(req *PermissionRequest, operator string) error {
	req.Warehouse = strings.TrimSpace(req.Warehouse)
	req.DescriptionKey = strings.TrimSpace(req.DescriptionKey)
	req.ParameterType = strings.TrimSpace(req.ParameterType)
	if req.ParameterType == "" {
		req.ParameterType = s.defaultType
	}

	for i := range req.Assignments {
		normalizeDraft(&req.Assignments[i], req.OwnerID, req.ProfileID, operator)
		d := &req.Assignments[i]
		if d.IsDefault == nil {
			isDefault := req.IsDefault && d.Warehouse == req.Warehouse
			d.IsDefault = &isDefault
		}
	}
	for i := range req.Parameters {
		p := &req.Parameters[i]
		p.Type = strings.TrimSpace(p.Type)
		if p.Type == "" {
			p.Type = req.ParameterType
		}
		p.Descrip1 = strings.TrimSpace(p.Descrip1)
		if p.Descrip1 == "" {
			p.Descrip1 = req.DescriptionKey
		}
	}

	if err := validateStruct(req); err != nil {
		return err
	}
	if req.OwnerID.Sign() <= 0 {
		return invalidf("adm_idpersona must be a positive number")
	}
	return nil
}

func (s *permissionService) normalizeTransfer(req *TransferPermissionRequest, operator string) error {
	req.Warehouse = strings.TrimSpace(req.Warehouse)
	req.Description = strings.TrimSpace(req.Description)
	req.ReceiverUnit = strings.TrimSpace(req.ReceiverUnit)
	req.ParameterType = strings.TrimSpace(req.ParameterType)
	if req.ParameterType == "" {
		req.ParameterType = s.defaultType
	}

	for i := range req.Assignments {
		normalizeDraft(&req.Assignments[i], req.OwnerID, req.ProfileID, operator)
	}

	if err := validateStruct(req); err != nil {
		return err
	}
	if req.OwnerID.Sign() <= 0 {
		return invalidf("adm_idpersona must be a positive number")
	}
	return nil
}

func normalizeDraft(d *AssignmentDraft, owner decimal.Decimal, profile int, operator string) {
	d.Warehouse = strings.TrimSpace(d.Warehouse)
	d.MovementType = strings.TrimSpace(d.MovementType)
	d.Status = strings.TrimSpace(d.Status)
	d.EmitterUnit = strings.TrimSpace(d.EmitterUnit)
	d.ReceiverUnit = strings.TrimSpace(d.ReceiverUnit)
	d.ReceivingWH = strings.TrimSpace(d.ReceivingWH)
	d.PurchaseOrder = strings.TrimSpace(d.PurchaseOrder)
	d.OperatorKey = strings.TrimSpace(d.OperatorKey)

	if d.OwnerID.IsZero() {
		d.OwnerID = owner
	}
	if d.ProfileID == nil {
		p := profile
		d.ProfileID = &p
	}
	if d.OperatorKey == "" {
		d.OperatorKey = operator
	}
}

func buildAssignments(drafts []AssignmentDraft, now time.Time) []model.Assignment {
	day := dateOnly(now)
	rows := make([]model.Assignment, 0, len(drafts))
	for _, d := range drafts {
		a := model.Assignment{
			OwnerID:        d.OwnerID,
			Warehouse:      d.Warehouse,
			MovementType:   d.MovementType,
			Status:         d.Status,
			UpdatedOn:      &day,
			OperatorKey:    d.OperatorKey,
			OperatedOn:     &day,
			EmitterRegion:  d.EmitterRegion,
			EmitterUnit:    d.EmitterUnit,
			ReceiverRegion: d.ReceiverRegion,
			ReceiverUnit:   d.ReceiverUnit,
			ReceivingWH:    d.ReceivingWH,
			PurchaseOrder:  d.PurchaseOrder,
		}
		if d.IsDefault != nil {
			a.IsDefault = *d.IsDefault
		}
		if d.ProfileID != nil {
			a.ProfileID = *d.ProfileID
		}
		rows = append(rows, a)
	}
	return rows
}

func buildParameters(drafts []ParameterDraft, now time.Time) ([]model.Parameter, error) {
	day := dateOnly(now)
	clock := now.Format(timeLayout)
	rows := make([]model.Parameter, 0, len(drafts))
	for i, d := range drafts {
		p := model.Parameter{
			Type:         d.Type,
			EntityID:     d.EntityID,
			ModuleID:     d.ModuleID,
			Descrip1:     d.Descrip1,
			Descrip2:     d.Descrip2,
			Descrip3:     d.Descrip3,
			Descrip4:     d.Descrip4,
			Descrip5:     d.Descrip5,
			StatusID:     d.StatusID,
			Amount1:      d.Amount1,
			Amount2:      d.Amount2,
			Amount3:      d.Amount3,
			Amount4:      d.Amount4,
			Amount5:      d.Amount5,
			Time1:        d.Time1,
			Time2:        d.Time2,
			Time3:        d.Time3,
			UserID:       d.UserID,
			OperatedOn:   &day,
			OperatedTime: clock,
		}
		var err error
		if p.Date1, err = parseDate(fmt.Sprintf("pnc_parametr_list[%d].par_fecha1", i), d.Date1); err != nil {
			return nil, err
		}
		if p.Date2, err = parseDate(fmt.Sprintf("pnc_parametr_list[%d].par_fecha2", i), d.Date2); err != nil {
			return nil, err
		}
		if p.Date3, err = parseDate(fmt.Sprintf("pnc_parametr_list[%d].par_fecha3", i), d.Date3); err != nil {
			return nil, err
		}
		rows = append(rows, p)
	}
	return rows, nil
}

func (s *permissionService) auditEntry(now time.Time, owner decimal.Decimal, warehouse, operator string, paramID *int64, observations string) *model.AuditEntry {
	day := dateOnly(now)
	o := owner
	return &model.AuditEntry{
		ParameterID:  paramID,
		OwnerID:      &o,
		Warehouse:    warehouse,
		Observations: observations,
		OperatorKey:  operator,
		OperatedOn:   &day,
		OperatedTime: now.Format(timeLayout),
	}
}

func (s *permissionService) publish(event string, data PermissionEvent) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(event, data)
}
