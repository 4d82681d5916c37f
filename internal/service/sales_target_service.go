package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/VictorGlez97/almperms/internal/auth"
	"github.com/VictorGlez97/almperms/internal/metrics"
	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	ws "github.com/VictorGlez97/almperms/internal/websocket"
	"github.com/VictorGlez97/almperms/pkg/pagination"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type CreateSalesTargetRequest struct {
	Year        decimal.Decimal  `json:"obm_ano"`
	SellerID    decimal.Decimal  `json:"obm_vendedor"`
	Salary      *decimal.Decimal `json:"obm_sueldo"`
	OperatorKey string           `json:"obm_cveusu" binding:"max=20"`
}

type UpdateSalesTargetRequest struct {
	Salary      *decimal.Decimal `json:"obm_sueldo"`
	OperatorKey *string          `json:"obm_cveusu" binding:"omitempty,max=20"`
}

// CreateSalesTargetDetailRequest is one month of a target. Inside a save, a zero
// year or seller is taken from the header.
type CreateSalesTargetDetailRequest struct {
	Year        decimal.Decimal  `json:"obd_ano"`
	SellerID    decimal.Decimal  `json:"obd_vendedor"`
	Month       decimal.Decimal  `json:"obd_mes"`
	Sales       *decimal.Decimal `json:"obd_venta"`
	Commission  *decimal.Decimal `json:"obd_comision"`
	OperatorKey string           `json:"obd_cveusu" binding:"max=20"`
	SalesArea   string           `json:"obd_areavta" binding:"max=10"`
}

type UpdateSalesTargetDetailRequest struct {
	Sales       *decimal.Decimal `json:"obd_venta"`
	Commission  *decimal.Decimal `json:"obd_comision"`
	OperatorKey *string          `json:"obd_cveusu" binding:"omitempty,max=20"`
	SalesArea   *string          `json:"obd_areavta" binding:"omitempty,max=10"`
}

// SaveSalesTargetRequest writes a header and, when Details is non-nil, replaces its months.
// An empty Details clears them.
type SaveSalesTargetRequest struct {
	Year        decimal.Decimal                  `json:"obm_ano"`
	SellerID    decimal.Decimal                  `json:"obm_vendedor"`
	Salary      *decimal.Decimal                 `json:"obm_sueldo"`
	OperatorKey string                           `json:"obm_cveusu" binding:"max=20"`
	Details     []CreateSalesTargetDetailRequest `json:"obd_list" binding:"omitempty,dive"`
}

type SavedSalesTarget struct {
	Target  model.SalesTarget         `json:"target"`
	Details []model.SalesTargetDetail `json:"obd_list"`
	Deleted int64                     `json:"deleted"`
}

// SalesTargetEvent is published after a save commits
type SalesTargetEvent struct {
	Year     string `json:"obm_ano"`
	SellerID string `json:"obm_vendedor"`
	Months   int    `json:"months"`
	Operator string `json:"operator,omitempty"`
}

type SalesTargetService interface {
	List(ctx context.Context, filter repository.SalesTargetFilter, page, perPage int) ([]model.SalesTarget, int64, error)
	Create(ctx context.Context, req CreateSalesTargetRequest) (*model.SalesTarget, error)
	Update(ctx context.Context, key model.SalesTargetKey, req UpdateSalesTargetRequest) (*model.SalesTarget, error)
	Delete(ctx context.Context, key model.SalesTargetKey) (bool, error)
	Save(ctx context.Context, req SaveSalesTargetRequest) (*SavedSalesTarget, error)

	ListDetails(ctx context.Context, filter repository.SalesTargetDetailFilter, page, perPage int) ([]model.SalesTargetDetail, int64, error)
	CreateDetail(ctx context.Context, req CreateSalesTargetDetailRequest) (*model.SalesTargetDetail, error)
	UpdateDetail(ctx context.Context, key model.SalesTargetDetailKey, req UpdateSalesTargetDetailRequest) (*model.SalesTargetDetail, error)
	DeleteDetail(ctx context.Context, key model.SalesTargetDetailKey) (bool, error)
}

type salesTargetService struct {
	targetRepo repository.SalesTargetRepository
	detailRepo repository.SalesTargetDetailRepository
	txManager  repository.TransactionManager
	publisher  Publisher
	logger     *logrus.Logger
	now        func() time.Time
}

// NewSalesTargetService wires sales objectives. publisher may be nil.
func NewSalesTargetService(
	targetRepo repository.SalesTargetRepository,
	detailRepo repository.SalesTargetDetailRepository,
	txManager repository.TransactionManager,
	publisher Publisher,
	logger *logrus.Logger,
) SalesTargetService {
	return &salesTargetService{
		targetRepo: targetRepo,
		detailRepo: detailRepo,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *salesTargetService) List(ctx context.Context, filter repository.SalesTargetFilter, page, perPage int) ([]model.SalesTarget, int64, error) {
	p := pagination.New(page, perPage)
	filter.Search = strings.TrimSpace(filter.Search)
	rows, total, err := s.targetRepo.List(ctx, filter, p.Offset, p.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales targets: %w", err)
	}
	return rows, total, nil
}

func (s *salesTargetService) Create(ctx context.Context, req CreateSalesTargetRequest) (*model.SalesTarget, error) {
	req.OperatorKey = operatorOr(ctx, req.OperatorKey)
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	if err := checkTargetKey("obm", req.Year, req.SellerID); err != nil {
		return nil, err
	}

	t := s.buildTarget(req.Year, req.SellerID, req.Salary, req.OperatorKey)
	if err := s.targetRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create sales target: %w", err)
	}
	return t, nil
}

func (s *salesTargetService) Update(ctx context.Context, key model.SalesTargetKey, req UpdateSalesTargetRequest) (*model.SalesTarget, error) {
	req.OperatorKey = trimmed(req.OperatorKey)
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	now := s.now()
	fields := map[string]interface{}{
		"obm_fechope": dateOnly(now),
		"obm_horaope": now.Format(timeLayout),
	}
	if req.Salary != nil {
		fields["obm_sueldo"] = *req.Salary
	}
	setString(fields, "obm_cveusu", req.OperatorKey)

	n, err := s.targetRepo.Update(ctx, key, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update sales target: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	t, err := s.targetRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

// Delete removes a header together with its months
func (s *salesTargetService) Delete(ctx context.Context, key model.SalesTargetKey) (bool, error) {
	start := time.Now()
	cs := newChangeSet()
	cs.deleteTargetDetails(s.detailRepo, key)
	cs.deleteSalesTarget(s.targetRepo, key)

	err := cs.commit(ctx, s.txManager)
	metrics.ObserveWorkflow(metrics.OpDeleteTarget, start, err)
	if err != nil {
		return false, fmt.Errorf("failed to delete sales target: %w", err)
	}
	cs.record()
	return cs.deleted[model.SalesTarget{}.TableName()] > 0, nil
}

// Save upserts the header and replaces its months as one unit
func (s *salesTargetService) Save(ctx context.Context, req SaveSalesTargetRequest) (*SavedSalesTarget, error) {
	start := time.Now()
	req.OperatorKey = operatorOr(ctx, req.OperatorKey)
	if req.Details != nil {
		req.Details = append(make([]CreateSalesTargetDetailRequest, 0, len(req.Details)), req.Details...)
	}
	for i := range req.Details {
		d := &req.Details[i]
		d.SalesArea = strings.TrimSpace(d.SalesArea)
		d.OperatorKey = strings.TrimSpace(d.OperatorKey)
		if d.OperatorKey == "" {
			d.OperatorKey = req.OperatorKey
		}
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	if err := checkTargetKey("obm", req.Year, req.SellerID); err != nil {
		return nil, err
	}

	key := model.SalesTargetKey{Year: req.Year, SellerID: req.SellerID}
	details, err := s.buildDetails(key, req.Details)
	if err != nil {
		return nil, err
	}
	target := s.buildTarget(req.Year, req.SellerID, req.Salary, req.OperatorKey)

	cs := newChangeSet()
	cs.upsertSalesTarget(s.targetRepo, target)
	if req.Details != nil {
		cs.deleteTargetDetails(s.detailRepo, key)
		cs.insertTargetDetails(s.detailRepo, details)
	}

	err = cs.commit(ctx, s.txManager)
	metrics.ObserveWorkflow(metrics.OpSaveTarget, start, err)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"target": key.String(),
			"step":   cs.failed,
		}).Warn("Sales target save rolled back")
		return nil, err
	}
	cs.record()

	s.logger.WithFields(logrus.Fields{
		"target":  key.String(),
		"deleted": cs.totalDeleted(),
		"months":  len(details),
	}).Info("Sales target saved")

	if s.publisher != nil {
		s.publisher.Publish(ws.EventSalesTargetSaved, SalesTargetEvent{
			Year:     req.Year.String(),
			SellerID: req.SellerID.String(),
			Months:   len(details),
			Operator: req.OperatorKey,
		})
	}

	return &SavedSalesTarget{Target: *target, Details: details, Deleted: cs.totalDeleted()}, nil
}

func (s *salesTargetService) ListDetails(ctx context.Context, filter repository.SalesTargetDetailFilter, page, perPage int) ([]model.SalesTargetDetail, int64, error) {
	p := pagination.New(page, perPage)
	filter.Search = strings.TrimSpace(filter.Search)
	rows, total, err := s.detailRepo.List(ctx, filter, p.Offset, p.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales target details: %w", err)
	}
	return rows, total, nil
}

// CreateDetail adds one month under an existing header
func (s *salesTargetService) CreateDetail(ctx context.Context, req CreateSalesTargetDetailRequest) (*model.SalesTargetDetail, error) {
	req.SalesArea = strings.TrimSpace(req.SalesArea)
	req.OperatorKey = operatorOr(ctx, req.OperatorKey)
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	if err := checkTargetKey("obd", req.Year, req.SellerID); err != nil {
		return nil, err
	}
	key := model.SalesTargetKey{Year: req.Year, SellerID: req.SellerID}
	rows, err := s.buildDetails(key, []CreateSalesTargetDetailRequest{req})
	if err != nil {
		return nil, err
	}
	d := rows[0]

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.targetRepo.FindByKey(txCtx, key); err != nil {
			if errors.Is(notFound(err), ErrNotFound) {
				return invalidf("sales target %s does not exist", key)
			}
			return fmt.Errorf("failed to load sales target: %w", err)
		}
		if err := s.detailRepo.Create(txCtx, &d); err != nil {
			return fmt.Errorf("failed to create sales target detail: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *salesTargetService) UpdateDetail(ctx context.Context, key model.SalesTargetDetailKey, req UpdateSalesTargetDetailRequest) (*model.SalesTargetDetail, error) {
	req.OperatorKey = trimmed(req.OperatorKey)
	req.SalesArea = trimmed(req.SalesArea)
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	now := s.now()
	fields := map[string]interface{}{
		"obd_fechope": dateOnly(now),
		"obd_horaope": now.Format(timeLayout),
	}
	if req.Sales != nil {
		fields["obd_venta"] = *req.Sales
	}
	if req.Commission != nil {
		fields["obd_comision"] = *req.Commission
	}
	setString(fields, "obd_cveusu", req.OperatorKey)
	setString(fields, "obd_areavta", req.SalesArea)

	n, err := s.detailRepo.Update(ctx, key, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update sales target detail: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	d, err := s.detailRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, notFound(err)
	}
	return d, nil
}

func (s *salesTargetService) DeleteDetail(ctx context.Context, key model.SalesTargetDetailKey) (bool, error) {
	n, err := s.detailRepo.Delete(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to delete sales target detail: %w", err)
	}
	return n > 0, nil
}

func (s *salesTargetService) buildTarget(year, seller decimal.Decimal, salary *decimal.Decimal, operator string) *model.SalesTarget {
	now := s.now()
	day := dateOnly(now)
	return &model.SalesTarget{
		Year:         year,
		SellerID:     seller,
		Salary:       salary,
		OperatedOn:   &day,
		OperatedTime: now.Format(timeLayout),
		OperatorKey:  operator,
	}
}

// buildDetails fills each month's key from the header and rejects foreign keys and repeated months
func (s *salesTargetService) buildDetails(key model.SalesTargetKey, reqs []CreateSalesTargetDetailRequest) ([]model.SalesTargetDetail, error) {
	now := s.now()
	day := dateOnly(now)
	seen := make(map[string]bool, len(reqs))
	out := make([]model.SalesTargetDetail, 0, len(reqs))
	for i, r := range reqs {
		if !r.Year.IsZero() && !r.Year.Equal(key.Year) {
			return nil, invalidf("obd_list[%d].obd_ano %s does not match obm_ano %s", i, r.Year, key.Year)
		}
		if !r.SellerID.IsZero() && !r.SellerID.Equal(key.SellerID) {
			return nil, invalidf("obd_list[%d].obd_vendedor %s does not match obm_vendedor %s", i, r.SellerID, key.SellerID)
		}
		if !r.Month.IsInteger() || r.Month.LessThan(decimal.NewFromInt(1)) || r.Month.GreaterThan(decimal.NewFromInt(12)) {
			return nil, invalidf("obd_mes must be a month between 1 and 12, got %s", r.Month)
		}
		month := r.Month.String()
		if seen[month] {
			return nil, invalidf("obd_mes %s appears more than once", month)
		}
		seen[month] = true

		d := day
		out = append(out, model.SalesTargetDetail{
			Year:         key.Year,
			SellerID:     key.SellerID,
			Month:        r.Month,
			Sales:        r.Sales,
			Commission:   r.Commission,
			OperatedOn:   &d,
			OperatedTime: now.Format(timeLayout),
			OperatorKey:  r.OperatorKey,
			SalesArea:    r.SalesArea,
		})
	}
	return out, nil
}

func checkTargetKey(prefix string, year, seller decimal.Decimal) error {
	if !year.IsInteger() || year.Sign() <= 0 {
		return invalidf("%s_ano must be a positive year", prefix)
	}
	if !seller.IsInteger() || seller.Sign() <= 0 {
		return invalidf("%s_vendedor must be a positive number", prefix)
	}
	return nil
}

// operatorOr trims key and falls back to the request's operator
func operatorOr(ctx context.Context, key string) string {
	if key = strings.TrimSpace(key); key != "" {
		return key
	}
	return auth.OperatorFromContext(ctx)
}
