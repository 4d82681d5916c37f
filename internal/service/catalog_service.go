package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/pkg/pagination"
)

type CreateIdentifierRequest struct {
	Code     string `json:"caip_enpara" binding:"required,max=20"`
	StatusID int64  `json:"caip_idstatus"`
	UserID   *int64 `json:"caip_idcveusu"`
}

// CatalogService exposes the read-mostly lookup tables
type CatalogService interface {
	ListIdentifiers(ctx context.Context, filter repository.IdentifierFilter, page, perPage int) ([]model.Identifier, int64, error)
	CreateIdentifier(ctx context.Context, req CreateIdentifierRequest) (*model.Identifier, error)
	ListPersons(ctx context.Context, filter repository.PersonFilter, page, perPage int) ([]model.Person, int64, error)
	ListStatuses(ctx context.Context, filter repository.StatusFilter, page, perPage int) ([]model.Status, int64, error)
	ListUsers(ctx context.Context, filter repository.UserFilter, page, perPage int) ([]model.User, int64, error)
	ListLegacyUsers(ctx context.Context, filter repository.LegacyUserFilter, page, perPage int) ([]model.LegacyUser, int64, error)
}

type catalogService struct {
	identifierRepo repository.IdentifierRepository
	personRepo     repository.PersonRepository
	statusRepo     repository.StatusRepository
	userRepo       repository.UserRepository
	now            func() time.Time
}

func NewCatalogService(
	identifierRepo repository.IdentifierRepository,
	personRepo repository.PersonRepository,
	statusRepo repository.StatusRepository,
	userRepo repository.UserRepository,
) CatalogService {
	return &catalogService{
		identifierRepo: identifierRepo,
		personRepo:     personRepo,
		statusRepo:     statusRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
}

func (s *catalogService) ListIdentifiers(ctx context.Context, filter repository.IdentifierFilter, page, perPage int) ([]model.Identifier, int64, error) {
	p := pagination.New(page, perPage)
	rows, total, err := s.identifierRepo.List(ctx, filter, p.Offset, p.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list identifiers: %w", err)
	}
	return rows, total, nil
}

func (s *catalogService) CreateIdentifier(ctx context.Context, req CreateIdentifierRequest) (*model.Identifier, error) {
	req.Code = strings.TrimSpace(req.Code)
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	now := s.now()
	ident := &model.Identifier{
		Code:       req.Code,
		StatusID:   req.StatusID,
		UserID:     req.UserID,
		OperatedAt: &now,
	}
	if err := s.identifierRepo.Create(ctx, ident); err != nil {
		return nil, fmt.Errorf("failed to create identifier: %w", err)
	}
	return ident, nil
}

func (s *catalogService) ListPersons(ctx context.Context, filter repository.PersonFilter, page, perPage int) ([]model.Person, int64, error) {
	p := pagination.New(page, perPage)
	filter.Search = strings.TrimSpace(filter.Search)
	rows, total, err := s.personRepo.List(ctx, filter, p.Offset, p.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list persons: %w", err)
	}
	return rows, total, nil
}

func (s *catalogService) ListStatuses(ctx context.Context, filter repository.StatusFilter, page, perPage int) ([]model.Status, int64, error) {
	p := pagination.New(page, perPage)
	rows, total, err := s.statusRepo.List(ctx, filter, p.Offset, p.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list statuses: %w", err)
	}
	return rows, total, nil
}

// ListUsers filters on the status code only when filter.StatusCode is set; callers apply the active default
func (s *catalogService) ListUsers(ctx context.Context, filter repository.UserFilter, page, perPage int) ([]model.User, int64, error) {
	p := pagination.New(page, perPage)
	rows, total, err := s.userRepo.List(ctx, filter, p.Offset, p.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return rows, total, nil
}

func (s *catalogService) ListLegacyUsers(ctx context.Context, filter repository.LegacyUserFilter, page, perPage int) ([]model.LegacyUser, int64, error) {
	p := pagination.New(page, perPage)
	rows, total, err := s.userRepo.ListLegacy(ctx, filter, p.Offset, p.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list legacy users: %w", err)
	}
	return rows, total, nil
}
