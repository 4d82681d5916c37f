package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPermissionService struct {
	applied     *service.PermissionRequest
	transferred *service.TransferPermissionRequest
	err         error
}

func (s *stubPermissionService) Apply(_ context.Context, req service.PermissionRequest) (service.ApplyResult, error) {
	s.applied = &req
	if s.err != nil {
		return service.ApplyResult{}, s.err
	}
	return service.ApplyResult{Assignments: []model.Assignment{{OwnerID: req.OwnerID, Warehouse: req.Warehouse, MovementType: "E01"}}}, nil
}

func (s *stubPermissionService) ApplyTransfer(_ context.Context, req service.TransferPermissionRequest) ([]model.Assignment, error) {
	s.transferred = &req
	return nil, s.err
}

type stubAssignmentService struct {
	filter       repository.AssignmentFilter
	search       service.SearchPermissionsFilter
	page, per    int
	deleted      model.AssignmentKey
	found        bool
	updateErr    error
	searchResult []service.PermissionSummary
}

func (s *stubAssignmentService) List(_ context.Context, f repository.AssignmentFilter, page, perPage int) ([]model.Assignment, int64, error) {
	s.filter, s.page, s.per = f, page, perPage
	return []model.Assignment{}, 0, nil
}

func (s *stubAssignmentService) Create(_ context.Context, req service.AssignmentDraft) (*model.Assignment, error) {
	return &model.Assignment{OwnerID: req.OwnerID, Warehouse: req.Warehouse, MovementType: req.MovementType}, nil
}

func (s *stubAssignmentService) Update(_ context.Context, key model.AssignmentKey, _ service.UpdateAssignmentRequest) (*model.Assignment, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &model.Assignment{OwnerID: key.OwnerID, Warehouse: key.Warehouse, MovementType: key.MovementType}, nil
}

func (s *stubAssignmentService) Delete(_ context.Context, key model.AssignmentKey) (bool, error) {
	s.deleted = key
	return s.found, nil
}

func (s *stubAssignmentService) SearchPermissions(_ context.Context, f service.SearchPermissionsFilter) ([]service.PermissionSummary, error) {
	s.search = f
	return s.searchResult, nil
}

type stubParameterService struct {
	filter  repository.ParameterFilter
	listErr error
	deleted int64
}

func (s *stubParameterService) List(_ context.Context, f repository.ParameterFilter, _, _ int) ([]model.Parameter, int64, error) {
	s.filter = f
	return []model.Parameter{}, 0, s.listErr
}

func (s *stubParameterService) Create(_ context.Context, req service.ParameterDraft) (*model.Parameter, error) {
	return &model.Parameter{ID: 7, Type: req.Type, EntityID: req.EntityID}, nil
}

func (s *stubParameterService) Update(_ context.Context, id int64, _ service.UpdateParameterRequest) (*model.Parameter, error) {
	return &model.Parameter{ID: id}, nil
}

func (s *stubParameterService) Delete(_ context.Context, id int64) (bool, error) {
	s.deleted = id
	return true, nil
}

type stubAuditService struct {
	filter  repository.AuditFilter
	deleted uuid.UUID
}

func (s *stubAuditService) List(_ context.Context, f repository.AuditFilter, _, _ int) ([]model.AuditEntry, int64, error) {
	s.filter = f
	return []model.AuditEntry{}, 0, nil
}

func (s *stubAuditService) Create(_ context.Context, req service.CreateAuditRequest) (*model.AuditEntry, error) {
	return &model.AuditEntry{ID: uuid.New(), Warehouse: req.Warehouse}, nil
}

func (s *stubAuditService) Update(_ context.Context, id uuid.UUID, _ service.UpdateAuditRequest) (*model.AuditEntry, error) {
	return nil, service.ErrNotFound
}

func (s *stubAuditService) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.deleted = id
	return false, nil
}

type stubCatalogService struct {
	identifierFilter repository.IdentifierFilter
	personFilter     repository.PersonFilter
	statusFilter     repository.StatusFilter
	userFilter       repository.UserFilter
	legacyFilter     repository.LegacyUserFilter
}

func (s *stubCatalogService) ListIdentifiers(_ context.Context, f repository.IdentifierFilter, _, _ int) ([]model.Identifier, int64, error) {
	s.identifierFilter = f
	return []model.Identifier{}, 0, nil
}

func (s *stubCatalogService) CreateIdentifier(_ context.Context, req service.CreateIdentifierRequest) (*model.Identifier, error) {
	return &model.Identifier{ID: 3, Code: req.Code}, nil
}

func (s *stubCatalogService) ListPersons(_ context.Context, f repository.PersonFilter, _, _ int) ([]model.Person, int64, error) {
	s.personFilter = f
	return []model.Person{}, 0, nil
}

func (s *stubCatalogService) ListStatuses(_ context.Context, f repository.StatusFilter, _, _ int) ([]model.Status, int64, error) {
	s.statusFilter = f
	return []model.Status{}, 0, nil
}

func (s *stubCatalogService) ListUsers(_ context.Context, f repository.UserFilter, _, _ int) ([]model.User, int64, error) {
	s.userFilter = f
	return []model.User{}, 0, nil
}

func (s *stubCatalogService) ListLegacyUsers(_ context.Context, f repository.LegacyUserFilter, _, _ int) ([]model.LegacyUser, int64, error) {
	s.legacyFilter = f
	return []model.LegacyUser{}, 0, nil
}

type stubSalesTargetService struct {
	filter     repository.SalesTargetFilter
	saved      service.SaveSalesTargetRequest
	updatedKey model.SalesTargetKey
	deletedKey model.SalesTargetDetailKey
	found      bool
	err        error
}

func (s *stubSalesTargetService) List(_ context.Context, f repository.SalesTargetFilter, _, _ int) ([]model.SalesTarget, int64, error) {
	s.filter = f
	return []model.SalesTarget{}, 0, nil
}

func (s *stubSalesTargetService) Create(_ context.Context, req service.CreateSalesTargetRequest) (*model.SalesTarget, error) {
	return &model.SalesTarget{Year: req.Year, SellerID: req.SellerID}, s.err
}

func (s *stubSalesTargetService) Update(_ context.Context, key model.SalesTargetKey, _ service.UpdateSalesTargetRequest) (*model.SalesTarget, error) {
	s.updatedKey = key
	if s.err != nil {
		return nil, s.err
	}
	return &model.SalesTarget{Year: key.Year, SellerID: key.SellerID}, nil
}

func (s *stubSalesTargetService) Delete(_ context.Context, key model.SalesTargetKey) (bool, error) {
	s.updatedKey = key
	return s.found, nil
}

func (s *stubSalesTargetService) Save(_ context.Context, req service.SaveSalesTargetRequest) (*service.SavedSalesTarget, error) {
	s.saved = req
	if s.err != nil {
		return nil, s.err
	}
	return &service.SavedSalesTarget{Target: model.SalesTarget{Year: req.Year, SellerID: req.SellerID}}, nil
}

func (s *stubSalesTargetService) ListDetails(_ context.Context, _ repository.SalesTargetDetailFilter, _, _ int) ([]model.SalesTargetDetail, int64, error) {
	return []model.SalesTargetDetail{}, 0, nil
}

func (s *stubSalesTargetService) CreateDetail(_ context.Context, req service.CreateSalesTargetDetailRequest) (*model.SalesTargetDetail, error) {
	return &model.SalesTargetDetail{Year: req.Year, SellerID: req.SellerID, Month: req.Month}, s.err
}

func (s *stubSalesTargetService) UpdateDetail(_ context.Context, key model.SalesTargetDetailKey, _ service.UpdateSalesTargetDetailRequest) (*model.SalesTargetDetail, error) {
	return &model.SalesTargetDetail{Year: key.Year, SellerID: key.SellerID, Month: key.Month}, s.err
}

func (s *stubSalesTargetService) DeleteDetail(_ context.Context, key model.SalesTargetDetailKey) (bool, error) {
	s.deletedKey = key
	return s.found, nil
}

type stubRoleService struct {
	scope  repository.RoleScope
	order  []repository.PersonOrder
	code   *string
	people []service.RolePerson
}

func (s *stubRoleService) List(_ context.Context, _ repository.RoleFilter, _, _ int) ([]model.Role, int64, error) {
	return []model.Role{}, 0, nil
}

func (s *stubRoleService) ByPerson(_ context.Context, scope repository.RoleScope, _, _ int) ([]model.Role, int64, error) {
	s.scope = scope
	return []model.Role{}, 0, nil
}

func (s *stubRoleService) PeopleWithRoles(_ context.Context, scope repository.RoleScope, order []repository.PersonOrder, _, _ int) ([]service.RolePerson, int64, error) {
	s.scope, s.order = scope, order
	return s.people, int64(len(s.people)), nil
}

func (s *stubRoleService) PeopleByRole(_ context.Context, code *string, _, _ int) ([]service.RolePerson, int64, error) {
	s.code = code
	return s.people, int64(len(s.people)), nil
}

type routes interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func newRouter(hs ...routes) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	for _, h := range hs {
		h.RegisterRoutes(&r.RouterGroup)
	}
	return r
}

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
}

func perform(t *testing.T, r http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestPermissionHandler_Apply(t *testing.T) {
	perms := &stubPermissionService{}
	r := newRouter(NewPermissionHandler(perms, &stubAssignmentService{}))

	code, env := perform(t, r, http.MethodPost, "/api/permissions/apply", `{
		"adm_idpersona": 42,
		"adm_almacen": "W1",
		"adm_perfil": 3,
		"par_descrip1": "42-W1",
		"is_default_alm": true,
		"par_adm_list": [{"adm_almacen": "W1", "adm_tmov": "E01"}],
		"pnc_parametr_list": [{"par_idenpara": 9, "par_descrip1": "42-W1"}]
	}`)

	require.Equal(t, http.StatusOK, code, env.Error)
	assert.Equal(t, "success", env.Status)
	require.NotNil(t, perms.applied)
	assert.True(t, perms.applied.OwnerID.Equal(decimal.NewFromInt(42)))
	assert.True(t, perms.applied.IsDefault)
	assert.Len(t, perms.applied.Assignments, 1)
	assert.Len(t, perms.applied.Parameters, 1)

	var res service.ApplyResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Len(t, res.Assignments, 1)
	assert.Equal(t, "E01", res.Assignments[0].MovementType)
}

func TestPermissionHandler_ApplyRejectsBadPayload(t *testing.T) {
	perms := &stubPermissionService{}
	r := newRouter(NewPermissionHandler(perms, &stubAssignmentService{}))

	code, env := perform(t, r, http.MethodPost, "/api/permissions/apply", `{"adm_idpersona": 42}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Error, "Invalid request payload")
	assert.Nil(t, perms.applied)
}

func TestPermissionHandler_ErrorMapping(t *testing.T) {
	body := `{"adm_idpersona": 1, "adm_almacen": "W1", "adm_perfil": 3, "par_descrip2": "TRASPASO"}`

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &service.ValidationError{Fields: []string{"adm_uninegrec"}, Message: "adm_uninegrec is required"}, http.StatusBadRequest},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			perms := &stubPermissionService{err: tc.err}
			r := newRouter(NewPermissionHandler(perms, &stubAssignmentService{}))

			code, env := perform(t, r, http.MethodPost, "/api/permissions/apply-transfer", body)

			assert.Equal(t, tc.want, code)
			assert.Equal(t, tc.want, env.StatusCode)
			assert.Equal(t, tc.err.Error(), env.Error)
			require.NotNil(t, perms.transferred)
			assert.Equal(t, "TRASPASO", perms.transferred.Description)
		})
	}
}

func TestPermissionHandler_TransferEntryNeedsReceiverUnit(t *testing.T) {
	perms := &stubPermissionService{}
	r := newRouter(NewPermissionHandler(perms, &stubAssignmentService{}))

	code, _ := perform(t, r, http.MethodPost, "/api/permissions/apply-transfer",
		`{"adm_idpersona": 1, "adm_almacen": "W1", "adm_perfil": 3, "par_descrip2": "TRASPASO", "ts_exists": true}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Nil(t, perms.transferred)
}

func TestPermissionHandler_Search(t *testing.T) {
	assignments := &stubAssignmentService{searchResult: []service.PermissionSummary{{OwnerID: "42", Person: "Lopez Perez Ana"}}}
	r := newRouter(NewPermissionHandler(&stubPermissionService{}, assignments))

	code, env := perform(t, r, http.MethodGet, "/api/permissions/search?adm_perfil=3&adm_almacen=W1,%20W2,&page=2&per_page=5", "")

	require.Equal(t, http.StatusOK, code, env.Error)
	require.NotNil(t, assignments.search.ProfileID)
	assert.Equal(t, 3, *assignments.search.ProfileID)
	assert.Nil(t, assignments.search.Status)
	assert.Equal(t, []string{"W1", "W2"}, assignments.search.Warehouses)
	assert.Equal(t, 2, assignments.search.Page)
	assert.Equal(t, 5, assignments.search.PerPage)

	var rows []service.PermissionSummary
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	assert.Equal(t, "Lopez Perez Ana", rows[0].Person)
}

func TestPermissionHandler_SearchBadProfile(t *testing.T) {
	r := newRouter(NewPermissionHandler(&stubPermissionService{}, &stubAssignmentService{}))

	code, env := perform(t, r, http.MethodGet, "/api/permissions/search?adm_perfil=admin", "")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "query parameter adm_perfil must be an integer", env.Error)
}

func TestAssignmentHandler_ListFilters(t *testing.T) {
	assignments := &stubAssignmentService{}
	r := newRouter(NewAssignmentHandler(assignments))

	code, env := perform(t, r, http.MethodGet,
		"/api/assignments?adm_idpersona=42&adm_almdefault=true&adm_fechope=2024-05-17&search=CEN&per_page=500", "")

	require.Equal(t, http.StatusOK, code, env.Error)
	f := assignments.filter
	require.NotNil(t, f.OwnerID)
	assert.True(t, f.OwnerID.Equal(decimal.NewFromInt(42)))
	require.NotNil(t, f.IsDefault)
	assert.True(t, *f.IsDefault)
	require.NotNil(t, f.OperatedOn)
	assert.Equal(t, "2024-05-17", f.OperatedOn.Format("2006-01-02"))
	assert.Equal(t, "CEN", f.Search)
	assert.Nil(t, f.Warehouse)
	assert.Equal(t, 100, assignments.per)

	var page struct {
		Total   int64 `json:"total"`
		Page    int   `json:"page"`
		PerPage int   `json:"per_page"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 100, page.PerPage)
}

func TestAssignmentHandler_ListBadDate(t *testing.T) {
	r := newRouter(NewAssignmentHandler(&stubAssignmentService{}))

	code, env := perform(t, r, http.MethodGet, "/api/assignments?adm_fechaact=17/05/2024", "")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "query parameter adm_fechaact must be a date (YYYY-MM-DD)", env.Error)
}

func TestAssignmentHandler_Delete(t *testing.T) {
	assignments := &stubAssignmentService{found: true}
	r := newRouter(NewAssignmentHandler(assignments))

	code, env := perform(t, r, http.MethodDelete, "/api/assignments/42/W1/IN", "")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "W1", assignments.deleted.Warehouse)
	assert.Equal(t, "IN", assignments.deleted.MovementType)
	assert.JSONEq(t, `{"success": true, "message": "Assignment 42/W1/IN deleted successfully."}`, string(env.Data))

	assignments.found = false
	code, env = perform(t, r, http.MethodDelete, "/api/assignments/42/W1/IN", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"success": false, "message": "Assignment 42/W1/IN not found."}`, string(env.Data))
}

func TestAssignmentHandler_BadOwner(t *testing.T) {
	r := newRouter(NewAssignmentHandler(&stubAssignmentService{}))

	code, env := perform(t, r, http.MethodDelete, "/api/assignments/abc/W1/IN", "")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "owner must be a number", env.Error)
}

func TestAssignmentHandler_UpdateNotFound(t *testing.T) {
	r := newRouter(NewAssignmentHandler(&stubAssignmentService{updateErr: service.ErrNotFound}))

	code, _ := perform(t, r, http.MethodPut, "/api/assignments/42/W1/IN", `{"adm_status": "A"}`)

	assert.Equal(t, http.StatusNotFound, code)
}

func TestAssignmentHandler_Create(t *testing.T) {
	r := newRouter(NewAssignmentHandler(&stubAssignmentService{}))

	code, env := perform(t, r, http.MethodPost, "/api/assignments", `{"adm_idpersona": 42, "adm_almacen": "W1", "adm_tmov": "E01"}`)

	require.Equal(t, http.StatusCreated, code, env.Error)
	assert.Equal(t, http.StatusCreated, env.StatusCode)
}

func TestParameterHandler_ListFilters(t *testing.T) {
	params := &stubParameterService{}
	r := newRouter(NewParameterHandler(params))

	code, env := perform(t, r, http.MethodGet,
		"/api/parameters?par_tipopara=VENRP&par_idenpara__in=1,2&par_descrip2__notin=OTRO&par_importe1__not=0&order_by=par_descrip1,par_idparameter:desc", "")

	require.Equal(t, http.StatusOK, code, env.Error)
	f := params.filter
	require.NotNil(t, f.Type)
	assert.Equal(t, "VENRP", *f.Type)
	assert.Equal(t, []int64{1, 2}, f.EntityIDIn)
	assert.Equal(t, []string{"OTRO"}, f.Descrip2NotIn)
	assert.Nil(t, f.Descrip2In)
	require.NotNil(t, f.Amount1Not)
	assert.True(t, f.Amount1Not.IsZero())
	assert.Equal(t, []repository.ParameterOrder{
		{Column: "par_descrip1"},
		{Column: "par_idparameter", Desc: true},
	}, f.OrderBy)
}

func TestParameterHandler_ListBadInput(t *testing.T) {
	r := newRouter(NewParameterHandler(&stubParameterService{}))

	code, env := perform(t, r, http.MethodGet, "/api/parameters?par_idenpara__in=1,x", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "query parameter par_idenpara__in must be a list of integers", env.Error)

	code, env = perform(t, r, http.MethodGet, "/api/parameters?order_by=par_descrip1:sideways", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Error, "order_by")
}

func TestParameterHandler_ListServiceValidation(t *testing.T) {
	params := &stubParameterService{listErr: &service.ValidationError{Fields: []string{"order_by"}, Message: "cannot sort by par_descrip9"}}
	r := newRouter(NewParameterHandler(params))

	code, _ := perform(t, r, http.MethodGet, "/api/parameters?order_by=par_descrip9", "")

	assert.Equal(t, http.StatusBadRequest, code)
}

func TestParameterHandler_Delete(t *testing.T) {
	params := &stubParameterService{}
	r := newRouter(NewParameterHandler(params))

	code, env := perform(t, r, http.MethodDelete, "/api/parameters/12", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(12), params.deleted)
	assert.JSONEq(t, `{"success": true, "message": "Parameter 12 deleted successfully."}`, string(env.Data))

	code, env = perform(t, r, http.MethodDelete, "/api/parameters/twelve", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid parameter ID", env.Error)
}

func TestAuditHandler(t *testing.T) {
	audit := &stubAuditService{}
	r := newRouter(NewAuditHandler(audit))

	code, env := perform(t, r, http.MethodGet, "/api/audit-logs?bit_adm_almacen=W1&bit_id=not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "query parameter bit_id must be a UUID", env.Error)

	id := uuid.New()
	code, _ = perform(t, r, http.MethodGet, "/api/audit-logs?bit_adm_almacen=W1&bit_id="+id.String(), "")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, audit.filter.ID)
	assert.Equal(t, id, *audit.filter.ID)
	assert.Equal(t, "W1", *audit.filter.Warehouse)

	code, env = perform(t, r, http.MethodDelete, "/api/audit-logs/"+id.String(), "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, id, audit.deleted)
	assert.JSONEq(t, `{"success": false, "message": "Audit entry `+id.String()+` not found."}`, string(env.Data))

	code, _ = perform(t, r, http.MethodPut, "/api/audit-logs/"+id.String(), `{"bit_observaciones": "fixed"}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCatalogHandler(t *testing.T) {
	catalog := &stubCatalogService{}
	r := newRouter(NewCatalogHandler(catalog))

	code, env := perform(t, r, http.MethodPost, "/api/identifiers", `{"caip_enpara": "SA"}`)
	require.Equal(t, http.StatusCreated, code, env.Error)
	var ident model.Identifier
	require.NoError(t, json.Unmarshal(env.Data, &ident))
	assert.Equal(t, "SA", ident.Code)

	code, _ = perform(t, r, http.MethodPost, "/api/identifiers", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = perform(t, r, http.MethodGet, "/api/identifiers?caip_enpara=SA", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "SA", *catalog.identifierFilter.Code)

	code, _ = perform(t, r, http.MethodGet, "/api/persons?search=lopez&per_idpersona=42", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "lopez", catalog.personFilter.Search)
	assert.True(t, catalog.personFilter.ID.Equal(decimal.NewFromInt(42)))
}

func TestCatalogHandler_UsersDefaultToActive(t *testing.T) {
	catalog := &stubCatalogService{}
	r := newRouter(NewCatalogHandler(catalog))

	code, _ := perform(t, r, http.MethodGet, "/api/users?usu_nousuari=ana", "")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, catalog.userFilter.StatusCode)
	assert.Equal(t, model.StatusCodeActive, *catalog.userFilter.StatusCode)
	assert.Equal(t, "ana", *catalog.userFilter.GivenName)

	code, _ = perform(t, r, http.MethodGet, "/api/users?cast_cvstatus=", "")
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, catalog.userFilter.StatusCode, "empty status code lists every user")

	code, env := perform(t, r, http.MethodGet, "/api/users?usu_dias=many", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "query parameter usu_dias must be an integer", env.Error)

	code, _ = perform(t, r, http.MethodGet, "/api/statuses?cast_cvstatus=A&cast_idmodulo=3", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(3), *catalog.statusFilter.ModuleID)

	code, _ = perform(t, r, http.MethodGet, "/api/legacy-users?usu_idusuari=jlopez", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "jlopez", *catalog.legacyFilter.Login)
}

func TestSalesTargetHandler_Save(t *testing.T) {
	targets := &stubSalesTargetService{}
	r := newRouter(NewSalesTargetHandler(targets))

	code, env := perform(t, r, http.MethodPost, "/api/sales-targets/save",
		`{"obm_ano": 2024, "obm_vendedor": 77, "obm_sueldo": "15000.50", "obd_list": [{"obd_mes": 1, "obd_venta": 5000}]}`)
	require.Equal(t, http.StatusOK, code, env.Error)
	assert.True(t, targets.saved.Year.Equal(decimal.NewFromInt(2024)))
	assert.True(t, targets.saved.Salary.Equal(decimal.RequireFromString("15000.50")))
	require.Len(t, targets.saved.Details, 1)
	assert.True(t, targets.saved.Details[0].Month.Equal(decimal.NewFromInt(1)))

	code, _ = perform(t, r, http.MethodPost, "/api/sales-targets/save", `{"obm_ano": 2024, "obd_list": [{"obd_areavta": "AREA-TOO-LONG"}]}`)
	assert.Equal(t, http.StatusBadRequest, code)

	targets.err = &service.ValidationError{Message: "obd_mes must be between 1 and 12"}
	code, env = perform(t, r, http.MethodPost, "/api/sales-targets/save", `{"obm_ano": 2024, "obm_vendedor": 77}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Error, "obd_mes")
}

func TestSalesTargetHandler_Keys(t *testing.T) {
	targets := &stubSalesTargetService{found: true}
	r := newRouter(NewSalesTargetHandler(targets))

	code, env := perform(t, r, http.MethodDelete, "/api/sales-targets/2024/77", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"success": true, "message": "Sales target 2024-77 deleted successfully."}`, string(env.Data))

	code, env = perform(t, r, http.MethodPut, "/api/sales-targets/year/77", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid year", env.Error)

	targets.err = service.ErrNotFound
	code, _ = perform(t, r, http.MethodPut, "/api/sales-targets/2023/77", `{"obm_sueldo": 1}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.True(t, targets.updatedKey.Year.Equal(decimal.NewFromInt(2023)))

	targets.err, targets.found = nil, false
	code, env = perform(t, r, http.MethodDelete, "/api/sales-target-details/2024/77/3", "")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, targets.deletedKey.Month.Equal(decimal.NewFromInt(3)))
	assert.JSONEq(t, `{"success": false, "message": "Sales target month 2024-77-3 not found."}`, string(env.Data))

	code, _ = perform(t, r, http.MethodGet, "/api/sales-targets?obm_vendedor=77&search=op", "")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, targets.filter.SellerID.Equal(decimal.NewFromInt(77)))
	assert.Equal(t, "op", targets.filter.Search)
}

func TestRoleHandler(t *testing.T) {
	roles := &stubRoleService{people: []service.RolePerson{{PersonID: "1", Seller: "Ana Lopez Diaz - 1"}}}
	r := newRouter(NewRoleHandler(roles))

	code, env := perform(t, r, http.MethodGet, "/api/roles/people-with-roles?par_tipopara=VENDEDORES&par_idenpara__in=10,11&order_by=per_paterno:desc", "")
	require.Equal(t, http.StatusOK, code, env.Error)
	assert.Equal(t, "VENDEDORES", *roles.scope.ParamType)
	assert.Equal(t, []string{"10", "11"}, roles.scope.Codes)
	assert.Equal(t, model.StatusCodeActive, *roles.scope.ParamStatusCode)
	assert.Equal(t, []repository.PersonOrder{{Column: "per_paterno", Desc: true}}, roles.order)
	assert.Contains(t, string(env.Data), "Ana Lopez Diaz - 1")

	code, _ = perform(t, r, http.MethodGet, "/api/roles/by-person?per_idpersona=1&cast_cvstatus=", "")
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, roles.scope.ParamStatusCode)
	assert.True(t, roles.scope.PersonID.Equal(decimal.NewFromInt(1)))

	code, env = perform(t, r, http.MethodGet, "/api/roles/by-person?rol_idrolestatus=x", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "query parameter rol_idrolestatus must be an integer", env.Error)

	code, _ = perform(t, r, http.MethodGet, "/api/roles/people-by-role?rol_idrol=VEN", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "VEN", *roles.code)
}
