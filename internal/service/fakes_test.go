package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errDuplicateKey = errors.New("duplicate key value violates unique constraint")

// memStore backs the in-memory repositories. memTx snapshots it on entry and
// restores the snapshot when the unit fails, mirroring a database rollback.
type memStore struct {
	assignments []model.Assignment
	parameters  []model.Parameter
	identifiers []model.Identifier
	persons     []model.Person
	audit       []model.AuditEntry
	targets     []model.SalesTarget
	details     []model.SalesTargetDetail
	statuses    []model.Status
	users       []model.User
	legacyUsers []model.LegacyUser
	roles       []model.Role
	nextParamID int64

	// failParameterCreate makes the n-th parameter insert (1-based) fail
	failParameterCreate int
	parameterCreates    int
	failAudit           error
	// failDetailCreate makes the n-th target detail insert (1-based) fail
	failDetailCreate int
	detailCreates    int

	assignmentDeletes int
	commits           int
	rollbacks         int
}

func newMemStore() *memStore {
	return &memStore{nextParamID: 1}
}

func (m *memStore) snapshot() memStore {
	cp := *m
	cp.assignments = append([]model.Assignment(nil), m.assignments...)
	cp.parameters = append([]model.Parameter(nil), m.parameters...)
	cp.identifiers = append([]model.Identifier(nil), m.identifiers...)
	cp.persons = append([]model.Person(nil), m.persons...)
	cp.audit = append([]model.AuditEntry(nil), m.audit...)
	cp.targets = append([]model.SalesTarget(nil), m.targets...)
	cp.details = append([]model.SalesTargetDetail(nil), m.details...)
	return cp
}

func (m *memStore) restore(s memStore) {
	m.assignments = s.assignments
	m.parameters = s.parameters
	m.identifiers = s.identifiers
	m.persons = s.persons
	m.audit = s.audit
	m.targets = s.targets
	m.details = s.details
	m.nextParamID = s.nextParamID
}

type memTx struct{ store *memStore }

func (t memTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	snap := t.store.snapshot()
	if err := fn(ctx); err != nil {
		t.store.restore(snap)
		t.store.rollbacks++
		return err
	}
	t.store.commits++
	return nil
}

// --- assignments ---

type memAssignmentRepo struct{ store *memStore }

func sameKey(a model.Assignment, key model.AssignmentKey) bool {
	return a.OwnerID.Equal(key.OwnerID) && a.Warehouse == key.Warehouse && a.MovementType == key.MovementType
}

func keyOf(a model.Assignment) model.AssignmentKey {
	return model.AssignmentKey{OwnerID: a.OwnerID, Warehouse: a.Warehouse, MovementType: a.MovementType}
}

func (r memAssignmentRepo) Create(_ context.Context, a *model.Assignment) error {
	for _, existing := range r.store.assignments {
		if sameKey(existing, keyOf(*a)) {
			return errDuplicateKey
		}
	}
	r.store.assignments = append(r.store.assignments, *a)
	return nil
}

func (r memAssignmentRepo) Update(_ context.Context, key model.AssignmentKey, fields map[string]interface{}) (int64, error) {
	for i, a := range r.store.assignments {
		if !sameKey(a, key) {
			continue
		}
		for col, v := range fields {
			switch col {
			case "adm_tmov":
				a.MovementType = v.(string)
			case "adm_status":
				a.Status = v.(string)
			case "adm_cveusu":
				a.OperatorKey = v.(string)
			case "adm_almdefault":
				a.IsDefault = v.(bool)
			case "adm_perfil":
				a.ProfileID = v.(int)
			case "adm_uninegrec":
				a.ReceiverUnit = v.(string)
			case "adm_ordencompra":
				a.PurchaseOrder = v.(string)
			case "adm_fechaact":
				d := v.(time.Time)
				a.UpdatedOn = &d
			case "adm_fechope":
				d := v.(time.Time)
				a.OperatedOn = &d
			}
		}
		r.store.assignments[i] = a
		return 1, nil
	}
	return 0, nil
}

func (r memAssignmentRepo) Delete(_ context.Context, key model.AssignmentKey) (int64, error) {
	return r.remove(func(a model.Assignment) bool { return sameKey(a, key) }), nil
}

func (r memAssignmentRepo) FindByKey(_ context.Context, key model.AssignmentKey) (*model.Assignment, error) {
	for _, a := range r.store.assignments {
		if sameKey(a, key) {
			found := a
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memAssignmentRepo) List(_ context.Context, f repository.AssignmentFilter, offset, limit int) ([]model.Assignment, int64, error) {
	var out []model.Assignment
	for _, a := range r.store.assignments {
		if f.OwnerID != nil && !a.OwnerID.Equal(*f.OwnerID) {
			continue
		}
		if f.Warehouse != nil && a.Warehouse != *f.Warehouse {
			continue
		}
		if f.ProfileID != nil && a.ProfileID != *f.ProfileID {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(a.Warehouse), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, a)
	}
	return page(out, offset, limit), int64(len(out)), nil
}

func (r memAssignmentRepo) DeleteScope(_ context.Context, sc repository.AssignmentScope) (int64, error) {
	r.store.assignmentDeletes++
	return r.remove(func(a model.Assignment) bool {
		if !a.OwnerID.Equal(sc.OwnerID) || a.Warehouse != sc.Warehouse || a.ProfileID != sc.ProfileID {
			return false
		}
		if sc.MovementTypes != nil && !contains(sc.MovementTypes, a.MovementType) {
			return false
		}
		if sc.ReceiverUnit != nil && a.ReceiverUnit != *sc.ReceiverUnit {
			return false
		}
		return true
	}), nil
}

func (r memAssignmentRepo) DemoteDefaults(_ context.Context, owner decimal.Decimal, profile int, keep string) (int64, error) {
	var n int64
	for i, a := range r.store.assignments {
		if a.OwnerID.Equal(owner) && a.ProfileID == profile && a.Warehouse != keep {
			r.store.assignments[i].IsDefault = false
			n++
		}
	}
	return n, nil
}

func (r memAssignmentRepo) ListDistinctOwners(_ context.Context, profile *int, status *string, warehouses []string, offset, limit int) ([]model.Assignment, error) {
	seen := map[string]bool{}
	var out []model.Assignment
	for _, a := range r.store.assignments {
		if profile != nil && a.ProfileID != *profile {
			continue
		}
		if status != nil && a.Status != *status {
			continue
		}
		if warehouses != nil && !contains(warehouses, a.Warehouse) {
			continue
		}
		if seen[a.OwnerID.String()] {
			continue
		}
		seen[a.OwnerID.String()] = true
		out = append(out, a)
	}
	return page(out, offset, limit), nil
}

func (r memAssignmentRepo) remove(match func(model.Assignment) bool) int64 {
	kept := r.store.assignments[:0:0]
	var n int64
	for _, a := range r.store.assignments {
		if match(a) {
			n++
			continue
		}
		kept = append(kept, a)
	}
	r.store.assignments = kept
	return n
}

// --- parameters ---

type memParameterRepo struct{ store *memStore }

func (r memParameterRepo) Create(_ context.Context, p *model.Parameter) error {
	r.store.parameterCreates++
	if r.store.failParameterCreate > 0 && r.store.parameterCreates == r.store.failParameterCreate {
		return errDuplicateKey
	}
	p.ID = r.store.nextParamID
	r.store.nextParamID++
	r.store.parameters = append(r.store.parameters, *p)
	return nil
}

func (r memParameterRepo) Update(_ context.Context, id int64, fields map[string]interface{}) (int64, error) {
	for i, p := range r.store.parameters {
		if p.ID != id {
			continue
		}
		for col, v := range fields {
			switch col {
			case "par_tipopara":
				p.Type = v.(string)
			case "par_descrip1":
				p.Descrip1 = v.(string)
			case "par_descrip2":
				p.Descrip2 = v.(string)
			case "par_hora1":
				p.Time1 = v.(string)
			case "par_idstatus":
				p.StatusID = v.(int64)
			case "par_importe1":
				d := v.(decimal.Decimal)
				p.Amount1 = &d
			case "par_fecha1":
				d := v.(time.Time)
				p.Date1 = &d
			case "par_fechope":
				d := v.(time.Time)
				p.OperatedOn = &d
			case "par_horaope":
				p.OperatedTime = v.(string)
			}
		}
		r.store.parameters[i] = p
		return 1, nil
	}
	return 0, nil
}

func (r memParameterRepo) Delete(_ context.Context, id int64) (int64, error) {
	return r.remove(func(p model.Parameter) bool { return p.ID == id }), nil
}

func (r memParameterRepo) FindByID(_ context.Context, id int64) (*model.Parameter, error) {
	for _, p := range r.store.parameters {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memParameterRepo) List(_ context.Context, f repository.ParameterFilter, offset, limit int) ([]model.Parameter, int64, error) {
	var out []model.Parameter
	for _, p := range r.store.parameters {
		if f.Type != nil && p.Type != *f.Type {
			continue
		}
		if f.Descrip1 != nil && p.Descrip1 != *f.Descrip1 {
			continue
		}
		out = append(out, p)
	}
	return page(out, offset, limit), int64(len(out)), nil
}

func (r memParameterRepo) DeleteByDescription(_ context.Context, paramType, descrip1 string) (int64, error) {
	return r.remove(func(p model.Parameter) bool { return p.Type == paramType && p.Descrip1 == descrip1 }), nil
}

func (r memParameterRepo) ResolveEntityCodes(_ context.Context, paramType string, descrip2 []string) ([]string, error) {
	var codes []string
	for _, p := range r.store.parameters {
		if p.Type != paramType || !contains(descrip2, p.Descrip2) {
			continue
		}
		if code, ok := r.code(p.EntityID); ok {
			codes = append(codes, code)
		}
	}
	return codes, nil
}

func (r memParameterRepo) DescribeEntity(_ context.Context, paramType, code string) (string, error) {
	for _, p := range r.store.parameters {
		if c, ok := r.code(p.EntityID); ok && p.Type == paramType && c == code {
			return p.Descrip1, nil
		}
	}
	return "", nil
}

func (r memParameterRepo) DescribeBySlot5(_ context.Context, paramType, value string) (string, error) {
	for _, p := range r.store.parameters {
		if p.Type == paramType && p.Descrip5 == value {
			return p.Descrip1, nil
		}
	}
	return "", nil
}

func (r memParameterRepo) code(entityID int64) (string, bool) {
	for _, i := range r.store.identifiers {
		if i.ID == entityID {
			return i.Code, true
		}
	}
	return "", false
}

func (r memParameterRepo) remove(match func(model.Parameter) bool) int64 {
	kept := r.store.parameters[:0:0]
	var n int64
	for _, p := range r.store.parameters {
		if match(p) {
			n++
			continue
		}
		kept = append(kept, p)
	}
	r.store.parameters = kept
	return n
}

// --- audit ---

type memAuditRepo struct{ store *memStore }

func (r memAuditRepo) Log(_ context.Context, e *model.AuditEntry) error {
	if r.store.failAudit != nil {
		return r.store.failAudit
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.store.audit = append(r.store.audit, *e)
	return nil
}

func (r memAuditRepo) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	for i, e := range r.store.audit {
		if e.ID != id {
			continue
		}
		if v, ok := fields["bit_observaciones"]; ok {
			e.Observations = v.(string)
		}
		if v, ok := fields["bit_cveusu"]; ok {
			e.OperatorKey = v.(string)
		}
		if v, ok := fields["bit_adm_almacen"]; ok {
			e.Warehouse = v.(string)
		}
		r.store.audit[i] = e
		return 1, nil
	}
	return 0, nil
}

func (r memAuditRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	for i, e := range r.store.audit {
		if e.ID == id {
			r.store.audit = append(r.store.audit[:i:i], r.store.audit[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r memAuditRepo) FindByID(_ context.Context, id uuid.UUID) (*model.AuditEntry, error) {
	for _, e := range r.store.audit {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memAuditRepo) List(_ context.Context, f repository.AuditFilter, offset, limit int) ([]model.AuditEntry, int64, error) {
	var out []model.AuditEntry
	for _, e := range r.store.audit {
		if f.Warehouse != nil && e.Warehouse != *f.Warehouse {
			continue
		}
		out = append(out, e)
	}
	return page(out, offset, limit), int64(len(out)), nil
}

// --- persons ---

type memPersonRepo struct{ store *memStore }

func (r memPersonRepo) FindByID(_ context.Context, id decimal.Decimal) (*model.Person, error) {
	for _, p := range r.store.persons {
		if p.ID.Equal(id) {
			found := p
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memPersonRepo) FindByIDs(_ context.Context, ids []decimal.Decimal) (map[string]model.Person, error) {
	out := map[string]model.Person{}
	for _, id := range ids {
		for _, p := range r.store.persons {
			if p.ID.Equal(id) {
				out[p.ID.String()] = p
			}
		}
	}
	return out, nil
}

func (r memPersonRepo) List(_ context.Context, _ repository.PersonFilter, offset, limit int) ([]model.Person, int64, error) {
	return page(r.store.persons, offset, limit), int64(len(r.store.persons)), nil
}

// --- identifiers ---

type memIdentifierRepo struct{ store *memStore }

func (r memIdentifierRepo) Create(_ context.Context, i *model.Identifier) error {
	for _, existing := range r.store.identifiers {
		if existing.Code == i.Code {
			return errDuplicateKey
		}
	}
	i.ID = int64(len(r.store.identifiers) + 1)
	r.store.identifiers = append(r.store.identifiers, *i)
	return nil
}

func (r memIdentifierRepo) List(_ context.Context, f repository.IdentifierFilter, offset, limit int) ([]model.Identifier, int64, error) {
	var out []model.Identifier
	for _, i := range r.store.identifiers {
		if f.Code != nil && i.Code != *f.Code {
			continue
		}
		out = append(out, i)
	}
	return page(out, offset, limit), int64(len(out)), nil
}

// --- sales targets ---

type memTargetRepo struct{ store *memStore }

func sameTarget(t model.SalesTarget, key model.SalesTargetKey) bool {
	return t.Year.Equal(key.Year) && t.SellerID.Equal(key.SellerID)
}

func (r memTargetRepo) Create(_ context.Context, t *model.SalesTarget) error {
	for _, existing := range r.store.targets {
		if sameTarget(existing, model.SalesTargetKey{Year: t.Year, SellerID: t.SellerID}) {
			return errDuplicateKey
		}
	}
	r.store.targets = append(r.store.targets, *t)
	return nil
}

func (r memTargetRepo) Upsert(_ context.Context, t *model.SalesTarget) error {
	for i, existing := range r.store.targets {
		if sameTarget(existing, model.SalesTargetKey{Year: t.Year, SellerID: t.SellerID}) {
			r.store.targets[i] = *t
			return nil
		}
	}
	r.store.targets = append(r.store.targets, *t)
	return nil
}

func (r memTargetRepo) Update(_ context.Context, key model.SalesTargetKey, fields map[string]interface{}) (int64, error) {
	for i, t := range r.store.targets {
		if !sameTarget(t, key) {
			continue
		}
		for col, v := range fields {
			switch col {
			case "obm_sueldo":
				d := v.(decimal.Decimal)
				t.Salary = &d
			case "obm_cveusu":
				t.OperatorKey = v.(string)
			case "obm_fechope":
				d := v.(time.Time)
				t.OperatedOn = &d
			case "obm_horaope":
				t.OperatedTime = v.(string)
			}
		}
		r.store.targets[i] = t
		return 1, nil
	}
	return 0, nil
}

func (r memTargetRepo) Delete(_ context.Context, key model.SalesTargetKey) (int64, error) {
	for i, t := range r.store.targets {
		if sameTarget(t, key) {
			r.store.targets = append(r.store.targets[:i:i], r.store.targets[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r memTargetRepo) FindByKey(_ context.Context, key model.SalesTargetKey) (*model.SalesTarget, error) {
	for _, t := range r.store.targets {
		if sameTarget(t, key) {
			found := t
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memTargetRepo) List(_ context.Context, f repository.SalesTargetFilter, offset, limit int) ([]model.SalesTarget, int64, error) {
	var out []model.SalesTarget
	for _, t := range r.store.targets {
		if f.Year != nil && !t.Year.Equal(*f.Year) {
			continue
		}
		if f.SellerID != nil && !t.SellerID.Equal(*f.SellerID) {
			continue
		}
		out = append(out, t)
	}
	return page(out, offset, limit), int64(len(out)), nil
}

type memDetailRepo struct{ store *memStore }

func sameDetail(d model.SalesTargetDetail, key model.SalesTargetDetailKey) bool {
	return d.Year.Equal(key.Year) && d.SellerID.Equal(key.SellerID) && d.Month.Equal(key.Month)
}

func (r memDetailRepo) Create(_ context.Context, d *model.SalesTargetDetail) error {
	r.store.detailCreates++
	if r.store.failDetailCreate > 0 && r.store.detailCreates == r.store.failDetailCreate {
		return errDuplicateKey
	}
	for _, existing := range r.store.details {
		if sameDetail(existing, model.SalesTargetDetailKey{Year: d.Year, SellerID: d.SellerID, Month: d.Month}) {
			return errDuplicateKey
		}
	}
	r.store.details = append(r.store.details, *d)
	return nil
}

func (r memDetailRepo) Update(_ context.Context, key model.SalesTargetDetailKey, fields map[string]interface{}) (int64, error) {
	for i, d := range r.store.details {
		if !sameDetail(d, key) {
			continue
		}
		for col, v := range fields {
			switch col {
			case "obd_venta":
				n := v.(decimal.Decimal)
				d.Sales = &n
			case "obd_comision":
				n := v.(decimal.Decimal)
				d.Commission = &n
			case "obd_cveusu":
				d.OperatorKey = v.(string)
			case "obd_areavta":
				d.SalesArea = v.(string)
			case "obd_horaope":
				d.OperatedTime = v.(string)
			}
		}
		r.store.details[i] = d
		return 1, nil
	}
	return 0, nil
}

func (r memDetailRepo) Delete(_ context.Context, key model.SalesTargetDetailKey) (int64, error) {
	for i, d := range r.store.details {
		if sameDetail(d, key) {
			r.store.details = append(r.store.details[:i:i], r.store.details[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r memDetailRepo) DeleteByTarget(_ context.Context, key model.SalesTargetKey) (int64, error) {
	var kept []model.SalesTargetDetail
	var n int64
	for _, d := range r.store.details {
		if d.Year.Equal(key.Year) && d.SellerID.Equal(key.SellerID) {
			n++
			continue
		}
		kept = append(kept, d)
	}
	r.store.details = kept
	return n, nil
}

func (r memDetailRepo) FindByKey(_ context.Context, key model.SalesTargetDetailKey) (*model.SalesTargetDetail, error) {
	for _, d := range r.store.details {
		if sameDetail(d, key) {
			found := d
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memDetailRepo) List(_ context.Context, f repository.SalesTargetDetailFilter, offset, limit int) ([]model.SalesTargetDetail, int64, error) {
	var out []model.SalesTargetDetail
	for _, d := range r.store.details {
		if f.Month != nil && !d.Month.Equal(*f.Month) {
			continue
		}
		out = append(out, d)
	}
	return page(out, offset, limit), int64(len(out)), nil
}

// --- accounts ---

type memStatusRepo struct{ store *memStore }

func (r memStatusRepo) List(_ context.Context, f repository.StatusFilter, offset, limit int) ([]model.Status, int64, error) {
	var out []model.Status
	for _, st := range r.store.statuses {
		if f.Code != nil && st.Code != *f.Code {
			continue
		}
		out = append(out, st)
	}
	return page(out, offset, limit), int64(len(out)), nil
}

type memUserRepo struct{ store *memStore }

func (r memUserRepo) statusCode(id *int64) string {
	if id == nil {
		return ""
	}
	for _, st := range r.store.statuses {
		if st.ID == *id {
			return st.Code
		}
	}
	return ""
}

func (r memUserRepo) List(_ context.Context, f repository.UserFilter, offset, limit int) ([]model.User, int64, error) {
	var out []model.User
	for _, u := range r.store.users {
		if f.StatusCode != nil && r.statusCode(u.StatusID) != *f.StatusCode {
			continue
		}
		if f.Login != nil && u.Login != *f.Login {
			continue
		}
		out = append(out, u)
	}
	return page(out, offset, limit), int64(len(out)), nil
}

func (r memUserRepo) ListLegacy(_ context.Context, f repository.LegacyUserFilter, offset, limit int) ([]model.LegacyUser, int64, error) {
	var out []model.LegacyUser
	for _, u := range r.store.legacyUsers {
		if f.Status != nil && u.Status != *f.Status {
			continue
		}
		out = append(out, u)
	}
	return page(out, offset, limit), int64(len(out)), nil
}

// memRoleRepo ignores the parameter join; scope narrows on codes, status and person only
type memRoleRepo struct{ store *memStore }

func (r memRoleRepo) inScope(role model.Role, sc repository.RoleScope) bool {
	if sc.Codes != nil && !contains(sc.Codes, role.Code) {
		return false
	}
	if sc.StatusID != nil && (role.StatusID == nil || *role.StatusID != *sc.StatusID) {
		return false
	}
	if sc.PersonID != nil && !role.PersonID.Equal(*sc.PersonID) {
		return false
	}
	return true
}

func (r memRoleRepo) List(_ context.Context, f repository.RoleFilter, offset, limit int) ([]model.Role, int64, error) {
	var out []model.Role
	for _, role := range r.store.roles {
		if f.Code != nil && role.Code != *f.Code {
			continue
		}
		out = append(out, role)
	}
	return page(out, offset, limit), int64(len(out)), nil
}

func (r memRoleRepo) ListScoped(_ context.Context, sc repository.RoleScope, offset, limit int) ([]model.Role, int64, error) {
	var out []model.Role
	for _, role := range r.store.roles {
		if r.inScope(role, sc) {
			out = append(out, role)
		}
	}
	return page(out, offset, limit), int64(len(out)), nil
}

func (r memRoleRepo) holders(match func(model.Role) bool) []model.Person {
	var out []model.Person
	for _, p := range r.store.persons {
		for _, role := range r.store.roles {
			if role.PersonID.Equal(p.ID) && match(role) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func (r memRoleRepo) PeopleWithRoles(_ context.Context, sc repository.RoleScope, _ []repository.PersonOrder, offset, limit int) ([]model.Person, int64, error) {
	out := r.holders(func(role model.Role) bool { return r.inScope(role, sc) })
	return page(out, offset, limit), int64(len(out)), nil
}

func (r memRoleRepo) PeopleByRole(_ context.Context, code *string, offset, limit int) ([]model.Person, int64, error) {
	out := r.holders(func(role model.Role) bool { return code == nil || role.Code == *code })
	return page(out, offset, limit), int64(len(out)), nil
}

// --- helpers ---

func page[T any](rows []T, offset, limit int) []T {
	if offset >= len(rows) {
		return nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
