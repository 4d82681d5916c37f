package service

import (
	"context"

	"github.com/VictorGlez97/almperms/internal/metrics"
	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"

	"github.com/shopspring/decimal"
)

type step struct {
	name string
	run  func(ctx context.Context) error
}

// changeSet stages the deletes, demotion and inserts of one multi-table replacement.
// Nothing touches the store until commit, which runs every step in order inside a
// single transaction; the first failing step rolls the whole set back.
type changeSet struct {
	steps   []step
	deleted map[string]int64
	created map[string]int
	demoted int64
	failed  string
}

func newChangeSet() *changeSet {
	return &changeSet{
		deleted: make(map[string]int64),
		created: make(map[string]int),
	}
}

func (cs *changeSet) add(name string, run func(ctx context.Context) error) {
	cs.steps = append(cs.steps, step{name: name, run: run})
}

func (cs *changeSet) deleteAssignments(repo repository.AssignmentRepository, scope func() (repository.AssignmentScope, bool)) {
	cs.add("delete assignments", func(ctx context.Context) error {
		sc, ok := scope()
		if !ok {
			return nil
		}
		n, err := repo.DeleteScope(ctx, sc)
		cs.deleted[model.Assignment{}.TableName()] += n
		return err
	})
}

func (cs *changeSet) deleteParameters(repo repository.ParameterRepository, paramType, descrip1 string) {
	cs.add("delete parameters", func(ctx context.Context) error {
		n, err := repo.DeleteByDescription(ctx, paramType, descrip1)
		cs.deleted[model.Parameter{}.TableName()] += n
		return err
	})
}

func (cs *changeSet) demoteDefaults(repo repository.AssignmentRepository, ownerID decimal.Decimal, profileID int, keepWarehouse string) {
	cs.add("demote defaults", func(ctx context.Context) error {
		n, err := repo.DemoteDefaults(ctx, ownerID, profileID, keepWarehouse)
		cs.demoted += n
		return err
	})
}

func (cs *changeSet) insertAssignments(repo repository.AssignmentRepository, rows []model.Assignment) {
	cs.add("insert assignments", func(ctx context.Context) error {
		for i := range rows {
			if err := repo.Create(ctx, &rows[i]); err != nil {
				return err
			}
			cs.created[model.Assignment{}.TableName()]++
		}
		return nil
	})
}

func (cs *changeSet) insertParameters(repo repository.ParameterRepository, rows []model.Parameter) {
	cs.add("insert parameters", func(ctx context.Context) error {
		for i := range rows {
			if err := repo.Create(ctx, &rows[i]); err != nil {
				return err
			}
			cs.created[model.Parameter{}.TableName()]++
		}
		return nil
	})
}

func (cs *changeSet) upsertSalesTarget(repo repository.SalesTargetRepository, t *model.SalesTarget) {
	cs.add("upsert sales target", func(ctx context.Context) error {
		if err := repo.Upsert(ctx, t); err != nil {
			return err
		}
		cs.created[t.TableName()]++
		return nil
	})
}

func (cs *changeSet) deleteTargetDetails(repo repository.SalesTargetDetailRepository, key model.SalesTargetKey) {
	cs.add("delete target details", func(ctx context.Context) error {
		n, err := repo.DeleteByTarget(ctx, key)
		cs.deleted[model.SalesTargetDetail{}.TableName()] += n
		return err
	})
}

func (cs *changeSet) deleteSalesTarget(repo repository.SalesTargetRepository, key model.SalesTargetKey) {
	cs.add("delete sales target", func(ctx context.Context) error {
		n, err := repo.Delete(ctx, key)
		cs.deleted[model.SalesTarget{}.TableName()] += n
		return err
	})
}

func (cs *changeSet) insertTargetDetails(repo repository.SalesTargetDetailRepository, rows []model.SalesTargetDetail) {
	cs.add("insert target details", func(ctx context.Context) error {
		for i := range rows {
			if err := repo.Create(ctx, &rows[i]); err != nil {
				return err
			}
			cs.created[model.SalesTargetDetail{}.TableName()]++
		}
		return nil
	})
}

// audit builds its entry when the step runs so it can reference rows inserted earlier
func (cs *changeSet) audit(repo repository.AuditRepository, entry func() *model.AuditEntry) {
	cs.add("write audit entry", func(ctx context.Context) error {
		e := entry()
		if err := repo.Log(ctx, e); err != nil {
			return err
		}
		cs.created[e.TableName()]++
		return nil
	})
}

// commit returns the failing step's error unchanged
func (cs *changeSet) commit(ctx context.Context, tx repository.TransactionManager) error {
	return tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, st := range cs.steps {
			if err := st.run(txCtx); err != nil {
				cs.failed = st.name
				return err
			}
		}
		return nil
	})
}

// totalDeleted sums rows removed across tables
func (cs *changeSet) totalDeleted() int64 {
	var n int64
	for _, v := range cs.deleted {
		n += v
	}
	return n
}

// record publishes row counts of a committed set
func (cs *changeSet) record() {
	for table, n := range cs.deleted {
		metrics.RowsDeletedTotal.WithLabelValues(table).Add(float64(n))
	}
	for table, n := range cs.created {
		metrics.RowsCreatedTotal.WithLabelValues(table).Add(float64(n))
	}
	metrics.DefaultsDemotedTotal.Add(float64(cs.demoted))
}
