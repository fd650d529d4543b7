// Package roster keeps employee records beside the catalog, on the same
// store and with the same rules: validated input, values in and out, and
// serialized writes.
package roster

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/wardrobe-catalog/internal/app/roster/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/app/roster/repo"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_employee"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_sequence"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/clock"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/committer"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
)

// Tables lists the store tables the roster reads and writes.
func Tables() []string {
	return []string{m_employee.TableName, m_sequence.TableName}
}

// NewEmployee holds the attributes of an employee to add.
// PayMode is MONTHLY_SALARY or HOURLY_RATE.
type NewEmployee struct {
	Name          string
	DateOfJoining time.Time
	Phone         string
	NationalID    string
	PayMode       string
	PayAmount     decimal.Decimal
}

// Roster owns every employee record.
type Roster struct {
	db        *memdb.DB
	committer *committer.Committer
	repo      *repo.EmployeeRepo
	clock     clock.Clock
}

// New creates a Roster on db, creating its tables if needed.
func New(db *memdb.DB, clk clock.Clock) *Roster {
	for _, t := range Tables() {
		db.CreateTable(t)
	}
	return &Roster{
		db:        db,
		committer: committer.NewCommitter(db),
		repo:      repo.NewEmployeeRepo(),
		clock:     clk,
	}
}

// AddEmployee validates and stores an employee with the next id. A national
// ID already on the roster fails with domain.ErrDuplicateNationalID and
// nothing is written.
func (r *Roster) AddEmployee(ctx context.Context, in NewEmployee) (domain.EmployeeSnapshot, error) {
	pay, err := domain.NewPay(in.PayMode, in.PayAmount)
	if err != nil {
		return domain.EmployeeSnapshot{}, err
	}
	now := r.clock.Now()
	if err := domain.ValidateNewEmployee(in.Name, in.DateOfJoining, in.Phone, in.NationalID, pay, now); err != nil {
		return domain.EmployeeSnapshot{}, err
	}

	var snapshot domain.EmployeeSnapshot
	err = r.committer.ReadWrite(ctx, func(ctx context.Context, txn *memdb.ReadWriteTransaction, plan *committer.CommitPlan) error {
		_, err := r.repo.FindByNationalID(ctx, txn, in.NationalID)
		switch {
		case err == nil:
			return domain.ErrDuplicateNationalID
		case !errors.Is(err, domain.ErrRecordNotFound):
			return err
		}

		id, seqMut, err := r.repo.NextID(ctx, txn)
		if err != nil {
			return err
		}

		emp, err := domain.NewEmployee(id, in.Name, in.DateOfJoining, in.Phone, in.NationalID, pay, now)
		if err != nil {
			return err
		}

		plan.Add(seqMut)
		plan.Add(r.repo.InsertMut(emp))
		snapshot = emp.Snapshot()
		return nil
	})
	if err != nil {
		return domain.EmployeeSnapshot{}, err
	}
	return snapshot, nil
}

// DeleteEmployee removes the employee with the given id.
func (r *Roster) DeleteEmployee(ctx context.Context, employeeID int64) error {
	return r.committer.ReadWrite(ctx, func(ctx context.Context, txn *memdb.ReadWriteTransaction, plan *committer.CommitPlan) error {
		emp, err := r.repo.GetByID(ctx, txn, employeeID)
		if err != nil {
			return err
		}
		plan.Add(r.repo.DeleteMut(emp))
		return nil
	})
}

// FindByNationalID returns the employee holding nationalID.
func (r *Roster) FindByNationalID(ctx context.Context, nationalID string) (domain.EmployeeSnapshot, error) {
	emp, err := r.repo.FindByNationalID(ctx, r.db, nationalID)
	if err != nil {
		return domain.EmployeeSnapshot{}, err
	}
	return emp.Snapshot(), nil
}

// ListAll returns every employee in insertion order.
func (r *Roster) ListAll(ctx context.Context) ([]domain.EmployeeSnapshot, error) {
	return r.list(ctx, false)
}

// ListAllByJoiningDate returns every employee, earliest joiner first.
func (r *Roster) ListAllByJoiningDate(ctx context.Context) ([]domain.EmployeeSnapshot, error) {
	return r.list(ctx, true)
}

func (r *Roster) list(ctx context.Context, byJoiningDate bool) ([]domain.EmployeeSnapshot, error) {
	employees, err := r.repo.List(ctx, r.db, byJoiningDate)
	if err != nil {
		return nil, err
	}
	out := make([]domain.EmployeeSnapshot, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.Snapshot())
	}
	return out, nil
}
