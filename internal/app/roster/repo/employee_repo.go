package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/wardrobe-catalog/internal/app/roster/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_employee"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_sequence"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/query"
)

// EmployeeRepo reads employees and builds their mutations.
type EmployeeRepo struct {
	model    *m_employee.Model
	sequence *m_sequence.Model
}

// NewEmployeeRepo creates a new EmployeeRepo.
func NewEmployeeRepo() *EmployeeRepo {
	return &EmployeeRepo{
		model:    m_employee.NewModel(),
		sequence: m_sequence.NewModel(),
	}
}

// NextID allocates the next employee id.
func (r *EmployeeRepo) NextID(ctx context.Context, rd memdb.Reader) (int64, *memdb.Mutation, error) {
	return r.sequence.Allocate(ctx, rd, m_employee.SequenceName)
}

// InsertMut creates a mutation for inserting an employee.
func (r *EmployeeRepo) InsertMut(e *domain.Employee) *memdb.Mutation {
	return r.model.InsertMut(&m_employee.Data{
		EmployeeID:    e.ID(),
		Name:          e.Name(),
		DateOfJoining: e.DateOfJoining(),
		Phone:         e.Phone(),
		NationalID:    e.NationalID(),
		PayMode:       string(e.Pay().Mode()),
		PayAmount:     e.Pay().Amount(),
	})
}

// DeleteMut creates a mutation removing an employee.
func (r *EmployeeRepo) DeleteMut(e *domain.Employee) *memdb.Mutation {
	return r.model.DeleteMut(e.ID())
}

// GetByID retrieves an employee by id.
func (r *EmployeeRepo) GetByID(ctx context.Context, rd memdb.Reader, employeeID int64) (*domain.Employee, error) {
	row, err := rd.ReadRow(ctx, m_employee.TableName, memdb.IntKey(employeeID))
	if err != nil {
		if errors.Is(err, memdb.ErrRowNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to read employee: %w", err)
	}
	return rowToDomain(row)
}

// FindByNationalID returns the employee holding nationalID.
func (r *EmployeeRepo) FindByNationalID(ctx context.Context, rd memdb.Reader, nationalID string) (*domain.Employee, error) {
	stmt := query.From(m_employee.TableName).
		Where(query.Eq(m_employee.NationalID, nationalID)).
		Limit(1).
		Build()

	employees, err := r.find(ctx, rd, stmt)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, domain.ErrRecordNotFound
	}
	return employees[0], nil
}

// List returns every employee in insertion order, or by ascending joining
// date when byJoiningDate is set. Employees who joined the same day keep
// their insertion order.
func (r *EmployeeRepo) List(ctx context.Context, rd memdb.Reader, byJoiningDate bool) ([]*domain.Employee, error) {
	b := query.From(m_employee.TableName)
	if byJoiningDate {
		b = b.OrderBy(m_employee.DateOfJoining, query.Asc)
	}
	return r.find(ctx, rd, b.Build())
}

func (r *EmployeeRepo) find(ctx context.Context, rd memdb.Reader, stmt query.Statement) ([]*domain.Employee, error) {
	rows, err := rd.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees (%s): %w", stmt, err)
	}

	employees := make([]*domain.Employee, 0, len(rows))
	for _, row := range rows {
		e, err := rowToDomain(row)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func rowToDomain(row *memdb.Row) (*domain.Employee, error) {
	var data m_employee.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse employee: %w", err)
	}

	pay, err := domain.NewPay(data.PayMode, data.PayAmount)
	if err != nil {
		return nil, fmt.Errorf("stored employee %d: %w", data.EmployeeID, err)
	}

	return domain.ReconstructEmployee(
		data.EmployeeID,
		data.Name,
		data.DateOfJoining,
		data.Phone,
		data.NationalID,
		pay,
	), nil
}
