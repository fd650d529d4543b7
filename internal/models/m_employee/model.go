package m_employee

import (
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
)

// Model provides a facade for type-safe operations on the employees table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting an employee.
func (m *Model) InsertMut(data *Data) *memdb.Mutation {
	return memdb.Insert(
		TableName,
		memdb.IntKey(data.EmployeeID),
		[]string{EmployeeID, Name, DateOfJoining, Phone, NationalID, PayMode, PayAmount},
		[]any{data.EmployeeID, data.Name, data.DateOfJoining, data.Phone, data.NationalID, data.PayMode, data.PayAmount},
	)
}

// DeleteMut creates a mutation for deleting an employee.
func (m *Model) DeleteMut(employeeID int64) *memdb.Mutation {
	return memdb.Delete(TableName, memdb.IntKey(employeeID))
}
