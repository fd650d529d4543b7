package m_employee

// Field name constants for the employees table.
const (
	TableName = "employees"

	// SequenceName is the m_sequence counter employee ids are drawn from.
	SequenceName = "employees"

	EmployeeID    = "employee_id"
	Name          = "name"
	DateOfJoining = "date_of_joining"
	Phone         = "phone"
	NationalID    = "national_id"
	PayMode       = "pay_mode"
	PayAmount     = "pay_amount"
)
