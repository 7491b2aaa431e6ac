package store

import (
	"slices"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

// Action is one of AddEmployee, RemoveEmployee or UpdateEmployee.
// The set is closed: apply is unexported, so no other package can add a case.
type Action interface {
	// apply returns the next list and whether anything changed. It must not
	// modify employees in place.
	apply(employees []dto.Employee) ([]dto.Employee, bool)
	kind() dto.EventKind
	employeeID() string
	payload() *dto.Employee
}

// AddEmployee appends the record. Identifiers are generated per submission,
// so duplicates are not checked.
type AddEmployee struct {
	Employee dto.Employee
}

// RemoveEmployee drops the record with the given identifier, if any.
type RemoveEmployee struct {
	ID string
}

// UpdateEmployee replaces the record whose identifier matches Employee.ID.
type UpdateEmployee struct {
	Employee dto.Employee
}

func (a AddEmployee) apply(employees []dto.Employee) ([]dto.Employee, bool) {
	next := make([]dto.Employee, 0, len(employees)+1)
	next = append(next, employees...)

	return append(next, a.Employee), true
}

func (a AddEmployee) kind() dto.EventKind    { return dto.EventAddEmployee }
func (a AddEmployee) employeeID() string     { return a.Employee.ID }
func (a AddEmployee) payload() *dto.Employee { return &a.Employee }

func (a RemoveEmployee) apply(employees []dto.Employee) ([]dto.Employee, bool) {
	i := indexOf(employees, a.ID)
	if i < 0 {
		return employees, false
	}

	return slices.Delete(slices.Clone(employees), i, i+1), true
}

func (a RemoveEmployee) kind() dto.EventKind    { return dto.EventRemoveEmployee }
func (a RemoveEmployee) employeeID() string     { return a.ID }
func (a RemoveEmployee) payload() *dto.Employee { return nil }

func (a UpdateEmployee) apply(employees []dto.Employee) ([]dto.Employee, bool) {
	i := indexOf(employees, a.Employee.ID)
	if i < 0 {
		return employees, false
	}

	next := slices.Clone(employees)
	next[i] = a.Employee

	return next, true
}

func (a UpdateEmployee) kind() dto.EventKind    { return dto.EventUpdateEmployee }
func (a UpdateEmployee) employeeID() string     { return a.Employee.ID }
func (a UpdateEmployee) payload() *dto.Employee { return &a.Employee }

func indexOf(employees []dto.Employee, id string) int {
	return slices.IndexFunc(employees, func(e dto.Employee) bool { return e.ID == id })
}
