package dto

import (
	"time"
)

// Employee — запись о сотруднике. Все поля хранятся строками, даты в формате YYYY-MM-DD.
type Employee struct {
	ID          string `json:"id" example:"6b6f9c38-3e2a-4b3d-9a9a-9f1c0f8b2a10"` // Идентификатор сотрудника
	FirstName   string `json:"firstName" example:"Anna"`                          // Имя
	LastName    string `json:"lastName" example:"Smith"`                          // Фамилия
	DateOfBirth string `json:"dateOfBirth" example:"1994-06-12"`                  // Дата рождения
	StartDate   string `json:"startDate" example:"2025-10-01"`                    // Дата выхода на работу
	Street      string `json:"street" example:"12 Main St"`                       // Улица
	City        string `json:"city" example:"Springfield"`                        // Город
	State       string `json:"state" example:"IL"`                                // Код штата
	Zip         string `json:"zip" example:"62701"`                               // Почтовый индекс, 5 цифр
	Department  string `json:"department" example:"engineering"`                  // Отдел
}

// Столбцы, по которым сортируется список. Совпадают с json-именами полей.
const (
	ColumnID          = "id"
	ColumnFirstName   = "firstName"
	ColumnLastName    = "lastName"
	ColumnDateOfBirth = "dateOfBirth"
	ColumnStartDate   = "startDate"
	ColumnStreet      = "street"
	ColumnCity        = "city"
	ColumnState       = "state"
	ColumnZip         = "zip"
	ColumnDepartment  = "department"
)

// Field returns the value of the column, or "" for an unknown column.
func (e Employee) Field(column string) string {
	switch column {
	case ColumnID:
		return e.ID
	case ColumnFirstName:
		return e.FirstName
	case ColumnLastName:
		return e.LastName
	case ColumnDateOfBirth:
		return e.DateOfBirth
	case ColumnStartDate:
		return e.StartDate
	case ColumnStreet:
		return e.Street
	case ColumnCity:
		return e.City
	case ColumnState:
		return e.State
	case ColumnZip:
		return e.Zip
	case ColumnDepartment:
		return e.Department
	}

	return ""
}

// Values returns every attribute in declaration order.
func (e Employee) Values() []string {
	return []string{
		e.ID, e.FirstName, e.LastName, e.DateOfBirth, e.StartDate,
		e.Street, e.City, e.State, e.Zip, e.Department,
	}
}

type EventKind string

const (
	EventAddEmployee    EventKind = "add_employee"
	EventRemoveEmployee EventKind = "remove_employee"
	EventUpdateEmployee EventKind = "update_employee"
)

// EmployeeEvent — изменение набора сотрудников, применённое хранилищем.
type EmployeeEvent struct {
	Kind       EventKind
	EmployeeID string
	Employee   *Employee // nil для remove_employee
	At         time.Time
}
