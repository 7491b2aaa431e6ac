package api

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

var testNow = time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)

func validEmployee() dto.Employee {
	return dto.Employee{
		ID:          "e-1",
		FirstName:   "Anna",
		LastName:    "Smith",
		DateOfBirth: "1994-06-12",
		StartDate:   "2025-10-01",
		Street:      "12 Main St",
		City:        "Springfield",
		State:       "IL",
		Zip:         "62701",
		Department:  "engineering",
	}
}

func TestValidateEmployee_Valid(t *testing.T) {
	assert.Empty(t, validateEmployee(validEmployee(), testNow))
}

func TestValidateEmployee_Fields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *dto.Employee)
		field  string
		msg    string
	}{
		{"first name empty", func(e *dto.Employee) { e.FirstName = " " }, "firstName", "First name is required"},
		{"first name long", func(e *dto.Employee) { e.FirstName = strings.Repeat("a", 51) }, "firstName", "First name cannot exceed 50 characters"},
		{"last name empty", func(e *dto.Employee) { e.LastName = "" }, "lastName", "Last name is required"},
		{"dob empty", func(e *dto.Employee) { e.DateOfBirth = "" }, "dateOfBirth", "Date of Birth is required"},
		{"dob garbage", func(e *dto.Employee) { e.DateOfBirth = "12/06/1994" }, "dateOfBirth", "Invalid date format"},
		{"dob impossible", func(e *dto.Employee) { e.DateOfBirth = "1994-02-30" }, "dateOfBirth", "Invalid date format"},
		{"under 18", func(e *dto.Employee) { e.DateOfBirth = "2007-10-17" }, "dateOfBirth", "Employee must be at least 18 years old"},
		{"start date garbage", func(e *dto.Employee) { e.StartDate = "soon" }, "startDate", "Invalid date format"},
		{"street empty", func(e *dto.Employee) { e.Street = "" }, "street", "Street is required"},
		{"city empty", func(e *dto.Employee) { e.City = "" }, "city", "City is required"},
		{"state empty", func(e *dto.Employee) { e.State = "" }, "state", "State is required"},
		{"department empty", func(e *dto.Employee) { e.Department = "" }, "department", "Department is required"},
		{"state unknown", func(e *dto.Employee) { e.State = "ZZ-not-a-state" }, "state", "Invalid state: ZZ-not-a-state"},
		{"state lower case", func(e *dto.Employee) { e.State = "il" }, "state", "Invalid state: il"},
		{"department unknown", func(e *dto.Employee) { e.Department = "Basket Weaving" }, "department", "Invalid department: Basket Weaving"},
		{"department label not value", func(e *dto.Employee) { e.Department = "Human Resources" }, "department", "Invalid department: Human Resources"},
		{"zip short", func(e *dto.Employee) { e.Zip = "1234" }, "zip", "ZIP Code must be exactly 5 digits"},
		{"zip letters", func(e *dto.Employee) { e.Zip = "12a45" }, "zip", "ZIP Code must be exactly 5 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEmployee()
			tt.mutate(&e)

			fields := validateEmployee(e, testNow)

			assert.Equal(t, map[string]string{tt.field: tt.msg}, fields)
		})
	}
}

func TestValidateEmployee_Exactly18(t *testing.T) {
	e := validEmployee()
	e.DateOfBirth = "2007-10-16"

	assert.Empty(t, validateEmployee(e, testNow))
}

func TestAgeAt(t *testing.T) {
	birth := time.Date(2000, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 24, ageAt(birth, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 25, ageAt(birth, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 25, ageAt(birth, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestValidateEmployee_AllowedValues(t *testing.T) {
	for _, state := range []string{"IL", "DC", "PR", "WY"} {
		e := validEmployee()
		e.State = state
		assert.Empty(t, validateEmployee(e, testNow), state)
	}

	for department := range allowedDepartments {
		e := validEmployee()
		e.Department = department
		assert.Empty(t, validateEmployee(e, testNow), department)
	}
}
