package api

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

const dateLayout = "2006-01-02"

var (
	regexDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	regexZip  = regexp.MustCompile(`^[0-9]{5}$`)
)

const (
	minAge     = 18
	maxNameLen = 50
)

// allowedStates — коды штатов и территорий США, которые предлагает форма.
var allowedStates = map[string]struct{}{
	"AL": {}, "AK": {}, "AS": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "DC": {},
	"FM": {}, "FL": {}, "GA": {}, "GU": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {},
	"KY": {}, "LA": {}, "ME": {}, "MH": {}, "MD": {}, "MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {},
	"MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "MP": {},
	"OH": {}, "OK": {}, "OR": {}, "PW": {}, "PA": {}, "PR": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VI": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
}

var allowedDepartments = map[string]struct{}{
	"sales": {}, "marketing": {}, "engineering": {}, "human_resources": {}, "legal": {},
}

func checkEnum(fields map[string]string, field, label, value string, allowed map[string]struct{}) {
	if strings.TrimSpace(value) == "" {
		fields[field] = label + " is required"
		return
	}

	if _, ok := allowed[value]; !ok {
		fields[field] = fmt.Sprintf("Invalid %s: %s", strings.ToLower(label), value)
	}
}

func parseDate(s string) (time.Time, bool) {
	if !regexDate.MatchString(s) {
		return time.Time{}, false
	}

	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// ageAt returns full years between birth and now.
func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}

	return age
}

func checkName(fields map[string]string, field, label, value string) {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	switch {
	case n == 0:
		fields[field] = label + " is required"
	case n > maxNameLen:
		fields[field] = label + " cannot exceed 50 characters"
	}
}

func checkRequired(fields map[string]string, field, label, value string) {
	if strings.TrimSpace(value) == "" {
		fields[field] = label + " is required"
	}
}

// validateEmployee возвращает сообщения по полям; пустая карта — данные корректны.
func validateEmployee(e dto.Employee, now time.Time) map[string]string {
	fields := make(map[string]string)

	checkName(fields, dto.ColumnFirstName, "First name", e.FirstName)
	checkName(fields, dto.ColumnLastName, "Last name", e.LastName)

	switch dob := strings.TrimSpace(e.DateOfBirth); {
	case dob == "":
		fields[dto.ColumnDateOfBirth] = "Date of Birth is required"
	default:
		birth, ok := parseDate(dob)
		if !ok {
			fields[dto.ColumnDateOfBirth] = "Invalid date format"
		} else if ageAt(birth, now) < minAge {
			fields[dto.ColumnDateOfBirth] = "Employee must be at least 18 years old"
		}
	}

	switch start := strings.TrimSpace(e.StartDate); {
	case start == "":
		fields[dto.ColumnStartDate] = "Start Date is required"
	default:
		if _, ok := parseDate(start); !ok {
			fields[dto.ColumnStartDate] = "Invalid date format"
		}
	}

	checkRequired(fields, dto.ColumnStreet, "Street", e.Street)
	checkRequired(fields, dto.ColumnCity, "City", e.City)
	checkEnum(fields, dto.ColumnState, "State", e.State, allowedStates)
	checkEnum(fields, dto.ColumnDepartment, "Department", e.Department, allowedDepartments)

	if !regexZip.MatchString(e.Zip) {
		fields[dto.ColumnZip] = "ZIP Code must be exactly 5 digits"
	}

	return fields
}
