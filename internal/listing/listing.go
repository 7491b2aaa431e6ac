// Package listing turns a snapshot of employees into the rows to display:
// sort, then filter by search term, then cut one page.
package listing

import (
	"slices"
	"strings"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

const DefaultPageSize = 10

// PageSizeOptions are the page sizes offered to clients.
var PageSizeOptions = []int{10, 25, 50, 100}

// Columns are the sortable columns in display order.
var Columns = []string{
	dto.ColumnFirstName,
	dto.ColumnLastName,
	dto.ColumnDateOfBirth,
	dto.ColumnStartDate,
	dto.ColumnStreet,
	dto.ColumnCity,
	dto.ColumnState,
	dto.ColumnZip,
	dto.ColumnDepartment,
}

type Directive struct {
	Column    string    `json:"column"`
	Direction Direction `json:"direction"`
}

func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case Ascending, Descending:
		return Direction(s), true
	}
	return "", false
}

func ValidColumn(column string) bool {
	return slices.Contains(Columns, column)
}

func ValidPageSize(size int) bool {
	return slices.Contains(PageSizeOptions, size)
}

// Toggle returns the directive after a click on column: the same column flips
// its direction, any other column starts ascending.
func Toggle(current *Directive, column string) Directive {
	if current != nil && current.Column == column && current.Direction == Ascending {
		return Directive{Column: column, Direction: Descending}
	}

	return Directive{Column: column, Direction: Ascending}
}

// Sort returns a stably sorted copy. A nil directive keeps input order.
func Sort(employees []dto.Employee, d *Directive) []dto.Employee {
	out := slices.Clone(employees)
	if d == nil {
		return out
	}

	slices.SortStableFunc(out, func(a, b dto.Employee) int {
		c := strings.Compare(a.Field(d.Column), b.Field(d.Column))
		if d.Direction == Descending {
			return -c
		}
		return c
	})

	return out
}

// Filter keeps employees whose space-joined attribute values contain term,
// ignoring case. An empty term returns employees unchanged.
func Filter(employees []dto.Employee, term string) []dto.Employee {
	if term == "" {
		return employees
	}

	needle := strings.ToLower(term)
	out := make([]dto.Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(strings.ToLower(strings.Join(e.Values(), " ")), needle) {
			out = append(out, e)
		}
	}

	return out
}

type Page struct {
	Items      []dto.Employee
	Number     int
	Size       int
	TotalPages int
	TotalItems int
}

// Paginate returns page number (1-based) of the given size. Size below 1
// falls back to DefaultPageSize, number below 1 to the first page. A page past
// the end has no items.
func Paginate(employees []dto.Employee, size, number int) Page {
	if size < 1 {
		size = DefaultPageSize
	}
	if number < 1 {
		number = 1
	}

	total := len(employees)
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}

	start := min((number-1)*size, total)
	end := min(start+size, total)

	items := make([]dto.Employee, end-start)
	copy(items, employees[start:end])

	return Page{
		Items:      items,
		Number:     number,
		Size:       size,
		TotalPages: pages,
		TotalItems: total,
	}
}

type Query struct {
	Search string
	Sort   *Directive
	Page   int
	Size   int
}

type Result struct {
	Page
	Sort *Directive
}

// Apply runs sort, filter and paginate in that order.
func Apply(employees []dto.Employee, q Query) Result {
	rows := Filter(Sort(employees, q.Sort), q.Search)

	return Result{
		Page: Paginate(rows, q.Size, q.Page),
		Sort: q.Sort,
	}
}
