package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Employees/internal/dto"
	"github.com/Artexxx/HR-Employees/internal/listing"
	"github.com/Artexxx/HR-Employees/internal/store"
)

type employeeReq struct {
	FirstName   string `json:"firstName" example:"Anna"`          // Имя
	LastName    string `json:"lastName" example:"Smith"`          // Фамилия
	DateOfBirth string `json:"dateOfBirth" example:"1994-06-12"`  // Дата рождения (YYYY-MM-DD)
	StartDate   string `json:"startDate" example:"2025-10-01"`    // Дата выхода (YYYY-MM-DD)
	Street      string `json:"street" example:"12 Main St"`       // Улица
	City        string `json:"city" example:"Springfield"`        // Город
	State       string `json:"state" example:"IL"`                // Штат
	Zip         string `json:"zip" example:"62701"`               // Индекс, ровно 5 цифр
	Department  string `json:"department" example:"engineering"` // Отдел
}

func (r employeeReq) toEmployee(id string) dto.Employee {
	return dto.Employee{
		ID:          id,
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		DateOfBirth: strings.TrimSpace(r.DateOfBirth),
		StartDate:   strings.TrimSpace(r.StartDate),
		Street:      strings.TrimSpace(r.Street),
		City:        strings.TrimSpace(r.City),
		State:       strings.TrimSpace(r.State),
		Zip:         r.Zip,
		Department:  strings.TrimSpace(r.Department),
	}
}

type employeeListResp struct {
	Items      []dto.Employee     `json:"items"`
	Page       int                `json:"page" example:"1"`
	Size       int                `json:"size" example:"10"`
	TotalPages int                `json:"total_pages" example:"2"`
	TotalItems int                `json:"total_items" example:"12"`
	Sort       *listing.Directive `json:"sort,omitempty"`
}

func newEmployeeID() string {
	return uuid.NewString()
}

// @Summary Список сотрудников с поиском, сортировкой и пагинацией
// @Tags    Employees
// @Produce json
// @Param   search    query string false "Подстрока поиска по всем полям, без учёта регистра"
// @Param   sort      query string false "Столбец сортировки"
// @Param   direction query string false "ascending | descending"
// @Param   toggle    query string false "Клик по столбцу: тот же столбец меняет направление, новый — ascending"
// @Param   page      query int    false "Номер страницы, с 1"
// @Param   size      query int    false "Размер страницы: 10, 25, 50, 100"
// @Success 200 {object} employeeListResp
// @Failure 400 {object} errorResponse
// @Router  /employees [get]
func (s *Service) listEmployees(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()

	query := listing.Query{Search: string(args.Peek("search"))}

	var err error
	if query.Page, err = intArg(args, "page", 1); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err)
		return
	}
	if query.Size, err = intArg(args, "size", listing.DefaultPageSize); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err)
		return
	}
	if !listing.ValidPageSize(query.Size) {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("invalid value in field 'size'=%d, allowed %v", query.Size, listing.PageSizeOptions))
		return
	}

	if query.Sort, err = sortDirective(args); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err)
		return
	}

	res := listing.Apply(s.store.State().Employees, query)

	writeJSON(ctx, fasthttp.StatusOK, employeeListResp{
		Items:      res.Items,
		Page:       res.Number,
		Size:       res.Size,
		TotalPages: res.TotalPages,
		TotalItems: res.TotalItems,
		Sort:       res.Sort,
	})
}

// @Summary Получить сотрудника по id
// @Tags    Employees
// @Produce json
// @Param   employee_id path string true "Идентификатор сотрудника"
// @Success 200 {object} dto.Employee
// @Failure 404 {object} errorResponse "employee not found"
// @Router  /employees/{employee_id} [get]
func (s *Service) getEmployee(ctx *fasthttp.RequestCtx) {
	employeeID, okID := pathID(ctx)
	if !okID {
		writeError(ctx, fasthttp.StatusBadRequest, ErrEmployeeIDRequired)
		return
	}

	employee, err := s.store.Find(employeeID)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, ErrEmployeeNotFound)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("store.Find: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, employee)
}

// @Summary Создать сотрудника
// @Tags    Employees
// @Accept  json
// @Produce json
// @Param   request body employeeReq true "Сотрудник"
// @Success 201 {object} dto.Employee
// @Failure 400 {object} errorResponse "ошибки валидации по полям в fields"
// @Router  /employees [post]
func (s *Service) createEmployee(ctx *fasthttp.RequestCtx) {
	var req employeeReq

	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	employee := req.toEmployee(s.newID())

	if fields := validateEmployee(employee, s.now()); len(fields) > 0 {
		writeValidationError(ctx, fields)
		return
	}

	s.store.Dispatch(ctx, store.AddEmployee{Employee: employee})

	writeJSON(ctx, fasthttp.StatusCreated, employee)
}

// @Summary Обновить сотрудника
// @Tags    Employees
// @Accept  json
// @Produce json
// @Param   employee_id path string true "Идентификатор сотрудника"
// @Param   request body employeeReq true "Сотрудник"
// @Success 200 {object} dto.Employee
// @Failure 400 {object} errorResponse "ошибки валидации по полям в fields"
// @Failure 404 {object} errorResponse "employee not found"
// @Router  /employees/{employee_id} [put]
func (s *Service) updateEmployee(ctx *fasthttp.RequestCtx) {
	employeeID, okID := pathID(ctx)
	if !okID {
		writeError(ctx, fasthttp.StatusBadRequest, ErrEmployeeIDRequired)
		return
	}

	var req employeeReq
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	employee := req.toEmployee(employeeID)

	if fields := validateEmployee(employee, s.now()); len(fields) > 0 {
		writeValidationError(ctx, fields)
		return
	}

	// the update applied only if the id is still present after dispatch
	st := s.store.Dispatch(ctx, store.UpdateEmployee{Employee: employee})
	if !slices.ContainsFunc(st.Employees, func(e dto.Employee) bool { return e.ID == employeeID }) {
		writeError(ctx, fasthttp.StatusNotFound, ErrEmployeeNotFound)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, employee)
}

// @Summary Удалить сотрудника
// @Tags    Employees
// @Produce json
// @Param   employee_id path string true "Идентификатор сотрудника"
// @Success 200 {object} okResponse "также если сотрудника не было"
// @Failure 400 {object} errorResponse "employee id is required"
// @Router  /employees/{employee_id} [delete]
func (s *Service) deleteEmployee(ctx *fasthttp.RequestCtx) {
	employeeID, okID := pathID(ctx)
	if !okID {
		writeError(ctx, fasthttp.StatusBadRequest, ErrEmployeeIDRequired)
		return
	}

	s.store.Dispatch(ctx, store.RemoveEmployee{ID: employeeID})

	ok(ctx, "Employee removed")
}

func pathID(ctx *fasthttp.RequestCtx) (string, bool) {
	employeeID, _ := ctx.UserValue("employee_id").(string)
	employeeID = strings.TrimSpace(employeeID)

	return employeeID, employeeID != ""
}

func intArg(args *fasthttp.Args, name string, def int) (int, error) {
	raw := args.Peek(name)
	if len(raw) == 0 {
		return def, nil
	}

	v, err := strconv.Atoi(string(raw))
	if err != nil || v < 1 {
		return 0, fmt.Errorf("invalid value in field '%s'=%s", name, raw)
	}

	return v, nil
}

// sortDirective reads sort/direction and applies toggle on top of them.
func sortDirective(args *fasthttp.Args) (*listing.Directive, error) {
	var current *listing.Directive

	if column := string(args.Peek("sort")); column != "" {
		if !listing.ValidColumn(column) {
			return nil, fmt.Errorf("invalid value in field 'sort'=%s", column)
		}

		direction := listing.Ascending
		if raw := string(args.Peek("direction")); raw != "" {
			d, valid := listing.ParseDirection(raw)
			if !valid {
				return nil, fmt.Errorf("invalid value in field 'direction'=%s", raw)
			}
			direction = d
		}

		current = &listing.Directive{Column: column, Direction: direction}
	}

	if column := string(args.Peek("toggle")); column != "" {
		if !listing.ValidColumn(column) {
			return nil, fmt.Errorf("invalid value in field 'toggle'=%s", column)
		}

		next := listing.Toggle(current, column)
		current = &next
	}

	return current, nil
}
