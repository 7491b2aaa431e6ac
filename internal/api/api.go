package api

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Artexxx/HR-Employees/internal/dto"
	"github.com/Artexxx/HR-Employees/internal/store"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

// @title           HR Employees
// @version         1.0
// @description     Реестр сотрудников: создание, поиск, сортировка, постраничный просмотр и удаление записей.
//
// @BasePath  /
// @schemes   http
// @accept    json
// @produce   json

type EmployeeStore interface {
	State() store.State
	Find(id string) (dto.Employee, error)
	Dispatch(ctx context.Context, action store.Action) store.State
}

type ServiceDeps struct {
	Port int

	Store EmployeeStore

	// NewID и Now подменяются в тестах.
	NewID func() string
	Now   func() time.Time
}

type Service struct {
	r      *router.Router
	server *fasthttp.Server
	port   int

	store EmployeeStore
	newID func() string
	now   func() time.Time
}

func NewService(d ServiceDeps) *Service {
	rt := router.New()

	s := &Service{
		r:     rt,
		port:  d.Port,
		store: d.Store,
		newID: d.NewID,
		now:   d.Now,
	}
	if s.newID == nil {
		s.newID = newEmployeeID
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.mountRoutes()

	s.server = &fasthttp.Server{
		Handler:            RecoveryMiddleware(LoggingMiddleware(CORS(s.r.Handler))),
		Name:               "hr-employees-api",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       15 * time.Second,
		MaxRequestBodySize: 2 << 20, // 2 MiB
	}

	return s
}

func (s *Service) Start(ctx context.Context) error {
	log.Info().Int("port", s.port).Msg("Starting employees API")

	emergencyShutdown := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe(fmt.Sprintf(":%d", s.port))
		emergencyShutdown <- err
	}()

	select {
	case <-ctx.Done():
		return s.server.Shutdown()
	case e := <-emergencyShutdown:
		return e
	}
}

func (s *Service) mountRoutes() {
	s.r.GET("/employees", s.listEmployees)
	s.r.POST("/employees", s.createEmployee)
	s.r.GET("/employees/{employee_id}", s.getEmployee)
	s.r.PUT("/employees/{employee_id}", s.updateEmployee)
	s.r.DELETE("/employees/{employee_id}", s.deleteEmployee)

	s.r.GET("/health", s.healthHandler)
}
