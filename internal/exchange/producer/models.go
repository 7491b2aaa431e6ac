package producer

import (
	"time"

	"github.com/google/uuid"
)

// EmployeePayload — снимок записи сотрудника в событии
type EmployeePayload struct {
	ID          string `json:"id"          example:"6b6f9c38-3e2a-4b3d-9a9a-9f1c0f8b2a10"` // Идентификатор сотрудника
	FirstName   string `json:"firstName"   example:"Anna"`                                 // Имя
	LastName    string `json:"lastName"    example:"Smith"`                                // Фамилия
	DateOfBirth string `json:"dateOfBirth" example:"1994-06-12"`                           // Дата рождения (YYYY-MM-DD)
	StartDate   string `json:"startDate"   example:"2025-10-01"`                           // Дата выхода (YYYY-MM-DD)
	Address     struct {
		Street string `json:"street" example:"12 Main St"`
		City   string `json:"city"   example:"Springfield"`
		State  string `json:"state"  example:"IL"`
		Zip    string `json:"zip"    example:"62701"`
	} `json:"address" swaggertype:"object"` // Адрес
	Department string `json:"department" example:"engineering"` // Отдел
}

// Envelope — событие об изменении набора сотрудников. Payload пуст для remove_employee.
type Envelope struct {
	Kind       string           `json:"kind"        example:"add_employee"`                         // add_employee | remove_employee | update_employee
	MessageID  uuid.UUID        `json:"message_id"  example:"c7e06db5-4b71-4c54-9334-3f9a6e6c5d0e"` // Идентификатор события (UUID v4)
	EmployeeID string           `json:"employee_id" example:"6b6f9c38-3e2a-4b3d-9a9a-9f1c0f8b2a10"` // Идентификатор сотрудника
	Payload    *EmployeePayload `json:"payload,omitempty"`                                          // Запись после изменения
	Timestamp  time.Time        `json:"timestamp"   example:"2025-10-19T12:34:56Z"`                 // Время изменения
	Source     string           `json:"source"      example:"hr-employees"`                         // Сервис-источник
}
