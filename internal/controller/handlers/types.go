package handlers

import (
	"net/http"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/controller/state"
	"github.com/Freeeeeet/lesson_planner/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	userService      *service.UserService
	timetableService *service.TimetableService
	calendarService  *service.CalendarService
	planningService  *service.PlanningService
	stateManager     *state.Manager
	httpClient       *http.Client
	location         *time.Location
	logger           *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	userService *service.UserService,
	timetableService *service.TimetableService,
	calendarService *service.CalendarService,
	planningService *service.PlanningService,
	stateManager *state.Manager,
	location *time.Location,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:      userService,
		timetableService: timetableService,
		calendarService:  calendarService,
		planningService:  planningService,
		stateManager:     stateManager,
		httpClient:       &http.Client{Timeout: 30 * time.Second},
		location:         location,
		logger:           logger,
	}
}
