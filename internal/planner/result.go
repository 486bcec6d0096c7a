package planner

import "github.com/Freeeeeet/lesson_planner/internal/model"

// Result ответ генерации в виде данных: либо уроки, либо вид отказа с сообщением
type Result struct {
	Success   bool                 `json:"success"`
	Sessions  []model.ClassSession `json:"sessions,omitempty"`
	Requested int                  `json:"requested,omitempty"`
	Shortfall int                  `json:"shortfall,omitempty"`
	ErrorKind Kind                 `json:"error_kind,omitempty"`
	Message   string               `json:"message,omitempty"`
}

// NewResult переводит результат Generate в Result. Ожидаемые отказы
// становятся данными, остальные ошибки возвращаются как есть.
func NewResult(plan *Plan, err error) (Result, error) {
	if err != nil {
		if f, ok := AsFailure(err); ok {
			return Result{ErrorKind: f.Kind, Message: f.Message}, nil
		}
		return Result{}, err
	}

	return Result{
		Success:   true,
		Sessions:  plan.Sessions,
		Requested: plan.Requested,
		Shortfall: plan.Shortfall(),
	}, nil
}
