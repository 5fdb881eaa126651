package dtos

import (
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/validate"
)

const (
	defaultTodoTime = "12:00"
	todoDateLayout  = "2006-01-02"
	todoTimeLayout  = "15:04"
)

type CreateTodoDto struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Completed bool   `json:"completed"`
}

type UpdateTodoDto struct {
	Completed *bool `json:"completed"`
}

// Validate also applies the default time.
func (dto *CreateTodoDto) Validate() (bool, map[string]string) {
	if dto.Time == "" {
		dto.Time = defaultTodoTime
	}

	v := validate.New()

	validate.Check(v, "title", dto.Title, validate.IsNotEmpty)
	validate.Check(v, "date", dto.Date, validate.IsNotEmpty)

	errs := map[string]string{}
	for key, message := range v.Errors() {
		errs[key] = message
	}

	if _, ok := errs["date"]; !ok {
		if _, err := time.Parse(todoDateLayout, dto.Date); err != nil {
			errs["date"] = "must be formatted as YYYY-MM-DD"
		}
	}

	if _, err := time.Parse(todoTimeLayout, dto.Time); err != nil {
		errs["time"] = "must be formatted as HH:MM"
	}

	return len(errs) == 0, errs
}

func (dto *UpdateTodoDto) Validate() (bool, map[string]string) {
	errs := map[string]string{}

	if dto.Completed == nil {
		errs["completed"] = "must be provided"
	}

	return len(errs) == 0, errs
}
