package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"taskassign/internal/model"
	"taskassign/internal/service"
)

// HTML form input formats.
const (
	inputDateFormat     = "2006-01-02"
	inputDateTimeFormat = "2006-01-02T15:04"
)

// contributorForm holds raw submitted values so the page can re-render them
// on a validation failure.
type contributorForm struct {
	Name  string
	Email string
}

func contributorFormFromRequest(r *http.Request) contributorForm {
	return contributorForm{
		Name:  strings.TrimSpace(r.PostFormValue("name")),
		Email: strings.TrimSpace(r.PostFormValue("email")),
	}
}

func contributorFormFromModel(c *model.Contributor) contributorForm {
	return contributorForm{Name: c.Name, Email: c.Email}
}

func (f contributorForm) input() service.ContributorInput {
	return service.ContributorInput{Name: f.Name, Email: f.Email}
}

// taskForm holds raw submitted values for a task.
type taskForm struct {
	Title       string
	Description string
	Start       string
	EndDate     string
	Contributor string
	IsCompleted bool
}

func taskFormFromRequest(r *http.Request) taskForm {
	return taskForm{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Start:       strings.TrimSpace(r.PostFormValue("start")),
		EndDate:     strings.TrimSpace(r.PostFormValue("end_date")),
		Contributor: strings.TrimSpace(r.PostFormValue("contributor")),
		IsCompleted: r.PostFormValue("is_completed") != "",
	}
}

func taskFormFromModel(t *model.Task) taskForm {
	return taskForm{
		Title:       t.Title,
		Description: t.Description,
		Start:       t.Start.Format(inputDateTimeFormat),
		EndDate:     t.EndDate.Format(inputDateFormat),
		Contributor: strconv.FormatUint(uint64(t.ContributorID), 10),
		IsCompleted: t.IsCompleted,
	}
}

// input parses the raw values. Malformed non-empty values produce per-field
// messages; empty ones are left zero for the required checks downstream.
func (f taskForm) input() (service.TaskInput, *model.ValidationErrors) {
	var errs model.ValidationErrors
	input := service.TaskInput{
		Title:       f.Title,
		Description: f.Description,
		IsCompleted: f.IsCompleted,
	}

	if f.Start != "" {
		start, err := parseDateTime(f.Start)
		if err != nil {
			errs.Add("start", "Enter a valid date and time.")
		} else {
			input.Start = start
		}
	}
	if f.EndDate != "" {
		endDate, err := time.ParseInLocation(inputDateFormat, f.EndDate, time.UTC)
		if err != nil {
			errs.Add("end_date", "Enter a valid date.")
		} else {
			input.EndDate = endDate
		}
	}
	if f.Contributor != "" {
		id, err := strconv.ParseUint(f.Contributor, 10, 32)
		if err != nil {
			errs.Add("contributor", "Select a valid contributor.")
		} else {
			input.ContributorID = uint(id)
		}
	}

	if errs.Any() {
		return input, &errs
	}
	return input, nil
}

// parseDateTime accepts the datetime-local format, with or without seconds.
func parseDateTime(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(inputDateTimeFormat, raw, time.Local)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", raw, time.Local)
}

// parseDateOr parses a calendar date from an untrusted source, silently
// falling back when the value is missing or malformed.
func parseDateOr(raw string, fallback time.Time) time.Time {
	day, err := time.ParseInLocation(inputDateFormat, raw, time.UTC)
	if err != nil {
		return model.DateOf(fallback)
	}
	return model.DateOf(day)
}
