package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"taskassign/internal/model"
	"taskassign/internal/repository"
)

func (s *Server) handleTaskList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := repository.TaskFilter{}
	switch q.Get("status") {
	case repository.StatusCompleted:
		filter.Status = repository.StatusCompleted
	case repository.StatusPending:
		filter.Status = repository.StatusPending
	}
	if id, err := strconv.ParseUint(q.Get("contributor"), 10, 32); err == nil {
		filter.ContributorID = uint(id)
	}

	page := parsePage(q.Get("page"))
	size := repository.NormalizePageSize(q.Get("page_size"))
	tasks, info, err := s.tasks.List(ctx, filter, page, size)
	if err != nil {
		s.serverError(w, err)
		return
	}

	contributors, err := s.contributors.ListAll(ctx)
	if err != nil {
		s.serverError(w, err)
		return
	}

	s.render(w, r, http.StatusOK, "task_list", map[string]any{
		"Tasks":             tasks,
		"Contributors":      contributors,
		"Page":              info,
		"PageSizes":         repository.PageSizes,
		"StatusFilter":      filter.Status,
		"ContributorFilter": filter.ContributorID,
		"FilterQuery":       filterQuery(filter),
	})
}

// filterQuery renders the active filters as extra query parameters for
// pagination links.
func filterQuery(filter repository.TaskFilter) string {
	params := url.Values{}
	if filter.Status != "" {
		params.Set("status", filter.Status)
	}
	if filter.ContributorID != 0 {
		params.Set("contributor", strconv.FormatUint(uint64(filter.ContributorID), 10))
	}
	if len(params) == 0 {
		return ""
	}
	return "&" + params.Encode()
}

func (s *Server) handleTaskDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w)
		return
	}
	task, err := s.tasks.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		s.notFound(w)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, r, http.StatusOK, "task_detail", map[string]any{
		"Task": task,
	})
}

func (s *Server) handleTaskCreateForm(w http.ResponseWriter, r *http.Request) {
	s.renderTaskForm(w, r, "Create Task", taskForm{}, nil)
}

func (s *Server) handleTaskCreate(w http.ResponseWriter, r *http.Request) {
	form := taskFormFromRequest(r)
	input, parseErrs := form.input()
	_, err := s.tasks.Create(r.Context(), input)
	if err != nil || parseErrs.Any() {
		s.taskWriteFailed(w, r, "Create Task", form, parseErrs, err)
		return
	}
	redirectWithNotice(w, r, "/tasks/", "Task created successfully!")
}

func (s *Server) handleTaskUpdateForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w)
		return
	}
	task, err := s.tasks.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		s.notFound(w)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.renderTaskForm(w, r, "Update Task", taskFormFromModel(task), nil)
}

func (s *Server) handleTaskUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w)
		return
	}
	form := taskFormFromRequest(r)
	input, parseErrs := form.input()
	_, err := s.tasks.Update(r.Context(), id, input)
	if errors.Is(err, repository.ErrNotFound) {
		s.notFound(w)
		return
	}
	if err != nil || parseErrs.Any() {
		s.taskWriteFailed(w, r, "Update Task", form, parseErrs, err)
		return
	}
	redirectWithNotice(w, r, fmt.Sprintf("/tasks/%d/", id), "Task updated successfully!")
}

func (s *Server) handleTaskDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w)
		return
	}
	task, err := s.tasks.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		s.notFound(w)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, r, http.StatusOK, "task_confirm_delete", map[string]any{
		"Task": task,
	})
}

func (s *Server) handleTaskDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w)
		return
	}
	err := s.tasks.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		s.notFound(w)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	redirectWithNotice(w, r, "/tasks/", "Task deleted successfully!")
}

func (s *Server) handleTaskToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		if wantsJSON(r) {
			writeJSON(w, http.StatusNotFound, map[string]any{"success": false})
			return
		}
		s.notFound(w)
		return
	}

	completed, err := s.tasks.ToggleCompleted(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		if wantsJSON(r) {
			writeJSON(w, http.StatusNotFound, map[string]any{"success": false})
			return
		}
		s.notFound(w)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, struct {
			Success     bool `json:"success"`
			IsCompleted bool `json:"is_completed"`
		}{Success: true, IsCompleted: completed})
		return
	}

	notice := "Task marked as pending!"
	if completed {
		notice = "Task marked as completed!"
	}
	redirectWithNotice(w, r, fmt.Sprintf("/tasks/%d/", id), notice)
}

// taskWriteFailed re-renders the task form with every collected message:
// parse failures from the raw form values merged with the validation
// failures from the service.
func (s *Server) taskWriteFailed(w http.ResponseWriter, r *http.Request, heading string, form taskForm, parseErrs *model.ValidationErrors, err error) {
	errs := parseErrs
	if errs == nil {
		errs = &model.ValidationErrors{}
	}
	var verrs *model.ValidationErrors
	if errors.As(err, &verrs) {
		errs.Merge(verrs)
	} else if err != nil {
		s.serverError(w, err)
		return
	}
	s.renderTaskForm(w, r, heading, form, errs)
}

func (s *Server) renderTaskForm(w http.ResponseWriter, r *http.Request, heading string, form taskForm, errs *model.ValidationErrors) {
	contributors, err := s.contributors.ListAll(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, r, http.StatusOK, "task_form", map[string]any{
		"Heading":      heading,
		"Form":         form,
		"Errors":       errs,
		"Contributors": contributors,
	})
}
