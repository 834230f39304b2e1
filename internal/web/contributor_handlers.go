package web

import (
	"errors"
	"fmt"
	"net/http"

	"taskassign/internal/model"
	"taskassign/internal/repository"
)

type contributorJSON struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) handleContributorList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if wantsJSON(r) {
		contributors, err := s.contributors.ListAll(ctx)
		if err != nil {
			s.serverError(w, err)
			return
		}
		payload := make([]contributorJSON, 0, len(contributors))
		for _, c := range contributors {
			payload = append(payload, contributorJSON{ID: c.ID, Name: c.Name, Email: c.Email})
		}
		writeJSON(w, http.StatusOK, payload)
		return
	}

	page := parsePage(r.URL.Query().Get("page"))
	size := repository.NormalizePageSize(r.URL.Query().Get("page_size"))
	contributors, info, err := s.contributors.List(ctx, page, size)
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, r, http.StatusOK, "contributor_list", map[string]any{
		"Contributors": contributors,
		"Page":         info,
		"PageSizes":    repository.PageSizes,
	})
}

func (s *Server) handleContributorDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w)
		return
	}
	contributor, tasks, err := s.contributors.GetWithTasks(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		s.notFound(w)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, r, http.StatusOK, "contributor_detail", map[string]any{
		"Contributor": contributor,
		"Tasks":       tasks,
	})
}

func (s *Server) handleContributorCreateForm(w http.ResponseWriter, r *http.Request) {
	s.renderContributorForm(w, r, "Create Contributor", contributorForm{}, nil)
}

func (s *Server) handleContributorCreate(w http.ResponseWriter, r *http.Request) {
	form := contributorFormFromRequest(r)
	_, err := s.contributors.Create(r.Context(), form.input())
	if err != nil {
		s.contributorWriteFailed(w, r, "Create Contributor", form, err)
		return
	}
	redirectWithNotice(w, r, "/contributors/", "Contributor created successfully!")
}

func (s *Server) handleContributorUpdateForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w)
		return
	}
	contributor, err := s.contributors.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		s.notFound(w)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.renderContributorForm(w, r, "Update Contributor", contributorFormFromModel(contributor), nil)
}

func (s *Server) handleContributorUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w)
		return
	}
	form := contributorFormFromRequest(r)
	_, err := s.contributors.Update(r.Context(), id, form.input())
	if errors.Is(err, repository.ErrNotFound) {
		s.notFound(w)
		return
	}
	if err != nil {
		s.contributorWriteFailed(w, r, "Update Contributor", form, err)
		return
	}
	redirectWithNotice(w, r, fmt.Sprintf("/contributors/%d/", id), "Contributor updated successfully!")
}

func (s *Server) handleContributorDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w)
		return
	}
	contributor, err := s.contributors.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		s.notFound(w)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, r, http.StatusOK, "contributor_confirm_delete", map[string]any{
		"Contributor": contributor,
	})
}

func (s *Server) handleContributorDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w)
		return
	}
	err := s.contributors.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		s.notFound(w)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	redirectWithNotice(w, r, "/contributors/", "Contributor deleted successfully!")
}

// contributorWriteFailed maps a failed create/update onto a re-rendered form:
// validation messages per field, and a duplicate email conflict onto the
// email field. Anything else is a server error.
func (s *Server) contributorWriteFailed(w http.ResponseWriter, r *http.Request, heading string, form contributorForm, err error) {
	var verrs *model.ValidationErrors
	switch {
	case errors.As(err, &verrs):
	case errors.Is(err, repository.ErrDuplicate):
		verrs = &model.ValidationErrors{}
		verrs.Add("email", "A contributor with this email already exists.")
	default:
		s.serverError(w, err)
		return
	}
	s.renderContributorForm(w, r, heading, form, verrs)
}

func (s *Server) renderContributorForm(w http.ResponseWriter, r *http.Request, heading string, form contributorForm, errs *model.ValidationErrors) {
	s.render(w, r, http.StatusOK, "contributor_form", map[string]any{
		"Heading": heading,
		"Form":    form,
		"Errors":  errs,
	})
}
