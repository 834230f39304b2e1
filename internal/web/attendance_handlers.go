package web

import (
	"net/http"
	"strconv"
	"time"
)

func (s *Server) handleAttendanceList(w http.ResponseWriter, r *http.Request) {
	records, err := s.attendance.List(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, r, http.StatusOK, "attendance_list", map[string]any{
		"Records": records,
	})
}

func (s *Server) handleAttendanceTakeForm(w http.ResponseWriter, r *http.Request) {
	date := parseDateOr(r.URL.Query().Get("date"), time.Now())
	contributors, available, err := s.attendance.TakeSheet(r.Context(), date)
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, r, http.StatusOK, "attendance_take", map[string]any{
		"Contributors": contributors,
		"Available":    available,
		"DateValue":    date.Format(inputDateFormat),
	})
}

func (s *Server) handleAttendanceTake(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	date := parseDateOr(r.PostFormValue("date"), time.Now())
	var presentIDs []uint
	for _, raw := range r.PostForm["present"] {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			continue
		}
		presentIDs = append(presentIDs, uint(id))
	}

	if err := s.attendance.Reconcile(r.Context(), date, presentIDs); err != nil {
		s.serverError(w, err)
		return
	}
	redirectWithNotice(w, r, "/attendance/", "Attendance recorded successfully!")
}
