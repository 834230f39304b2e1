package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskassign/internal/model"
	"taskassign/internal/repository"
)

// dueSoonWindow is how far ahead a pending task counts as "due soon".
const dueSoonWindow = 48 * time.Hour

// DigestService builds a plain-text summary of pending tasks for the
// periodic report.
type DigestService struct {
	taskRepo *repository.TaskRepository
}

func NewDigestService(taskRepo *repository.TaskRepository) *DigestService {
	return &DigestService{taskRepo: taskRepo}
}

// Summary lists overdue and due-soon pending tasks with their contributors.
// It returns an empty string when there is nothing to report.
func (s *DigestService) Summary(ctx context.Context, now time.Time) (string, error) {
	tasks, err := s.taskRepo.ListPending(ctx)
	if err != nil {
		return "", err
	}

	today := model.DateOf(now)
	var overdue, dueSoon []model.Task
	for _, task := range tasks {
		endOfDay := task.EndDate.Add(24 * time.Hour)
		switch {
		case task.EndDate.Before(today):
			overdue = append(overdue, task)
		case endOfDay.Sub(now) <= dueSoonWindow:
			dueSoon = append(dueSoon, task)
		}
	}
	if len(overdue) == 0 && len(dueSoon) == 0 {
		return "", nil
	}

	var builder strings.Builder
	builder.WriteString("Task digest for " + now.Format("2006-01-02") + "\n")

	if len(overdue) > 0 {
		builder.WriteString(fmt.Sprintf("\nOverdue (%d):\n", len(overdue)))
		for _, task := range overdue {
			builder.WriteString(formatDigestLine(task))
		}
	}
	if len(dueSoon) > 0 {
		builder.WriteString(fmt.Sprintf("\nDue soon (%d):\n", len(dueSoon)))
		for _, task := range dueSoon {
			builder.WriteString(formatDigestLine(task))
		}
	}

	return strings.TrimSpace(builder.String()), nil
}

func formatDigestLine(task model.Task) string {
	owner := "unassigned"
	if task.Contributor != nil {
		owner = task.Contributor.Name
	}
	return fmt.Sprintf("- %s (%s, due %s)\n",
		strings.TrimSpace(task.Title), owner, task.EndDate.Format("2006-01-02"))
}
