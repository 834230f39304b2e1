package model

import (
	"testing"
	"time"
)

func TestTaskValidate(t *testing.T) {
	start := time.Date(2024, 3, 10, 9, 30, 0, 0, time.Local)

	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{
			name: "end after start date",
			task: Task{Start: start, EndDate: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:    "end equals start date",
			task:    Task{Start: start, EndDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
			wantErr: true,
		},
		{
			name:    "end before start date",
			task:    Task{Start: start, EndDate: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
			wantErr: true,
		},
		{
			name: "next calendar day counts even within 24 hours",
			task: Task{
				Start:   time.Date(2024, 3, 10, 23, 0, 0, 0, time.Local),
				EndDate: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "zero dates skip the rule",
			task: Task{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
		})
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	got := DateOf(time.Date(2024, 3, 10, 23, 45, 1, 0, loc))
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOf() = %v, want %v", got, want)
	}
}
