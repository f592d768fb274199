package service

import (
	"context"
	"database/sql"
	"testing"

	"app/internal/repository"

	"github.com/rs/zerolog"
)

func TestGetGroupAnalyticsMergesAggregates(t *testing.T) {
	// P2 has no interactions at all and must still appear with zeroes.
	repo := &fakeAnalyticsRepo{
		messageCounts: []repository.PatientMessageCount{
			{PatientID: "p1", PatientName: "Alice", PatientNumber: 1, MessageCount: 12},
			{PatientID: "p2", PatientName: "Bob", PatientNumber: 2, MessageCount: 0},
		},
		accessCounts: []repository.PatientAccessCount{
			{PatientID: "p1", AccessCount: 4},
		},
		averages: []repository.PatientAverageScore{
			{PatientID: "p1", AverageScore: sql.NullFloat64{Float64: 90, Valid: true}},
			{PatientID: "p2", AverageScore: sql.NullFloat64{Valid: false}},
		},
		perfects: []repository.PatientPerfectScore{
			{PatientID: "p1", PerfectScorePercentage: 50},
		},
	}
	svc := NewAnalyticsService(repo, zerolog.Nop())

	rows, err := svc.GetGroupAnalytics(context.Background(), "g1")
	if err != nil {
		t.Fatalf("GetGroupAnalytics returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	p1 := rows[0]
	if p1.PatientID != "p1" || p1.MessageCount != 12 || p1.AccessCount != 4 ||
		p1.AverageScore != 90 || p1.PerfectScorePercentage != 50 {
		t.Fatalf("unexpected merged row for p1: %+v", p1)
	}

	p2 := rows[1]
	if p2.PatientID != "p2" || p2.MessageCount != 0 || p2.AccessCount != 0 ||
		p2.AverageScore != 0 || p2.PerfectScorePercentage != 0 {
		t.Fatalf("expected all-zero aggregates for p2, got %+v", p2)
	}
}

func TestGetGroupAnalyticsEmptyGroup(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, zerolog.Nop())
	rows, err := svc.GetGroupAnalytics(context.Background(), "empty")
	if err != nil {
		t.Fatalf("GetGroupAnalytics returned error: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected an empty, non-nil slice, got %#v", rows)
	}
}
