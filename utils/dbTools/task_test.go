package dbTools

import (
	"testing"
	"time"

	"github.com/Romain-GUILLEMOT/TaskyBack/models"
	"github.com/gocql/gocql"
)

func sampleTasks() []models.Task {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mk := func(desc string, completed bool, offset time.Duration) models.Task {
		return models.Task{
			TaskID:      gocql.TimeUUID(),
			Description: desc,
			Completed:   completed,
			CreatedAt:   base.Add(offset),
			UpdatedAt:   base.Add(offset),
		}
	}
	return []models.Task{
		mk("acheter du pain", false, 0),
		mk("payer le loyer", true, time.Hour),
		mk("réviser le cours", false, 2*time.Hour),
	}
}

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }

func TestApplyListOptions_NoBoundsByDefault(t *testing.T) {
	t.Parallel()

	// Limit/Skip absents = aucune borne. Surtout pas un 0 implicite qui
	// renverrait zéro ligne.
	out := ApplyListOptions(sampleTasks(), ListOptions{})
	if len(out) != 3 {
		t.Fatalf("expected all 3 tasks, got %d", len(out))
	}
}

func TestApplyListOptions_ExplicitZeroLimit(t *testing.T) {
	t.Parallel()

	// Un limit=0 demandé explicitement, lui, renvoie bien zéro ligne.
	out := ApplyListOptions(sampleTasks(), ListOptions{Limit: intPtr(0)})
	if len(out) != 0 {
		t.Fatalf("expected 0 tasks, got %d", len(out))
	}
}

func TestApplyListOptions_CompletedFilter(t *testing.T) {
	t.Parallel()

	out := ApplyListOptions(sampleTasks(), ListOptions{Completed: boolPtr(true)})
	if len(out) != 1 || out[0].Description != "payer le loyer" {
		t.Fatalf("unexpected filter result: %+v", out)
	}

	out = ApplyListOptions(sampleTasks(), ListOptions{Completed: boolPtr(false)})
	if len(out) != 2 {
		t.Fatalf("expected 2 incomplete tasks, got %d", len(out))
	}
}

func TestApplyListOptions_SortCreatedAtDesc(t *testing.T) {
	t.Parallel()

	out := ApplyListOptions(sampleTasks(), ListOptions{SortBy: "createdAt", Desc: true})
	if out[0].Description != "réviser le cours" || out[2].Description != "acheter du pain" {
		t.Fatalf("unexpected sort order: %+v", out)
	}
}

func TestApplyListOptions_SortDescriptionAsc(t *testing.T) {
	t.Parallel()

	out := ApplyListOptions(sampleTasks(), ListOptions{SortBy: "description"})
	if out[0].Description != "acheter du pain" || out[2].Description != "réviser le cours" {
		t.Fatalf("unexpected sort order: %+v", out)
	}
}

func TestApplyListOptions_SkipAndLimit(t *testing.T) {
	t.Parallel()

	out := ApplyListOptions(sampleTasks(), ListOptions{SortBy: "createdAt", Skip: intPtr(1), Limit: intPtr(1)})
	if len(out) != 1 || out[0].Description != "payer le loyer" {
		t.Fatalf("unexpected page: %+v", out)
	}
}

func TestApplyListOptions_SkipPastEnd(t *testing.T) {
	t.Parallel()

	out := ApplyListOptions(sampleTasks(), ListOptions{Skip: intPtr(10)})
	if len(out) != 0 {
		t.Fatalf("expected empty page, got %d tasks", len(out))
	}
}
