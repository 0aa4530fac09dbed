package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"insightx/internal/repository"
)

func TestJobListUsecase_InvalidParams(t *testing.T) {
	uc := NewJobListUsecase(mockJobRepo{}, nil)

	if _, err := uc.ListJobs(context.Background(), JobListParams{Limit: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.ListJobs(context.Background(), JobListParams{Offset: -5}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobListUsecase_RepoErrorIsInternal(t *testing.T) {
	uc := NewJobListUsecase(mockJobRepo{err: errors.New("boom")}, nil)

	if _, err := uc.ListJobs(context.Background(), JobListParams{Limit: 20}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestJobListUsecase_NormalizesSkills(t *testing.T) {
	uc := NewJobListUsecase(mockJobRepo{jobs: []repository.Job{
		{ID: 1, Title: "Data Entry Operator", Company: "Revenue Dept", Location: "Amritsar", Skills: " Typing ,MS Office,, typing "},
	}}, nil)

	items, err := uc.ListJobs(context.Background(), JobListParams{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	want := []string{"ms office", "typing"}
	if !reflect.DeepEqual(items[0].Skills, want) {
		t.Fatalf("expected %v, got %v", want, items[0].Skills)
	}
}
