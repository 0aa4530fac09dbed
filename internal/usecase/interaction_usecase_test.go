package usecase

import (
	"context"
	"errors"
	"testing"
)

type mockNotifier struct {
	calls []string
}

func (m *mockNotifier) NotifyInteractionRecorded(userID, jobID int64, event string) {
	m.calls = append(m.calls, event)
}

func TestInteractionUsecase_AnonymousRejected(t *testing.T) {
	uc := NewInteractionUsecase(mockJobRepo{exists: true}, &mockInteractionRepo{}, nil, nil, nil)

	_, err := uc.RecordInteraction(context.Background(), 0, InteractionInput{JobID: 1, Event: "view"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestInteractionUsecase_UnknownJob(t *testing.T) {
	uc := NewInteractionUsecase(mockJobRepo{exists: false}, &mockInteractionRepo{}, nil, nil, nil)

	_, err := uc.RecordInteraction(context.Background(), 7, InteractionInput{JobID: 99, Event: "view"})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestInteractionUsecase_InvalidJobID(t *testing.T) {
	uc := NewInteractionUsecase(mockJobRepo{exists: true}, &mockInteractionRepo{}, nil, nil, nil)

	_, err := uc.RecordInteraction(context.Background(), 7, InteractionInput{JobID: 0, Event: "view"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestInteractionUsecase_RecordsAndInvalidates(t *testing.T) {
	repo := &mockInteractionRepo{}
	cache := &mockCache{}
	notifier := &mockNotifier{}
	uc := NewInteractionUsecase(mockJobRepo{exists: true}, repo, cache, notifier, nil)

	item, err := uc.RecordInteraction(context.Background(), 7, InteractionInput{JobID: 3, Event: "apply"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.UserID != 7 || item.JobID != 3 || item.Event != "apply" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if repo.insertCalls != 1 {
		t.Fatalf("expected 1 insert, got %d", repo.insertCalls)
	}
	if len(cache.patterns) != 2 {
		t.Fatalf("expected user+anonymous invalidation, got %v", cache.patterns)
	}
	if cache.patterns[0] != "recommendations:user:7:*" || cache.patterns[1] != "recommendations:anonymous:*" {
		t.Fatalf("unexpected invalidation patterns: %v", cache.patterns)
	}
	if len(notifier.calls) != 1 || notifier.calls[0] != "apply" {
		t.Fatalf("expected one notification, got %v", notifier.calls)
	}
}

func TestInteractionUsecase_InsertErrorIsInternal(t *testing.T) {
	repo := &mockInteractionRepo{err: errors.New("boom")}
	uc := NewInteractionUsecase(mockJobRepo{exists: true}, repo, nil, nil, nil)

	_, err := uc.RecordInteraction(context.Background(), 7, InteractionInput{JobID: 3, Event: "view"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
