package usecase

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"insightx/internal/repository"
)

type mockJobRepo struct {
	jobs   []repository.Job
	exists bool
	err    error
}

func (m mockJobRepo) ExistsByID(context.Context, int64) (bool, error) {
	return m.exists, m.err
}
func (m mockJobRepo) ListAll(context.Context) ([]repository.Job, error) {
	return m.jobs, m.err
}
func (m mockJobRepo) ListJobs(context.Context, int, int) ([]repository.Job, error) {
	return m.jobs, m.err
}

type mockInteractionRepo struct {
	items    []repository.Interaction
	inserted repository.Interaction
	err      error

	insertCalls int
}

func (m *mockInteractionRepo) ListAll(context.Context) ([]repository.Interaction, error) {
	return m.items, m.err
}
func (m *mockInteractionRepo) Insert(_ context.Context, userID, jobID int64, event string) (repository.Interaction, error) {
	m.insertCalls++
	if m.err != nil {
		return repository.Interaction{}, m.err
	}
	if m.inserted.ID != 0 {
		return m.inserted, nil
	}
	return repository.Interaction{ID: 1, UserID: userID, JobID: jobID, Event: event, CreatedAt: time.Now()}, nil
}

type mockCache struct {
	store    map[string][]byte
	getHits  int
	sets     int
	patterns []string
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if m.store == nil {
		return false, nil
	}
	if _, ok := m.store[key]; !ok {
		return false, nil
	}
	m.getHits++
	return false, nil
}
func (m *mockCache) SetJSON(_ context.Context, key string, _ any, _ time.Duration) error {
	m.sets++
	if m.store == nil {
		m.store = map[string][]byte{}
	}
	m.store[key] = []byte("{}")
	return nil
}
func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.patterns = append(m.patterns, pattern)
	return nil
}

func demoJobs() []repository.Job {
	return []repository.Job{
		{ID: 1, Title: "Data Entry Operator", Company: "Revenue Dept", Location: "Amritsar", Skills: "typing, ms office, data entry"},
		{ID: 2, Title: "Junior Clerk", Company: "Education Dept", Location: "Ludhiana", Skills: "typing, filing"},
		{ID: 3, Title: "Field Officer", Company: "Agriculture Dept", Location: "Patiala", Skills: "surveying, reporting"},
	}
}

func TestRecommendationUsecase_EmptyJobUniverse(t *testing.T) {
	uc := NewRecommendationUsecase(mockJobRepo{}, &mockInteractionRepo{}, nil, nil, 0, nil)

	items, err := uc.GetRecommendations(context.Background(), 7, RecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty result, got %d items", len(items))
	}
}

func TestRecommendationUsecase_JobsErrorIsInternal(t *testing.T) {
	uc := NewRecommendationUsecase(mockJobRepo{err: errors.New("boom")}, &mockInteractionRepo{}, nil, nil, 0, nil)

	if _, err := uc.GetRecommendations(context.Background(), 7, RecommendationParams{}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestRecommendationUsecase_InteractionErrorDegrades(t *testing.T) {
	uc := NewRecommendationUsecase(
		mockJobRepo{jobs: demoJobs()},
		&mockInteractionRepo{err: errors.New("history unavailable")},
		nil, nil, 0, nil,
	)

	items, err := uc.GetRecommendations(context.Background(), 7, RecommendationParams{TopN: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestRecommendationUsecase_PersonalizedOrdering(t *testing.T) {
	interactions := []repository.Interaction{
		{ID: 1, UserID: 7, JobID: 1, Event: "apply"},
		{ID: 2, UserID: 9, JobID: 1, Event: "view"},
	}
	uc := NewRecommendationUsecase(
		mockJobRepo{jobs: demoJobs()},
		&mockInteractionRepo{items: interactions},
		nil, nil, 0, nil,
	)
	uc.newRand = func() *rand.Rand { return rand.New(rand.NewSource(42)) }

	items, err := uc.GetRecommendations(context.Background(), 7, RecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	// Job 2 shares "typing" with the applied job 1; job 3 shares nothing.
	pos := map[int64]int{}
	for i, it := range items {
		pos[it.JobID] = i
	}
	if pos[2] > pos[3] {
		t.Fatalf("expected overlapping job 2 above job 3, got order %+v", items)
	}
	for _, it := range items {
		if it.SuccessScore < 0 || it.SuccessScore > 4 {
			t.Fatalf("success score out of range: %+v", it)
		}
	}
}

func TestRecommendationUsecase_DeterministicUnderFixedSeed(t *testing.T) {
	interactions := []repository.Interaction{
		{ID: 1, UserID: 7, JobID: 1, Event: "apply"},
		{ID: 2, UserID: 7, JobID: 2, Event: "save"},
	}
	run := func() []RecommendationItem {
		uc := NewRecommendationUsecase(
			mockJobRepo{jobs: demoJobs()},
			&mockInteractionRepo{items: interactions},
			nil, nil, 0, nil,
		)
		uc.newRand = func() *rand.Rand { return rand.New(rand.NewSource(99)) }
		items, err := uc.GetRecommendations(context.Background(), 7, RecommendationParams{})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		return items
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical runs under fixed seed:\n%+v\n%+v", first, second)
	}
}

func TestRecommendationUsecase_StoresResultInCache(t *testing.T) {
	cache := &mockCache{}
	uc := NewRecommendationUsecase(
		mockJobRepo{jobs: demoJobs()},
		&mockInteractionRepo{},
		nil, cache, time.Minute, nil,
	)

	if _, err := uc.GetRecommendations(context.Background(), 0, RecommendationParams{TopN: 5}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache store, got %d", cache.sets)
	}
	if _, ok := cache.store["recommendations:anonymous:top:5"]; !ok {
		t.Fatalf("unexpected cache keys: %v", cache.store)
	}
}
