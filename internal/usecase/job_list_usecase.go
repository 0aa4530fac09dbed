package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"insightx/internal/domain/recommender"
	"insightx/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

type JobListParams struct {
	Limit  int
	Offset int
}

type JobListItem struct {
	JobID     int64     `json:"job_id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]JobListItem, error)
}

type JobList struct {
	jobs   repository.JobRepository
	logger *log.Logger
}

func NewJobListUsecase(jobs repository.JobRepository, logger *log.Logger) *JobList {
	return &JobList{jobs: jobs, logger: logger}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) ([]JobListItem, error) {
	if params.Limit < 0 || params.Offset < 0 {
		return nil, ErrInvalidInput
	}

	rows, err := u.jobs.ListJobs(ctx, params.Limit, params.Offset)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("jobs | list failed limit=%d offset=%d err=%v", params.Limit, params.Offset, err)
		}
		return nil, ErrInternal
	}

	out := make([]JobListItem, 0, len(rows))
	for _, j := range rows {
		out = append(out, JobListItem{
			JobID:     j.ID,
			Title:     j.Title,
			Company:   j.Company,
			Location:  j.Location,
			Skills:    skillList(j.Skills),
			CreatedAt: j.CreatedAt,
		})
	}
	return out, nil
}

func skillList(raw string) []string {
	set := recommender.NormalizeSkills(raw)
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
