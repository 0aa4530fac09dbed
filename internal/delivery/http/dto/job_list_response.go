package dto

import (
	"time"

	"insightx/internal/usecase"
)

type JobListResponse struct {
	JobID     int64     `json:"job_id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
}

func NewJobListResponseList(items []usecase.JobListItem) []JobListResponse {
	out := make([]JobListResponse, 0, len(items))
	for _, it := range items {
		out = append(out, JobListResponse{
			JobID:     it.JobID,
			Title:     it.Title,
			Company:   it.Company,
			Location:  it.Location,
			Skills:    it.Skills,
			CreatedAt: it.CreatedAt,
		})
	}
	return out
}
