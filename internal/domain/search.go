package domain

import (
	"context"
	"strconv"
)

// JobDocument is the searchable projection of a job.
type JobDocument struct {
	JobID       int64  `json:"job_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Skills      string `json:"skills"`
}

func NewJobDocument(j *Job) JobDocument {
	return JobDocument{
		JobID:       j.ID,
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		Skills:      j.Skills,
	}
}

// DocumentID is the index document id for a job.
func DocumentID(jobID int64) string {
	return strconv.FormatInt(jobID, 10)
}

// SearchIndex is the secondary full-text index over jobs.
type SearchIndex interface {
	EnsureIndex(ctx context.Context) error
	Upsert(ctx context.Context, doc JobDocument) error
	// Delete removes the document for jobID. A missing document is not an error.
	Delete(ctx context.Context, jobID int64) error
	// Search returns matching job ids in relevance order.
	Search(ctx context.Context, query string, limit int) ([]int64, error)
	ListIDs(ctx context.Context) ([]int64, error)
}

type SearchUsecase interface {
	Search(ctx context.Context, query string) ([]JobWithCompany, error)
}
