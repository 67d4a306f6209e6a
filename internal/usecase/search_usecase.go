package usecase

import (
	"context"
	"net/http"
	"strings"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

// DefaultSearchLimit caps the number of hits resolved per query.
const DefaultSearchLimit = 50

type searchUsecase struct {
	index   domain.SearchIndex
	jobRepo domain.JobRepository
	limit   int
}

func NewSearchUsecase(index domain.SearchIndex, jobRepo domain.JobRepository, limit int) domain.SearchUsecase {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return &searchUsecase{index: index, jobRepo: jobRepo, limit: limit}
}

// Search returns jobs matching q in relevance order. A blank query matches
// nothing. Hits whose job has since been deleted are skipped.
func (u *searchUsecase) Search(ctx context.Context, q string) ([]domain.JobWithCompany, error) {
	results := []domain.JobWithCompany{}

	q = strings.TrimSpace(q)
	if q == "" {
		return results, nil
	}

	ids, err := u.index.Search(ctx, q, u.limit)
	if err != nil {
		return nil, apperror.New(http.StatusServiceUnavailable, "Search is temporarily unavailable", err)
	}
	if len(ids) == 0 {
		return results, nil
	}

	jobs, err := u.jobRepo.GetManyWithCompany(ctx, ids)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	byID := make(map[int64]domain.JobWithCompany, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}
	for _, id := range ids {
		if j, ok := byID[id]; ok {
			results = append(results, j)
			delete(byID, id)
		}
	}
	return results, nil
}
