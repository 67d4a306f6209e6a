package usecase

import (
	"errors"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// pageBounds turns a 1-based page into limit/offset.
func pageBounds(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageSize, (page - 1) * pageSize
}

// notFoundAs maps domain.ErrNotFound to a 404 with msg and passes other errors through.
func notFoundAs(err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(msg)
	}
	return err
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
