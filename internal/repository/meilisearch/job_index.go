// Package meilisearch implements the job search index on Meilisearch.
package meilisearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/meilisearch/meilisearch-go"

	"job-portal-backend/internal/domain"
)

const (
	primaryKey   = "job_id"
	listPageSize = 1000
)

type Config struct {
	Host   string
	APIKey string
	Index  string
	// TaskInterval is how often a write polls its task until it finishes.
	// Defaults to DefaultTaskInterval.
	TaskInterval time.Duration
}

// DefaultTaskInterval is the task polling interval used when none is configured.
const DefaultTaskInterval = 50 * time.Millisecond

type jobIndex struct {
	client       meilisearch.ServiceManager
	index        string
	taskInterval time.Duration
}

func NewJobIndex(cfg Config) (domain.SearchIndex, error) {
	if cfg.Host == "" {
		return nil, errors.New("meilisearch: host not configured")
	}
	index := cfg.Index
	if index == "" {
		index = "jobs"
	}
	interval := cfg.TaskInterval
	if interval <= 0 {
		interval = DefaultTaskInterval
	}
	return &jobIndex{
		client:       meilisearch.New(cfg.Host, meilisearch.WithAPIKey(cfg.APIKey)),
		index:        index,
		taskInterval: interval,
	}, nil
}

// TaskInterval reports how often writes poll their Meilisearch task.
func (i *jobIndex) TaskInterval() time.Duration {
	return i.taskInterval
}

// wait blocks until the task finishes. A failed task is an error so the
// caller can retry the write.
func (i *jobIndex) wait(info *meilisearch.TaskInfo) error {
	if info == nil {
		return nil
	}
	task, err := i.client.WaitForTask(info.TaskUID, i.taskInterval)
	if err != nil {
		return fmt.Errorf("meilisearch wait for task error: %w", err)
	}
	if task.Status == meilisearch.TaskStatusFailed {
		return fmt.Errorf("meilisearch task %d failed: %+v", task.UID, task.Error)
	}
	return nil
}

// EnsureIndex creates the index keyed on job_id and limits searchable attributes.
func (i *jobIndex) EnsureIndex(_ context.Context) error {
	info, err := i.client.CreateIndex(&meilisearch.IndexConfig{Uid: i.index, PrimaryKey: primaryKey})
	if err != nil {
		return fmt.Errorf("meilisearch create index error: %w", err)
	}
	// index_already_exists surfaces as a failed task, which is fine here
	if _, err := i.client.WaitForTask(info.TaskUID, i.taskInterval); err != nil {
		return fmt.Errorf("meilisearch wait for task error: %w", err)
	}

	attrs := []string{"title", "description", "skills", "location"}
	info, err = i.client.Index(i.index).UpdateSearchableAttributes(&attrs)
	if err != nil {
		return fmt.Errorf("meilisearch update settings error: %w", err)
	}
	return i.wait(info)
}

func (i *jobIndex) Upsert(_ context.Context, doc domain.JobDocument) error {
	pk := primaryKey
	info, err := i.client.Index(i.index).AddDocuments([]domain.JobDocument{doc}, &meilisearch.DocumentOptions{PrimaryKey: &pk})
	if err != nil {
		return fmt.Errorf("meilisearch index document error: %w", err)
	}
	return i.wait(info)
}

// Delete removes the document. Meilisearch treats a missing id as a no-op.
func (i *jobIndex) Delete(_ context.Context, jobID int64) error {
	info, err := i.client.Index(i.index).DeleteDocument(domain.DocumentID(jobID), nil)
	if err != nil {
		return fmt.Errorf("meilisearch delete document error: %w", err)
	}
	return i.wait(info)
}

type idHit struct {
	JobID json.RawMessage `json:"job_id"`
}

// decodeIDs extracts job ids from hits in order, whatever concrete hit type the client returns.
func decodeIDs(hits any) ([]int64, error) {
	raw, err := json.Marshal(hits)
	if err != nil {
		return nil, err
	}
	var decoded []idHit
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(decoded))
	for _, h := range decoded {
		id, err := strconv.ParseInt(strings.Trim(string(h.JobID), `"`), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (i *jobIndex) Search(_ context.Context, query string, limit int) ([]int64, error) {
	if limit <= 0 {
		limit = 50
	}
	resp, err := i.client.Index(i.index).Search(query, &meilisearch.SearchRequest{
		Limit:                int64(limit),
		AttributesToRetrieve: []string{primaryKey},
	})
	if err != nil {
		return nil, fmt.Errorf("meilisearch search error: %w", err)
	}
	return decodeIDs(resp.Hits)
}

func (i *jobIndex) ListIDs(_ context.Context) ([]int64, error) {
	ids := []int64{}
	var offset int64
	for {
		var result meilisearch.DocumentsResult
		err := i.client.Index(i.index).GetDocuments(&meilisearch.DocumentsQuery{
			Offset: offset,
			Limit:  listPageSize,
			Fields: []string{primaryKey},
		}, &result)
		if err != nil {
			return nil, fmt.Errorf("meilisearch get documents error: %w", err)
		}
		page, err := decodeIDs(result.Results)
		if err != nil {
			return nil, err
		}
		ids = append(ids, page...)
		offset += listPageSize
		if offset >= result.Total {
			return ids, nil
		}
	}
}
