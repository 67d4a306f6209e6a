// Package elasticsearch implements the job search index on Elasticsearch.
package elasticsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/elastic/go-elasticsearch/v8/esutil"

	"job-portal-backend/internal/domain"
)

// searchFields are matched by free-text queries.
var searchFields = []string{"title", "description", "skills", "location"}

const listPageSize = 1000

type Config struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
	// Refresh is passed to write requests ("true", "wait_for" or empty).
	Refresh string
}

type jobIndex struct {
	client  *elasticsearch.Client
	index   string
	refresh string
}

func NewJobIndex(cfg Config) (domain.SearchIndex, error) {
	if len(cfg.Addresses) == 0 {
		return nil, fmt.Errorf("elasticsearch: no addresses configured")
	}
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client creation error: %w", err)
	}
	index := cfg.Index
	if index == "" {
		index = "jobs"
	}
	return &jobIndex{client: es, index: index, refresh: cfg.Refresh}, nil
}

// responseError turns a failed response into an error carrying the engine's reason.
func responseError(op string, res *esapi.Response) error {
	var body struct {
		Error struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Error.Reason != "" {
		return fmt.Errorf("elasticsearch %s: %s: %s: %s", op, res.Status(), body.Error.Type, body.Error.Reason)
	}
	return fmt.Errorf("elasticsearch %s: %s", op, res.Status())
}

func closeBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

// EnsureIndex creates the index with one shard and no replicas if it does not exist.
func (i *jobIndex) EnsureIndex(ctx context.Context) error {
	res, err := esapi.IndicesExistsRequest{Index: []string{i.index}}.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("elasticsearch index exists: %w", err)
	}
	closeBody(res.Body)
	if res.StatusCode == http.StatusOK {
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("elasticsearch index exists: %s", res.Status())
	}

	body := map[string]any{
		"settings": map[string]any{
			"number_of_shards":   1,
			"number_of_replicas": 0,
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				"job_id":      map[string]any{"type": "long"},
				"title":       map[string]any{"type": "text"},
				"description": map[string]any{"type": "text"},
				"location":    map[string]any{"type": "text"},
				"skills":      map[string]any{"type": "text"},
			},
		},
	}
	res, err = esapi.IndicesCreateRequest{Index: i.index, Body: esutil.NewJSONReader(body)}.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("elasticsearch create index: %w", err)
	}
	defer closeBody(res.Body)
	if res.IsError() {
		// Another instance may have created it first
		if res.StatusCode == http.StatusBadRequest {
			var body struct {
				Error struct {
					Type string `json:"type"`
				} `json:"error"`
			}
			if json.NewDecoder(res.Body).Decode(&body) == nil && body.Error.Type == "resource_already_exists_exception" {
				return nil
			}
		}
		return responseError("create index", res)
	}
	return nil
}

func (i *jobIndex) Upsert(ctx context.Context, doc domain.JobDocument) error {
	res, err := esapi.IndexRequest{
		Index:      i.index,
		DocumentID: domain.DocumentID(doc.JobID),
		Body:       esutil.NewJSONReader(doc),
		Refresh:    i.refresh,
	}.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("elasticsearch indexing error: %w", err)
	}
	defer closeBody(res.Body)
	if res.IsError() {
		return responseError("index", res)
	}
	return nil
}

func (i *jobIndex) Delete(ctx context.Context, jobID int64) error {
	res, err := esapi.DeleteRequest{
		Index:      i.index,
		DocumentID: domain.DocumentID(jobID),
		Refresh:    i.refresh,
	}.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("elasticsearch deletion error: %w", err)
	}
	defer closeBody(res.Body)
	if res.StatusCode == http.StatusNotFound {
		return nil
	}
	if res.IsError() {
		return responseError("delete", res)
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID   string `json:"_id"`
			Sort []any  `json:"sort"`
		} `json:"hits"`
	} `json:"hits"`
}

func (i *jobIndex) search(ctx context.Context, op string, body map[string]any) (*searchResponse, error) {
	res, err := esapi.SearchRequest{
		Index: []string{i.index},
		Body:  esutil.NewJSONReader(body),
	}.Do(ctx, i.client)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch %s: %w", op, err)
	}
	defer closeBody(res.Body)

	// Nothing has been indexed yet
	if res.StatusCode == http.StatusNotFound {
		return &searchResponse{}, nil
	}
	if res.IsError() {
		return nil, responseError(op, res)
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("elasticsearch parsing error: %w", err)
	}
	return &sr, nil
}

// Search runs a multi-field match and returns job ids in relevance order.
func (i *jobIndex) Search(ctx context.Context, query string, limit int) ([]int64, error) {
	if limit <= 0 {
		limit = 50
	}
	sr, err := i.search(ctx, "search", map[string]any{
		"size":    limit,
		"_source": false,
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": searchFields,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(sr.Hits.Hits))
	for _, hit := range sr.Hits.Hits {
		id, err := strconv.ParseInt(hit.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ListIDs pages through every document with search_after on job_id.
func (i *jobIndex) ListIDs(ctx context.Context) ([]int64, error) {
	ids := []int64{}
	var after []any
	for {
		body := map[string]any{
			"size":    listPageSize,
			"_source": false,
			"query":   map[string]any{"match_all": map[string]any{}},
			"sort":    []any{map[string]any{"job_id": "asc"}},
		}
		if after != nil {
			body["search_after"] = after
		}

		sr, err := i.search(ctx, "list ids", body)
		if err != nil {
			return nil, err
		}
		for _, hit := range sr.Hits.Hits {
			id, err := strconv.ParseInt(hit.ID, 10, 64)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
		if len(sr.Hits.Hits) < listPageSize {
			return ids, nil
		}
		after = sr.Hits.Hits[len(sr.Hits.Hits)-1].Sort
		if len(after) == 0 {
			return ids, nil
		}
	}
}
