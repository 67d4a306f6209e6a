// Package search picks the search index implementation named by SEARCH_ENGINE.
package search

import (
	"fmt"

	"job-portal-backend/config"
	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/repository/elasticsearch"
	"job-portal-backend/internal/repository/meilisearch"
)

func NewIndex(cfg *config.Config) (domain.SearchIndex, error) {
	switch cfg.SearchEngine {
	case config.SearchEngineElasticsearch:
		return elasticsearch.NewJobIndex(elasticsearch.Config{
			Addresses: cfg.ElasticsearchURLs,
			Username:  cfg.ElasticsearchUsername,
			Password:  cfg.ElasticsearchPassword,
			Index:     cfg.SearchIndex,
		})
	case config.SearchEngineMeilisearch:
		return meilisearch.NewJobIndex(meilisearch.Config{
			Host:         cfg.MeilisearchHost,
			APIKey:       cfg.MeilisearchAPIKey,
			Index:        cfg.SearchIndex,
			TaskInterval: cfg.MeilisearchTaskPoll,
		})
	default:
		return nil, fmt.Errorf("unsupported search engine %q", cfg.SearchEngine)
	}
}
