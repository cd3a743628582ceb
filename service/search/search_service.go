package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"
	"gorm.io/gorm"

	availabilityEntity "multirex.GO/model/entity/availability"
	availabilityRepo "multirex.GO/model/repository/availability"
)

var (
	searchServiceInstance *SearchService
	searchServiceOnce     sync.Once
)

// GetSearchService returns singleton SearchService.
func GetSearchService(db *gorm.DB) *SearchService {
	searchServiceOnce.Do(func() {
		searchServiceInstance = NewSearchService(db)
	})
	return searchServiceInstance
}

// SearchService resolves free-text engine searches against an
// Elasticsearch index when one is configured, falling back to an exact
// code lookup on the availability view otherwise.
type SearchService struct {
	client *elasticsearch.Client
	index  string
	repo   *availabilityRepo.AvailabilityRepository
}

func NewSearchService(db *gorm.DB) *SearchService {
	repo := availabilityRepo.NewAvailabilityRepository(db)
	host := os.Getenv("ELASTICSEARCH_HOST")
	if host == "" {
		return &SearchService{index: indexName(), repo: repo}
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{host},
	})
	if err != nil {
		return &SearchService{index: indexName(), repo: repo}
	}
	return &SearchService{client: client, index: indexName(), repo: repo}
}

func indexName() string {
	if idx := os.Getenv("ELASTICSEARCH_INDEX"); idx != "" {
		return idx
	}
	return "multirex_engines"
}

// SearchEngines returns availability rows matching the query, most
// relevant first.
func (s *SearchService) SearchEngines(ctx context.Context, query string, limit int) ([]availabilityEntity.EngineRow, error) {
	if limit <= 0 {
		limit = 20
	}
	if s.client == nil {
		return s.repo.ListEngines(availabilityRepo.EngineFilter{Code: query, Limit: limit})
	}

	body := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"code_moteur^3", "modele_saisi^2", "marque", "energie", "observations"},
			},
		},
	}
	bodyBytes, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	rows := make([]availabilityEntity.EngineRow, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		id, ok := hit.Source["n_moteur"].(float64)
		if !ok {
			continue
		}
		row, err := s.repo.FindEngine(uint(id))
		if err != nil {
			continue
		}
		rows = append(rows, *row)
	}
	return rows, nil
}

// ReindexEngines pushes every engine view row into the index using the
// bulk API. Returns the number of rows indexed.
func (s *SearchService) ReindexEngines(ctx context.Context) (int, error) {
	if s.client == nil {
		return 0, fmt.Errorf("elasticsearch not configured")
	}
	rows, err := s.repo.ListEngines(availabilityRepo.EngineFilter{})
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	for _, row := range rows {
		meta := fmt.Sprintf(`{"index":{"_index":%q,"_id":"%d"}}`, s.index, row.ID)
		buf.WriteString(meta)
		buf.WriteByte('\n')
		doc, err := json.Marshal(row)
		if err != nil {
			return 0, err
		}
		buf.Write(doc)
		buf.WriteByte('\n')
	}
	if buf.Len() == 0 {
		return 0, nil
	}

	res, err := s.client.Bulk(strings.NewReader(buf.String()),
		s.client.Bulk.WithContext(ctx),
		s.client.Bulk.WithIndex(s.index),
	)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, fmt.Errorf("elasticsearch bulk error: %s", res.String())
	}
	return len(rows), nil
}
