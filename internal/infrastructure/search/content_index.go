package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
)

// ContentIndex mirrors contents into an Elasticsearch index for full-text search.
type ContentIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewContentIndex(es *elasticsearch.Client, index string) *ContentIndex {
	return &ContentIndex{es: es, index: index}
}

func (x *ContentIndex) Index(ctx context.Context, c *entity.Content) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      x.index,
		DocumentID: strconv.FormatInt(c.ID, 10),
		Body:       bytes.NewReader(b),
		Refresh:    "false",
	}
	return x.do(ctx, req)
}

func (x *ContentIndex) Delete(ctx context.Context, id int64) error {
	req := esapi.DeleteRequest{Index: x.index, DocumentID: strconv.FormatInt(id, 10)}
	return x.do(ctx, req)
}

func (x *ContentIndex) do(ctx context.Context, req esapi.Request) error {
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, x.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	// a delete of an unindexed document is fine
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("elasticsearch: %s", res.Status())
	}
	return nil
}

// Search runs a multi_match over name, description, address and country.
func (x *ContentIndex) Search(ctx context.Context, q string, size int) ([]entity.Content, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"wisataName^3", "description", "address", "country"},
				"fuzziness": "AUTO",
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := x.es.Search(
		x.es.Search.WithContext(c),
		x.es.Search.WithIndex(x.index),
		x.es.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source entity.Content `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]entity.Content, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
