package remote

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/standards-watch/activities/lib/cache"
)

type ElasticsearchConfig struct {
	Host  string
	Port  int
	Index string
}

func NewElasticsearchClient(conf ElasticsearchConfig) (Client, error) {
	c, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{fmt.Sprintf("http://%s:%d", conf.Host, conf.Port)},
	})
	if err != nil {
		return nil, err
	}
	return &esClient{
		Client: c,
		index:  conf.Index,
	}, nil
}

type esClient struct {
	*elasticsearch.Client
	index string
}

func (e *esClient) Ready() bool {
	res, err := e.Info()
	if err != nil || res.StatusCode != http.StatusOK {
		return false
	}
	return true
}

func (e *esClient) Get(key string) (*cache.Page, error) {
	res, err := e.GetSource(e.index, docID(key))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	} else if res.StatusCode != http.StatusOK {
		return nil, errors.New(res.String())
	}

	b, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	var page cache.Page
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (e *esClient) Set(key string, page *cache.Page) error {
	b, err := json.Marshal(page)
	if err != nil {
		return err
	}
	res, err := e.Index(e.index, bytes.NewReader(b), e.Index.WithDocumentID(docID(key)))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.New(res.String())
	}
	return nil
}

// docID hashes the key so URLs never appear in request paths.
func docID(key string) string {
	sum := sha1.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}
