package cache

import "time"

// Page is a fetched specification document, stored so repeated runs don't
// refetch pages that rarely change.
type Page struct {
	URL         string    `json:"url"`
	Body        string    `json:"body"`
	RetrievedAt time.Time `json:"retrieved_at"`
}

type Type string

const (
	None          Type = "none"
	Local         Type = "local"
	Redis         Type = "redis"
	Elasticsearch Type = "elasticsearch"
)
