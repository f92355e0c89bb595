package lib

import "net/http"

// HttpClient is implemented by *http.Client. Consumers take the interface so
// that tests can substitute a mock.
type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}
