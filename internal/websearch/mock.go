package websearch

import "context"

// MockClient is a test double for the search Client interface.
type MockClient struct {
	Results []Result
	Err     error
	Queries []string // records queries sent
}

// Search records the query and returns the mock results.
func (m *MockClient) Search(ctx context.Context, query string) ([]Result, error) {
	m.Queries = append(m.Queries, query)
	return m.Results, m.Err
}
