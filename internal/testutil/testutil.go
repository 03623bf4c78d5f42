package testutil

import (
	"net/http/httptest"
	"testing"

	"tvshows-client/internal/client"
	"tvshows-client/internal/mockapi"

	"github.com/rs/zerolog"
)

const testJWTSecret = "test-secret"

// MockAPI is a running mock API and the store behind it
type MockAPI struct {
	Server *httptest.Server
	Store  *mockapi.Store
	Media  *mockapi.MemoryMediaStore
}

// StartMockAPI serves a seeded mock API for the duration of the test
func StartMockAPI(t *testing.T) *MockAPI {
	t.Helper()

	store := mockapi.NewStore()
	store.Seed()
	media := mockapi.NewMemoryMediaStore()

	srv := httptest.NewServer(mockapi.NewRouter(mockapi.Deps{
		Store:  store,
		Tokens: mockapi.NewTokenIssuer(testJWTSecret),
		Media:  media,
		Logger: zerolog.Nop(),
	}))
	t.Cleanup(srv.Close)

	return &MockAPI{Server: srv, Store: store, Media: media}
}

// Client returns a REST client pointed at the mock API
func (m *MockAPI) Client() *client.Client {
	return client.New(m.Server.URL, client.WithLogger(zerolog.Nop()))
}

// PNG is a minimal valid PNG image (1x1, transparent)
var PNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}
