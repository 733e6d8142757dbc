package testserver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/remvana/nestmap/internal/domain/activity"
	"github.com/remvana/nestmap/internal/domain/itinerary"
	"github.com/remvana/nestmap/internal/domain/template"
	"github.com/remvana/nestmap/internal/domain/trip"
	"github.com/remvana/nestmap/internal/notify"
	"github.com/remvana/nestmap/internal/sqlite"
	"github.com/remvana/nestmap/internal/transport"
)

// TestServer is a fully wired HTTP server over an in-memory database.
type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Token    string
	TenantID string
}

// New starts a test server with one API key registered.
func New(t *testing.T, token, tenantID string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	tripRepo := sqlite.NewTripRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	templateRepo := sqlite.NewTemplateRepository(db)
	apiKeys := sqlite.NewAPIKeyRepository(db)

	tripSvc := trip.NewService(tripRepo, nil)
	activitySvc := activity.NewService(activityRepo, tripRepo, nil)
	itinerarySvc := itinerary.NewService(tripRepo, activityRepo, itinerary.DefaultProfile(), notify.Noop{}, nil, nil)
	templateSvc := template.NewService(templateRepo, tripRepo, activityRepo, nil)

	router := transport.NewServer(transport.Services{
		Trips:      tripSvc,
		Activities: activitySvc,
		Itinerary:  itinerarySvc,
		Templates:  templateSvc,
	}, transport.AuthMiddleware(apiKeys), transport.Options{})

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		DB:       db,
		Token:    token,
		TenantID: tenantID,
	}

	require.NoError(t, ts.AddAPIKey(token, tenantID))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

// AddAPIKey registers an additional token for a tenant.
func (ts *TestServer) AddAPIKey(token, tenantID string) error {
	return sqlite.NewAPIKeyRepository(ts.DB).Add(context.Background(), token, tenantID, "test key")
}
