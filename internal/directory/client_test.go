package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvasree15/healthpuls/pkg/config"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/monitoring"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

func newTestClient(endpoint string) *Client {
	return NewClient(
		config.DirectoryConfig{Endpoint: endpoint, FetchTimeout: 2},
		logger.New("error"),
		monitoring.NewMetricsCollector("directory-test"),
	)
}

func TestLoadFetchesRemoteDirectory(t *testing.T) {
	remote := []*types.DoctorListing{
		{ID: 1, Name: "Dr. Remote One", Specialty: "Cardiology", Available: true},
		{ID: 2, Name: "Dr. Remote Two", Specialty: "Neurology", Available: true},
	}

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(remote)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	listings, err := client.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "Dr. Remote One", listings[0].Name)

	// Second load serves the cache; the endpoint is hit once.
	_, err = client.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestLoadFallsBackOnNetworkError(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1/api/doctors")

	listings, err := client.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 80)

	first := listings[0]
	assert.Equal(t, 3000, first.ID)
	assert.Contains(t, first.Name, "Dr. ")
	assert.True(t, first.Available)
	assert.NotEmpty(t, first.Rating)
	assert.NotEmpty(t, first.BookingNumber)
}

func TestLoadFallsBackOnNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	listings, err := client.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, listings, 80)
}

func TestSearchFiltersBySpecialty(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1/api/doctors")

	cardiologists, err := client.Search(context.Background(), "", "Cardiology")
	require.NoError(t, err)
	require.NotEmpty(t, cardiologists)
	for _, d := range cardiologists {
		assert.Equal(t, "Cardiology", d.Specialty)
	}
}

func TestSearchMatchesSymptomKeywords(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1/api/doctors")

	results, err := client.Search(context.Background(), "headache", "")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, d := range results {
		found := false
		for _, kw := range d.Keywords {
			if kw == "headache" {
				found = true
			}
		}
		assert.True(t, found, "result %s should carry the matched keyword", d.Name)
	}
}

func TestFallbackShapeMatchesRemotePayload(t *testing.T) {
	listings := generateFallback()
	require.Len(t, listings, 80)

	seen := map[int]bool{}
	for i, d := range listings {
		assert.False(t, seen[d.ID], "ids must be unique")
		seen[d.ID] = true
		assert.Equal(t, 3000+i, d.ID)
		assert.NotEmpty(t, d.Specialty)
		assert.NotEmpty(t, d.Bio)
		assert.NotEmpty(t, d.Experience)
		assert.Len(t, d.BookingNumber, 10)
		assert.Contains(t, []string{"City Medical Plaza", "Sunrise Health Hub"}, d.Location)
	}
}
