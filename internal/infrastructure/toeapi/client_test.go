package toeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"gpv-bot/internal/domain/entity"
)

func TestFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/a_gpv_g", r.URL.Path)
		require.Equal(t, "1.1", r.URL.Query().Get("group[]"))
		require.Equal(t, DebugKey(919, 8835), r.Header.Get("X-debug-key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"hydra:member": [
				{
					"dateGraph": "2025-03-05T00:00:00+02:00",
					"dataJson": {
						"1.1#x": {"times": {"03:00": 1, "03:30": 1}},
						"1.2":   {"times": {"03:00": 0, "03:30": 1}}
					}
				}
			]
		}`))
	}))
	defer srv.Close()

	loc, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)

	client := NewClient(srv.URL, []Key{{CityID: 919, StreetID: 8835, Groups: []string{"1.1", "1.2"}}}, loc, zerolog.Nop())

	buckets, err := client.FetchAll(context.Background(), "2025-03-07", "2025-03-05")
	require.NoError(t, err)
	require.Len(t, buckets, 1)

	ts := strconv.FormatInt(time.Date(2025, 3, 5, 0, 0, 0, 0, loc).Unix(), 10)
	day, ok := buckets[ts]
	require.True(t, ok)

	require.Equal(t, entity.StatusOff, day["GPV1.1"]["4"])
	require.Equal(t, entity.StatusOffSecond, day["GPV1.2"]["4"])
}

func TestFetchAllKeyFailureSkipped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, []Key{{CityID: 1, StreetID: 2, Groups: []string{"1.1"}}}, time.UTC, zerolog.Nop())

	buckets, err := client.FetchAll(context.Background(), "", "")
	require.NoError(t, err)
	require.Empty(t, buckets)
}
