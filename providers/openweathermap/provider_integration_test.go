//go:build integration

package openweathermap

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Live(t *testing.T) {
	apiKey := os.Getenv("OPENWEATHERMAP_API_KEY")
	if apiKey == "" {
		t.Skip("OPENWEATHERMAP_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := NewClient(apiKey)

	current, err := client.GetWeather(ctx, "Mumbai")
	require.NoError(t, err)
	assert.Equal(t, "IN", current.Country)
	assert.NotEmpty(t, current.Icon)

	forecast, err := client.FetchForecast(ctx, "Mumbai")
	require.NoError(t, err)
	assert.NotEmpty(t, forecast.Entries)
	t.Logf("got %d forecast entries for %s", len(forecast.Entries), forecast.City)
}
