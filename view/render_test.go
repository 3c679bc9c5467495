package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/dashboard"
)

func render(t *testing.T, page Page) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page))
	return buf.String()
}

func TestRender_Ready(t *testing.T) {
	html := render(t, Build(readySnapshot(), now, DefaultOptions()))

	assert.Contains(t, html, `<form method="post" action="/search">`)
	assert.Contains(t, html, `name="city"`)
	assert.Contains(t, html, "Mumbai - IN")
	assert.Contains(t, html, "31°C")
	assert.Contains(t, html, "4.12 m/s")
	assert.Contains(t, html, "Unavailable")
	assert.Contains(t, html, "http://openweathermap.org/img/wn/10d@2x.png")
	assert.NotContains(t, html, UnavailableMessage)
	assert.NotContains(t, html, `http-equiv="refresh"`)
}

func TestRender_Loading(t *testing.T) {
	html := render(t, Build(dashboard.Snapshot{City: "Paris", Loading: true}, now, DefaultOptions()))

	assert.Contains(t, html, LoadingMessage)
	assert.Contains(t, html, `http-equiv="refresh"`)
	assert.NotContains(t, html, UnavailableMessage)
}

func TestRender_Unavailable(t *testing.T) {
	html := render(t, Build(dashboard.Snapshot{City: "Atlantis"}, now, DefaultOptions()))

	assert.Contains(t, html, UnavailableMessage)
	assert.NotContains(t, html, LoadingMessage)
	assert.NotContains(t, html, "°C")
}

func TestRender_EscapesCity(t *testing.T) {
	html := render(t, Build(dashboard.Snapshot{City: "<script>x</script>"}, now, DefaultOptions()))
	assert.NotContains(t, html, "<script>x</script>")
}
