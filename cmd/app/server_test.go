package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/fortune-dcel/pkg/config"
	"github.com/0x0FACED/fortune-dcel/pkg/logger"
	"github.com/0x0FACED/fortune-dcel/pkg/voronoi"
)

func newTestServer() *httptest.Server {
	conf := config.Default()
	conf.Sites = 30
	s := &server{conf: conf, log: logger.NewNop()}
	return httptest.NewServer(s.routes())
}

func TestGeneratePoints(t *testing.T) {
	box := voronoi.NewBox(0, 0, 1, 1)

	pts := generatePoints(50, true, 1, box)
	require.Len(t, pts, 50)
	for _, p := range pts {
		assert.True(t, p.X > 0 && p.X < 1 && p.Y > 0 && p.Y < 1, "%v", p)
	}
	assert.Equal(t, pts, generatePoints(50, true, 1, box), "same seed gives the same sites")

	grid := generatePoints(10, false, 0, box)
	require.Len(t, grid, 10)
	assert.Equal(t, voronoi.Point{X: 0.125, Y: 0.5 / 3}, grid[0])
}

func TestDiagramPage(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/", "application/x-www-form-urlencoded",
		strings.NewReader("sites=20&iterations=2&seed=3&random=true&triangulation=true"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSVGEndpoint(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/svg?sites=10")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
}

func TestLocateEndpoint(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/locate?x=0.5&y=0.5&seed=2")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body locateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.GreaterOrEqual(t, len(body.Polygon), 3)
	assert.NotEmpty(t, body.Neighbors)

	resp, err = http.Get(srv.URL + "/locate?x=abc")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/locate?x=5&y=5")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// response writer whose body writes always fail
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (w brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestLocateLogsWriteError(t *testing.T) {
	log := logger.New(logger.Options{})
	conf := config.Default()
	conf.Sites = 10
	s := &server{conf: conf, log: log}

	r := httptest.NewRequest(http.MethodGet, "/locate?x=0.5&y=0.5", nil)
	s.locateHandler(brokenWriter{httptest.NewRecorder()}, r)
	assert.Contains(t, log.String(), "Ошибка записи ответа")
	assert.Contains(t, log.String(), "connection reset")
}

func TestSVGCommand(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	out := filepath.Join(t.TempDir(), "diagram.svg")
	err := newApp().Run([]string{"fortune", "svg", "--out", out, "--sites", "20", "--size", "200"})
	require.NoError(t, err)

	buf, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(buf), "<svg")
	assert.Contains(t, string(buf), "</svg>")

	err = newApp().Run([]string{"fortune", "svg", "--out", filepath.Join(t.TempDir(), "missing", "x.svg")})
	assert.ErrorContains(t, err, "cannot create")
}
