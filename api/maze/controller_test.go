package mazeapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze/api"
	"github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/infrastruture/blobstore"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := service.NewMazeService(&service.Config{
		Store:        blobstore.NewFileStore(afero.NewMemMapFs(), "/mazes"),
		MaxDimension: 10,
	})
	require.NoError(t, err)

	controller, err := NewMazeController(svc)
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:     "/api",
		Controllers: []i.Controller{controller},
	})
	return router.Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMazeController(t *testing.T) {
	h := newTestHandler(t)

	t.Run("Create and fetch", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/mazes", `{"width":4,"height":3,"seed":5,"name":"first"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var created MazeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, "first.yaml", created.Path)
		assert.True(t, strings.HasPrefix(created.ASCII, " _______ \n"))
		assert.Len(t, strings.Split(strings.TrimSuffix(created.ASCII, "\n"), "\n"), 4)

		rec = do(t, h, http.MethodGet, "/api/v1/mazes/first", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var fetched MazeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
		assert.Equal(t, created, fetched)
	})

	t.Run("Create in protobuf format", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/mazes", `{"width":2,"height":2,"format":"pb","name":"small"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = do(t, h, http.MethodGet, "/api/v1/mazes/small?format=pb", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Render", func(t *testing.T) {
		first := do(t, h, http.MethodGet, "/api/v1/mazes/render?width=3&height=2&seed=8", "")
		second := do(t, h, http.MethodGet, "/api/v1/mazes/render?width=3&height=2&seed=8", "")

		require.Equal(t, http.StatusOK, first.Code)
		assert.True(t, strings.HasPrefix(first.Body.String(), " _____ \n"))
		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("Bad requests", func(t *testing.T) {
		cases := []struct {
			name   string
			method string
			target string
			body   string
			status int
		}{
			{"MissingWidth", http.MethodPost, "/api/v1/mazes", `{"height":3}`, http.StatusBadRequest},
			{"TooLarge", http.MethodPost, "/api/v1/mazes", `{"width":11,"height":3}`, http.StatusBadRequest},
			{"UnknownFormat", http.MethodPost, "/api/v1/mazes", `{"width":2,"height":3,"format":"xml"}`, http.StatusBadRequest},
			{"RenderMissingHeight", http.MethodGet, "/api/v1/mazes/render?width=3", "", http.StatusBadRequest},
			{"TextNotLoadable", http.MethodGet, "/api/v1/mazes/first?format=text", "", http.StatusBadRequest},
			{"NotFound", http.MethodGet, "/api/v1/mazes/missing", "", http.StatusNotFound},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rec := do(t, h, tc.method, tc.target, tc.body)
				assert.Equal(t, tc.status, rec.Code, rec.Body.String())
			})
		}
	})
}

func TestNewMazeController(t *testing.T) {
	_, err := NewMazeController(nil)
	assert.Error(t, err)
}
