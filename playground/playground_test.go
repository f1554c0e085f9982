package playground_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graph-gophers/animals/playground"
)

func TestHandler(t *testing.T) {
	h := playground.Handler("/graphql",
		playground.WithTitle("Zoo"),
		playground.WithVersion("3.0.0"),
		playground.WithDefaultQuery(`{ animals { species } }`),
	)
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "<title>Zoo</title>")
	assert.Contains(t, body, "graphiql@3.0.0")
	assert.Contains(t, body, `'\/graphql'`)
	assert.Contains(t, body, `defaultQuery: "{ animals { species } }"`)
}
