// Package gqltesting runs table-driven GraphQL tests against a schema.
package gqltesting

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Error is the part of a GraphQL error a test asserts on.
type Error struct {
	Message    string
	Path       []interface{}
	Extensions map[string]interface{}
}

// Test is a GraphQL test case to be used with RunTest(s).
type Test struct {
	Name           string
	Context        context.Context
	Schema         *graphql.Schema
	Query          string
	OperationName  string
	Variables      map[string]interface{}
	ExpectedResult string
	ExpectedErrors []Error
}

// RunTests runs the given GraphQL test cases as subtests.
func RunTests(t *testing.T, tests []*Test) {
	t.Helper()
	if len(tests) == 1 {
		RunTest(t, tests[0])
		return
	}

	for i, test := range tests {
		name := test.Name
		if name == "" {
			name = strconv.Itoa(i + 1)
		}
		t.Run(name, func(t *testing.T) {
			t.Helper()
			RunTest(t, test)
		})
	}
}

// RunTest runs a single GraphQL test case. Tests run in order against the same
// schema, so earlier mutations are visible to later queries.
func RunTest(t *testing.T, test *Test) {
	t.Helper()
	if test.Context == nil {
		test.Context = context.Background()
	}
	result := test.Schema.Exec(test.Context, test.Query, test.OperationName, test.Variables)

	checkErrors(t, test.ExpectedErrors, result.Errors)

	if test.ExpectedResult == "" {
		if result.Data != nil && string(result.Data) != "null" {
			t.Fatalf("got: %s\nwant: null", result.Data)
		}
		return
	}
	assert.JSONEq(t, test.ExpectedResult, string(result.Data))
}

func checkErrors(t *testing.T, want []Error, got []*gqlerrors.QueryError) {
	t.Helper()
	gotErrs := make([]Error, len(got))
	for i, err := range got {
		gotErrs[i] = Error{Message: err.Message, Path: err.Path, Extensions: err.Extensions}
	}
	sortErrors(want)
	sortErrors(gotErrs)

	if len(want) == 0 && len(gotErrs) == 0 {
		return
	}
	require.Equal(t, normalize(t, want), normalize(t, gotErrs), "unexpected errors")
}

// normalize round-trips errors through JSON so that int and float path
// segments and extension values compare equal.
func normalize(t *testing.T, errs []Error) interface{} {
	t.Helper()
	b, err := json.Marshal(errs)
	require.NoError(t, err)
	var v interface{}
	require.NoError(t, json.Unmarshal(b, &v))
	return v
}

func sortErrors(errors []Error) {
	if len(errors) <= 1 {
		return
	}
	sort.Slice(errors, func(i, j int) bool {
		return fmt.Sprintf("%s", errors[i].Path) < fmt.Sprintf("%s", errors[j].Path)
	})
}
