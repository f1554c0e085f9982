// Package playground serves an in-browser GraphiQL IDE.
package playground

import (
	"bytes"
	"html/template"
	"net/http"
)

// Handler returns a handler serving GraphiQL pointed at endpoint.
func Handler(endpoint string, options ...Option) http.HandlerFunc {
	c := &config{title: "Animals", version: "3.8.3", reactVersion: "18.3.1"}
	for _, opt := range options {
		opt(c)
	}

	var buff bytes.Buffer
	err := page.Execute(&buff, map[string]string{
		"title":        c.title,
		"endpoint":     endpoint,
		"version":      c.version,
		"reactVersion": c.reactVersion,
		"query":        c.defaultQuery,
	})
	if err != nil {
		panic(err)
	}
	out := buff.Bytes()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(out)
	}
}

type Option func(*config)

type config struct {
	title        string
	version      string
	reactVersion string
	defaultQuery string
}

func WithTitle(title string) Option {
	return func(config *config) {
		config.title = title
	}
}

// WithVersion sets the GraphiQL release loaded from the CDN.
func WithVersion(version string) Option {
	return func(config *config) {
		config.version = version
	}
}

// WithDefaultQuery sets the query shown when the editor opens.
func WithDefaultQuery(query string) Option {
	return func(config *config) {
		config.defaultQuery = query
	}
}

var page = template.Must(template.New("graphiql").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8"/>
	<title>{{.title}}</title>
	<style>
		body { height: 100%; margin: 0; width: 100%; overflow: hidden; }
		#graphiql { height: 100vh; }
	</style>
	<link rel="stylesheet" href="https://unpkg.com/graphiql@{{.version}}/graphiql.min.css"/>
	<script crossorigin src="https://unpkg.com/react@{{.reactVersion}}/umd/react.production.min.js"></script>
	<script crossorigin src="https://unpkg.com/react-dom@{{.reactVersion}}/umd/react-dom.production.min.js"></script>
	<script crossorigin src="https://unpkg.com/graphiql@{{.version}}/graphiql.min.js"></script>
</head>
<body>
<div id="graphiql">Loading...</div>
<script>
	const fetcher = GraphiQL.createFetcher({ url: location.protocol + '//' + location.host + '{{.endpoint}}' });
	const root = ReactDOM.createRoot(document.getElementById('graphiql'));
	root.render(React.createElement(GraphiQL, {
		fetcher: fetcher,
		defaultQuery: {{.query}},
		defaultEditorToolsVisibility: true,
	}));
</script>
</body>
</html>
`))
