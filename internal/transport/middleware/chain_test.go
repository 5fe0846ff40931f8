package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// tag returns a middleware that records its name around the wrapped handler.
func tag(name string, trace *[]string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, name+">")
			next.ServeHTTP(w, r)
			*trace = append(*trace, "<"+name)
		})
	}
}

func TestChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(trace *[]string) []Middleware
		want  []string
	}{
		{
			name:  "empty",
			build: func(*[]string) []Middleware { return nil },
			want:  []string{"handler"},
		},
		{
			name: "first is outermost",
			build: func(trace *[]string) []Middleware {
				return []Middleware{tag("request_id", trace), tag("logger", trace)}
			},
			want: []string{"request_id>", "logger>", "handler", "<logger", "<request_id"},
		},
		{
			name: "nil entries skipped",
			build: func(trace *[]string) []Middleware {
				return []Middleware{nil, tag("cors", trace), nil, tag("limit", trace), nil}
			},
			want: []string{"cors>", "limit>", "handler", "<limit", "<cors"},
		},
		{
			name:  "only nil",
			build: func(*[]string) []Middleware { return []Middleware{nil, nil} },
			want:  []string{"handler"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var trace []string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trace = append(trace, "handler")
				w.WriteHeader(http.StatusNoContent)
			})

			rec := httptest.NewRecorder()
			Chain(tt.build(&trace)...)(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.want, trace)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}
