package middleware

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
)

func tracing(name string, trace *[]string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, name+">")
			next.ServeHTTP(w, r)
			*trace = append(*trace, "<"+name)
		})
	}
}

func TestChain(t *testing.T) {
	tests := []struct {
		name  string
		build func(trace *[]string) []Middleware
		want  []string
	}{
		{
			name:  "first runs outermost",
			build: func(tr *[]string) []Middleware { return []Middleware{tracing("a", tr), tracing("b", tr)} },
			want:  []string{"a>", "b>", "handler", "<b", "<a"},
		},
		{
			name:  "empty",
			build: func(tr *[]string) []Middleware { return nil },
			want:  []string{"handler"},
		},
		{
			name:  "nil entries skipped",
			build: func(tr *[]string) []Middleware { return []Middleware{nil, tracing("a", tr), nil} },
			want:  []string{"a>", "handler", "<a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var trace []string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trace = append(trace, "handler")
			})

			Chain(tt.build(&trace)...)(handler).
				ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

			if !slices.Equal(trace, tt.want) {
				t.Errorf("trace = %v, want %v", trace, tt.want)
			}
		})
	}
}
