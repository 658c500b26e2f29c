package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runResponse = `[
  {"word": "run", "meanings": [
    {"partOfSpeech": "verb", "definitions": [
      {"definition": "To move swiftly on foot.", "example": "He runs every morning."},
      {"definition": "To manage a business."}
    ]},
    {"partOfSpeech": "noun", "definitions": [
      {"definition": "An act of running."}
    ]}
  ]},
  {"word": "run", "meanings": [
    {"partOfSpeech": "noun", "definitions": [{"definition": "ignored second entry"}]}
  ]}
]`

func TestDictionaryAPI_Definitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		word    string
		handler http.HandlerFunc
		want    []string
		example string
		wantErr bool
	}{
		{
			name: "success: flattens first entry",
			word: "Run",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/run", r.URL.Path)
				_, _ = w.Write([]byte(runResponse))
			},
			want:    []string{"To move swiftly on foot.", "To manage a business.", "An act of running."},
			example: "He runs every morning.",
		},
		{
			name: "unknown word",
			word: "qwzx",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"title":"No Definitions Found"}`))
			},
		},
		{
			name: "server error",
			word: "run",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: true,
		},
		{
			name: "malformed body",
			word: "run",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{`))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			api := NewDictionaryAPI(srv.URL+"/", srv.Client())
			got, err := api.Definitions(context.Background(), tt.word)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			var defs []string
			for _, m := range got {
				defs = append(defs, m.Definition)
			}
			assert.Equal(t, tt.want, defs)
			if tt.example != "" {
				assert.Equal(t, []string{tt.example}, got[0].Examples)
				assert.Empty(t, got[1].Examples)
			}
		})
	}
}

func TestDictionaryAPI_EmptyWord(t *testing.T) {
	t.Parallel()

	got, err := NewDictionaryAPI("http://invalid.local", nil).Definitions(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
