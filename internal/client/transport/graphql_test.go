package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iyasyr/iron-lms/internal/common"
)

func gqlServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestExecute_DecodesData(t *testing.T) {
	srv := gqlServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Contains(t, req.Query, "GetItem")
		require.Equal(t, "42", req.Variables["id"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"item":{"id":"42","title":"Intro"}}}`))
	})

	p := newTestPipeline(t, srv.URL, &fakeStore{token: "abc"})

	var out struct {
		Item struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"item"`
	}
	err := p.Execute(context.Background(), `query GetItem($id: ID!) { item(id: $id) { id title } }`,
		map[string]any{"id": "42"}, &out)
	require.NoError(t, err)
	require.Equal(t, "42", out.Item.ID)
	require.Equal(t, "Intro", out.Item.Title)
}

func TestExecute_UnauthorizedEntry_EvictsSession(t *testing.T) {
	srv := gqlServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors":[{"message":"Unauthorized","extensions":{"originalError":{"statusCode":401}}}]}`))
	})

	store := &fakeStore{token: "stale"}
	evictor := &fakeEvictor{active: true}
	redirects := 0

	p := newTestPipeline(t, srv.URL, store)
	p.SetEvictor(evictor)
	p.SetRedirect(func() { redirects++ })

	err := p.Execute(context.Background(), `query { courses { id } }`, nil, nil)
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.Equal(t, 1, evictor.calls)
	require.Equal(t, 1, redirects)

	tok, _ := store.Get(context.Background())
	require.Empty(t, tok)
}

func TestExecute_ForbiddenEntry_DoesNotEvict(t *testing.T) {
	srv := gqlServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors":[{"message":"Access denied","extensions":{"originalError":{"statusCode":403}}}]}`))
	})

	evictor := &fakeEvictor{active: true}
	p := newTestPipeline(t, srv.URL, &fakeStore{token: "t"})
	p.SetEvictor(evictor)

	err := p.Execute(context.Background(), `mutation { deleteItem(id: "1") }`, nil, nil)
	require.ErrorIs(t, err, common.ErrAccessDenied)
	require.Zero(t, evictor.calls)
}

func TestExecute_LegacyMessageMatching(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{
			name: "own courses text",
			body: `{"errors":[{"message":"You can only modify items in your own courses"}]}`,
			want: common.ErrAccessDenied,
		},
		{
			name: "not found text",
			body: `{"errors":[{"message":"Not found"}]}`,
			want: common.ErrNotFound,
		},
		{
			name: "anything else",
			body: `{"errors":[{"message":"INTERNAL_ERROR"}]}`,
			want: common.ErrInternal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := gqlServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			})

			evictor := &fakeEvictor{active: true}
			p := newTestPipeline(t, srv.URL, &fakeStore{token: "t"})
			p.SetEvictor(evictor)

			err := p.Execute(context.Background(), `query { x }`, nil, nil)
			require.ErrorIs(t, err, tc.want)
			// message matching never drives the forced-logout path
			require.Zero(t, evictor.calls)
		})
	}
}

func TestExecute_TransportFailure_IsNetworkError(t *testing.T) {
	p := newTestPipeline(t, "http://127.0.0.1:1", &fakeStore{})

	err := p.Execute(context.Background(), `query { x }`, nil, nil)
	require.ErrorIs(t, err, common.ErrNetwork)
}

func TestExecute_MissingData(t *testing.T) {
	srv := gqlServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	p := newTestPipeline(t, srv.URL, &fakeStore{})

	var out map[string]any
	err := p.Execute(context.Background(), `query { x }`, nil, &out)
	require.ErrorIs(t, err, common.ErrInternal)
}
