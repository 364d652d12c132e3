package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iyasyr/iron-lms/internal/client/models"
	"github.com/iyasyr/iron-lms/internal/common"
)

func gqlServer(t *testing.T, wantOp string, reply string) (*httptest.Server, *map[string]any) {
	t.Helper()
	vars := map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/graphql", r.URL.Path)

		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Contains(t, req.Query, wantOp)
		for k, v := range req.Variables {
			vars[k] = v
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv, &vars
}

func TestLMS_Courses(t *testing.T) {
	reply := `{"data":{"courses":{
		"content":[{"id":"1","title":"Go 101","status":"PUBLISHED","lessons":[{"id":"10","title":"Intro","orderIndex":0}]}],
		"pageInfo":{"page":0,"pageSize":10,"totalElements":1,"totalPages":1,"hasNext":false}}}}`
	srv, vars := gqlServer(t, "GetCourses", reply)

	lms := NewLMS(newPipeline(t, srv.URL, &memStore{token: "abc"}))

	page, err := lms.Courses(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	require.Equal(t, "Go 101", page.Content[0].Title)
	require.Equal(t, models.CoursePublished, page.Content[0].Status)
	require.False(t, page.PageInfo.HasNext)
	require.EqualValues(t, 0, (*vars)["page"])
}

func TestLMS_Enroll(t *testing.T) {
	reply := `{"data":{"enrollInCourse":{"id":"e1","courseId":"1","studentId":"7","status":"ACTIVE"}}}`
	srv, vars := gqlServer(t, "EnrollInCourse", reply)

	lms := NewLMS(newPipeline(t, srv.URL, &memStore{token: "abc"}))

	enr, err := lms.Enroll(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, models.EnrollmentActive, enr.Status)
	require.Equal(t, "1", (*vars)["courseId"])
}

func TestLMS_Items_OmitsEmptySearch(t *testing.T) {
	reply := `{"data":{"items":{"content":[],"pageInfo":{"page":0,"pageSize":10,"totalElements":0,"totalPages":0,"hasNext":false}}}}`
	srv, vars := gqlServer(t, "GetItems", reply)

	lms := NewLMS(newPipeline(t, srv.URL, &memStore{token: "abc"}))

	_, err := lms.Items(context.Background(), "", 0, 10)
	require.NoError(t, err)
	_, present := (*vars)["search"]
	require.False(t, present)
}

func TestLMS_CreateItem_ValidatesInput(t *testing.T) {
	srv, _ := gqlServer(t, "CreateItem", `{"data":{}}`)

	lms := NewLMS(newPipeline(t, srv.URL, &memStore{token: "abc"}))

	_, err := lms.CreateItem(context.Background(), models.ItemCreateInput{Title: "no lesson"})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestLMS_CreateItem_Success(t *testing.T) {
	reply := `{"data":{"createItem":{"id":"i1","lessonId":"10","title":"Notes","tags":["go"],"bodyMarkdown":"# hi"}}}`
	srv, vars := gqlServer(t, "CreateItem", reply)

	lms := NewLMS(newPipeline(t, srv.URL, &memStore{token: "abc"}))

	item, err := lms.CreateItem(context.Background(), models.ItemCreateInput{
		LessonID:     "10",
		Title:        "Notes",
		Tags:         []string{"go"},
		BodyMarkdown: "# hi",
	})
	require.NoError(t, err)
	require.Equal(t, "i1", item.ID)

	input, ok := (*vars)["input"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "10", input["lessonId"])
}

func TestLMS_DeleteItem_AccessDenied(t *testing.T) {
	reply := `{"errors":[{"message":"You can only modify items in your own courses"}]}`
	srv, _ := gqlServer(t, "DeleteItem", reply)

	lms := NewLMS(newPipeline(t, srv.URL, &memStore{token: "abc"}))

	err := lms.DeleteItem(context.Background(), "i1")
	require.ErrorIs(t, err, common.ErrAccessDenied)
}

func TestLMS_Submit(t *testing.T) {
	reply := `{"data":{"submit":{"id":"s1","assignmentId":"a1","status":"SUBMITTED","artifactUrl":"https://x/y","version":1}}}`
	srv, vars := gqlServer(t, "Submit", reply)

	lms := NewLMS(newPipeline(t, srv.URL, &memStore{token: "abc"}))

	sub, err := lms.Submit(context.Background(), "a1", "https://x/y")
	require.NoError(t, err)
	require.Equal(t, "SUBMITTED", sub.Status)
	require.Equal(t, "https://x/y", (*vars)["artifactUrl"])
}
