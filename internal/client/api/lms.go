package api

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/iyasyr/iron-lms/internal/client/models"
	"github.com/iyasyr/iron-lms/internal/client/transport"
	"github.com/iyasyr/iron-lms/internal/common"
)

// LMS is the GraphQL domain client: courses, enrollments, lessons, items,
// assignments, and submissions. Every operation rides the same pipeline as
// the REST auth calls, so authorization failures get the uniform treatment.
type LMS struct {
	p        *transport.Pipeline
	validate *validator.Validate
}

func NewLMS(p *transport.Pipeline) *LMS {
	return &LMS{p: p, validate: validator.New()}
}

func (c *LMS) Courses(ctx context.Context, page, pageSize int) (*models.CoursePage, error) {
	var out struct {
		Courses models.CoursePage `json:"courses"`
	}
	err := c.p.Execute(ctx, getCoursesDoc, map[string]any{"page": page, "pageSize": pageSize}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Courses, nil
}

func (c *LMS) Course(ctx context.Context, id string) (*models.Course, error) {
	var out struct {
		Course models.Course `json:"course"`
	}
	if err := c.p.Execute(ctx, getCourseDoc, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out.Course, nil
}

func (c *LMS) MyEnrollments(ctx context.Context, page, pageSize int) (*models.EnrollmentPage, error) {
	var out struct {
		MyEnrollments models.EnrollmentPage `json:"myEnrollments"`
	}
	err := c.p.Execute(ctx, getMyEnrollmentsDoc, map[string]any{"page": page, "pageSize": pageSize}, &out)
	if err != nil {
		return nil, err
	}
	return &out.MyEnrollments, nil
}

func (c *LMS) Enroll(ctx context.Context, courseID string) (*models.Enrollment, error) {
	var out struct {
		EnrollInCourse models.Enrollment `json:"enrollInCourse"`
	}
	if err := c.p.Execute(ctx, enrollInCourseDoc, map[string]any{"courseId": courseID}, &out); err != nil {
		return nil, err
	}
	return &out.EnrollInCourse, nil
}

func (c *LMS) CancelEnrollment(ctx context.Context, enrollmentID string) (*models.Enrollment, error) {
	var out struct {
		CancelEnrollment models.Enrollment `json:"cancelEnrollment"`
	}
	if err := c.p.Execute(ctx, cancelEnrollmentDoc, map[string]any{"enrollmentId": enrollmentID}, &out); err != nil {
		return nil, err
	}
	return &out.CancelEnrollment, nil
}

func (c *LMS) Lesson(ctx context.Context, id string) (*models.Lesson, error) {
	var out struct {
		Lesson models.Lesson `json:"lesson"`
	}
	if err := c.p.Execute(ctx, getLessonDoc, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out.Lesson, nil
}

func (c *LMS) Item(ctx context.Context, id string) (*models.Item, error) {
	var out struct {
		Item models.Item `json:"item"`
	}
	if err := c.p.Execute(ctx, getItemDoc, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out.Item, nil
}

// Items searches the item catalogue. An empty search returns everything,
// matching the backend's contract.
func (c *LMS) Items(ctx context.Context, search string, page, pageSize int) (*models.ItemPage, error) {
	vars := map[string]any{"page": page, "pageSize": pageSize}
	if search != "" {
		vars["search"] = search
	}
	var out struct {
		Items models.ItemPage `json:"items"`
	}
	if err := c.p.Execute(ctx, getItemsDoc, vars, &out); err != nil {
		return nil, err
	}
	return &out.Items, nil
}

func (c *LMS) CreateItem(ctx context.Context, input models.ItemCreateInput) (*models.Item, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	var out struct {
		CreateItem models.Item `json:"createItem"`
	}
	if err := c.p.Execute(ctx, createItemDoc, map[string]any{"input": input}, &out); err != nil {
		return nil, err
	}
	return &out.CreateItem, nil
}

func (c *LMS) UpdateItem(ctx context.Context, id string, input models.ItemUpdateInput) (*models.Item, error) {
	var out struct {
		UpdateItem models.Item `json:"updateItem"`
	}
	if err := c.p.Execute(ctx, updateItemDoc, map[string]any{"id": id, "input": input}, &out); err != nil {
		return nil, err
	}
	return &out.UpdateItem, nil
}

func (c *LMS) DeleteItem(ctx context.Context, id string) error {
	return c.p.Execute(ctx, deleteItemDoc, map[string]any{"id": id}, nil)
}

func (c *LMS) CreateLesson(ctx context.Context, input models.LessonCreateInput) (*models.Lesson, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	var out struct {
		CreateLesson models.Lesson `json:"createLesson"`
	}
	if err := c.p.Execute(ctx, createLessonDoc, map[string]any{"input": input}, &out); err != nil {
		return nil, err
	}
	return &out.CreateLesson, nil
}

func (c *LMS) Assignment(ctx context.Context, id string) (*models.Assignment, error) {
	var out struct {
		Assignment models.Assignment `json:"assignment"`
	}
	if err := c.p.Execute(ctx, getAssignmentDoc, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out.Assignment, nil
}

func (c *LMS) Submit(ctx context.Context, assignmentID, artifactURL string) (*models.Submission, error) {
	var out struct {
		Submit models.Submission `json:"submit"`
	}
	vars := map[string]any{"assignmentId": assignmentID, "artifactUrl": artifactURL}
	if err := c.p.Execute(ctx, submitDoc, vars, &out); err != nil {
		return nil, err
	}
	return &out.Submit, nil
}

func (c *LMS) MySubmissions(ctx context.Context, page, pageSize int) (*models.SubmissionPage, error) {
	var out struct {
		MySubmissions models.SubmissionPage `json:"mySubmissions"`
	}
	err := c.p.Execute(ctx, mySubmissionsDoc, map[string]any{"page": page, "pageSize": pageSize}, &out)
	if err != nil {
		return nil, err
	}
	return &out.MySubmissions, nil
}

func (c *LMS) SubmissionsByCourse(ctx context.Context, courseID string, page, pageSize int) (*models.SubmissionPage, error) {
	var out struct {
		SubmissionsByCourse models.SubmissionPage `json:"submissionsByCourse"`
	}
	vars := map[string]any{"courseId": courseID, "page": page, "pageSize": pageSize}
	if err := c.p.Execute(ctx, submissionsByCourseDoc, vars, &out); err != nil {
		return nil, err
	}
	return &out.SubmissionsByCourse, nil
}
