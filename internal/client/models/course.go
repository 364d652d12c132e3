package models

import "time"

// CourseStatus is the publication state of a course.
type CourseStatus string

const (
	CourseDraft     CourseStatus = "DRAFT"
	CoursePublished CourseStatus = "PUBLISHED"
)

type Course struct {
	ID           string       `json:"id"`
	InstructorID string       `json:"instructorId"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Status       CourseStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	PublishedAt  *time.Time   `json:"publishedAt"`
	Lessons      []Lesson     `json:"lessons"`
	Assignments  []Assignment `json:"assignments"`
}

type Lesson struct {
	ID         string `json:"id"`
	CourseID   string `json:"courseId"`
	Title      string `json:"title"`
	OrderIndex int    `json:"orderIndex"`
	Item       *Item  `json:"item"`
}

type Assignment struct {
	ID           string     `json:"id"`
	CourseID     string     `json:"courseId"`
	LessonID     string     `json:"lessonId"`
	Title        string     `json:"title"`
	Instructions string     `json:"instructions"`
	DueAt        *time.Time `json:"dueAt"`
	MaxPoints    int        `json:"maxPoints"`
	AllowLate    bool       `json:"allowLate"`
}

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentCancelled EnrollmentStatus = "CANCELLED"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
)

type Enrollment struct {
	ID         string           `json:"id"`
	CourseID   string           `json:"courseId"`
	StudentID  string           `json:"studentId"`
	EnrolledAt time.Time        `json:"enrolledAt"`
	Status     EnrollmentStatus `json:"status"`
	Course     *Course          `json:"course"`
}

// PageInfo mirrors the backend's offset pagination envelope.
type PageInfo struct {
	Page          int   `json:"page"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	HasNext       bool  `json:"hasNext"`
}

type CoursePage struct {
	Content  []Course `json:"content"`
	PageInfo PageInfo `json:"pageInfo"`
}

type EnrollmentPage struct {
	Content  []Enrollment `json:"content"`
	PageInfo PageInfo     `json:"pageInfo"`
}

// LessonCreateInput is the instructor-side lesson creation payload.
type LessonCreateInput struct {
	CourseID   string `json:"courseId" validate:"required"`
	Title      string `json:"title" validate:"required"`
	OrderIndex int    `json:"orderIndex" validate:"gte=0"`
}
