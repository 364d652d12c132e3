package models

import "time"

type Submission struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignmentId"`
	CourseID     string    `json:"courseId"`
	StudentID    string    `json:"studentId"`
	SubmittedAt  time.Time `json:"submittedAt"`
	ArtifactURL  string    `json:"artifactUrl"`
	Status       string    `json:"status"`
	Score        *int      `json:"score"`
	Feedback     *string   `json:"feedback"`
	Version      int       `json:"version"`
}

type SubmissionPage struct {
	Content  []Submission `json:"content"`
	PageInfo PageInfo     `json:"pageInfo"`
}
