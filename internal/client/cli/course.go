package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/iyasyr/iron-lms/internal/client/models"
)

// Courses renders one page of the course catalogue. The catalogue is
// public: anonymous visitors may browse before deciding to register.
func (a *App) Courses(ctx context.Context) error {
	page, err := GetInt(a.reader, "Page (empty for first)", 0, os.Stdout)
	if err != nil {
		return report(err)
	}

	result, err := a.lms.Courses(ctx, page, defaultPageSize)
	if err != nil {
		return report(err)
	}

	if len(result.Content) == 0 {
		printlnFn("No courses on this page.")
		return nil
	}

	for _, c := range result.Content {
		printlnFn(fmt.Sprintf("[%s] %s (%s, %d lessons)", c.ID, c.Title, c.Status, len(c.Lessons)))
	}
	printPageInfo(result.PageInfo)
	return nil
}

// Course shows one course with its lessons and assignments.
func (a *App) Course(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter course id", os.Stdout)
	if err != nil {
		return err
	}

	course, err := a.lms.Course(ctx, id)
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("%s — %s", course.Title, course.Status))
	if course.Description != "" {
		printlnFn(course.Description)
	}
	for _, l := range course.Lessons {
		printlnFn(fmt.Sprintf("  lesson %2d [%s] %s", l.OrderIndex, l.ID, l.Title))
	}
	for _, as := range course.Assignments {
		due := "no due date"
		if as.DueAt != nil {
			due = "due " + as.DueAt.Format("2006-01-02 15:04")
		}
		printlnFn(fmt.Sprintf("  assignment [%s] %s (%d pts, %s)", as.ID, as.Title, as.MaxPoints, due))
	}
	return nil
}

// Enrollments lists the caller's enrollments.
func (a *App) Enrollments(ctx context.Context) error {
	if err := a.guard(accessProtected); err != nil {
		return err
	}

	result, err := a.lms.MyEnrollments(ctx, 0, defaultPageSize)
	if err != nil {
		return report(err)
	}

	if len(result.Content) == 0 {
		printlnFn("You are not enrolled in any course yet.")
		return nil
	}

	for _, e := range result.Content {
		title := e.CourseID
		if e.Course != nil {
			title = e.Course.Title
		}
		printlnFn(fmt.Sprintf("[%s] %s — %s since %s", e.ID, title, e.Status, e.EnrolledAt.Format("2006-01-02")))
	}
	printPageInfo(result.PageInfo)
	return nil
}

// Enroll enrolls the caller into a course by ID.
func (a *App) Enroll(ctx context.Context) error {
	if err := a.guard(accessProtected); err != nil {
		return err
	}

	courseID, err := getSimpleText(a.reader, "Enter course id", os.Stdout)
	if err != nil {
		return err
	}

	enr, err := a.lms.Enroll(ctx, courseID)
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("Enrolled: %s (%s)", enr.ID, enr.Status))
	return nil
}

// Unenroll cancels an enrollment by its ID.
func (a *App) Unenroll(ctx context.Context) error {
	if err := a.guard(accessProtected); err != nil {
		return err
	}

	enrollmentID, err := getSimpleText(a.reader, "Enter enrollment id", os.Stdout)
	if err != nil {
		return err
	}

	enr, err := a.lms.CancelEnrollment(ctx, enrollmentID)
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("Enrollment %s is now %s", enr.ID, enr.Status))
	return nil
}

func printPageInfo(pi models.PageInfo) {
	next := ""
	if pi.HasNext {
		next = ", more available"
	}
	printlnFn(fmt.Sprintf("page %d/%d, %d total%s", pi.Page+1, pi.TotalPages, pi.TotalElements, next))
}
