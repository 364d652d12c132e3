package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/iyasyr/iron-lms/internal/client/models"
)

// Assignment shows one assignment with its instructions.
func (a *App) Assignment(ctx context.Context) error {
	if err := a.guard(accessProtected); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter assignment id", os.Stdout)
	if err != nil {
		return err
	}

	as, err := a.lms.Assignment(ctx, id)
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("%s (%d pts)", as.Title, as.MaxPoints))
	if as.DueAt != nil {
		late := "late submissions rejected"
		if as.AllowLate {
			late = "late submissions allowed"
		}
		printlnFn(fmt.Sprintf("due %s, %s", as.DueAt.Format("2006-01-02 15:04"), late))
	}
	if as.Instructions != "" {
		printlnFn("")
		printlnFn(as.Instructions)
	}
	return nil
}

// Submit sends an artifact URL for an assignment.
func (a *App) Submit(ctx context.Context) error {
	if err := a.guard(accessProtected); err != nil {
		return err
	}

	assignmentID, err := getSimpleText(a.reader, "Enter assignment id", os.Stdout)
	if err != nil {
		return err
	}
	artifactURL, err := getSimpleText(a.reader, "Enter artifact URL", os.Stdout)
	if err != nil {
		return err
	}

	sub, err := a.lms.Submit(ctx, assignmentID, artifactURL)
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("Submitted: %s (version %d, %s)", sub.ID, sub.Version, sub.Status))
	return nil
}

// MySubmissions lists the caller's submissions.
func (a *App) MySubmissions(ctx context.Context) error {
	if err := a.guard(accessProtected); err != nil {
		return err
	}

	result, err := a.lms.MySubmissions(ctx, 0, defaultPageSize)
	if err != nil {
		return report(err)
	}

	printSubmissions(result)
	return nil
}

// CourseSubmissions lists submissions across a course the instructor owns.
func (a *App) CourseSubmissions(ctx context.Context) error {
	if err := a.guard(accessInstructor); err != nil {
		return err
	}

	courseID, err := getSimpleText(a.reader, "Enter course id", os.Stdout)
	if err != nil {
		return err
	}

	result, err := a.lms.SubmissionsByCourse(ctx, courseID, 0, defaultPageSize)
	if err != nil {
		return report(err)
	}

	printSubmissions(result)
	return nil
}

func printSubmissions(page *models.SubmissionPage) {
	if len(page.Content) == 0 {
		printlnFn("No submissions.")
		return
	}

	for _, s := range page.Content {
		score := "ungraded"
		if s.Score != nil {
			score = fmt.Sprintf("%d pts", *s.Score)
		}
		printlnFn(fmt.Sprintf("[%s] assignment %s v%d — %s (%s) %s",
			s.ID, s.AssignmentID, s.Version, s.Status, score, s.SubmittedAt.Format("2006-01-02 15:04")))
	}
	printPageInfo(page.PageInfo)
}
