package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/iyasyr/iron-lms/internal/client/models"
)

// Lesson shows a lesson and, when present, its content item.
func (a *App) Lesson(ctx context.Context) error {
	if err := a.guard(accessProtected); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter lesson id", os.Stdout)
	if err != nil {
		return err
	}

	lesson, err := a.lms.Lesson(ctx, id)
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("Lesson %d: %s (course %s)", lesson.OrderIndex, lesson.Title, lesson.CourseID))
	if lesson.Item != nil {
		printlnFn("")
		printItem(lesson.Item)
	}
	return nil
}

// NewLesson creates a lesson in one of the instructor's courses.
func (a *App) NewLesson(ctx context.Context) error {
	if err := a.guard(accessInstructor); err != nil {
		return err
	}

	courseID, err := getSimpleText(a.reader, "Enter course id", os.Stdout)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter lesson title", os.Stdout)
	if err != nil {
		return err
	}
	orderIndex, err := GetInt(a.reader, "Enter order index (empty for 0)", 0, os.Stdout)
	if err != nil {
		return report(err)
	}

	lesson, err := a.lms.CreateLesson(ctx, models.LessonCreateInput{
		CourseID:   courseID,
		Title:      title,
		OrderIndex: orderIndex,
	})
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("Created lesson [%s] %s", lesson.ID, lesson.Title))
	return nil
}
