package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/iyasyr/iron-lms/internal/client/models"
)

// Items renders one page of the content catalogue, optionally filtered by
// a search term.
func (a *App) Items(ctx context.Context) error {
	if err := a.guard(accessProtected); err != nil {
		return err
	}

	search, err := getSimpleText(a.reader, "Search term (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	page, err := GetInt(a.reader, "Page (empty for first)", 0, os.Stdout)
	if err != nil {
		return report(err)
	}

	result, err := a.lms.Items(ctx, search, page, defaultPageSize)
	if err != nil {
		return report(err)
	}

	if len(result.Content) == 0 {
		printlnFn("No items match.")
		return nil
	}

	for _, it := range result.Content {
		tags := ""
		if len(it.Tags) > 0 {
			tags = " #" + strings.Join(it.Tags, " #")
		}
		printlnFn(fmt.Sprintf("[%s] %s%s", it.ID, it.Title, tags))
	}
	printPageInfo(result.PageInfo)
	return nil
}

// Item shows one content item with its markdown body.
func (a *App) Item(ctx context.Context) error {
	if err := a.guard(accessProtected); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter item id", os.Stdout)
	if err != nil {
		return err
	}

	item, err := a.lms.Item(ctx, id)
	if err != nil {
		return report(err)
	}

	printItem(item)
	return nil
}

// NewItem walks an instructor through creating a content item: lesson,
// title, description, tags, then the markdown body.
func (a *App) NewItem(ctx context.Context) error {
	if err := a.guard(accessInstructor); err != nil {
		return err
	}

	lessonID, err := getSimpleText(a.reader, "Enter lesson id", os.Stdout)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	tags, err := GetTags(a.reader, os.Stdout)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Enter markdown body:", os.Stdout)
	if err != nil {
		return err
	}

	item, err := a.lms.CreateItem(ctx, models.ItemCreateInput{
		LessonID:     lessonID,
		Title:        title,
		Description:  description,
		Tags:         tags,
		BodyMarkdown: body,
	})
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("Created item [%s] %s", item.ID, item.Title))
	return nil
}

// EditItem updates a content item. Empty answers leave the corresponding
// field untouched, so the update payload carries only actual changes.
func (a *App) EditItem(ctx context.Context) error {
	if err := a.guard(accessInstructor); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter item id", os.Stdout)
	if err != nil {
		return err
	}

	current, err := a.lms.Item(ctx, id)
	if err != nil {
		return report(err)
	}
	printlnFn(fmt.Sprintf("Editing [%s] %s (empty answer keeps the current value)", current.ID, current.Title))

	var input models.ItemUpdateInput

	if title, err := getSimpleText(a.reader, "New title", os.Stdout); err != nil {
		return err
	} else if title != "" {
		input.Title = &title
	}

	if description, err := getSimpleText(a.reader, "New description", os.Stdout); err != nil {
		return err
	} else if description != "" {
		input.Description = &description
	}

	if tags, err := GetTags(a.reader, os.Stdout); err != nil {
		return err
	} else if tags != nil {
		input.Tags = tags
	}

	if body, err := GetMultiline(a.reader, "New markdown body (empty keeps current):", os.Stdout); err != nil {
		return err
	} else if body != "" {
		input.BodyMarkdown = &body
	}

	item, err := a.lms.UpdateItem(ctx, id, input)
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("Updated item [%s] %s", item.ID, item.Title))
	return nil
}

// DeleteItem removes a content item after confirmation.
func (a *App) DeleteItem(ctx context.Context) error {
	if err := a.guard(accessInstructor); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter item id to delete", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getSimpleText(a.reader, "Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.lms.DeleteItem(ctx, id); err != nil {
		return report(err)
	}

	printlnFn("Deleted.")
	return nil
}

func printItem(item *models.Item) {
	printlnFn(fmt.Sprintf("%s (lesson %s)", item.Title, item.LessonID))
	if item.Description != "" {
		printlnFn(item.Description)
	}
	if len(item.Tags) > 0 {
		printlnFn("tags: " + strings.Join(item.Tags, ", "))
	}
	printlnFn("")
	printlnFn(item.BodyMarkdown)
}
