package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isInstructor() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Courses(ctx context.Context) error
	Course(ctx context.Context) error
	Enrollments(ctx context.Context) error
	Enroll(ctx context.Context) error
	Unenroll(ctx context.Context) error
	Lesson(ctx context.Context) error
	NewLesson(ctx context.Context) error
	Items(ctx context.Context) error
	Item(ctx context.Context) error
	NewItem(ctx context.Context) error
	EditItem(ctx context.Context) error
	DeleteItem(ctx context.Context) error
	Assignment(ctx context.Context) error
	Submit(ctx context.Context) error
	MySubmissions(ctx context.Context) error
	CourseSubmissions(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the LMS client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - courses        — browse the course catalogue
//	  - course         — show one course (interactive ID prompt)
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - whoami         — show the current user
//	  - enrollments    — list my enrollments
//	  - enroll         — enroll in a course
//	  - unenroll       — cancel an enrollment
//	  - lesson         — show a lesson
//	  - items          — browse/search content items
//	  - item           — show one item
//	  - assignment     — show an assignment
//	  - submit         — submit an artifact URL for an assignment
//	  - mysubs         — list my submissions
//	  - logout         — log out
//
//	Instructors additionally:
//	  - newlesson      — create a lesson
//	  - newitem        — create a content item
//	  - edititem       — update a content item
//	  - delitem        — delete a content item
//	  - coursesubs     — list submissions for a course
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lms> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printHelp(a)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami", "me":
			_ = a.Whoami(ctx)

		case "courses":
			_ = a.Courses(ctx)

		case "course":
			_ = a.Course(ctx)

		case "enrollments":
			_ = a.Enrollments(ctx)

		case "enroll":
			_ = a.Enroll(ctx)

		case "unenroll":
			_ = a.Unenroll(ctx)

		case "lesson":
			_ = a.Lesson(ctx)

		case "newlesson":
			_ = a.NewLesson(ctx)

		case "items":
			_ = a.Items(ctx)

		case "item":
			_ = a.Item(ctx)

		case "newitem":
			_ = a.NewItem(ctx)

		case "edititem":
			_ = a.EditItem(ctx)

		case "delitem":
			_ = a.DeleteItem(ctx)

		case "assignment":
			_ = a.Assignment(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "mysubs":
			_ = a.MySubmissions(ctx)

		case "coursesubs":
			_ = a.CourseSubmissions(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	if !a.isLoggedIn() {
		printlnFn("Available commands: register, login, courses, course, exit")
		return
	}
	printlnFn("Available commands: whoami, courses, course, enrollments, enroll, unenroll,")
	printlnFn("  lesson, items, item, assignment, submit, mysubs, logout, exit")
	if a.isInstructor() {
		printlnFn("Instructor commands: newlesson, newitem, edititem, delitem, coursesubs")
	}
}
