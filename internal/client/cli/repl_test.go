package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn   bool
	instructor bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool   { return f.loggedIn }
func (f *fakeExec) isInstructor() bool { return f.instructor }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Whoami(ctx context.Context) error      { return f.record("whoami") }
func (f *fakeExec) Courses(ctx context.Context) error     { return f.record("courses") }
func (f *fakeExec) Course(ctx context.Context) error      { return f.record("course") }
func (f *fakeExec) Enrollments(ctx context.Context) error { return f.record("enrollments") }
func (f *fakeExec) Enroll(ctx context.Context) error      { return f.record("enroll") }
func (f *fakeExec) Unenroll(ctx context.Context) error    { return f.record("unenroll") }
func (f *fakeExec) Lesson(ctx context.Context) error      { return f.record("lesson") }
func (f *fakeExec) NewLesson(ctx context.Context) error   { return f.record("newlesson") }
func (f *fakeExec) Items(ctx context.Context) error       { return f.record("items") }
func (f *fakeExec) Item(ctx context.Context) error        { return f.record("item") }
func (f *fakeExec) NewItem(ctx context.Context) error     { return f.record("newitem") }
func (f *fakeExec) EditItem(ctx context.Context) error    { return f.record("edititem") }
func (f *fakeExec) DeleteItem(ctx context.Context) error  { return f.record("delitem") }
func (f *fakeExec) Assignment(ctx context.Context) error  { return f.record("assignment") }
func (f *fakeExec) Submit(ctx context.Context) error      { return f.record("submit") }
func (f *fakeExec) MySubmissions(ctx context.Context) error {
	return f.record("mysubs")
}
func (f *fakeExec) CourseSubmissions(ctx context.Context) error {
	return f.record("coursesubs")
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"courses",
		"enroll",
		"items",
		"submit",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "courses", "enroll", "items", "submit"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_BlankLinesAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_InstructorHelp(t *testing.T) {
	var lines []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("help\nexit\n")
	exec := &fakeExec{loggedIn: true, instructor: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	found := false
	for _, l := range lines {
		if strings.Contains(l, "newitem") {
			found = true
		}
	}
	if !found {
		t.Fatalf("instructor help not shown: %v", lines)
	}
}
