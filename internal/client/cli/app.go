package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/iyasyr/iron-lms/internal/client/config"
	"github.com/iyasyr/iron-lms/internal/client/models"
	"github.com/iyasyr/iron-lms/internal/client/session"
	"github.com/iyasyr/iron-lms/internal/logging"
)

// defaultPageSize is used when a listing command does not ask for a size.
const defaultPageSize = 10

// lmsClient is the course/content surface the views need. The api.LMS
// client satisfies it; tests provide a lightweight stub.
type lmsClient interface {
	Courses(ctx context.Context, page, pageSize int) (*models.CoursePage, error)
	Course(ctx context.Context, id string) (*models.Course, error)
	MyEnrollments(ctx context.Context, page, pageSize int) (*models.EnrollmentPage, error)
	Enroll(ctx context.Context, courseID string) (*models.Enrollment, error)
	CancelEnrollment(ctx context.Context, enrollmentID string) (*models.Enrollment, error)
	Lesson(ctx context.Context, id string) (*models.Lesson, error)
	Item(ctx context.Context, id string) (*models.Item, error)
	Items(ctx context.Context, search string, page, pageSize int) (*models.ItemPage, error)
	CreateItem(ctx context.Context, input models.ItemCreateInput) (*models.Item, error)
	UpdateItem(ctx context.Context, id string, input models.ItemUpdateInput) (*models.Item, error)
	DeleteItem(ctx context.Context, id string) error
	CreateLesson(ctx context.Context, input models.LessonCreateInput) (*models.Lesson, error)
	Assignment(ctx context.Context, id string) (*models.Assignment, error)
	Submit(ctx context.Context, assignmentID, artifactURL string) (*models.Submission, error)
	MySubmissions(ctx context.Context, page, pageSize int) (*models.SubmissionPage, error)
	SubmissionsByCourse(ctx context.Context, courseID string, page, pageSize int) (*models.SubmissionPage, error)
}

// App is the terminal front end. It renders views on top of the session
// state machine and the LMS API client.
type App struct {
	config  *config.Config
	session *session.Manager
	lms     lmsClient
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config, sess *session.Manager, lms lmsClient, log logging.Logger) *App {
	return &App{
		config:  cfg,
		session: sess,
		lms:     lms,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}
}

// Run starts the interactive loop and blocks until the user exits or
// standard input is closed.
func (a *App) Run(ctx context.Context) {
	unsub := a.session.Subscribe(func(s session.Snapshot) {
		a.log.Debug(ctx, "session state changed", "state", s.State.String(), "loading", s.Loading)
	})
	defer unsub()

	printlnFn("Iron LMS (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	snap := a.session.Current()
	switch {
	case snap.State == session.StateInitializing:
		return "(restoring session)"
	case snap.IsAuthenticated():
		return fmt.Sprintf("(%s %s)", snap.User.Email, snap.User.Role)
	default:
		return "(anonymous)"
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().IsAuthenticated()
}

func (a *App) isInstructor() bool {
	snap := a.session.Current()
	return snap.IsAuthenticated() && snap.User.IsInstructor()
}
