package deletion

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/darasahq/darasa/core"
	"github.com/darasahq/darasa/core/activity"
	"github.com/darasahq/darasa/core/course"
)

var (
	// errors
	ErrNotFound         = errors.New("deletion request not found")
	ErrAlreadyRequested = errors.New("a deletion request is already pending for this course")
)

type (
	Repository interface {
		CreateRequest(req Request) (Request, error)
		QueryAllRequests() ([]Request, error)
		GetRequestByID(id int) (Request, error)
		DeleteRequest(id int) error
	}

	Service struct {
		repo       Repository
		courseRepo course.Repository
		log        *activity.Log
		mailSvc    core.EmailService
	}
)

// NewService wires the deletion queue to the course store it mutates.
// mailSvc may be nil; notifications are best-effort and never block an
// operation's outcome.
func NewService(repo Repository, courseRepo course.Repository, log *activity.Log, mailSvc core.EmailService) *Service {
	return &Service{
		repo:       repo,
		courseRepo: courseRepo,
		log:        log,
		mailSvc:    mailSvc,
	}
}

// Request enqueues a deletion request for the course and flips its status to
// PendingDeletion. It fails with course.ErrNotFound when the course does not
// exist and with ErrAlreadyRequested when the course is already pending
// deletion.
func (svc *Service) Request(courseID int, requestedBy, reason string) (Request, error) {
	crs, err := svc.courseRepo.GetCourseByID(courseID)
	if err != nil {
		return Request{}, err
	}
	if crs.Status == course.StatusPendingDeletion {
		return Request{}, ErrAlreadyRequested
	}

	now := time.Now().UTC()
	req, err := svc.repo.CreateRequest(Request{
		CourseID:    courseID,
		CourseTitle: crs.Title,
		RequestedBy: requestedBy,
		RequestedAt: now,
		Reason:      reason,
	})
	if err != nil {
		return Request{}, err
	}

	pending := course.StatusPendingDeletion
	requested := true
	if _, err := svc.courseRepo.UpdateCourse(courseID, course.UpdateCourse{
		Status:              &pending,
		DeletionRequested:   &requested,
		DeletionRequestedBy: &requestedBy,
	}, now); err != nil {
		return Request{}, err
	}

	svc.log.Append(fmt.Sprintf("Requested deletion for course: %s", crs.Title), requestedBy, activity.KindDeletionRequest)
	svc.notifyAdmin(req)
	return req, nil
}

// Approve destroys both the request and the course it references. The queue's
// own log entry is the one of record: the course removal deliberately bypasses
// the course store's "Directly deleted" wording so the event is logged once.
func (svc *Service) Approve(requestID int, actor string) error {
	req, err := svc.repo.GetRequestByID(requestID)
	if err != nil {
		return err
	}
	if err := svc.courseRepo.DeleteCourse(req.CourseID); err != nil && !errors.Is(err, course.ErrNotFound) {
		return err
	}
	if err := svc.repo.DeleteRequest(requestID); err != nil {
		return err
	}
	svc.log.Append(fmt.Sprintf("Approved deletion for course: %s", req.CourseTitle), actor, activity.KindApproved)
	svc.notifyRequester(req, "approved")
	return nil
}

// Reject discards the request and restores the course.
//
// The restored status is always Published, even when the course was Draft or
// UnderReview before the request: this pins the observed behavior of the
// system being replaced. See DESIGN.md before "fixing" it.
func (svc *Service) Reject(requestID int, actor string) error {
	req, err := svc.repo.GetRequestByID(requestID)
	if err != nil {
		return err
	}

	published := course.StatusPublished
	requested := false
	nobody := ""
	if _, err := svc.courseRepo.UpdateCourse(req.CourseID, course.UpdateCourse{
		Status:              &published,
		DeletionRequested:   &requested,
		DeletionRequestedBy: &nobody,
	}, time.Now().UTC()); err != nil && !errors.Is(err, course.ErrNotFound) {
		return err
	}
	if err := svc.repo.DeleteRequest(requestID); err != nil {
		return err
	}
	svc.log.Append(fmt.Sprintf("Rejected deletion for course: %s", req.CourseTitle), actor, activity.KindRejected)
	svc.notifyRequester(req, "rejected")
	return nil
}

// List returns the live requests in insertion order.
func (svc *Service) List() ([]Request, error) {
	return svc.repo.QueryAllRequests()
}

func (svc *Service) notifyAdmin(req Request) {
	if svc.mailSvc == nil {
		return
	}
	body := fmt.Sprintf("%s requested the deletion of course %q.", req.RequestedBy, req.CourseTitle)
	if req.Reason != "" {
		body += fmt.Sprintf(" Reason: %s", req.Reason)
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{core.Conf.AdminEmailAddress()},
		Subject: "Course deletion requested",
		BodyStr: body,
	})
}

func (svc *Service) notifyRequester(req Request, decision string) {
	if svc.mailSvc == nil {
		return
	}
	// requester identities are free-form; only notify when one is an email address
	addr, err := mail.ParseAddress(req.RequestedBy)
	if err != nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{*addr},
		Subject: "Course deletion request " + decision,
		BodyStr: fmt.Sprintf("Your deletion request for course %q has been %s.", req.CourseTitle, decision),
	})
}
