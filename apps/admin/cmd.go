package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/darasahq/darasa/core/activity"
	"github.com/darasahq/darasa/core/course"
	"github.com/darasahq/darasa/core/deletion"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	courseSvc   *course.Service
	deletionSvc *deletion.Service
	activityLog *activity.Log
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  seed                                        - load the sample catalog")
	fmt.Println("  create -title TITLE [options]               - create a course")
	fmt.Println("  courses [-search TEXT] [-status STATUS]     - list courses")
	fmt.Println("  submit -id ID                               - submit a course for review")
	fmt.Println("  reviews                                     - list courses pending review")
	fmt.Println("  review -id ID -approve|-reject              - decide a pending review")
	fmt.Println("  delete -id ID                               - delete a course directly")
	fmt.Println("  request -id ID -by IDENTITY [-reason TEXT]  - request a course deletion")
	fmt.Println("  deletions                                   - list pending deletion requests")
	fmt.Println("  deletion -id ID -approve|-reject            - decide a deletion request")
	fmt.Println("  activity                                    - show recent actions")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "seed":
		return cli.seed()
	case "create":
		return cli.createCourse(args[2:])
	case "courses":
		return cli.listCourses(args[2:])
	case "submit":
		return cli.submitForReview(args[2:])
	case "reviews":
		return cli.listReviews()
	case "review":
		return cli.decideReview(args[2:])
	case "delete":
		return cli.deleteCourse(args[2:])
	case "request":
		return cli.requestDeletion(args[2:])
	case "deletions":
		return cli.listDeletions()
	case "deletion":
		return cli.decideDeletion(args[2:])
	case "activity":
		return cli.showActivity()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) createCourse(args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	title := fs.String("title", "", "The course title.")
	description := fs.String("description", "", "The course description.")
	instructor := fs.String("instructor", "", "The instructor's name.")
	price := fs.Float64("price", 0, "The course price.")
	level := fs.String("level", "", "The course level.")
	category := fs.String("category", "", "The course category.")
	duration := fs.String("duration", "", "The course duration.")
	language := fs.String("language", "", "The course language.")
	actor := fs.String("actor", "admin", "The acting identity.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" {
		fs.Usage()
		return errHelp
	}

	nc := course.NewCourse{
		Title:       *title,
		Description: *description,
		Instructor:  *instructor,
		Price:       *price,
		Level:       *level,
		Category:    *category,
		Duration:    *duration,
		Language:    *language,
	}
	if err := nc.Validate(cli.courseSvc); err != nil {
		return err
	}
	crs, err := cli.courseSvc.Create(nc, *actor)
	if err != nil {
		return err
	}
	fmt.Printf("created course %d: %s\n", crs.ID, crs.Title)
	return nil
}

func (cli *commandLine) listCourses(args []string) error {
	fs := flag.NewFlagSet("courses", flag.ExitOnError)
	search := fs.String("search", "", "Free-text match on title or description.")
	statusStr := fs.String("status", "", "Status equality filter (draft|under_review|published|pending_deletion).")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := course.QueryFilter{Search: *search}
	if *statusStr != "" {
		status, err := course.ParseStatus(*statusStr)
		if err != nil {
			return err
		}
		filter.Status = &status
	}
	courses, err := cli.courseSvc.Filter(filter)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tINSTRUCTOR\tSTATUS\tSTUDENTS\tRATING\tPRICE")
	for _, crs := range courses {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%.1f\t%.2f\n",
			crs.ID, crs.Title, crs.Instructor, crs.Status, crs.StudentCount, crs.Rating, crs.Price)
	}
	return w.Flush()
}

func (cli *commandLine) submitForReview(args []string) error {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	id := fs.Int("id", 0, "The course id.")
	actor := fs.String("actor", "admin", "The acting identity.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		fs.Usage()
		return errHelp
	}
	return cli.courseSvc.SetReviewStatus(*id, course.StatusUnderReview, *actor)
}

func (cli *commandLine) listReviews() error {
	items, err := cli.courseSvc.PendingReviews()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tINSTRUCTOR\tSUBMITTED\tPRIORITY")
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			item.ID, item.Title, item.Instructor, item.SubmittedAt.Format("2006-01-02"), item.Priority)
	}
	return w.Flush()
}

func (cli *commandLine) decideReview(args []string) error {
	fs := flag.NewFlagSet("review", flag.ExitOnError)
	id := fs.Int("id", 0, "The course id.")
	approve := fs.Bool("approve", false, "Publish the course.")
	reject := fs.Bool("reject", false, "Send the course back to draft.")
	actor := fs.String("actor", "admin", "The acting identity.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 || *approve == *reject {
		fs.Usage()
		return errHelp
	}
	status := course.StatusPublished
	if *reject {
		status = course.StatusDraft
	}
	return cli.courseSvc.SetReviewStatus(*id, status, *actor)
}

func (cli *commandLine) deleteCourse(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int("id", 0, "The course id.")
	actor := fs.String("actor", "admin", "The acting identity.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		fs.Usage()
		return errHelp
	}
	return cli.courseSvc.Delete(*id, *actor)
}

func (cli *commandLine) requestDeletion(args []string) error {
	fs := flag.NewFlagSet("request", flag.ExitOnError)
	id := fs.Int("id", 0, "The course id.")
	by := fs.String("by", "", "The requesting identity.")
	reason := fs.String("reason", "", "Why the course should be deleted.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 || *by == "" {
		fs.Usage()
		return errHelp
	}
	req, err := cli.deletionSvc.Request(*id, *by, *reason)
	if err != nil {
		return err
	}
	fmt.Printf("deletion request %d queued for course: %s\n", req.ID, req.CourseTitle)
	return nil
}

func (cli *commandLine) listDeletions() error {
	requests, err := cli.deletionSvc.List()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCOURSE\tTITLE\tREQUESTED BY\tREQUESTED AT\tREASON")
	for _, req := range requests {
		_, _ = fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
			req.ID, req.CourseID, req.CourseTitle, req.RequestedBy, req.RequestedAt.Format("2006-01-02"), req.Reason)
	}
	return w.Flush()
}

func (cli *commandLine) decideDeletion(args []string) error {
	fs := flag.NewFlagSet("deletion", flag.ExitOnError)
	id := fs.Int("id", 0, "The deletion request id.")
	approve := fs.Bool("approve", false, "Approve the request and delete the course.")
	reject := fs.Bool("reject", false, "Reject the request and restore the course.")
	actor := fs.String("actor", "admin", "The acting identity.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 || *approve == *reject {
		fs.Usage()
		return errHelp
	}
	if *approve {
		return cli.deletionSvc.Approve(*id, *actor)
	}
	return cli.deletionSvc.Reject(*id, *actor)
}

func (cli *commandLine) showActivity() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "WHEN\tACTOR\tKIND\tACTION")
	for _, entry := range cli.activityLog.List() {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.TimeAgo(), entry.Actor, entry.Kind, entry.Action)
	}
	return w.Flush()
}
