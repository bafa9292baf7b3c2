package main

import (
	"log"
	"os"

	"github.com/darasahq/darasa/core"
	"github.com/darasahq/darasa/core/activity"
	"github.com/darasahq/darasa/core/course"
	"github.com/darasahq/darasa/core/deletion"
	emailsvc "github.com/darasahq/darasa/services/email"
	logsvc "github.com/darasahq/darasa/services/logger"
	inmemdb "github.com/darasahq/darasa/storage/database/inmem"
)

func main() {
	conf := core.InitConf()
	core.InitValidators()

	std := log.New(os.Stderr, conf.AppName+" ", log.LstdFlags|log.Lshortfile)
	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, conf)
	} else {
		logger = logsvc.NewStdLogger(std)
	}

	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal("opening database", err)
	}

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	courseRepo := inmemdb.NewCourseRepository(db)
	requestRepo := inmemdb.NewRequestRepository(db)
	activityLog := activity.NewLog(conf.ActivityLogSize)

	cli := &commandLine{
		courseSvc:   course.NewService(courseRepo, activityLog),
		deletionSvc: deletion.NewService(requestRepo, courseRepo, activityLog, mailSvc),
		activityLog: activityLog,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(err.Error(), err)
		}
		os.Exit(1)
	}
}
