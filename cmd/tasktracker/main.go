package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/console"
	"task-tracker/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	reminderSvc := service.NewReminderService(cfg.Location)
	session := console.New(os.Stdin, os.Stdout, reminderSvc, cfg.Location)

	if cfg.HasProfile() {
		user := session.Login(cfg.Username, cfg.FullName, cfg.Email)
		if cfg.Demo {
			if _, err := console.SeedDemo(user); err != nil {
				log.Fatalf("demo: %v", err)
			}
		}
	}

	scheduler := service.NewSchedulerService(cfg.Location)
	remind := func() {
		session.RemindOverdue(time.Now())
	}
	if cfg.ReminderInterval > 0 {
		if _, err := scheduler.Every(cfg.ReminderInterval, remind); err != nil {
			log.Fatalf("schedule reminders: %v", err)
		}
	}
	if cfg.ReminderDailyAt != "" {
		if _, err := scheduler.DailyAt(cfg.ReminderDailyAt, remind); err != nil {
			log.Fatalf("schedule daily reminder: %v", err)
		}
	}
	if scheduler.Jobs() > 0 {
		scheduler.Start()
		defer scheduler.Stop()
	}

	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	log.Println("[info] task tracker started")
	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("session stopped with error: %v", err)
		}
	case <-ctx.Done():
		// Stdin read cannot be interrupted; leave the session goroutine behind.
	}
	log.Println("[info] shutdown complete")
}
