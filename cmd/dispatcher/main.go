package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calremind/internal/app/deps"
	"calremind/internal/app/services"
	"calremind/internal/core/domain/logging"
	dispatchduereminders "calremind/internal/core/services/dispatch_due_reminders"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	ticker := time.NewTicker(deps.Config.DispatchPeriod)
	defer ticker.Stop()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting periodic reminder dispatcher.",
		logging.Entry("periodSeconds", (deps.Config.DispatchPeriod).Seconds()),
	)

	// Passes run inside the select loop, so they are serialized and a
	// pass that overruns the period simply coalesces the missed ticks.
loop:
	for {
		select {
		case <-stopCh:
			log.Info(context.Background(), "Stopping periodic reminder dispatcher.")
			break loop
		case <-ticker.C:
			result, err := services.DispatchDueReminders.Run(
				context.Background(),
				dispatchduereminders.Input{},
			)
			if err != nil {
				log.Error(context.Background(), "Dispatch pass returned an error.", logging.Entry("err", err))
				continue
			}
			if result.SentCount > 0 {
				log.Info(
					context.Background(),
					"Dispatch pass finished.",
					logging.Entry("sentCount", result.SentCount),
				)
			}
		}
	}
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
