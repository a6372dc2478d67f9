package cron

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"nextaccounting/config"
	"nextaccounting/models"
	"nextaccounting/services/tasks"
	"nextaccounting/utils"
)

// ReminderSink receives due reminders. Delivery (email, push) lives outside
// this service; the default sink only records the event.
type ReminderSink func(ctx context.Context, payload models.ReminderPayload) error

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(sink ReminderSink) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(sink))

	go func() {
		logger.Info("starting reminder worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("reminder worker stopped", zap.Error(err))
		}
	}()
}

func handleReminderTask(sink ReminderSink) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		if sink != nil {
			return sink(ctx, p)
		}

		logger.Info("reminder due",
			zap.String("bookingID", p.BookingID),
			zap.String("clientID", p.ClientID),
			zap.String("scheduledAt", p.ScheduledAt))
		return nil
	}
}
