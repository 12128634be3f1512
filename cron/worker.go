package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"dormhub/config"
	"dormhub/models"
	"dormhub/services/notification"

	"github.com/hibiken/asynq"
)

// TypeVisitReminder is the task type for day-before visit reminders.
const TypeVisitReminder = "reminder:visit"

type visitReminderPayload struct {
	ReservationID string `json:"reservation_id"`
}

// ReservationLoader is the narrow read surface the worker needs.
type ReservationLoader interface {
	GetByID(id string) (*models.Reservation, error)
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(loader ReservationLoader, notifier notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeVisitReminder, handleVisitReminder(loader, notifier))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleVisitReminder re-reads the reservation at delivery time and skips
// reminders for visits that were cancelled, rejected, or already completed.
func handleVisitReminder(loader ReservationLoader, notifier notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload visitReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to decode visit reminder payload: %w", err)
		}

		res, err := loader.GetByID(payload.ReservationID)
		if err != nil {
			return fmt.Errorf("failed to load reservation %s: %w", payload.ReservationID, err)
		}
		if res == nil || !res.IsActive() || !res.ScheduleApproved || res.VisitApproved || res.VisitDate == nil {
			return nil
		}

		roomName := "your reserved room"
		if res.Room != nil && res.Room.Name != "" {
			roomName = res.Room.Name
		}
		body := fmt.Sprintf("Reminder: your visit to %s is scheduled for %s.",
			roomName, res.VisitDate.Format("January 2, 2006"))

		return notifier.SendPush(ctx, res.TenantID, "Upcoming Visit", body,
			map[string]string{"reservation_id": res.ID, "event": "visit_reminder"})
	}
}

// ReminderClient enqueues reminder tasks for future delivery.
type ReminderClient struct {
	client *asynq.Client
}

// NewReminderClient creates the enqueue side of the reminder queue.
func NewReminderClient() *ReminderClient {
	return &ReminderClient{client: asynq.NewClient(redisOpts())}
}

// EnqueueVisitReminder schedules a reminder for the given reservation.
func (c *ReminderClient) EnqueueVisitReminder(reservationID string, processAt time.Time) error {
	payload, err := json.Marshal(visitReminderPayload{ReservationID: reservationID})
	if err != nil {
		return fmt.Errorf("failed to encode visit reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeVisitReminder, payload)
	if _, err := c.client.Enqueue(task, asynq.ProcessAt(processAt)); err != nil {
		return fmt.Errorf("failed to enqueue visit reminder: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (c *ReminderClient) Close() error {
	return c.client.Close()
}
