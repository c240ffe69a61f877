package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"homestay/config"
	"homestay/models"
	"homestay/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeCheckInReminder = "reminder:checkin"

// checkInReminderPayload is the task body for a scheduled check-in reminder.
type checkInReminderPayload struct {
	BookingID  string `json:"bookingId"`
	GuestID    string `json:"guestId"`
	PropertyID string `json:"propertyId"`
	CheckIn    string `json:"checkIn"`
}

// AsynqReminderScheduler enqueues check-in reminder tasks on the shared
// reminder queue. Reminders fire 24 hours before check-in; bookings
// confirmed closer than that are delivered immediately.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

func (s *AsynqReminderScheduler) ScheduleCheckInReminder(booking *models.Booking) error {
	payload := checkInReminderPayload{
		BookingID:  booking.ID,
		GuestID:    booking.GuestID,
		PropertyID: booking.PropertyID,
		CheckIn:    booking.CheckIn.Format(models.DateLayout),
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	fireAt := booking.CheckIn.Add(-24 * time.Hour)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	task := asynq.NewTask(TypeCheckInReminder, b)
	_, err = s.Client.Enqueue(task, asynq.ProcessAt(fireAt))
	return err
}

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
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
	mux.HandleFunc(TypeCheckInReminder, handleCheckInReminderTask(notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		log.Println("[ReminderWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleCheckInReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p checkInReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] ⏰ Check-in reminder for booking %s (guest %s, check-in %s)", p.BookingID, p.GuestID, p.CheckIn)

		data := map[string]string{
			"bookingId":  p.BookingID,
			"propertyId": p.PropertyID,
			"checkIn":    p.CheckIn,
		}

		err := notifSvc.SendUserPushNotification(ctx, p.GuestID,
			"Your stay is coming up",
			"Check-in for your booking is on "+p.CheckIn+". Safe travels!",
			data)
		if err != nil {
			log.Printf("[ReminderHandler] ❌ Failed to send reminder: %v", err)
		}
		return err
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
