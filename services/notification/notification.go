package notification

import (
	"context"
	"fmt"

	userRepo "dormhub/database/repository/user"
	"dormhub/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendPush(ctx context.Context, userID, title, body string, data map[string]string) error
}

// DefaultNotificationService sends pushes via the shared FCM client.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

// SendPush looks up a user's FCM token and sends a push. Users without a
// registered device token are skipped silently.
func (s *DefaultNotificationService) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("SendPush: could not find user %s: %w", userID, err)
	}
	if u == nil || u.FCMToken == "" {
		return nil
	}

	if data == nil {
		data = map[string]string{}
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPush: failed to send FCM message: %w", err)
	}
	return nil
}
