package notification

import (
	"context"
	"fmt"
	"log/slog"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/service"
	"agenda/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxMulticastTokens is FCM's per-request token limit.
const maxMulticastTokens = 500

type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
	tokens []string
	logger *slog.Logger
}

// NewFirebaseService pushes notifications to the configured device tokens through FCM.
func NewFirebaseService(ctx context.Context, credentialsPath, projectID string, tokens []string, logger *slog.Logger) (service.PushService, error) {
	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseService(client, tokens, logger), nil
}

func newFirebaseService(client multicastSender, tokens []string, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client: client,
		tokens: tokens,
		logger: logger,
	}
}

// SendNotification multicasts content to every device token, 500 tokens per request.
func (s *firebaseService) SendNotification(ctx context.Context, id string, content entity.NotificationContent, options entity.NotificationOptions) (*service.PushResult, error) {
	result := &service.PushResult{InvalidTokens: make([]string, 0)}
	if len(s.tokens) == 0 {
		s.logger.WarnContext(ctx, "No device tokens configured, dropping notification", slog.String("notification_id", id))

		return result, nil
	}

	for start := 0; start < len(s.tokens); start += maxMulticastTokens {
		end := min(start+maxMulticastTokens, len(s.tokens))
		batch := s.tokens[start:end]

		response, err := s.client.SendEachForMulticast(ctx, buildMulticastMessage(id, batch, content, options))
		if err != nil {
			return result, errors.Wrap(err, "failed to send multicast notification")
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				result.InvalidTokens = append(result.InvalidTokens, batch[idx])
			}
		}
	}

	if len(result.InvalidTokens) > 0 {
		s.logger.WarnContext(ctx, "Device tokens rejected by FCM",
			slog.String("notification_id", id),
			slog.Int("invalid_count", len(result.InvalidTokens)),
		)
	}

	if result.SuccessCount == 0 && result.FailureCount > 0 {
		return result, errors.Errorf("notification %s failed on all %d devices", id, result.FailureCount)
	}

	return result, nil
}

func buildMulticastMessage(id string, tokens []string, content entity.NotificationContent, options entity.NotificationOptions) *messaging.MulticastMessage {
	androidNotification := &messaging.AndroidNotification{
		ChannelID:             options.ChannelID,
		Tag:                   id,
		DefaultVibrateTimings: options.Vibrate,
	}
	aps := &messaging.Aps{}
	if options.Sound {
		androidNotification.Sound = "default"
		aps.Sound = "default"
	}

	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: content.Title,
			Body:  content.Body,
		},
		Data: stringifyData(id, content.Data),
		Android: &messaging.AndroidConfig{
			Priority:     "high",
			Notification: androidNotification,
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{Aps: aps},
		},
	}
}

// stringifyData converts the payload to FCM's string-only data map.
func stringifyData(id string, data map[string]any) map[string]string {
	out := make(map[string]string, len(data)+1)
	for k, v := range data {
		out[k] = fmt.Sprint(v)
	}
	out["notificationId"] = id

	return out
}
