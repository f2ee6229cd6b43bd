package notification

import (
	"context"
	"fmt"
	"testing"

	"agenda/internal/domain/entity"
	"agenda/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMulticastSender struct {
	messages []*messaging.MulticastMessage
	err      error
	failAll  bool
}

func (f *fakeMulticastSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.messages = append(f.messages, message)
	if f.err != nil {
		return nil, f.err
	}

	response := &messaging.BatchResponse{}
	for range message.Tokens {
		if f.failAll {
			response.FailureCount++
			response.Responses = append(response.Responses, &messaging.SendResponse{Error: errors.New("internal")})
		} else {
			response.SuccessCount++
			response.Responses = append(response.Responses, &messaging.SendResponse{Success: true, MessageID: "m"})
		}
	}

	return response, nil
}

func tokens(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("token-%d", i)
	}

	return out
}

func TestFirebaseService_SplitsIntoBatches(t *testing.T) {
	sender := &fakeMulticastSender{}
	svc := newFirebaseService(sender, tokens(1200), newDiscardLogger())

	result, err := svc.SendNotification(context.Background(), "event-1", entity.NotificationContent{
		Title: "Scheduled Event",
		Body:  "Pay rent - Transfer to landlord",
		Data:  map[string]any{"eventId": "event-1", "voiceEnabled": true},
	}, entity.NotificationOptions{Sound: true, Vibrate: true, ChannelID: entity.NotificationChannelID})
	require.NoError(t, err)

	assert.Equal(t, 1200, result.SuccessCount)
	require.Len(t, sender.messages, 3)
	assert.Len(t, sender.messages[0].Tokens, 500)
	assert.Len(t, sender.messages[2].Tokens, 200)

	msg := sender.messages[0]
	assert.Equal(t, "Scheduled Event", msg.Notification.Title)
	assert.Equal(t, "true", msg.Data["voiceEnabled"])
	assert.Equal(t, "event-1", msg.Data["notificationId"])
	assert.Equal(t, entity.NotificationChannelID, msg.Android.Notification.ChannelID)
	assert.Equal(t, "default", msg.Android.Notification.Sound)
	assert.True(t, msg.Android.Notification.DefaultVibrateTimings)
	assert.Equal(t, "default", msg.APNS.Payload.Aps.Sound)
}

func TestFirebaseService_SilentOptions(t *testing.T) {
	msg := buildMulticastMessage("id", []string{"t"}, entity.NotificationContent{Title: "x"}, entity.NotificationOptions{})

	assert.Empty(t, msg.Android.Notification.Sound)
	assert.False(t, msg.Android.Notification.DefaultVibrateTimings)
	assert.Empty(t, msg.APNS.Payload.Aps.Sound)
}

func TestFirebaseService_NoTokens(t *testing.T) {
	sender := &fakeMulticastSender{}
	svc := newFirebaseService(sender, nil, newDiscardLogger())

	result, err := svc.SendNotification(context.Background(), "id", entity.NotificationContent{}, entity.NotificationOptions{})
	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Empty(t, sender.messages)
}

func TestFirebaseService_Errors(t *testing.T) {
	sender := &fakeMulticastSender{err: errors.New("unavailable")}
	svc := newFirebaseService(sender, tokens(2), newDiscardLogger())

	_, err := svc.SendNotification(context.Background(), "id", entity.NotificationContent{}, entity.NotificationOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send multicast notification")

	failing := newFirebaseService(&fakeMulticastSender{failAll: true}, tokens(2), newDiscardLogger())
	result, err := failing.SendNotification(context.Background(), "id", entity.NotificationContent{}, entity.NotificationOptions{})
	require.Error(t, err)
	assert.Equal(t, 2, result.FailureCount)
}
