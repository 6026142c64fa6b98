package contracts

import "context"

// PushService delivers one push message to a device token.
type PushService interface {
	Send(ctx context.Context, token, title, body string) error
}

// PushDispatch is the queued unit of delivery work.
type PushDispatch struct {
	NotificationID string `json:"notification_id"`
	DeviceToken    string `json:"device_token"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	FailedCount    int    `json:"failed_count"`
}

// PushDispatcher enqueues delivery work; the worker drains it best-effort.
type PushDispatcher interface {
	EnqueuePushDispatch(ctx context.Context, dispatch *PushDispatch) error
}
