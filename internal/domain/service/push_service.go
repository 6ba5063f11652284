package service

import "context"

// MaxMulticastTokens is the FCM limit on tokens per multicast request.
const MaxMulticastTokens = 500

type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushReport summarizes one multicast. InvalidTokens are the tokens the
// provider reported as unregistered; their devices should be forgotten.
type PushReport struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// PushService delivers push notifications to device tokens.
type PushService interface {
	// Multicast sends msg to at most MaxMulticastTokens tokens. An error
	// means the request as a whole failed; per-token failures land in the report.
	Multicast(ctx context.Context, tokens []string, msg PushMessage) (*PushReport, error)
}
