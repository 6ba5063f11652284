package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	sent     *mail.SGMailV3
	response *rest.Response
	err      error
}

func (c *stubClient) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	c.sent = email

	return c.response, c.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewSendGridSender_DisabledWithoutKey(t *testing.T) {
	sender := NewSendGridSender(SenderParams{Config: &config.Config{}, Logger: discardLogger()})

	err := sender.Send(context.Background(), service.EmailMessage{To: "owner@example.com", Subject: "New order"})
	assert.NoError(t, err)
}

func TestSendGridSender_Send(t *testing.T) {
	client := &stubClient{response: &rest.Response{StatusCode: 202}}
	sender := &sendgridSender{
		client: client,
		from:   mail.NewEmail("Bazaar", "noreply@bazaar.example"),
		logger: discardLogger(),
	}

	err := sender.Send(context.Background(), service.EmailMessage{
		To:      "owner@example.com",
		ToName:  "Owner",
		Subject: "New order",
		Body:    "2 x <Tea>",
	})
	require.NoError(t, err)

	require.NotNil(t, client.sent)
	assert.Equal(t, "New order", client.sent.Subject)
	require.Len(t, client.sent.Content, 2)
	assert.Equal(t, "2 x <Tea>", client.sent.Content[0].Value)
	assert.Equal(t, "<pre>2 x &lt;Tea&gt;</pre>", client.sent.Content[1].Value)
}

func TestSendGridSender_Errors(t *testing.T) {
	tests := []struct {
		name    string
		client  *stubClient
		to      string
		wantErr string
	}{
		{name: "no recipient", client: &stubClient{}, wantErr: "recipient address is empty"},
		{name: "transport", client: &stubClient{err: errors.New("dial tcp")}, to: "a@b.c", wantErr: "dial tcp"},
		{name: "rejected", client: &stubClient{response: &rest.Response{StatusCode: 401, Body: "unauthorized"}}, to: "a@b.c", wantErr: "status=401"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &sendgridSender{client: tt.client, from: mail.NewEmail("", "x@y.z"), logger: discardLogger()}
			err := sender.Send(context.Background(), service.EmailMessage{To: tt.to})
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
