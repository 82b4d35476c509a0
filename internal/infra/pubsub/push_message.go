package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// LocalSubscription names the subscription the local publisher pretends to push for.
const LocalSubscription = "projects/local/subscriptions/transaction-events"

// PushMessage is the envelope Pub/Sub uses when pushing to an HTTP endpoint.
// The local publisher produces it and the event worker consumes it.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps event the way Pub/Sub would deliver it to subscription.
func NewPushMessage(subscription string, event *service.TransactionEvent) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.Type + "-" + strconv.FormatInt(event.TransactionID, 10)
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// Event decodes the transaction event carried in the message data.
func (m *PushMessage) Event() (*service.TransactionEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	event := new(service.TransactionEvent)
	if err := json.Unmarshal(data, event); err != nil {
		return nil, errors.Wrap(err, "parse transaction event")
	}

	return event, nil
}

// eventAttributes builds the message attributes used for filtering and tracing.
func eventAttributes(event *service.TransactionEvent) map[string]string {
	attributes := map[string]string{
		"type":           event.Type,
		"transaction_id": strconv.FormatInt(event.TransactionID, 10),
		"invoice_number": event.InvoiceNumber,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// orderingKey keeps the events of one transaction in publish order.
func orderingKey(event *service.TransactionEvent) string {
	return "transaction-" + strconv.FormatInt(event.TransactionID, 10)
}
