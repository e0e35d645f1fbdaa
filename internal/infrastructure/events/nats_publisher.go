// Package events publishes checklist lifecycle events.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const defaultStreamName = "CHECKLISTS"

// streamPublisher is the subset of jetstream.JetStream used here.
type streamPublisher interface {
	Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// NATSPublisher writes each event as JSON to <prefix>.<type> on a JetStream stream.
type NATSPublisher struct {
	js     streamPublisher
	prefix string
	conn   *nats.Conn
}

var _ interfaces.IEventPublisher = (*NATSPublisher)(nil)

func NewNATSPublisher(js streamPublisher, prefix string) *NATSPublisher {
	prefix = strings.Trim(prefix, ".")
	if prefix == "" {
		prefix = "checklists"
	}
	return &NATSPublisher{js: js, prefix: prefix}
}

// ConnectNATS dials the server and makes sure a stream captures <prefix>.>.
func ConnectNATS(ctx context.Context, url, prefix string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("frota-checklist"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("[events][nats] disconnected err=%v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Printf("[events][nats] reconnected url=%s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	p := NewNATSPublisher(js, prefix)
	if _, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     defaultStreamName,
		Subjects: []string{p.prefix + ".>"},
		MaxAge:   30 * 24 * time.Hour,
	}); err != nil {
		nc.Close()
		return nil, fmt.Errorf("ensure stream: %w", err)
	}
	p.conn = nc
	log.Printf("[events][nats] connected url=%s subjects=%s.>", url, p.prefix)
	return p, nil
}

func (p *NATSPublisher) Subject(t entities.ChecklistEventType) string {
	return p.prefix + "." + string(t)
}

func (p *NATSPublisher) Publish(ctx context.Context, event entities.ChecklistEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	subject := p.Subject(event.Type)
	msgID := fmt.Sprintf("%s-%s-%d", event.ChecklistID, event.Type, event.OccurredAt.UnixNano())
	if _, err := p.js.Publish(ctx, subject, data, jetstream.WithMsgID(msgID)); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close drains the connection so pending acks are delivered.
func (p *NATSPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}

// NoopPublisher drops every event. It is used when NATS_URL is empty.
type NoopPublisher struct{}

var _ interfaces.IEventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, entities.ChecklistEvent) error { return nil }
