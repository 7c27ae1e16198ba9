package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/flashcode/flashweb/internal/topicmgr"
)

// Event binds a topic to its payload type T.
type Event[T any] struct {
	topic topicmgr.Topic
}

// NewEvent defines a module topic for payloads of type T and registers it with
// the default topic manager. The owning module is the first segment of name.
// The payload's JSON field names are recorded as topic metadata.
func NewEvent[T any](name, description, example string) Event[T] {
	return NewEventIn[T](topicmgr.Default(), name, description, example)
}

// NewEventIn is NewEvent against a specific manager.
func NewEventIn[T any](m *topicmgr.Manager, name, description, example string) Event[T] {
	module, _, _ := strings.Cut(name, ".")

	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var fields []string
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			tag, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
			if tag != "" && tag != "-" {
				fields = append(fields, tag)
			}
		}
	}

	topic := topicmgr.DefineModule(topicmgr.TopicConfig{
		Name:        name,
		Module:      module,
		Description: description,
		Example:     example,
		Metadata: map[string]interface{}{
			"payload_fields": fields,
			"type_name":      t.Name(),
			"is_typed":       true,
		},
	})
	return Event[T]{topic: m.MustRegister(topic)}
}

// Name returns the topic name.
func (e Event[T]) Name() string { return e.topic.Name() }

// Topic returns the registered topic.
func (e Event[T]) Topic() topicmgr.Topic { return e.topic }

// Publish sends payload as JSON on the event's topic.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", event.Name(), err)
	}
	return p.Publish(ctx, Message{Topic: event.Name(), Payload: data})
}

// Subscribe decodes every message on the event's topic into T before calling
// handle. Undecodable messages are reported as handler errors.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], handle func(ctx context.Context, payload T) error) error {
	return s.Subscribe(ctx, event.Name(), func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", event.Name(), err)
		}
		return handle(ctx, payload)
	})
}
