package nsq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nsqio/go-nsq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	topic   string
	body    []byte
	err     error
	stopped bool
}

func (f *fakePublisher) Publish(topic string, body []byte) error {
	f.topic = topic
	f.body = body
	return f.err
}

func (f *fakePublisher) Ping() error { return f.err }

func (f *fakePublisher) Stop() { f.stopped = true }

func TestProducer_Publish(t *testing.T) {
	t.Run("Publishes JSON body", func(t *testing.T) {
		pub := &fakePublisher{}
		producer := NewProducerWithPublisher(pub, "localhost:4150")

		err := producer.Publish(context.Background(), "store.notifications", map[string]string{"id": "n-1"})
		require.NoError(t, err)

		assert.Equal(t, "store.notifications", pub.topic)
		var decoded map[string]string
		require.NoError(t, json.Unmarshal(pub.body, &decoded))
		assert.Equal(t, "n-1", decoded["id"])
	})

	t.Run("Publish error is wrapped", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("connection refused")}
		producer := NewProducerWithPublisher(pub, "localhost:4150")

		err := producer.Publish(context.Background(), "topic", "x")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to publish message")
	})

	t.Run("Marshal error", func(t *testing.T) {
		producer := NewProducerWithPublisher(&fakePublisher{}, "localhost:4150")

		err := producer.Publish(context.Background(), "topic", make(chan int))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal message")
	})
}

func TestProducer_StopAndAddress(t *testing.T) {
	pub := &fakePublisher{}
	producer := NewProducerWithPublisher(pub, "nsqd:4150")

	assert.Equal(t, "nsqd:4150", producer.Address())
	assert.NoError(t, producer.Ping())
	producer.Stop()
	assert.True(t, pub.stopped)
}

func TestWrapHandler(t *testing.T) {
	t.Run("Empty body is skipped", func(t *testing.T) {
		called := false
		h := wrapHandler("topic", func([]byte) error {
			called = true
			return nil
		})

		assert.NoError(t, h.HandleMessage(&nsq.Message{Body: nil}))
		assert.False(t, called)
	})

	t.Run("Handler error is returned for requeue", func(t *testing.T) {
		h := wrapHandler("topic", func([]byte) error {
			return errors.New("render failed")
		})

		assert.Error(t, h.HandleMessage(&nsq.Message{Body: []byte(`{}`)}))
	})

	t.Run("Handler receives body", func(t *testing.T) {
		var got []byte
		h := wrapHandler("topic", func(b []byte) error {
			got = b
			return nil
		})

		require.NoError(t, h.HandleMessage(&nsq.Message{Body: []byte(`{"id":"1"}`)}))
		assert.Equal(t, `{"id":"1"}`, string(got))
	})
}

func TestUnmarshalMessage(t *testing.T) {
	var v struct {
		ID string `json:"id"`
	}
	require.NoError(t, UnmarshalMessage([]byte(`{"id":"abc"}`), &v))
	assert.Equal(t, "abc", v.ID)

	assert.Error(t, UnmarshalMessage([]byte(`{`), &v))
}

func TestNewConsumer(t *testing.T) {
	c, err := NewConsumer("store.notifications", "email", 4, func([]byte) error { return nil })
	require.NoError(t, err)
	assert.NotNil(t, c)

	_, err = NewConsumer("bad topic!", "email", 1, func([]byte) error { return nil })
	assert.Error(t, err)
}
