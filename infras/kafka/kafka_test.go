package kafka_test

import (
	"testing"

	"airwave/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingEvent struct {
	Type      string `json:"type"`
	BookingID string `json:"booking_id"`
}

func TestMessage_RoundTripThroughDecode(t *testing.T) {
	msg := kafka.Message{Key: "station-1", Value: bookingEvent{Type: "booking.created", BookingID: "b1"}}

	raw, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("station-1"), raw.Key)

	decoded, err := kafka.Decode[bookingEvent](raw)
	require.NoError(t, err)
	assert.Equal(t, "b1", decoded.BookingID)
}

func TestMessage_UnsupportedValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := kafka.Decode[bookingEvent](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}
