//go:build integration

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkaContainer "github.com/testcontainers/testcontainers-go/modules/kafka"
)

func TestKafkaAnnouncerPublishesSummary(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	kafkaC, err := kafkaContainer.RunContainer(ctx, testcontainers.WithEnv(map[string]string{
		"KAFKA_AUTO_CREATE_TOPICS_ENABLE": "true",
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kafkaC.Terminate(context.Background()) })

	brokers, err := kafkaC.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	broker := brokers[0]

	topic := "health.export.summaries"

	conn, err := kafka.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))

	announcer := NewKafkaAnnouncer([]string{broker}, topic)
	defer announcer.Close()

	evt := ExportSummarized{
		ExportID:     "exp-int",
		ReceivedAt:   time.Now().UTC().Truncate(time.Second),
		StepsTotal:   4000,
		WorkoutCount: 3,
		SleepHours:   7.5,
	}
	require.NoError(t, announcer.Announce(ctx, evt))

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})
	defer reader.Close()

	readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
	defer readCancel()

	msg, err := reader.ReadMessage(readCtx)
	require.NoError(t, err)
	require.Equal(t, evt.ExportID, string(msg.Key))

	var decoded ExportSummarized
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	require.Equal(t, evt.StepsTotal, decoded.StepsTotal)
	require.Equal(t, evt.WorkoutCount, decoded.WorkoutCount)
	require.Equal(t, evt.SleepHours, decoded.SleepHours)
	require.True(t, decoded.ReceivedAt.Equal(evt.ReceivedAt))
}
