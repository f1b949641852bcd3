package kafka

import (
	"context"
	"fmt"
	"os"

	"github.com/segmentio/kafka-go"
)

type VoteReader struct {
	reader *kafka.Reader
}

func GetNewReader(topic string) (reader *VoteReader, err error) {
	// config
	kafkaurl := os.Getenv("KAFKA_VOTE_URL")
	if kafkaurl == "" {
		return nil, fmt.Errorf("env KAFKA_VOTE_URL is not set")
	}
	kafkaport := os.Getenv("KAFKA_VOTE_PORT")
	if kafkaport == "" {
		return nil, fmt.Errorf("env KAFKA_VOTE_PORT is not set")
	}

	kafkaconfig := kafka.ReaderConfig{
		Brokers: []string{kafkaurl + ":" + kafkaport},
		Topic:   topic,
		GroupID: "votes_kvote",
	}
	return &VoteReader{kafka.NewReader(kafkaconfig)}, nil
}

func (k *VoteReader) GetNewMessage(ctx context.Context) (voteJson string, err error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return "", err
	}
	return string(msg.Value), nil
}

func (k *VoteReader) CloseReader() {
	k.reader.Close()
}
