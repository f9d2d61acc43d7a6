package kafka

import (
	"Credo/internal/api/config"
	"Credo/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	voteConsumer sarama.ConsumerGroup
	voteHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(
	cfg *config.Config,
	voteRepo repository.VoteRepo,
	publicationRepo repository.PublicationRepo,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	voteConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaVoteConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	voteHandler := NewVotesHandler(voteRepo, publicationRepo)

	return &ConsumerManager{
		voteConsumer: voteConsumer,
		voteHandler:  voteHandler,
	}, nil
}

func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	// 启动 Vote Consumer
	go func() {
		topic := cfg.KafkaVoteConsumer.Topic
		log.Info("Vote consumer started", "topic", topic)
		for {
			if err := m.voteConsumer.Consume(ctx, []string{topic}, m.voteHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.voteConsumer.Close(); err != nil {
		log.Error("Failed to close vote consumer", "err", err)
	}

	return nil
}
