package wire

import (
	"Credo/internal/api"
	"Credo/internal/api/config"
	"Credo/internal/api/handler"
	"Credo/internal/job"
	"Credo/internal/pkg/cron"
	"Credo/internal/pkg/kafka"
	"Credo/internal/repository"
	"Credo/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
	Producer     kafka.VoteEventProducer
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	publicationRepo := repository.NewPublicationRepo(db)
	voteRepo := repository.NewVoteRepo(db)
	metricRepo := repository.NewPublicationMetricRepo(db)

	producer, err := kafka.NewVoteEventProducer(cfg)
	if err != nil {
		return nil, err
	}

	publicationService := service.NewPublicationService(publicationRepo)
	voteService := service.NewVoteService(voteRepo, publicationRepo, producer)
	metricService := service.NewPublicationMetricService(metricRepo, publicationRepo, voteRepo)

	handlers := &api.HandlersGroup{
		PublicationHandler:       handler.NewPublicationHandler(publicationService),
		VoteHandler:              handler.NewVoteHandler(voteService),
		PublicationMetricHandler: handler.NewPublicationMetricHandler(metricService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, voteRepo, publicationRepo)
	if err != nil {
		return nil, err
	}

	tallyJob := job.NewPublicationTallyJob(publicationRepo, voteRepo, metricService)
	cronMgr := cron.NewCronManager(tallyJob)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
		Producer:     producer,
	}, nil
}
