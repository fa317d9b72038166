package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"

	"github.com/azaliaz/feedbackly/internal/config"
	"github.com/azaliaz/feedbackly/internal/domain/models"
	"github.com/azaliaz/feedbackly/internal/logger"
)

//go:generate mockgen -source=server.go -destination=./mocks/service_mock.go -package=mocks

type Storage interface {
	SaveFeedback(models.CreateFeedback) (models.Feedback, error)
	GetFeedbacks(limit, offset int) ([]models.Feedback, error)
	GetFeedback(string) (models.Feedback, error)
	UpdateFeedback(string, models.UpdateFeedback) (models.Feedback, error)
	DeleteFeedback(string) error
}

type Server struct {
	serv    *http.Server
	valid   *validator.Validate
	Storage Storage
	ErrChan chan error
}

func New(cfg config.Config, stor Storage) *Server {
	server := http.Server{ //nolint:gosec // not today
		Addr: cfg.Addr,
	}
	valid := validator.New()
	return &Server{
		serv:    &server,
		valid:   valid,
		Storage: stor,
		ErrChan: make(chan error),
	}
}

func (s *Server) ShutdownServer() error {
	return s.serv.Shutdown(context.Background())
}

func (s *Server) Run(ctx context.Context) error {
	log := logger.Get()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	api := router.Group("/api")
	{
		api.GET("/healthchecker", s.HealthChecker)
		feedbacks := api.Group("/feedbacks")
		{
			feedbacks.GET("", s.AllFeedbacks)
			feedbacks.POST("/", s.AddFeedback)
			feedbacks.GET("/:id", s.FeedbackInfo)
			feedbacks.PATCH("/:id", s.EditFeedback)
			feedbacks.DELETE("/:id", s.RemoveFeedback)
		}
	}

	s.serv.Handler = router
	log.Info().Str("host", s.serv.Addr).Msg("server started")
	if err := s.serv.ListenAndServe(); err != nil {
		return err
	}
	return nil
}

func (s *Server) Close() error {
	return s.serv.Shutdown(context.TODO())
}
