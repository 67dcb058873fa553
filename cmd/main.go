package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/melcantwell27/quizWhiz/config"
	"github.com/melcantwell27/quizWhiz/database"
	_ "github.com/melcantwell27/quizWhiz/docs"
	adminctrl "github.com/melcantwell27/quizWhiz/internal/controller/admin"
	userctrl "github.com/melcantwell27/quizWhiz/internal/controller/user"
	"github.com/melcantwell27/quizWhiz/internal/event"
	"github.com/melcantwell27/quizWhiz/internal/lock"
	"github.com/melcantwell27/quizWhiz/internal/logger"
	"github.com/melcantwell27/quizWhiz/internal/middleware"
	"github.com/melcantwell27/quizWhiz/internal/repository"
	"github.com/melcantwell27/quizWhiz/internal/seed"
	"github.com/melcantwell27/quizWhiz/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizWhiz API
// @version 1.0
// @description Students register, take quizzes one question at a time and get graded results.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			NewLocker,
			NewPublisher,
		),

		fx.Provide(
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewStudentRepository,
			repository.NewAttemptRepository,
			repository.NewAnswerRepository,
		),

		fx.Provide(
			func() service.Grader { return service.NewGrader() },
			service.NewScoringService,
			service.NewQuizService,
			service.NewStudentService,
			service.NewAttemptService,
			service.NewAdminQuizService,
		),

		fx.Provide(
			userctrl.NewQuizController,
			userctrl.NewStudentController,
			userctrl.NewAttemptController,
			adminctrl.NewAdminQuizController,
		),

		fx.Invoke(ConfigureLogger),
		fx.Invoke(MigrateDB),
		fx.Invoke(SeedDemoData),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func ConfigureLogger(cfg *config.Config) {
	logger.Configure(cfg.Log.Level, cfg.Log.Format)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID, _ := param.Keys[middleware.RequestIDKey].(string)
		log.Info().
			Str("request_id", requestID).
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowOrigins:  cfg.Server.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 || (len(corsCfg.AllowOrigins) == 1 && corsCfg.AllowOrigins[0] == "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// NewLocker serializes attempt mutations through Redis when REDIS_ADDR is
// set, so several API replicas can share one database.
func NewLocker(lc fx.Lifecycle, cfg *config.Config) lock.Locker {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set, using in-process attempt locks")
		return lock.NewLocalLocker()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.LockTTL).Msg("Using Redis attempt locks")
	return lock.NewRedisLocker(client, cfg.Redis.LockTTL)
}

func NewPublisher(lc fx.Lifecycle, cfg *config.Config) event.Publisher {
	if cfg.RabbitMQ.URI == "" {
		return event.NopPublisher{}
	}
	p, err := event.NewAMQPPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
	if err != nil {
		log.Warn().Err(err).Msg("RabbitMQ unavailable, events will not be published")
		return event.NopPublisher{}
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return p.Close()
		},
	})
	log.Info().Str("exchange", cfg.RabbitMQ.Exchange).Msg("Publishing domain events to RabbitMQ")
	return p
}

func MigrateDB(db *gorm.DB) error {
	return database.Migrate(db)
}

func SeedDemoData(cfg *config.Config, db *gorm.DB) error {
	if !cfg.Seed {
		return nil
	}
	data, err := seed.Lizards()
	if err != nil {
		return err
	}
	_, err = seed.Run(context.Background(), db, data)
	return err
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *userctrl.QuizController,
	studentCtrl *userctrl.StudentController,
	attemptCtrl *userctrl.AttemptController,
	adminCtrl *adminctrl.AdminQuizController,
) {
	api := router.Group("/api/v1")
	RegisterRoutes(api, quizCtrl, studentCtrl, attemptCtrl, adminCtrl)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizWhiz API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}

func RegisterRoutes(
	api *gin.RouterGroup,
	quizCtrl *userctrl.QuizController,
	studentCtrl *userctrl.StudentController,
	attemptCtrl *userctrl.AttemptController,
	adminCtrl *adminctrl.AdminQuizController,
) {
	api.GET("/quizzes", quizCtrl.ListQuizzes)
	api.GET("/quizzes/:quiz_id", quizCtrl.GetQuiz)
	api.GET("/quizzes/:quiz_id/with_answers", quizCtrl.GetQuizWithAnswers)

	api.POST("/students", studentCtrl.Register)
	api.POST("/students/login", studentCtrl.Login)
	api.GET("/students/:student_id", studentCtrl.GetStudent)
	api.GET("/students/:student_id/attempts", studentCtrl.ListAttempts)

	api.POST("/attempts", attemptCtrl.StartAttempt)
	api.GET("/attempts/:attempt_id", attemptCtrl.GetAttempt)
	api.GET("/attempts/:attempt_id/current_question", attemptCtrl.CurrentQuestion)
	api.POST("/attempts/:attempt_id/answer", attemptCtrl.SubmitAnswer)
	api.GET("/attempts/:attempt_id/results", attemptCtrl.Results)

	admin := api.Group("/admin")
	{
		admin.POST("/quizzes", adminCtrl.CreateQuiz)
		admin.DELETE("/quizzes/:quiz_id", adminCtrl.DeleteQuiz)
		admin.POST("/quizzes/:quiz_id/mcqs", adminCtrl.AddMCQ)
		admin.POST("/quizzes/:quiz_id/ftqs", adminCtrl.AddFTQ)
		admin.DELETE("/questions/:ref", adminCtrl.DeleteQuestion)
		admin.DELETE("/attempts/:attempt_id", adminCtrl.DeleteAttempt)
	}
}
