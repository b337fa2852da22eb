package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/izuamadi/Fitness-Club-Management-System/internal/class"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/config"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/identity"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/logger"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/member"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/notify"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/reconcile"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/registration"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/room"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/schedule"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/session"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/trainer"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *sqlx.DB
	config     *config.Config
	reconciler *reconcile.Reconciler
}

// New wires repositories, services and routes, and hydrates the in-memory
// schedule index and capacity ledger from the database. The process must not
// serve requests before hydration completes; a request admitted against an
// empty index could double-book a room.
func New(db *sqlx.DB, cfg *config.Config, mail *notify.Service) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		corsMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	index := schedule.NewIndex()
	locks := schedule.NewKeyedMutex()
	ledger := registration.NewLedger()

	roomRepo := room.NewRepository(db)
	trainerRepo := trainer.NewRepository(db)
	memberRepo := member.NewRepository(db)
	classRepo := class.NewRepository(db)
	sessionRepo := session.NewRepository(db)
	regRepo := registration.NewRepository(db)

	if err := hydrate(context.Background(), index, ledger, classRepo, sessionRepo, regRepo); err != nil {
		return nil, err
	}

	directory := identity.NewDirectory(roomRepo, trainerRepo, memberRepo)

	classService := class.NewService(classRepo, directory, index, locks, ledger)
	trainerService := trainer.NewService(trainerRepo, locks)
	registrationService := registration.NewService(regRepo, classService, directory, memberRepo, ledger, locks, mail)
	sessionService := session.NewService(sessionRepo, directory, trainerService, trainerRepo, memberRepo, index, locks, mail)

	classHandler := class.NewHandler(classService)
	trainerHandler := trainer.NewHandler(trainerService)
	registrationHandler := registration.NewHandler(registrationService)
	sessionHandler := session.NewHandler(sessionService)

	classes := router.Group("/classes")
	{
		classes.POST("", classHandler.Create)
		classes.GET("", classHandler.List)
		classes.PUT("/:classID", classHandler.Update)
		classes.POST("/:classID/register", registrationHandler.Register)
		classes.POST("/:classID/cancel", registrationHandler.Cancel)
		classes.GET("/:classID/registrations", registrationHandler.ListByClass)
	}

	trainers := router.Group("/trainers")
	{
		trainers.POST("/:trainerID/availability", trainerHandler.AddWindow)
		trainers.GET("/:trainerID/availability", trainerHandler.ListWindows)
		trainers.GET("/:trainerID/sessions", sessionHandler.ListByTrainer)
	}

	router.POST("/sessions", sessionHandler.Book)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	if mail != nil {
		router.GET("/test-email", TestEmail(mail))
	}
	SetupSwagger(router)

	return &Server{
		router:     router,
		db:         db,
		config:     cfg,
		reconciler: reconcile.New(ledger, regRepo, cfg.ReconcileSpec),
	}, nil
}

// hydrate rebuilds the decision structures from persisted rows so restarts
// see every standing commitment and registration.
func hydrate(
	ctx context.Context,
	index *schedule.Index,
	ledger *registration.Ledger,
	classes class.Repository,
	sessions session.Repository,
	registrations registration.Repository,
) error {
	all, err := classes.GetAll(ctx)
	if err != nil {
		return err
	}

	counts, err := registrations.ActiveCounts(ctx)
	if err != nil {
		return err
	}

	for _, gc := range all {
		interval := schedule.Interval{Start: gc.StartTime, End: gc.EndTime}
		index.Add(
			schedule.Commitment{ID: gc.ID, Kind: schedule.CommitmentClass, Interval: interval},
			schedule.RoomKey(gc.RoomID),
			schedule.TrainerKey(gc.TrainerID),
		)
		ledger.Seed(gc.ID, gc.Capacity, counts[gc.ID])
	}

	pts, err := sessions.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, pt := range pts {
		index.Add(
			schedule.Commitment{ID: pt.ID, Kind: schedule.CommitmentPTSession, Interval: schedule.Interval{Start: pt.StartTime, End: pt.EndTime}},
			schedule.TrainerKey(pt.TrainerID),
		)
	}

	logger.Info("Schedule hydrated",
		"classes", len(all),
		"pt_sessions", len(pts),
	)
	return nil
}

func (s *Server) Start(ctx context.Context, port string) error {
	if err := s.reconciler.Start(ctx); err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}

	logger.Info("HTTP server listening", "port", port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.reconciler.Stop()

	if s.httpServer == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
