// Package container wires the application dependencies: database,
// repositories, staging store, domain services and HTTP handlers.
package container

import (
	"database/sql"
	"fmt"

	"golang.org/x/time/rate"

	"obeserver/database"
	assessmenthandler "obeserver/internal/api/handlers/assessment"
	finalresulthandler "obeserver/internal/api/handlers/finalresult"
	peohandler "obeserver/internal/api/handlers/peo"
	predictionhandler "obeserver/internal/api/handlers/prediction"
	"obeserver/internal/config"
	"obeserver/internal/domain/assessment"
	"obeserver/internal/domain/finalresult"
	"obeserver/internal/domain/peo"
	"obeserver/internal/domain/prediction"
	"obeserver/internal/infrastructure/persistence"
	"obeserver/internal/infrastructure/staging"
)

// Container holds every long-lived dependency of the server.
type Container struct {
	Config *config.Config

	DB           *sql.DB
	StagingStore *staging.Store

	AssessmentService  assessment.Service
	FinalResultService finalresult.Service
	PEOService         peo.Service
	PredictionService  prediction.Service

	AssessmentHandler  *assessmenthandler.Handler
	FinalResultHandler *finalresulthandler.Handler
	PEOHandler         *peohandler.Handler
	PredictionHandler  *predictionhandler.Handler

	UploadLimiter *rate.Limiter
}

// New builds the full dependency graph from the configuration.
func New(cfg *config.Config) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	store := staging.NewStore(cfg.StagingTTL, cfg.StagingSweepInterval)

	assessmentRepo := persistence.NewAssessmentRepository(db)
	peoRepo := persistence.NewPEORepository(db)
	finalResultRepo := persistence.NewFinalResultRepository(db)

	modelLimiter := rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	c := &Container{
		Config:       cfg,
		DB:           db,
		StagingStore: store,

		AssessmentService:  assessment.NewService(assessmentRepo),
		FinalResultService: finalresult.NewService(store, finalResultRepo),
		PEOService:         peo.NewService(peoRepo),
		PredictionService:  prediction.NewService(cfg.ModelURL, cfg.ModelTimeout, modelLimiter),

		UploadLimiter: rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	}

	c.AssessmentHandler = assessmenthandler.NewHandler(c.AssessmentService)
	c.FinalResultHandler = finalresulthandler.NewHandler(c.FinalResultService)
	c.PEOHandler = peohandler.NewHandler(c.PEOService)
	c.PredictionHandler = predictionhandler.NewHandler(c.PredictionService)

	return c, nil
}

// Close releases the container resources.
func (c *Container) Close() error {
	c.StagingStore.Close()
	return c.DB.Close()
}
