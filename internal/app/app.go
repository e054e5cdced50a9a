// Package app wires configuration, the calculator, storage and the HTTP
// engine into a runnable service.
package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/salinity-service/config"
	"github.com/guttosm/salinity-service/internal/logger"
)

// App is a wired service ready to be served.
type App struct {
	Engine  *gin.Engine
	Storage *Storage
}

// New builds the service from cfg. It fails only on an unknown
// thermodynamic strategy; unreachable storage degrades to stateless mode.
func New(cfg config.Config) (*App, error) {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	svc, err := InitializeServices(cfg.Cache, cfg.Solver)
	if err != nil {
		return nil, err
	}
	storage := OpenStorage(cfg.Database)

	return &App{
		Engine:  NewEngine(svc, storage, cfg),
		Storage: storage,
	}, nil
}

// Close flushes pending request logs and disconnects from MongoDB.
func (a *App) Close(ctx context.Context) error {
	if a.Storage == nil {
		return nil
	}
	return a.Storage.Close(ctx)
}
