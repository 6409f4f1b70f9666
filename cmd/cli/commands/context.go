package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/natbar-dev/shiftplan/internal/config"
	"github.com/natbar-dev/shiftplan/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Store
	Logger   *zap.Logger
	Ctx      context.Context
}
