package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/citykeeper/internal/dbx"
	"github.com/dmitrijs2005/citykeeper/internal/server/repositories/cities"
	"github.com/dmitrijs2005/citykeeper/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX (plain connection or
// transaction) and owns schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Cities(db dbx.DBTX) cities.Repository
}
