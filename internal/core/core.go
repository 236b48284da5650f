package core

import (
	"database/sql"
	"log/slog"

	"github.com/mdobak/go-xerrors"
	"github.com/nexusclub/nexus-board/internal/utils/databaseutils"
)

var NoRecordFound = xerrors.Message("No record found")

// Core is the data access layer over the hosted Postgres store. Every
// operation is a single statement; there is no multi-step transaction to
// manage.
type Core struct {
	log         *slog.Logger
	db          *sql.DB
	sqlTemplate *databaseutils.SQLTemplate
}

func NewCore(dbConn *sql.DB, log *slog.Logger, sqlTemplate *databaseutils.SQLTemplate) *Core {
	return &Core{
		log:         log,
		db:          dbConn,
		sqlTemplate: sqlTemplate,
	}
}
