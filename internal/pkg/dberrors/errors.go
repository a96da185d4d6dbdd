package dberrors

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Class 08 is connection_exception, 57P0x covers admin/crash shutdown and cannot_connect_now.
var unavailableCodes = map[string]struct{}{
	"08000": {},
	"08003": {},
	"08006": {},
	"08001": {},
	"08004": {},
	"57P01": {},
	"57P02": {},
	"57P03": {},
}

// IsNoRows reports whether a single-row query matched nothing.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUnavailable reports whether err means PostgreSQL could not be reached or
// stopped answering, rather than rejecting the statement itself.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		_, ok := unavailableCodes[pgErr.Code]
		return ok
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
