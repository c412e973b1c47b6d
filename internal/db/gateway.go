package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tidwall/gjson"
	"github.com/yigit/mentorly/internal/pkg/apperrors"
	"github.com/yigit/mentorly/internal/pkg/dberrors"
	"github.com/yigit/mentorly/internal/pkg/logger"
)

// Database roles the row-level security policies are written against
const (
	RoleAuthenticated = "authenticated"
	RoleAnonymous     = "anon"
)

const defaultUnitTimeout = 30 * time.Second

// bindIdentitySQL publishes the caller to the current transaction only
const bindIdentitySQL = `SELECT set_config('request.jwt.claim.sub', $1, true), ` +
	`set_config('request.jwt.claim.role', $2, true), ` +
	`set_config('role', $2, true)`

// Querier is the statement surface shared by pools and transactions
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is satisfied by *pgxpool.Pool and by pgxmock pools
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Gateway hands out identity-bound clients over a shared pool
type Gateway struct {
	db DB
}

// NewGateway creates a new gateway
func NewGateway(db DB) *Gateway {
	return &Gateway{db: db}
}

// As returns a client acting on behalf of userID. An empty userID acts anonymously.
func (g *Gateway) As(userID string) *Client {
	role := RoleAuthenticated
	if userID == "" {
		role = RoleAnonymous
	}
	return &Client{db: g.db, subject: userID, role: role}
}

// Anonymous returns a client with no identity
func (g *Gateway) Anonymous() *Client {
	return g.As("")
}

// Client runs units of work as a single caller
type Client struct {
	db      DB
	subject string
	role    string
}

// Subject returns the identity the client acts as
func (c *Client) Subject() string {
	return c.subject
}

// UnitFn is a unit of work executed inside an identity-bound transaction
type UnitFn func(q Querier) error

// Run executes fn in a transaction scoped to the client's identity. The
// transaction commits when fn returns nil and rolls back otherwise.
func (c *Client) Run(ctx context.Context, fn UnitFn) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultUnitTimeout)
		defer cancel()
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Rollback on panic
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if _, err := tx.Exec(ctx, bindIdentitySQL, c.subject, c.role); err != nil {
		c.rollback(ctx, tx)
		return fmt.Errorf("failed to bind request identity: %w", err)
	}

	if err := fn(tx); err != nil {
		c.rollback(ctx, tx)
		if dberrors.IsPermissionDenied(err) {
			logger.Warn().Err(err).Str("subject", c.subject).Msg("Row-level security rejected statement")
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (c *Client) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.Error().Err(err).Str("subject", c.subject).Msg("Failed to rollback transaction")
	}
}

// Call invokes a stored procedure with named arguments and decodes its
// {success, error, ...} result. A non-nil error always means the call itself
// failed; a rejected request comes back as a result with Success false.
func (c *Client) Call(ctx context.Context, procedure string, params map[string]any) (*ProcedureResult, error) {
	names := slices.Sorted(maps.Keys(params))
	placeholders := make([]string, 0, len(names))
	args := make([]any, 0, len(names))
	for i, name := range names {
		placeholders = append(placeholders, fmt.Sprintf("%s => $%d", pgx.Identifier{name}.Sanitize(), i+1))
		args = append(args, params[name])
	}
	query := fmt.Sprintf("SELECT %s(%s)::text", pgx.Identifier{procedure}.Sanitize(), strings.Join(placeholders, ", "))

	var raw string
	err := c.Run(ctx, func(q Querier) error {
		return q.QueryRow(ctx, query, args...).Scan(&raw)
	})
	if err != nil {
		return nil, fmt.Errorf("procedure %s failed: %w", procedure, err)
	}

	result, err := ParseProcedureResult(raw)
	if err != nil {
		return nil, fmt.Errorf("procedure %s: %w", procedure, err)
	}
	return result, nil
}

// ProcedureResult is the discriminated result of a stored procedure
type ProcedureResult struct {
	Success bool
	Error   string
	Payload json.RawMessage
}

// ParseProcedureResult decodes a procedure's JSON result
func ParseProcedureResult(raw string) (*ProcedureResult, error) {
	if !gjson.Valid(raw) {
		return nil, errors.New("result is not valid JSON")
	}
	parsed := gjson.Parse(raw)
	if !parsed.IsObject() {
		return nil, errors.New("result is not a JSON object")
	}
	success := parsed.Get("success")
	if !success.IsBool() {
		return nil, errors.New("result has no success flag")
	}
	return &ProcedureResult{
		Success: success.Bool(),
		Error:   parsed.Get("error").String(),
		Payload: json.RawMessage(raw),
	}, nil
}

// Field returns the raw JSON of a top-level payload field, or nil when absent
func (r *ProcedureResult) Field(name string) json.RawMessage {
	value := gjson.GetBytes(r.Payload, name)
	if !value.Exists() || value.Type == gjson.Null {
		return nil
	}
	return json.RawMessage(value.Raw)
}

// Err returns a BusinessError for a rejected call and nil otherwise
func (r *ProcedureResult) Err() error {
	if r.Success {
		return nil
	}
	return apperrors.NewBusinessError(r.Error)
}
