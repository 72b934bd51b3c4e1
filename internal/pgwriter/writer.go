package pgwriter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kieshlabs/personagen/internal/catalog"
	"github.com/kieshlabs/personagen/internal/persona"
	"github.com/kieshlabs/personagen/internal/serializer"
)

const schema = `
CREATE TABLE IF NOT EXISTS persona_stock (
	run_id     UUID             NOT NULL,
	stock_id   INT              NOT NULL,
	ticker     TEXT             NOT NULL,
	company    TEXT             NOT NULL,
	price      DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (run_id, stock_id)
);

CREATE TABLE IF NOT EXISTS persona_identity (
	run_id     UUID NOT NULL,
	user_id    INT  NOT NULL,
	username   TEXT NOT NULL,
	full_name  TEXT NOT NULL,
	email      TEXT NOT NULL,
	birthdate  DATE NOT NULL,
	PRIMARY KEY (run_id, user_id)
);

CREATE TABLE IF NOT EXISTS persona_profile (
	run_id                    UUID             NOT NULL,
	user_id                   INT              NOT NULL,
	seed                      BIGINT           NOT NULL,
	decision_interval_seconds INT              NOT NULL,
	trade_prob                DOUBLE PRECISION NOT NULL,
	use_market_prob           DOUBLE PRECISION NOT NULL,
	use_slippage_prob         DOUBLE PRECISION NOT NULL,
	online_prob               DOUBLE PRECISION NOT NULL,
	buy_bias                  DOUBLE PRECISION NOT NULL,
	min_trade_amount          DOUBLE PRECISION NOT NULL,
	max_trade_amount          DOUBLE PRECISION NOT NULL,
	per_position_max          DOUBLE PRECISION NOT NULL,
	min_cash                  DOUBLE PRECISION NOT NULL,
	max_cash                  DOUBLE PRECISION NOT NULL,
	slippage_tolerance        DOUBLE PRECISION NOT NULL,
	min_limit_offset          DOUBLE PRECISION NOT NULL,
	max_limit_offset          DOUBLE PRECISION NOT NULL,
	aggressiveness            DOUBLE PRECISION NOT NULL,
	min_stocks                INT              NOT NULL,
	max_stocks                INT              NOT NULL,
	max_daily_trades          INT              NOT NULL,
	max_open_orders           INT              NOT NULL,
	watchlist_csv             TEXT             NOT NULL,
	strategy                  INT              NOT NULL,
	balance                   DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (run_id, user_id)
);

CREATE TABLE IF NOT EXISTS persona_holding (
	run_id     UUID NOT NULL,
	user_id    INT  NOT NULL,
	stock_id   INT  NOT NULL,
	shares     INT  NOT NULL,
	PRIMARY KEY (run_id, user_id, stock_id)
);
`

const (
	insertStockSQL = `INSERT INTO persona_stock (run_id, stock_id, ticker, company, price)
		VALUES ($1, $2, $3, $4, $5)`

	insertIdentitySQL = `INSERT INTO persona_identity (run_id, user_id, username, full_name, email, birthdate)
		VALUES ($1, $2, $3, $4, $5, $6)`

	insertProfileSQL = `INSERT INTO persona_profile (
		run_id, user_id, seed, decision_interval_seconds, trade_prob,
		use_market_prob, use_slippage_prob, online_prob, buy_bias,
		min_trade_amount, max_trade_amount, per_position_max, min_cash,
		max_cash, slippage_tolerance, min_limit_offset, max_limit_offset,
		aggressiveness, min_stocks, max_stocks, max_daily_trades,
		max_open_orders, watchlist_csv, strategy, balance
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21, $22, $23, $24, $25
	)`

	insertHoldingSQL = `INSERT INTO persona_holding (run_id, user_id, stock_id, shares)
		VALUES ($1, $2, $3, $4)`
)

// Writer persists populations into Postgres, one uuid-tagged run per batch.
type Writer struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// New creates a Writer.
func New(db *pgxpool.Pool, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{db: db, logger: logger}
}

// EnsureSchema creates the output tables if they do not exist.
func (w *Writer) EnsureSchema(ctx context.Context) error {
	if _, err := w.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// WritePopulation inserts the catalog and all profile rows under runID.
func (w *Writer) WritePopulation(ctx context.Context, runID uuid.UUID, cat *catalog.Catalog, profiles []persona.Profile) error {
	batch := &pgx.Batch{}

	for _, inst := range cat.Instruments() {
		batch.Queue(insertStockSQL, runID, inst.ID, inst.Symbol, inst.Name, inst.Price)
	}
	for _, p := range profiles {
		batch.Queue(insertIdentitySQL, identityArgs(runID, p)...)
		batch.Queue(insertProfileSQL, profileArgs(runID, p)...)
		for _, inst := range cat.Instruments() {
			shares, held := p.Holdings[inst.ID]
			if !held {
				continue
			}
			batch.Queue(insertHoldingSQL, runID, p.ID, inst.ID, shares)
		}
	}

	br := w.db.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch insert %d: %w", i, err)
		}
	}

	w.logger.Info("population persisted",
		"run_id", runID,
		"personas", len(profiles),
		"statements", batch.Len(),
	)
	return nil
}

// identityArgs flattens one identity row, prefixed with the run id.
func identityArgs(runID uuid.UUID, p persona.Profile) []any {
	return append([]any{runID}, serializer.IdentityRow(p)...)
}

// profileArgs flattens one profile-parameter row, prefixed with the run id
// and suffixed with the rounded balance.
func profileArgs(runID uuid.UUID, p persona.Profile) []any {
	args := append([]any{runID}, serializer.ProfileRow(p)...)
	return append(args, serializer.Round2(p.Balance))
}
