package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// event actions
const (
	ActionAdmin      = "admin"
	ActionPause      = "pause"
	ActionMarket     = "market"
	ActionPrice      = "price"
	ActionDeposit    = "deposit"
	ActionRedeem     = "redeem"
	ActionBorrow     = "borrow"
	ActionRepay      = "repay"
	ActionLiquidate  = "liquidate"
	ActionCollateral = "collateral"
)

// Event record of a committed operation
type Event struct {
	ID      int64  `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID string `sql:"size:36;unique_index:event_trace_idx" json:"trace_id"`
	Action  string `sql:"size:24" json:"action"`
	User    string `sql:"size:128" json:"user,omitempty"`
	// Counterparty liquidator of a liquidation, new admin of an admin change
	Counterparty string          `sql:"size:128" json:"counterparty,omitempty"`
	AssetID      string          `sql:"size:64" json:"asset_id,omitempty"`
	Amount       decimal.Decimal `sql:"type:decimal(40,0)" json:"amount"`
	CreatedAt    time.Time       `sql:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
}

// IEventStore event store interface
type IEventStore interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context, fromID int64, limit int) ([]*Event, error)
	DeleteByTime(ctx context.Context, t time.Time) (int64, error)
}
