package core

import (
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Config moneymarket config
type Config struct {
	App        App        `json:"app"`
	DB         db.Config  `json:"db"`
	KV         KV         `json:"kv"`
	Token      Token      `json:"token"`
	Auth       Auth       `json:"auth"`
	PriceFeed  PriceFeed  `json:"price_feed"`
	Liquidator Liquidator `json:"liquidator"`
	Retention  Retention  `json:"retention"`
}

// App app config
type App struct {
	// Pool principal holding the pooled tokens
	Pool string `json:"pool"`
	// Admin principal the cli and the price feed act as
	Admin    string `json:"admin"`
	Location string `json:"location"`
}

// storage drivers
const (
	DriverMemory  = "memory"
	DriverLevelDB = "leveldb"
	DriverDB      = "db"
)

// KV key value backend config
type KV struct {
	Driver    string `json:"driver"`
	Path      string `json:"path"`
	CacheSize int    `json:"cache_size"`
}

// Token token ledger config
type Token struct {
	Driver string `json:"driver"`
}

// Auth bearer tokens of the rest api
type Auth struct {
	Tokens []AuthToken `json:"tokens"`
}

// AuthToken maps a bearer token to the principal it acts as
type AuthToken struct {
	Token     string `json:"token"`
	Principal string `json:"principal"`
}

// PriceFeed price feed worker config
type PriceFeed struct {
	Endpoint string          `json:"endpoint"`
	Interval time.Duration   `json:"interval"`
	Assets   []PriceFeedItem `json:"assets"`
}

// PriceFeedItem asset and the symbol the feed knows it by
type PriceFeedItem struct {
	AssetID string `json:"asset_id"`
	Symbol  string `json:"symbol"`
}

// Liquidator liquidator worker config
type Liquidator struct {
	Principal string        `json:"principal"`
	Interval  time.Duration `json:"interval"`
}

// Retention how long records are kept
type Retention struct {
	Events time.Duration `json:"events"`
}
