package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetType represents the class of a tradable instrument.
type AssetType string

const (
	AssetTypeStock     AssetType = "stock"
	AssetTypeForex     AssetType = "forex"
	AssetTypeCrypto    AssetType = "crypto"
	AssetTypeCommodity AssetType = "commodity"
	AssetTypeIndex     AssetType = "index"
	AssetTypeOther     AssetType = "other"
)

// Valid reports whether t is one of the known asset types.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeStock, AssetTypeForex, AssetTypeCrypto, AssetTypeCommodity, AssetTypeIndex, AssetTypeOther:
		return true
	}
	return false
}

// Asset represents a tradable financial instrument (stock, forex pair, crypto, ...).
type Asset struct {
	Base
	Symbol      string    `gorm:"size:20;uniqueIndex;not null" json:"symbol"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `json:"description"`
	AssetType   AssetType `gorm:"size:20;not null;default:'stock'" json:"asset_type"`
	Sector      string    `gorm:"size:100;index" json:"sector"`
	Region      string    `gorm:"size:100;index" json:"region"`

	// Relationships
	Prices   []AssetPrice   `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE" json:"-"`
	Mentions []AssetMention `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE" json:"-"`
}

// AssetPrice represents one OHLCV point in an asset's price history.
// This is time-series data; no update timestamps.
type AssetPrice struct {
	ID        uint                `gorm:"primaryKey" json:"id"`
	AssetID   uint                `gorm:"not null;uniqueIndex:uq_asset_prices_asset_timestamp" json:"asset_id"`
	Timestamp time.Time           `gorm:"not null;index;uniqueIndex:uq_asset_prices_asset_timestamp" json:"timestamp"`
	Open      decimal.Decimal     `gorm:"column:open_price;type:numeric(20,8);not null" json:"open"`
	High      decimal.Decimal     `gorm:"column:high_price;type:numeric(20,8);not null" json:"high"`
	Low       decimal.Decimal     `gorm:"column:low_price;type:numeric(20,8);not null" json:"low"`
	Close     decimal.Decimal     `gorm:"column:close_price;type:numeric(20,8);not null" json:"close"`
	Volume    decimal.NullDecimal `gorm:"type:numeric(24,4)" json:"volume"`
}
