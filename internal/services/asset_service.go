package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finnews/internal/errors"
	"finnews/internal/models"
	"finnews/internal/pagination"
)

// assetService handles asset and price-history access.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

// ListAssets returns a page of assets matching the filter, in primary-key order.
func (s *assetService) ListAssets(filter AssetFilter, page pagination.PageRequest) ([]models.Asset, error) {
	query := s.db.Model(&models.Asset{})
	if filter.AssetType != nil {
		query = query.Where("asset_type = ?", *filter.AssetType)
	}
	if filter.Sector != nil {
		query = query.Where("sector = ?", *filter.Sector)
	}
	if filter.Region != nil {
		query = query.Where("region = ?", *filter.Region)
	}

	assets := []models.Asset{}
	if err := query.Order("id ASC").Scopes(pagination.Paginate(page)).Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return assets, nil
}

// ListAllAssets returns every asset ordered by symbol.
func (s *assetService) ListAllAssets() ([]models.Asset, error) {
	assets := []models.Asset{}
	if err := s.db.Order("symbol ASC").Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return assets, nil
}

// GetAssetByID returns an asset by its ID.
func (s *assetService) GetAssetByID(id uint) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// CreateAsset creates a new asset. A symbol already in use yields ErrDuplicateSymbol.
func (s *assetService) CreateAsset(input AssetInput) (*models.Asset, error) {
	input.Symbol = strings.TrimSpace(input.Symbol)
	if input.Symbol == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}
	if input.AssetType != "" && !input.AssetType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid asset type")
	}

	taken, err := s.symbolTaken(input.Symbol, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrDuplicateSymbol
	}

	asset := newAssetFromInput(input)
	if err := s.db.Create(asset).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateSymbol
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

// UpdateAsset applies the non-nil fields of input to the asset.
func (s *assetService) UpdateAsset(id uint, input AssetUpdate) (*models.Asset, error) {
	asset, err := s.GetAssetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Symbol != nil {
		symbol := strings.TrimSpace(*input.Symbol)
		if symbol == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
		}
		if symbol != asset.Symbol {
			taken, err := s.symbolTaken(symbol, asset.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, apperrors.ErrDuplicateSymbol
			}
		}
		asset.Symbol = symbol
	}
	if input.Name != nil {
		asset.Name = *input.Name
	}
	if input.Description != nil {
		asset.Description = *input.Description
	}
	if input.AssetType != nil {
		if !input.AssetType.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid asset type")
		}
		asset.AssetType = *input.AssetType
	}
	if input.Sector != nil {
		asset.Sector = *input.Sector
	}
	if input.Region != nil {
		asset.Region = *input.Region
	}

	if err := s.db.Save(asset).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateSymbol
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

// DeleteAsset removes an asset together with its prices and news mentions.
func (s *assetService) DeleteAsset(id uint) error {
	asset, err := s.GetAssetByID(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ?", asset.ID).Delete(&models.AssetMention{}).Error; err != nil {
			return err
		}
		if err := tx.Where("asset_id = ?", asset.ID).Delete(&models.AssetPrice{}).Error; err != nil {
			return err
		}
		return tx.Delete(asset).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetPriceHistory returns an asset's price points within the inclusive range,
// ordered by timestamp ascending. Nil bounds are open.
func (s *assetService) GetPriceHistory(assetID uint, from, to *time.Time) ([]models.AssetPrice, error) {
	if _, err := s.GetAssetByID(assetID); err != nil {
		return nil, err
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start_date must not be after end_date")
	}

	query := s.db.Where("asset_id = ?", assetID)
	if from != nil {
		query = query.Where("timestamp >= ?", from.UTC())
	}
	if to != nil {
		query = query.Where("timestamp <= ?", to.UTC())
	}

	prices := []models.AssetPrice{}
	if err := query.Order("timestamp ASC").Find(&prices).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return prices, nil
}

// RecordPrices bulk-inserts price points for an asset, skipping timestamps
// already recorded. It returns the number of new points.
func (s *assetService) RecordPrices(assetID uint, prices []PriceInput) (int, error) {
	if len(prices) == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Prices array is empty")
	}
	if _, err := s.GetAssetByID(assetID); err != nil {
		return 0, err
	}

	count := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, p := range prices {
			if p.Timestamp.IsZero() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "Price timestamp is required")
			}
			ap := newPriceFromInput(assetID, p)
			result := tx.Where("asset_id = ? AND timestamp = ?", ap.AssetID, ap.Timestamp).FirstOrCreate(ap)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected > 0 {
				count++
			}
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return 0, appErr
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count, nil
}

func (s *assetService) symbolTaken(symbol string, exceptID uint) (bool, error) {
	var count int64
	query := s.db.Model(&models.Asset{}).Where("symbol = ?", symbol)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}

// isUniqueConstraintError checks if a GORM error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
