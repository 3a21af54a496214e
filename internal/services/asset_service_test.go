package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finnews/internal/models"
	"finnews/internal/pagination"
	"finnews/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestCreateAsset(t *testing.T) {
	t.Run("valid_defaults_to_stock", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		asset, err := svc.CreateAsset(AssetInput{Symbol: "AAPL", Name: "Apple Inc."})
		testutil.AssertNoError(t, err)

		if asset.ID == 0 {
			t.Fatal("expected non-zero asset ID")
		}
		if asset.AssetType != models.AssetTypeStock {
			t.Errorf("expected asset type stock, got %s", asset.AssetType)
		}
	})

	t.Run("duplicate_symbol_leaves_store_unchanged", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		testutil.CreateTestAssetWithSymbol(t, db, "BTC")

		_, err := svc.CreateAsset(AssetInput{Symbol: "BTC", Name: "Bitcoin", AssetType: models.AssetTypeCrypto})
		testutil.AssertAppError(t, err, "DUPLICATE_SYMBOL")

		var count int64
		db.Model(&models.Asset{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 asset, got %d", count)
		}
	})

	t.Run("invalid_asset_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		_, err := svc.CreateAsset(AssetInput{Symbol: "X", Name: "X", AssetType: "bond"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("empty_symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		_, err := svc.CreateAsset(AssetInput{Symbol: "  ", Name: "Blank"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListAssets(t *testing.T) {
	t.Run("pagination_in_store_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		var ids []uint
		for i := 0; i < 5; i++ {
			ids = append(ids, testutil.CreateTestAsset(t, db).ID)
		}

		got, err := svc.ListAssets(AssetFilter{}, pagination.New(0, 2))
		testutil.AssertNoError(t, err)
		if len(got) != 2 {
			t.Fatalf("expected 2 assets, got %d", len(got))
		}
		if got[0].ID != ids[0] || got[1].ID != ids[1] {
			t.Errorf("expected first two assets in store order, got %d,%d", got[0].ID, got[1].ID)
		}

		got, err = svc.ListAssets(AssetFilter{}, pagination.New(4, 2))
		testutil.AssertNoError(t, err)
		if len(got) != 1 {
			t.Fatalf("expected 1 asset, got %d", len(got))
		}
		if got[0].ID != ids[4] {
			t.Errorf("expected last asset, got %d", got[0].ID)
		}
	})

	t.Run("filters_are_conjoined", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		testutil.CreateTestAssetWithSymbol(t, db, "MSFT")
		eu := testutil.CreateTestAssetWithSymbol(t, db, "SAP")
		db.Model(eu).Update("region", "EU")
		crypto := testutil.CreateTestAssetWithSymbol(t, db, "ETH")
		db.Model(crypto).Updates(map[string]interface{}{"asset_type": "crypto", "region": "EU"})

		stock := models.AssetTypeStock
		got, err := svc.ListAssets(AssetFilter{AssetType: &stock, Region: strPtr("EU")}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if len(got) != 1 || got[0].Symbol != "SAP" {
			t.Errorf("expected only SAP, got %+v", got)
		}

		got, err = svc.ListAssets(AssetFilter{Sector: strPtr("Energy")}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if len(got) != 0 {
			t.Errorf("expected no assets, got %d", len(got))
		}
	})
}

func TestGetAssetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAssetService(db)

	asset := testutil.CreateTestAsset(t, db)

	got, err := svc.GetAssetByID(asset.ID)
	testutil.AssertNoError(t, err)
	if got.Symbol != asset.Symbol {
		t.Errorf("expected symbol %s, got %s", asset.Symbol, got.Symbol)
	}

	_, err = svc.GetAssetByID(9999)
	testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
}

func TestUpdateAsset(t *testing.T) {
	t.Run("partial_update_keeps_other_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		asset := testutil.CreateTestAsset(t, db)

		updated, err := svc.UpdateAsset(asset.ID, AssetUpdate{Name: strPtr("Renamed")})
		testutil.AssertNoError(t, err)
		if updated.Name != "Renamed" {
			t.Errorf("expected name Renamed, got %s", updated.Name)
		}

		reloaded, _ := svc.GetAssetByID(asset.ID)
		if reloaded.Sector != asset.Sector || reloaded.Region != asset.Region || reloaded.Symbol != asset.Symbol {
			t.Errorf("expected untouched fields to persist, got %+v", reloaded)
		}
	})

	t.Run("symbol_conflict", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		testutil.CreateTestAssetWithSymbol(t, db, "AAA")
		other := testutil.CreateTestAssetWithSymbol(t, db, "BBB")

		_, err := svc.UpdateAsset(other.ID, AssetUpdate{Symbol: strPtr("AAA")})
		testutil.AssertAppError(t, err, "DUPLICATE_SYMBOL")
	})

	t.Run("same_symbol_is_not_conflict", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		asset := testutil.CreateTestAssetWithSymbol(t, db, "KEEP")
		_, err := svc.UpdateAsset(asset.ID, AssetUpdate{Symbol: strPtr("KEEP")})
		testutil.AssertNoError(t, err)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		_, err := svc.UpdateAsset(9999, AssetUpdate{Name: strPtr("x")})
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})
}

func TestDeleteAsset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAssetService(db)

	user := testutil.CreateTestUser(t, db)
	asset := testutil.CreateTestAsset(t, db)
	news := testutil.CreateTestNews(t, db, user.ID)
	testutil.CreateTestMention(t, db, news.ID, asset.ID)
	testutil.CreateTestPrice(t, db, asset.ID, time.Now(), 10)

	testutil.AssertNoError(t, svc.DeleteAsset(asset.ID))

	_, err := svc.GetAssetByID(asset.ID)
	testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")

	var mentions, prices, newsCount int64
	db.Model(&models.AssetMention{}).Count(&mentions)
	db.Model(&models.AssetPrice{}).Count(&prices)
	db.Model(&models.NewsItem{}).Count(&newsCount)
	if mentions != 0 || prices != 0 {
		t.Errorf("expected cascaded delete, got %d mentions and %d prices", mentions, prices)
	}
	if newsCount != 1 {
		t.Errorf("expected news item to survive, got %d", newsCount)
	}

	testutil.AssertAppError(t, svc.DeleteAsset(asset.ID), "ASSET_NOT_FOUND")
}

func TestGetPriceHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAssetService(db)

	asset := testutil.CreateTestAsset(t, db)
	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }
	// Inserted out of order on purpose.
	testutil.CreateTestPrice(t, db, asset.ID, day(9), 3)
	testutil.CreateTestPrice(t, db, asset.ID, day(7), 1)
	testutil.CreateTestPrice(t, db, asset.ID, day(10), 4)
	testutil.CreateTestPrice(t, db, asset.ID, day(8), 2)

	t.Run("inclusive_range_ascending", func(t *testing.T) {
		from, to := day(8), day(9)
		prices, err := svc.GetPriceHistory(asset.ID, &from, &to)
		testutil.AssertNoError(t, err)
		if len(prices) != 2 {
			t.Fatalf("expected 2 prices, got %d", len(prices))
		}
		if !prices[0].Timestamp.Equal(day(8)) || !prices[1].Timestamp.Equal(day(9)) {
			t.Errorf("unexpected order: %v, %v", prices[0].Timestamp, prices[1].Timestamp)
		}
	})

	t.Run("open_range_returns_all", func(t *testing.T) {
		prices, err := svc.GetPriceHistory(asset.ID, nil, nil)
		testutil.AssertNoError(t, err)
		if len(prices) != 4 {
			t.Fatalf("expected 4 prices, got %d", len(prices))
		}
		for i := 1; i < len(prices); i++ {
			if prices[i].Timestamp.Before(prices[i-1].Timestamp) {
				t.Fatal("expected ascending timestamps")
			}
		}
	})

	t.Run("unknown_asset", func(t *testing.T) {
		_, err := svc.GetPriceHistory(9999, nil, nil)
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})

	t.Run("inverted_range", func(t *testing.T) {
		from, to := day(10), day(7)
		_, err := svc.GetPriceHistory(asset.ID, &from, &to)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestRecordPrices(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAssetService(db)

	asset := testutil.CreateTestAsset(t, db)
	ts := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	vol := decimal.NewFromInt(300)
	input := []PriceInput{
		{Timestamp: ts, Open: decimal.NewFromInt(3430), High: decimal.NewFromInt(3450), Low: decimal.NewFromInt(3420), Close: decimal.NewFromInt(3440), Volume: &vol},
		{Timestamp: ts.AddDate(0, 0, 1), Open: decimal.NewFromInt(3430), High: decimal.NewFromInt(3520), Low: decimal.NewFromInt(3420), Close: decimal.NewFromInt(3500)},
	}

	n, err := svc.RecordPrices(asset.ID, input)
	testutil.AssertNoError(t, err)
	if n != 2 {
		t.Errorf("expected 2 recorded prices, got %d", n)
	}

	n, err = svc.RecordPrices(asset.ID, input[:1])
	testutil.AssertNoError(t, err)
	if n != 0 {
		t.Errorf("expected duplicate to be skipped, got %d", n)
	}

	prices, _ := svc.GetPriceHistory(asset.ID, nil, nil)
	if len(prices) != 2 {
		t.Fatalf("expected 2 stored prices, got %d", len(prices))
	}
	if !prices[0].Close.Equal(decimal.NewFromInt(3440)) {
		t.Errorf("expected close 3440, got %s", prices[0].Close)
	}
	if !prices[0].Volume.Valid || prices[1].Volume.Valid {
		t.Error("expected volume only on the first point")
	}

	_, err = svc.RecordPrices(asset.ID, nil)
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}
