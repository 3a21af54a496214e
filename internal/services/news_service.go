package services

import (
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	apperrors "finnews/internal/errors"
	"finnews/internal/models"
	"finnews/internal/pagination"
)

// newsService handles news item access.
type newsService struct {
	db *gorm.DB
}

// NewNewsService creates a new NewsServicer.
func NewNewsService(db *gorm.DB) NewsServicer {
	return &newsService{db: db}
}

// ListNews returns a page of news items matching the filter, in primary-key order.
func (s *newsService) ListNews(filter NewsFilter, page pagination.PageRequest) ([]models.NewsItem, error) {
	query := s.db.Model(&models.NewsItem{})
	if filter.StartDate != nil {
		query = query.Where("news.published_at >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		query = query.Where("news.published_at <= ?", filter.EndDate.UTC())
	}
	if filter.Keyword != nil && *filter.Keyword != "" {
		like := "%" + escapeLike(strings.ToLower(*filter.Keyword)) + "%"
		query = query.Where(`(LOWER(news.title) LIKE ? ESCAPE '\' OR LOWER(news.content) LIKE ? ESCAPE '\')`, like, like)
	}
	if filter.AssetSymbol != nil {
		mentioned := s.db.Table("asset_mentions").
			Select("asset_mentions.news_id").
			Joins("JOIN assets ON assets.id = asset_mentions.asset_id").
			Where("assets.symbol = ?", *filter.AssetSymbol)
		query = query.Where("news.id IN (?)", mentioned)
	}
	if filter.Sentiment != nil {
		scored := s.db.Table("analyses").
			Select("analyses.news_id").
			Where("analyses.sentiment_score = ?", *filter.Sentiment)
		query = query.Where("news.id IN (?)", scored)
	}

	news := []models.NewsItem{}
	err := query.Order("news.id ASC").
		Scopes(pagination.Paginate(page)).
		Preload("Analysis").
		Find(&news).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return news, nil
}

// GetNewsByID returns a news item with its analysis and asset mentions.
func (s *newsService) GetNewsByID(id uint) (*models.NewsItem, error) {
	var news models.NewsItem
	err := s.db.Preload("Analysis.Annotations").
		Preload("Mentions.Asset").
		First(&news, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &news, nil
}

// CreateNews creates a news item attributed to actorID, linking it to the
// assets named in input.AssetSymbols. Unknown symbols are rejected.
func (s *newsService) CreateNews(actorID uint, input NewsInput) (*models.NewsItem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Title is required")
	}

	news := newNewsFromInput(input, actorID)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(news).Error; err != nil {
			return err
		}
		counts := make(map[string]int, len(input.AssetSymbols))
		for _, symbol := range input.AssetSymbols {
			counts[strings.TrimSpace(symbol)]++
		}
		return createMentions(tx, news.ID, counts, true)
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetNewsByID(news.ID)
}

// UpdateNews applies the non-nil fields of input. Only the creator or an admin may update.
func (s *newsService) UpdateNews(actor *models.User, id uint, input NewsUpdate) (*models.NewsItem, error) {
	news, err := s.getForWrite(actor, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_by_id": actor.ID}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.Summary != nil {
		updates["summary"] = *input.Summary
	}
	if input.Source != nil {
		updates["source"] = *input.Source
	}
	if input.URL != nil {
		updates["url"] = *input.URL
	}
	if input.PublishedAt != nil {
		updates["published_at"] = input.PublishedAt.UTC()
	}

	if err := s.db.Model(news).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetNewsByID(news.ID)
}

// DeleteNews removes a news item, its analysis with annotations, and its mentions.
func (s *newsService) DeleteNews(actor *models.User, id uint) error {
	news, err := s.getForWrite(actor, id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return deleteNewsTx(tx, news.ID)
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// MarkForReanalysis flags a news item for the analysis pipeline.
func (s *newsService) MarkForReanalysis(id uint) (*models.NewsItem, error) {
	news, err := s.GetNewsByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(news).Update("needs_reanalysis", true).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	news.NeedsReanalysis = true
	return news, nil
}

// ListPending returns up to limit news items flagged for re-analysis, oldest first.
func (s *newsService) ListPending(limit int) ([]models.NewsItem, error) {
	page := pagination.PageRequest{Limit: &limit}
	news := []models.NewsItem{}
	err := s.db.Where("needs_reanalysis = ?", true).
		Order("id ASC").
		Limit(page.Size()).
		Find(&news).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return news, nil
}

// IngestNews creates a news item delivered by the pipeline. Items whose URL is
// already stored are skipped: the existing item is returned with created=false.
// Mentions of unknown symbols are ignored.
func (s *newsService) IngestNews(input IngestInput) (*models.NewsItem, bool, error) {
	var existing models.NewsItem
	err := s.db.Where("url = ?", input.URL).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	news := newNewsFromIngest(input)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(news).Error; err != nil {
			return err
		}
		return createMentions(tx, news.ID, input.Mentions, false)
	})
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	created, err := s.GetNewsByID(news.ID)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// getForWrite loads a news item and checks that actor may modify it.
func (s *newsService) getForWrite(actor *models.User, id uint) (*models.NewsItem, error) {
	var news models.NewsItem
	if err := s.db.First(&news, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !actor.IsAdmin && (news.CreatedByID == nil || *news.CreatedByID != actor.ID) {
		return nil, apperrors.ErrForbidden
	}
	return &news, nil
}

// createMentions links a news item to the assets in counts (symbol -> occurrences).
// With strict set, an unknown symbol aborts with ErrUnknownSymbol.
func createMentions(tx *gorm.DB, newsID uint, counts map[string]int, strict bool) error {
	if len(counts) == 0 {
		return nil
	}

	symbols := make([]string, 0, len(counts))
	for symbol := range counts {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var assets []models.Asset
	if err := tx.Where("symbol IN ?", symbols).Find(&assets).Error; err != nil {
		return err
	}
	bySymbol := make(map[string]uint, len(assets))
	for _, a := range assets {
		bySymbol[a.Symbol] = a.ID
	}

	for _, symbol := range symbols {
		assetID, ok := bySymbol[symbol]
		if !ok {
			if strict {
				return apperrors.WithMessage(apperrors.ErrUnknownSymbol, "Unknown asset symbol: "+symbol)
			}
			continue
		}
		count := counts[symbol]
		if count < 1 {
			count = 1
		}
		mention := &models.AssetMention{NewsID: newsID, AssetID: assetID, MentionCount: count}
		if err := tx.Create(mention).Error; err != nil {
			return err
		}
	}
	return nil
}

// deleteNewsTx removes a news item and everything it owns.
func deleteNewsTx(tx *gorm.DB, newsID uint) error {
	analyses := tx.Model(&models.Analysis{}).Select("id").Where("news_id = ?", newsID)
	if err := tx.Where("analysis_id IN (?)", analyses).Delete(&models.Annotation{}).Error; err != nil {
		return err
	}
	if err := tx.Where("news_id = ?", newsID).Delete(&models.Analysis{}).Error; err != nil {
		return err
	}
	if err := tx.Where("news_id = ?", newsID).Delete(&models.AssetMention{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.NewsItem{}, newsID).Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
