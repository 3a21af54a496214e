package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finnews/internal/errors"
	"finnews/internal/models"
)

// analysisService handles AI analyses and analyst annotations.
type analysisService struct {
	db *gorm.DB
}

// NewAnalysisService creates a new AnalysisServicer.
func NewAnalysisService(db *gorm.DB) AnalysisServicer {
	return &analysisService{db: db}
}

// GetAnalysisByNewsID returns the analysis of a news item with its annotations.
func (s *analysisService) GetAnalysisByNewsID(newsID uint) (*models.Analysis, error) {
	if err := s.ensureNews(newsID); err != nil {
		return nil, err
	}

	var analysis models.Analysis
	err := s.db.Preload("Annotations", func(db *gorm.DB) *gorm.DB {
		return db.Order("annotations.id ASC")
	}).Where("news_id = ?", newsID).First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnalysisNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &analysis, nil
}

// UpsertAnalysis stores the analysis of a news item, replacing any previous
// one, and clears the item's re-analysis flag. Existing annotations are kept.
func (s *analysisService) UpsertAnalysis(newsID uint, input AnalysisInput) (*models.Analysis, error) {
	if input.SentimentScore < -1 || input.SentimentScore > 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "sentiment_score must be between -1 and 1")
	}
	if input.Confidence < 0 || input.Confidence > 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "confidence must be between 0 and 1")
	}
	if strings.TrimSpace(input.ModelVersion) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "model_version is required")
	}
	if err := s.ensureNews(newsID); err != nil {
		return nil, err
	}

	analysis := newAnalysisFromInput(newsID, input)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "news_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"sentiment_score", "confidence", "entities", "keywords",
				"summary", "model_version", "updated_at",
			}),
		}).Create(analysis).Error
		if err != nil {
			return err
		}
		return tx.Model(&models.NewsItem{}).
			Where("id = ?", newsID).
			Update("needs_reanalysis", false).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetAnalysisByNewsID(newsID)
}

// CreateAnnotation adds an analyst note to the analysis of a news item.
func (s *analysisService) CreateAnnotation(userID, newsID uint, input AnnotationInput) (*models.Annotation, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Text is required")
	}
	if o := input.OverrideSentiment; o != nil && (*o < -1 || *o > 1) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "override_sentiment must be between -1 and 1")
	}

	analysis, err := s.GetAnalysisByNewsID(newsID)
	if err != nil {
		return nil, err
	}

	annotation := &models.Annotation{
		AnalysisID:        analysis.ID,
		UserID:            &userID,
		Text:              input.Text,
		OverrideSentiment: input.OverrideSentiment,
	}
	if err := s.db.Create(annotation).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return annotation, nil
}

// GetAnnotationByID returns an annotation by its ID.
func (s *analysisService) GetAnnotationByID(id uint) (*models.Annotation, error) {
	var annotation models.Annotation
	if err := s.db.First(&annotation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnnotationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &annotation, nil
}

// DeleteAnnotation removes an annotation. Only its author or an admin may delete it.
func (s *analysisService) DeleteAnnotation(actor *models.User, id uint) error {
	annotation, err := s.GetAnnotationByID(id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin && (annotation.UserID == nil || *annotation.UserID != actor.ID) {
		return apperrors.ErrForbidden
	}
	if err := s.db.Delete(annotation).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *analysisService) ensureNews(newsID uint) error {
	var count int64
	if err := s.db.Model(&models.NewsItem{}).Where("id = ?", newsID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrNewsNotFound
	}
	return nil
}
