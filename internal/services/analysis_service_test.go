package services

import (
	"testing"

	"finnews/internal/models"
	"finnews/internal/testutil"
)

func floatPtr(f float64) *float64 { return &f }

func TestUpsertAnalysis(t *testing.T) {
	t.Run("creates_then_replaces", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalysisService(db)
		newsSvc := NewNewsService(db)

		user := testutil.CreateTestUser(t, db)
		news := testutil.CreateTestNews(t, db, user.ID)
		_, err := newsSvc.MarkForReanalysis(news.ID)
		testutil.AssertNoError(t, err)

		first, err := svc.UpsertAnalysis(news.ID, AnalysisInput{
			SentimentScore: 0.6, Confidence: 0.9, Entities: []string{"Fed"}, ModelVersion: "v1",
		})
		testutil.AssertNoError(t, err)
		if first.SentimentScore != 0.6 || len(first.Entities) != 1 {
			t.Errorf("unexpected analysis: %+v", first)
		}
		if first.Keywords == nil {
			t.Error("expected keywords to default to an empty list")
		}

		second, err := svc.UpsertAnalysis(news.ID, AnalysisInput{
			SentimentScore: -0.2, Confidence: 0.5, ModelVersion: "v2",
		})
		testutil.AssertNoError(t, err)
		if second.ID != first.ID {
			t.Errorf("expected the same analysis row, got %d and %d", first.ID, second.ID)
		}
		if second.SentimentScore != -0.2 || second.ModelVersion != "v2" {
			t.Errorf("expected replaced analysis, got %+v", second)
		}

		var count int64
		db.Model(&models.Analysis{}).Count(&count)
		if count != 1 {
			t.Errorf("expected one analysis per news item, got %d", count)
		}

		reloaded, _ := newsSvc.GetNewsByID(news.ID)
		if reloaded.NeedsReanalysis {
			t.Error("expected needs_reanalysis to be cleared")
		}
	})

	t.Run("out_of_range_scores", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalysisService(db)

		user := testutil.CreateTestUser(t, db)
		news := testutil.CreateTestNews(t, db, user.ID)

		_, err := svc.UpsertAnalysis(news.ID, AnalysisInput{SentimentScore: 1.5, Confidence: 0.5, ModelVersion: "v"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.UpsertAnalysis(news.ID, AnalysisInput{SentimentScore: 0, Confidence: 1.1, ModelVersion: "v"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_news", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalysisService(db)

		_, err := svc.UpsertAnalysis(9999, AnalysisInput{ModelVersion: "v"})
		testutil.AssertAppError(t, err, "NEWS_NOT_FOUND")
	})
}

func TestGetAnalysisByNewsID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAnalysisService(db)

	user := testutil.CreateTestUser(t, db)
	withAnalysis := testutil.CreateTestNews(t, db, user.ID)
	analysis := testutil.CreateTestAnalysis(t, db, withAnalysis.ID, 0.3)
	testutil.CreateTestAnnotation(t, db, analysis.ID, user.ID)
	bare := testutil.CreateTestNews(t, db, user.ID)

	got, err := svc.GetAnalysisByNewsID(withAnalysis.ID)
	testutil.AssertNoError(t, err)
	if len(got.Annotations) != 1 {
		t.Errorf("expected annotations to be loaded, got %d", len(got.Annotations))
	}

	_, err = svc.GetAnalysisByNewsID(bare.ID)
	testutil.AssertAppError(t, err, "ANALYSIS_NOT_FOUND")
}

func TestAnnotations(t *testing.T) {
	t.Run("create_with_override", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalysisService(db)

		user := testutil.CreateTestUser(t, db)
		news := testutil.CreateTestNews(t, db, user.ID)
		analysis := testutil.CreateTestAnalysis(t, db, news.ID, 0.3)

		annotation, err := svc.CreateAnnotation(user.ID, news.ID, AnnotationInput{Text: "Too bullish", OverrideSentiment: floatPtr(-0.1)})
		testutil.AssertNoError(t, err)
		if annotation.AnalysisID != analysis.ID {
			t.Errorf("expected analysis %d, got %d", analysis.ID, annotation.AnalysisID)
		}
		if annotation.UserID == nil || *annotation.UserID != user.ID {
			t.Error("expected annotation to be attributed to the caller")
		}
	})

	t.Run("override_out_of_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalysisService(db)

		user := testutil.CreateTestUser(t, db)
		news := testutil.CreateTestNews(t, db, user.ID)
		testutil.CreateTestAnalysis(t, db, news.ID, 0.3)

		_, err := svc.CreateAnnotation(user.ID, news.ID, AnnotationInput{Text: "x", OverrideSentiment: floatPtr(-2)})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("news_without_analysis", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalysisService(db)

		user := testutil.CreateTestUser(t, db)
		news := testutil.CreateTestNews(t, db, user.ID)

		_, err := svc.CreateAnnotation(user.ID, news.ID, AnnotationInput{Text: "x"})
		testutil.AssertAppError(t, err, "ANALYSIS_NOT_FOUND")
	})

	t.Run("delete_author_or_admin_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalysisService(db)

		author := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		admin := testutil.CreateTestAdmin(t, db)
		news := testutil.CreateTestNews(t, db, author.ID)
		analysis := testutil.CreateTestAnalysis(t, db, news.ID, 0.3)
		mine := testutil.CreateTestAnnotation(t, db, analysis.ID, author.ID)
		theirs := testutil.CreateTestAnnotation(t, db, analysis.ID, author.ID)

		testutil.AssertAppError(t, svc.DeleteAnnotation(other, mine.ID), "FORBIDDEN")
		testutil.AssertNoError(t, svc.DeleteAnnotation(author, mine.ID))
		testutil.AssertNoError(t, svc.DeleteAnnotation(admin, theirs.ID))
		testutil.AssertAppError(t, svc.DeleteAnnotation(admin, mine.ID), "ANNOTATION_NOT_FOUND")
	})
}
