package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type sample struct {
	AssetType  string   `binding:"omitempty,asset_type"`
	Sentiment  *float64 `binding:"omitempty,sentiment_score"`
	Confidence float64  `binding:"unit_interval"`
}

func floatPtr(v float64) *float64 { return &v }

func TestRegister(t *testing.T) {
	Register()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("expected go-playground validator engine")
	}

	tests := []struct {
		name    string
		in      sample
		wantErr bool
	}{
		{"valid", sample{AssetType: "crypto", Sentiment: floatPtr(-0.5), Confidence: 0.9}, false},
		{"empty optional fields", sample{Confidence: 0}, false},
		{"unknown asset type", sample{AssetType: "etf"}, true},
		{"sentiment above range", sample{Sentiment: floatPtr(1.5)}, true},
		{"confidence below range", sample{Confidence: -0.1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
