package model

// Analysis is the structured output of the generative model. Its shape is whatever
// the model returned; only successful JSON decoding is required.
type Analysis map[string]any

// EnhancedQuery returns the "enhanced_query" entry, or "" if absent or not a string.
func (a Analysis) EnhancedQuery() string {
	s, _ := a["enhanced_query"].(string)
	return s
}

// Placeholder texts used when the model's answer could not be decoded.
const (
	placeholderPurpose     = "目的を取得できませんでした"
	placeholderUsageScene  = "利用シーンを取得できませんでした"
	placeholderPrimary     = "おすすめ商品を取得できませんでした"
	placeholderFeature     = "特徴を取得できませんでした"
	placeholderPricePoint  = "価格帯を取得できませんでした"
	placeholderSeasonal    = "季節性を取得できませんでした"
	placeholderPopularity  = "人気動向を取得できませんでした"
	degradedAnalysisReason = "AI analysis failed"
)

// FallbackAnalysis mirrors the requested analysis shape with placeholder text.
// enhanced_query is the original query verbatim.
func FallbackAnalysis(query string) Analysis {
	return Analysis{
		"search_intent": map[string]any{
			"purpose":     placeholderPurpose,
			"usage_scene": placeholderUsageScene,
		},
		"recommendations": map[string]any{
			"primary": []any{placeholderPrimary},
			"related": []any{},
		},
		"feature_highlights": map[string]any{
			"key_features": []any{placeholderFeature},
			"price_point":  placeholderPricePoint,
		},
		"trend_analysis": map[string]any{
			"seasonal":   placeholderSeasonal,
			"popularity": placeholderPopularity,
		},
		"enhanced_query": query,
	}
}

// DegradedAnalysis is used when the generative API could not be reached at all.
func DegradedAnalysis(query string) Analysis {
	return Analysis{
		"error":          degradedAnalysisReason,
		"enhanced_query": query,
	}
}
