package ai

import "fmt"

const promptTemplate = `あなたはスーパーマーケットの商品検索アシスタントです。
次の検索キーワードについて、買い物客の意図を分析してください。

検索キーワード: %q

以下のJSON形式のみで回答してください。説明文やコードブロックは不要です。
{
  "search_intent": {
    "purpose": "購入目的",
    "usage_scene": "利用シーン"
  },
  "recommendations": {
    "primary": ["おすすめ商品"],
    "related": ["関連商品"]
  },
  "feature_highlights": {
    "key_features": ["注目すべき特徴"],
    "price_point": "想定価格帯"
  },
  "trend_analysis": {
    "seasonal": "季節性",
    "popularity": "人気動向"
  },
  "enhanced_query": "検索に適した拡張キーワード"
}`

// BuildPrompt embeds the shopper's query in the analysis prompt.
func BuildPrompt(query string) string {
	return fmt.Sprintf(promptTemplate, query)
}
