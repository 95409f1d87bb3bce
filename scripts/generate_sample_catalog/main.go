package main

import (
	"compress/gzip"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// sampleRecord uses the column names of the store's master export.
type sampleRecord struct {
	Code        any    `json:"商品コード"`
	Name        string `json:"商品名漢字"`
	Aisle       any    `json:"通路番号"`
	Department  string `json:"部門名"`
	Category    string `json:"カテゴリ名"`
	Subcategory string `json:"サブカテゴリ名"`
}

// generate_sample_catalog writes a small product master for local runs of the importer.
// Some rows are deliberately unusable so the importer's error accounting can be seen:
// one has no aisle, one repeats a JAN code, one has a blank code.
func main() {
	out := flag.String("out", "data/catalog.json.gz", "output path; .gz suffix enables gzip")
	flag.Parse()

	records := []sampleRecord{
		{Code: "'4901234567890", Name: "おいしい牛乳 1L", Aisle: 3, Department: "日配", Category: "乳製品", Subcategory: "牛乳"},
		{Code: "'4901234567891", Name: "低脂肪乳 1L", Aisle: 3, Department: "日配", Category: "乳製品", Subcategory: "牛乳"},
		{Code: "'4901234567892", Name: "プレーンヨーグルト 400g", Aisle: 3, Department: "日配", Category: "乳製品", Subcategory: "ヨーグルト"},
		{Code: "4909876543210", Name: "超熟食パン 6枚切", Aisle: 5, Department: "パン", Category: "食パン", Subcategory: "角食"},
		{Code: "4909876543211", Name: "ロールパン 6個入", Aisle: 5, Department: "パン", Category: "菓子パン", Subcategory: "ロール"},
		{Code: "4500000000001", Name: "オレンジジュース 100%", Aisle: "4", Department: "飲料", Category: "ジュース", Subcategory: "果汁"},
		{Code: "4500000000002", Name: "天然水 2L", Aisle: "4", Department: "飲料", Category: "水", Subcategory: "ミネラルウォーター"},
		{Code: "4500000000003", Name: "緑茶 500ml", Aisle: 4, Department: "飲料", Category: "お茶", Subcategory: "緑茶"},
		{Code: "4600000000001", Name: "カップラーメン しょうゆ", Aisle: 7, Department: "加工食品", Category: "麺類", Subcategory: "カップ麺"},
		{Code: "4600000000002", Name: "レトルトカレー 中辛", Aisle: 7, Department: "加工食品", Category: "レトルト", Subcategory: "カレー"},
		{Code: "", Name: "店内調理 おにぎり鮭", Aisle: 1, Department: "惣菜", Category: "米飯", Subcategory: "おにぎり"},
		{Code: "4700000000001", Name: "通路未設定の商品", Aisle: nil, Department: "その他"},
		{Code: "4500000000001", Name: "オレンジジュース 100% (重複)", Aisle: 4, Department: "飲料", Category: "ジュース"},
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	if err := writeCatalog(*out, records); err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	fmt.Printf("Created %s with %d records\n", *out, len(records))
	fmt.Println("\nExpected import result on an empty database:")
	fmt.Println("  inserted: 11 (the JAN-less row is inserted on every run)")
	fmt.Println("  skipped:  1  (duplicate JAN 4500000000001)")
	fmt.Println("  errors:   1  (missing aisle)")
}

func writeCatalog(path string, records []sampleRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	var w io.Writer = file
	if strings.HasSuffix(path, ".gz") {
		gzipWriter := gzip.NewWriter(file)
		defer gzipWriter.Close()
		w = gzipWriter
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	return nil
}
