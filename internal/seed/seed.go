package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"aisle-finder/internal/model"
)

// Record is one entry of the catalog seed file as exported by the store system.
// Code and Aisle may be JSON strings or numbers.
type Record struct {
	Code        any    `json:"商品コード"`
	Name        string `json:"商品名漢字"`
	Aisle       any    `json:"通路番号"`
	Department  string `json:"部門名"`
	Category    string `json:"カテゴリ名"`
	Subcategory string `json:"サブカテゴリ名"`
}

// Loader defines the interface for loading catalog seed files.
type Loader interface {
	// Load reads a JSON array of records, gunzipping it first when the name ends in ".gz".
	Load(ctx context.Context, path string) ([]Record, error)
}

// Product converts the record into an insertable catalog row.
func (r Record) Product() (model.NewProduct, error) {
	if r.Aisle == nil {
		return model.NewProduct{}, fmt.Errorf("record %q has no aisle number", r.Name)
	}

	p := model.NewProduct{
		Name:        strings.TrimSpace(r.Name),
		JANCode:     cleanCode(r.Code),
		Location:    fmt.Sprintf("通路 %s", scalarString(r.Aisle)),
		Department:  r.Department,
		Category:    r.Category,
		Subcategory: r.Subcategory,
	}

	return p, nil
}

// cleanCode strips the quote characters spreadsheets wrap JAN codes in.
// A missing or blank code yields nil.
func cleanCode(v any) *string {
	if v == nil {
		return nil
	}

	code := strings.TrimSpace(strings.Trim(scalarString(v), "'"))
	if code == "" {
		return nil
	}
	return &code
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
