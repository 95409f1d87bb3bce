package model

// SearchMode selects which columns a plain search matches against.
type SearchMode string

const (
	// SearchModeName matches name, description and JAN code.
	SearchModeName SearchMode = "name"
	// SearchModeJAN matches the JAN code only.
	SearchModeJAN SearchMode = "jan"
)

// ParseSearchMode maps the "type" query parameter to a mode.
// Anything other than "jan" searches by name.
func ParseSearchMode(s string) SearchMode {
	if SearchMode(s) == SearchModeJAN {
		return SearchModeJAN
	}
	return SearchModeName
}

// SearchField is a product column that may take part in a substring match.
type SearchField string

const (
	FieldName        SearchField = "name"
	FieldDescription SearchField = "description"
	FieldJANCode     SearchField = "jan_code"
	FieldCategory    SearchField = "category"
	FieldSubcategory SearchField = "subcategory"
)

// Fields returns the columns searched in this mode.
func (m SearchMode) Fields() []SearchField {
	if m == SearchModeJAN {
		return []SearchField{FieldJANCode}
	}
	return []SearchField{FieldName, FieldDescription, FieldJANCode}
}

// BroadFields are the columns matched by the AI-assisted search.
var BroadFields = []SearchField{FieldName, FieldDescription, FieldCategory, FieldSubcategory}

// SearchFilter is a case-insensitive substring match of Query against any of Fields.
type SearchFilter struct {
	Query  string
	Fields []SearchField
}

// MaxQueryLength is the longest query, in characters, either search endpoint accepts.
// The validate tags below must use the same value.
const MaxQueryLength = 200

// SearchParams are the validated inputs of the plain search endpoint.
type SearchParams struct {
	Query string `validate:"max=200"`
	Mode  SearchMode
}

// AISearchParams are the validated inputs of the AI search endpoint.
type AISearchParams struct {
	Query string `validate:"required,max=200"`
}

// SearchResult is a capped page of products with the size of the full match set.
type SearchResult struct {
	TotalCount int       `json:"total_count"`
	Products   []Product `json:"products"`
}

// AISearchResult pairs loosely related products with the model's analysis.
type AISearchResult struct {
	Products []ProductSummary `json:"products"`
	Analysis Analysis         `json:"ai_analysis"`
}
