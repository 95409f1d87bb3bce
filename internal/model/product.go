package model

// Product is a catalog entry as exposed by the search endpoint.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	JANCode     *string `json:"jan_code"`
	Description string  `json:"description"`
	Department  string  `json:"department"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
}

// Summary drops the description for the AI search response.
func (p Product) Summary() ProductSummary {
	return ProductSummary{
		ID:          p.ID,
		Name:        p.Name,
		Location:    p.Location,
		JANCode:     p.JANCode,
		Department:  p.Department,
		Category:    p.Category,
		Subcategory: p.Subcategory,
	}
}

// ProductSummary is the reduced product shape returned alongside an AI analysis.
type ProductSummary struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	JANCode     *string `json:"jan_code"`
	Department  string  `json:"department"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
}

// NewProduct is a catalog row produced by the bulk importer.
type NewProduct struct {
	Name        string  `validate:"required,max=200"`
	JANCode     *string `validate:"omitempty,max=13"`
	Location    string  `validate:"required,max=100"`
	Department  string  `validate:"max=100"`
	Category    string  `validate:"max=100"`
	Subcategory string  `validate:"max=100"`
}
