package repository

import (
	"fmt"
	"strings"

	"aisle-finder/internal/model"

	"golang.org/x/text/unicode/norm"
)

// searchColumns whitelists the columns a SearchFilter may reference.
var searchColumns = map[model.SearchField]string{
	model.FieldName:        "name",
	model.FieldDescription: "description",
	model.FieldJANCode:     "jan_code",
	model.FieldCategory:    "category",
	model.FieldSubcategory: "subcategory",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern turns a query into an ILIKE pattern matching it as a literal substring.
func LikePattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

// likeArgs returns the $1 and $2 arguments of a predicate built by buildPredicate:
// the query as typed, and the query under NFKC so "１Ｌ" and "1L" or "ｺｰﾗ" and "コーラ"
// compare equal once the column is normalised the same way.
func likeArgs(query string) []any {
	return []any{LikePattern(query), LikePattern(norm.NFKC.String(query))}
}

// buildPredicate renders the filter as an OR of ILIKE clauses. Each column matches
// either the raw pattern ($1) or, NFKC-normalised, the normalised pattern ($2).
func buildPredicate(filter model.SearchFilter) (string, error) {
	if len(filter.Fields) == 0 {
		return "", fmt.Errorf("search filter has no fields")
	}

	clauses := make([]string, 0, len(filter.Fields))
	for _, f := range filter.Fields {
		column, ok := searchColumns[f]
		if !ok {
			return "", fmt.Errorf("unsupported search field %q", f)
		}
		clauses = append(clauses,
			column+` ILIKE $1 ESCAPE '\' OR normalize(`+column+`, NFKC) ILIKE $2 ESCAPE '\'`)
	}

	return "(" + strings.Join(clauses, " OR ") + ")", nil
}
