package models

import "strings"

// VacancyFields is the fixed column order of the CSV output
var VacancyFields = []string{"title", "company", "technologies"}

// Vacancy represents one job vacancy parsed from a detail page
type Vacancy struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Technologies []string `json:"technologies"`
}

// Row renders the vacancy in VacancyFields order.
// Technologies share one cell; tokens never contain commas because they are
// produced by splitting on commas.
func (v Vacancy) Row() []string {
	return []string{v.Title, v.Company, strings.Join(v.Technologies, ",")}
}
