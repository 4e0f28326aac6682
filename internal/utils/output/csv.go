package output

import (
	"encoding/csv"
	"os"

	"github.com/law-makers/vacancies/internal/engine"
	"github.com/law-makers/vacancies/pkg/models"
)

// SaveCSV writes vacancies to a CSV file, truncating any existing content.
// The header row is models.VacancyFields; rows follow input order.
func SaveCSV(vacancies []models.Vacancy, filepath string) (err error) {
	file, err := os.Create(filepath)
	if err != nil {
		return engine.IOError(filepath, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = engine.IOError(filepath, cerr)
		}
	}()

	writer := csv.NewWriter(file)

	if err := writer.Write(models.VacancyFields); err != nil {
		return engine.IOError(filepath, err)
	}
	for _, v := range vacancies {
		if err := writer.Write(v.Row()); err != nil {
			return engine.IOError(filepath, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return engine.IOError(filepath, err)
	}
	return nil
}
