package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"courseboard/internal/domain"
)

// Catalog snapshot format. Keep header order EXACT: downstream sheets
// import by column position.
var catalogHeader = []string{
	"COURSE_ID",
	"TITLE",
	"DESCRIPTION",
	"INSTRUCTOR",
	"DURATION",
	"LEVEL",
	"RATING",
	"STUDENTS",
	"PROGRESS",
	"IMAGE_URL",
	"TOPICS",
}

// WriteCatalogCSV writes the fetched catalog as a snapshot CSV.
// Optional fields that the catalog omitted stay as empty cells.
func WriteCatalogCSV(w io.Writer, courses []domain.Course) error {
	cw := csv.NewWriter(w)
	// match typical spreadsheet templates
	cw.UseCRLF = true

	if err := cw.Write(catalogHeader); err != nil {
		return err
	}

	for _, c := range courses {
		if err := cw.Write(toCatalogRow(c)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toCatalogRow(c domain.Course) []string {
	students := ""
	if c.Students != nil {
		students = strconv.Itoa(*c.Students)
	}

	progress := ""
	if c.Progress != nil {
		progress = strconv.Itoa(*c.Progress)
	}

	// avoid commas to keep CSV clean
	topics := strings.Join(cleanStrings(c.Topics), " | ")

	return []string{
		c.ID,
		c.Title,
		c.Description,
		c.Instructor,
		c.Duration,
		string(c.Level),
		strconv.FormatFloat(c.Rating, 'f', -1, 64),
		students,
		progress,
		c.ImageURL,
		topics,
	}
}

func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		// avoid newlines in cells
		s = strings.ReplaceAll(s, "\n", " ")
		s = strings.ReplaceAll(s, "\r", " ")
		out = append(out, s)
	}
	return out
}
