package loader

import (
	"io"
	"strings"

	"coursectl/pkg/catalog"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML reads courses from the rows of an HTML table.
// Cells follow the same column order as the text format: ID, name, then prerequisites.
// Header rows (th cells only) and rows without any td cell are ignored.
func ParseHTML(r io.Reader) ([]catalog.Course, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var courses []catalog.Course

	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		var cells []string
		row.Find("td").Each(func(j int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}

		course := catalog.NewCourse(field(cells, 0), field(cells, 1))
		for _, prereq := range cells[min(2, len(cells)):] {
			// Tables are padded to the widest row
			if prereq != "" {
				course.AddPrerequisite(prereq)
			}
		}
		courses = append(courses, course)
	})

	return courses, nil
}
