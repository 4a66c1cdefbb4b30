package survey

import (
	"fmt"
	"sort"
)

// CatalogHeader is the column header for Catalog.Rows.
var CatalogHeader = []string{
	"Index", "Topic", "Text", "Type", "ID", "Category ID", "Category Index", "Category", "Description",
}

// Catalog is the ordered, category-joined view of a question catalog snapshot.
type Catalog struct {
	Categories   []Category // ordered by index, then text
	CategoryByID map[string]Category
	Knowledge    []Question // knowledge/motivation questions in column order
	Jobs         []Question // custom-scale questions in column order

	// Dropped lists the ids of questions discarded because their category id
	// did not match any category.
	Dropped []string

	questions []RawQuestion
}

// LoadCatalog joins the raw questions to their categories and orders both
// question groups for presentation. Questions whose category is unknown are
// dropped and listed in Dropped.
func LoadCatalog(questions []RawQuestion, categories []Category) Catalog {
	catalog := Catalog{
		Categories:   make([]Category, len(categories)),
		CategoryByID: map[string]Category{},
		Knowledge:    []Question{},
		Jobs:         []Question{},
		Dropped:      []string{},
		questions:    questions,
	}

	copy(catalog.Categories, categories)
	sort.SliceStable(catalog.Categories, func(i, j int) bool {
		p := catalog.Categories[i]
		q := catalog.Categories[j]
		if p.Index == q.Index {
			return p.Text < q.Text
		}

		return p.Index < q.Index
	})

	for _, c := range categories {
		catalog.CategoryByID[c.ID] = c
	}

	// ... knowledge/motivation questions: question index within category order
	knowledge := filter(questions, KnowledgeMotivation)
	sort.SliceStable(knowledge, func(i, j int) bool { return knowledge[i].Index < knowledge[j].Index })

	catalog.Knowledge = catalog.join(knowledge)
	sort.SliceStable(catalog.Knowledge, func(i, j int) bool {
		p := catalog.Knowledge[i].Category
		q := catalog.Knowledge[j].Category
		if p.Index == q.Index {
			return p.Text < q.Text
		}

		return p.Index < q.Index
	})

	// ... custom scale questions: joined in id order, presented in category name order
	jobs := filter(questions, CustomScaleLabels)
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })

	catalog.Jobs = catalog.join(jobs)
	sort.SliceStable(catalog.Jobs, func(i, j int) bool {
		return catalog.Jobs[i].Category.Text < catalog.Jobs[j].Category.Text
	})

	return catalog
}

// Width returns the column count of every answer matrix row built from this
// catalog.
func (c Catalog) Width() int {
	return 3 + len(c.Jobs) + 2*len(c.Knowledge)
}

// Columns returns the questions in answer column order, i.e. the custom scale
// questions followed by the knowledge/motivation questions twice.
func (c Catalog) Columns() []Question {
	columns := make([]Question, 0, len(c.Jobs)+2*len(c.Knowledge))

	columns = append(columns, c.Jobs...)
	columns = append(columns, c.Knowledge...)
	columns = append(columns, c.Knowledge...)

	return columns
}

// Header returns the column labels for the answer columns as three rows:
// category, topic and question id.
func (c Catalog) Header() [][]any {
	columns := c.Columns()
	header := [][]any{
		make([]any, len(columns)),
		make([]any, len(columns)),
		make([]any, len(columns)),
	}

	for i, q := range columns {
		header[0][i] = q.Category.Text
		header[1][i] = q.Topic
		header[2][i] = q.ID
	}

	return header
}

// Rows lists every catalog question with its category details. Unlike the
// column lists, questions with an unknown category are included with blank
// category fields.
func (c Catalog) Rows() [][]string {
	rows := [][]string{}

	for _, q := range c.questions {
		row := []string{
			fmt.Sprintf("%v", q.Index),
			q.Topic,
			q.Text,
			string(q.Type),
			q.ID,
			"", "", "", "",
		}

		if category, ok := c.CategoryByID[q.CategoryID]; ok {
			row[5] = category.ID
			row[6] = fmt.Sprintf("%v", category.Index)
			row[7] = category.Text
			row[8] = category.Description
		}

		rows = append(rows, row)
	}

	return rows
}

func (c *Catalog) join(questions []RawQuestion) []Question {
	joined := []Question{}

	for _, q := range questions {
		category, ok := c.CategoryByID[q.CategoryID]
		if !ok {
			c.Dropped = append(c.Dropped, q.ID)
			continue
		}

		joined = append(joined, Question{
			RawQuestion: q,
			Category:    category,
		})
	}

	return joined
}

func filter(questions []RawQuestion, qtype QuestionType) []RawQuestion {
	list := []RawQuestion{}
	for _, q := range questions {
		if q.Type == qtype {
			list = append(list, q)
		}
	}

	return list
}
