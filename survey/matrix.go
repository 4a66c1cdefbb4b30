package survey

import (
	"sort"
	"strings"
)

// BuildMatrix joins the normalized answer sets to the catalog and produces the
// answer matrix and the roster of directory users who have not answered.
//
// Each row is [email, username, date, custom scale values..., knowledge
// values..., motivation values...] and every row has catalog.Width() cells.
// Missing values are empty strings. Rows are sorted by email and rows for
// blocklisted emails are removed.
//
// The not-answered roster is the directory emails, in directory order, less
// the emails in the matrix and less the blocklist. Blocklisted users never
// appear in either list.
func BuildMatrix(catalog Catalog, answers []UserAnswerSet, directory []User, blocklist Blocklist) Result {
	rows := make([][]any, 0, len(answers))

	for _, u := range answers {
		rows = append(rows, makeRow(catalog, u))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i][0].(string) < rows[j][0].(string)
	})

	matrix := [][]any{}
	answered := map[string]bool{}
	for _, row := range rows {
		email := row[0].(string)
		if !blocklist.Contains(email) {
			matrix = append(matrix, row)
			answered[email] = true
		}
	}

	notAnswered := []string{}
	listed := map[string]bool{}
	for _, u := range directory {
		if !answered[u.Email] && !listed[u.Email] && !blocklist.Contains(u.Email) {
			notAnswered = append(notAnswered, u.Email)
			listed[u.Email] = true
		}
	}

	return Result{
		Rows:        matrix,
		NotAnswered: notAnswered,
	}
}

func makeRow(catalog Catalog, u UserAnswerSet) []any {
	jobs := map[string]CustomScale{}
	scored := map[string]Scored{}

	for _, a := range u.Answers {
		switch v := a.Kind.(type) {
		case CustomScale:
			jobs[a.QuestionID] = v
		case Scored:
			scored[a.QuestionID] = v
		}
	}

	row := make([]any, 0, catalog.Width())
	row = append(row, u.Email, u.Username, u.Date())

	for _, q := range catalog.Jobs {
		if v, ok := jobs[q.ID]; ok {
			row = append(row, v.Value)
		} else {
			row = append(row, "")
		}
	}

	for _, q := range catalog.Knowledge {
		row = append(row, cell(scored[q.ID].Knowledge))
	}

	for _, q := range catalog.Knowledge {
		row = append(row, cell(scored[q.ID].Motivation))
	}

	return row
}

func cell(v *float64) any {
	if v == nil {
		return ""
	}

	return *v
}

// NewBlocklist builds a Blocklist from a list of emails, ignoring blanks.
func NewBlocklist(emails ...string) Blocklist {
	blocklist := Blocklist{}
	for _, email := range emails {
		if e := strings.TrimSpace(email); e != "" {
			blocklist[e] = true
		}
	}

	return blocklist
}

// ParseBlocklist flattens a worksheet range into a Blocklist. Non-string and
// blank cells are ignored.
func ParseBlocklist(values [][]any) Blocklist {
	emails := []string{}
	for _, row := range values {
		for _, v := range row {
			if s, ok := v.(string); ok {
				emails = append(emails, s)
			}
		}
	}

	return NewBlocklist(emails...)
}

func (b Blocklist) Contains(email string) bool {
	return b[email]
}
