package survey

import (
	"fmt"
	"reflect"
	"sort"
	"testing"
)

func scored(id string, knowledge, motivation float64) RawAnswer {
	return RawAnswer{
		Knowledge:  number(knowledge),
		Motivation: number(motivation),
		Question:   &RawAnswerQuestion{ID: id},
	}
}

func custom(id string, v float64) RawAnswer {
	return RawAnswer{
		CustomScaleValue: number(v),
		Question:         &RawAnswerQuestion{ID: id},
	}
}

func directory(emails ...string) []User {
	users := []User{}
	for _, e := range emails {
		users = append(users, User{Username: e[:1], Email: e})
	}

	return users
}

func TestBuildMatrix(t *testing.T) {
	catalog := LoadCatalog(questions, categories)

	answers := NormalizeAll([]RawUserAnswers{
		{
			Username:  "b",
			Email:     "b@x.com",
			UpdatedAt: "2022-11-02T08:00:00.000Z",
			Answers: []RawAnswer{
				scored("q-go", 4, 5),
				custom("j-1", 2),
			},
		},
		{
			Username:  "a",
			Email:     "a@x.com",
			UpdatedAt: "2022-11-01T08:00:00.000Z",
			Answers: []RawAnswer{
				scored("q-figma", 1, 2),
				{Knowledge: number(3), Question: &RawAnswerQuestion{ID: "q-pg"}},
				custom("j-2", 5),
				scored("q-unknown", 5, 5),
			},
		},
	})

	expected := [][]any{
		{"a@x.com", "a", "2022-11-01", 5.0, "", 1.0, "", 3.0, "", 2.0, "", "", ""},
		{"b@x.com", "b", "2022-11-02", "", 2.0, "", "", "", 4.0, "", "", "", 5.0},
	}

	result := BuildMatrix(catalog, answers, directory("a@x.com", "b@x.com", "c@x.com"), nil)

	if !reflect.DeepEqual(result.Rows, expected) {
		t.Errorf("Incorrect answer matrix\n   expected: %v\n   got:      %v", expected, result.Rows)
	}

	if !reflect.DeepEqual(result.NotAnswered, []string{"c@x.com"}) {
		t.Errorf("Incorrect not-answered list - expected:%v, got:%v", []string{"c@x.com"}, result.NotAnswered)
	}
}

func TestBuildMatrixRowWidth(t *testing.T) {
	catalog := LoadCatalog(questions, categories)

	answers := NormalizeAll([]RawUserAnswers{
		{Email: "a@x.com", Answers: []RawAnswer{scored("q-go", 1, 1)}},
		{Email: "b@x.com"},
		{Email: "c@x.com", Answers: []RawAnswer{custom("j-1", 1), custom("j-2", 2), scored("q-react", 3, 3)}},
	})

	result := BuildMatrix(catalog, answers, nil, nil)

	if len(result.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %v", len(result.Rows))
	}

	for _, row := range result.Rows {
		if len(row) != catalog.Width() {
			t.Errorf("Incorrect row width for %v - expected:%v, got:%v", row[0], catalog.Width(), len(row))
		}

		for i, v := range row {
			if v == nil {
				t.Errorf("Row %v has nil cell at column %v", row[0], i)
			}
		}
	}
}

func TestBuildMatrixSortsByEmail(t *testing.T) {
	catalog := LoadCatalog(questions, categories)

	raw := []RawUserAnswers{}
	for _, e := range []string{"d@x.com", "b@x.com", "a@x.com", "c@x.com", "B@x.com"} {
		raw = append(raw, RawUserAnswers{Email: e, Answers: []RawAnswer{scored("q-go", 1, 1)}})
	}

	result := BuildMatrix(catalog, NormalizeAll(raw), nil, nil)

	emails := []string{}
	for _, row := range result.Rows {
		emails = append(emails, row[0].(string))
	}

	if !sort.StringsAreSorted(emails) {
		t.Errorf("Answer matrix not sorted by email - got %v", emails)
	}
}

func TestBuildMatrixWithBlocklist(t *testing.T) {
	catalog := LoadCatalog(questions, categories)

	answers := NormalizeAll([]RawUserAnswers{
		{Username: "a", Email: "a@x.com", Answers: []RawAnswer{scored("q-go", 1, 1)}},
	})

	result := BuildMatrix(catalog, answers, directory("a@x.com", "b@x.com", "c@x.com"), NewBlocklist("c@x.com"))

	if len(result.Rows) != 1 || result.Rows[0][0] != "a@x.com" {
		t.Errorf("Expected single row for a@x.com, got %v", result.Rows)
	}

	if !reflect.DeepEqual(result.NotAnswered, []string{"b@x.com"}) {
		t.Errorf("Incorrect not-answered list - expected:%v, got:%v", []string{"b@x.com"}, result.NotAnswered)
	}
}

func TestBuildMatrixBlocklistedUserWithAnswers(t *testing.T) {
	catalog := LoadCatalog(questions, categories)

	answers := NormalizeAll([]RawUserAnswers{
		{Email: "a@x.com", Answers: []RawAnswer{scored("q-go", 1, 1)}},
		{Email: "c@x.com", Answers: []RawAnswer{scored("q-go", 2, 2)}},
	})

	blocklist := NewBlocklist("c@x.com")
	result := BuildMatrix(catalog, answers, directory("a@x.com", "b@x.com", "c@x.com"), blocklist)

	rows := map[string]bool{}
	for _, row := range result.Rows {
		email := row[0].(string)
		rows[email] = true
		if blocklist.Contains(email) {
			t.Errorf("Blocklisted user %v in answer matrix", email)
		}
	}

	for _, email := range result.NotAnswered {
		if rows[email] {
			t.Errorf("User %v in both answer matrix and not-answered list", email)
		}

		if blocklist.Contains(email) {
			t.Errorf("Blocklisted user %v in not-answered list", email)
		}
	}

	if !reflect.DeepEqual(result.NotAnswered, []string{"b@x.com"}) {
		t.Errorf("Incorrect not-answered list - expected:%v, got:%v", []string{"b@x.com"}, result.NotAnswered)
	}
}

func TestBuildMatrixNotAnsweredIsUnique(t *testing.T) {
	catalog := LoadCatalog(nil, nil)

	result := BuildMatrix(catalog, nil, directory("a@x.com", "b@x.com", "a@x.com"), nil)

	if !reflect.DeepEqual(result.NotAnswered, []string{"a@x.com", "b@x.com"}) {
		t.Errorf("Incorrect not-answered list - got %v", result.NotAnswered)
	}
}

func TestBuildMatrixFirstAnswerWins(t *testing.T) {
	catalog := LoadCatalog(questions, categories)

	answers := NormalizeAll([]RawUserAnswers{
		{
			Email: "a@x.com",
			Answers: []RawAnswer{
				{Knowledge: number(3), Question: &RawAnswerQuestion{ID: "q-go"}},
				{Knowledge: number(5), Question: &RawAnswerQuestion{ID: "q-go"}},
			},
		},
	})

	result := BuildMatrix(catalog, answers, nil, nil)

	// q-go is the last knowledge column
	column := 3 + len(catalog.Jobs) + len(catalog.Knowledge) - 1
	if v := result.Rows[0][column]; v != 3.0 {
		t.Errorf("Expected first knowledge value (3), got %v", v)
	}
}

func TestBuildMatrixIsIdempotent(t *testing.T) {
	catalog := LoadCatalog(questions, categories)

	answers := NormalizeAll([]RawUserAnswers{
		{Email: "b@x.com", UpdatedAt: "2022-11-02T08:00:00.000Z", Answers: []RawAnswer{scored("q-go", 4, 5), custom("j-1", 2)}},
		{Email: "a@x.com", Answers: []RawAnswer{scored("q-figma", 1, 2)}},
	})

	users := directory("a@x.com", "b@x.com", "c@x.com", "d@x.com")
	blocklist := NewBlocklist("d@x.com")

	p := BuildMatrix(catalog, answers, users, blocklist)
	q := BuildMatrix(catalog, answers, users, blocklist)

	if fmt.Sprintf("%#v", p) != fmt.Sprintf("%#v", q) {
		t.Errorf("BuildMatrix is not idempotent\n   first:  %#v\n   second: %#v", p, q)
	}
}

func TestBuildMatrixWithUnknownCategory(t *testing.T) {
	list := []RawQuestion{
		{Index: 1, Type: KnowledgeMotivation, CategoryID: "c-backend", ID: "q-1"},
		{Index: 2, Type: KnowledgeMotivation, CategoryID: "c-nowhere", ID: "q-2"},
	}

	catalog := LoadCatalog(list, categories)
	answers := NormalizeAll([]RawUserAnswers{
		{Email: "a@x.com", Answers: []RawAnswer{scored("q-1", 1, 2), scored("q-2", 3, 4)}},
	})

	result := BuildMatrix(catalog, answers, nil, nil)

	expected := [][]any{{"a@x.com", "", "", 1.0, 2.0}}
	if !reflect.DeepEqual(result.Rows, expected) {
		t.Errorf("Incorrect answer matrix\n   expected: %v\n   got:      %v", expected, result.Rows)
	}
}

func TestParseBlocklist(t *testing.T) {
	values := [][]any{
		{"a@x.com"},
		{},
		{"  b@x.com  ", ""},
		{12},
	}

	expected := Blocklist{"a@x.com": true, "b@x.com": true}

	if blocklist := ParseBlocklist(values); !reflect.DeepEqual(blocklist, expected) {
		t.Errorf("Incorrect blocklist\n   expected: %v\n   got:      %v", expected, blocklist)
	}
}
