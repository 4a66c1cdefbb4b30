package commands

import (
	"github.com/kompetanse/competency-app-sheets/survey"
)

var categories = []survey.Category{
	{Index: 1, ID: "c-be", Text: "Backend", Description: "Server side"},
	{Index: 2, ID: "c-jobs", Text: "Jobbrotasjon", Description: "Job rotation"},
}

var questions = []survey.RawQuestion{
	{Index: 2, Type: survey.KnowledgeMotivation, CategoryID: "c-be", Topic: "Go", Text: "Go", ID: "q-go"},
	{Index: 1, Type: survey.KnowledgeMotivation, CategoryID: "c-be", Topic: "Postgres", Text: "Relasjonsdatabaser", ID: "q-pg"},
	{Index: 1, Type: survey.CustomScaleLabels, CategoryID: "c-jobs", Topic: "Rotasjon", Text: "Rotasjon", ID: "j-1"},
}

// result is the answer matrix for the catalog: columns are j-1, q-pg, q-go
// (knowledge) and q-pg, q-go (motivation).
var result = survey.Result{
	Rows: [][]any{
		{"a@x.com", "a", "2022-11-08", 4.0, 3.0, "", 5.0, ""},
	},
	NotAnswered: []string{"b@x.com", "c@x.com"},
}
