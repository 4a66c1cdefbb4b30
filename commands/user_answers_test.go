package commands

import (
	"strings"
	"testing"

	"github.com/kompetanse/competency-app-sheets/survey"
)

func TestPrintAnswers(t *testing.T) {
	expected := `
  a@x.com  a  2022-11-08

  Category      Topic     Knowledge  Motivation  Custom  ID
  ------------  --------  ---------  ----------  ------  -------
  Jobbrotasjon  Rotasjon                         4       j-1
  Backend       Postgres  3          5                   q-pg
  Backend       Go                                       q-go
  Ukjent        Cobol     1                              q-cobol

`

	knowledge, motivation, low := 3.0, 5.0, 1.0

	answers := survey.UserAnswerSet{
		Username:  "a",
		Email:     "a@x.com",
		UpdatedAt: "2022-11-08T12:15:51Z",
		Answers: []survey.Answer{
			{QuestionID: "q-pg", Kind: survey.Scored{Knowledge: &knowledge, Motivation: &motivation}},
			{QuestionID: "j-1", Kind: survey.CustomScale{Value: 4}},
			{QuestionID: "q-cobol", Topic: "Cobol", Category: "Ukjent", Kind: survey.Scored{Knowledge: &low}},
		},
	}

	var b strings.Builder

	printAnswers(&b, survey.LoadCatalog(questions, categories), answers)

	if b.String() != expected {
		t.Errorf("Incorrect answers\n   expected:\n%s\n   got:\n%s", expected, b.String())
	}
}
