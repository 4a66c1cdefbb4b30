package survey

import (
	"reflect"
	"testing"
)

func number(v float64) *float64 {
	return &v
}

func TestNormalize(t *testing.T) {
	raw := RawUserAnswers{
		Username:  "ola",
		Email:     "ola@example.com",
		UpdatedAt: "2022-11-08T12:15:51.688Z",
		Answers: []RawAnswer{
			{Knowledge: number(3), Motivation: number(2), UpdatedAt: "2022-11-01T10:00:00.000Z", Question: &RawAnswerQuestion{ID: "q-go", Topic: "Go", Category: "Backend"}},
			{CustomScaleValue: number(4), Question: &RawAnswerQuestion{ID: "j-1", Topic: "Rotasjon", Category: "Jobbrotasjon"}},
			{Knowledge: number(1)},
		},
	}

	expected := UserAnswerSet{
		Username:  "ola",
		Email:     "ola@example.com",
		UpdatedAt: "2022-11-08T12:15:51.688Z",
		Answers: []Answer{
			{QuestionID: "q-go", Topic: "Go", Category: "Backend", UpdatedAt: "2022-11-01T10:00:00.000Z", Kind: Scored{Knowledge: number(3), Motivation: number(2)}},
			{QuestionID: "j-1", Topic: "Rotasjon", Category: "Jobbrotasjon", Kind: CustomScale{Value: 4}},
		},
	}

	set := Normalize(raw)

	if !reflect.DeepEqual(set, expected) {
		t.Errorf("Incorrect answer set\n   expected: %+v\n   got:      %+v", expected, set)
	}
}

func TestNormalizeKeepsFirstDuplicate(t *testing.T) {
	raw := RawUserAnswers{
		Email: "kari@example.com",
		Answers: []RawAnswer{
			{Knowledge: number(3), Question: &RawAnswerQuestion{ID: "q-go"}},
			{Knowledge: number(5), Motivation: number(5), Question: &RawAnswerQuestion{ID: "q-go"}},
			{CustomScaleValue: number(1), Question: &RawAnswerQuestion{ID: "j-1"}},
			{CustomScaleValue: number(2), Question: &RawAnswerQuestion{ID: "j-1"}},
		},
	}

	set := Normalize(raw)

	if len(set.Answers) != 2 {
		t.Fatalf("Expected 2 answers, got %v", len(set.Answers))
	}

	scored, ok := set.Answers[0].Kind.(Scored)
	if !ok {
		t.Fatalf("Expected scored answer, got %T", set.Answers[0].Kind)
	}

	if scored.Knowledge == nil || *scored.Knowledge != 3 {
		t.Errorf("Expected first knowledge value (3), got %v", scored.Knowledge)
	}

	if scored.Motivation != nil {
		t.Errorf("Expected no motivation value from the first answer, got %v", *scored.Motivation)
	}

	if custom, ok := set.Answers[1].Kind.(CustomScale); !ok || custom.Value != 1 {
		t.Errorf("Expected first custom scale value (1), got %v", set.Answers[1].Kind)
	}
}

func TestNormalizeDuplicateAcrossKinds(t *testing.T) {
	raw := RawUserAnswers{
		Answers: []RawAnswer{
			{CustomScaleValue: number(2), Question: &RawAnswerQuestion{ID: "q-1"}},
			{Knowledge: number(4), Question: &RawAnswerQuestion{ID: "q-1"}},
		},
	}

	set := Normalize(raw)

	if len(set.Answers) != 1 {
		t.Fatalf("Expected 1 answer, got %v", len(set.Answers))
	}

	if _, ok := set.Answers[0].Kind.(CustomScale); !ok {
		t.Errorf("Expected first (custom scale) answer to be kept, got %T", set.Answers[0].Kind)
	}
}

func TestNormalizeDiscardsAnswersWithoutQuestion(t *testing.T) {
	raw := RawUserAnswers{
		Answers: []RawAnswer{
			{Knowledge: number(1)},
			{Knowledge: number(2), Question: &RawAnswerQuestion{}},
		},
	}

	if set := Normalize(raw); len(set.Answers) != 0 {
		t.Errorf("Expected no answers, got %v", set.Answers)
	}
}

func TestUserAnswerSetDate(t *testing.T) {
	tests := []struct {
		updated  string
		expected string
	}{
		{"2022-11-08T12:15:51.688Z", "2022-11-08"},
		{"2022-11-08", "2022-11-08"},
		{"", ""},
	}

	for _, test := range tests {
		set := UserAnswerSet{UpdatedAt: test.updated}
		if date := set.Date(); date != test.expected {
			t.Errorf("Incorrect date for '%v' - expected:'%v', got:'%v'", test.updated, test.expected, date)
		}
	}
}

func TestNormalizeAll(t *testing.T) {
	raw := []RawUserAnswers{
		{Email: "b@example.com"},
		{Email: "a@example.com"},
	}

	list := NormalizeAll(raw)

	if len(list) != 2 || list[0].Email != "b@example.com" || list[1].Email != "a@example.com" {
		t.Errorf("NormalizeAll did not preserve order - got %v", list)
	}
}
