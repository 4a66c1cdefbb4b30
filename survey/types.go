package survey

// QuestionType is the scoring scheme of a catalog question.
type QuestionType string

const (
	KnowledgeMotivation QuestionType = "knowledgeMotivation"
	CustomScaleLabels   QuestionType = "customScaleLabels"
)

// RawQuestion is a question as returned by the /catalogs/{id}/questions endpoint.
type RawQuestion struct {
	Index      int          `json:"index" yaml:"index"`
	Type       QuestionType `json:"type" yaml:"type"`
	CategoryID string       `json:"categoryID" yaml:"category-id"`
	Topic      string       `json:"topic" yaml:"topic"`
	Text       string       `json:"text" yaml:"text"`
	ID         string       `json:"id" yaml:"id"`
}

type Category struct {
	Index       int    `json:"index" yaml:"index"`
	ID          string `json:"id" yaml:"id"`
	Text        string `json:"text" yaml:"text"`
	Description string `json:"description" yaml:"description"`
}

// Question is a catalog question joined to its category.
type Question struct {
	RawQuestion
	Category Category
}

type User struct {
	Username string
	Email    string
}

// RawAnswerQuestion is the question reference nested in a raw answer.
type RawAnswerQuestion struct {
	ID       string `json:"id"`
	Topic    string `json:"topic"`
	Category string `json:"category"`
}

// RawAnswer is a single answer record as returned by the /answers endpoints.
// Exactly which of the value fields are present depends on the question
// type, so all of them are optional.
type RawAnswer struct {
	Knowledge        *float64           `json:"knowledge,omitempty"`
	Motivation       *float64           `json:"motivation,omitempty"`
	CustomScaleValue *float64           `json:"customScaleValue,omitempty"`
	UpdatedAt        string             `json:"updatedAt,omitempty"`
	Question         *RawAnswerQuestion `json:"question,omitempty"`
}

// RawUserAnswers is one user's answer set as returned by the /answers endpoints.
type RawUserAnswers struct {
	Username         string      `json:"username"`
	Email            string      `json:"email"`
	FormDefinitionID string      `json:"formDefinitionID"`
	UpdatedAt        string      `json:"updatedAt"`
	Answers          []RawAnswer `json:"answers"`
}

// AnswerKind is either Scored or CustomScale.
type AnswerKind interface {
	answerKind()
}

// Scored is the value of a knowledge/motivation answer. Either scale may be
// missing.
type Scored struct {
	Knowledge  *float64
	Motivation *float64
}

// CustomScale is the value of a custom-scale (e.g. job rotation) answer.
type CustomScale struct {
	Value float64
}

func (Scored) answerKind()      {}
func (CustomScale) answerKind() {}

type Answer struct {
	QuestionID string
	Topic      string
	Category   string
	UpdatedAt  string
	Kind       AnswerKind
}

// UserAnswerSet is one user's normalized answers, at most one per question id.
type UserAnswerSet struct {
	Username  string
	Email     string
	UpdatedAt string
	Answers   []Answer
}

// Blocklist is the set of emails excluded from the answer matrix.
type Blocklist map[string]bool

// Result is the output of BuildMatrix.
type Result struct {
	Rows        [][]any
	NotAnswered []string
}
