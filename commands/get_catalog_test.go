package commands

import (
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/kompetanse/competency-app-sheets/survey"
)

func TestCatalogToTSV(t *testing.T) {
	expected := `Index	Topic	Text	Type	ID	Category ID	Category Index	Category	Description
2	Go	Go	knowledgeMotivation	q-go	c-be	1	Backend	Server side
1	Postgres	Relasjonsdatabaser	knowledgeMotivation	q-pg	c-be	1	Backend	Server side
1	Rotasjon	Rotasjon	customScaleLabels	j-1	c-jobs	2	Jobbrotasjon	Job rotation
`

	var f strings.Builder

	if err := catalogToTSV(&f, survey.LoadCatalog(questions, categories)); err != nil {
		t.Fatalf("Unexpected error writing catalog TSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestCatalogToYAML(t *testing.T) {
	expected := catalogYAML{
		Categories: []categoryYAML{
			{ID: "c-be", Index: 1, Text: "Backend", Description: "Server side"},
			{ID: "c-jobs", Index: 2, Text: "Jobbrotasjon", Description: "Job rotation"},
		},
		Jobs: []questionYAML{
			{ID: "j-1", Index: 1, Topic: "Rotasjon", Text: "Rotasjon", Category: "Jobbrotasjon"},
		},
		Knowledge: []questionYAML{
			{ID: "q-pg", Index: 1, Topic: "Postgres", Text: "Relasjonsdatabaser", Category: "Backend"},
			{ID: "q-go", Index: 2, Topic: "Go", Text: "Go", Category: "Backend"},
		},
	}

	var f strings.Builder

	if err := catalogToYAML(&f, survey.LoadCatalog(questions, categories)); err != nil {
		t.Fatalf("Unexpected error writing catalog YAML (%v)", err)
	}

	var catalog catalogYAML
	if err := yaml.Unmarshal([]byte(f.String()), &catalog); err != nil {
		t.Fatalf("Invalid YAML (%v)\n%s", err, f.String())
	}

	if !reflect.DeepEqual(catalog, expected) {
		t.Errorf("Incorrect catalog\n   expected: %+v\n   got:      %+v", expected, catalog)
	}

	if strings.Contains(f.String(), "dropped:") {
		t.Errorf("Unexpected 'dropped' section in YAML\n%s", f.String())
	}
}
