package commands

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kompetanse/competency-app-sheets/api"
	"github.com/kompetanse/competency-app-sheets/survey"
)

var GetCatalogCmd = GetCatalog{
	file:   time.Now().Format("catalog-2006-01-02T150405.tsv"),
	format: "tsv",
}

type GetCatalog struct {
	file   string
	format string
}

type catalogYAML struct {
	Categories []categoryYAML `yaml:"categories"`
	Jobs       []questionYAML `yaml:"jobs"`
	Knowledge  []questionYAML `yaml:"knowledge"`
	Dropped    []string       `yaml:"dropped,omitempty"`
}

type categoryYAML struct {
	ID          string `yaml:"id"`
	Index       int    `yaml:"index"`
	Text        string `yaml:"text"`
	Description string `yaml:"description,omitempty"`
}

type questionYAML struct {
	ID       string `yaml:"id"`
	Index    int    `yaml:"index"`
	Topic    string `yaml:"topic"`
	Text     string `yaml:"text,omitempty"`
	Category string `yaml:"category"`
}

func (cmd *GetCatalog) Name() string {
	return "get-catalog"
}

func (cmd *GetCatalog) Description() string {
	return "Retrieves the question catalog from the survey API and stores it to a local file"
}

func (cmd *GetCatalog) Usage() string {
	return "--file <file>"
}

func (cmd *GetCatalog) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] get-catalog [options] --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the categories and questions for the configured catalog and stores them as either")
	fmt.Println("  a TSV file (one row per question) or a YAML file (categories and questions in column order)")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    competency-app-sheets get-catalog --file "catalog.tsv"`)
	fmt.Println(`    competency-app-sheets get-catalog --format yaml --file "catalog.yaml"`)
	fmt.Println()
}

func (cmd *GetCatalog) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("get-catalog", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "Output file. Defaults to 'catalog-<yyyy-mm-ddTHHmmss>.tsv'")
	flagset.StringVar(&cmd.format, "format", cmd.format, "Output format (tsv or yaml)")

	return flagset
}

func (cmd *GetCatalog) Execute(args ...any) error {
	options := args[0].(*Options)

	conf, err := configure(options)
	if err != nil {
		return err
	}

	// ... check parameters
	if err := conf.Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	var write func(io.Writer, survey.Catalog) error
	switch strings.ToLower(strings.TrimSpace(cmd.format)) {
	case "tsv":
		write = catalogToTSV
	case "yaml", "yml":
		write = catalogToYAML
	default:
		return fmt.Errorf("invalid --format '%s' - expected 'tsv' or 'yaml'", cmd.format)
	}

	ctx := context.Background()
	client := api.NewClient(conf.API, conf.Users, log.Desugar())

	categories, err := client.Categories(ctx, conf.Catalog.ID)
	if err != nil {
		return fmt.Errorf("unable to retrieve categories (%w)", err)
	}

	questions, err := client.Questions(ctx, conf.Catalog.ID)
	if err != nil {
		return fmt.Errorf("unable to retrieve questions (%w)", err)
	}

	catalog := survey.LoadCatalog(questions, categories)
	for _, q := range catalog.Dropped {
		warnf("Question %v has no matching category", q)
	}

	if err := save(cmd.file, func(w io.Writer) error { return write(w, catalog) }); err != nil {
		return err
	}

	infof("Retrieved catalog %v (%v categories, %v questions) to file %s", conf.Catalog.ID, len(categories), len(questions), cmd.file)

	return nil
}

func catalogToTSV(f io.Writer, catalog survey.Catalog) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	w.Write(survey.CatalogHeader)
	for _, record := range catalog.Rows() {
		w.Write(record)
	}

	w.Flush()

	return w.Error()
}

func catalogToYAML(f io.Writer, catalog survey.Catalog) error {
	questions := func(list []survey.Question) []questionYAML {
		entries := []questionYAML{}
		for _, q := range list {
			entries = append(entries, questionYAML{
				ID:       q.ID,
				Index:    q.Index,
				Topic:    q.Topic,
				Text:     q.Text,
				Category: q.Category.Text,
			})
		}

		return entries
	}

	doc := catalogYAML{
		Categories: []categoryYAML{},
		Jobs:       questions(catalog.Jobs),
		Knowledge:  questions(catalog.Knowledge),
		Dropped:    catalog.Dropped,
	}

	for _, c := range catalog.Categories {
		doc.Categories = append(doc.Categories, categoryYAML{
			ID:          c.ID,
			Index:       c.Index,
			Text:        c.Text,
			Description: c.Description,
		})
	}

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		return err
	}

	return encoder.Close()
}
