package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kompetanse/competency-app-sheets/api"
	"github.com/kompetanse/competency-app-sheets/survey"
)

var UserAnswersCmd = UserAnswers{
	username: "",
}

type UserAnswers struct {
	username string
}

func (cmd *UserAnswers) Name() string {
	return "user-answers"
}

func (cmd *UserAnswers) Description() string {
	return "Displays the newest answers for a single user"
}

func (cmd *UserAnswers) Usage() string {
	return "--user <username>"
}

func (cmd *UserAnswers) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] user-answers --user <username>\n", APP)
	fmt.Println()
	fmt.Println("  Fetches the newest answer set for a user and displays it against the question catalog,")
	fmt.Println("  in the same column order as the answer matrix")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    competency-app-sheets user-answers --user "ola.nordmann"`)
	fmt.Println()
}

func (cmd *UserAnswers) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("user-answers", flag.ExitOnError)

	flagset.StringVar(&cmd.username, "user", cmd.username, "Survey username")

	return flagset
}

func (cmd *UserAnswers) Execute(args ...any) error {
	options := args[0].(*Options)

	conf, err := configure(options)
	if err != nil {
		return err
	}

	// ... check parameters
	if err := conf.Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.username) == "" {
		return fmt.Errorf("--user is a required option")
	}

	ctx := context.Background()
	client := api.NewClient(conf.API, conf.Users, log.Desugar())
	snapshot := client.Snapshot(ctx, conf.Catalog.ID)
	catalog := survey.LoadCatalog(snapshot.Questions, snapshot.Categories)

	raw, err := client.NewestAnswers(ctx, strings.TrimSpace(cmd.username))
	if err != nil {
		return fmt.Errorf("unable to retrieve answers for '%v' (%w)", cmd.username, err)
	}

	answers := survey.Normalize(*raw)

	printAnswers(os.Stdout, catalog, answers)

	return nil
}

// printAnswers displays a user's answers in answer matrix column order. Answers
// to questions that are not in the catalog are listed last.
func printAnswers(w io.Writer, catalog survey.Catalog, answers survey.UserAnswerSet) {
	index := map[string]survey.Answer{}
	for _, a := range answers.Answers {
		index[a.QuestionID] = a
	}

	records := [][]string{}
	listed := map[string]bool{}

	record := func(q survey.Question, a survey.Answer) {
		knowledge, motivation, value := "", "", ""
		switch v := a.Kind.(type) {
		case survey.Scored:
			knowledge, motivation = optional(v.Knowledge), optional(v.Motivation)
		case survey.CustomScale:
			value = format(v.Value)
		}

		records = append(records, []string{q.Category.Text, q.Topic, knowledge, motivation, value, q.ID})
		listed[q.ID] = true
	}

	for _, q := range catalog.Jobs {
		record(q, index[q.ID])
	}

	for _, q := range catalog.Knowledge {
		record(q, index[q.ID])
	}

	for _, a := range answers.Answers {
		if !listed[a.QuestionID] {
			q := survey.Question{
				RawQuestion: survey.RawQuestion{ID: a.QuestionID, Topic: a.Topic},
				Category:    survey.Category{Text: a.Category},
			}

			record(q, a)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %v  %v  %v\n", answers.Email, answers.Username, answers.Date())
	fmt.Fprintln(w)

	makeTable([]string{"Category", "Topic", "Knowledge", "Motivation", "Custom", "ID"}, records).write(w)
	fmt.Fprintln(w)
}

func optional(v *float64) string {
	if v == nil {
		return ""
	}

	return format(*v)
}
