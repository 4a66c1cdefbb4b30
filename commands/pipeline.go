package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kompetanse/competency-app-sheets/api"
	"github.com/kompetanse/competency-app-sheets/config"
	"github.com/kompetanse/competency-app-sheets/survey"
)

type run struct {
	id      string
	updated time.Time
	catalog survey.Catalog
	result  survey.Result
}

// fetchAndBuild fetches a snapshot from the survey API and transforms it into
// the answer matrix and not-answered roster.
func fetchAndBuild(ctx context.Context, conf *config.Config, blocklist survey.Blocklist) run {
	id := uuid.New().String()

	log := log.With("run", id)
	log.Infow("fetching survey data", "api", conf.API.URL, "catalog", conf.Catalog.ID)

	client := api.NewClient(conf.API, conf.Users, log.Desugar())
	snapshot := client.Snapshot(ctx, conf.Catalog.ID)

	catalog := survey.LoadCatalog(snapshot.Questions, snapshot.Categories)
	for _, q := range catalog.Dropped {
		log.Debugw("question has no matching category", "question", q)
	}

	answers := survey.NormalizeAll(snapshot.Answers)
	for _, a := range answers {
		if a.UpdatedAt == "" {
			log.Debugw("answer set has no timestamp", "user", a.Username)
		}
	}

	result := survey.BuildMatrix(catalog, answers, snapshot.Users, blocklist)

	log.Infow("built answer matrix",
		"knowledge-questions", len(catalog.Knowledge),
		"job-questions", len(catalog.Jobs),
		"dropped-questions", len(catalog.Dropped),
		"rows", len(result.Rows),
		"not-answered", len(result.NotAnswered))

	return run{
		id:      id,
		updated: time.Now(),
		catalog: catalog,
		result:  result,
	}
}

func lastUpdated(t time.Time) string {
	return "Last updated: " + t.Format("2006-01-02 15:04:05")
}
