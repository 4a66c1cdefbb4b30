package api

import (
	"context"

	"go.uber.org/zap"

	"github.com/kompetanse/competency-app-sheets/survey"
)

// Snapshot is everything fetched from the survey API for a single run.
type Snapshot struct {
	Users      []survey.User
	Questions  []survey.RawQuestion
	Categories []survey.Category
	Answers    []survey.RawUserAnswers
}

// Snapshot fetches the user directory, the catalog and all answers. A failed
// fetch is logged and leaves the corresponding list empty so that the rest of
// the run degrades (e.g. a missing catalog gives a narrower matrix) instead
// of aborting.
func (c *Client) Snapshot(ctx context.Context, catalog string) Snapshot {
	snapshot := Snapshot{
		Users:      []survey.User{},
		Questions:  []survey.RawQuestion{},
		Categories: []survey.Category{},
		Answers:    []survey.RawUserAnswers{},
	}

	if users, err := c.Users(ctx); err != nil {
		c.log.Warn("user directory unavailable", zap.Error(err))
	} else {
		snapshot.Users = users
	}

	if categories, err := c.Categories(ctx, catalog); err != nil {
		c.log.Warn("categories unavailable", zap.String("catalog", catalog), zap.Error(err))
	} else if categories != nil {
		snapshot.Categories = categories
	}

	if questions, err := c.Questions(ctx, catalog); err != nil {
		c.log.Warn("questions unavailable", zap.String("catalog", catalog), zap.Error(err))
	} else if questions != nil {
		snapshot.Questions = questions
	}

	if answers, err := c.Answers(ctx); err != nil {
		c.log.Warn("answers unavailable", zap.Error(err))
	} else if answers != nil {
		snapshot.Answers = answers
	}

	c.log.Info("fetched survey snapshot",
		zap.Int("users", len(snapshot.Users)),
		zap.Int("categories", len(snapshot.Categories)),
		zap.Int("questions", len(snapshot.Questions)),
		zap.Int("answers", len(snapshot.Answers)))

	return snapshot
}
