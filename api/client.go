// Package api is a client for the competency survey HTTP API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kompetanse/competency-app-sheets/config"
	"github.com/kompetanse/competency-app-sheets/survey"
)

const defaultTimeout = 30 * time.Second

// Client fetches users, catalogs and answers from the survey API. Requests
// are not retried: a failed fetch is reported to the caller, which decides
// whether the run can continue without it.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Exclude    map[string]bool

	log *zap.Logger
}

// StatusError is returned for any response other than 200 OK.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v returned status %v", e.URL, e.StatusCode)
}

type attribute struct {
	Name  string `json:"Name"`
	Value any    `json:"Value"`
}

type user struct {
	Username   string      `json:"username"`
	Attributes []attribute `json:"attributes"`
}

func NewClient(cfg config.API, users config.Users, log *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	if log == nil {
		log = zap.NewNop()
	}

	exclude := map[string]bool{}
	for _, email := range users.Exclude {
		exclude[strings.TrimSpace(email)] = true
	}

	return &Client{
		BaseURL:    strings.TrimRight(cfg.URL, "/"),
		APIKey:     cfg.Key,
		HTTPClient: &http.Client{Timeout: timeout},
		Exclude:    exclude,
		log:        log,
	}
}

// Users fetches the user directory, sorted by email. Users without an email
// and excluded users are dropped.
func (c *Client) Users(ctx context.Context) ([]survey.User, error) {
	var response []user
	if err := c.get(ctx, "/users", &response); err != nil {
		return nil, err
	}

	users := []survey.User{}
	for _, u := range response {
		email := strings.TrimSpace(u.email())
		if email == "" || c.Exclude[email] {
			continue
		}

		users = append(users, survey.User{
			Username: u.Username,
			Email:    email,
		})
	}

	sort.SliceStable(users, func(i, j int) bool { return users[i].Email < users[j].Email })

	return users, nil
}

func (c *Client) Questions(ctx context.Context, catalog string) ([]survey.RawQuestion, error) {
	var questions []survey.RawQuestion
	if err := c.get(ctx, "/catalogs/"+url.PathEscape(catalog)+"/questions", &questions); err != nil {
		return nil, err
	}

	return questions, nil
}

func (c *Client) Categories(ctx context.Context, catalog string) ([]survey.Category, error) {
	var categories []survey.Category
	if err := c.get(ctx, "/catalogs/"+url.PathEscape(catalog)+"/categories", &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// Answers fetches the raw answer sets for all users.
func (c *Client) Answers(ctx context.Context) ([]survey.RawUserAnswers, error) {
	var answers []survey.RawUserAnswers
	if err := c.get(ctx, "/answers", &answers); err != nil {
		return nil, err
	}

	return answers, nil
}

// NewestAnswers fetches the most recent answer set for a single user.
func (c *Client) NewestAnswers(ctx context.Context, username string) (*survey.RawUserAnswers, error) {
	var answers survey.RawUserAnswers
	if err := c.get(ctx, "/answers/"+url.PathEscape(username)+"/newest", &answers); err != nil {
		return nil, err
	}

	return &answers, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	uri := c.BaseURL + path

	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return fmt.Errorf("error creating request (%w)", err)
	}

	rq.Header.Set("x-api-key", c.APIKey)
	rq.Header.Set("Accept", "application/json")

	c.log.Debug("fetching", zap.String("url", uri))

	response, err := c.HTTPClient.Do(rq)
	if err != nil {
		c.log.Warn("request failed", zap.String("url", uri), zap.Error(err))
		return fmt.Errorf("request to %v failed (%w)", uri, err)
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		io.Copy(io.Discard, response.Body)
		c.log.Warn("unexpected response status", zap.String("url", uri), zap.Int("status", response.StatusCode))
		return &StatusError{URL: uri, StatusCode: response.StatusCode}
	}

	if err := json.NewDecoder(response.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid response from %v (%w)", uri, err)
	}

	return nil
}

// email returns the 'email' attribute if there is one, otherwise the value of
// the first attribute.
func (u user) email() string {
	for _, a := range u.Attributes {
		if strings.EqualFold(a.Name, "email") {
			if s, ok := a.Value.(string); ok {
				return s
			}
		}
	}

	if len(u.Attributes) > 0 {
		if s, ok := u.Attributes[0].Value.(string); ok {
			return s
		}
	}

	return ""
}
