package issues

import (
	"context"
	"fmt"

	"github.com/go-openapi/swag"
	"github.com/google/go-github/v63/github"
	"github.com/standards-watch/activities/lib/activity"
	"golang.org/x/oauth2"
)

type Config struct {
	Owner string
	Repo  string
	Token string
}

// Client files tracking issues on the positions repository.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

func NewClient(conf Config) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: conf.Token})
	tc := oauth2.NewClient(context.Background(), ts)
	return &Client{
		gh:    github.NewClient(tc),
		owner: conf.Owner,
		repo:  conf.Repo,
	}
}

// CreatePositionIssue opens the tracking issue for a new entry and returns
// its number, which the caller records as mozPositionIssue.
func (c *Client) CreatePositionIssue(ctx context.Context, entry activity.Entry) (int, error) {
	body := fmt.Sprintf(`* Specification Title: %s
* Specification URL: %s
* Caniuse.com URL (optional): %s
* Bugzilla URL (optional): %s
`, entry.Title, entry.URL, swag.StringValue(entry.CiuName), swag.StringValue(entry.MozBugURL))

	issue, _, err := c.gh.Issues.Create(ctx, c.owner, c.repo, &github.IssueRequest{
		Title: github.String(entry.Title),
		Body:  github.String(body),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create issue: %w", err)
	}
	return issue.GetNumber(), nil
}
