// Package selfupdate checks GitHub releases for a newer studyquest build.
package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var ErrDevBuild = errors.New("cannot check updates for a development build")

const (
	defaultOwner   = "abhisek"
	defaultRepo    = "studyquest"
	defaultAPIBase = "https://api.github.com"
)

// Checker queries the release feed for the latest published version.
type Checker struct {
	owner   string
	repo    string
	apiBase string
	client  *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithAPIBase overrides the GitHub API base URL. Used in tests.
func WithAPIBase(base string) Option {
	return func(c *Checker) { c.apiBase = strings.TrimRight(base, "/") }
}

// NewChecker creates a Checker for the studyquest release repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:   defaultOwner,
		repo:    defaultRepo,
		apiBase: defaultAPIBase,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput carries the currently running version, as stamped by -ldflags.
type CheckInput struct {
	Version string
}

// CheckResult reports whether a newer release exists.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release tag and compares it against the running
// version using semver ordering.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	if input.Version == "(devel)" {
		return nil, ErrDevBuild
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBase, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch latest release: unexpected status %s", resp.Status)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release response: %w", err)
	}

	current := canonical(input.Version)
	latest := canonical(release.TagName)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("release tag %q is not a valid version", release.TagName)
	}

	return &CheckResult{
		CurrentVersion:  input.Version,
		LatestVersion:   release.TagName,
		UpdateAvailable: !semver.IsValid(current) || semver.Compare(latest, current) > 0,
		ReleaseURL:      release.HTMLURL,
	}, nil
}

// canonical normalizes a version or tag to the "vX.Y.Z" form semver expects.
func canonical(v string) string {
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
