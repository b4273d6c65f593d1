// Package canvas is a minimal client for the Canvas LMS REST API, covering
// the handful of endpoints groupctl needs: the current-user probe, course
// student listings, group categories, groups, and group memberships.
package canvas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"groupctl/internal/logging"
)

// ClientConfig holds the connection settings for a Canvas instance.
type ClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// DefaultClientConfig returns sensible defaults for the given instance.
func DefaultClientConfig(baseURL, token string) ClientConfig {
	return ClientConfig{
		BaseURL: baseURL,
		Token:   token,
		Timeout: 30 * time.Second,
	}
}

// Client talks to one Canvas instance with one bearer token. Construct it
// once, eagerly, and pass it to everything that needs the API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Canvas client from config.
func NewClient(cfg ClientConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// BaseURL returns the instance root the client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GroupURL returns the human-facing link for a group, for the run summary.
func (c *Client) GroupURL(groupID int) string {
	return fmt.Sprintf("%s/groups/%d", c.baseURL, groupID)
}

// do issues one authenticated request and decodes the JSON response into
// out (when out is non-nil). Transport errors and non-2xx statuses are both
// normalized to a single wrapped error carrying the status and body; callers
// never see a panic or a partial decode. The response Link header is
// returned for pagination.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) (string, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	reqURL := path
	if !strings.HasPrefix(path, "http") {
		reqURL = c.baseURL + path
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.APIError("%s %s: %v", method, path, err)
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.APIError("%s %s: read body: %v", method, path, err)
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.APIError("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(respBody)))
		return "", fmt.Errorf("canvas request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	logging.APIDebug("%s %s: %d in %v", method, path, resp.StatusCode, time.Since(start))

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return "", fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return resp.Header.Get("Link"), nil
}

// Self fetches the user the token authenticates as. Used as the
// connectivity probe before a run begins.
func (c *Client) Self(ctx context.Context) (*User, error) {
	var user User
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/users/self", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListStudents returns every student enrolled in the course, following
// Link-header pagination until the listing is exhausted.
func (c *Client) ListStudents(ctx context.Context, courseID int) ([]User, error) {
	path := fmt.Sprintf("/api/v1/courses/%d/users?%s", courseID, url.Values{
		"enrollment_type[]": {"student"},
		"per_page":          {"100"},
	}.Encode())

	var students []User
	for path != "" {
		var page []User
		link, err := c.do(ctx, http.MethodGet, path, nil, &page)
		if err != nil {
			return nil, err
		}
		students = append(students, page...)
		path = nextLink(link)
	}
	logging.API("listed %d students for course %d", len(students), courseID)
	return students, nil
}

// ListGroupCategories returns all group categories of the course.
func (c *Client) ListGroupCategories(ctx context.Context, courseID int) ([]GroupCategory, error) {
	var categories []GroupCategory
	path := fmt.Sprintf("/api/v1/courses/%d/group_categories?per_page=100", courseID)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateGroupCategory creates a named group category in the course.
func (c *Client) CreateGroupCategory(ctx context.Context, courseID int, name string) (*GroupCategory, error) {
	var category GroupCategory
	path := fmt.Sprintf("/api/v1/courses/%d/group_categories", courseID)
	if _, err := c.do(ctx, http.MethodPost, path, createCategoryRequest{Name: name}, &category); err != nil {
		return nil, err
	}
	logging.API("created group category %q (id %d)", category.Name, category.ID)
	return &category, nil
}

// CreateGroup creates a group inside a category.
func (c *Client) CreateGroup(ctx context.Context, categoryID int, name, description string) (*Group, error) {
	var group Group
	path := fmt.Sprintf("/api/v1/group_categories/%d/groups", categoryID)
	req := createGroupRequest{Name: name, Description: description}
	if _, err := c.do(ctx, http.MethodPost, path, req, &group); err != nil {
		return nil, err
	}
	logging.API("created group %q (id %d)", group.Name, group.ID)
	return &group, nil
}

// AddMember adds a user to a group.
func (c *Client) AddMember(ctx context.Context, groupID, userID int) (*Membership, error) {
	var membership Membership
	path := fmt.Sprintf("/api/v1/groups/%d/memberships", groupID)
	if _, err := c.do(ctx, http.MethodPost, path, addMemberRequest{UserID: userID}, &membership); err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListMemberships returns the memberships of a group.
func (c *Client) ListMemberships(ctx context.Context, groupID int) ([]Membership, error) {
	var memberships []Membership
	path := fmt.Sprintf("/api/v1/groups/%d/memberships?per_page=100", groupID)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

// SetModerator promotes an existing membership to group moderator.
func (c *Client) SetModerator(ctx context.Context, groupID, membershipID int) error {
	path := fmt.Sprintf("/api/v1/groups/%d/memberships/%d", groupID, membershipID)
	_, err := c.do(ctx, http.MethodPut, path, updateMembershipRequest{Moderator: true}, nil)
	return err
}

// nextLink extracts the rel="next" URL from a Canvas Link header, or ""
// when the listing has no further pages.
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		section := strings.Split(part, ";")
		if len(section) < 2 {
			continue
		}
		if strings.TrimSpace(section[1]) != `rel="next"` {
			continue
		}
		u := strings.TrimSpace(section[0])
		u = strings.TrimPrefix(u, "<")
		u = strings.TrimSuffix(u, ">")
		return u
	}
	return ""
}
