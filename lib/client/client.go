package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	apiError "github.com/grantradar/grantradar-go/lib/api/errors"
	"github.com/grantradar/grantradar-go/lib/component"
	"github.com/grantradar/grantradar-go/lib/grant"
	db2 "github.com/grantradar/grantradar-go/lib/models/db"
	"github.com/grantradar/grantradar-go/lib/pipeline"
	"golang.org/x/sync/singleflight"
)

// ActorHeader mirrors the header the API reads the acting member from.
const ActorHeader = "X-Actor-Id"

// APIError is a non-2xx response decoded into the server's error shape.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client is a typed client for the GrantRadar API. Reads go through a
// keyed cache, concurrent cache misses for the same key are coalesced
// into a single request, and mutations invalidate the resource they
// touch.
type Client struct {
	BaseURL string
	ActorID string
	HTTP    *http.Client

	cache *cache
	group singleflight.Group
}

func NewClient(baseURL, actorID string) *Client {
	return &Client{
		BaseURL: baseURL,
		ActorID: actorID,
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: newCache(),
	}
}

func (c *Client) do(method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.ActorID != "" {
		req.Header.Set(ActorHeader, c.ActorID)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		var decoded apiError.Error
		if err := json.Unmarshal(payload, &decoded); err == nil && decoded.Message != "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: decoded.Message}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	return payload, nil
}

// get serves the key from the cache when possible. On a miss the fetch
// is funneled through singleflight so one request serves all waiters.
func (c *Client) get(key, path string, out any) error {
	if cached, ok := c.cache.get(key); ok {
		return json.Unmarshal(cached, out)
	}

	payload, err, _ := c.group.Do(key, func() (any, error) {
		fetched, err := c.do(http.MethodGet, path, nil)
		if err != nil {
			return nil, err
		}
		c.cache.set(key, fetched)
		return fetched, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(payload.([]byte), out)
}

func (c *Client) mutate(method, path string, body any, invalidate string, out any) error {
	payload, err := c.do(method, path, body)
	if err != nil {
		return err
	}
	c.cache.invalidate(invalidate)
	if out == nil || len(payload) == 0 {
		return nil
	}
	return json.Unmarshal(payload, out)
}

// InvalidateAll drops the whole cache, for callers that know the server
// state changed out of band.
func (c *Client) InvalidateAll() {
	c.cache.clear()
}

// Grants

type CreateGrantRequest struct {
	Title       string     `json:"title"`
	Funder      string     `json:"funder"`
	Description string     `json:"description,omitempty"`
	AmountMin   int64      `json:"amount_min,omitempty"`
	AmountMax   int64      `json:"amount_max,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	FocusAreas  []string   `json:"focus_areas,omitempty"`
}

type MatchRequest struct {
	FocusAreas   []string `json:"focus_areas"`
	AnnualBudget int64    `json:"annual_budget"`
}

func (c *Client) ListGrants() ([]db2.GrantDB, error) {
	var grants []db2.GrantDB
	err := c.get("grants", "/grants", &grants)
	return grants, err
}

func (c *Client) GetGrant(grantID string) (*db2.GrantDB, error) {
	var foundGrant db2.GrantDB
	if err := c.get("grants/"+grantID, "/grants/"+grantID, &foundGrant); err != nil {
		return nil, err
	}
	return &foundGrant, nil
}

func (c *Client) CreateGrant(request CreateGrantRequest) (*db2.GrantDB, error) {
	var createdGrant db2.GrantDB
	if err := c.mutate(http.MethodPost, "/grants", request, "grants", &createdGrant); err != nil {
		return nil, err
	}
	return &createdGrant, nil
}

func (c *Client) DeleteGrant(grantID string) error {
	return c.mutate(http.MethodDelete, "/grants/"+grantID, nil, "grants", nil)
}

// MatchGrants scores grants against the given profile, or against the
// stored org profile when request is nil. Matches are not cached, the
// scoring depends on the clock.
func (c *Client) MatchGrants(request *MatchRequest) ([]grant.Match, error) {
	var body any
	if request != nil {
		body = request
	}
	payload, err := c.do(http.MethodPost, "/grants/match", body)
	if err != nil {
		return nil, err
	}
	var matches []grant.Match
	if err := json.Unmarshal(payload, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Applications

type CreateApplicationRequest struct {
	GrantID string `json:"grant_id"`
	Title   string `json:"title"`
}

type UpdateApplicationRequest struct {
	Title    *string `json:"title,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Assignee *string `json:"assignee,omitempty"`
}

type MoveApplicationRequest struct {
	Stage    string `json:"stage"`
	Position int    `json:"position"`
}

func (c *Client) Board() ([]pipeline.Column, error) {
	var board []pipeline.Column
	err := c.get("applications/board", "/applications/board", &board)
	return board, err
}

func (c *Client) GetApplication(applicationID string) (*db2.ApplicationDB, error) {
	var application db2.ApplicationDB
	if err := c.get("applications/"+applicationID, "/applications/"+applicationID, &application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (c *Client) CreateApplication(request CreateApplicationRequest) (*db2.ApplicationDB, error) {
	var application db2.ApplicationDB
	if err := c.mutate(http.MethodPost, "/applications", request, "applications", &application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (c *Client) UpdateApplication(applicationID string, request UpdateApplicationRequest) (*db2.ApplicationDB, error) {
	var application db2.ApplicationDB
	if err := c.mutate(http.MethodPatch, "/applications/"+applicationID, request, "applications", &application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (c *Client) MoveApplication(applicationID string, request MoveApplicationRequest) (*db2.ApplicationDB, error) {
	var application db2.ApplicationDB
	if err := c.mutate(http.MethodPost, "/applications/"+applicationID+"/move", request, "applications", &application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (c *Client) DeleteApplication(applicationID string) error {
	return c.mutate(http.MethodDelete, "/applications/"+applicationID, nil, "applications", nil)
}

// Components

type CreateComponentRequest struct {
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Content  string   `json:"content,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type UpdateComponentRequest struct {
	Title    *string  `json:"title,omitempty"`
	Category *string  `json:"category,omitempty"`
	Content  *string  `json:"content,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type SaveVersionRequest struct {
	SnapshotName *string `json:"snapshot_name,omitempty"`
}

func (c *Client) ListComponents() ([]db2.ComponentDB, error) {
	var components []db2.ComponentDB
	err := c.get("components", "/components", &components)
	return components, err
}

func (c *Client) GetComponent(componentID string) (*db2.ComponentDB, error) {
	var foundComponent db2.ComponentDB
	if err := c.get("components/"+componentID, "/components/"+componentID, &foundComponent); err != nil {
		return nil, err
	}
	return &foundComponent, nil
}

func (c *Client) CreateComponent(request CreateComponentRequest) (*db2.ComponentDB, error) {
	var createdComponent db2.ComponentDB
	if err := c.mutate(http.MethodPost, "/components", request, "components", &createdComponent); err != nil {
		return nil, err
	}
	return &createdComponent, nil
}

func (c *Client) UpdateComponent(componentID string, request UpdateComponentRequest) (*db2.ComponentDB, error) {
	var updatedComponent db2.ComponentDB
	if err := c.mutate(http.MethodPatch, "/components/"+componentID, request, "components", &updatedComponent); err != nil {
		return nil, err
	}
	return &updatedComponent, nil
}

func (c *Client) DeleteComponent(componentID string) error {
	return c.mutate(http.MethodDelete, "/components/"+componentID, nil, "components", nil)
}

func (c *Client) SaveVersion(componentID string, request SaveVersionRequest) (*db2.ComponentVersionDB, error) {
	var version db2.ComponentVersionDB
	if err := c.mutate(http.MethodPost, "/components/"+componentID+"/versions", request, "components", &version); err != nil {
		return nil, err
	}
	return &version, nil
}

func (c *Client) ListVersions(componentID string) ([]db2.ComponentVersionDB, error) {
	var versions []db2.ComponentVersionDB
	err := c.get("components/"+componentID+"/versions", "/components/"+componentID+"/versions", &versions)
	return versions, err
}

func (c *Client) GetVersion(componentID string, versionNumber int) (*db2.ComponentVersionDB, error) {
	version := strconv.Itoa(versionNumber)
	var foundVersion db2.ComponentVersionDB
	if err := c.get("components/"+componentID+"/versions/"+version,
		"/components/"+componentID+"/versions/"+version, &foundVersion); err != nil {
		return nil, err
	}
	return &foundVersion, nil
}

func (c *Client) RestoreVersion(componentID string, versionNumber int) (*db2.ComponentVersionDB, error) {
	var version db2.ComponentVersionDB
	path := "/components/" + componentID + "/versions/" + strconv.Itoa(versionNumber) + "/restore"
	if err := c.mutate(http.MethodPost, path, nil, "components", &version); err != nil {
		return nil, err
	}
	return &version, nil
}

func (c *Client) CompareVersions(componentID string, fromVersion, toVersion int) (*component.VersionComparison, error) {
	key := fmt.Sprintf("components/%s/diff/%d/%d", componentID, fromVersion, toVersion)
	path := fmt.Sprintf("/components/%s/diff?from=%d&to=%d", componentID, fromVersion, toVersion)
	var comparison component.VersionComparison
	if err := c.get(key, path, &comparison); err != nil {
		return nil, err
	}
	return &comparison, nil
}

// Notifications

func (c *Client) ListNotifications() ([]db2.NotificationDB, error) {
	var notifications []db2.NotificationDB
	err := c.get("notifications", "/notifications", &notifications)
	return notifications, err
}

func (c *Client) UnreadCount() (int, error) {
	var response struct {
		Count int `json:"count"`
	}
	if err := c.get("notifications/unread-count", "/notifications/unread-count", &response); err != nil {
		return 0, err
	}
	return response.Count, nil
}

func (c *Client) MarkNotificationRead(notificationID string) error {
	return c.mutate(http.MethodPost, "/notifications/"+notificationID+"/read", nil, "notifications", nil)
}

func (c *Client) MarkAllNotificationsRead() error {
	return c.mutate(http.MethodPost, "/notifications/read-all", nil, "notifications", nil)
}

// Account

type UpdateAccountRequest struct {
	OrgName      *string  `json:"org_name,omitempty"`
	ContactEmail *string  `json:"contact_email,omitempty"`
	FocusAreas   []string `json:"focus_areas,omitempty"`
	AnnualBudget *int64   `json:"annual_budget,omitempty"`
	EmailDigest  *bool    `json:"email_digest,omitempty"`
}

func (c *Client) GetAccount() (*db2.AccountDB, error) {
	var foundAccount db2.AccountDB
	if err := c.get("account", "/account", &foundAccount); err != nil {
		return nil, err
	}
	return &foundAccount, nil
}

func (c *Client) UpdateAccount(request UpdateAccountRequest) (*db2.AccountDB, error) {
	var updatedAccount db2.AccountDB
	if err := c.mutate(http.MethodPatch, "/account", request, "account", &updatedAccount); err != nil {
		return nil, err
	}
	return &updatedAccount, nil
}

// Team

type AddMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *Client) ListMembers() ([]db2.TeamMemberDB, error) {
	var members []db2.TeamMemberDB
	err := c.get("team/members", "/team/members", &members)
	return members, err
}

func (c *Client) AddMember(request AddMemberRequest) (*db2.TeamMemberDB, error) {
	var member db2.TeamMemberDB
	if err := c.mutate(http.MethodPost, "/team/members", request, "team", &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *Client) ChangeMemberRole(memberID, role string) (*db2.TeamMemberDB, error) {
	var member db2.TeamMemberDB
	body := map[string]string{"role": role}
	if err := c.mutate(http.MethodPatch, "/team/members/"+memberID+"/role", body, "team", &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *Client) RemoveMember(memberID string) error {
	return c.mutate(http.MethodDelete, "/team/members/"+memberID, nil, "team", nil)
}
