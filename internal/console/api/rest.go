package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/roadfleet/roadfleet/internal/common"
)

// TokenSource yields the current bearer token, or "" when no session exists.
type TokenSource func() string

// UnauthorizedHook is invoked once for every response that comes back 401.
// The hook must not issue API calls of its own.
type UnauthorizedHook func(ctx context.Context)

// RESTClient talks JSON over HTTP to the rental platform.
type RESTClient struct {
	baseURL        string
	http           *http.Client
	token          TokenSource
	onUnauthorized UnauthorizedHook
}

func NewRESTClient(baseURL string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		token:   func() string { return "" },
	}
}

// SetTokenSource installs the provider of the current bearer token.
func (c *RESTClient) SetTokenSource(fn TokenSource) {
	c.token = fn
}

// SetUnauthorizedHook installs the forced-logout callback. The adapter calls
// it at most once per failing response; re-entry is impossible as long as
// the hook itself stays off the network, which the session store guarantees
// by only touching local storage.
func (c *RESTClient) SetUnauthorizedHook(fn UnauthorizedHook) {
	c.onUnauthorized = fn
}

// apiMessage is the error envelope every endpoint uses on failure.
type apiMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *RESTClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return common.ErrorUnauthorized
	}

	if resp.StatusCode >= 400 {
		var msg apiMessage
		_ = json.Unmarshal(data, &msg)
		if resp.StatusCode < 500 && msg.Message != "" {
			return fmt.Errorf("%w: %s", common.ErrorValidation, msg.Message)
		}
		if msg.Message != "" {
			return fmt.Errorf("%w: %s", common.ErrorInternal, msg.Message)
		}
		return fmt.Errorf("%w: unexpected status %s", common.ErrorInternal, resp.Status)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (c *RESTClient) Login(ctx context.Context, email string, password []byte) (string, Identity, error) {
	reqBody := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: string(password)}

	var resp struct {
		Success bool     `json:"success"`
		Token   string   `json:"token"`
		User    Identity `json:"user"`
		Message string   `json:"message"`
	}

	if err := c.do(ctx, http.MethodPost, "/api/auth/admin/login", nil, reqBody, &resp); err != nil {
		return "", Identity{}, err
	}
	if !resp.Success || resp.Token == "" {
		msg := resp.Message
		if msg == "" {
			msg = "invalid credentials"
		}
		return "", Identity{}, fmt.Errorf("%w: %s", common.ErrorUnauthorized, msg)
	}
	return resp.Token, resp.User, nil
}

func (c *RESTClient) ListBookings(ctx context.Context) ([]Booking, error) {
	var resp struct {
		Success bool      `json:"success"`
		Data    []Booking `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/bookings", nil, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: booking list rejected", common.ErrorInternal)
	}
	return resp.Data, nil
}

func (c *RESTClient) UpdateBookingStatus(ctx context.Context, id string, status string) (Booking, error) {
	reqBody := struct {
		Status string `json:"status"`
	}{Status: status}

	var resp struct {
		Success bool    `json:"success"`
		Data    Booking `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/admin/bookings/"+id, nil, reqBody, &resp); err != nil {
		return Booking{}, err
	}
	return resp.Data, nil
}

func (q VehicleQuery) values() url.Values {
	v := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("limit", strconv.Itoa(limit))
	if q.Brand != "" {
		v.Set("brand", q.Brand)
	}
	if q.VehicleType != "" {
		v.Set("vehicleType", q.VehicleType)
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	return v
}

func (c *RESTClient) ListVehicles(ctx context.Context, q VehicleQuery) ([]Vehicle, Pagination, error) {
	var resp struct {
		Success    bool       `json:"success"`
		Data       []Vehicle  `json:"data"`
		Pagination Pagination `json:"pagination"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/vehicles", q.values(), nil, &resp); err != nil {
		return nil, Pagination{}, err
	}
	return resp.Data, resp.Pagination, nil
}

func (c *RESTClient) CreateVehicle(ctx context.Context, draft Vehicle) (Vehicle, error) {
	var resp struct {
		Success bool    `json:"success"`
		Data    Vehicle `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/vehicles", nil, draft, &resp); err != nil {
		return Vehicle{}, err
	}
	return resp.Data, nil
}

func (c *RESTClient) UpdateVehicle(ctx context.Context, id string, patch VehiclePatch) (Vehicle, error) {
	var resp struct {
		Success bool    `json:"success"`
		Data    Vehicle `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/admin/vehicles/"+id, nil, patch, &resp); err != nil {
		return Vehicle{}, err
	}
	return resp.Data, nil
}

func (c *RESTClient) DeleteVehicle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/vehicles/"+id, nil, nil, nil)
}

func (c *RESTClient) VehicleImageUploadURL(ctx context.Context, id string) (string, string, error) {
	var resp struct {
		Success bool   `json:"success"`
		Key     string `json:"key"`
		URL     string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/vehicles/"+id+"/image-url", nil, nil, &resp); err != nil {
		return "", "", err
	}
	return resp.Key, resp.URL, nil
}

func (c *RESTClient) ListUsers(ctx context.Context) ([]User, error) {
	var resp struct {
		Success bool   `json:"success"`
		Data    []User `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *RESTClient) UpdateUserDetails(ctx context.Context, id string, patch UserDetailsPatch) (User, error) {
	var resp struct {
		Success bool `json:"success"`
		Data    User `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/admin/users/"+id+"/details", nil, patch, &resp); err != nil {
		return User{}, err
	}
	return resp.Data, nil
}

func (c *RESTClient) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/users/"+id, nil, nil, nil)
}

func (c *RESTClient) Stats(ctx context.Context) (DashboardStats, error) {
	var resp struct {
		Success bool           `json:"success"`
		Data    DashboardStats `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, nil, &resp); err != nil {
		return DashboardStats{}, err
	}
	return resp.Data, nil
}

func (c *RESTClient) Analytics(ctx context.Context) (Analytics, error) {
	// The analytics endpoint returns the summary as the response body
	// itself, without the data envelope.
	var resp Analytics
	if err := c.do(ctx, http.MethodGet, "/api/admin/analytics", nil, nil, &resp); err != nil {
		return Analytics{}, err
	}
	return resp, nil
}
