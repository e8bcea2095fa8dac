package cli

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

	"github.com/gorilla/websocket"

	"github.com/junaidrashid-git/kula-api/auth"
	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/ordercart"
	"github.com/junaidrashid-git/kula-api/profile"
)

// APIError is an error answer from the server. Message is user-facing.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Client talks to the Kula HTTP API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ ordercart.Submitter = (*Client)(nil)

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// AuthResult is the answer to login and register.
type AuthResult struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	Session models.Session `json:"session"`
	Screens []auth.Screen  `json:"screens"`
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	var res AuthResult
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email": email, "password": password,
	}, &res)
	return res, err
}

func (c *Client) Register(ctx context.Context, creds models.Credentials) (AuthResult, error) {
	var res AuthResult
	err := c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"name":             creds.Name,
		"email":            creds.Email,
		"password":         creds.Password,
		"confirm_password": creds.ConfirmPassword,
	}, &res)
	return res, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Menu is the menu screen as served by GET /user/menu.
type Menu struct {
	Title string            `json:"title"`
	Items []models.MenuItem `json:"items"`
	Error string            `json:"error"`
}

func (c *Client) Menu(ctx context.Context) (Menu, error) {
	var m Menu
	err := c.do(ctx, http.MethodGet, "/user/menu", nil, &m)
	return m, err
}

// SubmitOrder places one order line. The session is carried by the token.
func (c *Client) SubmitOrder(ctx context.Context, sess models.Session, item *models.MenuItem, quantity int, location, notes string) (models.OrderAck, error) {
	if item == nil {
		return models.OrderAck{}, ordercart.ErrNoItemSelected
	}
	var res struct {
		Order models.OrderAck `json:"order"`
	}
	err := c.do(ctx, http.MethodPost, "/user/orders", map[string]interface{}{
		"item_id":  item.ID,
		"quantity": quantity,
		"location": location,
		"notes":    notes,
	}, &res)
	return res.Order, err
}

// CartView is the answer of GET /user/cart.
type CartView struct {
	Cart  models.Cart `json:"cart"`
	Error string      `json:"error"`
}

func (c *Client) Cart(ctx context.Context) (CartView, error) {
	var v CartView
	err := c.do(ctx, http.MethodGet, "/user/cart", nil, &v)
	return v, err
}

// WatchCart streams the cart to fn until ctx ends, fn fails or the server
// closes the stream.
func (c *Client) WatchCart(ctx context.Context, fn func(models.Cart) error) error {
	u, err := url.Parse(c.baseURL + "/user/cart/ws")
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.token)
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), header)
	if err != nil {
		if resp != nil {
			return decodeError(resp)
		}
		return err
	}
	defer conn.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			conn.Close()
		case <-stop:
		}
	}()

	for {
		var cart models.Cart
		if err := conn.ReadJSON(&cart); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return err
		}
		if err := fn(cart); err != nil {
			return err
		}
	}
}

// ProfileView is the answer of GET /user/.
type ProfileView struct {
	Profile profile.View   `json:"profile"`
	Session models.Session `json:"session"`
}

func (c *Client) Profile(ctx context.Context) (ProfileView, error) {
	var v ProfileView
	err := c.do(ctx, http.MethodGet, "/user/", nil, &v)
	return v, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	json.NewDecoder(resp.Body).Decode(&body)
	if body.Error == "" {
		body.Error = resp.Status
	}
	return &APIError{Status: resp.StatusCode, Message: body.Error}
}
