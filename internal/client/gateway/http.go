package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the current session token for protected calls. An
// empty string means no token is attached.
type TokenSource func() string

// HTTPGateway talks JSON to the account server.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
	token   TokenSource

	// OnUnauthenticated, when set, runs after any 401 response. The
	// gateway itself never touches session state.
	OnUnauthenticated func()
}

func NewHTTPGateway(baseURL string, timeout time.Duration, token TokenSource) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		token:   token,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updatePasswordRequest struct {
	CurrentPassword      string `json:"current_password"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type deleteAccountRequest struct {
	CurrentPassword string `json:"current_password"`
}

type errorBody struct {
	Errors []string `json:"errors"`
}

// Register creates an account and returns the session token issued for it.
func (g *HTTPGateway) Register(ctx context.Context, email, password string) (string, error) {
	resp, err := g.do(ctx, http.MethodPost, "/users", false, credentialsRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", g.asError(resp, false)
	}
	return tokenFromHeader(resp)
}

// Login authenticates and returns a fresh session token.
func (g *HTTPGateway) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := g.do(ctx, http.MethodPost, "/users/sign_in", false, credentialsRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", g.asError(resp, false)
	}
	return tokenFromHeader(resp)
}

// UpdatePassword changes the signed-in account's password.
func (g *HTTPGateway) UpdatePassword(ctx context.Context, currentPassword, newPassword, confirmation string) error {
	resp, err := g.do(ctx, http.MethodPut, "/users", true, updatePasswordRequest{
		CurrentPassword:      currentPassword,
		Password:             newPassword,
		PasswordConfirmation: confirmation,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return g.asError(resp, true)
	}
	return nil
}

// DeleteAccount permanently removes the signed-in account.
func (g *HTTPGateway) DeleteAccount(ctx context.Context, currentPassword string) error {
	resp, err := g.do(ctx, http.MethodDelete, "/users", true, deleteAccountRequest{CurrentPassword: currentPassword})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return g.asError(resp, true)
	}
	return nil
}

// Ping checks server reachability via the health endpoint.
func (g *HTTPGateway) Ping(ctx context.Context) error {
	resp, err := g.do(ctx, http.MethodGet, "/healthz", false, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return g.asError(resp, false)
	}
	return nil
}

func (g *HTTPGateway) do(ctx context.Context, method, path string, auth bool, body any) (*http.Response, error) {
	var buf *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindTransport, Message: err.Error()}
		}
		buf = bytes.NewReader(b)
	} else {
		buf = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, buf)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	if auth {
		if tok := g.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("server unavailable: %v", err)}
	}
	return resp, nil
}

// asError converts a non-2xx response into *Error, consuming the body.
// The hook only fires for authenticated calls: a 401 there means the
// current session is dead, while a 401 from sign_in is just a wrong
// password and must not disturb existing state.
func (g *HTTPGateway) asError(resp *http.Response, auth bool) error {
	var eb errorBody
	_ = json.NewDecoder(resp.Body).Decode(&eb)

	message := resp.Status
	if len(eb.Errors) > 0 {
		message = eb.Errors[0]
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if auth && g.OnUnauthenticated != nil {
			g.OnUnauthenticated()
		}
		return &Error{Kind: KindUnauthenticated, Message: message}
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return &Error{Kind: KindValidation, Message: message}
	default:
		return &Error{Kind: KindServer, Message: message}
	}
}

// tokenFromHeader reads the issued token from the Authorization response
// header, with or without the "Bearer " prefix. A 2xx response without a
// token is a broken server and must not be persisted as a session.
func tokenFromHeader(resp *http.Response) (string, error) {
	tok := strings.TrimPrefix(resp.Header.Get("Authorization"), "Bearer ")
	if tok == "" {
		return "", &Error{Kind: KindServer, Message: "missing session token in response"}
	}
	return tok, nil
}
