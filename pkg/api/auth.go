package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token. The raw body is returned; use
// TokenFromLogin to extract the token.
func (c *Client) Login(ctx context.Context, email, password string) (raw json.RawMessage, err error) {
	var body []byte
	var reqBody []byte
	reqBody, err = json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		err = errors.Wrap(err, "failed to marshal login request")
		return raw, err
	}

	body, err = c.do(ctx, "login", http.MethodPost, "/auth/login", "", reqBody, false)
	if err != nil {
		return raw, err
	}

	if !json.Valid(body) {
		err = &Error{Kind: KindDecode, Op: "login", Err: errors.New("response body is not valid JSON")}
		return raw, err
	}

	raw = json.RawMessage(body)
	return raw, err
}

type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
	Data        *struct {
		Token       string `json:"token"`
		AccessToken string `json:"access_token"`
	} `json:"data"`
}

// TokenFromLogin extracts the bearer token from a login response. It accepts
// {"token"}, {"access_token"} and the same fields nested under "data".
func TokenFromLogin(raw json.RawMessage) (token string, err error) {
	var resp loginResponse
	err = json.Unmarshal(raw, &resp)
	if err != nil {
		err = errors.Wrap(err, "failed to parse login response")
		return token, err
	}

	candidates := []string{resp.Token, resp.AccessToken}
	if resp.Data != nil {
		candidates = append(candidates, resp.Data.Token, resp.Data.AccessToken)
	}
	for _, candidate := range candidates {
		if candidate != "" {
			token = candidate
			return token, err
		}
	}

	err = errors.New("no token in login response")
	return token, err
}
