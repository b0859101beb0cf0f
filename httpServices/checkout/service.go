package checkout

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// Client talks to the external payment gateway. The gateway is an external
// collaborator; its failures surface as errors and are never retried here.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// CreateSession asks the gateway for a hosted checkout page and returns the
// session id plus the redirect URL.
func (c *Client) CreateSession(req SessionRequest) (*SessionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+"/v1/checkout/sessions", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errors.New("checkout API returned non-OK status: " + resp.Status)
	}

	var apiResp SessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// GetSession fetches the settled state of a checkout session.
func (c *Client) GetSession(sessionID string) (*SessionStatus, error) {
	httpReq, err := http.NewRequest("GET", c.baseURL+"/v1/checkout/sessions/"+sessionID, nil)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("checkout API returned non-OK status: " + resp.Status)
	}

	var apiResp SessionStatus
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
