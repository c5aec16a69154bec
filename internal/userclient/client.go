package userclient

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to the external user service. The trading service only ever
// needs the boolean existence check.
type Client struct {
	baseURL string
	apiPath string
	http    *http.Client
}

func New(baseURL, apiPath string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiPath: apiPath,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) UserExists(userID uuid.UUID) (bool, error) {
	resp, err := c.http.Get(fmt.Sprintf("%s%s/%s", c.baseURL, c.apiPath, userID))
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode >= 300 {
		return false, fmt.Errorf("user service returned %d", resp.StatusCode)
	}
	return true, nil
}
