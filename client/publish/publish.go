package publish

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/sporadisk/mylog/client"
)

// Client uploads rendered reports to a remote endpoint, authenticating
// with an OAuth2 client-credentials grant.
type Client struct {
	// Configuration
	Endpoint     string
	TokenURL     string
	ClientID     string
	ClientSecret string

	// State
	HttpClient *client.HttpClient
	oauthConf  *clientcredentials.Config
}

func (c *Client) Init() error {
	if c.Endpoint == "" {
		return fmt.Errorf("publish endpoint is not configured")
	}

	if c.TokenURL == "" {
		return fmt.Errorf("token URL is not configured")
	}

	c.HttpClient = client.NewHttpClient(10 * time.Second)
	c.oauthConf = &clientcredentials.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     c.TokenURL,
	}
	return nil
}

// Publish posts one rendered HTML report under the given document name.
func (c *Client) Publish(ctx context.Context, name string, html []byte) error {
	token, err := c.oauthConf.Token(ctx)
	if err != nil {
		return fmt.Errorf("fetching access token: %w", err)
	}

	headers := map[string]string{
		"Authorization":   "Bearer " + token.AccessToken,
		"X-Document-Name": name,
	}

	resp, err := c.HttpClient.Post(ctx, c.Endpoint, "text/html; charset=utf-8", html, headers)
	if err != nil {
		return fmt.Errorf("posting report: %w", err)
	}

	if resp.Code < 200 || resp.Code > 299 {
		return fmt.Errorf("report upload rejected with status %d: %s", resp.Code, string(resp.Body))
	}

	return nil
}
