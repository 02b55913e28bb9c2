package wikimedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const userAgent = "curator/1.0 (https://github.com/artatlas/curator)"

// Client searches Wikimedia Commons for artwork images
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	FileBase   string
}

// New creates a new Wikimedia Commons client
func New() *Client {
	return &Client{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		BaseURL:  "https://commons.wikimedia.org/w/api.php",
		FileBase: "https://commons.wikimedia.org/wiki/Special:FilePath/",
	}
}

// FindImageURL searches the Commons file namespace for an image of the
// given artwork and returns a Special:FilePath URL for the best match.
// An empty string with a nil error means no file matched.
func (c *Client) FindImageURL(ctx context.Context, title, artist string) (string, error) {
	query := title
	if artist != "" && artist != "Unknown" {
		query = title + " " + artist
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srnamespace", "6")
	params.Set("srlimit", "1")
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to query Wikimedia Commons: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("commons API returned status %d", resp.StatusCode)
	}

	var result struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode Commons response: %w", err)
	}

	if len(result.Query.Search) == 0 {
		return "", nil
	}

	name := strings.TrimPrefix(result.Query.Search[0].Title, "File:")
	return c.FileBase + url.PathEscape(name), nil
}
