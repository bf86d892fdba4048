package ads

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storeops/internal/config"
	"storeops/internal/logger"
)

// Keyword planning defaults: Austin, Texas and English.
const (
	defaultGeoTarget = "geoTargetConstants/21167"
	defaultLanguage  = "languageConstants/1000"

	defaultTokenURL = "https://oauth2.googleapis.com/token"
	defaultAPIBase  = "https://googleads.googleapis.com/v16"
)

// ErrNoSeeds is returned when every seed text is empty.
var ErrNoSeeds = errors.New("ads: at least one of product title, description, tags, or metadata is required")

// KeywordIdea is one suggestion returned by the keyword planner.
type KeywordIdea struct {
	Text               string `json:"text"`
	AvgMonthlySearches int64  `json:"avg_monthly_searches"`
	Competition        string `json:"competition"`
}

// Client calls the Google Ads keyword planning REST API with refresh-token
// OAuth. It is an optional integration: construct it only when the
// credential group is present.
type Client struct {
	cfg        config.GoogleAdsConfig
	httpClient *http.Client
	logger     *logger.Logger

	// Overridable for tests.
	tokenURL string
	apiBase  string
}

func New(cfg config.GoogleAdsConfig, log *logger.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:   log,
		tokenURL: defaultTokenURL,
		apiBase:  defaultAPIBase,
	}
}

// SuggestKeywords generates keyword ideas from the given seed texts (product
// title, description, tags, metadata). Empty seeds are dropped; at least one
// non-empty seed is required.
func (c *Client) SuggestKeywords(seeds []string) ([]KeywordIdea, error) {
	keywords := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		if s := strings.TrimSpace(seed); s != "" {
			keywords = append(keywords, s)
		}
	}
	if len(keywords) == 0 {
		return nil, ErrNoSeeds
	}

	token, err := c.accessToken()
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"language":             defaultLanguage,
		"geoTargetConstants":   []string{defaultGeoTarget},
		"includeAdultKeywords": false,
		"keywordPlanNetwork":   "GOOGLE_SEARCH_AND_PARTNERS",
		"keywordSeed": map[string]interface{}{
			"keywords": keywords,
		},
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keyword request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/customers/%s:generateKeywordIdeas", c.apiBase, c.cfg.CustomerID)
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("developer-token", c.cfg.DeveloperToken)
	if c.cfg.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.cfg.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("keyword ideas request failed: %d - %s", resp.StatusCode, string(body))
	}

	var ideasResp struct {
		Results []struct {
			Text               string `json:"text"`
			KeywordIdeaMetrics struct {
				AvgMonthlySearches int64  `json:"avgMonthlySearches,string"`
				Competition        string `json:"competition"`
			} `json:"keywordIdeaMetrics"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ideasResp); err != nil {
		return nil, fmt.Errorf("failed to decode keyword ideas: %w", err)
	}

	ideas := make([]KeywordIdea, 0, len(ideasResp.Results))
	for _, result := range ideasResp.Results {
		ideas = append(ideas, KeywordIdea{
			Text:               result.Text,
			AvgMonthlySearches: result.KeywordIdeaMetrics.AvgMonthlySearches,
			Competition:        result.KeywordIdeaMetrics.Competition,
		})
	}
	c.logger.Info("Generated %d keyword ideas", len(ideas))
	return ideas, nil
}

// accessToken exchanges the refresh token for a short-lived access token.
// Tokens are not cached; each suggestion call performs its own exchange.
func (c *Client) accessToken() (string, error) {
	form := url.Values{
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"refresh_token": {c.cfg.RefreshToken},
		"grant_type":    {"refresh_token"},
	}

	resp, err := c.httpClient.PostForm(c.tokenURL, form)
	if err != nil {
		return "", fmt.Errorf("failed to refresh access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token refresh failed: %d - %s", resp.StatusCode, string(body))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", errors.New("ads: token response contained no access token")
	}
	return tokenResp.AccessToken, nil
}
