package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/station-farmer/internal/config"
	"github.com/MKhiriev/station-farmer/internal/logger"
	"github.com/MKhiriev/station-farmer/internal/utils"
	"github.com/MKhiriev/station-farmer/models"
	"github.com/go-resty/resty/v2"
)

const (
	authPath        = "/userprofile/api/v1/users/auth"
	farmStatusPath  = "/farming/api/v1/farming/%d/running"
	farmStartPath   = "/farming/api/v1/farming/start"
	farmClaimPath   = "/farming/api/v1/farming/claim"
	questListPath   = "/quests/api/v1/quests"
	questStartPath  = "/quests/api/v1/start"
	questClaimPath  = "/quests/api/v1/claim"
	mobileUserAgent = "Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
)

type httpPlatformAdapter struct {
	client     *utils.HTTPClient
	ipCheckURL string
}

// NewHTTPPlatformAdapter constructs an HTTP/REST implementation of
// [PlatformAdapter]. Every request carries the headers of the platform's own
// mobile web client. When proxyURL is non-empty all requests, including the
// public IP probe, are routed through it.
//
// Returns an error if cfg.BaseURL cannot be normalised or proxyURL is not a
// valid URL.
func NewHTTPPlatformAdapter(cfg config.FarmerAdapter, proxyURL string) (PlatformAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}
	if proxyURL != "" {
		if _, err = url.Parse(proxyURL); err != nil {
			return nil, fmt.Errorf("invalid proxy url: %w", err)
		}
	}

	client := utils.NewProxiedHTTPClient(proxyURL)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeaders(browserHeaders(baseURL))

	return &httpPlatformAdapter{client: client, ipCheckURL: cfg.IPCheckURL}, nil
}

// NewFactory returns a [Factory] producing HTTP adapters configured with cfg.
func NewFactory(cfg config.FarmerAdapter) Factory {
	return func(proxyURL string) (PlatformAdapter, error) {
		return NewHTTPPlatformAdapter(cfg, proxyURL)
	}
}

func browserHeaders(origin string) map[string]string {
	return map[string]string{
		"Accept":             "*/*",
		"Accept-Encoding":    "gzip",
		"Accept-Language":    "en-US,en;q=0.9",
		"Content-Type":       "application/json",
		"Origin":             origin,
		"Referer":            origin + "/app/",
		"Sec-Ch-Ua":          `"Not_A Brand";v="8", "Chromium";v="120"`,
		"Sec-Ch-Ua-Mobile":   "?1",
		"Sec-Ch-Ua-Platform": `"Android"`,
		"Sec-Fetch-Dest":     "empty",
		"Sec-Fetch-Mode":     "cors",
		"Sec-Fetch-Site":     "same-origin",
		"User-Agent":         mobileUserAgent,
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Authenticate implements [PlatformAdapter]. It POSTs the raw initData to the
// auth endpoint and returns the access token. The token expiry is read from
// the token itself when it is a JWT; a token without expiry is still valid.
func (h *httpPlatformAdapter) Authenticate(ctx context.Context, credential models.Credential) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.AuthRequest{InitData: credential.String()}).
		Post(authPath)
	if err != nil {
		return models.Session{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var ar models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &ar); err != nil {
		return models.Session{}, fmt.Errorf("decode auth response: %w", err)
	}
	if ar.AccessToken == "" {
		return models.Session{}, ErrEmptyToken
	}

	session := models.Session{AccessToken: ar.AccessToken}
	expiresAt, err := utils.ParseTokenExpiry(ar.AccessToken)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("access token expiry unknown")
	} else {
		session.ExpiresAt = expiresAt
	}

	return session, nil
}

// GetFarmStatus implements [PlatformAdapter].
func (h *httpPlatformAdapter) GetFarmStatus(ctx context.Context, session models.Session, userID int64) ([]models.FarmCycle, error) {
	resp, err := h.authedRequest(ctx, session).Get(fmt.Sprintf(farmStatusPath, userID))
	if err != nil {
		return nil, fmt.Errorf("farm status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var env models.Envelope[[]models.FarmCycle]
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("decode farm status response: %w", err)
	}
	return env.Data, nil
}

// StartFarm implements [PlatformAdapter]. The started cycle always uses
// [models.FarmTaskID].
func (h *httpPlatformAdapter) StartFarm(ctx context.Context, session models.Session, userID int64) (models.FarmCycle, error) {
	resp, err := h.authedRequest(ctx, session).
		SetBody(models.FarmRequest{UserID: formatUserID(userID), TaskID: models.FarmTaskID}).
		Post(farmStartPath)
	if err != nil {
		return models.FarmCycle{}, fmt.Errorf("farm start request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FarmCycle{}, err
	}

	var env models.Envelope[models.FarmCycle]
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return models.FarmCycle{}, fmt.Errorf("decode farm start response: %w", err)
	}
	return env.Data, nil
}

// ClaimFarm implements [PlatformAdapter].
func (h *httpPlatformAdapter) ClaimFarm(ctx context.Context, session models.Session, userID int64, cycleID string) (models.Amount, error) {
	resp, err := h.authedRequest(ctx, session).
		SetBody(models.FarmRequest{UserID: formatUserID(userID), TaskID: cycleID}).
		Post(farmClaimPath)
	if err != nil {
		return 0, fmt.Errorf("farm claim request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var env models.Envelope[models.ClaimResponse]
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return 0, fmt.Errorf("decode farm claim response: %w", err)
	}
	return env.Data.Amount, nil
}

// ListQuests implements [PlatformAdapter].
func (h *httpPlatformAdapter) ListQuests(ctx context.Context, session models.Session, userID int64) ([]models.Quest, error) {
	resp, err := h.authedRequest(ctx, session).
		SetQueryParam("userId", formatUserID(userID)).
		Get(questListPath)
	if err != nil {
		return nil, fmt.Errorf("quest list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var env models.Envelope[[]models.Quest]
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("decode quest list response: %w", err)
	}
	return env.Data, nil
}

// StartQuest implements [PlatformAdapter]. The response body is ignored.
func (h *httpPlatformAdapter) StartQuest(ctx context.Context, session models.Session, userID int64, quest models.Quest) error {
	resp, err := h.authedRequest(ctx, session).
		SetBody(newQuestRequest(userID, quest)).
		Post(questStartPath)
	if err != nil {
		return fmt.Errorf("quest start request: %w", err)
	}

	return mapHTTPError(resp)
}

// ClaimQuest implements [PlatformAdapter]. The platform does not echo the
// reward, so the amount announced by the quest itself is returned.
func (h *httpPlatformAdapter) ClaimQuest(ctx context.Context, session models.Session, userID int64, quest models.Quest) (models.Amount, error) {
	resp, err := h.authedRequest(ctx, session).
		SetBody(newQuestRequest(userID, quest)).
		Post(questClaimPath)
	if err != nil {
		return 0, fmt.Errorf("quest claim request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return quest.Reward.Amount, nil
}

// ResolvePublicIP implements [PlatformAdapter].
func (h *httpPlatformAdapter) ResolvePublicIP(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.ipCheckURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProxyUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrProxyUnavailable, err)
	}

	var ipr models.IPResponse
	if err = json.Unmarshal(resp.Body(), &ipr); err != nil {
		return "", fmt.Errorf("%w: decode ip response: %w", ErrProxyUnavailable, err)
	}
	if ipr.IP == "" {
		return "", fmt.Errorf("%w: %w", ErrProxyUnavailable, errors.New("empty ip in response"))
	}

	return ipr.IP, nil
}

func (h *httpPlatformAdapter) authedRequest(ctx context.Context, session models.Session) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if session.AccessToken != "" {
		req.SetAuthToken(session.AccessToken)
	}
	return req
}

func newQuestRequest(userID int64, quest models.Quest) models.QuestRequest {
	return models.QuestRequest{
		UserID:  formatUserID(userID),
		QuestID: quest.ID,
		Project: quest.Project,
	}
}

func formatUserID(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
