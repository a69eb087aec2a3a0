package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"fieldreport/internal/modules/mirror/domain"
	mirrorout "fieldreport/internal/modules/mirror/port/out"
	"fieldreport/internal/platform/logging"
)

// HTTPRemote talks to a JSON document endpoint that accepts merge patches
// on PATCH <base>/users/<id> and serves the document on GET.
type HTTPRemote struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewHTTPRemote(baseURL, token string, client *http.Client) mirrorout.Remote {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPRemote{baseURL: strings.TrimRight(baseURL, "/"), token: token, client: client}
}

func (r *HTTPRemote) Push(ctx context.Context, userID string, doc domain.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal mirror document: %w", err)
	}
	resp, err := r.do(ctx, http.MethodPatch, userID, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}
	return nil
}

func (r *HTTPRemote) Pull(ctx context.Context, userID string) (domain.Document, bool, error) {
	resp, err := r.do(ctx, http.MethodGet, userID, nil)
	if err != nil {
		return domain.Document{}, false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return domain.Document{}, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Document{}, false, statusError(resp)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Document{}, false, fmt.Errorf("failed to read response body: %w", err)
	}
	doc := domain.Document{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return domain.Document{}, false, fmt.Errorf("failed to decode response: %w", err)
	}
	return doc, true, nil
}

func (r *HTTPRemote) do(ctx context.Context, method, userID string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+"/users/"+url.PathEscape(userID), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/merge-patch+json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	logging.FromContext(ctx).Debug("mirror request finished", "method", method, "status_code", resp.StatusCode)
	return resp, nil
}

func statusError(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("mirror responded %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
}
