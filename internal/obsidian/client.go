// Package obsidian is a client for the Obsidian Local REST API plugin.
// It reads and writes vault notes over loopback HTTPS and splices new
// lines under a target heading.
package obsidian

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnauthorized는 API key가 거부되었을 때의 sentinel error다.
var ErrUnauthorized = errors.New("obsidian: unauthorized")

// Client는 Local REST API 클라이언트다.
type Client struct {
	APIKey string
	Port   int
	HTTPS  bool

	httpClient *http.Client
}

// NewClient는 클라이언트를 생성한다. 플러그인은 self-signed 인증서를
// 쓰므로 loopback에 한해 인증서 검증을 끈다.
func NewClient(apiKey string, port int, https bool) *Client {
	return &Client{
		APIKey: apiKey,
		Port:   port,
		HTTPS:  https,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

func (c *Client) baseURL() string {
	scheme := "http"
	if c.HTTPS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://127.0.0.1:%d", scheme, c.Port)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body string) (string, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+endpoint, reader)
	if err != nil {
		return "", fmt.Errorf("obsidian: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	if body != "" {
		req.Header.Set("Content-Type", "text/markdown")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("obsidian: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("obsidian: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", fmt.Errorf("obsidian: %s %s: %w", method, endpoint, ErrUnauthorized)
	case resp.StatusCode >= 400:
		return "", fmt.Errorf("obsidian: %s %s: HTTP %d", method, endpoint, resp.StatusCode)
	}
	return string(data), nil
}

// Ping은 API 서버 연결을 확인한다.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/", "")
	return err
}

// Note는 vault 내 노트 내용을 가져온다. path는 vault 루트 기준이다.
func (c *Client) Note(ctx context.Context, path string) (string, error) {
	return c.do(ctx, http.MethodGet, "/vault/"+url.PathEscape(path), "")
}

// UpdateNote는 노트 내용 전체를 교체한다.
func (c *Client) UpdateNote(ctx context.Context, path, content string) error {
	_, err := c.do(ctx, http.MethodPut, "/vault/"+url.PathEscape(path), content)
	return err
}

// AppendUnderHeading은 노트의 heading 섹션 끝에 dataLine을 삽입한다.
// 노트나 heading이 없으면 만들어서 넣는다.
func (c *Client) AppendUnderHeading(ctx context.Context, path, heading, dataLine string) error {
	content, err := c.Note(ctx, path)
	if err != nil && !strings.Contains(err.Error(), "HTTP 404") {
		return err
	}
	updated := InsertUnderHeading(content, heading, dataLine)
	return c.UpdateNote(ctx, path, updated)
}
