//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../../mocks/mock_poster.go -package=mocks
package groupme

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sotd-bot/domain"
	"time"
)

// DefaultEndpoint is GroupMe's bot post API.
const DefaultEndpoint = "https://api.groupme.com/v3/bots/post"

const postTimeout = 10 * time.Second

type IPoster interface {
	Post(ctx context.Context, text string, mention *domain.Mention) error
}

// Client posts messages through a GroupMe bot. Mentions become a
// "mentions" attachment whose loci point at the tag inside the text.
type Client struct {
	botID    string
	endpoint string
	http     *http.Client
	log      *slog.Logger
}

func NewClient(botID, endpoint string, log *slog.Logger) *Client {
	return &Client{
		botID:    botID,
		endpoint: endpoint,
		http:     &http.Client{Timeout: postTimeout},
		log:      log,
	}
}

type postPayload struct {
	BotID       string       `json:"bot_id"`
	Text        string       `json:"text"`
	Attachments []attachment `json:"attachments,omitempty"`
}

type attachment struct {
	Type    string   `json:"type"`
	UserIDs []string `json:"user_ids"`
	Loci    [][2]int `json:"loci"`
}

func (c *Client) Post(ctx context.Context, text string, mention *domain.Mention) error {
	payload := postPayload{BotID: c.botID, Text: text}
	if mention != nil {
		payload.Attachments = []attachment{{
			Type:    "mentions",
			UserIDs: []string{mention.UserID},
			Loci:    [][2]int{{mention.Offset, mention.Length}},
		}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("posting to groupme: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("groupme post returned %s", res.Status)
	}
	c.log.Debug("Posted message", "length", len(text), "mention", mention != nil)
	return nil
}
