package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// TelegramSink sends messages to a chat through the Telegram bot API.
type TelegramSink struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
}

func NewTelegramSink(botToken, chatID, baseURL string) *TelegramSink {
	return &TelegramSink{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{},
	}
}

func (s *TelegramSink) Send(ctx context.Context, text string) error {
	body, err := json.Marshal(map[string]string{
		"chat_id": s.chatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	apiURL := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("telegram sendMessage: %s", resp.Status)
	}
	return nil
}
