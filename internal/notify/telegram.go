package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type TelegramMessage struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
	Parse  string `json:"parse_mode"`
}

// TelegramNotifier posts ops alerts to one chat through the bot API.
type TelegramNotifier struct {
	APIBase  string
	BotToken string
	ChatID   string
	Client   *http.Client
}

// NewTelegramNotifier reads TELEGRAM_BOT_TOKEN, loading .env first when present.
func NewTelegramNotifier(chatID string) *TelegramNotifier {
	_ = godotenv.Load()
	return &TelegramNotifier{
		APIBase:  "https://api.telegram.org",
		BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		ChatID:   chatID,
		Client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *TelegramNotifier) Send(content string) error {
	if n.BotToken == "" {
		return fmt.Errorf("missing TELEGRAM_BOT_TOKEN in env")
	}
	if n.ChatID == "" {
		return fmt.Errorf("telegram chat id not configured")
	}
	body, _ := json.Marshal(TelegramMessage{
		ChatID: n.ChatID,
		Text:   content,
		Parse:  "MarkdownV2",
	})
	url := fmt.Sprintf("%s/bot%s/sendMessage", n.APIBase, n.BotToken)
	resp, err := n.Client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(b))
	}
	return nil
}

// Notify sends asynchronously; failures are only logged.
func (n *TelegramNotifier) Notify(level, title, text string) {
	msg := FormatAlert(level, title, text)
	go func() {
		if err := n.Send(msg); err != nil {
			log.Printf("[notify] telegram send failed: %v", err)
		}
	}()
}
