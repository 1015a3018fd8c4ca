package notify

import (
	"fmt"
	"strings"

	"swim-shop-api/internal/utils/timeutil"
)

var levelIcon = map[string]string{
	"info":  "ℹ️",
	"warn":  "⚠️",
	"error": "🚨",
	"ok":    "✅",
}

// FormatAlert renders a MarkdownV2 message with a bold title and a SAST timestamp.
func FormatAlert(level, title, text string) string {
	icon := levelIcon[level]
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s *%s*\n", icon, escapeMarkdown(title)))
	sb.WriteString(fmt.Sprintf("_%s_\n", escapeMarkdown(timeutil.FormatShop(timeutil.NowUTC()))))
	sb.WriteString(escapeMarkdown(text))
	return sb.String()
}

// escapeMarkdown escapes Telegram MarkdownV2 special characters.
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"]", "\\]",
		"(", "\\(",
		")", "\\)",
		"~", "\\~",
		"`", "\\`",
		">", "\\>",
		"#", "\\#",
		"+", "\\+",
		"-", "\\-",
		"=", "\\=",
		"|", "\\|",
		"{", "\\{",
		"}", "\\}",
		".", "\\.",
		"!", "\\!",
	)
	return replacer.Replace(s)
}

// Nop drops every alert.
type Nop struct{}

func (Nop) Notify(level, title, text string) {}
