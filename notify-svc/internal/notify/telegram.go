package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tapasbar-cms/notify-svc/internal/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts plain-text summaries to a single admin chat.
type TelegramNotifier struct {
	Bot    Sender
	ChatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot")
	}
	return &TelegramNotifier{Bot: bot, ChatID: chatID}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, ev domain.Event) error {
	text, err := Format(ev)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.ChatID, text)
	msg.DisableWebPagePreview = true
	if _, err := n.Bot.Send(msg); err != nil {
		return errors.Wrap(err, "telegram send")
	}
	return nil
}

// Format renders the chat text for a notifiable event.
func Format(ev domain.Event) (string, error) {
	switch ev.Type {
	case domain.EventContactReceived:
		var p domain.ContactPayload
		if err := json.Unmarshal(ev.Payload, &p); err != nil {
			return "", errors.Wrap(err, "decode contact payload")
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Neue Kontaktanfrage von %s <%s>\n", p.Name, p.Email)
		if p.Phone != "" {
			fmt.Fprintf(&b, "Telefon: %s\n", p.Phone)
		}
		fmt.Fprintf(&b, "Betreff: %s\n\n%s", p.Subject, p.Message)
		return b.String(), nil

	case domain.EventReviewSubmitted:
		var p domain.ReviewPayload
		if err := json.Unmarshal(ev.Payload, &p); err != nil {
			return "", errors.Wrap(err, "decode review payload")
		}
		stars := strings.Repeat("★", clamp(p.Rating, 0, 5)) + strings.Repeat("☆", 5-clamp(p.Rating, 0, 5))
		text := fmt.Sprintf("Neue Bewertung von %s %s (wartet auf Freigabe)", p.CustomerName, stars)
		if p.Comment != "" {
			text += "\n\n" + p.Comment
		}
		return text, nil
	}
	return "", fmt.Errorf("no notification for event type %q", ev.Type)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
