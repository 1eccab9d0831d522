package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"gpv-bot/internal/domain/port"
)

// Notifier надсилає результати розпізнавання в Telegram-чат.
// Бот працює в режимі push: жодних вхідних команд не обробляє.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    zerolog.Logger
}

var _ port.Notifier = (*Notifier)(nil)

// NewNotifier створює нотифікатор. Порожній токен або chatID означає,
// що сповіщення вимкнені: повертається робочий no-op екземпляр.
func NewNotifier(token string, chatID int64, log zerolog.Logger) (*Notifier, error) {
	if token == "" || chatID == 0 {
		log.Info().Msg("Telegram-сповіщення вимкнені")
		return &Notifier{log: log}, nil
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info().Str("account", api.Self.UserName).Msg("Telegram-бот авторизований")

	return &Notifier{
		api:    api,
		chatID: chatID,
		log:    log,
	}, nil
}

// SendPhoto публікує анотоване зображення графіка з підписом.
func (n *Notifier) SendPhoto(ctx context.Context, image []byte, caption string) error {
	if n.api == nil {
		return nil
	}

	msg := tgbotapi.NewPhoto(n.chatID, tgbotapi.FileBytes{
		Name:  "debug.png",
		Bytes: image,
	})
	msg.Caption = caption
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := n.api.Send(msg); err != nil {
		n.log.Error().Err(err).Msg("не вдалося надіслати фото")
		return err
	}

	return nil
}

// SendError повідомляє в чат про збій обробки.
func (n *Notifier) SendError(ctx context.Context, text string) error {
	if n.api == nil {
		return nil
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		n.log.Error().Err(err).Msg("не вдалося надіслати повідомлення")
		return err
	}

	return nil
}
