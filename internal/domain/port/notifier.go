package port

import "context"

// Notifier інтерфейс доставки службових повідомлень
type Notifier interface {
	// SendPhoto надсилає зображення з підписом у службовий канал.
	SendPhoto(ctx context.Context, photo []byte, caption string) error

	// SendError надсилає текст помилки у службовий канал.
	SendError(ctx context.Context, text string) error
}
