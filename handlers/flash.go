package handlers

import (
	"log"
	"sync"
	"time"

	"hourlogger/tracker"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type flash struct {
	messageID int
	timer     *time.Timer
}

// Flasher показывает в каждом чате не больше одного временного уведомления.
// Уведомление удаляется через ttl или при появлении следующего.
type Flasher struct {
	bot    BotAPI
	ttl    time.Duration
	mu     sync.Mutex
	active map[int64]*flash
	closed bool
}

func NewFlasher(bot BotAPI, ttl time.Duration) *Flasher {
	return &Flasher{
		bot:    bot,
		ttl:    ttl,
		active: make(map[int64]*flash),
	}
}

func (f *Flasher) Show(chatID int64, message tracker.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}

	// Предыдущее уведомление заменяется новым
	if prev, ok := f.active[chatID]; ok {
		prev.timer.Stop()
		delete(f.active, chatID)
		f.deleteMessage(chatID, prev.messageID)
	}

	sent, err := f.bot.Send(tgbotapi.NewMessage(chatID, formatMessage(message)))
	if err != nil {
		log.Printf("Failed to send message to %d: %v", chatID, err)
		return
	}

	fl := &flash{messageID: sent.MessageID}
	fl.timer = time.AfterFunc(f.ttl, func() { f.expire(chatID, fl) })
	f.active[chatID] = fl
}

func (f *Flasher) expire(chatID int64, fl *flash) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Таймер мог сработать одновременно с заменой уведомления
	if f.active[chatID] != fl {
		return
	}
	delete(f.active, chatID)
	f.deleteMessage(chatID, fl.messageID)
}

// Close отменяет все ожидающие таймеры
func (f *Flasher) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for chatID, fl := range f.active {
		fl.timer.Stop()
		delete(f.active, chatID)
	}
	f.closed = true
}

func (f *Flasher) deleteMessage(chatID int64, messageID int) {
	if _, err := f.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		log.Printf("Failed to delete message %d in %d: %v", messageID, chatID, err)
	}
}

func formatMessage(message tracker.Message) string {
	if message.Severity == tracker.SeverityError {
		return "❌ " + message.Text
	}
	return "✅ " + message.Text
}
