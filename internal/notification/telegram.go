package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/howlil/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingApproved(ctx context.Context, borrower *domain.Borrower, venue *domain.Venue, booking *domain.Booking, payment *domain.Payment) {
	text := fmt.Sprintf(
		"*Booking approved!*\n\n"+
			"Venue: %s\n"+
			"Activity: %s\n"+
			"%s\n"+
			"Invoice %s: %d\n"+
			"Pay before %s (UTC) or the booking expires.",
		venue.Name, booking.Activity, formatWindow(booking.Window),
		payment.InvoiceNumber, payment.Total(),
		payment.Deadline.Format("02.01.2006 15:04"),
	)
	n.send(ctx, borrower.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingRejected(ctx context.Context, borrower *domain.Borrower, venue *domain.Venue, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking rejected*\n\n"+
			"Venue: %s\n"+
			"Activity: %s\n"+
			"Reason: %s",
		venue.Name, booking.Activity, booking.RejectionReason,
	)
	n.send(ctx, borrower.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPaymentReceived(ctx context.Context, borrower *domain.Borrower, venue *domain.Venue, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Payment received!*\n\n"+
			"Venue: %s\n"+
			"Activity: %s\n"+
			"%s\n"+
			"The venue is yours for the booked slot.",
		venue.Name, booking.Activity, formatWindow(booking.Window),
	)
	n.send(ctx, borrower.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCompleted(ctx context.Context, borrower *domain.Borrower, venue *domain.Venue, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking completed*\n\n"+
			"Venue: %s\n"+
			"Activity: %s\n"+
			"Thank you for using the venue.",
		venue.Name, booking.Activity,
	)
	n.send(ctx, borrower.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingExpired(ctx context.Context, borrower *domain.Borrower, venue *domain.Venue, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking expired (payment deadline passed)*\n\n"+
			"Venue: %s\n"+
			"Activity: %s\n"+
			"The slot has been released.",
		venue.Name, booking.Activity,
	)
	n.send(ctx, borrower.TelegramChatID, text)
}

func formatWindow(w domain.TimeWindow) string {
	return fmt.Sprintf(
		"Dates: %s to %s, daily %s-%s (UTC)",
		w.StartDate.Format("02.01.2006"), w.EndDate.Format("02.01.2006"),
		domain.FormatClock(w.StartTime), domain.FormatClock(w.EndTime),
	)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
