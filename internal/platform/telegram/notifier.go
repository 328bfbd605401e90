package telegram

import (
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"

	"github.com/moonvest/investd/internal/models"
	cfgpkg "github.com/moonvest/investd/pkg/config"
)

// Notifier posts formatted admin messages to the Telegram bot API on every
// financial event. Every send is best effort: delivery failures are logged
// and never affect the triggering operation. The HTTP client carries its own
// timeout so a slow bot API cannot stall a settlement.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *zap.SugaredLogger
}

func NewNotifier(cfg *cfgpkg.Config, log *zap.SugaredLogger) *Notifier {
	tc := cfg.Telegram
	if tc.BotToken == "" || tc.AdminChatID == 0 {
		log.Warnw("telegram notifier disabled: bot_token or admin_chat_id not configured")
		return &Notifier{log: log}
	}
	bot, err := tgbotapi.NewBotAPIWithClient(tc.BotToken, &http.Client{Timeout: tc.Timeout})
	if err != nil {
		log.Warnw("telegram notifier disabled: bot handshake failed", "err", err)
		return &Notifier{log: log}
	}
	log.Infow("telegram notifier ready", "bot", bot.Self.UserName)
	return &Notifier{bot: bot, chatID: tc.AdminChatID, log: log}
}

// Enabled reports whether a bot connection is configured.
func (n *Notifier) Enabled() bool {
	return n.bot != nil
}

func (n *Notifier) send(text string) bool {
	if n.bot == nil {
		return false
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := n.bot.Send(msg); err != nil {
		n.log.Warnw("failed to send admin notification", "err", err)
		return false
	}
	return true
}

// NotifyDeposit announces a new pending deposit request.
func (n *Notifier) NotifyDeposit(d *models.Deposit) bool {
	return n.send(formatDepositMessage(d))
}

// NotifyWithdrawal announces a new pending withdrawal request.
func (n *Notifier) NotifyWithdrawal(w *models.Withdrawal) bool {
	return n.send(formatWithdrawalMessage(w))
}

// NotifySubscription announces a completed package purchase.
func (n *Notifier) NotifySubscription(sub *models.Subscription) bool {
	return n.send(formatSubscriptionMessage(sub))
}

// NotifyAutomaticEarnings announces a lazy-settlement balance credit.
func (n *Notifier) NotifyAutomaticEarnings(userID string, amount float64) bool {
	return n.send(formatAutomaticEarningsMessage(userID, amount))
}
