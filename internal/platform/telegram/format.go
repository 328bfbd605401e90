package telegram

import (
	"fmt"
	"strings"

	"github.com/moonvest/investd/internal/models"
)

// Message bodies use Telegram HTML parse mode. User-controlled fields go
// through htmlEscape so a crafted username cannot break the markup.

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func displayUser(username, firstName, lastName string) string {
	if username != "" {
		return username
	}
	return strings.TrimSpace(firstName + " " + lastName)
}

func formatDepositMessage(d *models.Deposit) string {
	network := d.NetworkName
	if network == "" {
		network = d.Network
	}
	return fmt.Sprintf(`💰 <b>New Deposit Received!</b>

👤 <b>User:</b> @%s
📝 <b>Name:</b> %s %s
💵 <b>Amount:</b> %v %s
🌐 <b>Network:</b> %s
🔗 <b>Transaction ID:</b> <code>%s</code>
🔗 <b>Deposit Request ID:</b> <code>%s</code>

📊 <b>Status:</b> <code>PENDING</code>`,
		htmlEscape(displayUser(d.UserUsername, d.UserFirstName, d.UserLastName)),
		htmlEscape(d.UserFirstName), htmlEscape(d.UserLastName),
		d.Amount, htmlEscape(network),
		htmlEscape(network),
		htmlEscape(d.TransactionRef),
		d.ID,
	)
}

func formatWithdrawalMessage(w *models.Withdrawal) string {
	network := w.NetworkName
	if network == "" {
		network = w.Network
	}
	return fmt.Sprintf(`💸 <b>New Withdrawal Request!</b>

👤 <b>User:</b> @%s
📝 <b>Name:</b> %s %s
💵 <b>Amount:</b> %v %s
🌐 <b>Network:</b> %s
📍 <b>Withdrawal Address:</b> <code>%s</code>
📊 <b>Status:</b> <code>PENDING</code>
🔗 <b>Withdrawal Request ID:</b> <code>%s</code>`,
		htmlEscape(displayUser(w.UserUsername, w.UserFirstName, w.UserLastName)),
		htmlEscape(w.UserFirstName), htmlEscape(w.UserLastName),
		w.Amount, htmlEscape(network),
		htmlEscape(network),
		htmlEscape(w.WithdrawalAddress),
		w.ID,
	)
}

func formatSubscriptionMessage(sub *models.Subscription) string {
	return fmt.Sprintf(`📦 <b>New Subscription Created!</b>

👤 <b>User:</b> @%s
📝 <b>Name:</b> %s %s
📦 <b>Package:</b> %s
💵 <b>Investment:</b> $%v
📈 <b>Daily Return:</b> %s
📅 <b>Duration:</b> %d days
💰 <b>Total Return:</b> $%v
🔗 <b>Subscription ID:</b> <code>%s</code>`,
		htmlEscape(displayUser(sub.UserUsername, sub.UserFirstName, sub.UserLastName)),
		htmlEscape(sub.UserFirstName), htmlEscape(sub.UserLastName),
		htmlEscape(sub.PackageName),
		sub.PackagePrice,
		htmlEscape(sub.DailyReturn.String()),
		sub.DurationDays,
		sub.TotalReturn,
		sub.ID,
	)
}

func formatAutomaticEarningsMessage(userID string, amount float64) string {
	return fmt.Sprintf(`📈 <b>Automatic Earnings Credited!</b>

👤 <b>User ID:</b> <code>%s</code>
💵 <b>Amount:</b> $%.2f

⚙️ Credited automatically by daily earnings settlement.`,
		userID, amount,
	)
}
