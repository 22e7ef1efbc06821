package creditledger

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/SscSPs/shop_pos_app/internal/utils"
	"github.com/shopspring/decimal"
)

const countryPrefix = "92"

// Shop is the sender shown on reminders.
type Shop struct {
	Name  string
	Phone string
}

// Reminder is a ready-to-send WhatsApp payment reminder.
type Reminder struct {
	Phone       string          `json:"phone"`
	UsedPercent decimal.Decimal `json:"usedPercent"`
	Message     string          `json:"message"`
	Link        string          `json:"link"`
}

// NormalizePhone keeps digits and puts the number in international form.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	phone := b.String()
	switch {
	case strings.HasPrefix(phone, countryPrefix):
		return phone
	case strings.HasPrefix(phone, "0"):
		return countryPrefix + phone[1:]
	default:
		return countryPrefix + phone
	}
}

// UsedPercent is (limit − due) / limit × 100, rounded to one place.
func UsedPercent(creditLimit, remainingDue decimal.Decimal) decimal.Decimal {
	if !creditLimit.IsPositive() {
		return decimal.Zero
	}
	return creditLimit.Sub(remainingDue).Div(creditLimit).Mul(decimal.NewFromInt(100)).Round(1)
}

// BuildReminder renders the reminder for a permanent customer.
func BuildReminder(c domain.Customer, shop Shop) Reminder {
	limit := c.CreditLimit
	if !limit.IsPositive() {
		limit = domain.DefaultCreditLimit
	}
	shopName := shop.Name
	if shopName == "" {
		shopName = "Shop Pro"
	}
	used := UsedPercent(limit, c.RemainingDue)
	phone := NormalizePhone(c.Phone)

	var msg strings.Builder
	fmt.Fprintf(&msg, "Dear %s,\n\n", c.Name)
	fmt.Fprintf(&msg, "This is a payment reminder from *%s* regarding your credit account:\n\n", shopName)
	fmt.Fprintf(&msg, "💰 *Outstanding Balance:* RS %s\n", utils.FormatGrouped(c.RemainingDue, 2))
	fmt.Fprintf(&msg, "📊 *Credit Limit:* RS %s\n", utils.FormatGrouped(limit, 2))
	fmt.Fprintf(&msg, "✅ *Credit Used:* %s%%\n\n", utils.FormatWithPrecision(used, 1))
	msg.WriteString("Please clear your outstanding balance at your earliest convenience. Thank you for your continued trust! ❤️\n\n")
	if shop.Phone != "" {
		fmt.Fprintf(&msg, "Contact: %s", shop.Phone)
	}

	text := msg.String()
	return Reminder{
		Phone:       phone,
		UsedPercent: used,
		Message:     text,
		Link:        "https://wa.me/" + phone + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20"),
	}
}
