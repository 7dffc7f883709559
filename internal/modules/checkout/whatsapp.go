package checkout

import (
	"net/url"
	"strconv"
	"strings"
)

// FormatRupiah renders a whole-rupiah amount with dot thousands separators,
// e.g. 15000 -> "Rp15.000". Negative amounts render as "Rp0".
func FormatRupiah(v int64) string {
	if v < 0 {
		return "Rp0"
	}
	s := strconv.FormatInt(v, 10)

	var b strings.Builder
	b.WriteString("Rp")
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte('.')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// BuildMessage composes the order summary sent over WhatsApp.
func BuildMessage(items []OrderItem, total int64) string {
	lines := make([]string, 0, len(items)+5)
	lines = append(lines, "Halo, saya mau titip:")
	for _, it := range items {
		lines = append(lines, "- "+it.Name+" ("+strconv.FormatInt(it.Quantity, 10)+"x "+FormatRupiah(it.UnitPrice)+")")
	}
	lines = append(lines, "", "Total: "+FormatRupiah(total), "", "_Silakan konfirmasi pembayaran setelah pesan dikirim._")
	return strings.Join(lines, "\n")
}

// BuildLink builds the wa.me deep link carrying the message to number.
func BuildLink(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}
