// Package receipt turns a committed sale into printable text. It only reads
// the sale's own snapshot data; the catalog is never consulted.
package receipt

import (
	"fmt"
	"strings"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
)

// width is the character width of a 58mm thermal roll.
const width = 32

// StoreInfo is the header block of a receipt.
type StoreInfo struct {
	Name     string
	Address  string
	Phone    string
	Currency string
}

// Render produces the plain-text receipt for a sale.
func Render(sale *entity.Sale, store StoreInfo) string {
	var b builder

	b.center(store.Name)
	b.center(store.Address)
	b.center("Tel: " + store.Phone)
	b.separator('=')
	b.keyValue("Receipt", fmt.Sprintf("#%d", sale.ID))
	b.keyValue("Date", sale.Date.Format("2006-01-02 15:04"))
	b.keyValue("Payment", string(sale.PaymentMethod))
	b.separator('-')

	for _, item := range sale.Items {
		b.line(item.Name)
		b.keyValue(
			fmt.Sprintf("  %d x %s", item.Quantity, money(store.Currency, item.Price)),
			money(store.Currency, item.Price*int64(item.Quantity)),
		)
	}

	b.separator('-')
	b.keyValue("Subtotal", money(store.Currency, sale.SubTotal))
	b.keyValue("Tax", money(store.Currency, sale.Tax))
	if sale.Discount != 0 {
		b.keyValue("Discount", "-"+money(store.Currency, sale.Discount))
	}
	b.separator('=')
	b.keyValue("TOTAL", money(store.Currency, sale.Total))
	b.line("")
	b.center("Thank you for shopping!")

	return b.String()
}

// ShareText builds the short bill summary sent to a customer.
func ShareText(sale *entity.Sale, storeName, currency string) string {
	return fmt.Sprintf("Bill from %s\nDate: %s\nTotal: %s\nThank you for shopping!",
		storeName,
		sale.Date.Format("2006-01-02"),
		money(currency, sale.Total),
	)
}

func money(currency string, cents int64) string {
	return fmt.Sprintf("%s %.2f", currency, float64(cents)/100)
}

// builder accumulates fixed-width receipt lines.
type builder struct {
	sb strings.Builder
}

func (b *builder) line(s string) {
	b.sb.WriteString(s)
	b.sb.WriteByte('\n')
}

func (b *builder) center(s string) {
	if pad := (width - len(s)) / 2; pad > 0 {
		b.sb.WriteString(strings.Repeat(" ", pad))
	}
	b.line(s)
}

func (b *builder) separator(char byte) {
	b.line(strings.Repeat(string(char), width))
}

// keyValue writes a left-aligned key and right-aligned value on one line.
func (b *builder) keyValue(key, value string) {
	spaces := width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	b.sb.WriteString(key)
	b.sb.WriteString(strings.Repeat(" ", spaces))
	b.line(value)
}

func (b *builder) String() string {
	return b.sb.String()
}
