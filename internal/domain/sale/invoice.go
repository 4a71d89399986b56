package sale

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const invoiceChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateInvoiceNo gera um número de fatura no formato
// INV-AAAAMMDD-XXXXXX, com sufixo alfanumérico aleatório.
// A unicidade é garantida pelo chamador (verificação + nova tentativa).
func GenerateInvoiceNo(now time.Time) string {
	b := make([]byte, 6)
	max := big.NewInt(int64(len(invoiceChars)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		b[i] = invoiceChars[n.Int64()]
	}
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), string(b))
}
