package dynamic

import (
	"fmt"
	"strconv"
)

func (r *Registry) registerCommerce() {
	r.Register("randomPrice", CategoryCommerce,
		"Random price between 0.01 and 999.99", func() string {
			cents := randBetween(1, 99999)
			return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
		})
	r.Register("randomProduct", CategoryCommerce,
		"Random product name", func() string {
			return fmt.Sprintf("%s %s", pick(productAdjectives), pick(products))
		})
	r.Register("randomCompanyName", CategoryCommerce,
		"Random company name", func() string {
			return fmt.Sprintf("%s %s", sanitizeName(pick(lastNames)), pick(companySuffixes))
		})
	r.Register("randomCurrencyCode", CategoryCommerce,
		"Random ISO 4217 currency code", func() string {
			return pick(currencyCodes)
		})
	r.Register("randomCreditCardMask", CategoryCommerce,
		"Random masked credit card number", func() string {
			return "**** **** **** " + randomString(4, digits)
		})
	r.Register("randomBankAccount", CategoryCommerce,
		"Random 8-digit account number", func() string {
			return randomString(8, digits)
		})
}
