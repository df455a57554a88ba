package dynamic

import (
	"fmt"
	"strings"
)

func (r *Registry) registerText() {
	r.Register("randomAlphaNumeric", CategoryText,
		"Random 16-character alphanumeric string", func() string {
			return randomString(16, alphaNumeric)
		})
	r.Register("randomPassword", CategoryText,
		"Random 12-character password", func() string {
			return randomString(12, alphaNumeric+"!@#$%")
		})
	r.Register("randomWord", CategoryText,
		"Random word", func() string {
			return pick(words)
		})
	r.Register("randomWords", CategoryText,
		"Three random words", func() string {
			return strings.Join([]string{pick(words), pick(words), pick(words)}, " ")
		})
	r.Register("randomColor", CategoryText,
		"Random color name", func() string {
			return pick(colors)
		})
	r.Register("randomHexColor", CategoryText,
		"Random hex color like #a3f2c1", func() string {
			return fmt.Sprintf("#%s", randomString(6, hexDigits))
		})
	r.Register("randomAbbreviation", CategoryText,
		"Random technical abbreviation", func() string {
			return pick(abbreviations)
		})
}
