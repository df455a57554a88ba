package dynamic

import "strconv"

func (r *Registry) registerNumeric() {
	r.Register("randomInt", CategoryNumeric,
		"Random integer between 0 and 1000", func() string {
			return strconv.Itoa(randBetween(0, 1000))
		})
	r.Register("randomDigit", CategoryNumeric,
		"Random single digit", func() string {
			return randomString(1, digits)
		})
	r.Register("randomBoolean", CategoryNumeric,
		"Random true or false", func() string {
			if randBetween(0, 1) == 0 {
				return "false"
			}
			return "true"
		})
}
