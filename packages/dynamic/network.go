package dynamic

import (
	"fmt"
	"strconv"
	"strings"
)

func (r *Registry) registerNetwork() {
	r.Register("randomIP", CategoryNetwork,
		"Random IPv4 address", func() string {
			return fmt.Sprintf("%d.%d.%d.%d",
				randBetween(1, 254), randBetween(0, 255), randBetween(0, 255), randBetween(1, 254))
		})
	r.Register("randomIPV6", CategoryNetwork,
		"Random IPv6 address", func() string {
			groups := make([]string, 8)
			for i := range groups {
				groups[i] = randomString(4, hexDigits)
			}
			return strings.Join(groups, ":")
		})
	r.Register("randomMACAddress", CategoryNetwork,
		"Random MAC address", func() string {
			groups := make([]string, 6)
			for i := range groups {
				groups[i] = randomString(2, hexDigits)
			}
			return strings.Join(groups, ":")
		})
	r.Register("randomDomainName", CategoryNetwork,
		"Random domain name", func() string {
			return fmt.Sprintf("%s.%s", randomString(8, lowerAlpha), pick(tlds))
		})
	r.Register("randomUrl", CategoryNetwork,
		"Random https URL", func() string {
			return fmt.Sprintf("https://%s.%s/%s",
				randomString(8, lowerAlpha), pick(tlds), strings.ToLower(pick(words)))
		})
	r.Register("randomPort", CategoryNetwork,
		"Random TCP port above 1024", func() string {
			return strconv.Itoa(randBetween(1025, 65535))
		})
	r.Register("randomUserAgent", CategoryNetwork,
		"Random browser user agent string", func() string {
			return pick(userAgents)
		})
}
