package dynamic

import (
	"fmt"
	"strings"
)

func (r *Registry) registerPerson() {
	r.Register("randomFirstName", CategoryPerson,
		"Random first name", func() string {
			return pick(firstNames)
		})
	r.Register("randomLastName", CategoryPerson,
		"Random last name", func() string {
			return pick(lastNames)
		})
	r.Register("randomFullName", CategoryPerson,
		"Random full name", func() string {
			return fmt.Sprintf("%s %s", pick(firstNames), pick(lastNames))
		})
	r.Register("randomNamePrefix", CategoryPerson,
		"Random name prefix", func() string {
			return pick(namePrefixes)
		})
	r.Register("randomUserName", CategoryPerson,
		"Random username", func() string {
			return fmt.Sprintf("%s.%s%s",
				strings.ToLower(pick(firstNames)),
				strings.ToLower(sanitizeName(pick(lastNames))),
				randomString(2, digits))
		})
	r.Register("randomEmail", CategoryPerson,
		"Random email address", func() string {
			return fmt.Sprintf("%s@%s.%s",
				randomString(8, lowerAlpha), randomString(6, lowerAlpha), pick(tlds))
		})
	r.Register("randomPhoneNumber", CategoryPerson,
		"Random phone number", func() string {
			return fmt.Sprintf("%s-%s-%s",
				randomString(3, digits), randomString(3, digits), randomString(4, digits))
		})
	r.Register("randomJobTitle", CategoryPerson,
		"Random job title", func() string {
			return pick(jobTitles)
		})
}

// sanitizeName strips characters that have no place in usernames or domain
// labels, e.g. the apostrophe in O'Brien or the umlaut in Müller.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
