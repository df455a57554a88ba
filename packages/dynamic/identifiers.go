package dynamic

import "github.com/google/uuid"

func (r *Registry) registerIdentifiers() {
	r.Register("guid", CategoryIdentifiers,
		"Random UUID v4", func() string {
			return uuid.New().String()
		})
	r.Register("randomUUID", CategoryIdentifiers,
		"Random UUID v4", func() string {
			return uuid.New().String()
		})
	r.Register("randomObjectId", CategoryIdentifiers,
		"Random 24-character hex object id", func() string {
			return randomString(24, hexDigits)
		})
}
