package dynamic

import (
	"fmt"
	"strconv"
)

func (r *Registry) registerAddress() {
	r.Register("randomCity", CategoryAddress,
		"Random city name", func() string {
			return pick(cities)
		})
	r.Register("randomStreetName", CategoryAddress,
		"Random street name", func() string {
			return fmt.Sprintf("%s %s", pick(streetNames), pick(streetSuffixes))
		})
	r.Register("randomStreetAddress", CategoryAddress,
		"Random street address", func() string {
			return fmt.Sprintf("%d %s %s", randBetween(1, 9999), pick(streetNames), pick(streetSuffixes))
		})
	r.Register("randomCountry", CategoryAddress,
		"Random country name", func() string {
			return countries[randBetween(0, len(countries)-1)].name
		})
	r.Register("randomCountryCode", CategoryAddress,
		"Random ISO 3166-1 alpha-2 country code", func() string {
			return countries[randBetween(0, len(countries)-1)].code
		})
	r.Register("randomLatitude", CategoryAddress,
		"Random latitude between -90 and 90", func() string {
			lat := float64(randBetween(-90000000, 90000000)) / 1e6
			return strconv.FormatFloat(lat, 'f', 6, 64)
		})
	r.Register("randomLongitude", CategoryAddress,
		"Random longitude between -180 and 180", func() string {
			lon := float64(randBetween(-180000000, 180000000)) / 1e6
			return strconv.FormatFloat(lon, 'f', 6, 64)
		})
}
