package dynamic

import "math/rand"

const (
	lowerAlpha   = "abcdefghijklmnopqrstuvwxyz"
	alphaNumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits       = "0123456789"
	hexDigits    = "0123456789abcdef"
)

func pick(list []string) string {
	return list[rand.Intn(len(list))]
}

func randomString(length int, charset string) string {
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}

// randBetween returns a random integer in [min, max].
func randBetween(min, max int) int {
	return rand.Intn(max-min+1) + min
}
