package vars

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/reqvar/reqvar/packages/scope"
)

// LoadDotEnv parses a .env file into key-value pairs. Supported syntax:
// KEY=value, KEY="quoted value", KEY='single quoted', an optional leading
// "export ", and # comment lines. Nothing is written to the OS environment.
func LoadDotEnv(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open env file: %w", err)
	}
	defer file.Close()

	result := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseDotEnvLine(scanner.Text())
		if ok {
			result[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file: %w", err)
	}
	return result, nil
}

func parseDotEnvLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true
}

// OverlayDotEnv loads a .env file and writes its pairs into the given scope,
// shadowing existing values. Keys that are not legal variable names are
// skipped; .env files routinely carry entries meant for other tools.
func OverlayDotEnv(s *scope.Scope, path string) error {
	pairs, err := LoadDotEnv(path)
	if err != nil {
		return err
	}
	for k, v := range pairs {
		if scope.ValidName(k) {
			if err := s.Set(k, v); err != nil {
				return err
			}
		}
	}
	return nil
}
