package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrNoFilePath = errors.New("no file path provided")

// LoadYamlFile reads a flat-or-nested YAML file and exports every scalar as an
// environment variable named after its section path, e.g. auth.token_ttl -> AUTH_TOKEN_TTL.
// Values of the form ${VAR:-default} are resolved against the environment.
func LoadYamlFile(filepath string) error {
	if filepath == "" {
		return ErrNoFilePath
	}

	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("could not open YAML file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	sections := []string{}
	previousIndent := 0

	for scanner.Scan() {
		line := scanner.Text()

		content := strings.TrimSpace(line)
		if content == "" || strings.HasPrefix(content, "#") {
			continue
		}

		indent := indentOf(line)
		if indent < previousIndent {
			levels := (previousIndent - indent) / 2
			for i := 0; i < levels && len(sections) > 0; i++ {
				sections = sections[:len(sections)-1]
			}
		}
		previousIndent = indent

		// "name:" opens a section
		if strings.HasSuffix(content, ":") && !strings.Contains(content, ": ") {
			sections = append(sections, strings.TrimSuffix(content, ":"))
			continue
		}

		key, value, ok := strings.Cut(content, ":")
		if !ok {
			continue
		}
		value = resolveValue(strings.TrimSpace(value))
		if value == "" {
			continue
		}

		name := strings.ToUpper(strings.Join(append(sections[:len(sections):len(sections)], strings.TrimSpace(key)), "_"))

		if os.Getenv(name) == "" {
			if err := os.Setenv(name, value); err != nil {
				return fmt.Errorf("could not set env var %s: %w", name, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading YAML file: %w", err)
	}

	return nil
}

func indentOf(line string) int {
	indent := 0
	for _, ch := range line {
		if ch != ' ' {
			break
		}
		indent++
	}
	return indent
}

// resolveValue strips quotes and expands ${VAR:-default}.
func resolveValue(value string) string {
	value = strings.Trim(value, `"'`)

	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	name, def, ok := strings.Cut(value[2:len(value)-1], ":-")
	if !ok {
		return value
	}
	if env := os.Getenv(strings.TrimSpace(name)); env != "" {
		return env
	}
	return strings.TrimSpace(def)
}
