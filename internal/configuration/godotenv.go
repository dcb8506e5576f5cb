package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider reads configuration files with the Godotenv framework.
// Keys in later files override those of earlier ones.
type GodotenvProvider struct{}

// Read reads the given files into a map (map[key]value). Unlike
// [godotenv.Read], no files yield an empty map instead of reading ".env".
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	if len(filenames) == 0 {
		return map[string]string{}, nil
	}

	envMap, err := godotenv.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config-godotenv) %w", err)
	}

	return envMap, nil
}
