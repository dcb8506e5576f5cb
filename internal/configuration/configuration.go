// Package configuration reads layerfs settings from Unix-style environment
// files.
package configuration

import (
	"fmt"
	"strconv"
)

// Keys understood in configuration files.
const (
	KeyWriteDir  = "LAYERFS_WRITE_DIR"
	KeyBasePath1 = "LAYERFS_BASE_PATH_1"
	KeyBasePath2 = "LAYERFS_BASE_PATH_2"
	KeyBasePath3 = "LAYERFS_BASE_PATH_3"
	KeyDebug     = "LAYERFS_DEBUG"
)

// BasePathKeys lists the base path keys from lowest to highest precedence.
var BasePathKeys = [...]string{KeyBasePath1, KeyBasePath2, KeyBasePath3}

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Settings is the configuration established from one or more files.
type Settings struct {
	WriteDir  string
	BasePaths [len(BasePathKeys)]string
	Debug     bool
}

// Handler is the principal implementation for reading configuration.
type Handler struct {
	GenericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
	}
}

// ReadGeneric reads the given files into a map (map[key]value).
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericHandler.Read(filenames...)
}

// MapKeyToString returns the value for key, or an empty string if absent.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToBool returns the value for key as a boolean. Absent or malformed
// values are false.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string) bool {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return false
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}

	return boolValue
}

// EstablishSettings reads the given files and returns the [Settings] they
// describe. Keys in later files override those of earlier ones.
func (c *Handler) EstablishSettings(filenames ...string) (*Settings, error) {
	envMap, err := c.ReadGeneric(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config-establish) %w", err)
	}

	settings := &Settings{
		WriteDir: c.MapKeyToString(envMap, KeyWriteDir),
		Debug:    c.MapKeyToBool(envMap, KeyDebug),
	}

	for i, key := range BasePathKeys {
		settings.BasePaths[i] = c.MapKeyToString(envMap, key)
	}

	return settings, nil
}
