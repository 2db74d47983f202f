package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/rs/zerolog/log"
)

const path = "infra/config"

// MustLoad loads the config for the given key
func MustLoad(key string, v interface{}) []byte {
	b, err := Load(path, key, v)
	if err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}
	return b
}

// Load loads the config for the given key from the given dir.
func Load(dir, key string, v interface{}) ([]byte, error) {
	b, err := ioutil.ReadFile(fmt.Sprintf("%s/%s.json", dir, key))
	if err != nil {
		return nil, fmt.Errorf("could not read config for %s: %w", key, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal the config for %s: %w", key, err)
	}

	log.Info().Str("config", key).Msg("loaded default config")

	return b, nil
}
