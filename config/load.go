package config

import (
	// Go Internal Packages
	"os"

	// Local Packages
	errors "tx-simulator/errors"

	// External Packages
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
)

// Load loads the default configuration and overrides it with the config file at path.
// A missing file is not an error, the defaults are used as is.
func Load(path string) (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(DefaultConfig), yaml.Parser()); err != nil {
		return nil, errors.E(errors.Internal, "cannot parse default config", err)
	}

	if path == "" {
		return k, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return k, nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.E(errors.Invalid, "cannot load config file "+path, err)
	}
	return k, nil
}

// Parse unmarshals k, applies the environment secrets and validates the result.
func Parse(k *koanf.Koanf) (Config, error) {
	appKonf := Config{}
	if err := k.Unmarshal("", &appKonf); err != nil {
		return appKonf, errors.E(errors.Invalid, "cannot unmarshal config", err)
	}

	appKonf = LoadSecrets(appKonf)
	if err := appKonf.Validate(); err != nil {
		return appKonf, err
	}
	return appKonf, nil
}
