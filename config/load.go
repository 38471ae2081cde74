// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Package config resolves Maestro portal credentials from the
// environment and from an on-disk credentials file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Credentials is the on-disk credentials file format.
type Credentials struct {
	Server string `json:"server"`
	Login  string `json:"login"`
	Key    string `json:"key"`
}

// DefaultPath returns the default credentials file location,
// $HOME/.config/botmaestro/credentials.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "botmaestro", "credentials.json")
}

// LoadFile loads configuration from the JSON file given by path and
// decodes it into cfg.
func LoadFile(cfg interface{}, path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	err = json.Unmarshal(buf, cfg)
	if err != nil {
		return fmt.Errorf("error decoding config %q: %v", path, err)
	}
	return nil
}

// Load resolves credentials for the CLI. The file at path (or
// DefaultPath when path is empty) supplies the base values; a missing
// file is not an error. The BOTMAESTRO_SERVER, BOTMAESTRO_LOGIN and
// BOTMAESTRO_KEY environment variables override file values.
func Load(path string) (Credentials, error) {
	var creds Credentials
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		err := LoadFile(&creds, path)
		if err != nil && !os.IsNotExist(err) {
			return Credentials{}, err
		}
	}
	if s := os.Getenv("BOTMAESTRO_SERVER"); s != "" {
		creds.Server = s
	}
	if s := os.Getenv("BOTMAESTRO_LOGIN"); s != "" {
		creds.Login = s
	}
	if s := os.Getenv("BOTMAESTRO_KEY"); s != "" {
		creds.Key = s
	}
	return creds, nil
}
