// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"io"

	"github.com/ghodss/yaml"
)

// Dump writes the given config to out as YAML.
func Dump(out io.Writer, cfg interface{}) error {
	y, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(y)
	return err
}
