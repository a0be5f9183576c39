// Copyright ©2026 The acdcontrol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/acdtools/acdcontrol"
)

// config is the optional user configuration.
type config struct {
	// Serial selects a display when several are attached. The
	// --serial flag takes precedence.
	Serial string

	// Devices extends the builtin model table.
	Devices []acdcontrol.Device
}

type configFile struct {
	Serial  string `yaml:"serial"`
	Devices []struct {
		Vendor  uint16 `yaml:"vendor"`
		Product uint16 `yaml:"product"`
		Name    string `yaml:"name"`
		Min     int    `yaml:"min"`
		Max     int    `yaml:"max"`
	} `yaml:"devices"`
}

// loadConfig reads the configuration file at path, falling back to
// config.yaml in the user configuration directory. A missing default
// file is not an error; a missing explicit file is.
func loadConfig(path string) (config, error) {
	explicit := path != ""
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return config{}, nil
		}
		path = filepath.Join(dir, "acdcontrol", "config.yaml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config{}, nil
		}
		return config{}, err
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (config, error) {
	var f configFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return config{}, fmt.Errorf("parse config: %v", err)
	}
	cfg := config{Serial: f.Serial}
	for _, d := range f.Devices {
		max := d.Max
		if max == 0 {
			max = 255
		}
		cfg.Devices = append(cfg.Devices, acdcontrol.Device{
			Vendor:  d.Vendor,
			Product: d.Product,
			Name:    d.Name,
			Min:     d.Min,
			Max:     max,
		})
	}
	return cfg, nil
}
