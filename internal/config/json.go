// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of the configuration.
type StructuredJSONConfig struct {
	App struct {
		Mode     string `json:"mode"`
		LogLevel string `json:"log_level"`
		LogDir   string `json:"log_dir"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		DB     struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Bolt struct {
			Path string `json:"path"`
		} `json:"bolt,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		APIURL         string   `json:"api_url"`
		LocalAPI       string   `json:"local_api"`
		CloudAPI       string   `json:"cloud_api"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		StatusInterval       Duration `json:"status_interval"`
		NetworkCheckInterval Duration `json:"network_check_interval"`
		NetworkProbeAddress  string   `json:"network_probe_address"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Mode:     jsonCfg.App.Mode,
			LogLevel: jsonCfg.App.LogLevel,
			LogDir:   jsonCfg.App.LogDir,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DB:     DB{DSN: jsonCfg.Storage.DB.DSN},
			Bolt:   Bolt{Path: jsonCfg.Storage.Bolt.Path},
		},
		Adapter: Adapter{
			APIURL:         jsonCfg.Adapter.APIURL,
			LocalAPI:       jsonCfg.Adapter.LocalAPI,
			CloudAPI:       jsonCfg.Adapter.CloudAPI,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			StatusInterval:       time.Duration(jsonCfg.Workers.StatusInterval),
			NetworkCheckInterval: time.Duration(jsonCfg.Workers.NetworkCheckInterval),
			NetworkProbeAddress:  jsonCfg.Workers.NetworkProbeAddress,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
