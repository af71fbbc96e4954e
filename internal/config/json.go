// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		Argon    struct {
			Time    uint32 `json:"time"`
			Memory  uint32 `json:"memory"`
			Threads uint8  `json:"threads"`
		} `json:"argon,omitempty"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver         string   `json:"driver"`
			DSN            string   `json:"dsn"`
			AdminDSN       string   `json:"admin_dsn"`
			Name           string   `json:"name"`
			ConnectRetries uint64   `json:"connect_retries"`
			ConnectBackoff Duration `json:"connect_backoff"`
			QueryTimeout   Duration `json:"query_timeout"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
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
			LogLevel: jsonCfg.App.LogLevel,
			Argon: Argon{
				Time:    jsonCfg.App.Argon.Time,
				Memory:  jsonCfg.App.Argon.Memory,
				Threads: jsonCfg.App.Argon.Threads,
			},
		},
		Storage: Storage{
			DB: DB{
				Driver:         jsonCfg.Storage.DB.Driver,
				DSN:            jsonCfg.Storage.DB.DSN,
				AdminDSN:       jsonCfg.Storage.DB.AdminDSN,
				Name:           jsonCfg.Storage.DB.Name,
				ConnectRetries: jsonCfg.Storage.DB.ConnectRetries,
				ConnectBackoff: time.Duration(jsonCfg.Storage.DB.ConnectBackoff),
				QueryTimeout:   time.Duration(jsonCfg.Storage.DB.QueryTimeout),
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
