package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonConfig struct {
	DB struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		User     string `json:"user"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Schema   string `json:"schema"`
	} `json:"db,omitempty"`

	UI struct {
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"ui,omitempty"`

	Crypto struct {
		DecryptPassword string `json:"decrypt_password"`
		DecryptSalt     string `json:"decrypt_salt"`
	} `json:"crypto,omitempty"`

	Auth struct {
		HashingKey    string   `json:"jwt_hashing_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Log struct {
		FilePath string `json:"file_path"`
	} `json:"log,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		ScoreRefreshInterval Duration `json:"score_refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		DB: DBConfig{
			Host:     jsonCfg.DB.Host,
			Port:     jsonCfg.DB.Port,
			User:     jsonCfg.DB.User,
			Password: jsonCfg.DB.Password,
			Name:     jsonCfg.DB.Name,
			Schema:   jsonCfg.DB.Schema,
		},
		UI: UIConfig{
			Username: jsonCfg.UI.Username,
			Password: jsonCfg.UI.Password,
		},
		Crypto: CryptoConfig{
			DecryptPassword: jsonCfg.Crypto.DecryptPassword,
			DecryptSalt:     jsonCfg.Crypto.DecryptSalt,
		},
		Auth: AuthConfig{
			HashingKey:    jsonCfg.Auth.HashingKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Log: LogConfig{
			FilePath: jsonCfg.Log.FilePath,
		},
		Server: ServerConfig{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: WorkersConfig{
			ScoreRefreshInterval: time.Duration(jsonCfg.Workers.ScoreRefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s"
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
