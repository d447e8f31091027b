package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"

	atomicfile "github.com/natefinch/atomic"
)

type Config struct {
	HostsFile string `json:"hosts_file"` // Default hosts file, empty for the system file
	LogFile   string `json:"log_file"`   // Rotating log file name, empty to log to stderr only
}

func (c *Config) SetDefaults() {}

func configPath() string {
	return filepath.Join(Home(), "config.json")
}
func readConfig() (out Config, err error) {
	data, err := os.ReadFile(configPath())
	if err != nil && !os.IsNotExist(err) {
		return
	}
	if len(data) != 0 {
		err = json.Unmarshal(data, &out)
	} else {
		err = nil
	}
	out.SetDefaults()
	return
}
func writeConfigLocked(in *Config) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}
	return atomicfile.WriteFile(configPath(), bytes.NewReader(data))
}

var settings atomic.Pointer[Config]

func Update(update func(*Config) error) error {
	return WithLock(func() error {
		c, err := readConfig()
		if err != nil {
			return err
		}
		if update != nil {
			if err = update(&c); err != nil {
				return err
			}
			if err = writeConfigLocked(&c); err != nil {
				return err
			}
		}
		settings.Store(&c)
		return nil
	})
}

func Get() *Config {
	res := settings.Load()
	if res == nil {
		c, err := readConfig()
		if err != nil {
			panic(err)
		}
		settings.Store(&c)
		return &c
	}
	return res
}
