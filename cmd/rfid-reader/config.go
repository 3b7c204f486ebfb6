package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rfid-proxy/rfid-go/pkg/inventory"
	"github.com/rfid-proxy/rfid-go/pkg/reader"
	"github.com/rfid-proxy/rfid-go/pkg/simulator"
	"github.com/rfid-proxy/rfid-go/pkg/transport"
	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

// SimulatorPort selects the built-in simulated reader instead of a serial
// port.
const SimulatorPort = "sim"

// Config holds the reader host configuration.
type Config struct {
	Port         string        `yaml:"port"`
	Baud         int           `yaml:"baud"`
	Address      int           `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	PollAttempts int           `yaml:"poll_attempts"`
	ProtocolLog  string        `yaml:"protocol_log"`
	LogLevel     string        `yaml:"log_level"`
	SearchEPC    string        `yaml:"search_epc"`

	// Settings applied after opening the port, before the command runs.
	Power    *int `yaml:"power"`
	ScanTime *int `yaml:"scan_time"`
	Buzzer   *int `yaml:"buzzer"`

	Simulator SimulatorConfig `yaml:"simulator"`
}

// SimulatorConfig describes the simulated reader used with port "sim".
type SimulatorConfig struct {
	Address uint8          `yaml:"address"`
	Antenna uint8          `yaml:"antenna"`
	Tags    []SimulatorTag `yaml:"tags"`
}

// SimulatorTag is a tag placed in the simulated reader's field.
type SimulatorTag struct {
	EPC  string `yaml:"epc"`
	RSSI uint8  `yaml:"rssi"`
}

// Defaults for the serial reader.
const (
	DefaultPollAttempts = 300
	DefaultLogLevel     = "info"
)

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		Port:         transport.DefaultSerialPort,
		Baud:         transport.DefaultBaudRate,
		Address:      int(wire.BroadcastAddress),
		ReadTimeout:  transport.DefaultReadTimeout,
		PollAttempts: DefaultPollAttempts,
		LogLevel:     DefaultLogLevel,
	}
}

// LoadConfig reads a YAML configuration file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		return fmt.Errorf("unknown log level: %s", cfg.LogLevel)
	}
	if cfg.Baud <= 0 {
		return fmt.Errorf("baud rate must be positive, got %d", cfg.Baud)
	}
	if cfg.Address < 0 || cfg.Address > 0xFF {
		return fmt.Errorf("address must be 0-255, got %d", cfg.Address)
	}
	if cfg.PollAttempts <= 0 {
		return fmt.Errorf("poll attempts must be positive, got %d", cfg.PollAttempts)
	}
	if cfg.ReadTimeout < 0 {
		return fmt.Errorf("read timeout must be positive, got %v", cfg.ReadTimeout)
	}
	if cfg.SearchEPC != "" {
		if _, err := wire.ParseHex(cfg.SearchEPC); err != nil {
			return fmt.Errorf("search EPC: %w", err)
		}
	}
	if err := checkRange("power", cfg.Power, reader.MinPower, reader.MaxPower); err != nil {
		return err
	}
	if err := checkRange("scan time", cfg.ScanTime, reader.MinScanTime, reader.MaxScanTime); err != nil {
		return err
	}
	if err := checkRange("buzzer", cfg.Buzzer, 0, 0xFF); err != nil {
		return err
	}
	if cfg.Simulator.Antenna != 0 {
		if _, err := inventory.AntennaCode(cfg.Simulator.Antenna); err != nil {
			return fmt.Errorf("simulator: %w", err)
		}
	}
	for i, tag := range cfg.Simulator.Tags {
		if _, err := wire.ParseHex(tag.EPC); err != nil {
			return fmt.Errorf("simulator tag %d: %w", i+1, err)
		}
	}
	return nil
}

func checkRange(name string, v *int, lo, hi int) error {
	if v == nil {
		return nil
	}
	if *v < lo || *v > hi {
		return fmt.Errorf("%s must be %d-%d, got %d", name, lo, hi, *v)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Port == "" {
		cfg.Port = transport.DefaultSerialPort
	}
	if cfg.Baud == 0 {
		cfg.Baud = transport.DefaultBaudRate
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = transport.DefaultReadTimeout
	}
	if cfg.PollAttempts == 0 {
		cfg.PollAttempts = DefaultPollAttempts
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// searchBytes returns the configured search EPC, or nil.
func (c *Config) searchBytes() []byte {
	if c.SearchEPC == "" {
		return nil
	}
	epc, err := wire.ParseHex(c.SearchEPC)
	if err != nil {
		return nil
	}
	return epc
}

// simulatorConfig converts the YAML simulator section.
func (c *Config) simulatorConfig() (simulator.Config, error) {
	sc := simulator.Config{
		Address: c.Simulator.Address,
		Antenna: c.Simulator.Antenna,
	}
	for i, tag := range c.Simulator.Tags {
		epc, err := wire.ParseHex(tag.EPC)
		if err != nil {
			return sc, fmt.Errorf("simulator tag %d: %w", i+1, err)
		}
		sc.Tags = append(sc.Tags, inventory.Tag{RSSI: tag.RSSI, EPC: epc})
	}
	return sc, nil
}
