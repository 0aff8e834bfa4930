package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Configuration struct {
	Players  []string      `mapstructure:"players"`
	Seats    int           `mapstructure:"seats"`
	HandSize int           `mapstructure:"hand_size"`
	Seed     int64         `mapstructure:"seed"`
	Plain    bool          `mapstructure:"plain"`
	Pause    time.Duration `mapstructure:"pause"`
	Table    TableConf     `mapstructure:"table"`
}

type TableConf struct {
	TTL           time.Duration `mapstructure:"ttl"`
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// flags maps configuration keys to the command line flags that override them.
var flags = map[string]string{
	"players":   "players",
	"seats":     "seats",
	"hand_size": "hand-size",
	"seed":      "seed",
	"plain":     "plain",
	"pause":     "pause",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("players", consts.DefaultPlayers)
	v.SetDefault("seats", 0)
	v.SetDefault("hand_size", consts.HandSize)
	v.SetDefault("seed", 0)
	v.SetDefault("plain", false)
	v.SetDefault("pause", consts.MessagePause)
	v.SetDefault("table.ttl", consts.TableTTL)
	v.SetDefault("table.idle_ttl", consts.TableIdleTTL)
	v.SetDefault("table.sweep_interval", consts.TableSweepInterval)
}

// Load reads defaults, then configFile when given, then UNO_* environment
// variables, then the flags of cmd that were set. cmd may be nil.
func Load(configFile string, cmd *cobra.Command) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("UNO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w%v", consts.ErrorsConfigInvalid, err)
		}
	}
	if cmd != nil {
		for key, name := range flags {
			flag := cmd.Flags().Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Configuration{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w%v", consts.ErrorsConfigInvalid, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Configuration) validate() error {
	cfg.Players = trimNames(cfg.Players)
	if cfg.Seats == 0 {
		cfg.Seats = len(cfg.Players)
	}
	if cfg.Seats < consts.MinPlayers || cfg.Seats > consts.MaxPlayers {
		return fmt.Errorf("%wseats must be between %d and %d, got %d", consts.ErrorsGamePlayersInvalid, consts.MinPlayers, consts.MaxPlayers, cfg.Seats)
	}
	if cfg.HandSize < consts.MinHandSize || cfg.HandSize > consts.MaxHandSize {
		return fmt.Errorf("%whand size must be between %d and %d, got %d", consts.ErrorsHandSizeInvalid, consts.MinHandSize, consts.MaxHandSize, cfg.HandSize)
	}
	if cfg.Table.SweepInterval <= 0 {
		return fmt.Errorf("%wsweep interval must be positive", consts.ErrorsConfigInvalid)
	}
	return nil
}

func trimNames(names []string) []string {
	trimmed := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			trimmed = append(trimmed, name)
		}
	}
	return trimmed
}
