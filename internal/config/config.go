package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var (
	ErrInvalidSymbol    = errors.New("symbol must be a single character")
	ErrDuplicatedSymbol = errors.New("symbol is used more than once")
	ErrNotEnoughPlayers = errors.New("at least two players are required")
	ErrEmptyPlayerName  = errors.New("player name is empty")
)

type Config struct {
	LogLevel  string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	EmptyCell string   `yaml:"empty-cell" env:"EMPTY_CELL" env-default:"o"`
	Players   []Player `yaml:"players"`
}

type Player struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

// DefaultPlayers - used when the config file lists none. Yellows move first.
func DefaultPlayers() []Player {
	return []Player{
		{Name: "Yellows", Symbol: "Y"},
		{Name: "Reds", Symbol: "R"},
	}
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config file at path, or only the environment when path is empty, and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if len(config.Players) == 0 {
		config.Players = DefaultPlayers()
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if len(that.Players) < 2 {
		return fmt.Errorf("%w: got %d", ErrNotEnoughPlayers, len(that.Players))
	}

	empty, err := singleRune(that.EmptyCell)
	if err != nil {
		return fmt.Errorf("empty-cell: %w", err)
	}

	seen := map[rune]string{empty: "empty-cell"}
	for _, player := range that.Players {
		if strings.TrimSpace(player.Name) == "" {
			return ErrEmptyPlayerName
		}

		symbol, err := singleRune(player.Symbol)
		if err != nil {
			return fmt.Errorf("player %q: %w", player.Name, err)
		}

		if owner, ok := seen[symbol]; ok {
			return fmt.Errorf("%w: %q by %q and %q", ErrDuplicatedSymbol, symbol, owner, player.Name)
		}

		seen[symbol] = player.Name
	}

	return nil
}

// EmptyRune - the placeholder drawn for unoccupied cells, 0 when it is not set properly.
func (that *Config) EmptyRune() rune {
	r, err := singleRune(that.EmptyCell)
	if err != nil {
		return 0
	}

	return r
}

// GamePlayers - the configured players, in turn order.
func (that *Config) GamePlayers() ([]entity.Player, error) {
	players := make([]entity.Player, 0, len(that.Players))
	for _, p := range that.Players {
		symbol, err := singleRune(p.Symbol)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", p.Name, err)
		}

		player, err := entity.NewPlayer(p.Name, symbol)
		if err != nil {
			return nil, fmt.Errorf("failed to create player %q: %w", p.Name, err)
		}

		players = append(players, player)
	}

	return players, nil
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
	}

	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}
