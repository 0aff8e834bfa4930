package main

import (
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "uno",
	Short: "UNO card game",
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a hot-seat game on this terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile, cmd)
		if err != nil {
			return err
		}
		return play(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")

	playCmd.Flags().StringSlice("players", nil, "player names, comma separated")
	playCmd.Flags().Int("seats", 0, "number of players, missing names are filled in")
	playCmd.Flags().Int("hand-size", consts.HandSize, "cards dealt to each player")
	playCmd.Flags().Int64("seed", 0, "shuffle seed, 0 picks a random one")
	playCmd.Flags().Bool("plain", false, "disable colors")
	playCmd.Flags().Duration("pause", consts.MessagePause, "pause after every message")
	rootCmd.AddCommand(playCmd)
}

func play(cfg *config.Configuration) error {
	if cfg.Plain {
		color.DisablePainting()
	}

	stop := make(chan struct{})
	defer close(stop)
	service.Watch(cfg.Table.SweepInterval, cfg.Table.TTL, cfg.Table.IdleTTL, stop)

	opts := []game.Option{game.WithHandSize(cfg.HandSize)}
	if cfg.Seed != 0 {
		opts = append(opts, game.WithShuffler(game.NewSeededShuffler(cfg.Seed)))
	}
	table, err := service.CreateTable(player.Names(cfg.Seats, cfg.Players), opts...)
	if err != nil {
		return err
	}
	defer service.DeleteTable(table.ID)

	console := ui.NewConsole(os.Stdin, color.Stdout).WithPause(cfg.Pause)
	human := player.NewConsolePlayer(console, table.Players)
	table.Subscribe(human)
	human.Welcome()

	winner, err := table.Run(human)
	if err != nil {
		return err
	}
	log.Infof("table %s won by %s\n", table.ID, table.Players[winner])
	return nil
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
