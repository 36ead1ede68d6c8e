package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"room-crawler/internal/config"
	"room-crawler/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated room chain as YAML",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

type dungeonDump struct {
	Seed    string         `yaml:"seed"`
	Width   int            `yaml:"width"`
	Height  int            `yaml:"height"`
	DeadEnd bool           `yaml:"dead_end"`
	Events  map[string]int `yaml:"events"`
	Rooms   []roomDump     `yaml:"rooms"`
}

type roomDump struct {
	X        int      `yaml:"x"`
	Y        int      `yaml:"y"`
	Openings []string `yaml:"openings,flow"`
	Event    string   `yaml:"event,omitempty"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dump, err := generateDungeon(cfg)
	if err != nil {
		return err
	}
	logger.Debug("dungeon generated", zap.String("seed", dump.Seed), zap.Int("rooms", len(dump.Rooms)))
	return writeYAML(cmd.OutOrStdout(), dump)
}

func generateDungeon(cfg *config.Config) (*dungeonDump, error) {
	seed := int32(rand.New(rand.NewSource(time.Now().UnixNano())).Uint32())
	if cfg.Seed != "" {
		var err error
		if seed, err = config.ParseSeed(cfg.Seed); err != nil {
			return nil, err
		}
	}

	grid := cfg.NewGrid()
	res, err := generate.Generate(cfg.Generator(rand.New(rand.NewSource(int64(seed)))), grid)
	if err != nil {
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}

	dump := &dungeonDump{
		Seed:    config.FormatSeed(seed),
		Width:   grid.Width,
		Height:  grid.Height,
		DeadEnd: res.DeadEnd,
		Events:  make(map[string]int),
	}
	for kind, n := range generate.CountEvents(res.Rooms) {
		dump.Events[kind.String()] = n
	}
	for _, r := range res.Rooms {
		rd := roomDump{X: r.Pos.X, Y: r.Pos.Y}
		for _, d := range r.Openings.List() {
			rd.Openings = append(rd.Openings, d.String())
		}
		if r.Event.Pending() {
			rd.Event = r.Event.String()
		}
		dump.Rooms = append(dump.Rooms, rd)
	}
	return dump, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
