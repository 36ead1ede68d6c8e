package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"room-crawler/internal/component"
	"room-crawler/internal/factory"
	"room-crawler/internal/gamemap"
	"room-crawler/internal/system"
)

var (
	battleHealth      int
	battleAttack      int
	battleShield      int
	battleEnemyName   string
	battleEnemyHealth int
	battleEnemyAttack int
	battleForesight   bool
	battleBoost       bool
	battleMaxRounds   int
)

var battleCmd = &cobra.Command{
	Use:   "battle",
	Short: "Resolve a single battle and print every round",
	Long: `Fights one battle outside a dungeon. Player stats default to the
configured starting stats; flags override them.`,
	Args: cobra.NoArgs,
	RunE: runBattle,
}

func init() {
	f := battleCmd.Flags()
	f.IntVar(&battleHealth, "health", 0, "Player health (0 uses the config)")
	f.IntVar(&battleAttack, "attack", -1, "Player attack (-1 uses the config)")
	f.IntVar(&battleShield, "shield", 0, "Shield potions drunk before the fight")
	f.StringVar(&battleEnemyName, "enemy", "slime", "Enemy name")
	f.IntVar(&battleEnemyHealth, "enemy-health", 2, "Enemy health")
	f.IntVar(&battleEnemyAttack, "enemy-attack", 1, "Enemy attack")
	f.BoolVar(&battleForesight, "foresight", false, "Player has foresight and strikes first")
	f.BoolVar(&battleBoost, "boost", false, "Player drank a strength potion")
	f.IntVar(&battleMaxRounds, "max-rounds", 0, "Round cap (0 uses the config)")
}

func runBattle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	spec := cfg.PlayerSpec()
	if battleHealth > 0 {
		spec.MaxHealth = battleHealth
	}
	if battleAttack >= 0 {
		spec.Attack = battleAttack
	}
	p := factory.NewPlayer(spec, gamemap.Point{})
	for i := 0; i < battleShield; i++ {
		system.ApplyEffect(p, component.EffectShield)
	}
	if battleForesight {
		system.ApplyEffect(p, component.EffectForesight)
	}
	if battleBoost {
		system.ApplyEffect(p, component.EffectDamageBoost)
	}
	if battleEnemyHealth < 1 {
		return fmt.Errorf("enemy-health must be at least 1")
	}
	e := factory.NewEnemy(component.EnemyStats{
		Name:   battleEnemyName,
		Health: battleEnemyHealth,
		Attack: battleEnemyAttack,
	})

	rounds := cfg.MaxRounds
	if battleMaxRounds > 0 {
		rounds = battleMaxRounds
	}
	res := system.Battle(p, e, rounds)
	logger.Debug("battle resolved",
		zap.String("enemy", e.Name),
		zap.Stringer("outcome", res.Outcome),
		zap.Int("rounds", len(res.Rounds)),
	)
	return printBattle(cmd.OutOrStdout(), p, e, res)
}

func printBattle(w io.Writer, p *component.Player, e *component.Enemy, res system.BattleResult) error {
	order := "simultaneous"
	if res.Foresight {
		order = "player first"
	}
	fmt.Fprintf(w, "%s vs %s (%s)\n", p.Name, e.Name, order)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "round\tdealt\ttaken\tabsorbed\tplayer\tenemy\tshield")
	for _, r := range res.Rounds {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.N, r.PlayerStrike, r.EnemyStrike-r.Absorbed, r.Absorbed, r.PlayerHealth, r.EnemyHealth, r.Shield)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "outcome: %s after %d rounds\n", res.Outcome, len(res.Rounds))
	for _, msg := range res.Expired {
		fmt.Fprintln(w, msg)
	}
	return nil
}
