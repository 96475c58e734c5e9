package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yatzbim/PokeQuery/cache"
	"github.com/yatzbim/PokeQuery/global"
	"github.com/yatzbim/PokeQuery/pokeapi"
	"github.com/yatzbim/PokeQuery/pokenet"
	"github.com/yatzbim/PokeQuery/rendering"
	"github.com/yatzbim/PokeQuery/views/rankview"
	"golang.org/x/term"
)

const usage = `usage: pokequery <command> [flags]

commands:
  rank <location>   rank the pokemon found at a location
  types [type]      list the known types, or show what one type hits for 0x, 0.5x and 2x
`

// sources holds the flags shared by every command
type sources struct {
	chartPath  string
	rosterPath string
	version    string
	offline    bool
	strict     bool
	verbose    bool
}

func (s *sources) register(flags *flag.FlagSet) {
	flags.StringVar(&s.chartPath, "chart", "", "YAML type chart to use instead of PokeAPI's")
	flags.StringVar(&s.rosterPath, "roster", "", "YAML roster to take the pokemon from instead of PokeAPI")
	flags.StringVar(&s.version, "version", "", "only count encounters from this game version (e.g. red)")
	flags.BoolVar(&s.offline, "offline", false, "never talk to PokeAPI, falls back to the built-in type chart")
	flags.BoolVar(&s.strict, "strict", false, "fail on types missing from the type chart")
	flags.BoolVar(&s.verbose, "v", false, "print init logs to the console and log at debug level")
}

func main() {
	args := os.Args[1:]

	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch args[0] {
	case "rank":
		err = rankMain(ctx, args[1:])
	case "types":
		err = typesMain(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", args[0], usage)
		os.Exit(2)
	}

	if err != nil {
		log.Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func rankMain(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("rank", flag.ExitOnError)
	var src sources
	src.register(flags)
	plain := flags.Bool("plain", false, "print tab separated values instead of a table")
	flags.Parse(args)

	if flags.NArg() != 1 {
		return errors.New("rank needs exactly one location, e.g. pokequery rank pallet-town")
	}
	location := strings.ToLower(flags.Arg(0))

	global.GlobalInit(src.verbose)
	if src.verbose {
		global.UpdateLogLevel(zerolog.DebugLevel)
	}
	log.Logger = log.With().Str("run_id", uuid.NewString()).Logger()

	client, closeClient, err := newClient(src)
	if err != nil {
		return err
	}
	defer closeClient()

	chart, err := loadChart(ctx, client, src)
	if err != nil {
		return err
	}

	var provider pokenet.CreatureProvider = client
	if src.rosterPath != "" {
		provider, err = loadRoster(src.rosterPath)
		if err != nil {
			return err
		}
	} else if src.offline {
		return errors.New("-offline needs a -roster to take the pokemon from")
	}

	start := time.Now()
	comparer, err := pokenet.NewLocationComparer(ctx, chart, provider, location)
	if err != nil {
		return err
	}

	scored, err := comparer.ScorePokemon()
	if err != nil {
		return err
	}

	log.Info().
		Str("location", location).
		Int("pokemon_count", len(scored)).
		Dur("took", time.Since(start)).
		Msg("ranked location")

	if *plain {
		fmt.Print(rendering.PlainRanking(scored))
		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(rendering.RankingTable(scored, 0))
		return nil
	}

	global.StopLogging()
	defer global.ContinueLogging()

	_, err = tea.NewProgram(rankview.NewModel(location, scored), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func typesMain(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("types", flag.ExitOnError)
	var src sources
	src.register(flags)
	flags.Parse(args)

	global.GlobalInit(src.verbose)
	if src.verbose {
		global.UpdateLogLevel(zerolog.DebugLevel)
	}

	client, closeClient, err := newClient(src)
	if err != nil {
		return err
	}
	defer closeClient()

	chart, err := loadChart(ctx, client, src)
	if err != nil {
		return err
	}

	if flags.NArg() == 0 {
		for _, typeName := range chart.Types() {
			fmt.Println(rendering.TypeBadge(typeName))
		}
		return nil
	}

	matchup, ok := chart.Matchup(flags.Arg(0))
	if !ok {
		return fmt.Errorf("%w: %s", pokenet.ErrUnknownType, flags.Arg(0))
	}

	fmt.Println(rendering.TypeBadge(matchup.Name))
	for _, line := range []struct {
		label string
		types []string
	}{
		{"0x", matchup.ZeroTimes},
		{"0.5x", matchup.HalfTimes},
		{"2x", matchup.TwoTimes},
	} {
		badges := make([]string, 0, len(line.types))
		for _, t := range line.types {
			badges = append(badges, rendering.TypeBadge(t))
		}
		fmt.Printf("%5s  %s\n", line.label, strings.Join(badges, " "))
	}

	return nil
}

// newClient creates the PokeAPI client and its response cache from the global config.
// An offline client is still returned so callers don't have to nil check it.
func newClient(src sources) (*pokeapi.Client, func(), error) {
	ttl := time.Duration(global.Opt.CacheTTLHours) * time.Hour
	if src.offline {
		return pokeapi.NewClient(global.Opt.ApiBaseUrl, nil, ttl), func() {}, nil
	}

	store, err := cache.Open(global.Opt.CacheLocation)
	if err != nil {
		return nil, nil, fmt.Errorf("opening response cache: %w", err)
	}

	if ttl > 0 {
		if pruned, err := store.Prune(ttl); err != nil {
			log.Warn().Err(err).Msg("could not prune response cache")
		} else if pruned > 0 {
			log.Debug().Int64("pruned", pruned).Msg("pruned stale responses")
		}
	}

	client := pokeapi.NewClient(global.Opt.ApiBaseUrl, store, ttl)
	client.Version = global.Opt.GameVersion
	if src.version != "" {
		client.Version = src.version
	}

	return client, func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("could not close response cache")
		}
	}, nil
}

// loadChart picks the type chart: a chart file, then PokeAPI, then the built-in one
func loadChart(ctx context.Context, client *pokeapi.Client, src sources) (*pokenet.TypeChart, error) {
	chartPath := src.chartPath
	if chartPath == "" {
		chartPath = global.Opt.ChartLocation
	}

	var chart *pokenet.TypeChart
	switch {
	case chartPath != "":
		chartBytes, err := os.ReadFile(chartPath)
		if err != nil {
			return nil, fmt.Errorf("reading type chart: %w", err)
		}
		chart, err = pokenet.LoadTypeChart(chartBytes)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", chartPath, err)
		}
	case src.offline:
		chart = pokenet.DefaultTypeChart()
	default:
		var err error
		chart, err = client.LoadTypeChart(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}

			log.Warn().Err(err).Msg("could not load type chart from PokeAPI, using the built-in chart")
			chart = pokenet.DefaultTypeChart()
		}
	}

	chart.Strict = src.strict || global.Opt.StrictTypes
	return chart, nil
}

func loadRoster(path string) (pokenet.Roster, error) {
	rosterBytes, err := os.ReadFile(path)
	if err != nil {
		return pokenet.Roster{}, fmt.Errorf("reading roster: %w", err)
	}

	roster, err := pokenet.LoadRoster(rosterBytes)
	if err != nil {
		return pokenet.Roster{}, fmt.Errorf("%s: %w", path, err)
	}

	return roster, nil
}
