package main

import (
	"errors"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fabiojmendes/super-jeff/internal/application/session"
	"github.com/fabiojmendes/super-jeff/internal/application/system"
	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/config"
)

const (
	envDB     = "SUPERJEFF_DB"
	envConfig = "SUPERJEFF_CONFIG"
	envLevel  = "SUPERJEFF_LEVEL"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	config   string
	level    string
	seed     int64
	fixed    bool
	db       string
	logLevel string

	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "superjeff",
		Short: "Super Jeff - a tiny platformer with a banana-throwing boss",
		Long: `Super Jeff is a side-scrolling platformer. Walk right, stomp the
patrollers and defeat the monkey before the clock eats your bonus.

Defaults for --db, --config and --level can be set with SUPERJEFF_DB,
SUPERJEFF_CONFIG and SUPERJEFF_LEVEL, also read from a .env file.

Examples:
  superjeff play
  superjeff play --term --fixed --seed 42 --record run.json
  superjeff replay run.json
  superjeff scores level1
  superjeff init ./levels-dev && superjeff play --config ./levels-dev --watch`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.config, "config", "", "Directory with tuning.yaml and levels/ (empty = built-in)")
	pf.StringVar(&opts.level, "level", "level1", "Level name (levels/<name>.txt)")
	pf.Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.BoolVar(&opts.fixed, "fixed", false, "Use a fixed 1/60 s timestep")
	pf.StringVar(&opts.db, "db", "~/.superjeff/runs.db", "Path to the runs database")
	pf.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(newPlayCmd(opts))
	root.AddCommand(newReplayCmd(opts))
	root.AddCommand(newScoresCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newInitCmd(opts))
	return root
}

// setup loads .env, applies environment defaults and builds the logger
func (o *globalOptions) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	flags := cmd.Flags()
	for name, env := range map[string]string{"db": envDB, "config": envConfig, "level": envLevel} {
		if v, ok := os.LookupEnv(env); ok && !flags.Changed(name) {
			if err := flags.Set(name, v); err != nil {
				return err
			}
		}
	}

	lvl, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	o.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "superjeff",
		Level:           lvl,
	})
	return nil
}

func (o *globalOptions) loader() *config.Loader {
	if o.config == "" {
		return config.NewEmbeddedLoader()
	}
	return config.NewLoader(o.config)
}

// load reads the tuning and builds the named level
func (o *globalOptions) load(name string) (*entity.Level, *config.Tuning, error) {
	cfg, err := o.loader().LoadAll(name)
	if err != nil {
		return nil, nil, err
	}
	lvl, err := system.LoadLevel(cfg.Level, cfg.Tuning)
	if err != nil {
		return nil, nil, err
	}
	return lvl, cfg.Tuning, nil
}

// resolveSeed returns the seed flag, or a time based one when unset
func (o *globalOptions) resolveSeed() int64 {
	if o.seed != 0 {
		return o.seed
	}
	return time.Now().UnixNano()
}

// newSession loads level name and wires a session that reloads it from disk on reset
func (o *globalOptions) newSession(name string, seed int64) (*session.Session, error) {
	lvl, tuning, err := o.load(name)
	if err != nil {
		return nil, err
	}
	reload := session.LoaderFunc(func() (*entity.Level, *config.Tuning, error) {
		return o.load(name)
	})
	return session.New(lvl, tuning, rand.New(rand.NewSource(seed)),
		session.WithLogger(o.logger),
		session.WithLoader(reload),
	), nil
}
