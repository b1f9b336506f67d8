package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-engine/internal/config"
	"github.com/vovakirdan/tetris-engine/internal/session"
	"github.com/vovakirdan/tetris-engine/internal/sources"
	"github.com/vovakirdan/tetris-engine/internal/storage"
	"github.com/vovakirdan/tetris-engine/internal/tetris"
)

var (
	flagGames      int
	flagSeed       int64
	flagSource     string
	flagPieces     string
	flagDifficulty string
	flagTickMs     int
	flagMaxPieces  int
	flagNoSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run simulated games driven by a random bot",
	Long: `Run one or more games to completion with a random bot issuing the
moves. Games advance on a virtual clock, so a full game finishes in
milliseconds regardless of the gravity settings.

Results are recorded in the database unless --no-save is given. The same
seed always produces the same games.

Examples:
  tetris simulate
  tetris simulate --games 10 --seed 42
  tetris simulate --source uniform --difficulty hard
  tetris simulate --pieces I,O,T --no-save
  tetris simulate --games 100 --no-save`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to run")
	simulateCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	simulateCmd.Flags().StringVar(&flagSource, "source", "", "Piece source (overrides config)")
	simulateCmd.Flags().StringVar(&flagPieces, "pieces", "", "Comma-separated piece letters to cycle, e.g. I,O,T (overrides --source)")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simulateCmd.Flags().IntVar(&flagTickMs, "tick", 16, "Virtual clock step in milliseconds")
	simulateCmd.Flags().IntVar(&flagMaxPieces, "max-pieces", 0, "Stop a game after this many pieces (0 = play until game over)")
	simulateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results in the database")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.ValidPreset(preset) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagSource != "" {
		cfg.Session.Source = flagSource
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seq, err := parsePieceList(flagPieces)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sourceName := cfg.Session.Source
	if seq != nil {
		sourceName = "sequence"
	} else if !sources.Exists(sourceName) {
		fmt.Fprintf(os.Stderr, "Error: unknown source %q\n", sourceName)
		fmt.Fprintln(os.Stderr, "Run 'tetris sources' to see available sources.")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Open result storage
	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open results database", "error", err)
			// Continue without storage - games still run
			store = nil
		} else {
			defer store.Close()
		}
	}

	logger.Info("starting simulation",
		"games", flagGames,
		"seed", seed,
		"source", sourceName,
		"tick", time.Duration(flagTickMs)*time.Millisecond)

	var best session.Result
	for i := 0; i < flagGames; i++ {
		gameSeed := seed + int64(i)
		res := simulateGame(logger, cfg, gameSeed, seq)
		logger.Info("game over",
			"game", i+1,
			"seed", gameSeed,
			"score", res.Score,
			"level", res.Level,
			"lines", res.Lines,
			"pieces", res.Pieces,
			"duration", res.Duration)
		if res.Score > best.Score {
			best = res
		}

		if store != nil {
			if _, err := store.SaveResult(storage.Result{
				Score:    res.Score,
				Level:    res.Level,
				Lines:    res.Lines,
				Pieces:   res.Pieces,
				Duration: res.Duration,
				Seed:     gameSeed,
				Source:   sourceName,
			}); err != nil {
				logger.Error("cannot save result", "error", err)
			}
		}
	}

	if flagGames > 1 {
		logger.Info("best game", "score", best.Score, "level", best.Level, "lines", best.Lines)
	}
}

// parsePieceList turns a comma-separated list of piece letters into a
// sequence, or nil when the list is empty.
func parsePieceList(list string) ([]tetris.PieceType, error) {
	if list == "" {
		return nil, nil
	}
	var seq []tetris.PieceType
	for _, name := range strings.Split(list, ",") {
		t, ok := tetris.ParsePieceType(strings.ToUpper(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("invalid piece %q (expected one of I, O, T, S, Z, J, L)", name)
		}
		seq = append(seq, t)
	}
	return seq, nil
}

// simulateGame plays one game to completion on a virtual clock and returns
// its score sheet.
func simulateGame(logger *log.Logger, cfg config.GameConfig, seed int64, seq []tetris.PieceType) session.Result {
	var src tetris.PieceSource
	if seq != nil {
		src = tetris.NewSequenceSource(seq...)
	} else {
		var err error
		src, err = sources.New(cfg.Session.Source, seed)
		if err != nil {
			logger.Fatal("cannot create piece source", "error", err)
		}
	}
	eng := tetris.NewEngine(cfg.Rules(), src)
	sess := session.New(eng, session.Options{LockDelay: cfg.LockDelay()})

	rng := rand.New(rand.NewSource(seed))
	tick := time.Duration(flagTickMs) * time.Millisecond
	if tick <= 0 {
		tick = 16 * time.Millisecond
	}

	// A fixed epoch keeps runs with the same seed byte-identical.
	clock := time.Unix(0, 0).UTC()
	logEvents(logger, sess.Start(clock))

	for !sess.Over() {
		if flagMaxPieces > 0 && sess.Pieces() >= flagMaxPieces {
			break
		}
		if kind, ok := botAction(rng); ok {
			logEvents(logger, sess.Do(kind))
		}
		clock = clock.Add(tick)
		logEvents(logger, sess.Advance(clock))
	}
	return sess.Result(clock)
}

// botAction draws the bot's input for one tick. Half the time the bot does
// nothing and lets gravity work.
func botAction(rng *rand.Rand) (tetris.ActionKind, bool) {
	switch n := rng.Intn(24); {
	case n < 12:
		return 0, false
	case n < 15:
		return tetris.ActionMoveLeft, true
	case n < 18:
		return tetris.ActionMoveRight, true
	case n < 20:
		return tetris.ActionRotateCW, true
	case n == 20:
		return tetris.ActionRotateCCW, true
	case n == 21:
		return tetris.ActionMoveDown, true
	case n == 22:
		return tetris.ActionHardDrop, true
	default:
		return tetris.ActionHold, true
	}
}

// logEvents reports game events at debug level, with level-ups at info
// since they change the pace of the whole game.
func logEvents(logger *log.Logger, evts []session.Event) {
	for _, ev := range evts {
		switch ev := ev.(type) {
		case session.PieceSpawnedEvent:
			logger.Debug("piece spawned", "type", ev.Type, "next", ev.Next)
		case session.PieceLockedEvent:
			logger.Debug("piece locked", "type", ev.Type, "total", ev.Total)
		case session.PieceHeldEvent:
			logger.Debug("piece held", "type", ev.Type)
		case session.LinesClearedEvent:
			logger.Debug("lines cleared", "clear", tetris.LineClearName(ev.Count), "count", ev.Count, "scored", ev.Scored, "rows", ev.Rows)
		case session.LevelUpEvent:
			logger.Info("level up", "level", ev.Level, "gravity", ev.Gravity)
		}
	}
}
