package global

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yatzbim/PokeQuery/pokenet"
	"golang.org/x/term"
)

var (
	TERM_WIDTH, TERM_HEIGHT, _ = term.GetSize(int(os.Stdout.Fd()))

	MoveDownKey = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	)
	MoveUpKey = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	)
	BackKey = key.NewBinding(
		key.WithKeys(tea.KeyEsc.String(), "q", tea.KeyCtrlC.String()),
		key.WithHelp("esc/q", "quit"),
	)

	Opt = populateConfig(GlobalConfig{})

	initLogger    = zerolog.Nop()
	previousLevel zerolog.Level
)

// GlobalInit loads the config file and sets up logging. Init messages go to the console
// as well as the log file when shouldLog is set, everything after only goes to the log file.
func GlobalInit(shouldLog bool) {
	configDir := DefaultConfigDir()
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}

	// Basic logging for config debugging
	initLogger = zerolog.New(consoleWriter).With().Timestamp().Logger()

	if err := os.MkdirAll(configDir, 0750); err != nil {
		initLogger.Err(err).Msg("error occured trying to create config dir")
	}

	config, err := LoadConfig(DefaultConfigLocation())
	if err != nil {
		initLogger.Err(err).Str("path", DefaultConfigLocation()).Msg("error occurred while loading config, using defaults")
	}
	Opt = config

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
	}

	fileWriter, err := createFileWriter(configDir)
	if err != nil {
		initLogger.Err(err).Msg("could not create log file, logging to the console instead")
		fileWriter = consoleWriter
	}

	initLogger = zerolog.New(zerolog.MultiLevelWriter(consoleWriter, fileWriter)).With().Timestamp().Logger().Level(level)
	if !shouldLog {
		initLogger = zerolog.Nop()
	}

	// Main global logger
	log.Logger = createLogger(fileWriter, level)
	pokenet.SetInternalLogger(zerologr.New(&log.Logger))

	initLogger.Info().Str("config", DefaultConfigLocation()).Str("api", Opt.ApiBaseUrl).Msg("initialized")
}

func createFileWriter(configDir string) (zerolog.ConsoleWriter, error) {
	rollingWriter, err := NewRollingFileWriter(filepath.Join(configDir, "logs/"), "pokequery")
	if err != nil {
		return zerolog.ConsoleWriter{}, err
	}

	return zerolog.ConsoleWriter{Out: rollingWriter, NoColor: true}, nil
}

func createLogger(writer zerolog.ConsoleWriter, level zerolog.Level) zerolog.Logger {
	return zerolog.New(writer).With().Timestamp().Caller().Logger().Level(level)
}

func StopLogging() {
	previousLevel = log.Logger.GetLevel()
	log.Logger = log.Logger.Level(zerolog.Disabled)
	pokenet.SetInternalLogger(zerologr.New(&log.Logger))
}

func ContinueLogging() {
	log.Logger = log.Logger.Level(previousLevel)
	pokenet.SetInternalLogger(zerologr.New(&log.Logger))
}

func UpdateLogLevel(level zerolog.Level) {
	log.Logger = log.Logger.Level(level)
	pokenet.SetInternalLogger(zerologr.New(&log.Logger))
}
