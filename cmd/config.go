package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "xcskip"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	schemeFlagName       = "scheme"
	blueprintFlagName    = "blueprint"
	matchFlagName        = "match"
	dryRunFlagName       = "dry-run"
	listParallelFlagName = "parallel"
	listFormatFlagName   = "format"
	verboseFlagName      = "verbose"
	logFileFlagName      = "log-file"

	schemePathKey   = "scheme.path"
	blueprintKey    = "scheme.blueprint"
	matchKey        = "scheme.match"
	listParallelKey = "list.parallel"
	listFormatKey   = "list.format"

	defaultSchemePath   = "BGMApp/BGMApp.xcodeproj/xcshareddata/xcschemes/Background Music.xcscheme"
	defaultBlueprint    = "BGMAppUITests"
	defaultMatch        = "first"
	defaultListParallel = 1
	defaultListFormat   = "table"

	envPrefix = "XCSKIP"

	logFilenameKey     = "log.filename"
	logLevelKey        = "log.level"
	logConsoleLevelKey = "log.console_level"
	logNoColorKey      = "log.no_color"
	logVerboseKey      = "log.verbose"
	logMaxSizeKey      = "log.max_size"
	logMaxBackupsKey   = "log.max_backups"
	logMaxAgeKey       = "log.max_age"
	logCompressKey     = "log.compress"

	defaultLogFilename     = ""
	defaultLogLevel        = "info"
	defaultLogConsoleLevel = "warn"
	defaultLogNoColor      = false
	defaultLogVerbose      = false
	defaultLogMaxSize      = 10
	defaultLogMaxBackups   = 3
	defaultLogMaxAge       = 28
	defaultLogCompress     = true
)

var globalLogger *slog.Logger

// configReadErr holds a config file error seen during init, reported once
// the logger exists.
var configReadErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(schemePathKey, defaultSchemePath)
	viper.SetDefault(blueprintKey, defaultBlueprint)
	viper.SetDefault(matchKey, defaultMatch)
	viper.SetDefault(listParallelKey, defaultListParallel)
	viper.SetDefault(listFormatKey, defaultListFormat)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logConsoleLevelKey, defaultLogConsoleLevel)
	viper.SetDefault(logNoColorKey, defaultLogNoColor)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		configReadErr = err
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// Records from log.console_level upward go to console. When logPath is set
// they are also written to a rotating log file; otherwise no file is created.
// Verbose forces debug on both.
func configureLogger(console io.Writer, logPath string, verbose bool) {
	fileLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	consoleLevel := parseSlogLevel(viper.GetString(logConsoleLevelKey), slog.LevelWarn)

	if verbose {
		fileLevel = slog.LevelDebug
		consoleLevel = slog.LevelDebug
	}

	handler := &fanoutHandler{
		consoleHandler: tint.NewHandler(console, &tint.Options{
			Level:      consoleLevel,
			TimeFormat: time.Kitchen,
			NoColor:    viper.GetBool(logNoColorKey),
		}),
	}

	if logPath = strings.TrimSpace(logPath); logPath != "" {
		logWriter := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}

		handler.fileHandler = slog.NewTextHandler(logWriter, &slog.HandlerOptions{
			AddSource: true,
			Level:     fileLevel,
		})
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
