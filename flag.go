package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
)

type logLevelFlag struct {
	value slog.Level
}

func (l *logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level: %s", value)
	}
	l.value = v
	return nil
}

// defined flags
var (
	levelFlag   logLevelFlag
	typeFlag    = flag.String("type", "d", "element type of vectors: c (uint8), i (int64), u (uint64), f (float32) or d (float64)")
	opFlag      = flag.String("op", "", "operation to perform")
	fileFlag    = flag.String("file", "", "evaluates all cases in this YAML file")
	humanFlag   = flag.Bool("human", false, "show numbers with thousands separators")
	logFileFlag = flag.String("logfile", "", "writes logs to this file instead of the console")
)

func init() {
	levelFlag.value = slog.LevelWarn
	flag.Var(&levelFlag, "loglevel", "log level name")
}
