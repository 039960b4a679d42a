/*
github.com/hbickel/psweep - Benchmark automation harness for HPC proxy applications.
Copyright (C) 2026 The project authors - hbickel

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/
/*
Basic logging functionality.
*/
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

func init() {
	Init(zapcore.InfoLevel)
}

// Init replaces the package logger with one gated at the given level.
// Called again by binaries that take a verbosity flag.
func Init(level zapcore.Level) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	sugar = l.Sugar()
}

// Print logs args.
func Print(args ...interface{}) {
	sugar.Info(args...)
}

// Printf logs args according to format.
func Printf(format string, args ...interface{}) {
	sugar.Infof(format, args...)
}

// Info logs args at info level.
func Info(args ...interface{}) {
	sugar.Info(args...)
}

// Infof logs args at info level according to format.
func Infof(format string, args ...interface{}) {
	sugar.Infof(format, args...)
}

// Warning logs args at warn level.
func Warning(args ...interface{}) {
	sugar.Warn(args...)
}

// Warningf logs args at warn level according to format.
func Warningf(format string, args ...interface{}) {
	sugar.Warnf(format, args...)
}

// Error logs args at error level.
func Error(args ...interface{}) {
	sugar.Error(args...)
}

// Errorf logs args at error level according to format.
func Errorf(format string, args ...interface{}) {
	sugar.Errorf(format, args...)
}
