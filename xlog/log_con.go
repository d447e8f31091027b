package xlog

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/hostm-sh/hostm/config"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

func NewConsoleWriter(f io.Writer) LevelWriter {
	if file, ok := f.(*os.File); ok && term.IsTerminal(int(file.Fd())) && !*config.Dumb {
		consoleWriter := &zerolog.ConsoleWriter{
			Out: f,
			FormatTimestamp: func(i any) string {
				ms, _ := i.(json.Number)
				msi, _ := ms.Int64()
				if msi == 0 {
					return ""
				}
				ts := time.UnixMilli(msi)
				if now := time.Now(); ts.Year() != now.Year() {
					return ts.Format("2006-01-02 15:04:05")
				} else if ts.YearDay() != now.YearDay() {
					return ts.Format("01-02 15:04:05")
				} else {
					return ts.Format(time.Kitchen)
				}
			},
			FieldsExclude: []string{zerolog.ErrorStackFieldName},
		}
		if !*config.Verbose {
			return &zerolog.FilteredLevelWriter{
				Level:  LevelInfo,
				Writer: zerolog.LevelWriterAdapter{Writer: consoleWriter},
			}
		}
		return zerolog.LevelWriterAdapter{Writer: consoleWriter}
	}
	return zerolog.LevelWriterAdapter{Writer: f}
}
func StdoutWriter() LevelWriter { return NewConsoleWriter(os.Stdout) }
func StderrWriter() LevelWriter { return NewConsoleWriter(os.Stderr) }
