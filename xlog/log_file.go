package xlog

import (
	"io"
	"path/filepath"

	"github.com/hostm-sh/hostm/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	LogRetentionDays = 28
	LogMaxSizeMB     = 16
	LogCompress      = false
)

// FileWriter returns a rotating log sink. Relative names land in the
// home log directory.
func FileWriter(name string) io.WriteCloser {
	if name == "stderr" {
		return noCloser{DefaultWriter{}}
	}
	if !filepath.IsAbs(name) {
		name = config.LogDir.File(name)
	}
	return &lumberjack.Logger{
		Filename: name,
		MaxSize:  LogMaxSizeMB,
		MaxAge:   LogRetentionDays,
		Compress: LogCompress,
	}
}

type noCloser struct {
	io.Writer
}

func (noCloser) Close() error { return nil }
