// Package logging configures the shared logrus instance for all
// PyReach entrypoints, including rotating file output and routing of
// gin's writers through logrus.
package logging

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var setupOnce sync.Once

// Formatter renders log entries as:
//
//	[2026-08-24 20:14:04] [info ] [server.go:42] session opened
type Formatter struct{}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *log.Entry) ([]byte, error) {
	var buffer *bytes.Buffer
	if entry.Buffer != nil {
		buffer = entry.Buffer
	} else {
		buffer = &bytes.Buffer{}
	}

	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	message := strings.TrimRight(entry.Message, "\r\n")

	level := entry.Level.String()
	if level == "warning" {
		level = "warn"
	}

	var fields []string
	for key, value := range entry.Data {
		fields = append(fields, fmt.Sprintf("%s=%v", key, value))
	}
	fieldsStr := ""
	if len(fields) > 0 {
		fieldsStr = " " + strings.Join(fields, " ")
	}

	if entry.Caller != nil {
		fmt.Fprintf(buffer, "[%s] [%-5s] [%s:%d] %s%s\n",
			timestamp, level, filepath.Base(entry.Caller.File), entry.Caller.Line, message, fieldsStr)
	} else {
		fmt.Fprintf(buffer, "[%s] [%-5s] %s%s\n", timestamp, level, message, fieldsStr)
	}
	return buffer.Bytes(), nil
}

// Setup configures the standard logrus logger. When file is non-empty,
// output rotates via lumberjack; otherwise logs go to stdout. Gin's
// default writers are redirected through logrus so framework output
// shares the same format. Safe to call more than once.
func Setup(file, level string) {
	setupOnce.Do(func() {
		log.SetFormatter(&Formatter{})
		log.SetReportCaller(true)

		if parsed, err := log.ParseLevel(level); err == nil {
			log.SetLevel(parsed)
		}

		if file != "" {
			log.SetOutput(&lumberjack.Logger{
				Filename:   file,
				MaxSize:    50, // megabytes
				MaxBackups: 5,
				MaxAge:     28, // days
				Compress:   true,
			})
		}

		gin.DefaultWriter = log.StandardLogger().Writer()
		gin.DefaultErrorWriter = log.StandardLogger().WriterLevel(log.ErrorLevel)
	})
}
