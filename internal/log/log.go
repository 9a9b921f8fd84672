package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"mcoo/local-app/internal/model"
)

// Fields carries structured key/value pairs attached to a log message
type Fields = logrus.Fields

// LogMessage represents a message to be logged
type LogMessage struct {
	Level   LogLevel
	Content string
	Fields  Fields
	Context context.Context
}

// Logger writes command, error and info messages from a background goroutine
type Logger struct {
	commandLogger *logrus.Logger
	errorLogger   *logrus.Logger
	infoLogger    *logrus.Logger
	files         []*os.File
	logChan       chan LogMessage
	done          chan struct{}
	wg            sync.WaitGroup
	closeOnce     sync.Once
}

// NewLogger creates a Logger writing to the command, error and info log files named in cfg
func NewLogger(cfg *model.Config, level LogLevel) (*Logger, error) {
	if err := os.MkdirAll(cfg.LogFolder, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	var files []*os.File
	open := func(name string) (*os.File, error) {
		f, err := os.OpenFile(filepath.Join(cfg.LogFolder, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			for _, opened := range files {
				opened.Close()
			}
			return nil, err
		}
		files = append(files, f)
		return f, nil
	}

	commandFile, err := open(cfg.CommandLog)
	if err != nil {
		return nil, fmt.Errorf("failed to open command log file: %w", err)
	}
	errorFile, err := open(cfg.ErrorLog)
	if err != nil {
		return nil, fmt.Errorf("failed to open error log file: %w", err)
	}
	infoFile, err := open(cfg.InfoLog)
	if err != nil {
		return nil, fmt.Errorf("failed to open info log file: %w", err)
	}

	l := newLogger(commandFile, errorFile, infoFile, level)
	l.files = files
	return l, nil
}

// New creates a Logger that sends every stream to w
func New(w io.Writer, level LogLevel) *Logger {
	return newLogger(w, w, w, level)
}

func newLogger(commandOut, errorOut, infoOut io.Writer, level LogLevel) *Logger {
	l := &Logger{
		commandLogger: newLogrus(commandOut, logrus.InfoLevel),
		errorLogger:   newLogrus(errorOut, logrus.ErrorLevel),
		infoLogger:    newLogrus(infoOut, level.toLogrusLevel()),
		logChan:       make(chan LogMessage, 100),
		done:          make(chan struct{}),
	}

	l.wg.Add(1)
	go l.processLogs()

	return l
}

func newLogrus(w io.Writer, level logrus.Level) *logrus.Logger {
	lg := logrus.New()
	lg.SetOutput(w)
	lg.SetLevel(level)
	lg.SetFormatter(&logrus.JSONFormatter{})
	return lg
}

// processLogs handles incoming log messages until the logger is closed,
// then drains whatever is still queued
func (l *Logger) processLogs() {
	defer l.wg.Done()
	for {
		select {
		case msg := <-l.logChan:
			l.write(msg)
		case <-l.done:
			for {
				select {
				case msg := <-l.logChan:
					l.write(msg)
				default:
					return
				}
			}
		}
	}
}

func (l *Logger) write(msg LogMessage) {
	ctx := msg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	switch msg.Level {
	case LevelCommand:
		l.commandLogger.WithContext(ctx).WithFields(msg.Fields).Info(msg.Content)
	case LevelError:
		l.errorLogger.WithContext(ctx).WithFields(msg.Fields).Error(msg.Content)
	case LevelWarn:
		l.infoLogger.WithContext(ctx).WithFields(msg.Fields).Warn(msg.Content)
	case LevelInfo:
		l.infoLogger.WithContext(ctx).WithFields(msg.Fields).Info(msg.Content)
	case LevelDebug:
		l.infoLogger.WithContext(ctx).WithFields(msg.Fields).Debug(msg.Content)
	}
}

func (l *Logger) send(ctx context.Context, level LogLevel, content string, fields Fields) {
	select {
	case <-l.done:
		return
	default:
	}
	select {
	case l.logChan <- LogMessage{Level: level, Content: content, Fields: fields, Context: ctx}:
	case <-l.done:
	}
}

// Command logs an executed command to the command log
func (l *Logger) Command(ctx context.Context, content string, fields Fields) {
	l.send(ctx, LevelCommand, content, fields)
}

// Error logs to the error log
func (l *Logger) Error(ctx context.Context, content string, fields Fields) {
	l.send(ctx, LevelError, content, fields)
}

func (l *Logger) Warn(ctx context.Context, content string, fields Fields) {
	l.send(ctx, LevelWarn, content, fields)
}

func (l *Logger) Info(ctx context.Context, content string, fields Fields) {
	l.send(ctx, LevelInfo, content, fields)
}

func (l *Logger) Debug(ctx context.Context, content string, fields Fields) {
	l.send(ctx, LevelDebug, content, fields)
}

// Close stops the logging goroutine and closes all log files
func (l *Logger) Close() error {
	var closeErr error
	l.closeOnce.Do(func() {
		close(l.done)
		l.wg.Wait()

		for _, f := range l.files {
			if err := f.Close(); err != nil && closeErr == nil {
				closeErr = fmt.Errorf("failed to close log file %s: %w", f.Name(), err)
			}
		}
	})
	return closeErr
}
