package logger

import (
	"log"
	"os"
)

// Logger é a interface para logging da aplicação
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// StdLogger é uma implementação de Logger baseada na biblioteca padrão
type StdLogger struct {
	out *log.Logger
	err *log.Logger
}

// NewLogger cria uma nova instância de Logger
func NewLogger() Logger {
	return &StdLogger{
		out: log.New(os.Stdout, "", log.Ldate|log.Ltime),
		err: log.New(os.Stderr, "", log.Ldate|log.Ltime),
	}
}

func write(dst *log.Logger, level, msg string, keysAndValues []interface{}) {
	dst.Println(append([]interface{}{level + ": " + msg}, keysAndValues...)...)
}

// Info registra uma mensagem de informação
func (l *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	write(l.out, "INFO", msg, keysAndValues)
}

// Error registra uma mensagem de erro
func (l *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	write(l.err, "ERROR", msg, keysAndValues)
}

// Debug registra uma mensagem de debug
func (l *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	write(l.out, "DEBUG", msg, keysAndValues)
}

// Warn registra uma mensagem de aviso
func (l *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	write(l.err, "WARN", msg, keysAndValues)
}
