package logging

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// CusTimeEncoder formats entry timestamps with config.TimeFormat.
func CusTimeEncoder(config Config) zapcore.TimeEncoder {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(config.TimeFormat))
	}
}

// GetEncoder returns a zapcore.Encoder based on the config format.
func GetEncoder(config Config) zapcore.Encoder {
	encoderConfig := getEncoderConfig(config)
	if config.Format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getEncoderConfig(config Config) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "logger",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     CusTimeEncoder(config),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

// getZapCores builds one core per configured sink, all at config's level.
func getZapCores(config Config) []zapcore.Core {
	level := config.TransportLevel()
	cores := make([]zapcore.Core, 0, 2)

	if ws := terminalSyncer(config.Terminal); ws != nil {
		cores = append(cores, zapcore.NewCore(GetEncoder(config), ws, level))
	}
	if config.File != "" {
		fileConfig := config
		fileConfig.Format = "json"
		cores = append(cores, zapcore.NewCore(GetEncoder(fileConfig), fileSyncer(config), level))
	}
	return cores
}
