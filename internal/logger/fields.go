package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldResumeID identifies the analyzed resume or candidate.
	FieldResumeID = "resume_id"
	// FieldJobID identifies the job posting being scored.
	FieldJobID = "job_id"
	// FieldProducer names the analysis producer (heuristic, gemini, merged).
	FieldProducer = "producer"
	// FieldProvider is the structured log field key for the AI provider name.
	FieldProvider = "ai_provider"
	// FieldModel is the structured log field key for the AI model identifier.
	FieldModel = "ai_model"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to the logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// AIFields describes the AI provider and model. Empty values are dropped.
func AIFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

func ProducerFields(producer string) []zap.Field {
	return StringFields(StringField{Key: FieldProducer, Value: producer})
}

// MatchFields describes one resume/job pairing.
func MatchFields(resumeID, jobID string) []zap.Field {
	return StringFields(
		StringField{Key: FieldResumeID, Value: resumeID},
		StringField{Key: FieldJobID, Value: jobID},
	)
}
