package misslog

import (
	"context"

	"go.uber.org/zap"
)

// Sink fans unanswered queries out to the file log and the database.
// It implements fallback.Sink. Errors are logged and swallowed so a
// failed write can never fail the response.
type Sink struct {
	file   *FileLog
	store  *Store
	logger *zap.Logger
}

// NewSink creates a Sink. file and store may each be nil.
func NewSink(file *FileLog, store *Store, logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{file: file, store: store, logger: logger}
}

func (s *Sink) Record(ctx context.Context, query string) {
	if s.file != nil {
		if err := s.file.Append(query); err != nil {
			s.logger.Warn("miss log append failed", zap.Error(err))
		}
	}
	if s.store != nil {
		if err := s.store.Record(ctx, Miss{Query: query}); err != nil {
			s.logger.Warn("miss store insert failed", zap.Error(err))
		}
	}
}
