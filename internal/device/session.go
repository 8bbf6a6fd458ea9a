// internal/device/session.go
package device

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tamzrod/vdc-exporter/internal/protocol"
)

// Exchanger abstracts one framed request/response exchange.
type Exchanger interface {
	Exchange(cmd protocol.Command) ([]byte, error)
}

// Session runs the two-step retrieval protocol against one device.
// Calls must be serialized by the caller.
type Session struct {
	tr  Exchanger
	log *zap.Logger
}

// New creates a session over tr.
func New(tr Exchanger, logger *zap.Logger) (*Session, error) {
	if tr == nil {
		return nil, errors.New("device: exchanger required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{tr: tr, log: logger}, nil
}

// FetchObservationCount asks the device how many observations it holds for user.
func (s *Session) FetchObservationCount(user int) (protocol.ObservationCount, error) {
	cmd, err := protocol.BuildCountCommand(user)
	if err != nil {
		return protocol.ObservationCount{}, err
	}

	raw, err := s.tr.Exchange(cmd)
	if err != nil {
		return protocol.ObservationCount{}, err
	}

	count, _, err := protocol.DecodeObservationCount(raw)
	if err != nil {
		return protocol.ObservationCount{}, fmt.Errorf("device: decode count: %w", err)
	}

	s.log.Info("observation count", zap.Int("user", user), zap.Int("declared", count.Value()))
	return count, nil
}

// FetchObservations retrieves every observation stored for user.
// All-or-nothing: the set is returned only if the decoded record count
// matches the count the device declared.
func (s *Session) FetchObservations(user int) (protocol.ObservationSet, error) {
	count, err := s.FetchObservationCount(user)
	if err != nil {
		return protocol.ObservationSet{}, err
	}
	if count.Value() == 0 {
		return protocol.ObservationSet{}, &NoObservationsError{User: user}
	}

	cmd, err := protocol.BuildObservationsCommand(user)
	if err != nil {
		return protocol.ObservationSet{}, err
	}

	raw, err := s.tr.Exchange(cmd)
	if err != nil {
		return protocol.ObservationSet{}, err
	}

	set, _, err := protocol.DecodeObservationSet(raw)
	if err != nil {
		return protocol.ObservationSet{}, fmt.Errorf("device: decode observations: %w", err)
	}

	if set.Len() != count.Value() {
		return protocol.ObservationSet{}, &CountMismatchError{
			User:     user,
			Declared: count.Value(),
			Decoded:  set.Len(),
		}
	}

	s.log.Info("observations decoded", zap.Int("user", user), zap.Int("count", set.Len()))
	return set, nil
}
