package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/isleen/lilybot/internal/config"
	"github.com/isleen/lilybot/internal/event"
)

// Manager owns session lifecycles for the server and remote frontends.
type Manager struct {
	logger *slog.Logger
	events *event.Listener

	mu       sync.Mutex
	sessions map[string]*runningSession
	reports  []Report
}

type runningSession struct {
	session *Session
	cancel  context.CancelFunc
}

func NewManager(logger *slog.Logger, events *event.Listener) *Manager {
	return &Manager{
		logger:   logger,
		events:   events,
		sessions: make(map[string]*runningSession),
	}
}

// Start launches one character profile through its configured encounter and
// returns the session ID.
func (m *Manager) Start(characterName string) (string, error) {
	cfg, found := config.Characters[characterName]
	if !found {
		return "", fmt.Errorf("unknown character %q", characterName)
	}

	enc, err := LoadEncounter(cfg.Encounter)
	if err != nil {
		return "", err
	}
	session, err := NewSession(m.logger, cfg, enc, m.events)
	if err != nil {
		return "", err
	}
	if config.Lilybot != nil {
		session.Realtime = config.Lilybot.Simulation.Realtime
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.mu.Lock()
	m.sessions[session.ID] = &runningSession{session: session, cancel: cancel}
	m.mu.Unlock()

	go func() {
		defer cancel()
		report, err := session.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			m.logger.Error("Session ended with error", slog.String("session", session.ID), slog.Any("error", err))
		}

		m.mu.Lock()
		delete(m.sessions, session.ID)
		m.reports = append(m.reports, report)
		m.mu.Unlock()
	}()

	m.logger.Info("Session started", slog.String("session", session.ID), slog.String("character", characterName), slog.String("encounter", enc.Name))
	return session.ID, nil
}

// Stop cancels one running session.
func (m *Manager) Stop(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	running, found := m.sessions[id]
	if !found {
		return fmt.Errorf("no running session %q", id)
	}
	running.cancel()
	return nil
}

// StopAll cancels everything, used on shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, running := range m.sessions {
		running.cancel()
	}
}

// Status snapshots every running session.
func (m *Manager) Status() []SessionStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	statuses := make([]SessionStatus, 0, len(m.sessions))
	for _, running := range m.sessions {
		statuses = append(statuses, running.session.Status())
	}
	return statuses
}

// Reports returns finished session reports, most recent last.
func (m *Manager) Reports() []Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	reports := make([]Report, len(m.reports))
	copy(reports, m.reports)
	return reports
}
