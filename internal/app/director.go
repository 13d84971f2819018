package app

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"duckgoose/internal/config"
	"duckgoose/internal/domain"
	"duckgoose/internal/ports"
)

// ErrDuplicateSession is returned when a start is requested for a
// channel that already has an active session.
var ErrDuplicateSession = errors.New("channel already has an active session")

// Director owns the channel-to-session registry and routes chat events
// to sessions. It is the sole mutator of the registry; sessions guard
// their own state, so handlers for different channels never contend.
type Director struct {
	cfg       config.Config
	presenter ports.Presenter
	log       zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
	rng      *rand.Rand
}

// NewDirector constructs a Director with the provided rng or a
// time-seeded default.
func NewDirector(cfg config.Config, presenter ports.Presenter, log zerolog.Logger, rng *rand.Rand) *Director {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Director{
		cfg:       cfg,
		presenter: presenter,
		log:       log,
		sessions:  make(map[string]*Session),
		rng:       rng,
	}
}

func (d *Director) scoring() Scoring {
	return Scoring{
		CorrectSolution:   d.cfg.CorrectSolution,
		IncorrectSolution: d.cfg.IncorrectSolution,
		CorrectGoose:      d.cfg.CorrectGoose,
		IncorrectGoose:    d.cfg.IncorrectGoose,
	}
}

// StartGame generates a board, registers a session for the channel,
// dispatches the initial render and schedules the duration timeout.
// A generation or render failure abandons the start and leaves no
// session registered.
func (d *Director) StartGame(channelID string) (*Session, error) {
	d.mu.Lock()
	if _, exists := d.sessions[channelID]; exists {
		d.mu.Unlock()
		return nil, ErrDuplicateSession
	}

	board, err := domain.Generate(d.rng, d.cfg.Rows, d.cfg.Columns, d.cfg.MinSolutions, d.cfg.GenerateAttempts)
	if err != nil {
		d.mu.Unlock()
		d.log.Error().Err(err).Str("channel", channelID).Msg("board generation failed")
		return nil, err
	}

	session := NewSession(channelID, d.cfg.Rows, d.cfg.Columns, board, d.scoring())
	d.sessions[channelID] = session
	d.mu.Unlock()

	handle, err := d.presenter.RenderBoard(session.Layout())
	if err != nil {
		d.deregister(channelID, session.ID)
		d.log.Error().Err(err).Str("channel", channelID).Msg("board render failed")
		return nil, err
	}
	session.SetHandle(handle)

	// The timeout is tied to the session ID, not the channel, so it
	// can never tear down a replacement session in the same channel.
	session.AttachTimer(time.AfterFunc(d.cfg.GameDuration, func() {
		d.expire(channelID, session.ID)
	}))

	metricGamesStarted.Inc()
	d.log.Info().
		Str("channel", channelID).
		Str("session", session.ID).
		Int("solutions", len(session.Solutions())).
		Msg("game started")
	return session, nil
}

// HandleEvent parses one inbound chat message and routes it to the
// channel's session. Messages for channels without an active session,
// and messages that are neither a goose call nor an answer, are
// ignored.
func (d *Director) HandleEvent(channelID, playerID, rawText string) {
	input := ParseInput(rawText)
	if input.Kind == InputIgnore {
		return
	}

	d.mu.Lock()
	session := d.sessions[channelID]
	d.mu.Unlock()
	if session == nil {
		return
	}

	var events []Event
	switch input.Kind {
	case InputGoose:
		events = session.ClaimGoose(playerID)
	case InputAnswer:
		events = session.ClaimAnswer(playerID, input.Answer)
	}

	if !session.Running() {
		d.deregister(channelID, session.ID)
		session.StopTimer()
	}
	d.dispatch(session, events)
}

// ForceEnd terminates the channel's session, if any, and reports the
// final scores.
func (d *Director) ForceEnd(channelID string) {
	d.mu.Lock()
	session := d.sessions[channelID]
	if session != nil {
		delete(d.sessions, channelID)
	}
	d.mu.Unlock()
	if session == nil {
		return
	}

	session.StopTimer()
	d.dispatch(session, session.ForceEnd())
}

// ActiveSession returns the session registered for the channel, or nil.
func (d *Director) ActiveSession(channelID string) *Session {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sessions[channelID]
}

// expire is the timer callback. The session may have ended and been
// replaced by a newer one before the timer fires, so it only acts when
// the registered session is the one it was scheduled for.
func (d *Director) expire(channelID, sessionID string) {
	session := d.deregister(channelID, sessionID)
	if session == nil {
		return
	}

	events := session.Expire()
	if len(events) == 0 {
		// Lost the race against a concurrent goose; that path reports.
		return
	}
	d.dispatch(session, events)
}

// deregister removes and returns the channel's session iff it is still
// the one identified by sessionID.
func (d *Director) deregister(channelID, sessionID string) *Session {
	d.mu.Lock()
	defer d.mu.Unlock()
	session := d.sessions[channelID]
	if session == nil || session.ID != sessionID {
		return nil
	}
	delete(d.sessions, channelID)
	return session
}

// dispatch forwards session events to the presenter and updates
// counters. Goose rejections surface to players the same way wrong
// answers do.
func (d *Director) dispatch(session *Session, events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventAnswerAccepted:
			p := ev.Payload.(AnswerAcceptedPayload)
			metricAnswersAccepted.Inc()
			d.presenter.AnswerAccepted(session.Handle(), p.PlayerID, p.Answer)
		case EventAnswerRejected:
			p := ev.Payload.(AnswerRejectedPayload)
			metricAnswersRejected.Inc()
			d.presenter.AnswerRejected(session.Handle(), p.PlayerID)
		case EventGooseRejected:
			p := ev.Payload.(GooseRejectedPayload)
			metricGeeseRejected.Inc()
			d.presenter.AnswerRejected(session.Handle(), p.PlayerID)
		case EventGameEnded:
			p := ev.Payload.(GameEndedPayload)
			metricGamesEnded.WithLabelValues(string(p.Summary.Reason)).Inc()
			d.log.Info().
				Str("channel", session.ChannelID).
				Str("session", session.ID).
				Str("reason", string(p.Summary.Reason)).
				Msg("game ended")
			d.presenter.GameEnded(session.Handle(), p.Summary)
		default:
			d.log.Warn().Str("kind", string(ev.Kind)).Msg("unknown event kind")
		}
	}
}
