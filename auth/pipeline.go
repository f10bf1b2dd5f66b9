package auth

import (
	"context"
	"time"

	"github.com/paletogarage/auth-gateway/discord"
	apperrors "github.com/paletogarage/auth-gateway/internal/errors"
	"github.com/paletogarage/auth-gateway/roles"
	"github.com/paletogarage/auth-gateway/roster"
	"github.com/paletogarage/auth-gateway/sessions"
	"github.com/rs/zerolog/log"
)

// IdentityExchanger swaps an authorization code for a provider identity.
type IdentityExchanger interface {
	Exchange(ctx context.Context, code string) (discord.Identity, error)
}

// RosterFinder resolves a Discord user id to an employee record.
type RosterFinder interface {
	FindByDiscordID(ctx context.Context, discordID string) (roster.Record, error)
}

// Pipeline runs one authentication attempt end to end:
// code → identity → roster record → role → session. A single linear pass; no
// stage is retried, and concurrent runs share nothing but the session repo.
type Pipeline struct {
	exchanger IdentityExchanger
	roster    RosterFinder
	sessions  sessions.Repo
	ttl       time.Duration
	nowTime   func() time.Time
}

func NewPipeline(exchanger IdentityExchanger, rosterFinder RosterFinder, sessionRepo sessions.Repo, ttl time.Duration) *Pipeline {
	return &Pipeline{
		exchanger: exchanger,
		roster:    rosterFinder,
		sessions:  sessionRepo,
		ttl:       ttl,
		nowTime:   time.Now,
	}
}

// Authenticate executes the pipeline for one authorization code and returns
// the session token together with the terminal outcome. The token is empty
// unless the outcome is OutcomeSuccess.
func (p *Pipeline) Authenticate(ctx context.Context, code string) (string, Outcome) {
	if code == "" {
		return "", OutcomeNoCode
	}

	identity, err := p.exchanger.Exchange(ctx, code)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNoCode) {
			return "", OutcomeNoCode
		}
		log.Err(err).Msg("Discord exchange failed")
		return "", OutcomeAuthFailed
	}

	record, err := p.roster.FindByDiscordID(ctx, identity.ID)
	if err != nil {
		// Roster unreachable and user absent collapse into one client-facing
		// outcome; keep them apart in the logs for operators.
		reason := "not_found"
		if apperrors.Is(err, apperrors.ErrRosterUnavailable) {
			reason = "fetch_failed"
		}
		log.Warn().Err(err).
			Str("discord_id", identity.ID).
			Str("reason", reason).
			Msg("roster lookup unresolved")
		return "", OutcomeNotEmployee
	}

	role := roles.FromGrade(record.Grade)

	now := p.nowTime()
	session := sessions.Session{
		UserID:        identity.ID,
		Username:      identity.Username,
		Discriminator: identity.Discriminator,
		Avatar:        identity.AvatarURL(),
		Role:          role,
		EmployeeName:  record.Name,
		Grade:         record.Grade,
		EmployeeID:    record.EmployeeID,
		RIB:           record.RIB,
		Phone:         record.Phone,
		Email:         record.Email,
		CreatedAt:     now,
		ExpiresAt:     now.Add(p.ttl),
	}

	token := sessions.NewToken()
	if err := p.sessions.Upsert(token, session); err != nil {
		log.Err(err).Msg("session store failed")
		return "", OutcomeSessionError
	}

	log.Info().
		Str("discord_id", identity.ID).
		Str("employee", record.Name).
		Str("role", string(role)).
		Msg("session created")

	return token, OutcomeSuccess
}
