// Package access gates shopping actions behind a one-time phone disclosure.
package access

import (
	"context"

	"agroshop-bot-be/internal/pkg/logger"
)

// PhoneChecker reports whether the user behind chatId has a phone on file.
type PhoneChecker interface {
	HasPhone(ctx context.Context, chatId int64) (bool, error)
}

// Decision is the guard verdict for one inbound action.
type Decision struct {
	Allowed bool
	// Prompt is set when the action is blocked; it carries the fixed
	// instruction the dispatcher must send instead of the action's result.
	Prompt string
}

type Guard struct {
	checker PhoneChecker
	exempt  map[string]struct{}
	prompt  string
	logger  logger.ILogger
}

// NewGuard builds a guard that exempts the named actions. Exempt actions are
// the entry points a user needs before they can possibly be verified.
func NewGuard(checker PhoneChecker, prompt string, exempt []string, log logger.ILogger) *Guard {
	ex := make(map[string]struct{}, len(exempt))
	for _, a := range exempt {
		ex[a] = struct{}{}
	}
	return &Guard{
		checker: checker,
		exempt:  ex,
		prompt:  prompt,
		logger:  log,
	}
}

// Check evaluates the action for chatId. Storage failures allow the action
// through: the guard protects onboarding flow, not security, and a broken
// lookup must not lock every user out.
func (g *Guard) Check(ctx context.Context, chatId int64, action string) Decision {
	if _, ok := g.exempt[action]; ok {
		return Decision{Allowed: true}
	}

	hasPhone, err := g.checker.HasPhone(ctx, chatId)
	if err != nil {
		g.logger.Warn("access", "phone check failed, allowing action", map[string]interface{}{
			"chat_id": chatId,
			"action":  action,
			"error":   err.Error(),
		})
		return Decision{Allowed: true}
	}

	if !hasPhone {
		return Decision{Allowed: false, Prompt: g.prompt}
	}
	return Decision{Allowed: true}
}
