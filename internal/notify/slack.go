package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/diegoclair/game-club-rotation/internal/domain"
	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/slack-go/slack"
	"go.uber.org/ratelimit"
)

const dateLayout = "Jan 2, 2006"

// SlackNotifier announces activations and retirements in one channel.
type SlackNotifier struct {
	client    contract.SlackClient
	channelID string
	limiter   ratelimit.Limiter
	logger    *slog.Logger
}

// NewSlackNotifier posts at most perSecond messages per second; zero or less
// removes the limit.
func NewSlackNotifier(client contract.SlackClient, channelID string, perSecond int, logger *slog.Logger) *SlackNotifier {
	limiter := ratelimit.NewUnlimited()
	if perSecond > 0 {
		limiter = ratelimit.New(perSecond)
	}

	return &SlackNotifier{
		client:    client,
		channelID: channelID,
		limiter:   limiter,
		logger:    logger,
	}
}

func (n *SlackNotifier) Publish(ctx context.Context, events []entity.QueueEvent) error {
	var errs []error

	for _, event := range events {
		message := announcement(event)
		if message == "" {
			continue
		}

		n.limiter.Take()
		_, _, err := n.client.PostMessageContext(ctx, n.channelID,
			slack.MsgOptionText(message, false),
			slack.MsgOptionAsUser(false),
		)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to send Slack message for %s: %w", event.SuggestionID, err))
			continue
		}

		n.logger.Info("announcement sent", "event", event.Type, "suggestion_id", event.SuggestionID.String(), "channel", n.channelID)
	}

	return errors.Join(errs...)
}

func announcement(event entity.QueueEvent) string {
	switch event.Type {
	case domain.EventSuggestionActivated:
		until := ""
		if event.FinishedAt != nil {
			until = fmt.Sprintf(" until %s", event.FinishedAt.Format(dateLayout))
		}
		return fmt.Sprintf("🎮 *Now playing*\n\n*%s* suggested by %s%s.", event.Title, submitter(event), until)
	case domain.EventSuggestionFinished:
		return fmt.Sprintf("🏁 *%s* suggested by %s is finished. Ratings are open!", event.Title, submitter(event))
	default:
		return ""
	}
}

func submitter(event entity.QueueEvent) string {
	if event.SubmitterName == "" {
		return "an unknown member"
	}
	return event.SubmitterName
}
