package service

import (
	"context"

	"github.com/MKhiriev/station-farmer/internal/adapter"
	"github.com/MKhiriev/station-farmer/internal/app"
	"github.com/MKhiriev/station-farmer/internal/logger"
	"github.com/MKhiriev/station-farmer/models"
)

// handleQuests starts and claims every offered quest in platform order,
// skipping the configured ones. Quests already claimed in an earlier pass are
// attempted again; the platform rejects them and the failure is only logged.
func (s *accountService) handleQuests(ctx context.Context, platform adapter.PlatformAdapter, session models.Session, userID int64) {
	log := logger.FromContext(ctx)

	quests, err := platform.ListQuests(ctx, session, userID)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgQuestListFailed)
		return
	}

	for _, quest := range quests {
		if ctx.Err() != nil {
			return
		}

		qlog := log.With().Str("quest_id", quest.ID).Str("quest", quest.Description).Logger()

		if s.skipQuests.Contains(quest.ID) {
			qlog.Warn().Msg(app.MsgQuestSkipped)
			continue
		}

		if err = platform.StartQuest(ctx, session, userID, quest); err != nil {
			qlog.Error().Err(err).Msg(app.MsgQuestStartFailed)
		}

		amount, claimErr := platform.ClaimQuest(ctx, session, userID, quest)
		if claimErr != nil {
			qlog.Error().Err(claimErr).Msg(app.MsgQuestClaimFailed)
			continue
		}
		qlog.Info().Msgf(app.MsgQuestCompleted, quest.Description, formatAmount(amount))
	}
}
