package service

import (
	"context"
	"time"

	"github.com/MKhiriev/station-farmer/internal/adapter"
	"github.com/MKhiriev/station-farmer/internal/app"
	"github.com/MKhiriev/station-farmer/internal/logger"
	"github.com/MKhiriev/station-farmer/internal/utils"
	"github.com/MKhiriev/station-farmer/models"
	"github.com/dustin/go-humanize"
)

// handleFarming claims and restarts the farm cycle when it is due. Only the
// first running cycle is considered.
func (s *accountService) handleFarming(ctx context.Context, platform adapter.PlatformAdapter, session models.Session, userID int64) {
	log := logger.FromContext(ctx)

	cycles, err := platform.GetFarmStatus(ctx, session, userID)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgFarmStatusFailed)
		return
	}

	if len(cycles) == 0 {
		log.Info().Msg(app.MsgFarmNotRunning)
		s.startFarm(ctx, platform, session, userID)
		return
	}

	cycle := cycles[0]
	now := s.now()
	if !cycle.Expired(now) {
		log.Info().
			Str("ends_at", cycle.TimeEnd.Local().Format(time.DateTime)).
			Msg(app.MsgFarmCompletion)
		log.Info().Msgf(app.MsgFarmRemaining, utils.FormatRemaining(cycle.Remaining(now)))
		return
	}

	amount, err := platform.ClaimFarm(ctx, session, userID, cycle.ID)
	if err != nil {
		log.Error().Err(err).Str("cycle_id", cycle.ID).Msg(app.MsgFarmClaimFailed)
	} else {
		log.Info().Msgf(app.MsgFarmClaimed, formatAmount(amount))
	}

	s.startFarm(ctx, platform, session, userID)
}

func (s *accountService) startFarm(ctx context.Context, platform adapter.PlatformAdapter, session models.Session, userID int64) {
	log := logger.FromContext(ctx)

	cycle, err := platform.StartFarm(ctx, session, userID)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgFarmStartFailed)
		return
	}

	log.Info().
		Str("ends_at", cycle.TimeEnd.Local().Format(time.DateTime)).
		Msgf(app.MsgFarmStartedEnding, humanize.RelTime(cycle.TimeEnd, s.now(), "ago", "from now"))
}

func formatAmount(amount models.Amount) string {
	return humanize.CommafWithDigits(amount.Float64(), 2)
}
