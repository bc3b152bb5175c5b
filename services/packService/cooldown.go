package packService

import (
	"time"

	log "github.com/sirupsen/logrus"

	"dreamLeagueBot/config"
)

// CanClaimFreePack reports whether the free pack is off cooldown. A missing
// timestamp means the user never claimed; an unparseable one fails open so a
// bad record can't lock anyone out forever.
func (s *Service) CanClaimFreePack(guildID, userID string) (bool, error) {
	stamp, err := s.economy.FreePackClaimedAt(guildID, userID)
	if err != nil {
		return false, err
	}
	if stamp == "" {
		return true, nil
	}
	claimedAt, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		log.Warnf("Unparseable free-pack timestamp %q for user %s on guild %s, allowing claim", stamp, userID, guildID)
		return true, nil
	}
	return s.now().Sub(claimedAt) >= s.freePackCooldown(), nil
}

// FreePackRemaining returns the wait left on the cooldown, floored at zero.
func (s *Service) FreePackRemaining(guildID, userID string) (time.Duration, error) {
	stamp, err := s.economy.FreePackClaimedAt(guildID, userID)
	if err != nil {
		return 0, err
	}
	if stamp == "" {
		return 0, nil
	}
	claimedAt, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return 0, nil
	}
	remaining := s.freePackCooldown() - s.now().Sub(claimedAt)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (s *Service) freePackCooldown() time.Duration {
	def := s.cfg.Packs[config.FreePackKey]
	return time.Duration(def.CooldownSeconds) * time.Second
}
