package rotation

import (
	"fmt"
	"log/slog"

	"github.com/isleen/lilybot/internal/game"
)

// BuildModules is the explicit job registry: every supported job maps to its
// module set here, in evaluation order. White Mage and Conjurer share one
// set since the former is the latter's upgrade.
func BuildModules(job game.Job, logger *slog.Logger) ([]Module, error) {
	switch job {
	case game.JobWhiteMage, game.JobConjurer:
		return []Module{
			NewResurrection(logger),
			NewHealing(logger),
			NewDefensive(logger),
			NewBuffs(logger),
			NewDamage(logger),
		}, nil
	}

	return nil, fmt.Errorf("unsupported job %q", job)
}
