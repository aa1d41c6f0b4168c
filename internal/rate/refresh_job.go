package rate

import (
	"context"
	"fmt"

	"gimie/internal/domain"

	"github.com/sirupsen/logrus"
)

type refresher interface {
	Refresh(ctx context.Context, base domain.Code) (domain.RateSnapshot, error)
}

// RefreshRates pulls a fresh USD snapshot into the provider cache.
func RefreshRates(ctx context.Context, execID string, r refresher) error {
	snap, err := r.Refresh(ctx, domain.USD)
	if err != nil {
		return fmt.Errorf("failed to refresh rates: %w", err)
	}

	missing := make([]domain.Code, 0)
	for _, code := range domain.SupportedCodes() {
		if _, ok := snap.Rate(code); !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		logrus.WithField("execID", execID).Warnf("refreshed rates miss supported currencies %v", missing)
	}

	logrus.Infof("%d rates refreshed for base %s; execID: %s", len(snap.Rates), snap.Base, execID)
	return nil
}
