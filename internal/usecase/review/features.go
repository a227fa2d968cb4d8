package review

import (
	"context"

	domain "github.com/avaliaccess/aa-server/internal/domain/review"
	"github.com/avaliaccess/aa-server/internal/dto"
)

type GetAccessibilityFeatures struct {
	repo domain.Repository
}

func NewGetAccessibilityFeatures(repo domain.Repository) *GetAccessibilityFeatures {
	return &GetAccessibilityFeatures{repo: repo}
}

// Execute deriva o consenso de cada característica a partir do conjunto
// atual de avaliações: percentual de votos afirmativos por flag,
// consenso quando >= 50%. Sempre recalculado na leitura, nunca cacheado.
func (uc *GetAccessibilityFeatures) Execute(
	ctx context.Context,
	establishmentID uint,
) (*dto.AccessibilityFeaturesResponse, error) {

	resp := &dto.AccessibilityFeaturesResponse{}

	for _, flag := range domain.AllFlags() {
		pct, err := domain.FlagPercentage(ctx, uc.repo, establishmentID, flag)
		if err != nil {
			return nil, err
		}
		resp.Set(flag, domain.Consensus(pct))
	}

	return resp, nil
}
