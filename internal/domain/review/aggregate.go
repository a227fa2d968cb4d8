package review

import "context"

// RecomputeAggregates recalcula a média e o total de avaliações do
// estabelecimento a partir do conjunto atual e grava os campos
// desnormalizados. Deve ser chamado exatamente uma vez por mutação,
// dentro da mesma transação.
func RecomputeAggregates(ctx context.Context, repo Repository, establishmentID uint) error {
	avg, err := repo.AverageRating(ctx, establishmentID)
	if err != nil {
		return err
	}

	total, err := repo.CountByEstablishment(ctx, establishmentID)
	if err != nil {
		return err
	}

	return repo.SaveEstablishmentAggregates(ctx, establishmentID, avg, int(total))
}

// FlagPercentage calcula o percentual de avaliações que afirmam a flag.
// Zero avaliações resulta em 0%.
func FlagPercentage(ctx context.Context, repo Repository, establishmentID uint, flag Flag) (float64, error) {
	total, err := repo.CountByEstablishment(ctx, establishmentID)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	affirmative, err := repo.CountFlag(ctx, establishmentID, flag)
	if err != nil {
		return 0, err
	}

	return float64(affirmative) * 100.0 / float64(total), nil
}
