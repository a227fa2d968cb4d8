package review

// Flag identifica uma característica booleana de acessibilidade.
// O valor é o nome da coluna correspondente em reviews, o que também
// serve de allowlist para as consultas agregadas.
type Flag string

const (
	FlagRamp                Flag = "has_ramp"
	FlagAccessibleRestroom  Flag = "has_accessible_restroom"
	FlagAccessibleParking   Flag = "has_accessible_parking"
	FlagElevator            Flag = "has_elevator"
	FlagAccessibleEntrance  Flag = "has_accessible_entrance"
	FlagTactileFloor        Flag = "has_tactile_floor"
	FlagSignLanguageService Flag = "has_sign_language_service"
	FlagAccessibleSeating   Flag = "has_accessible_seating"
)

func AllFlags() []Flag {
	return []Flag{
		FlagRamp,
		FlagAccessibleRestroom,
		FlagAccessibleParking,
		FlagElevator,
		FlagAccessibleEntrance,
		FlagTactileFloor,
		FlagSignLanguageService,
		FlagAccessibleSeating,
	}
}

// ConsensusThreshold é o percentual mínimo de avaliações afirmativas
// para que a característica seja considerada presente.
const ConsensusThreshold = 50.0

// Consensus aplica a regra de maioria sobre o percentual de uma flag.
func Consensus(percentage float64) bool {
	return percentage >= ConsensusThreshold
}
