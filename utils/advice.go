package utils

// The four health-tip messages. Exactly one applies to any totals/budget
// pair.
const (
	TipLogMeals    = "Log all your meals to see accurate insights"
	TipAboveTarget = "You're above your calorie target today. Try a lighter dinner"
	TipBelowTarget = "You're under your target - add a healthy snack like fruits"
	TipNearTarget  = "Nice! You're close to your calorie goal for today"
)

// HealthTip picks a message from today's intake against the calorie budget.
// Zero intake, or no budget to compare against yet, gets the log-meals
// prompt; beyond that, the 200 kcal margins are exclusive, so an intake of
// exactly tdee±200 still counts as near target.
func HealthTip(totalCalories float64, tdee int) string {
	budget := float64(tdee)
	switch {
	case totalCalories == 0 || tdee <= 0:
		return TipLogMeals
	case totalCalories > budget+200:
		return TipAboveTarget
	case totalCalories < budget-200:
		return TipBelowTarget
	default:
		return TipNearTarget
	}
}

// DeficiencyAdvice is one guidance card: a recognized deficiency tag and
// foods that help with it.
type DeficiencyAdvice struct {
	Tag   string   `json:"tag"`
	Foods []string `json:"foods"`
}

// GuidancePrompt is shown when the profile lists no deficiencies.
const GuidancePrompt = "You haven't selected any deficiencies yet. Update your profile if you suspect Iron, Calcium, Vitamin D or B12."

var deficiencyFoods = map[string][]string{
	"Iron": {
		"Spinach, methi, drumstick leaves",
		"Ragi, jaggery, dates",
		"Pair with vitamin C fruits",
	},
	"Calcium": {
		"Milk, curd, paneer",
		"Tofu, sesame seeds, ragi",
		"Avoid too much cola drinks",
	},
	"Vitamin D": {
		"10-20 min morning sunlight",
		"Mushrooms, egg yolk",
		"Fortified milk and cereals",
	},
	"B12": {
		"Eggs, curd, paneer",
		"Fortified cereals",
		"Consult doctor for supplements",
	},
}

// guidanceOrder keeps cards in a stable order regardless of how the tags
// were stored.
var guidanceOrder = []string{"Iron", "Calcium", "Vitamin D", "B12"}

// DeficiencyGuidance maps profile deficiency tags to guidance cards.
// Unrecognized tags are dropped silently. An empty result means the caller
// should show GuidancePrompt instead.
func DeficiencyGuidance(tags []string) []DeficiencyAdvice {
	selected := make(map[string]bool, len(tags))
	for _, t := range tags {
		selected[t] = true
	}

	var cards []DeficiencyAdvice
	for _, tag := range guidanceOrder {
		if selected[tag] {
			cards = append(cards, DeficiencyAdvice{Tag: tag, Foods: deficiencyFoods[tag]})
		}
	}
	return cards
}
