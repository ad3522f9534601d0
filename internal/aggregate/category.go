package aggregate

// Category identifies the metric a health record contributes to.
type Category string

const (
	CategorySteps            Category = "steps"
	CategoryActiveEnergy     Category = "active_energy"
	CategoryHeartRate        Category = "heart_rate"
	CategoryRestingHeartRate Category = "resting_heart_rate"
	CategorySleep            Category = "sleep"
	CategoryMindful          Category = "mindful"
)

// Raw record type identifiers found in health export logs.
const (
	TypeStepCount        = "HKQuantityTypeIdentifierStepCount"
	TypeActiveEnergy     = "HKQuantityTypeIdentifierActiveEnergyBurned"
	TypeHeartRate        = "HKQuantityTypeIdentifierHeartRate"
	TypeRestingHeartRate = "HKQuantityTypeIdentifierRestingHeartRate"
	TypeSleepAnalysis    = "HKCategoryTypeIdentifierSleepAnalysis"
	TypeMindfulSession   = "HKCategoryTypeIdentifierMindfulSession"
)

var categoryByType = map[string]Category{
	TypeStepCount:        CategorySteps,
	TypeActiveEnergy:     CategoryActiveEnergy,
	TypeHeartRate:        CategoryHeartRate,
	TypeRestingHeartRate: CategoryRestingHeartRate,
	TypeSleepAnalysis:    CategorySleep,
	TypeMindfulSession:   CategoryMindful,
}

// Classify maps a raw record type identifier to its metric category.
// Unknown identifiers report false and are ignored by callers.
func Classify(rawType string) (Category, bool) {
	cat, ok := categoryByType[rawType]
	return cat, ok
}

// Categories lists every metric category in a fixed order.
func Categories() []Category {
	return []Category{
		CategorySteps,
		CategoryActiveEnergy,
		CategoryHeartRate,
		CategoryRestingHeartRate,
		CategorySleep,
		CategoryMindful,
	}
}
