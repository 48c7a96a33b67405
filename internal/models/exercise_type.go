package models

// ExerciseType is a selectable activity with its metabolic equivalent.
// Key doubles as the i18n suffix (exercise.<key>) and the stored record name.
type ExerciseType struct {
	Key string
	MET float64
}

var exerciseTypes = []ExerciseType{
	{Key: "walking_slow", MET: 2.5},
	{Key: "walking", MET: 3.5},
	{Key: "jogging", MET: 7.0},
	{Key: "running", MET: 9.0},
	{Key: "cycling_slow", MET: 4.0},
	{Key: "cycling", MET: 6.0},
	{Key: "swimming", MET: 6.0},
	{Key: "yoga", MET: 3.0},
	{Key: "strength_training", MET: 3.5},
}

func ExerciseTypes() []ExerciseType {
	result := make([]ExerciseType, len(exerciseTypes))
	copy(result, exerciseTypes)
	return result
}

func DefaultExerciseType() ExerciseType {
	return exerciseTypes[0]
}

// LookupExerciseType falls back to the default entry for unknown keys.
func LookupExerciseType(key string) (ExerciseType, bool) {
	for _, candidate := range exerciseTypes {
		if candidate.Key == key {
			return candidate, true
		}
	}
	return DefaultExerciseType(), false
}
