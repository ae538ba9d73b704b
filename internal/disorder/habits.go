package disorder

// Habit is a general healthy-sleep recommendation shown when no risk is
// detected.
type Habit struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

var healthyHabits = []Habit{
	{"Maintain a Consistent Sleep Schedule", "Go to bed and wake up at the same time every day, even on weekends."},
	{"Create a Relaxing Bedtime Routine", "Avoid screens, heavy meals, and caffeine before bed. Try reading or meditation."},
	{"Stay Physically Active", "Engage in regular exercise, but avoid intense workouts close to bedtime."},
	{"Optimize Your Sleep Environment", "Keep your room dark, quiet, and cool for better sleep quality."},
	{"Manage Stress and Anxiety", "Practice relaxation techniques like deep breathing, yoga, or journaling to reduce stress before sleep."},
}

// HealthyHabits returns the five habits in display order.
func HealthyHabits() []Habit {
	out := make([]Habit, len(healthyHabits))
	copy(out, healthyHabits)
	return out
}
