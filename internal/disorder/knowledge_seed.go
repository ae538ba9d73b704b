package disorder

// seedEntries holds the reference text, one per label, in rule order with
// the fallback last.
var seedEntries = []Entry{
	{
		Label:      LabelInsomnia,
		Definition: "Difficulty falling or staying asleep.",
		Tip:        "Reduce caffeine, maintain a sleep schedule, try relaxation techniques.",
	},
	{
		Label:      LabelSleepAnxiety,
		Definition: "Anxiety-related sleep disturbances.",
		Tip:        "Practice meditation, avoid screens (phones, TV) before bed, deep breathing exercises.",
	},
	{
		Label:      LabelObstructiveApnea,
		Definition: "Breathing stops during sleep due to airway blockage.",
		Tip:        "Lose weight, avoid alcohol, consider CPAP therapy.",
	},
	{
		Label:      LabelHypertensionRelated,
		Definition: "Poor sleep linked to high blood pressure.",
		Tip:        "Monitor BP, reduce salt, maintain a balanced diet.",
	},
	{
		Label:      LabelRestlessLeg,
		Definition: "Uncontrollable urge to move legs, worse at night.",
		Tip:        "Exercise, avoid caffeine, maintain a regular sleep schedule.",
	},
	{
		Label:      LabelNarcolepsy,
		Definition: "Excessive daytime sleepiness, sudden sleep attacks due to high stress levels.",
		Tip:        "Maintain a consistent schedule, avoid heavy meals before bed.",
	},
	{
		Label:      LabelGeneralSleepDisorder,
		Definition: "Mild sleep disturbances affecting sleep quality.",
		Tip:        "Improve sleep hygiene, avoid blue light before bed, maintain a dark and quiet sleep environment.",
	},
}
