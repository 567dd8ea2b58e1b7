package badges

// Catalog returns the static badge definitions. Keep ids stable: unlocked
// state persisted in snapshots is keyed by them.
func Catalog() []*Badge {
	return []*Badge{
		{
			ID:        "first-steps",
			Name:      "First Steps",
			Condition: Condition{Kind: KindExercisesCompleted, Target: 1},
			XPReward:  10,
		},
		{
			ID:        "exercise-25",
			Name:      "Problem Solver",
			Condition: Condition{Kind: KindExercisesCompleted, Target: 25},
			XPReward:  50,
		},
		{
			ID:        "exercise-100",
			Name:      "Centurion",
			Condition: Condition{Kind: KindExercisesCompleted, Target: 100},
			XPReward:  150,
		},
		{
			ID:        "streak-3",
			Name:      "Warming Up",
			Condition: Condition{Kind: KindStreak, Target: 3},
			XPReward:  25,
		},
		{
			ID:        "streak-7",
			Name:      "Week Strong",
			Condition: Condition{Kind: KindStreak, Target: 7},
			XPReward:  75,
		},
		{
			ID:        "streak-30",
			Name:      "Iron Habit",
			Condition: Condition{Kind: KindStreak, Target: 30},
			XPReward:  300,
		},
		{
			ID:        "level-5",
			Name:      "Apprentice",
			Condition: Condition{Kind: KindLevel, Target: 5},
			XPReward:  100,
		},
		{
			ID:        "level-10",
			Name:      "Scholar",
			Condition: Condition{Kind: KindLevel, Target: 10},
			XPReward:  250,
		},
		{
			ID:        "sharp-recall",
			Name:      "Sharp Recall",
			Condition: Condition{Kind: KindAverageScore, Target: 80},
			XPReward:  100,
		},
		{
			ID:        "deep-focus",
			Name:      "Deep Focus",
			Condition: Condition{Kind: KindPomodoroSessions, Target: 20},
			XPReward:  75,
		},
		{
			ID:        "marathon",
			Name:      "Marathon",
			Condition: Condition{Kind: KindTotalHours, Target: 50},
			XPReward:  200,
		},
		{
			ID:        "night-owl",
			Name:      "Night Owl",
			Condition: Condition{Kind: KindCustom, CustomID: "night-owl"},
			XPReward:  50,
			Hidden:    true,
		},
	}
}

// Merge overlays persisted unlock state onto the static catalog. Badges
// removed from the catalog disappear; unlock state for surviving ids is kept.
func Merge(catalog []*Badge, unlocked map[string]*Badge) []*Badge {
	for _, b := range catalog {
		if prev, ok := unlocked[b.ID]; ok && prev.Unlocked {
			b.Unlocked = true
			b.UnlockedAt = prev.UnlockedAt
		}
	}
	return catalog
}
