package curriculum

import "fmt"

func init() {
	seed := seedDays()
	if err := validateDays(seed); err != nil {
		panic(fmt.Sprintf("invalid curriculum seed: %v", err))
	}
	days = seed
}

// seedDays returns the built-in 30-day study plan.
func seedDays() []Day {
	plan := []Day{
		{Title: "Limits and Continuity", Subject: "calculus", Tasks: 4, Exercises: 6},
		{Title: "Derivative Rules", Subject: "calculus", Tasks: 4, Exercises: 8},
		{Title: "Chain Rule Practice", Subject: "calculus", Tasks: 3, Exercises: 10},
		{Title: "Implicit Differentiation", Subject: "calculus", Tasks: 3, Exercises: 8},
		{Title: "Related Rates", Subject: "calculus", Tasks: 4, Exercises: 6},
		{Title: "Curve Sketching", Subject: "calculus", Tasks: 5, Exercises: 5},
		{Title: "Optimization Problems", Subject: "calculus", Tasks: 3, Exercises: 8},
		{Title: "Antiderivatives", Subject: "calculus", Tasks: 4, Exercises: 8},
		{Title: "Definite Integrals", Subject: "calculus", Tasks: 4, Exercises: 8},
		{Title: "Integration Review", Subject: "calculus", Tasks: 2, Exercises: 12},
		{Title: "Vectors and Spaces", Subject: "linear-algebra", Tasks: 4, Exercises: 6},
		{Title: "Matrix Operations", Subject: "linear-algebra", Tasks: 4, Exercises: 8},
		{Title: "Determinants", Subject: "linear-algebra", Tasks: 3, Exercises: 8},
		{Title: "Linear Independence", Subject: "linear-algebra", Tasks: 4, Exercises: 6},
		{Title: "Eigenvalues", Subject: "linear-algebra", Tasks: 4, Exercises: 8},
		{Title: "Linear Algebra Review", Subject: "linear-algebra", Tasks: 2, Exercises: 12},
		{Title: "Counting and Probability", Subject: "statistics", Tasks: 4, Exercises: 6},
		{Title: "Random Variables", Subject: "statistics", Tasks: 4, Exercises: 8},
		{Title: "Common Distributions", Subject: "statistics", Tasks: 4, Exercises: 8},
		{Title: "Expectation and Variance", Subject: "statistics", Tasks: 3, Exercises: 8},
		{Title: "Central Limit Theorem", Subject: "statistics", Tasks: 4, Exercises: 6},
		{Title: "Hypothesis Testing", Subject: "statistics", Tasks: 4, Exercises: 8},
		{Title: "Confidence Intervals", Subject: "statistics", Tasks: 3, Exercises: 8},
		{Title: "Statistics Review", Subject: "statistics", Tasks: 2, Exercises: 12},
		{Title: "Sequences and Series", Subject: "calculus", Tasks: 4, Exercises: 8},
		{Title: "Convergence Tests", Subject: "calculus", Tasks: 4, Exercises: 8},
		{Title: "Taylor Series", Subject: "calculus", Tasks: 4, Exercises: 8},
		{Title: "Mixed Practice I", Subject: "review", Tasks: 2, Exercises: 14},
		{Title: "Mixed Practice II", Subject: "review", Tasks: 2, Exercises: 14},
		{Title: "Final Review", Subject: "review", Tasks: 3, Exercises: 12},
	}
	for i := range plan {
		plan[i].Sequence = i + 1
	}
	return plan
}
