package curriculum

import "testing"

func TestSeededPlan(t *testing.T) {
	if Len() == 0 {
		t.Fatal("plan is empty")
	}

	for i, d := range Days() {
		if d.Sequence != i+1 {
			t.Errorf("day %d: sequence = %d, want %d", i, d.Sequence, i+1)
		}
		if d.Title == "" || d.Subject == "" {
			t.Errorf("day %d: missing title or subject: %+v", d.Sequence, d)
		}
		if d.Tasks+d.Exercises == 0 {
			t.Errorf("day %d has no work", d.Sequence)
		}
	}
}

func TestDayBySequence(t *testing.T) {
	if d := DayBySequence(1); d == nil || d.Sequence != 1 {
		t.Errorf("DayBySequence(1) = %+v", d)
	}
	if d := DayBySequence(Len() + 1); d != nil {
		t.Errorf("DayBySequence past the plan = %+v, want nil", d)
	}
	if d := DayBySequence(0); d != nil {
		t.Errorf("DayBySequence(0) = %+v, want nil", d)
	}
}

func TestSubjects(t *testing.T) {
	subjects := Subjects()
	if len(subjects) == 0 {
		t.Fatal("no subjects")
	}
	seen := make(map[string]bool)
	for _, s := range subjects {
		if seen[s] {
			t.Errorf("duplicate subject %q", s)
		}
		seen[s] = true
	}
}

func TestCompletion(t *testing.T) {
	day := Day{Tasks: 3, Exercises: 2}

	tests := []struct {
		name          string
		tasksDone     int
		exercisesDone int
		want          float64
	}{
		{"nothing done", 0, 0, 0},
		{"one task", 1, 0, 20},
		{"tasks only", 3, 0, 60},
		{"exercises only", 0, 2, 40},
		{"everything", 3, 2, 100},
		{"overshoot clamps", 10, 10, 100},
		{"negative clamps", -1, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Completion(day, tt.tasksDone, tt.exercisesDone); got != tt.want {
				t.Errorf("Completion(%d, %d) = %v, want %v", tt.tasksDone, tt.exercisesDone, got, tt.want)
			}
		})
	}
}

func TestCompletion_EmptyDay(t *testing.T) {
	if got := Completion(Day{}, 0, 0); got != 0 {
		t.Errorf("Completion on an empty day = %v, want 0", got)
	}
}
