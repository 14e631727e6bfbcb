// Package templates holds the built-in workout template catalog. Built-in
// templates are identified by string slugs; user-created templates live in
// the database and are merged in at the API layer.
package templates

// Exercise is one exercise blueprint inside a built-in template.
type Exercise struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Sets        int    `json:"sets,omitempty"`
	Reps        int    `json:"reps,omitempty"`
}

// Template is a built-in workout template.
type Template struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Equipment   string     `json:"equipment"`
	Goal        string     `json:"goal"`
	Exercises   []Exercise `json:"exercises"`
}

// Equipment and goal values used by the catalog and accepted as filters.
const (
	EquipmentBodyweight = "bodyweight"
	EquipmentDumbbell   = "dumbbell"
	EquipmentGym        = "gym"

	GoalStrength    = "strength"
	GoalHypertrophy = "hypertrophy"
	GoalEndurance   = "endurance"
)

// Catalog is the built-in template list served to every user.
var Catalog = []Template{
	{
		ID:          "bodyweight-full-body",
		Name:        "Full Body (Bodyweight)",
		Description: "Three rounds of compound bodyweight movements, no equipment needed.",
		Equipment:   EquipmentBodyweight,
		Goal:        GoalEndurance,
		Exercises: []Exercise{
			{Name: "Push-ups", Sets: 3, Reps: 15},
			{Name: "Bodyweight Squats", Sets: 3, Reps: 20},
			{Name: "Plank", Description: "Hold 45 seconds", Sets: 3, Reps: 1},
			{Name: "Lunges", Description: "Alternating legs", Sets: 3, Reps: 12},
			{Name: "Mountain Climbers", Sets: 3, Reps: 30},
		},
	},
	{
		ID:          "dumbbell-upper-lower",
		Name:        "Upper/Lower Split (Dumbbell)",
		Description: "A balanced dumbbell split for building muscle at home.",
		Equipment:   EquipmentDumbbell,
		Goal:        GoalHypertrophy,
		Exercises: []Exercise{
			{Name: "Dumbbell Bench Press", Sets: 4, Reps: 10},
			{Name: "Dumbbell Rows", Sets: 4, Reps: 10},
			{Name: "Goblet Squats", Sets: 4, Reps: 12},
			{Name: "Romanian Deadlifts", Sets: 3, Reps: 12},
			{Name: "Shoulder Press", Sets: 3, Reps: 10},
			{Name: "Bicep Curls", Sets: 3, Reps: 12},
		},
	},
	{
		ID:          "gym-strength-531",
		Name:        "Big Lifts Strength",
		Description: "Low-rep barbell work centered on the main compound lifts.",
		Equipment:   EquipmentGym,
		Goal:        GoalStrength,
		Exercises: []Exercise{
			{Name: "Barbell Squat", Sets: 5, Reps: 5},
			{Name: "Bench Press", Sets: 5, Reps: 5},
			{Name: "Deadlift", Sets: 3, Reps: 5},
			{Name: "Overhead Press", Sets: 3, Reps: 8},
		},
	},
	{
		ID:          "gym-hypertrophy-push-pull",
		Name:        "Push/Pull (Gym)",
		Description: "Machine and free-weight volume work for muscle growth.",
		Equipment:   EquipmentGym,
		Goal:        GoalHypertrophy,
		Exercises: []Exercise{
			{Name: "Incline Dumbbell Press", Sets: 4, Reps: 10},
			{Name: "Lat Pulldown", Sets: 4, Reps: 12},
			{Name: "Cable Rows", Sets: 3, Reps: 12},
			{Name: "Lateral Raises", Sets: 3, Reps: 15},
			{Name: "Triceps Pushdown", Sets: 3, Reps: 12},
			{Name: "Hammer Curls", Sets: 3, Reps: 12},
		},
	},
	{
		ID:          "bodyweight-core",
		Name:        "Core Circuit",
		Description: "A short core-focused circuit to finish any session.",
		Equipment:   EquipmentBodyweight,
		Goal:        GoalEndurance,
		Exercises: []Exercise{
			{Name: "Crunches", Sets: 3, Reps: 20},
			{Name: "Leg Raises", Sets: 3, Reps: 15},
			{Name: "Russian Twists", Sets: 3, Reps: 30},
			{Name: "Side Plank", Description: "Hold 30 seconds per side", Sets: 3, Reps: 2},
		},
	},
}

// Find returns the built-in template with the given id, or nil.
func Find(id string) *Template {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

// Filter returns catalog entries matching the given equipment and goal.
// Empty values match everything.
func Filter(equipment, goal string) []Template {
	out := []Template{}
	for _, t := range Catalog {
		if equipment != "" && t.Equipment != equipment {
			continue
		}
		if goal != "" && t.Goal != goal {
			continue
		}
		out = append(out, t)
	}
	return out
}
