package catalog

import "tabata_timer/internal/models"

var exercises = map[string]models.Exercise{
	"burpees":          {Name: "Burpees", Description: "Full body explosive movement"},
	"push_ups":         {Name: "Push-ups", Description: "Upper body strength exercise"},
	"jumping_jacks":    {Name: "Jumping Jacks", Description: "Full body cardio movement"},
	"mountain_climber": {Name: "Mountain Climbers", Description: "Core and cardio exercise"},
	"squats":           {Name: "Squats", Description: "Lower body strength exercise"},
	"lunges":           {Name: "Lunges", Description: "Single leg strength exercise"},
	"plank_jacks":      {Name: "Plank Jacks", Description: "Core stability with cardio"},
	"high_knees":       {Name: "High Knees", Description: "Running in place with high knees"},
	"butt_kicks":       {Name: "Butt Kicks", Description: "Running in place kicking heels to glutes"},
	"jump_squats":      {Name: "Jump Squats", Description: "Explosive lower body exercise"},
	"tricep_dips":      {Name: "Tricep Dips", Description: "Upper body tricep focused exercise"},
	"russian_twists":   {Name: "Russian Twists", Description: "Core rotational exercise"},
	"wall_sit":         {Name: "Wall Sit", Description: "Isometric lower body exercise"},
	"bicycle_crunches": {Name: "Bicycle Crunches", Description: "Core exercise with rotation"},
	"jumping_lunges":   {Name: "Jumping Lunges", Description: "Explosive alternating lunges"},
	"dead_bugs":        {Name: "Dead Bugs", Description: "Core stability exercise"},
}

func pair(a, b string) models.WorkoutPair {
	return models.WorkoutPair{ExerciseA: exercises[a], ExerciseB: exercises[b]}
}

// Predefined returns a fresh copy of the built-in workouts.
func Predefined() []models.Workout {
	return []models.Workout{
		{
			ID:               "full-body-blast",
			Name:             "Full Body Blast",
			Description:      "Complete full body workout hitting all major muscle groups",
			Rounds:           8,
			RestBetweenPairs: 60,
			Pairs: []models.WorkoutPair{
				pair("burpees", "push_ups"),
				pair("jump_squats", "mountain_climber"),
				pair("jumping_lunges", "plank_jacks"),
				pair("russian_twists", "tricep_dips"),
			},
		},
		{
			ID:               "cardio-crusher",
			Name:             "Cardio Crusher",
			Description:      "High intensity cardio focused workout",
			Rounds:           8,
			RestBetweenPairs: 45,
			Pairs: []models.WorkoutPair{
				pair("jumping_jacks", "high_knees"),
				pair("butt_kicks", "mountain_climber"),
				pair("burpees", "jump_squats"),
				pair("jumping_lunges", "plank_jacks"),
			},
		},
		{
			ID:               "core-crusher",
			Name:             "Core Crusher",
			Description:      "Intense core and abdominal focused workout",
			Rounds:           8,
			RestBetweenPairs: 30,
			Pairs: []models.WorkoutPair{
				pair("plank_jacks", "russian_twists"),
				pair("bicycle_crunches", "dead_bugs"),
				pair("mountain_climber", "burpees"),
			},
		},
		{
			ID:               "lower-body-burn",
			Name:             "Lower Body Burn",
			Description:      "Leg and glute focused strength workout",
			Rounds:           8,
			RestBetweenPairs: 45,
			Pairs: []models.WorkoutPair{
				pair("squats", "jump_squats"),
				pair("lunges", "jumping_lunges"),
				pair("wall_sit", "butt_kicks"),
			},
		},
		{
			ID:               "upper-body-power",
			Name:             "Upper Body Power",
			Description:      "Upper body strength and endurance workout",
			Rounds:           8,
			RestBetweenPairs: 45,
			Pairs: []models.WorkoutPair{
				pair("push_ups", "tricep_dips"),
				pair("burpees", "plank_jacks"),
				pair("mountain_climber", "russian_twists"),
			},
		},
		{
			ID:               "beginners-start",
			Name:             "Beginner's Start",
			Description:      "Perfect introduction to tabata training",
			Rounds:           6,
			RestBetweenPairs: 60,
			Pairs: []models.WorkoutPair{
				pair("jumping_jacks", "squats"),
				pair("push_ups", "lunges"),
				pair("high_knees", "wall_sit"),
			},
		},
		{
			ID:               "hiit-heaven",
			Name:             "HIIT Heaven",
			Description:      "Maximum intensity interval training",
			Rounds:           8,
			RestBetweenPairs: 30,
			Pairs: []models.WorkoutPair{
				pair("burpees", "jump_squats"),
				pair("mountain_climber", "jumping_lunges"),
				pair("plank_jacks", "tricep_dips"),
				pair("russian_twists", "bicycle_crunches"),
			},
		},
		{
			ID:               "quick-blast",
			Name:             "Quick Blast",
			Description:      "Short but intense 10-minute workout",
			Rounds:           6,
			RestBetweenPairs: 30,
			Pairs: []models.WorkoutPair{
				pair("jumping_jacks", "push_ups"),
				pair("squats", "mountain_climber"),
			},
		},
	}
}
