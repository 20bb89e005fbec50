package services

// Static content the app renders as-is: the workout program table and the
// eating-out guidance. Plain data, no behavior.

type WorkoutExercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

type WorkoutDay struct {
	Day       string            `json:"day"`
	Focus     string            `json:"focus"`
	Exercises []WorkoutExercise `json:"exercises"`
}

var WorkoutCatalog = []WorkoutDay{
	{
		Day:   "Monday",
		Focus: "Full body strength",
		Exercises: []WorkoutExercise{
			{Name: "Goblet squat", Sets: 3, Reps: "10-12"},
			{Name: "Push-up", Sets: 3, Reps: "8-12"},
			{Name: "Bent-over row", Sets: 3, Reps: "10-12"},
			{Name: "Plank", Sets: 3, Reps: "30-45s"},
		},
	},
	{
		Day:   "Wednesday",
		Focus: "Low-impact cardio",
		Exercises: []WorkoutExercise{
			{Name: "Brisk walk", Sets: 1, Reps: "30 min"},
			{Name: "Stationary bike", Sets: 1, Reps: "15 min"},
			{Name: "Stretching circuit", Sets: 1, Reps: "10 min"},
		},
	},
	{
		Day:   "Friday",
		Focus: "Full body strength",
		Exercises: []WorkoutExercise{
			{Name: "Romanian deadlift", Sets: 3, Reps: "10-12"},
			{Name: "Overhead press", Sets: 3, Reps: "8-10"},
			{Name: "Reverse lunge", Sets: 3, Reps: "10 per leg"},
			{Name: "Dead bug", Sets: 3, Reps: "10 per side"},
		},
	},
	{
		Day:   "Saturday",
		Focus: "Active recovery",
		Exercises: []WorkoutExercise{
			{Name: "Easy walk", Sets: 1, Reps: "45 min"},
			{Name: "Mobility flow", Sets: 1, Reps: "15 min"},
		},
	},
}

type RestaurantTip struct {
	Cuisine string   `json:"cuisine"`
	Order   []string `json:"order"`
	Avoid   []string `json:"avoid"`
	Tip     string   `json:"tip"`
}

var RestaurantCatalog = []RestaurantTip{
	{
		Cuisine: "Italian",
		Order:   []string{"Grilled fish or chicken", "Minestrone soup", "Side salad, dressing on the side"},
		Avoid:   []string{"Cream-based pasta", "Garlic bread basket", "Stuffed crust pizza"},
		Tip:     "Ask for half the pasta, double the vegetables.",
	},
	{
		Cuisine: "Mexican",
		Order:   []string{"Fajitas with corn tortillas", "Chicken or shrimp bowl, no rice", "Black beans"},
		Avoid:   []string{"Chimichangas", "Loaded nachos", "Bottomless chips"},
		Tip:     "Salsa over sour cream; it adds flavor for almost no calories.",
	},
	{
		Cuisine: "Asian",
		Order:   []string{"Steamed dumplings", "Stir-fry with extra vegetables", "Sashimi or nigiri"},
		Avoid:   []string{"Sweet and sour anything", "Tempura", "Fried rice"},
		Tip:     "Sauce on the side; most of the sugar lives in the glaze.",
	},
	{
		Cuisine: "Burgers",
		Order:   []string{"Single patty, no cheese", "Lettuce wrap option", "Side salad instead of fries"},
		Avoid:   []string{"Double patties with bacon", "Milkshakes", "Loaded fries"},
		Tip:     "Eat the burger, skip the liquid calories.",
	},
	{
		Cuisine: "Breakfast",
		Order:   []string{"Veggie omelet", "Oatmeal with fruit", "Greek yogurt parfait"},
		Avoid:   []string{"Pancake platters", "Pastries", "Sugary coffee drinks"},
		Tip:     "Protein first thing keeps you full past lunch.",
	},
}
