package activities

import "github.com/tinkerlab/tinkeralpha/internal/stagegraph"

func traffic() Activity {
	stages := []stagegraph.Stage{
		{
			ID: "intro", Name: "Traffic Lights Everywhere", Kind: stagegraph.KindIntro,
			Order: 1, RewardStars: 1,
			Mission: []string{
				"Spot the three lamp colors",
				"Sparky explains why order matters",
			},
			CompletionMessage: "Let's wire some lights! 🚦",
		},
		{
			ID: "build", Name: "Wire the Traffic Light", Kind: stagegraph.KindHandsOn,
			Order: 2, RewardStars: 3,
			Mission: []string{
				"Connect the red, yellow and green LEDs",
				"Add one switch per lamp",
				"Share a single battery across all three",
			},
			CompletionMessage: "Great job! 🚦 All lamps working!",
		},
		{
			ID: "practice", Name: "Light Sequence Game", Kind: stagegraph.KindPractice,
			Order: 3, RewardStars: 5,
			Mission: []string{
				"Switch the lamps in the right order",
				"Keep the cars and walkers safe",
			},
			CompletionMessage: "Sequence game completed! Amazing work! 🏆",
		},
		{
			ID: "puzzle", Name: "Crossing Puzzle Challenge", Kind: stagegraph.KindPuzzle,
			Order: 4, RewardStars: 7,
			Mission: []string{
				"Two lights are on at once — fix the wiring",
				"Pick the crossed wire",
			},
			CompletionMessage: "Puzzle Master! 🧩 All sections completed!",
		},
		{
			ID: "complete", Name: "Congratulations!", Kind: stagegraph.KindComplete,
			Order: 5, RewardStars: 0,
			Mission: []string{
				"You've mastered Traffic Light Control!",
			},
			CompletionMessage: "Traffic light adventure complete!",
		},
	}

	return Activity{
		ID:             "traffic",
		Title:          "Traffic Light Control",
		Subject:        "Switching",
		Tagline:        "Keep the city moving with Sparky!",
		Badge:          "Traffic Controller",
		NextActivityID: "robot",
		Graph:          stagegraph.MustNew("traffic", stages),
		Puzzles: map[stagegraph.StageID]Question{
			"puzzle": {
				Prompt: "Red and green are glowing at the same time. What went wrong?",
				Options: []string{
					"The battery is too small",
					"The LEDs are the wrong color",
					"Two switch wires are crossed",
					"The green LED is tired",
				},
				Answer: 2,
			},
		},
	}
}
