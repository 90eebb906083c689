package activities

import "github.com/tinkerlab/tinkeralpha/internal/stagegraph"

func motor() Activity {
	stages := []stagegraph.Stage{
		{
			ID: "intro", Name: "Meet the Motor", Kind: stagegraph.KindIntro,
			Order: 1, RewardStars: 1,
			Mission: []string{
				"Watch how a motor spins",
				"Sparky explains magnets and coils",
			},
			CompletionMessage: "Time to build a motor! 🔧",
		},
		{
			ID: "build", Name: "Build Your Motor", Kind: stagegraph.KindHandsOn,
			Order: 2, RewardStars: 3,
			Mission: []string{
				"Wind the coil around the core",
				"Attach the magnets",
				"Connect the battery leads",
				"Give it a gentle spin to start!",
			},
			CompletionMessage: "Great job! 🔧 Motor spinning!",
		},
		{
			ID: "practice", Name: "Motor Speed Lab", Kind: stagegraph.KindPractice,
			Order: 3, RewardStars: 5,
			Mission: []string{
				"Predict what makes the motor faster",
				"Test more coils and stronger magnets",
			},
			CompletionMessage: "Speed lab completed! Amazing work! 🏆",
		},
		{
			ID: "puzzle", Name: "Motor Puzzle Challenge", Kind: stagegraph.KindPuzzle,
			Order: 4, RewardStars: 7,
			Mission: []string{
				"The motor stopped — find out why",
				"Pick the broken part",
			},
			CompletionMessage: "Puzzle Master! 🧩 All sections completed!",
		},
		{
			ID: "complete", Name: "Congratulations!", Kind: stagegraph.KindComplete,
			Order: 5, RewardStars: 0,
			Mission: []string{
				"You've mastered Electric Motors!",
			},
			CompletionMessage: "Motor adventure complete!",
		},
	}

	return Activity{
		ID:             "motor",
		Title:          "Electric Motor Building",
		Subject:        "Electromagnetism",
		Tagline:        "Make things spin with Sparky!",
		Badge:          "Motor Master",
		NextActivityID: "traffic",
		Graph:          stagegraph.MustNew("motor", stages),
		Puzzles: map[stagegraph.StageID]Question{
			"puzzle": {
				Prompt: "The motor suddenly stopped spinning. What should Sparky check first?",
				Options: []string{
					"The room temperature",
					"The battery connection",
					"The color of the magnets",
					"The name of the motor",
				},
				Answer: 1,
			},
		},
	}
}
