package activities

import "github.com/tinkerlab/tinkeralpha/internal/stagegraph"

func circuit() Activity {
	stages := []stagegraph.Stage{
		{
			ID: "intro", Name: "Introduction Video with Sparky", Kind: stagegraph.KindIntro,
			Order: 1, RewardStars: 1,
			Mission: []string{
				"Meet Sparky the Robot",
				"Watch the simple circuit introduction",
			},
			CompletionMessage: "Let's start building! ⚡",
		},
		{
			ID: "build", Name: "Build Your Circuit", Kind: stagegraph.KindHandsOn,
			Order: 2, RewardStars: 3,
			Mission: []string{
				"Connect the battery to power your circuit",
				"Add a switch to control the flow",
				"Connect the LED light",
				"Close the switch to light it up!",
			},
			CompletionMessage: "Great job! ⚡ Circuit completed!",
		},
		{
			ID: "practice", Name: "Interactive Circuit Activity", Kind: stagegraph.KindPractice,
			Order: 3, RewardStars: 5,
			Mission: []string{
				"Test your circuit knowledge",
				"Match each component to its job",
			},
			CompletionMessage: "Interactive activity completed! Amazing work! 🏆",
		},
		{
			ID: "puzzle", Name: "Circuit Puzzle Challenge", Kind: stagegraph.KindPuzzle,
			Order: 4, RewardStars: 7,
			Mission: []string{
				"Find the missing connection",
				"Pick the part that controls the electricity flow",
			},
			CompletionMessage: "Puzzle Master! 🧩 All sections completed!",
		},
		{
			ID: "complete", Name: "Congratulations!", Kind: stagegraph.KindComplete,
			Order: 5, RewardStars: 0,
			Mission: []string{
				"You've mastered Simple Electric Circuits!",
			},
			CompletionMessage: "Circuit adventure complete!",
		},
	}

	return Activity{
		ID:             "circuit",
		Title:          "Simple Electric Circuit",
		Subject:        "Electricity",
		Tagline:        "Join Sparky on an amazing circuit adventure!",
		Badge:          "Circuit Master",
		NextActivityID: "motor",
		Graph:          stagegraph.MustNew("circuit", stages),
		Puzzles: map[stagegraph.StageID]Question{
			"puzzle": {
				Prompt: "The LED won't light up. Which part controls whether electricity can flow?",
				Options: []string{
					"The switch",
					"The wire color",
					"The battery sticker",
					"The table",
				},
				Answer: 0,
			},
		},
	}
}
