package activities

import "github.com/tinkerlab/tinkeralpha/internal/stagegraph"

func robot() Activity {
	stages := []stagegraph.Stage{
		{
			ID: "intro", Name: "Robots Like Sparky", Kind: stagegraph.KindIntro,
			Order: 1, RewardStars: 1,
			Mission: []string{
				"See what parts make a robot move",
				"Sparky shows off his wheels",
			},
			CompletionMessage: "Let's build a robot friend! 🤖",
		},
		{
			ID: "build", Name: "Assemble Your Robot", Kind: stagegraph.KindHandsOn,
			Order: 2, RewardStars: 3,
			Mission: []string{
				"Mount the two drive motors",
				"Clip in the battery pack",
				"Connect the motor leads to the switch",
				"Flip the switch and watch it roll!",
			},
			CompletionMessage: "Great job! 🤖 Robot rolling!",
		},
		{
			ID: "practice", Name: "Robot Driving Course", Kind: stagegraph.KindPractice,
			Order: 3, RewardStars: 5,
			Mission: []string{
				"Steer through the cone course",
				"Reverse without touching the walls",
			},
			CompletionMessage: "Driving course completed! Amazing work! 🏆",
		},
		{
			ID: "puzzle", Name: "Robot Puzzle Challenge", Kind: stagegraph.KindPuzzle,
			Order: 4, RewardStars: 7,
			Mission: []string{
				"The robot only turns left — find out why",
				"Pick the part to check first",
			},
			CompletionMessage: "Puzzle Master! 🧩 All sections completed!",
		},
		{
			ID: "complete", Name: "Congratulations!", Kind: stagegraph.KindComplete,
			Order: 5, RewardStars: 0,
			Mission: []string{
				"You've mastered Robot Building!",
			},
			CompletionMessage: "Robot adventure complete!",
		},
	}

	return Activity{
		ID:      "robot",
		Title:   "Robot Building",
		Subject: "Robotics",
		Tagline: "Build Sparky a little brother!",
		Badge:   "Robot Builder",
		Graph:   stagegraph.MustNew("robot", stages),
		Puzzles: map[stagegraph.StageID]Question{
			"puzzle": {
				Prompt: "The robot only turns left. Which part should you check first?",
				Options: []string{
					"The right drive motor",
					"The battery sticker",
					"The cone course",
					"Sparky's antenna",
				},
				Answer: 0,
			},
		},
	}
}
