package bundle

import "skyspotter-service/internal/domain"

// starterQuestions is the shipped backup set used when the bundled data
// file is missing or empty.
func starterQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:            "civil-easy-737",
			ImageRef:      "boeing_737",
			CorrectAnswer: "Boeing 737",
			Options:       []string{"Boeing 737", "Airbus A320", "Embraer E-Jet", "Boeing 747"},
			Category:      domain.CategoryCivil,
			Difficulty:    domain.DifficultyEasy,
			Explanation:   "The Boeing 737 is recognizable by its low-slung engines with flattened nacelle bottoms.",
		},
		{
			ID:            "civil-easy-a380",
			ImageRef:      "airbus_a380",
			CorrectAnswer: "Airbus A380",
			Options:       []string{"Airbus A380", "Boeing 747", "Airbus A350", "Boeing 787 Dreamliner"},
			Category:      domain.CategoryCivil,
			Difficulty:    domain.DifficultyEasy,
			Explanation:   "The Airbus A380 is the only full-length double-deck airliner in service.",
		},
		{
			ID:            "civil-medium-a350",
			ImageRef:      "airbus_a350",
			CorrectAnswer: "Airbus A350",
			Options:       []string{"Airbus A350", "Boeing 787 Dreamliner", "Airbus A330", "Boeing 777"},
			Category:      domain.CategoryCivil,
			Difficulty:    domain.DifficultyMedium,
			Explanation:   "The Airbus A350 is recognizable by its curved black windscreen mask.",
		},
		{
			ID:            "civil-hard-bonanza",
			ImageRef:      "beechcraft_bonanza",
			CorrectAnswer: "Beechcraft Bonanza",
			Options:       []string{"Beechcraft Bonanza", "Cessna 172", "Piper Cherokee", "Mooney M20"},
			Category:      domain.CategoryCivil,
			Difficulty:    domain.DifficultyHard,
			Explanation:   "Classic Bonanzas carry a distinctive V-tail.",
		},
		{
			ID:            "military-easy-f22",
			ImageRef:      "f22_raptor",
			CorrectAnswer: "F-22 Raptor",
			Options:       []string{"F-22 Raptor", "F-35 Lightning II", "F/A-18 Hornet", "F-16 Fighting Falcon"},
			Category:      domain.CategoryMilitary,
			Difficulty:    domain.DifficultyEasy,
			Explanation:   "The F-22 is recognizable by its twin canted tails and diamond wings.",
		},
		{
			ID:            "military-easy-a10",
			ImageRef:      "a10_thunderbolt",
			CorrectAnswer: "A-10 Thunderbolt II",
			Options:       []string{"A-10 Thunderbolt II", "F-16 Fighting Falcon", "AV-8B Harrier", "F-5 Tiger"},
			Category:      domain.CategoryMilitary,
			Difficulty:    domain.DifficultyEasy,
			Explanation:   "The A-10's rear-mounted twin turbofans and straight wings are unmistakable.",
		},
		{
			ID:            "military-medium-b2",
			ImageRef:      "b2_spirit",
			CorrectAnswer: "B-2 Spirit",
			Options:       []string{"B-2 Spirit", "F-117 Nighthawk", "B-1 Lancer", "B-52 Stratofortress"},
			Category:      domain.CategoryMilitary,
			Difficulty:    domain.DifficultyMedium,
			Explanation:   "The B-2 Spirit is a pure flying wing with no vertical surfaces.",
		},
		{
			ID:            "military-hard-v22",
			ImageRef:      "v22_osprey",
			CorrectAnswer: "V-22 Osprey",
			Options:       []string{"V-22 Osprey", "CH-47 Chinook", "AH-64 Apache", "UH-60 Black Hawk"},
			Category:      domain.CategoryMilitary,
			Difficulty:    domain.DifficultyHard,
			Explanation:   "The V-22 Osprey's tiltrotor nacelles set it apart from any helicopter.",
		},
	}
}
