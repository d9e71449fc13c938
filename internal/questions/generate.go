package questions

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"skyspotter-service/internal/domain"
)

var civilAircraft = []string{
	"Boeing 737", "Airbus A320", "Boeing 747", "Airbus A380",
	"Cessna 172", "Bombardier Challenger", "Embraer E-Jet",
	"Boeing 787 Dreamliner", "Airbus A350", "Beechcraft Bonanza",
}

var militaryAircraft = []string{
	"F-22 Raptor", "F-35 Lightning II", "F-16 Fighting Falcon",
	"F/A-18 Hornet", "A-10 Thunderbolt II", "B-2 Spirit",
	"AH-64 Apache", "V-22 Osprey", "C-130 Hercules", "B-52 Stratofortress",
}

var recognitionFeatures = []string{
	"distinctive wing shape",
	"unique tail configuration",
	"characteristic nose profile",
	"engine placement",
	"cockpit window design",
	"landing gear configuration",
	"fuselage length and shape",
	"wingspan ratio",
	"vertical stabilizer design",
	"distinctive paint scheme",
}

const optionsPerQuestion = 4

// namePool returns the aircraft names a synthesized question for the
// given category may draw from.
func namePool(category domain.Category) []string {
	switch category {
	case domain.CategoryCivil:
		return civilAircraft
	case domain.CategoryMilitary:
		return militaryAircraft
	default:
		pool := make([]string, 0, len(civilAircraft)+len(militaryAircraft))
		pool = append(pool, civilAircraft...)
		pool = append(pool, militaryAircraft...)
		return pool
	}
}

// Synthesize generates count questions for the given category and
// difficulty. Each question carries exactly four options: the correct
// answer once, plus three distinct distractors drawn without replacement
// from the same category pool.
func Synthesize(rnd *rand.Rand, category domain.Category, difficulty domain.Difficulty, count int) []domain.Question {
	pool := namePool(category)
	out := make([]domain.Question, 0, count)
	for i := 0; i < count; i++ {
		correct := pool[rnd.Intn(len(pool))]

		distractors := make([]string, 0, len(pool)-1)
		for _, name := range pool {
			if name != correct {
				distractors = append(distractors, name)
			}
		}
		rnd.Shuffle(len(distractors), func(a, b int) {
			distractors[a], distractors[b] = distractors[b], distractors[a]
		})
		options := append([]string{correct}, distractors[:optionsPerQuestion-1]...)

		feature := recognitionFeatures[rnd.Intn(len(recognitionFeatures))]
		out = append(out, domain.Question{
			ID:            uuid.NewString(),
			ImageRef:      fmt.Sprintf("placeholder_%s_%d", slug(category), i%10+1),
			CorrectAnswer: correct,
			Options:       options,
			Category:      category,
			Difficulty:    difficulty,
			Explanation:   fmt.Sprintf("The %s is recognizable by its %s.", correct, feature),
		})
	}
	return out
}

// SynthesizeAll generates perCombo questions for every category and
// difficulty pairing. Used as the last-resort question source tier.
func SynthesizeAll(rnd *rand.Rand, perCombo int) []domain.Question {
	categories := []domain.Category{domain.CategoryCivil, domain.CategoryMilitary, domain.CategoryMixed}
	difficulties := []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard}

	var out []domain.Question
	for _, c := range categories {
		for _, d := range difficulties {
			out = append(out, Synthesize(rnd, c, d, perCombo)...)
		}
	}
	return out
}

func slug(category domain.Category) string {
	switch category {
	case domain.CategoryCivil:
		return "civil"
	case domain.CategoryMilitary:
		return "military"
	default:
		return "mixed"
	}
}
