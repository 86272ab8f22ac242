package styles

// Multi-pet group portrait styles.
var MultiPet = Catalog{
	{
		Value:       "family-portrait",
		Label:       "Family Portrait",
		Emoji:       "👨‍👩‍👧‍👦",
		Description: "Classic family photo style",
		Prompt:      "Create a professional family portrait photograph featuring all the pets together. They should be posed naturally side by side or arranged in a group, with soft studio lighting and a clean neutral background. Each pet must be accurately depicted with their exact features, coloring, and proportions.",
	},
	{
		Value:       "adventure-squad",
		Label:       "Adventure Squad",
		Emoji:       "🏔️",
		Description: "Epic outdoor adventure together",
		Prompt:      "Create an epic adventure scene with all the pets together on a dramatic mountain trail at golden hour. They look like a team of explorers — confident, adventurous, bonded. Cinematic lighting, sweeping landscape. Each pet must be accurately depicted with their exact features, coloring, and proportions.",
	},
	{
		Value:       "royal-court",
		Label:       "Royal Court",
		Emoji:       "🏰",
		Description: "Renaissance painting of the whole court",
		Prompt:      "Create a grand renaissance-style oil painting of all the pets as members of a royal court. Each wears era-appropriate finery — robes, crowns, jewels. Dark classical background with dramatic chiaroscuro lighting. Each pet must be painted with photographic accuracy to their real appearance.",
	},
	{
		Value:       "pixar-gang",
		Label:       "Pixar Gang",
		Emoji:       "🎬",
		Description: "Animated movie poster",
		Prompt:      "Create a Pixar/Disney movie poster featuring all the pets as animated characters. Big expressive eyes, warm lighting, dynamic composition like they're the stars of their own film. Include a movie-poster-style layout. Each pet must be unmistakably recognizable with their real features translated into 3D animation style.",
	},
	{
		Value:       "cozy-nap",
		Label:       "Cozy Nap Pile",
		Emoji:       "😴",
		Description: "All curled up together sleeping",
		Prompt:      "Create a heartwarming scene of all the pets snuggled together in a cozy nap pile on a plush blanket by a fireplace. Warm amber lighting, peaceful expressions, genuine warmth between them. Each pet must be accurately depicted with their exact features, coloring, and proportions.",
	},
	{
		Value:       "superhero-team",
		Label:       "Superhero Team",
		Emoji:       "🦸",
		Description: "The ultimate pet superhero squad",
		Prompt:      "Create an epic superhero team poster with all the pets as superheroes. Each wears a unique custom suit with flowing capes, standing on a rooftop with dramatic city skyline and sunset. Dynamic poses showing their powers. Each pet must be accurately depicted with their exact features translated into heroic form.",
	},
}

// MultiPetAnalysisPrompt covers every pet in a single grouped call.
const MultiPetAnalysisPrompt = `You are an expert pet photographer. Analyze this group of pet photos. For EACH pet visible, provide a detailed description in this format:

PET 1:
- Species, breed, size
- Coat: colors, pattern, length, markings
- Face: eye color, nose, ears, expression
- Distinguishing features

PET 2:
(same format)

Continue for each pet. Be photographically precise — these descriptions will be used to ensure AI-generated art accurately depicts each specific pet.`

const MultiPetFallbackDescription = "Multiple pets in the photos"
