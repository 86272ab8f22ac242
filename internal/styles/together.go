package styles

// Person + pet portrait styles.
var Together = Catalog{
	{
		Value:       "studio-portrait",
		Label:       "Studio Portrait",
		Emoji:       "📸",
		Description: "Professional photo together",
		Prompt:      "Create a warm, professional studio portrait photograph of this person and their pet together. Soft studio lighting, clean blurred background. The person is holding or sitting beside their pet, both looking happy and connected. Natural, authentic poses.",
	},
	{
		Value:       "renaissance",
		Label:       "Renaissance",
		Emoji:       "🎨",
		Description: "Classical oil painting",
		Prompt:      "Create a grand renaissance-style oil painting of this person and their pet together as nobility. Both dressed in period-appropriate royal attire, dramatic chiaroscuro lighting, rich colors, painted with museum-quality detail. Majestic and timeless.",
	},
	{
		Value:       "pixar-duo",
		Label:       "Pixar Duo",
		Emoji:       "✨",
		Description: "3D animated movie characters",
		Prompt:      "Create a 3D Pixar/Disney-style animated scene of this person and their pet together as animated characters. Both have big expressive eyes, endearing proportions, warm cinematic lighting. They look like the main characters of a heartwarming animated film.",
	},
	{
		Value:       "adventure",
		Label:       "Adventure",
		Emoji:       "🏔️",
		Description: "Epic outdoor adventure",
		Prompt:      "Create an epic adventure photograph of this person and their pet together on a mountain summit at golden hour. Dramatic landscape, wind in their hair/fur, a sense of accomplishment and companionship. National Geographic quality.",
	},
	{
		Value:       "anime-duo",
		Label:       "Anime",
		Emoji:       "🌸",
		Description: "Studio Ghibli style",
		Prompt:      "Create a beautiful Studio Ghibli-style anime illustration of this person and their pet together in a magical forest scene with dappled sunlight, floating particles of light, and lush greenery. Warm, whimsical, and full of wonder. Ghibli's signature art style.",
	},
	{
		Value:       "holiday-card",
		Label:       "Holiday Card",
		Emoji:       "🎄",
		Description: "Festive greeting card",
		Prompt:      "Create a beautiful holiday greeting card featuring this person and their pet together. Cozy winter scene with snowflakes, warm lighting, matching sweaters or scarves, a festive tree in the background. Heartwarming and ready to send to family.",
	},
}

const PersonAnalysisPrompt = `Describe this person's physical appearance in precise detail for identity preservation in AI art:
1. Gender, approximate age, ethnicity
2. Hair: color, length, style, texture
3. Face: eye color, facial structure, nose shape, lip shape, eyebrows, any facial hair
4. Build: height estimate, body type
5. Distinguishing features: glasses, freckles, dimples, scars, piercings, tattoos
6. Current outfit (for reference)
Keep to 2-3 sentences. Be photographically precise.`

const PersonFallbackDescription = "A person in the photo"

const TogetherPetFallbackDescription = "A pet in the photo"
