package styles

// Classic single-pet portrait styles.
var Classic = Catalog{
	{
		Value:       "pixar",
		Label:       "3D Pixar",
		Emoji:       "✨",
		Description: "3D animated movie character",
		Prompt:      "Create a 3D Pixar-style animated character portrait of this exact pet. Big expressive eyes, endearing proportions, soft subsurface-scattering fur, warm cinematic lighting. The pet should look like the lovable star of an animated feature film while keeping every real marking and feature.",
	},
	{
		Value:       "ghibli",
		Label:       "Studio Ghibli",
		Emoji:       "🌸",
		Description: "Hand-drawn anime style",
		Prompt:      "Create a beautiful Studio Ghibli-style anime illustration of this exact pet in a lush, whimsical natural scene with dappled sunlight and floating particles of light. Soft painterly backgrounds, warm and full of wonder, in Ghibli's signature hand-drawn art style.",
	},
	{
		Value:       "oil-painting",
		Label:       "Oil Painting",
		Emoji:       "🎨",
		Description: "Classical oil masterpiece",
		Prompt:      "Create a classical oil painting masterpiece of this exact pet in the style of the old masters. Rich impasto brushwork, dramatic chiaroscuro lighting, deep warm tones, museum-quality detail. A dignified, timeless portrait.",
	},
	{
		Value:       "cyberpunk",
		Label:       "Cyberpunk",
		Emoji:       "🌃",
		Description: "Neon futuristic aesthetic",
		Prompt:      "Create a cyberpunk portrait of this exact pet in a rain-slicked neon city at night. Vivid magenta and cyan rim lighting, holographic signage reflections, a sleek futuristic atmosphere. The pet's real features and markings must remain unmistakable beneath the neon glow.",
	},
	{
		Value:       "watercolor",
		Label:       "Watercolor",
		Emoji:       "💧",
		Description: "Soft watercolor illustration",
		Prompt:      "Create a delicate watercolor illustration of this exact pet. Soft flowing washes of color, gentle paper texture, loose expressive edges with precise detail in the face and eyes. Light, airy, and full of charm.",
	},
	{
		Value:       "pop-art",
		Label:       "Pop Art",
		Emoji:       "🖼️",
		Description: "Bold comic-book style",
		Prompt:      "Create a bold pop-art comic-style portrait of this exact pet. Benday dots, thick black outlines, saturated primary colors, graphic halftone shading. Playful and striking, with the pet's real features translated faithfully into the comic idiom.",
	},
}

// PetAnalysisPrompt drives the identity-analysis call for the classic
// single-pet workflow.
const PetAnalysisPrompt = `Describe this pet's appearance in precise detail for identity preservation in AI art:
1. Species, exact breed (or mix), size
2. Coat: color(s), pattern, length, texture, unique markings
3. Face: eye color, nose color, ear shape, facial markings
4. Distinguishing features: collar, tags, scars, unusual features
Keep to 2-3 sentences. Be photographically precise.`

// ClassicFallbackDescription stands in when analysis returns no text.
const ClassicFallbackDescription = "A beloved pet"
