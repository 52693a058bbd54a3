package constant

const (
	DefaultSessionID = "default_session"
	SessionHeader    = "Session-ID"

	SeedVariantExchange = "exchange"
	SeedVariantSystem   = "system"

	DefaultPredictedStatus = "an issue detected"

	ChatSystemPrompt = `You are a helpful plant care assistant for the PlantCare app. Your expertise is in:
- Houseplant identification and care instructions
- Diagnosing plant problems (diseases, pests, nutrient deficiencies)
- Watering and lighting requirements for different plant species
- Soil preferences and potting recommendations
- Plant propagation techniques
- Seasonal care adjustments

Respond in a friendly, conversational manner. Your responses should be concise but thorough.
If you're unsure about plant-specific information, acknowledge that and suggest reliable sources.
Focus your responses solely on plant care topics. Do not engage in off-topic conversations.`

	ChatSeedAcknowledgement = "Okay, I'm ready to help with your plant care questions! How can I assist you today?"

	// %s: diagnosis label, %s: formatted readings
	SuggestionPromptTemplate = `You are an expert plant care assistant. Analyze the following sensor data for a plant diagnosed with '%s':

%s

Based *specifically* on these readings, provide concise, actionable advice to help improve the plant's health. Focus on the most likely causes indicated by the data and suggest 2-3 immediate steps the user should take. Explain *why* based on the readings if possible (e.g., "Low Soil_Moisture suggests watering...").`
)

// User-facing fallback texts returned next to error details.
const (
	ChatFallbackUnavailable    = "Plant Care Assistant unavailable."
	ChatFallbackUpstream       = "Error connecting to Plant Assistant."
	ChatFallbackBadRequest     = "I didn't receive a message. Please try again."
	SuggestFallbackUnavailable = "Suggestion service unavailable."
	SuggestFallbackUpstream    = "Could not generate suggestions at this time."
)
