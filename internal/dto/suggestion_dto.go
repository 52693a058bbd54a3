package dto

type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}
