package dto

// AskRequest carries a question for the tutoring pipeline. It binds from JSON
// bodies and from multipart forms alike.
type AskRequest struct {
	Question     string `json:"question" form:"question"`
	Grade        int    `json:"grade" form:"grade" validate:"gte=1,lte=12"`
	Language     string `json:"language" form:"language" validate:"required,min=2,max=12"`
	DocumentText string `json:"document_text" form:"document_text"`
}

// Warning is a user-visible notice raised when a pipeline stage fell back.
type Warning struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// AskResponse is the outcome of one pass through the pipeline.
type AskResponse struct {
	DetectedLanguage   string    `json:"detected_language"`
	PreferredLanguage  string    `json:"preferred_language"`
	Grade              int       `json:"grade"`
	Question           string    `json:"question"`
	TranslatedQuestion string    `json:"translated_question"`
	UsedDocument       bool      `json:"used_document"`
	EnglishAnswer      string    `json:"english_answer"`
	TranslatedAnswer   string    `json:"translated_answer"`
	Warnings           []Warning `json:"warnings"`
	Stages             []string  `json:"stages"`
}

// ExtractResponse describes the text pulled from an uploaded document.
type ExtractResponse struct {
	FileName  string `json:"file_name"`
	Kind      string `json:"kind"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
	Text      string `json:"text"`
}

// LanguageOption is one entry of the preferred-language selector.
type LanguageOption struct {
	Name string `json:"name"`
	Code string `json:"code"`
}
