package dto

// AudioPayload is the base64-encoded recording plus its MIME type.
type AudioPayload struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

type SaveAudioTranscriptRequest struct {
	Audio         *AudioPayload  `json:"audio"`
	Metadata      map[string]any `json:"metadata"`
	FunctionCalls any            `json:"functionCalls"`
}

type SaveAudioTranscriptResponse struct {
	Success       bool              `json:"success"`
	SessionID     int64             `json:"sessionId"`
	SessionFolder string            `json:"sessionFolder"`
	S3Bucket      string            `json:"s3Bucket"`
	S3Prefix      string            `json:"s3Prefix"`
	Files         map[string]string `json:"files"`
}

type SaveTranscriptRequest struct {
	Transcript any            `json:"transcript"`
	Title      string         `json:"title"`
	Metadata   map[string]any `json:"metadata"`
}

type SaveTranscriptResponse struct {
	Success       bool   `json:"success"`
	SessionID     int64  `json:"sessionId"`
	SessionFolder string `json:"sessionFolder"`
	URL           string `json:"url"`
}
