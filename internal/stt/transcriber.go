// Package stt converts spoken audio into text for the extraction pipeline.
package stt

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/profile-forge/internal/llm"
)

// Transcriber converts audio bytes into plain text.
type Transcriber interface {
	// Transcribe returns the spoken content of the audio as text.
	// mimeType identifies the audio encoding (e.g. "audio/ogg").
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// MaxAudioBytes caps accepted voice messages. Telegram voice notes are
// well under this; anything larger is almost certainly not a
// self-description.
const MaxAudioBytes = 20 << 20

// mimeByExtension maps common voice message extensions to MIME types.
var mimeByExtension = map[string]string{
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".wav":  "audio/wav",
	".flac": "audio/flac",
	".aac":  "audio/aac",
	".webm": "audio/webm",
}

// DetectMIMEType guesses the audio MIME type from a filename. Returns
// "audio/ogg" for unknown extensions, the format Telegram voice notes
// arrive in.
func DetectMIMEType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if mime, ok := mimeByExtension[ext]; ok {
		return mime
	}
	return "audio/ogg"
}

// LLMTranscriber transcribes audio through a multimodal LLM client.
type LLMTranscriber struct {
	client llm.Client
}

// NewLLMTranscriber creates a Transcriber backed by the given client.
func NewLLMTranscriber(client llm.Client) (*LLMTranscriber, error) {
	if client == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	return &LLMTranscriber{client: client}, nil
}

// Transcribe sends the audio to the model and returns the transcript.
func (t *LLMTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("audio payload is empty")
	}
	if len(audio) > MaxAudioBytes {
		return "", fmt.Errorf("audio payload too large: %d bytes (max %d)", len(audio), MaxAudioBytes)
	}
	if mimeType == "" {
		mimeType = "audio/ogg"
	}

	text, err := t.client.TranscribeAudio(ctx, audio, mimeType)
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	transcript := strings.TrimSpace(text)
	if transcript == "" {
		return "", fmt.Errorf("transcription produced no text")
	}
	return transcript, nil
}
