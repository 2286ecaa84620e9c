package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/KehindeA533/openai-backend/core/config"
	"github.com/KehindeA533/openai-backend/core/errors"
	"github.com/KehindeA533/openai-backend/core/logger"
	"github.com/KehindeA533/openai-backend/core/utils"
	"github.com/KehindeA533/openai-backend/modules/archive/dto"
)

type ArchiveService interface {
	SaveAudioTranscript(ctx context.Context, req *dto.SaveAudioTranscriptRequest) (*dto.SaveAudioTranscriptResponse, error)
	SaveTranscript(ctx context.Context, req *dto.SaveTranscriptRequest) (*dto.SaveTranscriptResponse, error)
}

type archiveService struct {
	store   ObjectStore
	counter SessionCounter
	bucket  string
	prefix  string
}

func NewArchiveService(store ObjectStore, counter SessionCounter, cfg *config.Config) ArchiveService {
	return &archiveService{
		store:   store,
		counter: counter,
		bucket:  cfg.AWS.Bucket,
		prefix:  cfg.Archive.Prefix,
	}
}

// SaveAudioTranscript uploads the session audio plus its metadata and
// function-call log into a fresh session_N folder.
func (s *archiveService) SaveAudioTranscript(ctx context.Context, req *dto.SaveAudioTranscriptRequest) (*dto.SaveAudioTranscriptResponse, error) {
	if req.Audio == nil || req.Audio.Data == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Missing audio data", nil)
	}

	audio, err := base64.StdEncoding.DecodeString(req.Audio.Data)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid base64 audio data", err)
	}

	uploadID := utils.GenerateID()
	sessionID, err := s.counter.Next(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to allocate session id", err)
	}

	folder := fmt.Sprintf("%ssession_%d/", s.prefix, sessionID)
	ext := audioExtension(req.Audio.MimeType)
	logger.Info("archiving session audio",
		"upload_id", uploadID, "session_id", sessionID, "folder", folder, "bytes", len(audio))

	files := map[string]string{}

	audioKey := folder + "audio." + ext
	audioURL, err := s.store.Put(ctx, audioKey, audio, req.Audio.MimeType)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload audio", err)
	}
	files["audio"] = audioURL

	metadata := req.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["sessionId"] = sessionID
	metadata["archivedAt"] = time.Now().UTC().Format(time.RFC3339)

	metaURL, err := s.putJSON(ctx, folder+"metadata.json", metadata)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload metadata", err)
	}
	files["metadata"] = metaURL

	if req.FunctionCalls != nil {
		fnURL, err := s.putJSON(ctx, folder+"function_calls.json", req.FunctionCalls)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload function calls", err)
		}
		files["functionCalls"] = fnURL
	}

	logger.Info("session archived", "upload_id", uploadID, "session_id", sessionID, "files", len(files))

	return &dto.SaveAudioTranscriptResponse{
		Success:       true,
		SessionID:     sessionID,
		SessionFolder: folder,
		S3Bucket:      s.bucket,
		S3Prefix:      s.prefix,
		Files:         files,
	}, nil
}

// SaveTranscript uploads a standalone transcript document.
func (s *archiveService) SaveTranscript(ctx context.Context, req *dto.SaveTranscriptRequest) (*dto.SaveTranscriptResponse, error) {
	if req.Transcript == nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Missing transcript data", nil)
	}

	sessionID, err := s.counter.Next(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to allocate session id", err)
	}

	name := slug.Make(req.Title)
	if name == "" {
		name = "transcript"
	}

	folder := fmt.Sprintf("%ssession_%d/", s.prefix, sessionID)
	doc := map[string]any{
		"title":      req.Title,
		"transcript": req.Transcript,
		"metadata":   req.Metadata,
		"savedAt":    time.Now().UTC().Format(time.RFC3339),
	}

	url, err := s.putJSON(ctx, folder+name+".json", doc)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload transcript", err)
	}

	return &dto.SaveTranscriptResponse{
		Success:       true,
		SessionID:     sessionID,
		SessionFolder: folder,
		URL:           url,
	}, nil
}

func (s *archiveService) putJSON(ctx context.Context, key string, v any) (string, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.store.Put(ctx, key, body, "application/json")
}

func audioExtension(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "webm"):
		return "webm"
	case strings.Contains(mimeType, "mp4"), strings.Contains(mimeType, "m4a"):
		return "mp4"
	default:
		return "wav"
	}
}
