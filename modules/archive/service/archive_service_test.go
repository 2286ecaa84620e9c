package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KehindeA533/openai-backend/core/config"
	apperrors "github.com/KehindeA533/openai-backend/core/errors"
	"github.com/KehindeA533/openai-backend/modules/archive/dto"
)

type fakeObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	listErr error
	putErr  error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (f *fakeObjectStore) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return "", f.putErr
	}
	f.objects[key] = body
	f.types[key] = contentType
	return "https://test-bucket.s3.us-east-1.amazonaws.com/" + key, nil
}

func (f *fakeObjectStore) ListFolders(ctx context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	seen := map[string]bool{}
	for key := range f.objects {
		rest := strings.TrimPrefix(key, prefix)
		if rest == key {
			continue
		}
		if i := strings.Index(rest, "/"); i > 0 {
			seen[rest[:i]] = true
		}
	}
	folders := make([]string, 0, len(seen))
	for folder := range seen {
		folders = append(folders, folder)
	}
	sort.Strings(folders)
	return folders, nil
}

func (f *fakeObjectStore) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.objects))
	for k := range f.objects {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func newTestService(store ObjectStore) ArchiveService {
	cfg := &config.Config{
		AWS:     config.AWSConfig{Bucket: "test-bucket", Region: "us-east-1"},
		Archive: config.ArchiveConfig{Prefix: "transcripts/"},
	}
	return NewArchiveService(store, NewScanCounter(store, cfg.Archive.Prefix), cfg)
}

func audioRequest() *dto.SaveAudioTranscriptRequest {
	return &dto.SaveAudioTranscriptRequest{
		Audio: &dto.AudioPayload{
			Data:     base64.StdEncoding.EncodeToString([]byte("RIFF-fake-wav")),
			MimeType: "audio/wav",
		},
		Metadata:      map[string]any{"durationSeconds": 42},
		FunctionCalls: []any{map[string]any{"name": "createReservation"}},
	}
}

func TestSaveAudioTranscriptUploadsAllFiles(t *testing.T) {
	store := newFakeObjectStore()
	svc := newTestService(store)

	resp, err := svc.SaveAudioTranscript(context.Background(), audioRequest())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, int64(1), resp.SessionID)
	assert.Equal(t, "transcripts/session_1/", resp.SessionFolder)
	assert.Equal(t, "test-bucket", resp.S3Bucket)
	assert.Len(t, resp.Files, 3)

	assert.Equal(t, []string{
		"transcripts/session_1/audio.wav",
		"transcripts/session_1/function_calls.json",
		"transcripts/session_1/metadata.json",
	}, store.keys())

	assert.Equal(t, []byte("RIFF-fake-wav"), store.objects["transcripts/session_1/audio.wav"])
	assert.Equal(t, "audio/wav", store.types["transcripts/session_1/audio.wav"])

	var metadata map[string]any
	require.NoError(t, json.Unmarshal(store.objects["transcripts/session_1/metadata.json"], &metadata))
	assert.Equal(t, float64(42), metadata["durationSeconds"])
	assert.Equal(t, float64(1), metadata["sessionId"])
	assert.NotEmpty(t, metadata["archivedAt"])
}

func TestSaveAudioTranscriptWebmExtension(t *testing.T) {
	store := newFakeObjectStore()
	svc := newTestService(store)

	req := audioRequest()
	req.Audio.MimeType = "audio/webm;codecs=opus"
	req.FunctionCalls = nil

	resp, err := svc.SaveAudioTranscript(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, store.objects, "transcripts/session_1/audio.webm")
	assert.NotContains(t, store.objects, "transcripts/session_1/function_calls.json")
	assert.Len(t, resp.Files, 2)
}

func TestSaveAudioTranscriptMissingAudio(t *testing.T) {
	store := newFakeObjectStore()
	svc := newTestService(store)

	_, err := svc.SaveAudioTranscript(context.Background(), &dto.SaveAudioTranscriptRequest{})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus())
	assert.Equal(t, "Missing audio data", appErr.Message)
	assert.Empty(t, store.keys())
}

func TestSaveAudioTranscriptInvalidBase64(t *testing.T) {
	store := newFakeObjectStore()
	svc := newTestService(store)

	req := audioRequest()
	req.Audio.Data = "not base64!!!"

	_, err := svc.SaveAudioTranscript(context.Background(), req)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus())
	assert.Empty(t, store.keys())
}

func TestSaveAudioTranscriptSequentialSessions(t *testing.T) {
	store := newFakeObjectStore()
	svc := newTestService(store)

	first, err := svc.SaveAudioTranscript(context.Background(), audioRequest())
	require.NoError(t, err)
	second, err := svc.SaveAudioTranscript(context.Background(), audioRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.SessionID)
	assert.Equal(t, int64(2), second.SessionID)
}

func TestSaveTranscript(t *testing.T) {
	store := newFakeObjectStore()
	svc := newTestService(store)

	resp, err := svc.SaveTranscript(context.Background(), &dto.SaveTranscriptRequest{
		Transcript: []any{map[string]any{"role": "user", "text": "table for four"}},
		Title:      "Dinner Reservation Call",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "transcripts/session_1/", resp.SessionFolder)
	assert.Contains(t, store.objects, "transcripts/session_1/dinner-reservation-call.json")
	assert.Equal(t, "https://test-bucket.s3.us-east-1.amazonaws.com/transcripts/session_1/dinner-reservation-call.json", resp.URL)
}

func TestSaveTranscriptDefaultName(t *testing.T) {
	store := newFakeObjectStore()
	svc := newTestService(store)

	_, err := svc.SaveTranscript(context.Background(), &dto.SaveTranscriptRequest{
		Transcript: "hello",
	})
	require.NoError(t, err)
	assert.Contains(t, store.objects, "transcripts/session_1/transcript.json")
}

func TestSaveTranscriptMissingData(t *testing.T) {
	store := newFakeObjectStore()
	svc := newTestService(store)

	_, err := svc.SaveTranscript(context.Background(), &dto.SaveTranscriptRequest{Title: "x"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus())
}

func TestScanCounterNextAfterExistingSessions(t *testing.T) {
	store := newFakeObjectStore()
	store.objects["transcripts/session_1/audio.wav"] = []byte("x")
	store.objects["transcripts/session_7/audio.wav"] = []byte("x")
	store.objects["transcripts/session_3/metadata.json"] = []byte("x")
	store.objects["transcripts/notes/readme.txt"] = []byte("x")

	counter := NewScanCounter(store, "transcripts/")
	id, err := counter.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
}

func TestScanCounterEmptyBucketStartsAtOne(t *testing.T) {
	counter := NewScanCounter(newFakeObjectStore(), "transcripts/")
	id, err := counter.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestScanCounterListFailureDefaultsToOne(t *testing.T) {
	store := newFakeObjectStore()
	store.listErr = errors.New("access denied")

	counter := NewScanCounter(store, "transcripts/")
	id, err := counter.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

// Two allocations with no upload in between observe the same listing and
// return the same id. That is the documented limitation of the scan counter;
// the Redis counter exists to close it.
func TestScanCounterConcurrentAllocationsCollide(t *testing.T) {
	store := newFakeObjectStore()
	store.objects["transcripts/session_4/audio.wav"] = []byte("x")

	counter := NewScanCounter(store, "transcripts/")
	first, err := counter.Next(context.Background())
	require.NoError(t, err)
	second, err := counter.Next(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
