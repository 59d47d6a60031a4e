package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/blobstore"
	"github.com/pixelrelay/upscaled/pkg/config"
	"github.com/pixelrelay/upscaled/pkg/imaging"
	"github.com/pixelrelay/upscaled/pkg/orchestrator"
	"github.com/pixelrelay/upscaled/pkg/planner"
	"github.com/pixelrelay/upscaled/pkg/provider"
	"github.com/pixelrelay/upscaled/pkg/quota"
	"github.com/pixelrelay/upscaled/pkg/reconciler"
	"github.com/pixelrelay/upscaled/pkg/registry"
	"github.com/pixelrelay/upscaled/pkg/services"
	"github.com/pixelrelay/upscaled/pkg/status"
	"github.com/pixelrelay/upscaled/pkg/stitcher"
	testdb "github.com/pixelrelay/upscaled/test/database"
)

type recordingProvider struct {
	mu      sync.Mutex
	nextID  int
	submits []provider.SubmitRequest
	preds   map[string]*provider.Prediction
	outputs map[string][]byte
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{
		preds:   map[string]*provider.Prediction{},
		outputs: map[string][]byte{},
	}
}

func (f *recordingProvider) Submit(_ context.Context, req provider.SubmitRequest) (*provider.Prediction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := fmt.Sprintf("pred-%d", f.nextID)
	f.submits = append(f.submits, req)
	f.preds[id] = &provider.Prediction{ID: id, Status: provider.StatusProcessing}
	return &provider.Prediction{ID: id, Status: provider.StatusStarting}, nil
}

func (f *recordingProvider) Get(_ context.Context, id string) (*provider.Prediction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.preds[id]
	if !ok {
		return nil, fmt.Errorf("unknown prediction %s", id)
	}
	cp := *p
	return &cp, nil
}

func (f *recordingProvider) Download(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if data, ok := f.outputs[url]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("no content at %s", url)
}

func (f *recordingProvider) serve(url string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[url] = data
}

func (f *recordingProvider) submitCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submits)
}

func (f *recordingProvider) lastSubmit() provider.SubmitRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submits[len(f.submits)-1]
}

var _ provider.Client = (*recordingProvider)(nil)

type apiHarness struct {
	router   *gin.Engine
	orch     *orchestrator.Orchestrator
	jobs     *services.JobService
	provider *recordingProvider
	blob     *blobstore.MemoryStore
}

func setupAPI(t *testing.T) *apiHarness {
	gin.SetMode(gin.TestMode)
	dbClient := testdb.NewTestClient(t)

	cfg := &config.Config{
		HTTP: config.HTTPConfig{CallbackBaseURL: "https://api.test"},
		Blob: config.BlobConfig{StagingPrefix: "staging", PermanentPrefix: "outputs"},
		Launch: config.LaunchConfig{
			Interval:            time.Millisecond,
			MaxRateLimitRetries: 1,
		},
		Reconciler: config.ReconcilerConfig{Interval: time.Minute, SilentAfter: time.Minute},
	}

	jobs := services.NewJobService(dbClient.Client)
	tiles := services.NewTileService(dbClient.Client)
	reg := registry.New()
	blob := blobstore.NewMemoryStore()
	prov := newRecordingProvider()

	st := stitcher.New(cfg, jobs, tiles, prov, blob)
	orch := orchestrator.New(cfg, jobs, tiles, planner.New(reg), reg, quota.NewOracle(), prov, blob, st)
	rec := reconciler.NewService(&cfg.Reconciler, jobs, tiles, orch, prov)
	statuses := status.NewReader(jobs, tiles)

	server := NewServer(cfg, dbClient, jobs, orch, rec, st, statuses, reg)
	return &apiHarness{
		router:   server.Router(),
		orch:     orch,
		jobs:     jobs,
		provider: prov,
		blob:     blob,
	}
}

func (h *apiHarness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func pngBase64(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	data, err := imaging.EncodePNG(img)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(data)
}

func TestSubmitEndpoint(t *testing.T) {
	h := setupAPI(t)

	w := h.do(t, http.MethodPost, "/submit", SubmitRequest{
		ImageBase64: pngBase64(t, 200, 150),
		Scale:       4,
		Quality:     "photo",
		Plan:        quota.PlanPro,
		UserID:      "user-1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.JobID)
	assert.Equal(t, 1, resp.TotalStages)
	assert.Equal(t, 4, resp.TargetScale)
	assert.Equal(t, 200, resp.OriginalDimensions.Width)
	assert.Equal(t, 150, resp.OriginalDimensions.Height)
	assert.Greater(t, resp.EstimatedCost, 0.0)

	// The launch happens off the request path.
	require.Eventually(t, func() bool {
		return h.provider.submitCount() == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSubmitEndpoint_SelectedModelIsPinned(t *testing.T) {
	h := setupAPI(t)

	// A selected model pins stage selection regardless of the quality mode
	// accompanying it.
	w := h.do(t, http.MethodPost, "/submit", SubmitRequest{
		ImageBase64:   pngBase64(t, 200, 150),
		Scale:         4,
		Quality:       "photo",
		Plan:          quota.PlanPro,
		UserID:        "user-1",
		QualityMode:   "quality",
		SelectedModel: registry.ModelAnime,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Eventually(t, func() bool {
		return h.provider.submitCount() == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, registry.ModelAnime, h.provider.lastSubmit().Model)
}

func TestSubmitEndpoint_Rejections(t *testing.T) {
	h := setupAPI(t)

	w := h.do(t, http.MethodPost, "/submit", SubmitRequest{
		ImageBase64: pngBase64(t, 100, 100),
		Scale:       4,
		Plan:        quota.PlanPro,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", decodeBody(t, w)["error"])

	w = h.do(t, http.MethodPost, "/submit", SubmitRequest{
		ImageBase64: pngBase64(t, 100, 100),
		Scale:       5,
		Plan:        quota.PlanPro,
		UserID:      "user-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "invalid_scale", body["error"])
	assert.NotEmpty(t, body["validScales"])

	w = h.do(t, http.MethodPost, "/submit", SubmitRequest{
		ImageBase64: "!!not-base64!!",
		Scale:       4,
		Plan:        quota.PlanPro,
		UserID:      "user-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decodeBody(t, w)["error"])

	w = h.do(t, http.MethodPost, "/submit", SubmitRequest{
		ImageBase64: pngBase64(t, 100, 100),
		Scale:       24,
		Plan:        quota.PlanFree,
		UserID:      "user-1",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "plan_cap_exceeded", decodeBody(t, w)["error"])
}

func TestStatusEndpoint(t *testing.T) {
	h := setupAPI(t)
	ctx := context.Background()

	img := image.NewRGBA(image.Rect(0, 0, 200, 150))
	data, err := imaging.EncodePNG(img)
	require.NoError(t, err)
	job, err := h.orch.Submit(ctx, orchestrator.SubmitInput{
		UserID:    "user-1",
		Plan:      quota.PlanPro,
		ImageData: data,
		Category:  "photo",
		Scale:     4,
	})
	require.NoError(t, err)

	w := h.do(t, http.MethodGet, "/status?jobId="+job.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, job.ID, resp.JobID)
	assert.Equal(t, string(upscalejob.StatusProcessing), resp.Status)
	assert.Equal(t, 1, resp.TotalStages)
	assert.Len(t, resp.Stages, 1)

	w = h.do(t, http.MethodGet, "/status", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodGet, "/status?jobId=no-such-job", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "job_not_found", decodeBody(t, w)["error"])
}

func TestCallbackEndpoint(t *testing.T) {
	h := setupAPI(t)
	ctx := context.Background()

	img := image.NewRGBA(image.Rect(0, 0, 200, 150))
	data, err := imaging.EncodePNG(img)
	require.NoError(t, err)
	job, err := h.orch.Submit(ctx, orchestrator.SubmitInput{
		UserID:    "user-1",
		Plan:      quota.PlanPro,
		ImageData: data,
		Category:  "photo",
		Scale:     4,
	})
	require.NoError(t, err)
	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))
	h.provider.serve("https://cdn.test/out.png", []byte("png-bytes"))

	// Output arrives as a list from some models.
	w := h.do(t, http.MethodPost, "/callback", map[string]any{
		"id":     "pred-1",
		"status": "succeeded",
		"output": []string{"https://cdn.test/out.png"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, true, body["received"])

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusCompleted, got.Status)

	w = h.do(t, http.MethodPost, "/callback", map[string]any{"status": "succeeded"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResumeEndpoint_Rejections(t *testing.T) {
	h := setupAPI(t)
	ctx := context.Background()

	w := h.do(t, http.MethodPost, "/resume", ResumeRequest{JobID: "no-such-job"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(t, http.MethodPost, "/resume", ResumeRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	img := image.NewRGBA(image.Rect(0, 0, 200, 150))
	data, err := imaging.EncodePNG(img)
	require.NoError(t, err)
	job, err := h.orch.Submit(ctx, orchestrator.SubmitInput{
		UserID:    "user-1",
		Plan:      quota.PlanPro,
		ImageData: data,
		Category:  "photo",
		Scale:     4,
	})
	require.NoError(t, err)

	// Still processing, nothing to resume.
	w = h.do(t, http.MethodPost, "/resume", ResumeRequest{JobID: job.ID})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "state_conflict", decodeBody(t, w)["error"])
}

func TestStitchEndpoint_Rejections(t *testing.T) {
	h := setupAPI(t)
	ctx := context.Background()

	w := h.do(t, http.MethodPost, "/stitch", StitchRequest{JobID: "no-such-job"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	img := image.NewRGBA(image.Rect(0, 0, 200, 150))
	data, err := imaging.EncodePNG(img)
	require.NoError(t, err)
	job, err := h.orch.Submit(ctx, orchestrator.SubmitInput{
		UserID:    "user-1",
		Plan:      quota.PlanPro,
		ImageData: data,
		Category:  "photo",
		Scale:     4,
	})
	require.NoError(t, err)

	w = h.do(t, http.MethodPost, "/stitch", StitchRequest{JobID: job.ID})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckAllEndpoint(t *testing.T) {
	h := setupAPI(t)

	w := h.do(t, http.MethodPost, "/check-all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp CheckAllResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Checked)
}

func TestModelsEndpoint(t *testing.T) {
	h := setupAPI(t)

	w := h.do(t, http.MethodGet, "/models", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["models"], 3)
}

func TestHealthEndpoint(t *testing.T) {
	h := setupAPI(t)

	w := h.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])
}
