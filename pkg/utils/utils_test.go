package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type validationTarget struct {
	MovieID int64  `json:"movie_id" validate:"required,min=1"`
	Name    string `json:"customer_name" validate:"required,notblank,nocontrol,max=5"`
	Ignored string `json:"-"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name   string
		input  validationTarget
		errors map[string]string
	}{
		{
			name:  "valid",
			input: validationTarget{MovieID: 1, Name: "Alice"},
		},
		{
			name:  "missing",
			input: validationTarget{},
			errors: map[string]string{
				"movie_id":      "This field is required",
				"customer_name": "This field is required",
			},
		},
		{
			name:   "blank",
			input:  validationTarget{MovieID: 1, Name: "   "},
			errors: map[string]string{"customer_name": "Must not be blank"},
		},
		{
			name:   "too long",
			input:  validationTarget{MovieID: 1, Name: "Maximilian"},
			errors: map[string]string{"customer_name": "Maximum length is 5"},
		},
		{
			name:   "control character",
			input:  validationTarget{MovieID: 1, Name: "Bo\x00b"},
			errors: map[string]string{"customer_name": "Must not contain control characters"},
		},
		{
			name:   "below minimum",
			input:  validationTarget{MovieID: -4, Name: "Bob"},
			errors: map[string]string{"movie_id": "Must be at least 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateStruct(tt.input)
			if tt.errors == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.errors, got)
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{
		"seats_booked": "Must be at least 1",
		"movie_id":     "This field is required",
	})
	assert.Equal(t, "movie_id: This field is required; seats_booked: Must be at least 1", msg)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-1", "abc", "1.5", "99999999999999999999"} {
		_, err := ParseID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name   string
		write  func(http.ResponseWriter)
		status int
	}{
		{"bad request", func(w http.ResponseWriter) { ResponseBadRequest(w, "bad", map[string]string{"id": "x"}) }, http.StatusBadRequest},
		{"not found", func(w http.ResponseWriter) { ResponseNotFound(w, "bad") }, http.StatusNotFound},
		{"conflict", func(w http.ResponseWriter) { ResponseConflict(w, "bad") }, http.StatusConflict},
		{"internal", func(w http.ResponseWriter) { ResponseInternalError(w, "bad") }, http.StatusInternalServerError},
		{"unavailable", func(w http.ResponseWriter) { ResponseUnavailable(w, "bad") }, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Status)
			assert.Equal(t, "bad", body.Message)
		})
	}
}

func TestResponseCreatedWritesBareBody(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseCreated(rec, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "PORT", "DEBUG", "LOG_PATH", "DATABASE_URL", "DB_MAX_CONNS", "DB_MIGRATE", "DB_SEED",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "CACHE_TTL", "KAFKA_BROKERS", "KAFKA_BOOKING_TOPIC",
		"HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	config, err := LoadConfigFile(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "movie-booking", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.True(t, config.Database.Migrate)
	assert.Empty(t, config.Redis.Addr)
	assert.Equal(t, 30*time.Second, config.Redis.TTL)
	assert.Empty(t, config.Kafka.Brokers)
	assert.Equal(t, "booking-events", config.Kafka.BookingTopic)
	assert.Equal(t, 10*time.Second, config.HTTP.ShutdownTimeout)
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nAPP_NAME=from-file\nKAFKA_BROKERS=k1:9092, k2:9092\nCACHE_TTL=1m\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("APP_NAME", "from-env")

	config, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "from-env", config.App.Name)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, config.Kafka.Brokers)
	assert.Equal(t, time.Minute, config.Redis.TTL)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
	assert.Equal(t, []string{"a", "b"}, splitList("a,,b "))
}

func TestInitLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := InitLogger(AppConfig{Name: "movie-booking", LogPath: dir})
	require.NoError(t, err)
	logger.Debug("hidden at info level")
	logger.Info("booking created")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "movie-booking.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"booking created"`)
	assert.Contains(t, string(data), `"app":"movie-booking"`)
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestInitLoggerStdoutOnly(t *testing.T) {
	logger, err := InitLogger(AppConfig{Debug: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}
