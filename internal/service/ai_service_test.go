package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lingua_plan_backend/internal/config"
	"lingua_plan_backend/internal/model"
	"lingua_plan_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeChatServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"message":"boom"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": AIChatMessage{Role: "assistant", Content: content}},
			},
		})
	}))
}

func testAIService(baseURL string) *AIService {
	return NewAIService(config.AIConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "test-model",
	})
}

func TestGenerateTopics(t *testing.T) {
	content := `[
		{"title":"跨部门沟通 Cross-team Communication","description":"部门间协调的常用表达","practicalScenario":"与海外团队对齐需求"},
		{"title":"项目复盘 Retrospective","description":"复盘会议句型","practicalScenario":"主持季度复盘"}
	]`
	srv := fakeChatServer(t, content, http.StatusOK)
	defer srv.Close()

	topics, err := testAIService(srv.URL).GenerateTopics("帮学员准备跨国协作", model.LevelB1, 2)
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "跨部门沟通 Cross-team Communication", topics[0].Title)
	assert.NotEmpty(t, topics[1].PracticalScenario)
}

func TestGenerateTopicsStripsCodeFence(t *testing.T) {
	content := "```json\n[{\"title\":\"谈判开场 Opening a Negotiation\",\"description\":\"\",\"practicalScenario\":\"\"}]\n```"
	srv := fakeChatServer(t, content, http.StatusOK)
	defer srv.Close()

	topics, err := testAIService(srv.URL).GenerateTopics("谈判", model.LevelB2, 1)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "谈判开场 Opening a Negotiation", topics[0].Title)
}

func TestGenerateTopicsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "非JSON", content: "好的，我来帮你生成话题。"},
		{name: "空数组", content: "[]"},
		{name: "缺标题", content: `[{"title":"","description":"x","practicalScenario":"y"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := fakeChatServer(t, tt.content, http.StatusOK)
			defer srv.Close()

			_, err := testAIService(srv.URL).GenerateTopics("x", model.LevelB1, 1)
			assert.ErrorIs(t, err, util.ErrGenerationMalformed)
		})
	}
}

func TestGenerateTopicsUpstreamError(t *testing.T) {
	srv := fakeChatServer(t, "", http.StatusInternalServerError)
	defer srv.Close()

	_, err := testAIService(srv.URL).GenerateTopics("x", model.LevelB1, 1)
	assert.ErrorIs(t, err, util.ErrGenerationFailed)
}

func TestGenerateSyllabus(t *testing.T) {
	content := `{
		"vocabulary":["agenda","stakeholder"],
		"sentences":["Let's walk through the agenda."],
		"expressions":["circle back"],
		"commonMistakes":["把 discuss 误用作 discuss about"],
		"culturalNote":"会议守时文化",
		"phases":[{"name":"热身","minutes":10,"activities":["自由问答"]}]
	}`
	srv := fakeChatServer(t, content, http.StatusOK)
	defer srv.Close()

	syllabus, err := testAIService(srv.URL).GenerateSyllabus("会议主持", "主持跨国例会", model.LevelB1Plus)
	require.NoError(t, err)
	assert.Equal(t, []string{"agenda", "stakeholder"}, syllabus.Vocabulary)
	require.Len(t, syllabus.Phases, 1)
	assert.Equal(t, 10, syllabus.Phases[0].Minutes)
}

func TestGenerateSyllabusMalformed(t *testing.T) {
	srv := fakeChatServer(t, `{"vocabulary":[],"phases":[]}`, http.StatusOK)
	defer srv.Close()

	_, err := testAIService(srv.URL).GenerateSyllabus("x", "y", model.LevelB1)
	assert.ErrorIs(t, err, util.ErrGenerationMalformed)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}
