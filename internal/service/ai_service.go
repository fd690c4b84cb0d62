package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"lingua_plan_backend/internal/config"
	"lingua_plan_backend/internal/model"
	"lingua_plan_backend/internal/util"
)

type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GeneratedTopic AI批量生成的话题记录，只校验结构形态不校验语义
type GeneratedTopic struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	PracticalScenario string `json:"practicalScenario"`
}

const topicSystemPrompt = "你是一名企业英语课程顾问，负责为学员定制教学话题。" +
	"输出必须是严格的JSON，不要输出任何JSON以外的文字。"

// GenerateTopics 按指令为指定等级生成count个定制话题。
// 返回内容解析失败视为生成失败，调用方不得部分落盘
func (s *AIService) GenerateTopics(instruction string, level model.CEFRLevel, count int) ([]GeneratedTopic, error) {
	if count <= 0 {
		count = 3
	}
	prompt := fmt.Sprintf(
		"请为%s等级的学员生成%d个英语教学话题。学员需求：%s\n"+
			"返回JSON数组，每个元素包含 title（中英双语标题）、description（一句话说明）、"+
			"practicalScenario（实用场景）三个字符串字段。",
		level, count, instruction,
	)

	content, err := s.chat(topicSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrGenerationFailed, err)
	}

	var topics []GeneratedTopic
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &topics); err != nil {
		return nil, util.ErrGenerationMalformed
	}
	if len(topics) == 0 {
		return nil, util.ErrGenerationMalformed
	}
	for _, t := range topics {
		if t.Title == "" {
			return nil, util.ErrGenerationMalformed
		}
	}
	return topics, nil
}

// GenerateSyllabus 为单个话题生成详细教案
func (s *AIService) GenerateSyllabus(title string, scenario string, level model.CEFRLevel) (*model.Syllabus, error) {
	prompt := fmt.Sprintf(
		"请为%s等级学员的话题《%s》生成详细教案。实用场景：%s\n"+
			"返回JSON对象，字段：vocabulary（字符串数组）、sentences（字符串数组）、"+
			"expressions（字符串数组）、commonMistakes（字符串数组）、culturalNote（字符串）、"+
			"phases（数组，每项含 name、minutes、activities）。",
		level, title, scenario,
	)

	content, err := s.chat(topicSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrGenerationFailed, err)
	}

	var syllabus model.Syllabus
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &syllabus); err != nil {
		return nil, util.ErrGenerationMalformed
	}
	if len(syllabus.Vocabulary) == 0 && len(syllabus.Phases) == 0 {
		return nil, util.ErrGenerationMalformed
	}
	return &syllabus, nil
}

func (s *AIService) chat(system, prompt string) (string, error) {
	reqBody := ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}

// stripCodeFence 剥离模型偶尔包裹的 ```json 围栏
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}
