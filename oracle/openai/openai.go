package openai_oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/withoutsultang/Interview-agent-aivle/models"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Options configures the OpenAI-backed oracle client
type Options struct {
	APIKey       string
	BaseURL      string
	Model        string
	Temperature  float64
	MaxTokens    int
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// client implements the oracle interface using OpenAI's chat completions API
type client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	http        *httpClient
}

// Message represents a message in a conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// request represents a request to the OpenAI API
type request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// response represents a response from the OpenAI API
type response struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient creates a new OpenAI oracle client
func NewClient(opts Options) *client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &client{
		apiKey:      opts.APIKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
		http:        newHTTPClient(opts.Timeout, opts.MaxRetries, opts.RetryBackoff),
	}
}

// Summarize condenses the candidate document into a short recruiter summary
func (c *client) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`You are a professional recruiter. Summarize the following candidate document into 3-4 lines capturing its core content.
---
%s`, text)

	out, err := c.sendRequest(ctx, []Message{{Role: "user", Content: prompt}})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ExtractKeywords pulls the most important keywords as an ordered list
func (c *client) ExtractKeywords(ctx context.Context, text string, count int) ([]string, error) {
	prompt := fmt.Sprintf(`You are a professional technical headhunter. Extract the %d most important keywords from the following candidate document, separated by commas.
Example: Python, data analysis, NLP, project management, leadership
Respond with the comma-separated keywords only.
---
%s`, count, text)

	out, err := c.sendRequest(ctx, []Message{{Role: "user", Content: prompt}})
	if err != nil {
		return nil, err
	}

	var keywords []string
	for _, part := range strings.Split(out, ",") {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) > count {
		keywords = keywords[:count]
	}
	return keywords, nil
}

// PlanStrategy derives the ordered topic plan from the summary and keywords
func (c *client) PlanStrategy(ctx context.Context, summary string, keywords []string) (models.TopicPlan, error) {
	systemPrompt := `You are an expert who designs question strategies for structured interviews.
Based on the candidate summary and keywords, produce an interview question strategy covering three main categories: Experience, Communication, and Logical Thinking.

Respond ONLY with valid JSON in the following format:
{
  "topics": [
    {
      "name": "category name",
      "direction": "what this category should probe for this candidate",
      "example_questions": ["first example question", "second example question"]
    }
  ]
}
Each category must include a direction and exactly 2 example questions. Keep the topics in interview order. Do not include any other text or explanation.`

	userPrompt := fmt.Sprintf(`--- Candidate summary ---
%s

--- Key keywords ---
%s`, summary, strings.Join(keywords, ", "))

	out, err := c.sendRequest(ctx, []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		return models.TopicPlan{}, err
	}

	var plan models.TopicPlan
	if err := json.Unmarshal([]byte(stripFences(out)), &plan); err != nil {
		return models.TopicPlan{}, fmt.Errorf("failed to parse strategy: %w", err)
	}
	return plan, nil
}

// ScoreAnswer grades one question/answer pair on relevance and specificity
func (c *client) ScoreAnswer(ctx context.Context, question, answer string) (models.Judgment, error) {
	systemPrompt := `You are an interview answer evaluator.
Grade the candidate's answer to the given question on two criteria, each as one of "low", "medium" or "high", and add a short commentary.

Criteria:
1. relevance: did the answer grasp the intent of the question and address it?
2. specificity: did the answer back up experience or opinions with concrete examples or evidence?

Respond ONLY with valid JSON in the following format:
{
  "relevance": "low|medium|high",
  "specificity": "low|medium|high",
  "commentary": "short evaluation commentary"
}
Do not include any other text or explanation.`

	userPrompt := fmt.Sprintf(`--- Interview question ---
%s

--- Candidate answer ---
%s`, question, answer)

	out, err := c.sendRequest(ctx, []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		return models.Judgment{}, err
	}

	var raw struct {
		Relevance   string `json:"relevance"`
		Specificity string `json:"specificity"`
		Commentary  string `json:"commentary"`
	}
	if err := json.Unmarshal([]byte(stripFences(out)), &raw); err != nil {
		return models.Judgment{}, fmt.Errorf("failed to parse judgment: %w", err)
	}
	return models.Judgment{
		Relevance:   models.ParseRating(raw.Relevance),
		Specificity: models.ParseRating(raw.Specificity),
		Commentary:  strings.TrimSpace(raw.Commentary),
	}, nil
}

// DraftQuestion writes the next follow-up question from the transcript
func (c *client) DraftQuestion(ctx context.Context, summary, transcript, instruction string) (string, error) {
	systemPrompt := fmt.Sprintf(`You are a professional interviewer. Write exactly one follow-up question that digs deeper into the candidate's capabilities.

Rules:
1. NEVER repeat a question already asked in the interview record, or any prepared example question, verbatim.
2. %s
3. Keep the question concise and clear, a single sentence.

Respond with the question only.`, instruction)

	userPrompt := fmt.Sprintf(`--- Candidate summary ---
%s

--- Interview record so far (question, answer, judgment) ---
%s`, summary, transcript)

	out, err := c.sendRequest(ctx, []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// sendRequest sends a chat completion request and returns the first choice
func (c *client) sendRequest(ctx context.Context, messages []Message) (string, error) {
	req := request{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	var resp response
	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}
	if err := c.http.doJSON(ctx, "POST", c.baseURL+"/chat/completions", headers, req, &resp); err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// stripFences removes a surrounding markdown code fence from model output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
